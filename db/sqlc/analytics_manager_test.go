package sqlc

import (
	"context"
	"database/sql"
	"net"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testIpNet = net.IPNet{IP: net.ParseIP("10.0.0.7"), Mask: net.CIDRMask(32, 32)}

func newTestAnalytics(t *testing.T) (*AnalyticsManager, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewDbManager(New(db), testIpNet).Analytics, mock
}

func TestAnalyticsManager_Increments(t *testing.T) {
	tests := []struct {
		name  string
		query string
		call  func(a *AnalyticsManager, ctx context.Context) error
	}{
		{
			name:  "matches created",
			query: analyticsIncrementMatchesCreatedCount,
			call:  func(a *AnalyticsManager, ctx context.Context) error { return a.IncrementMatchesCreatedCount(ctx) },
		},
		{
			name:  "replays called",
			query: analyticsIncrementReplaysCalledCount,
			call:  func(a *AnalyticsManager, ctx context.Context) error { return a.IncrementReplaysCalledCount(ctx) },
		},
		{
			name:  "human wins",
			query: analyticsIncrementHumanWinsCount,
			call:  func(a *AnalyticsManager, ctx context.Context) error { return a.IncrementWinsCount(ctx, true) },
		},
		{
			name:  "computer wins",
			query: analyticsIncrementComputerWinsCount,
			call:  func(a *AnalyticsManager, ctx context.Context) error { return a.IncrementWinsCount(ctx, false) },
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			analytics, mock := newTestAnalytics(t)
			mock.ExpectExec(regexp.QuoteMeta(test.query)).
				WithArgs(analytics.ServerIp()).
				WillReturnResult(sqlmock.NewResult(0, 1))

			ctx, cancel := context.WithTimeout(context.Background(), QuerierCtxTimeout)
			defer cancel()

			require.NoError(t, test.call(analytics, ctx))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAnalyticsManager_GetServerCounts(t *testing.T) {
	analytics, mock := newTestAnalytics(t)
	mock.ExpectQuery(`SELECT matches_created, replays_called, human_wins, computer_wins FROM match_server_analytics WHERE server_ip = \$1`).
		WithArgs(analytics.ServerIp()).
		WillReturnRows(sqlmock.NewRows([]string{"matches_created", "replays_called", "human_wins", "computer_wins"}).AddRow(4, 2, 1, 3))

	counts, err := analytics.GetServerCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, AnalyticsGetServerCountsRow{MatchesCreated: 4, ReplaysCalled: 2, HumanWins: 1, ComputerWins: 3}, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsManager_NoRows(t *testing.T) {
	analytics, mock := newTestAnalytics(t)
	mock.ExpectQuery(`SELECT matches_created`).
		WithArgs(analytics.ServerIp()).
		WillReturnError(sql.ErrNoRows)

	counts, err := analytics.GetServerCounts(context.Background())
	require.NoError(t, err)
	assert.Zero(t, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsManager_Disabled(t *testing.T) {
	analytics := NewAnalyticsManager(nil, testIpNet)

	assert.False(t, analytics.Enabled())
	assert.NoError(t, analytics.IncrementMatchesCreatedCount(context.Background()))
	assert.NoError(t, analytics.IncrementWinsCount(context.Background(), true))

	counts, err := analytics.GetServerCounts(context.Background())
	require.NoError(t, err)
	assert.Zero(t, counts)
}
