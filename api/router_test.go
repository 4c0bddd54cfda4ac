package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/saeidalz13/naval-combat/db/sqlc"
	"github.com/saeidalz13/naval-combat/db/sqlc/automock"
	mc "github.com/saeidalz13/naval-combat/models/connection"
)

func getJSON(t *testing.T, url string, dst any) int {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
	return resp.StatusCode
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, nil)
	conn, _ := ts.dial(t)
	createMatch(t, conn)

	var health RespHealth
	status := getJSON(t, ts.server.URL+"/health", &health)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, RespHealth{Status: "ok", Sessions: 1, Matches: 1}, health)
}

func TestStats(t *testing.T) {
	tests := []struct {
		name           string
		setup          func(q *automock.Querier)
		nilQuerier     bool
		expectedStatus int
		expectedStats  RespServerStats
	}{
		{
			name:           "analytics disabled",
			nilQuerier:     true,
			expectedStatus: http.StatusOK,
			expectedStats:  RespServerStats{},
		},
		{
			name: "fresh deployment without a row",
			setup: func(q *automock.Querier) {
				q.On("AnalyticsGetServerCounts", mock.Anything, mock.Anything).
					Return(sqlc.AnalyticsGetServerCountsRow{}, sql.ErrNoRows).
					Once()
			},
			expectedStatus: http.StatusOK,
			expectedStats:  RespServerStats{AnalyticsEnabled: true},
		},
		{
			name: "counts from db",
			setup: func(q *automock.Querier) {
				q.On("AnalyticsGetServerCounts", mock.Anything, mock.Anything).
					Return(sqlc.AnalyticsGetServerCountsRow{MatchesCreated: 4, ReplaysCalled: 2, HumanWins: 1, ComputerWins: 3}, nil).
					Once()
			},
			expectedStatus: http.StatusOK,
			expectedStats: RespServerStats{
				AnalyticsEnabled: true,
				MatchesCreated:   4,
				ReplaysCalled:    2,
				HumanWins:        1,
				ComputerWins:     3,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var q sqlc.Querier
			if !test.nilQuerier {
				mq := automock.NewQuerier(t)
				test.setup(mq)
				q = mq
			}
			ts := newTestServer(t, q)

			var stats RespServerStats
			status := getJSON(t, ts.server.URL+"/stats", &stats)
			assert.Equal(t, test.expectedStatus, status)
			assert.Equal(t, test.expectedStats, stats)
		})
	}

	t.Run("db failure", func(t *testing.T) {
		q := automock.NewQuerier(t)
		q.On("AnalyticsGetServerCounts", mock.Anything, mock.Anything).
			Return(sqlc.AnalyticsGetServerCountsRow{}, errors.New("connection refused")).
			Once()
		ts := newTestServer(t, q)

		var body map[string]string
		status := getJSON(t, ts.server.URL+"/stats", &body)
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.NotEmpty(t, body["error"])
	})
}

func TestSessionRecordsAnalytics(t *testing.T) {
	q := automock.NewQuerier(t)
	ts := newTestServer(t, q)
	serverIp := ts.rp.Analytics().ServerIp()

	q.On("AnalyticsIncrementMatchesCreatedCount", mock.Anything, serverIp).Return(nil).Once()
	q.On("AnalyticsIncrementReplaysCalledCount", mock.Anything, serverIp).Return(nil).Twice()

	conn, _ := ts.dial(t)
	createMatch(t, conn)

	for range 2 {
		send(t, conn, mc.NewSignal(mc.CodeReplay))
		var resp mc.Message[mc.RespCreateMatch]
		readUntil(t, conn, mc.CodeReplay, &resp)
		require.Nil(t, resp.Error)
	}
}

func TestAnalyticsFailureKeepsSession(t *testing.T) {
	q := automock.NewQuerier(t)
	q.On("AnalyticsIncrementMatchesCreatedCount", mock.Anything, mock.Anything).Return(errors.New("db is down")).Once()
	ts := newTestServer(t, q)

	conn, _ := ts.dial(t)
	created := createMatch(t, conn)
	assert.NotEmpty(t, created.ControllerUuid)

	send(t, conn, mc.NewSignal(mc.CodeSnapshot))
	var resp mc.Message[json.RawMessage]
	readUntil(t, conn, mc.CodeSnapshot, &resp)
	assert.Nil(t, resp.Error)
}
