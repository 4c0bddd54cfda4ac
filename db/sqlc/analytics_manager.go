package sqlc

import (
	"context"
	"database/sql"
	"errors"
	"net"

	"github.com/sqlc-dev/pqtype"
)

// AnalyticsManager keeps per-server counters. With a nil Querier every
// call is a no-op so the server can run without a database.
type AnalyticsManager struct {
	queries  Querier
	serverIp pqtype.Inet
}

func NewAnalyticsManager(queries Querier, serverIpNet net.IPNet) *AnalyticsManager {
	return &AnalyticsManager{
		queries:  queries,
		serverIp: pqtype.Inet{IPNet: serverIpNet, Valid: true},
	}
}

func (a *AnalyticsManager) Enabled() bool {
	return a.queries != nil
}

func (a *AnalyticsManager) ServerIp() pqtype.Inet {
	return a.serverIp
}

func (a *AnalyticsManager) IncrementMatchesCreatedCount(ctx context.Context) error {
	if !a.Enabled() {
		return nil
	}
	return a.queries.AnalyticsIncrementMatchesCreatedCount(ctx, a.serverIp)
}

func (a *AnalyticsManager) IncrementReplaysCalledCount(ctx context.Context) error {
	if !a.Enabled() {
		return nil
	}
	return a.queries.AnalyticsIncrementReplaysCalledCount(ctx, a.serverIp)
}

func (a *AnalyticsManager) IncrementWinsCount(ctx context.Context, humanWon bool) error {
	if !a.Enabled() {
		return nil
	}
	if humanWon {
		return a.queries.AnalyticsIncrementHumanWinsCount(ctx, a.serverIp)
	}
	return a.queries.AnalyticsIncrementComputerWinsCount(ctx, a.serverIp)
}

func (a *AnalyticsManager) GetServerCounts(ctx context.Context) (AnalyticsGetServerCountsRow, error) {
	if !a.Enabled() {
		return AnalyticsGetServerCountsRow{}, nil
	}

	// No row until this server records its first match
	counts, err := a.queries.AnalyticsGetServerCounts(ctx, a.serverIp)
	if errors.Is(err, sql.ErrNoRows) {
		return AnalyticsGetServerCountsRow{}, nil
	}
	return counts, err
}
