package game

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/myrjola/icaro/internal/random"
	"github.com/myrjola/icaro/internal/testhelpers"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func TestTables(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2026, 1, 5, 2, 30, 0, 0, time.UTC)}
	tables := NewTables(testhelpers.NewLogger(io.Discard), random.Crypto{})
	tables.now = clock.Now

	idleID, _ := tables.Create(ctx)
	busyID, busy := tables.Create(ctx)
	require.NotEqual(t, idleID, busyID)
	require.Equal(t, 2, tables.Len())

	got, ok := tables.Get(busyID)
	require.True(t, ok)
	require.Same(t, busy, got)
	_, ok = tables.Get(uuid.New())
	require.False(t, ok)

	clock.now = clock.now.Add(30 * time.Minute)
	busy.Dispatch(ctx, InvestigateAction{})
	require.Equal(t, 0, tables.Sweep(ctx, time.Hour))

	clock.now = clock.now.Add(45 * time.Minute)
	require.Equal(t, 1, tables.Sweep(ctx, time.Hour))
	_, ok = tables.Get(idleID)
	require.False(t, ok, "idle table is swept")
	_, ok = tables.Get(busyID)
	require.True(t, ok, "recently used table stays")
}

func TestTablesSweeperStopsWithContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	tables := NewTables(testhelpers.NewLogger(io.Discard), random.Crypto{})
	tables.Create(ctx)

	done := make(chan struct{})
	go func() {
		tables.StartSweeper(ctx, time.Millisecond, 0)
		close(done)
	}()
	require.Eventually(t, func() bool { return tables.Len() == 0 }, time.Second, time.Millisecond)
	cancel()
	<-done
}
