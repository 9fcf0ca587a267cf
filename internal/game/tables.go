package game

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/myrjola/icaro/internal/logging"
)

// Tables keeps the live tables of a server in memory.
//
// The rng is shared by every table so it must be safe for concurrent use.
type Tables struct {
	logger *slog.Logger
	rng    RNG
	now    func() time.Time

	mu     sync.Mutex
	tables map[uuid.UUID]*Table
}

func NewTables(logger *slog.Logger, rng RNG) *Tables {
	return &Tables{
		logger: logger,
		rng:    rng,
		now:    time.Now,
		mu:     sync.Mutex{},
		tables: make(map[uuid.UUID]*Table),
	}
}

// Create deals a new table.
func (ts *Tables) Create(ctx context.Context) (uuid.UUID, *Table) {
	id := uuid.New()
	t := newTable(ts.logger, ts.rng, ts.now)

	ts.mu.Lock()
	ts.tables[id] = t
	n := len(ts.tables)
	ts.mu.Unlock()

	ctx = logging.WithAttrs(ctx, slog.String("table_id", id.String()))
	ts.logger.LogAttrs(ctx, slog.LevelInfo, "created table", slog.Int("tables", n))
	return id, t
}

// Get returns the table with the given id if it is still live.
func (ts *Tables) Get(id uuid.UUID) (*Table, bool) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	t, ok := ts.tables[id]
	return t, ok
}

// Len returns the number of live tables.
func (ts *Tables) Len() int {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return len(ts.tables)
}

// Sweep drops the tables that have not been used for idleTTL and returns how many were dropped.
func (ts *Tables) Sweep(ctx context.Context, idleTTL time.Duration) int {
	cutoff := ts.now().Add(-idleTTL)

	ts.mu.Lock()
	defer ts.mu.Unlock()
	swept := 0
	for id, t := range ts.tables {
		if t.idleSince().Before(cutoff) {
			delete(ts.tables, id)
			swept++
		}
	}
	if swept > 0 {
		ts.logger.LogAttrs(ctx, slog.LevelInfo, "swept idle tables",
			slog.Int("swept", swept), slog.Int("tables", len(ts.tables)))
	}
	return swept
}

// StartSweeper sweeps idle tables every interval until ctx is done.
func (ts *Tables) StartSweeper(ctx context.Context, interval time.Duration, idleTTL time.Duration) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(interval):
			ts.Sweep(ctx, idleTTL)
		}
	}
}
