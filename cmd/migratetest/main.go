package main

import (
	"context"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/myrjola/icaro/internal/errors"
	"github.com/myrjola/icaro/internal/sqlite"
	"github.com/myrjola/icaro/internal/testhelpers"
)

func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	var (
		err       error
		start     = time.Now()
		ctx       context.Context
		sqliteURL string
		ok        bool
		cancel    context.CancelFunc
	)
	ctx = context.Background()
	ctx, cancel = context.WithTimeout(ctx, 5*time.Second) //nolint:mnd // 5 seconds

	if sqliteURL, ok = os.LookupEnv("ICARO_SQLITE_URL"); !ok {
		logger.LogAttrs(ctx, slog.LevelError, "ICARO_SQLITE_URL not set")
		os.Exit(1)
	}

	var db *sqlite.Database
	if db, err = sqlite.NewDatabase(ctx, sqliteURL, logger); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating database",
			slog.String("url", sqliteURL), errors.SlogError(err))
		os.Exit(1)
	}

	var tables []string
	if tables, err = db.Tables(ctx); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error listing tables", errors.SlogError(err))
		os.Exit(1)
	}
	if !slices.Contains(tables, "sessions") {
		logger.LogAttrs(ctx, slog.LevelError, "sessions table missing after migration",
			slog.Any("tables", tables))
		os.Exit(1)
	}

	// Live sessions are carried over by the migration.
	var count int
	if err = db.ReadOnly.GetContext(ctx, &count, `SELECT COUNT(*) FROM sessions WHERE expiry > julianday('now')`); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error fetching session count", errors.SlogError(err))
		os.Exit(1)
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "live session count", slog.Int("count", count))

	logger.LogAttrs(ctx, slog.LevelInfo, "Migration test successful 🙌", slog.Duration("duration", time.Since(start)))
	cancel()
	os.Exit(0)
}
