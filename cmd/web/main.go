package main

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/donseba/go-htmx"
	"github.com/joho/godotenv"
	"github.com/myrjola/icaro/internal/envstruct"
	"github.com/myrjola/icaro/internal/errors"
	"github.com/myrjola/icaro/internal/game"
	"github.com/myrjola/icaro/internal/logging"
	"github.com/myrjola/icaro/internal/pprofserver"
	"github.com/myrjola/icaro/internal/random"
	"github.com/myrjola/icaro/internal/sqlite"
)

type application struct {
	logger           *slog.Logger
	sessionManager   *scs.SessionManager
	htmx             *htmx.HTMX
	tables           *game.Tables
	maxPortraitBytes int64
}

type config struct {
	// Addr is the address the HTTP server listens on.
	Addr string `env:"ICARO_ADDR" envDefault:"localhost:4000"`
	// SqliteURL is the session database, ":memory:" for an in-memory database.
	SqliteURL string `env:"ICARO_SQLITE_URL" envDefault:"./icaro.sqlite3"`
	// PprofAddr is a loopback address for the pprof server. Empty disables it.
	PprofAddr       string        `env:"ICARO_PPROF_ADDR" envDefault:""`
	SessionLifetime time.Duration `env:"ICARO_SESSION_LIFETIME" envDefault:"12h"`
	// TableIdleTTL is how long a game survives without any player activity.
	TableIdleTTL     time.Duration `env:"ICARO_TABLE_IDLE_TTL" envDefault:"12h"`
	MaxPortraitBytes int           `env:"ICARO_MAX_PORTRAIT_BYTES" envDefault:"2097152"`
	// ShuffleSeed makes the deals reproducible when set. Zero shuffles from crypto/rand.
	ShuffleSeed int `env:"ICARO_SHUFFLE_SEED" envDefault:"0"`
}

const tableSweepInterval = 5 * time.Minute

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var (
		err error
		cfg config
	)
	if err = envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if cfg.PprofAddr != "" {
		if _, err = pprofserver.Launch(ctx, cfg.PprofAddr, logger); err != nil {
			return errors.Wrap(err, "launch pprof server")
		}
	}

	var db *sqlite.Database
	if db, err = sqlite.NewDatabase(ctx, cfg.SqliteURL, logger); err != nil {
		return errors.Wrap(err, "open database", slog.String("sqlite_url", cfg.SqliteURL))
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "connected to db")

	sessionStore := sqlite3store.NewWithCleanupInterval(db.ReadWrite.DB, 24*time.Hour) //nolint:mnd // once a day
	defer func() {
		sessionStore.StopCleanup()
		if closeErr := db.Close(); closeErr != nil {
			closeErr = errors.Wrap(closeErr, "close database")
			logger.LogAttrs(ctx, slog.LevelError, "failed to close database", errors.SlogError(closeErr))
		}
	}()

	sessionManager := scs.New()
	sessionManager.Store = sessionStore
	sessionManager.Lifetime = cfg.SessionLifetime
	sessionManager.Cookie.Secure = true

	var rng game.RNG = random.Crypto{}
	if cfg.ShuffleSeed != 0 {
		rng = random.NewSeeded(uint64(cfg.ShuffleSeed)) //nolint:gosec // any bit pattern is a fine seed
		logger.LogAttrs(ctx, slog.LevelWarn, "dealing reproducible games", slog.Int("seed", cfg.ShuffleSeed))
	}
	tables := game.NewTables(logger, rng)
	go tables.StartSweeper(ctx, tableSweepInterval, cfg.TableIdleTTL)

	app := application{
		logger:           logger,
		sessionManager:   sessionManager,
		htmx:             htmx.New(),
		tables:           tables,
		maxPortraitBytes: int64(cfg.MaxPortraitBytes),
	}

	return app.configureAndStartServer(ctx, cfg.Addr)
}

func main() {
	ctx := context.Background()
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   true,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.LogAttrs(ctx, slog.LevelError, "failed to load .env", errors.SlogError(errors.Wrap(err, "load .env")))
		os.Exit(1)
	}

	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
