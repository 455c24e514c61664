package main

import (
	"cmp"
	"context"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/myrjola/repcoach/internal/catalog"
	"github.com/myrjola/repcoach/internal/envstruct"
	"github.com/myrjola/repcoach/internal/errors"
	"github.com/myrjola/repcoach/internal/logging"
	"github.com/myrjola/repcoach/internal/report"
	"github.com/myrjola/repcoach/internal/sqlite"
	"github.com/myrjola/repcoach/internal/workout"
)

type application struct {
	logger         *slog.Logger
	workoutService *workout.Service
	catalog        *catalog.Catalog
	renderer       *report.Renderer
	// random picks greetings. It must be safe for concurrent use.
	random func() *rand.Rand
	// handlerTimeout bounds the time a handler may run before the client gets 503.
	handlerTimeout time.Duration
}

type config struct {
	// Addr is the address to listen on. It's possible to choose the address dynamically with localhost:0.
	Addr string `env:"REPCOACH_ADDR" envDefault:"localhost:8081"`
	// SqliteURL is the URL to the SQLite database. You can use ":memory:" for an ethereal in-memory database.
	SqliteURL string `env:"REPCOACH_SQLITE_URL" envDefault:"./repcoach.sqlite3"`
	// CatalogPath replaces the bundled exercise catalog when set.
	CatalogPath  string        `env:"REPCOACH_CATALOG_PATH" envDefault:""`
	ReadTimeout  time.Duration `env:"REPCOACH_READ_TIMEOUT" envDefault:"2s"`
	WriteTimeout time.Duration `env:"REPCOACH_WRITE_TIMEOUT" envDefault:"2s"`
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var (
		cancel context.CancelFunc
		err    error
	)

	ctx, cancel = signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var cfg config
	if err = envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	var c *catalog.Catalog
	if cfg.CatalogPath == "" {
		c, err = catalog.Default()
	} else {
		c, err = catalog.Load(cfg.CatalogPath)
	}
	if err != nil {
		return errors.Wrap(err, "load catalog", slog.String("path", cfg.CatalogPath))
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "loaded catalog", slog.Int("exercises", len(c.Exercises())))

	db, err := sqlite.NewDatabase(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open db", slog.String("url", cfg.SqliteURL))
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.LogAttrs(ctx, slog.LevelError, "failed to close db", errors.SlogError(closeErr))
		}
	}()
	go db.StartOptimizer(ctx)

	renderer, err := report.NewRenderer()
	if err != nil {
		return errors.Wrap(err, "new report renderer")
	}

	app := application{
		logger:         logger,
		workoutService: workout.NewService(db, logger, workout.NewEngine(c)),
		catalog:        c,
		renderer:       renderer,
		random: func() *rand.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint:gosec // greetings need no crypto.
		},
		handlerTimeout: cfg.WriteTimeout - 200*time.Millisecond, //nolint:mnd // writing the response takes time.
	}

	if err = app.configureAndStartServer(ctx, cfg); err != nil {
		return errors.Wrap(err, "start server")
	}
	return nil
}

func main() {
	ctx := context.Background()
	level, levelErr := logging.ParseLevel(cmp.Or(os.Getenv("REPCOACH_LOG_LEVEL"), "info"))
	logger := logging.New(os.Stdout, level)
	if levelErr != nil {
		logger.LogAttrs(ctx, slog.LevelWarn, "invalid log level, using info", errors.SlogError(levelErr))
	}
	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
