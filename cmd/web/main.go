package main

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/mlahtinen/liftplan/internal/e2etest"
	"github.com/mlahtinen/liftplan/internal/envstruct"
	"github.com/mlahtinen/liftplan/internal/errors"
	"github.com/mlahtinen/liftplan/internal/flightrecorder"
	"github.com/mlahtinen/liftplan/internal/logging"
	"github.com/mlahtinen/liftplan/internal/pprofserver"
	"github.com/mlahtinen/liftplan/internal/program"
	"github.com/mlahtinen/liftplan/internal/sqlite"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// sessionKeyProfileID is the scs session key holding the selected profile ID.
const sessionKeyProfileID = "profileID"

type application struct {
	logger         *slog.Logger
	sessionManager *scs.SessionManager
	templateFS     fs.FS
	programService *program.Service
	db             *sqlite.Database
	markdown       goldmark.Markdown
	flightRecorder *flightrecorder.Service
}

type config struct {
	// Addr is the address to listen on. It's possible to choose the address dynamically with localhost:0.
	Addr string `env:"LIFTPLAN_ADDR" envDefault:"localhost:8081"`
	// SqliteURL is the URL to the SQLite database. You can use ":memory:" for an ethereal in-memory database.
	SqliteURL string `env:"LIFTPLAN_SQLITE_URL" envDefault:"./liftplan.sqlite3"`
	// PProfAddr is the optional address to listen on for the pprof server.
	PProfAddr string `env:"LIFTPLAN_PPROF_ADDR" envDefault:""`
	// TemplatePath is the path to the directory containing the HTML templates.
	TemplatePath string `env:"LIFTPLAN_TEMPLATE_PATH" envDefault:""`
	// TracesDir is the optional directory where request-timeout traces are written.
	TracesDir string `env:"LIFTPLAN_TRACES_DIR" envDefault:""`
	// OpenAIAPIKey enables AI-generated exercise guides when set.
	OpenAIAPIKey string `env:"LIFTPLAN_OPENAI_API_KEY" envDefault:""`
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var (
		cancel context.CancelFunc
		err    error
	)

	ctx, cancel = signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	var cfg config
	if err = envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	if cfg.PProfAddr != "" {
		pprofserver.Launch(ctx, cfg.PProfAddr, logger)
	}

	var htmlTemplatePath string
	if htmlTemplatePath, err = resolveAndVerifyTemplatePath(cfg.TemplatePath); err != nil {
		return errors.Wrap(err, "resolve template path")
	}

	db, err := sqlite.NewDatabase(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open db", slog.String("url", cfg.SqliteURL))
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "connected to db", slog.String(e2etest.LogDsnKey, cfg.SqliteURL))

	sessionManager := initializeSessionManager(db)

	var flightRecorder *flightrecorder.Service
	if cfg.TracesDir != "" {
		if flightRecorder, err = flightrecorder.New(flightrecorder.Config{
			Logger:          logger,
			MinAge:          0,
			MaxBytes:        0,
			TracesDirectory: cfg.TracesDir,
		}); err != nil {
			return errors.Wrap(err, "new flight recorder")
		}
		if err = flightRecorder.Start(ctx); err != nil {
			return errors.Wrap(err, "start flight recorder")
		}
		defer flightRecorder.Stop(ctx)
	}

	app := application{
		logger:         logger,
		sessionManager: sessionManager,
		templateFS:     os.DirFS(htmlTemplatePath),
		programService: program.NewService(db, logger, cfg.OpenAIAPIKey),
		db:             db,
		markdown:       goldmark.New(goldmark.WithExtensions(extension.GFM)),
		flightRecorder: flightRecorder,
	}

	mux, err := app.routes()
	if err != nil {
		return errors.Wrap(err, "routes")
	}

	if err = app.configureAndStartServer(ctx, cfg.Addr, mux); err != nil {
		return errors.Wrap(err, "start server")
	}
	return nil
}

func initializeSessionManager(dbs *sqlite.Database) *scs.SessionManager {
	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.NewWithCleanupInterval(dbs.ReadWrite, 24*time.Hour) //nolint:mnd // day
	sessionManager.Lifetime = 12 * time.Hour                                                //nolint:mnd // half a day
	sessionManager.Cookie.Persist = true
	sessionManager.Cookie.Secure = true
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteStrictMode
	return sessionManager
}

func main() {
	ctx := context.Background()
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
