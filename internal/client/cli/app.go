package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/carflow/internal/client/agencies"
	"github.com/dmitrijs2005/carflow/internal/client/config"
	"github.com/dmitrijs2005/carflow/internal/client/notify"
	"github.com/dmitrijs2005/carflow/internal/client/repositories/users"
	"github.com/dmitrijs2005/carflow/internal/client/services"
	"github.com/dmitrijs2005/carflow/internal/client/storage"
	"github.com/dmitrijs2005/carflow/internal/filex"
	"github.com/dmitrijs2005/carflow/internal/logging"
)

type App struct {
	config   *config.Config
	accounts services.AccountService
	log      logging.Logger
	db       *sql.DB
	reader   *bufio.Reader
	out      io.Writer
}

// NewApp opens the local database, loads the agency directory and builds
// the account store. Diagnostics go to stderr, notifications to stdout.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log, err := logging.New(os.Stderr, c.LogLevel, c.LogFormat)
	if err != nil {
		return nil, err
	}

	directory := agencies.Default()
	if c.AgenciesFile != "" {
		directory, err = agencies.LoadFile(c.AgenciesFile)
		if err != nil {
			return nil, err
		}
	}

	if _, err := filex.EnsureParentDir(c.DatabasePath); err != nil {
		return nil, err
	}

	db, err := storage.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	notifier := notify.Multi{
		notify.NewWriterNotifier(os.Stdout),
		notify.NewLogNotifier(log.With("component", "notify")),
	}

	accounts, err := services.NewAccountService(ctx, users.NewSQLiteRepository(db), directory,
		services.WithNotifier(notifier),
		services.WithLogger(log),
		services.WithLatency(c.Latency),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{
		config:   c,
		accounts: accounts,
		log:      log,
		db:       db,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// Run starts the REPL and closes the database when it returns.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

// Close releases the database handle.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}

func (a *App) isLoggedIn() bool {
	return a.accounts.CurrentUser() != nil
}

func (a *App) getStatus() string {
	s := a.accounts.Session()
	if s.User == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", s.User.Email, s.Kind)
}
