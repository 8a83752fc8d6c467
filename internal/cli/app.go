// Package cli implements the interactive daybook client: a REPL over the
// backend REST adapters, with a locally persisted session and an offline
// cache for read-only views.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"daybook/internal/api"
	"daybook/internal/client"
	"daybook/internal/config"
	"daybook/internal/guard"
	"daybook/internal/logging"
	"daybook/internal/repositories/snapshots"
	"daybook/internal/session"
)

type App struct {
	config    *config.Config
	api       api.Service
	session   *session.Store
	snapshots snapshots.Repository
	log       logging.Logger
	reader    *bufio.Reader
	repos     *client.Repositories
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	repos, err := client.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	apiClient, err := api.New(cfg.ServerBaseURL,
		api.WithLogger(log),
		api.WithTimeout(cfg.RequestTimeout),
	)
	if err != nil {
		return nil, err
	}

	return &App{
		config:    cfg,
		api:       apiClient,
		session:   session.NewStore(repos.KV, log),
		snapshots: repos.Snapshots,
		log:       log,
		reader:    bufio.NewReader(os.Stdin),
		repos:     repos,
	}, nil
}

// Run initializes the session from local storage and hands control to the
// REPL until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	a.session.Initialize(ctx)
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

// Close releases the local database handle.
func (a *App) Close() error {
	return a.repos.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) status() string {
	if id := a.session.CurrentIdentity(); id != nil {
		return fmt.Sprintf("(%s)", id.Username)
	}
	return ""
}

// requireAuth gates a protected command on the access guard. Only Allowed
// lets the command proceed; the two other states print what a page would
// render (a loading indicator, or the redirect to login).
func (a *App) requireAuth() bool {
	switch guard.Check(a.session) {
	case guard.Allowed:
		return true
	case guard.Pending:
		printlnFn("session still loading, try again")
	default:
		printlnFn("please login first")
	}
	return false
}
