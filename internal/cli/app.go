// Package cli is the interactive front end and composition root: it builds
// the slot store selected by config, wires the identity and record stores
// together, and maps REPL commands onto store operations. All presentation
// decisions live here; the stores never print.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/hiresphere/hiresphere/internal/auth"
	"github.com/hiresphere/hiresphere/internal/config"
	"github.com/hiresphere/hiresphere/internal/identity"
	"github.com/hiresphere/hiresphere/internal/logging"
	"github.com/hiresphere/hiresphere/internal/models"
	"github.com/hiresphere/hiresphere/internal/records"
	"github.com/hiresphere/hiresphere/internal/storage"

	_ "modernc.org/sqlite"
)

type App struct {
	config *config.Config
	log    logging.Logger

	slots storage.SlotStore
	ids   *identity.Store
	recs  *records.Store

	reader *bufio.Reader
	out    *os.File
}

// openSlotStore builds the backend named by cfg.Driver.
func openSlotStore(ctx context.Context, cfg *config.Config) (storage.SlotStore, error) {
	switch cfg.Driver {
	case "sqlite":
		return storage.NewSQLiteStore(ctx, cfg.DSN)
	case "postgres":
		return storage.NewPostgresStore(ctx, cfg.DSN)
	case "memory":
		return storage.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	slots, err := openSlotStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("opening slot store: %w", err)
	}

	tokens := auth.NewTokenManager([]byte(cfg.SessionSecret), cfg.SessionTTL)

	ids := identity.New(slots, tokens, log)
	if err := ids.Open(ctx); err != nil {
		_ = slots.Close()
		return nil, fmt.Errorf("opening identity store: %w", err)
	}

	recs := records.New(slots, ids, log)
	if err := recs.Open(ctx); err != nil {
		_ = slots.Close()
		return nil, fmt.Errorf("opening record store: %w", err)
	}

	return &App{
		config: cfg,
		log:    log,
		slots:  slots,
		ids:    ids,
		recs:   recs,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		_ = a.recs.Close(ctx)
		_ = a.ids.Close(ctx)
		_ = a.slots.Close()
	}()

	fmt.Fprintln(a.out, "Welcome to HireSphere (type 'help' for commands)")
	if user := a.ids.CurrentSession(); user != nil {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", user.Name)
	}

	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) status() string {
	user := a.ids.CurrentSession()
	if user == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", user.Name, user.Role)
}

func (a *App) isLoggedIn() bool {
	return a.ids.CurrentSession() != nil
}

func (a *App) isEmployer() bool {
	user := a.ids.CurrentSession()
	return user != nil && user.Role == models.RoleEmployer
}
