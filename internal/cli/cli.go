package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/thenoetrevino/roster/internal/app"
	"github.com/thenoetrevino/roster/internal/config"
	"github.com/thenoetrevino/roster/internal/database"
	"github.com/thenoetrevino/roster/internal/prompt"
)

// CLI is the handle every operation receives: the application services, the
// prompter that collects input and the output the results go to
type CLI struct {
	App    *app.App
	Prompt prompt.Prompter
	Out    *Output
}

// New wraps an application that is already connected. Results go to w,
// failures to errW.
func New(application *app.App, p prompt.Prompter, w, errW io.Writer) *CLI {
	return &CLI{
		App:    application,
		Prompt: p,
		Out:    NewOutput(w, errW),
	}
}

// NewCLI opens the store, checks it is reachable and applies the schema.
// Only a store that cannot be opened at all is returned as an error; a failed
// ping or schema is reported and the session goes on, so the operations
// surface the underlying problem themselves.
func NewCLI(ctx context.Context, cfg config.Database, p prompt.Prompter, w, errW io.Writer) (*CLI, error) {
	db, err := database.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	slog.Info("database opened", "target", cfg.String())

	c := New(app.New(db), p, w, errW)
	Bootstrap(ctx, db, c.Out)
	return c, nil
}

// Bootstrap pings the store and applies the schema, reporting failures
// without stopping
func Bootstrap(ctx context.Context, db *database.DB, out *Output) {
	if err := db.Ping(ctx); err != nil {
		slog.Error("database unreachable", "error", err)
		out.Error("Could not connect to the database: %v", err)
		return
	}
	slog.Info("database reachable", "dialect", db.Dialect().String())
	out.Success("Connected to the database.")

	if err := database.InitSchema(ctx, db); err != nil {
		slog.Error("schema initialization failed", "error", err)
		out.Error("Error initializing database schema: %v", err)
		return
	}
	slog.Info("schema applied", "dialect", db.Dialect().String())
	out.Success("Database schema initialized successfully.")
}

// Close releases the store connection
func (c *CLI) Close() error {
	return c.App.Close()
}
