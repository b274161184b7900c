// Package clitest wires an in-memory store, a scripted prompter and a
// captured stdout and stderr into a *cli.CLI for operation tests
package clitest

import (
	"bytes"
	"testing"

	"github.com/thenoetrevino/roster/internal/app"
	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/database"
	"github.com/thenoetrevino/roster/internal/testutil"
)

// Env is everything an operation test needs
type Env struct {
	DB     *database.DB
	Repo   *database.Repository
	Prompt *testutil.ScriptedPrompter
	Out    *bytes.Buffer
	Err    *bytes.Buffer
	CLI    *cli.CLI
}

// Setup creates a fresh Env. The database is closed when the test ends.
func Setup(t *testing.T) *Env {
	t.Helper()

	db := testutil.SetupTestDB(t)
	repo := database.NewRepository(db)
	p := testutil.NewScriptedPrompter()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	application := app.New(db, app.WithDataStore(repo))

	env := &Env{
		DB:     db,
		Repo:   repo,
		Prompt: p,
		Out:    out,
		Err:    errOut,
		CLI:    cli.New(application, p, out, errOut),
	}

	t.Cleanup(func() {
		// Exit may already have closed it
		_ = db.Close()
	})

	return env
}
