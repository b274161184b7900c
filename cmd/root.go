package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/cli/menu"
	"github.com/thenoetrevino/roster/internal/cli/styles"
	"github.com/thenoetrevino/roster/internal/config"
	"github.com/thenoetrevino/roster/internal/config/colors"
	"github.com/thenoetrevino/roster/internal/logging"
	"github.com/thenoetrevino/roster/internal/prompt"
)

// Runtime is everything the root command reaches outside the process
type Runtime struct {
	Stdout      io.Writer
	Stderr      io.Writer
	EnvFile     string
	InitLogging func() (io.Closer, error)
	NewPrompter func(colors.ColorScheme) prompt.Prompter
}

// DefaultRuntime uses the terminal, ./.env and ~/.roster/logs.
// Setting ACCESSIBLE switches huh to plain line prompts.
func DefaultRuntime() Runtime {
	return Runtime{
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		EnvFile:     ".env",
		InitLogging: logging.Init,
		NewPrompter: func(scheme colors.ColorScheme) prompt.Prompter {
			return prompt.NewHuh(scheme, os.Getenv("ACCESSIBLE") != "")
		},
	}
}

// NewRootCmd builds the roster command. It takes no arguments: everything
// happens in the interactive menu.
func NewRootCmd(rt Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "roster",
		Short: "Roster - manage departments, roles and employees",
		Long: `Roster is an interactive terminal tool for the departments, roles and
employees of an organization, stored in PostgreSQL (or SQLite).

Connection settings come from DB_USER, DB_HOST, DB_NAME, DB_PASSWORD and
DB_PORT, read from the environment or a .env file in the working directory.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, rt)
		},
	}
}

func run(cmd *cobra.Command, rt Runtime) error {
	ctx := cmd.Context()

	logFile, err := rt.InitLogging()
	if err != nil {
		logging.Fallback()
		slog.Warn("could not open log file", "error", err)
	} else {
		defer func() {
			if err := logFile.Close(); err != nil {
				fmt.Fprintf(rt.Stderr, "Error closing log file: %v\n", err)
			}
		}()
	}

	uiConfig, err := config.Load()
	if err != nil {
		slog.Warn("could not load config, using default theme", "error", err)
		uiConfig = &config.Config{ColorScheme: config.DefaultColorScheme()}
	}
	styles.Init(uiConfig.ColorScheme)

	dbConfig, err := config.LoadDatabase(rt.EnvFile)
	if err != nil {
		reportConfigError(rt.Stderr, err)
		slog.Error("database configuration rejected", "error", err)
		return err
	}
	slog.Info("database configuration loaded", "target", dbConfig.String(), "env_file", rt.EnvFile)

	c, err := cli.NewCLI(ctx, dbConfig, rt.NewPrompter(uiConfig.ColorScheme), rt.Stdout, rt.Stderr)
	if err != nil {
		fmt.Fprintf(rt.Stderr, "❌ Error: %v\n", err)
		slog.Error("startup failed", "error", err)
		return err
	}

	return menu.Run(ctx, c)
}

func reportConfigError(w io.Writer, err error) {
	var missing *config.MissingKeysError
	if errors.As(err, &missing) {
		fmt.Fprintln(w, "❌ Missing database environment variables! Check your .env file.")
		fmt.Fprintf(w, "Missing: %s\n", strings.Join(missing.Keys, ", "))
		return
	}
	fmt.Fprintf(w, "❌ Error: %v\n", err)
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	if err := NewRootCmd(DefaultRuntime()).Execute(); err != nil {
		return cli.ExitError
	}
	return cli.ExitSuccess
}
