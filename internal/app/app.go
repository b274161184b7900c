package app

import (
	"log/slog"

	"github.com/thenoetrevino/roster/internal/database"
	departmentservice "github.com/thenoetrevino/roster/internal/services/department"
	employeeservice "github.com/thenoetrevino/roster/internal/services/employee"
	roleservice "github.com/thenoetrevino/roster/internal/services/role"
)

// App holds all application services and provides dependency injection.
// It owns the store connection for the whole session.
type App struct {
	db     *database.DB
	repo   database.DataStore
	logger *slog.Logger

	DepartmentService departmentservice.Service
	RoleService       roleservice.Service
	EmployeeService   employeeservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(db *database.DB, opts ...Option) *App {
	cfg := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	repo := cfg.repo
	if repo == nil {
		repo = database.NewRepository(db)
	}

	return &App{
		db:                db,
		repo:              repo,
		logger:            cfg.logger,
		DepartmentService: departmentservice.NewService(repo),
		RoleService:       roleservice.NewService(repo),
		EmployeeService:   employeeservice.NewService(repo),
	}
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Logger returns the logger operations report to
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close releases the store connection.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
