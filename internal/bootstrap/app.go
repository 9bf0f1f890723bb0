package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "studio-backend/internal/auth"
	"studio-backend/internal/files"
	"studio-backend/internal/projects"
	"studio-backend/internal/shared/config"
	"studio-backend/internal/shared/server"
	"studio-backend/internal/shared/storage/db"
	"studio-backend/internal/teams"
	"studio-backend/internal/users"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	TeamsRepo    teams.Repo
	ProjectsRepo projects.Repo
	FilesRepo    files.Repo
	UsersRepo    users.Repo

	TeamsService    *teams.Service
	ProjectsService *projects.Service
	FilesService    *files.Service
	UsersService    *users.Service

	TeamsHandler    *teams.Handler
	ProjectsHandler *projects.Handler
	FilesHandler    *files.Handler
	UsersHandler    *users.Handler
	GoogleAuth      *googleauth.GoogleService
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
	}

	buildRepos(app)
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:         app.Config,
		TeamsHandler:   app.TeamsHandler,
		ProjectHandler: app.ProjectsHandler,
		FilesHandler:   app.FilesHandler,
		UsersHandler:   app.UsersHandler,
		GoogleAuth:     app.GoogleAuth,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildRepos(app *App) {
	if app.DB != nil {
		app.TeamsRepo = &teams.PGRepo{DB: app.DB}
		app.ProjectsRepo = &projects.PGRepo{DB: app.DB}
		app.FilesRepo = &files.PGRepo{DB: app.DB}
		app.UsersRepo = &users.PGRepo{DB: app.DB}
		return
	}
	filesRepo := files.NewMemoryRepo()
	app.TeamsRepo = teams.NewMemoryRepo()
	app.ProjectsRepo = projects.NewMemoryRepo(filesRepo)
	app.FilesRepo = filesRepo
	app.UsersRepo = users.NewMemoryRepo()
}

func buildServices(app *App) {
	app.TeamsService = teams.NewService(app.TeamsRepo)
	app.ProjectsService = projects.NewService(app.ProjectsRepo, app.TeamsService)
	app.FilesService = &files.Service{Repo: app.FilesRepo, Projects: app.ProjectsService}
	app.UsersService = users.NewService(app.UsersRepo)

	app.TeamsHandler = teams.NewHandler(app.TeamsService)
	app.ProjectsHandler = projects.NewHandler(app.ProjectsService)
	app.FilesHandler = files.NewHandler(app.FilesService)
	app.UsersHandler = users.NewHandler(app.UsersService)
	app.GoogleAuth = googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		app.UsersService,
	)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "development", "local", "test":
		return true
	default:
		return false
	}
}
