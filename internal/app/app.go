package app

import (
	"context"
	"toolroom/config"
	"toolroom/internal/controllers"
	"toolroom/internal/database"
	"toolroom/internal/handlers/middleware"
	"toolroom/internal/jobs"
	"toolroom/internal/logger"
	"toolroom/internal/repositories"
	"toolroom/internal/services"
)

type App struct {
	Database     database.DB
	Middleware   middleware.Middleware
	Config       config.Config
	Services     services.Service
	Repositories repositories.Repository
	Controllers  controllers.Controllers
}

func New() (*App, error) {
	log := logger.New("app").Function("New")

	config, err := config.InitConfig()
	if err != nil {
		return &App{}, log.Err("failed to initialize config", err)
	}

	db, err := database.New(config)
	if err != nil {
		return &App{}, log.Err("failed to create database", err)
	}

	service, err := services.New(db, config)
	if err != nil {
		return &App{}, log.Err("failed to create services", err)
	}

	repos := repositories.New(db)
	middleware := middleware.New(db, config)
	controllers := controllers.New(service, repos, config, db)

	if config.SchedulerEnabled {
		overdueSweepJob := jobs.NewOverdueSweepJob(repos.Plan, db, services.Hourly)
		if err := service.Scheduler.AddJob(overdueSweepJob); err != nil {
			return &App{}, log.Err("failed to register overdue sweep job", err)
		}
		log.Info("Registered overdue sweep job with scheduler")

		if err := service.Scheduler.Start(context.Background()); err != nil {
			return &App{}, log.Err("failed to start scheduler", err)
		}
	}

	app := &App{
		Database:     db,
		Config:       config,
		Middleware:   middleware,
		Services:     service,
		Repositories: repos,
		Controllers:  controllers,
	}

	if err := app.validate(); err != nil {
		return &App{}, log.Err("failed to validate app", err)
	}

	return app, nil
}

func (a *App) validate() error {
	log := logger.New("app").Function("validate")

	if a.Database.SQL == nil {
		return log.ErrMsg("database is nil")
	}

	if a.Config == (config.Config{}) {
		return log.ErrMsg("config is nil")
	}

	nilChecks := []any{
		a.Services.Transaction,
		a.Services.Scheduler,
		a.Services.BlobStore,
		a.Repositories.Template,
		a.Repositories.Plan,
		a.Repositories.Record,
		a.Repositories.DailyLog,
		a.Repositories.Machine,
		a.Repositories.Employee,
		a.Controllers.Template,
		a.Controllers.Planner,
		a.Controllers.Plan,
		a.Controllers.Report,
		a.Controllers.Machine,
		a.Controllers.Employee,
	}

	for _, check := range nilChecks {
		if check == nil {
			return log.ErrMsg("nil check failed")
		}
	}

	return nil
}

func (a *App) Close() (err error) {
	if a.Services.Scheduler != nil {
		if closeErr := a.Services.Scheduler.Stop(context.Background()); closeErr != nil {
			err = closeErr
		}
	}

	if dbErr := a.Database.Close(); dbErr != nil {
		err = dbErr
	}

	return err
}
