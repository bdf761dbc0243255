package handlers

import (
	"toolroom/internal/app"
	"toolroom/internal/handlers/middleware"
	"toolroom/internal/logger"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	middleware middleware.Middleware
	log        logger.Logger
	router     fiber.Router
}

func Router(router fiber.Router, app *app.App) (err error) {
	api := router.Group("/api")
	HealthHandler(api, app.Config)
	NewMaintenanceHandler(*app, api).Register()
	NewMachineHandler(*app, api).Register()
	NewEmployeeHandler(*app, api).Register()

	return nil
}
