package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"twotier-webapp/internal/config"
	"twotier-webapp/internal/delivery/http/handler"
)

type Router struct {
	app           *fiber.App
	config        *config.Config
	userHandler   *handler.UserHandler
	logHandler    *handler.LogHandler
	healthHandler *handler.HealthHandler
	infoHandler   *handler.InfoHandler
}

func NewRouter(
	cfg *config.Config,
	userHandler *handler.UserHandler,
	logHandler *handler.LogHandler,
	healthHandler *handler.HealthHandler,
	infoHandler *handler.InfoHandler,
) *Router {
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: customErrorHandler,
	})

	return &Router{
		app:           app,
		config:        cfg,
		userHandler:   userHandler,
		logHandler:    logHandler,
		healthHandler: healthHandler,
		infoHandler:   infoHandler,
	}
}

func (r *Router) Setup() *fiber.App {
	// Middleware
	r.app.Use(recover.New())
	r.app.Use(requestid.New())
	r.app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))

	if r.config.IsDevelopment() {
		r.app.Use(logger.New(logger.Config{
			Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
		}))
	}

	r.app.Get("/", r.infoHandler.Home)
	r.app.Get("/health", r.healthHandler.Health)
	r.app.Get("/info", r.infoHandler.Info)

	// User resource
	r.app.Get("/users", r.userHandler.GetUsers)
	r.app.Post("/users", r.userHandler.CreateUser)
	r.app.Get("/users/:id", r.userHandler.GetUser)
	r.app.Put("/users/:id", r.userHandler.UpdateUser)
	r.app.Delete("/users/:id", r.userHandler.DeleteUser)

	// Audit log resource (read only)
	r.app.Get("/logs", r.logHandler.GetLogs)

	return r.app
}

func (r *Router) GetApp() *fiber.App {
	return r.app
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
