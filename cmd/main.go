package main

import (
	"go.uber.org/fx"

	"twotier-webapp/internal/config"
	deliveryhttp "twotier-webapp/internal/delivery/http"
	"twotier-webapp/internal/infrastructure/database"
	"twotier-webapp/internal/infrastructure/logger"
	"twotier-webapp/internal/infrastructure/repository"
	"twotier-webapp/internal/server"
	"twotier-webapp/internal/usecase"
)

func main() {
	fx.New(
		// Configuration
		config.Module,

		// Infrastructure
		logger.Module,
		database.Module,
		repository.Module,

		// Business Logic
		usecase.Module,

		// Delivery
		deliveryhttp.Module,

		// Server
		server.Module,
	).Run()
}
