package main

import (
	"planit-api/core/logger"
	"planit-api/core/server"
)

// @title PlanIt API
// @version 1.0
// @description API backend for PlanIt, a planning app with team meeting-time suggestions

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:7070
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Example: "Bearer {token}"

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
