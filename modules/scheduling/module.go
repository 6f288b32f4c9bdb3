package scheduling

import (
	"planit-api/core/config"
	"planit-api/core/constants"
	"planit-api/core/database"
	"planit-api/core/middleware"
	"planit-api/modules/scheduling/controller"
	"planit-api/modules/scheduling/repository"
	"planit-api/modules/scheduling/router"
	"planit-api/modules/scheduling/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the scheduling module and registers routes.
// It returns the service so other modules can reuse the engine.
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) service.SchedulingServiceInterface {
	concurrency := constants.DefaultFetchConcurrency
	maxSuggestions := constants.DefaultMaxSuggestions
	if cfg, ok := config.GetSafe(); ok {
		if cfg.Scheduler.FetchConcurrency > 0 {
			concurrency = cfg.Scheduler.FetchConcurrency
		}
		if cfg.Scheduler.MaxSuggestions > 0 {
			maxSuggestions = cfg.Scheduler.MaxSuggestions
		}
	}

	repo := repository.NewScheduleRepository(db)
	fetcher := service.NewFetcher(repo, repo, concurrency)
	svc := service.NewSchedulingService(fetcher, maxSuggestions)
	ctrl := controller.NewSchedulingController(svc)
	rtr := router.NewSchedulingRouter(ctrl)

	rtr.Setup(e, mw)
	return svc
}
