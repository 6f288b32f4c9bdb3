package inbox

import (
	"planit-api/core/config"
	"planit-api/core/middleware"
	"planit-api/modules/inbox/controller"
	"planit-api/modules/inbox/router"
	"planit-api/modules/inbox/service"

	"github.com/labstack/echo/v4"
)

// Init wires the inbox module and registers its routes. The token
// provider comes from the auth module's stored Google OAuth tokens.
func Init(e *echo.Echo, tokens service.TokenProvider, mw *middleware.Middleware) {
	cfg := config.Get()

	gmail := service.NewGmailClient()
	extractor := service.NewHTTPEventExtractor(cfg.Extractor)
	svc := service.NewInboxService(tokens, gmail, extractor)
	ctrl := controller.NewInboxController(svc)
	rtr := router.NewInboxRouter(ctrl)

	rtr.Setup(e, mw)
}
