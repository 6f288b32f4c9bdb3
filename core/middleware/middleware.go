package middleware

import (
	"strings"

	"planit-api/core/cache"
	"planit-api/core/constants"
	"planit-api/core/controller"
	"planit-api/core/errors"
	"planit-api/core/utils"

	"github.com/labstack/echo/v4"
)

// Middleware bundles the request middlewares that need configuration.
type Middleware struct {
	jwtSecret string
	cache     *cache.Cache
	base      controller.BaseController
}

func New(jwtSecret string, c *cache.Cache) *Middleware {
	return &Middleware{
		jwtSecret: jwtSecret,
		cache:     c,
		base:      controller.NewBaseController(),
	}
}

// AuthMiddleware validates the Bearer token, rejects blacklisted tokens and
// stores the parsed claims on the request context.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return m.base.Unauthorized(errors.ErrMissingAuthorizationHeader, "Authorization header is required")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return m.base.Unauthorized(errors.ErrInvalidTokenFormat, "Authorization header must be a Bearer token")
			}
			token := parts[1]

			if m.cache != nil && m.cache.IsTokenBlacklisted(c.Request().Context(), token) {
				return m.base.Unauthorized(errors.ErrTokenExpired, "Token has been revoked")
			}

			claims, err := utils.ParseAccessToken(m.jwtSecret, token)
			if err != nil {
				return m.base.Unauthorized(errors.ErrTokenExpired, "Invalid or expired token")
			}

			c.Set(constants.ContextTokenData, claims)
			return next(c)
		}
	}
}
