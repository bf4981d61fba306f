package http

import (
	"net/http"
	"strings"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// actorContextKey is where the auth middleware stashes the verified actor.
const actorContextKey = "marketplace.actor"

// BearerAuth verifies the Authorization header through the identity port and
// stores the authenticated actor in the request context. Requests without a
// valid token never reach a handler.
func BearerAuth(provider ports.IdentityProvider) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				return ctx.JSON(http.StatusUnauthorized, errorResponse{
					Code:    http.StatusUnauthorized,
					Message: "missing bearer token",
				})
			}

			authenticated, err := provider.Verify(ctx.Request().Context(), token)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, errorResponse{
					Code:    http.StatusUnauthorized,
					Message: "invalid bearer token",
				})
			}

			ctx.Set(actorContextKey, authenticated)
			return next(ctx)
		}
	}
}

// actorFromContext retrieves the actor stored by BearerAuth.
func actorFromContext(ctx echo.Context) (actor.Actor, bool) {
	authenticated, ok := ctx.Get(actorContextKey).(actor.Actor)
	return authenticated, ok
}
