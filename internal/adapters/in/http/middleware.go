package http

import (
	"net/http"
	"strings"

	"ecom/internal/core/ports"

	"github.com/labstack/echo/v4"
)

const accountIDContextKey = "accountID"

// NewAuthMiddleware returns echo middleware that requires a bearer access
// token and stores the verified account id in the request context.
func NewAuthMiddleware(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Missing bearer token",
				})
			}

			accountID, err := tokens.VerifyAccess(token)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Invalid or expired token",
				})
			}

			ctx.Set(accountIDContextKey, accountID)
			return next(ctx)
		}
	}
}

// accountIDFromContext returns the id stored by the auth middleware, zero
// when the route is unauthenticated.
func accountIDFromContext(ctx echo.Context) int64 {
	id, _ := ctx.Get(accountIDContextKey).(int64)
	return id
}
