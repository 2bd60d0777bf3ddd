package middleware

import (
	jwtutil "board-guard/backend/app/jwt"
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

type Auth struct{ Signer *jwtutil.Signer }

// RequireAuth accepts "Authorization: Bearer <token>" signed by Signer and
// stores the parsed *jwtutil.Claims under ClaimsKey.
func (a *Auth) RequireAuth() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: ClaimsKey,
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return a.Signer.Parse(auth)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
		},
	})
}

// RequireRole must run after RequireAuth.
func (a *Auth) RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := GetClaims(c)
			if claims == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}
			if claims.Role != role {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden resource")
			}
			return next(c)
		}
	}
}
