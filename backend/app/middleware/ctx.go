package middleware

import (
	jwtutil "board-guard/backend/app/jwt"

	"github.com/labstack/echo/v4"
)

const ClaimsKey = "user"

func GetClaims(c echo.Context) *jwtutil.Claims {
	if v := c.Get(ClaimsKey); v != nil {
		if claims, ok := v.(*jwtutil.Claims); ok {
			return claims
		}
	}
	return nil
}
