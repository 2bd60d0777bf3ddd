package router

import (
	"board-guard/backend/app/controllers"
	"board-guard/backend/app/middleware"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

func NewRouter(httpCtrl *controllers.HTTPController, authCtrl *controllers.AuthController, boardCtrl *controllers.BoardController, mw *middleware.Auth) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.Logging)
	e.Use(echomw.Recover())

	// public
	e.GET("/ping", httpCtrl.Ping)
	e.POST("/auth/signup", authCtrl.Signup)
	e.POST("/auth/login", authCtrl.Login)

	// boards: every route needs a valid token, delete also needs the admin role
	boards := e.Group("/boards", mw.RequireAuth())
	boards.POST("", boardCtrl.Create)
	boards.GET("", boardCtrl.FindAll)
	boards.GET("/:id", boardCtrl.FindOne)
	boards.PATCH("/:id", boardCtrl.Update)
	boards.DELETE("/:id", boardCtrl.Remove, mw.RequireRole("admin"))

	return e
}

// errorHandler renders echo errors with the same {"error": ...} body the controllers use.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	status := http.StatusInternalServerError
	msg := http.StatusText(status)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		} else {
			msg = http.StatusText(status)
		}
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, map[string]string{"error": msg})
}
