package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type HTTPController struct{}

func NewHTTPController() *HTTPController {
	return &HTTPController{}
}

func (h *HTTPController) Ping(c echo.Context) error {
	return c.String(http.StatusOK, "pong")
}
