package controllers

import (
	"board-guard/backend/app/services"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

func writeJSONError(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]string{"error": msg})
}

// writeServiceError maps service errors onto HTTP statuses. Unknown errors are
// reported as 500 without leaking their text.
func writeServiceError(c echo.Context, err error) error {
	var status int
	switch {
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrPermissionDenied):
		status = http.StatusForbidden
	case errors.Is(err, services.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, services.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	default:
		return writeJSONError(c, http.StatusInternalServerError, "internal server error")
	}
	return writeJSONError(c, status, err.Error())
}

func paramID(c echo.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
