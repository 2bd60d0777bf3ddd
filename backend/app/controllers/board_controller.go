package controllers

import (
	"board-guard/backend/app/dto"
	"board-guard/backend/app/middleware"
	"board-guard/backend/app/services"
	"net/http"

	"github.com/labstack/echo/v4"
)

// BoardController expects RequireAuth in front of every route and
// RequireRole("admin") in front of Remove.
type BoardController struct{ Boards *services.BoardService }

func NewBoardController(boards *services.BoardService) *BoardController {
	return &BoardController{Boards: boards}
}

// Create POST /boards
func (b *BoardController) Create(c echo.Context) error {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return writeJSONError(c, http.StatusUnauthorized, "unauthorized")
	}
	var req dto.CreateBoardRequest
	if err := c.Bind(&req); err != nil {
		return writeJSONError(c, http.StatusBadRequest, "invalid payload")
	}
	board, err := b.Boards.Create(c.Request().Context(), req, claims.Identity().UserID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, board)
}

// FindAll GET /boards
func (b *BoardController) FindAll(c echo.Context) error {
	boards, err := b.Boards.FindAll(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, boards)
}

// FindOne GET /boards/:id
func (b *BoardController) FindOne(c echo.Context) error {
	id, ok := paramID(c)
	if !ok {
		return writeJSONError(c, http.StatusBadRequest, "invalid board id")
	}
	board, err := b.Boards.FindOne(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, board)
}

// Update PATCH /boards/:id
func (b *BoardController) Update(c echo.Context) error {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return writeJSONError(c, http.StatusUnauthorized, "unauthorized")
	}
	id, ok := paramID(c)
	if !ok {
		return writeJSONError(c, http.StatusBadRequest, "invalid board id")
	}
	var req dto.UpdateBoardRequest
	if err := c.Bind(&req); err != nil {
		return writeJSONError(c, http.StatusBadRequest, "invalid payload")
	}
	board, err := b.Boards.Update(c.Request().Context(), id, req, claims.Identity().UserID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, board)
}

// Remove DELETE /boards/:id
func (b *BoardController) Remove(c echo.Context) error {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return writeJSONError(c, http.StatusUnauthorized, "unauthorized")
	}
	id, ok := paramID(c)
	if !ok {
		return writeJSONError(c, http.StatusBadRequest, "invalid board id")
	}
	if err := b.Boards.Remove(c.Request().Context(), id, claims.Identity().UserID); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
