package controllers

import (
	"board-guard/backend/app/dto"
	jwtutil "board-guard/backend/app/jwt"
	"board-guard/backend/app/services"
	"board-guard/backend/global"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

type AuthController struct {
	Users  *services.UserService
	Signer *jwtutil.Signer
}

func NewAuthController(users *services.UserService, signer *jwtutil.Signer) *AuthController {
	return &AuthController{Users: users, Signer: signer}
}

// Signup POST /auth/signup
func (a *AuthController) Signup(c echo.Context) error {
	var req dto.SignupRequest
	if err := c.Bind(&req); err != nil {
		return writeJSONError(c, http.StatusBadRequest, "invalid payload")
	}
	u, err := a.Users.Create(c.Request().Context(), req)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, u)
}

// Login POST /auth/login
func (a *AuthController) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil || req.Username == "" || req.Password == "" {
		return writeJSONError(c, http.StatusBadRequest, "missing credentials")
	}
	u, err := a.Users.ValidateCredentials(c.Request().Context(), req.Username, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		return writeJSONError(c, http.StatusUnauthorized, "invalid credentials")
	}
	if err != nil {
		return writeServiceError(c, err)
	}
	token, err := a.Signer.Sign(jwtutil.Identity{UserID: u.ID, Username: u.Username, Role: u.Role})
	if err != nil {
		global.Logger.Error().Err(err).Str("username", u.Username).Msg("failed to sign token")
		return writeJSONError(c, http.StatusInternalServerError, "token error")
	}
	return c.JSON(http.StatusOK, dto.TokenResponse{AccessToken: token})
}
