package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio/internal/auth"
	"portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/service"
)

// AuthHandler handles the /auth endpoints. All five operations share the
// path; the HTTP method selects the operation, matching the original API.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents an admin login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordRequest represents a password change for the session's account.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

// ResetRequestRequest asks for a reset code to be emailed.
type ResetRequestRequest struct {
	RequestEmail string `json:"requestEmail" validate:"required,email"`
}

// ResetPasswordRequest redeems a reset code for a new password.
type ResetPasswordRequest struct {
	ResetEmail    string `json:"resetEmail" validate:"required,email"`
	ResetCode     string `json:"resetCode" validate:"required,len=6"`
	ResetPassword string `json:"resetPassword" validate:"required,min=8"`
}

// UserResponse is the public projection of a user row.
type UserResponse struct {
	ID       uint    `json:"id"`
	Email    string  `json:"email"`
	Name     string  `json:"name"`
	ImageURL *string `json:"image_url"`
	IsAdmin  bool    `json:"is_admin"`
}

// LoginResponse carries the authenticated user and the session token.
type LoginResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// MessageResponse is a plain confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

func toUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		Name:     u.Name,
		ImageURL: u.ImageURL,
		IsAdmin:  u.IsAdmin,
	}
}

// tokenClaims returns the claims the JWT middleware stored on the context.
func tokenClaims(c echo.Context) (*auth.Claims, error) {
	claims, ok := c.Get("user").(*auth.Claims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "Invalid token",
			Code:  "INVALID_TOKEN",
		})
	}
	return claims, nil
}

// Me godoc
// @Summary Get the current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth [get]
func (h *AuthHandler) Me(c echo.Context) error {
	claims, err := tokenClaims(c)
	if err != nil {
		return err
	}

	user, err := h.authService.CurrentUser(c.Request().Context(), claims.Email)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Login godoc
// @Summary Admin login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, LoginResponse{
		User:  toUserResponse(user),
		Token: token,
	})
}

// ChangePassword godoc
// @Summary Change the admin password
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChangePasswordRequest true "Current and new password"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth [patch]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	claims, err := tokenClaims(c)
	if err != nil {
		return err
	}

	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.ChangePassword(c.Request().Context(), claims.Email, req.CurrentPassword, req.NewPassword); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Password updated successfully"})
}

// RequestReset godoc
// @Summary Request a password reset code
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ResetRequestRequest true "Account email"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth [put]
func (h *AuthHandler) RequestReset(c echo.Context) error {
	var req ResetRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.RequestPasswordReset(c.Request().Context(), req.RequestEmail); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Reset code sent to your email"})
}

// ResetPassword godoc
// @Summary Reset the admin password with a verification code
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ResetPasswordRequest true "Email, code and new password"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth [delete]
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.ResetPassword(c.Request().Context(), req.ResetEmail, req.ResetCode, req.ResetPassword); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Password reset successfully"})
}
