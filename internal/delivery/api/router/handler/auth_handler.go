// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"taskman/internal/delivery/api/middleware"
	"taskman/internal/delivery/api/response"
	domainerrors "taskman/internal/domain/errors"
	"taskman/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC  usecase.AuthUsecase
	ResetUC usecase.PasswordResetUsecase
	Logger  *slog.Logger
}

// AuthHandler serves registration, login and password reset.
type AuthHandler struct {
	authUC  usecase.AuthUsecase
	resetUC usecase.PasswordResetUsecase
	logger  *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:  params.AuthUC,
		resetUC: params.ResetUC,
		logger:  params.Logger,
	}
}

// SignupRequest represents the request body for registering an account
type SignupRequest struct {
	FirstName string `json:"first_name" validate:"required,personname"`
	LastName  string `json:"last_name" validate:"required,personname"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
}

// EmailRequest carries only an email address.
type EmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// CodeRequest carries an email and the code mailed to it.
type CodeRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdatePasswordRequest represents the final step of a password reset.
type UpdatePasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	ResetToken  string `json:"reset_token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

// bind decodes and validates the request body into req.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return c.Validate(req)
}

// Signup registers an unverified account and mails its confirmation code.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.authUC.Register(c.Request().Context(), &usecase.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, newUserResponse(output.User))
}

// VerifyEmail confirms an account with its mailed code.
func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	var req CodeRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.authUC.VerifyEmail(c.Request().Context(), req.Email, req.Code); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Email verified")
}

// ResendCode mails a fresh confirmation code.
func (h *AuthHandler) ResendCode(c echo.Context) error {
	var req EmailRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.authUC.ResendCode(c.Request().Context(), req.Email); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Confirmation code sent")
}

// Login exchanges credentials for a token pair.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	pair, err := h.authUC.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newTokenResponse(pair))
}

// Logout revokes the bearer access token.
func (h *AuthHandler) Logout(c echo.Context) error {
	token, ok := middleware.BearerToken(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrBadToken)
	}

	if err := h.authUC.Logout(c.Request().Context(), token); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Logged out")
}

// RefreshToken rotates the bearer refresh token into a new pair.
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	token, ok := middleware.BearerToken(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrRefreshTokenInvalid)
	}

	pair, err := h.authUC.RefreshAccessToken(c.Request().Context(), token)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newTokenResponse(pair))
}

// ForgotPassword mails a reset code to a verified account.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req EmailRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.resetUC.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Password reset code sent")
}

// VerifyCode checks a reset code and returns the token needed by UpdatePassword.
func (h *AuthHandler) VerifyCode(c echo.Context) error {
	var req CodeRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	resetToken, err := h.resetUC.VerifyResetCode(c.Request().Context(), req.Email, req.Code)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ResetTokenResponse{ResetToken: resetToken})
}

// UpdatePassword stores a new password after a verified reset.
func (h *AuthHandler) UpdatePassword(c echo.Context) error {
	var req UpdatePasswordRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	err := h.resetUC.UpdatePassword(c.Request().Context(), &usecase.UpdatePasswordInput{
		Email:      req.Email,
		ResetToken: req.ResetToken,
		Password:   req.NewPassword,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Password updated")
}
