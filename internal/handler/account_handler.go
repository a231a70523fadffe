package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"viewify/internal/auth"
	"viewify/internal/errors"
	"viewify/internal/model"
)

// AccountHandler handles the signed-in account settings endpoints. The
// echo-jwt middleware in front only checks the signature; revocation lives
// in the session store, so each handler resolves the session itself.
type AccountHandler struct {
	authService auth.Service
}

// NewAccountHandler creates a new account handler.
func NewAccountHandler(authService auth.Service) *AccountHandler {
	return &AccountHandler{authService: authService}
}

// UpdateUserRequest represents a display-name update.
type UpdateUserRequest struct {
	Name string `json:"name" validate:"required"`
}

// ChangePasswordRequest represents a password change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

// DeleteAccountRequest confirms deletion with the current password.
type DeleteAccountRequest struct {
	Password string `json:"password" validate:"required"`
}

func (h *AccountHandler) sessionUserID(c echo.Context) (string, error) {
	session, err := h.authService.GetSession(c.Request().Context(), c.Request().Header)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return "", echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if session == nil {
		return "", echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "session revoked or expired",
			Code:  "UNAUTHORIZED",
		})
	}
	return session.UserID, nil
}

// UpdateUser godoc
// @Summary Update display name
// @Tags account
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateUserRequest true "New name"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /account [patch]
func (h *AccountHandler) UpdateUser(c echo.Context) error {
	userID, err := h.sessionUserID(c)
	if err != nil {
		return err
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	var user *model.User
	if user, err = h.authService.UpdateUser(c.Request().Context(), userID, req.Name); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, user)
}

// ChangePassword godoc
// @Summary Change password
// @Tags account
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChangePasswordRequest true "Password change"
// @Success 204 "password changed"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /account/password [post]
func (h *AccountHandler) ChangePassword(c echo.Context) error {
	userID, err := h.sessionUserID(c)
	if err != nil {
		return err
	}

	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	if err := h.authService.ChangePassword(c.Request().Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		if err == auth.ErrInvalidCredentials {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: err.Error(),
				Code:  "INVALID_CREDENTIALS",
			})
		}
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteAccount godoc
// @Summary Delete account
// @Tags account
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body DeleteAccountRequest true "Confirmation"
// @Success 204 "account deleted"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /account [delete]
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	userID, err := h.sessionUserID(c)
	if err != nil {
		return err
	}

	var req DeleteAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	if err := h.authService.DeleteUser(c.Request().Context(), userID, req.Password); err != nil {
		if err == auth.ErrInvalidCredentials {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: err.Error(),
				Code:  "INVALID_CREDENTIALS",
			})
		}
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}
