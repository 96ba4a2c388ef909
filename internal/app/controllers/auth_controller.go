package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/collegehub/collegehub/internal/app/models/dto"
	"github.com/collegehub/collegehub/internal/app/services"
	"github.com/collegehub/collegehub/internal/middleware"
	"github.com/collegehub/collegehub/internal/pkg/apperrors"
)

// AuthController handles login, logout and session introspection for the
// admin surface. The session id is an opaque random value; the browser
// only ever sees the cookie, never the principal.
type AuthController struct {
	authService  services.AuthService
	adminService services.AdminService
	cookieName   string
	cookieSecure bool
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, adminService services.AdminService, cookieName string, cookieSecure bool) *AuthController {
	return &AuthController{
		authService:  authService,
		adminService: adminService,
		cookieName:   cookieName,
		cookieSecure: cookieSecure,
	}
}

// Login validates credentials and establishes a session cookie
func (c *AuthController) Login(ctx *gin.Context) {
	req, ok := middleware.ValidatedBody[dto.LoginRequest](ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrBadRequest)
		return
	}

	// A fresh id per login attempt; stale cookies never resurrect a session
	sessionID := uuid.NewString()

	if !c.authService.Login(ctx.Request.Context(), sessionID, req.Username, req.Password) {
		middleware.HandleAPIError(ctx, apperrors.ErrInvalidCredentials)
		return
	}

	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.cookieName, sessionID, 0, "/", "", c.cookieSecure, true)

	principal := c.authService.CurrentPrincipal(ctx.Request.Context(), sessionID)
	if principal == nil {
		middleware.HandleAPIError(ctx, apperrors.ErrInvalidCredentials)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.PrincipalResponse{
		ID:       principal.ID,
		Username: principal.Username,
		FullName: principal.FullName,
		Role:     principal.Role,
	}))
}

// Logout clears the session and drops the cookie. Safe to call without an
// active session.
func (c *AuthController) Logout(ctx *gin.Context) {
	if sessionID, err := ctx.Cookie(c.cookieName); err == nil && sessionID != "" {
		c.authService.Logout(ctx.Request.Context(), sessionID)
	}

	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.cookieName, "", -1, "/", "", c.cookieSecure, true)

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Logged out"))
}

// Me returns the principal bound to the current session
func (c *AuthController) Me(ctx *gin.Context) {
	principal := middleware.PrincipalFromContext(ctx)
	if principal == nil {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.PrincipalResponse{
		ID:       principal.ID,
		Username: principal.Username,
		FullName: principal.FullName,
		Role:     principal.Role,
	}))
}

// ChangePassword updates the current admin's password after verifying the
// existing one
func (c *AuthController) ChangePassword(ctx *gin.Context) {
	principal := middleware.PrincipalFromContext(ctx)
	if principal == nil {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	req, ok := middleware.ValidatedBody[dto.ChangePasswordRequest](ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrBadRequest)
		return
	}

	if err := c.adminService.ChangePassword(ctx.Request.Context(), principal.ID, req.CurrentPassword, req.NewPassword); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Password updated"))
}
