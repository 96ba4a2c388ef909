package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/collegehub/collegehub/internal/app/models"
	"github.com/collegehub/collegehub/internal/app/models/dto"
	"github.com/collegehub/collegehub/internal/app/services"
	"github.com/collegehub/collegehub/internal/middleware"
	"github.com/collegehub/collegehub/internal/pkg/apperrors"
)

// AdminController handles admin account management
type AdminController struct {
	adminService services.AdminService
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService services.AdminService) *AdminController {
	return &AdminController{
		adminService: adminService,
	}
}

// CreateAdmin registers a new admin account. The request body is bound and
// validated by middleware.ValidateRequest on the route.
func (c *AdminController) CreateAdmin(ctx *gin.Context) {
	req, ok := middleware.ValidatedBody[dto.CreateAdminRequest](ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrBadRequest)
		return
	}

	admin := &models.Admin{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
	}

	if err := c.adminService.CreateAdmin(ctx.Request.Context(), admin, req.Password); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(admin))
}

// GetAllAdmins lists admin accounts
func (c *AdminController) GetAllAdmins(ctx *gin.Context) {
	admins, err := c.adminService.GetAllAdmins(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(admins))
}

// GetAdminByID retrieves an admin account by document id
func (c *AdminController) GetAdminByID(ctx *gin.Context) {
	admin, err := c.adminService.GetAdminByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(admin))
}
