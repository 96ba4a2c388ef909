package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/collegehub/collegehub/internal/app/models"
	"github.com/collegehub/collegehub/internal/app/models/dto"
	"github.com/collegehub/collegehub/internal/app/services"
	"github.com/collegehub/collegehub/internal/middleware"
)

// DepartmentController handles department operations
type DepartmentController struct {
	departmentService services.DepartmentService
}

// NewDepartmentController creates a new DepartmentController
func NewDepartmentController(departmentService services.DepartmentService) *DepartmentController {
	return &DepartmentController{
		departmentService: departmentService,
	}
}

// CreateDepartment handles department creation
func (c *DepartmentController) CreateDepartment(ctx *gin.Context) {
	var department models.Department
	if err := ctx.ShouldBindJSON(&department); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid department data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.departmentService.CreateDepartment(ctx.Request.Context(), &department); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(department))
}

// GetAllDepartments retrieves all departments
func (c *DepartmentController) GetAllDepartments(ctx *gin.Context) {
	departments, err := c.departmentService.GetAllDepartments(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(departments))
}

// GetDepartmentByID retrieves a department by document id
func (c *DepartmentController) GetDepartmentByID(ctx *gin.Context) {
	department, err := c.departmentService.GetDepartmentByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(department))
}

// GetDepartmentByCode retrieves a department by its code
func (c *DepartmentController) GetDepartmentByCode(ctx *gin.Context) {
	department, err := c.departmentService.GetDepartmentByCode(ctx.Request.Context(), ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(department))
}

// UpdateDepartment replaces an existing department record
func (c *DepartmentController) UpdateDepartment(ctx *gin.Context) {
	var department models.Department
	if err := ctx.ShouldBindJSON(&department); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid department data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.departmentService.UpdateDepartment(ctx.Request.Context(), ctx.Param("id"), &department); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(department))
}

// DeleteDepartment removes a department record
func (c *DepartmentController) DeleteDepartment(ctx *gin.Context) {
	if err := c.departmentService.DeleteDepartment(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Department deleted"))
}

// AddFaculty adds a faculty member to the department membership list
func (c *DepartmentController) AddFaculty(ctx *gin.Context) {
	if err := c.departmentService.AddFaculty(ctx.Request.Context(), ctx.Param("id"), ctx.Param("facultyId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Faculty member added to department"))
}

// RemoveFaculty removes a faculty member from the department membership list
func (c *DepartmentController) RemoveFaculty(ctx *gin.Context) {
	if err := c.departmentService.RemoveFaculty(ctx.Request.Context(), ctx.Param("id"), ctx.Param("facultyId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Faculty member removed from department"))
}

// AddCourse adds a course to the department course list
func (c *DepartmentController) AddCourse(ctx *gin.Context) {
	if err := c.departmentService.AddCourse(ctx.Request.Context(), ctx.Param("id"), ctx.Param("courseId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Course added to department"))
}

// RemoveCourse removes a course from the department course list
func (c *DepartmentController) RemoveCourse(ctx *gin.Context) {
	if err := c.departmentService.RemoveCourse(ctx.Request.Context(), ctx.Param("id"), ctx.Param("courseId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Course removed from department"))
}
