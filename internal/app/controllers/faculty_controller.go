package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/collegehub/collegehub/internal/app/models"
	"github.com/collegehub/collegehub/internal/app/models/dto"
	"github.com/collegehub/collegehub/internal/app/services"
	"github.com/collegehub/collegehub/internal/middleware"
)

// FacultyController handles faculty member operations
type FacultyController struct {
	facultyService services.FacultyService
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService services.FacultyService) *FacultyController {
	return &FacultyController{
		facultyService: facultyService,
	}
}

// CreateFaculty handles faculty member creation
func (c *FacultyController) CreateFaculty(ctx *gin.Context) {
	var faculty models.Faculty
	if err := ctx.ShouldBindJSON(&faculty); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid faculty data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.facultyService.CreateFaculty(ctx.Request.Context(), &faculty); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(faculty))
}

// GetAllFaculty retrieves faculty members, optionally filtered by department
func (c *FacultyController) GetAllFaculty(ctx *gin.Context) {
	if departmentID := ctx.Query("departmentId"); departmentID != "" {
		faculty, err := c.facultyService.GetFacultyByDepartment(ctx.Request.Context(), departmentID)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.NewAPIResponse(faculty))
		return
	}

	faculty, err := c.facultyService.GetAllFaculty(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(faculty))
}

// GetFacultyByID retrieves a faculty member by document id
func (c *FacultyController) GetFacultyByID(ctx *gin.Context) {
	faculty, err := c.facultyService.GetFacultyByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(faculty))
}

// GetFacultyByFacultyID retrieves a faculty member by institutional id
func (c *FacultyController) GetFacultyByFacultyID(ctx *gin.Context) {
	faculty, err := c.facultyService.GetFacultyByFacultyID(ctx.Request.Context(), ctx.Param("facultyId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(faculty))
}

// UpdateFaculty replaces an existing faculty record
func (c *FacultyController) UpdateFaculty(ctx *gin.Context) {
	var faculty models.Faculty
	if err := ctx.ShouldBindJSON(&faculty); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid faculty data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.facultyService.UpdateFaculty(ctx.Request.Context(), ctx.Param("id"), &faculty); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(faculty))
}

// DeleteFaculty removes a faculty record
func (c *FacultyController) DeleteFaculty(ctx *gin.Context) {
	if err := c.facultyService.DeleteFaculty(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Faculty member deleted"))
}

// AssignCourse records a teaching assignment for the faculty member
func (c *FacultyController) AssignCourse(ctx *gin.Context) {
	if err := c.facultyService.AssignCourse(ctx.Request.Context(), ctx.Param("id"), ctx.Param("courseId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Course assigned"))
}

// RemoveCourseAssignment removes a teaching assignment
func (c *FacultyController) RemoveCourseAssignment(ctx *gin.Context) {
	if err := c.facultyService.RemoveCourseAssignment(ctx.Request.Context(), ctx.Param("id"), ctx.Param("courseId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Course assignment removed"))
}
