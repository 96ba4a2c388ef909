package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/collegehub/collegehub/internal/app/models"
	"github.com/collegehub/collegehub/internal/app/models/dto"
	"github.com/collegehub/collegehub/internal/app/services"
	"github.com/collegehub/collegehub/internal/middleware"
)

// CourseController handles course catalog and roster operations
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// CreateCourse handles course creation
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var course models.Course
	if err := ctx.ShouldBindJSON(&course); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.courseService.CreateCourse(ctx.Request.Context(), &course); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(course))
}

// GetAllCourses retrieves courses, optionally filtered by department or
// instructor
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	reqCtx := ctx.Request.Context()

	var (
		courses []models.Course
		err     error
	)
	switch {
	case ctx.Query("departmentId") != "":
		courses, err = c.courseService.GetCoursesByDepartment(reqCtx, ctx.Query("departmentId"))
	case ctx.Query("facultyId") != "":
		courses, err = c.courseService.GetCoursesByFaculty(reqCtx, ctx.Query("facultyId"))
	default:
		courses, err = c.courseService.GetAllCourses(reqCtx)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courses))
}

// GetCourseByID retrieves a course by document id
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	course, err := c.courseService.GetCourseByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(course))
}

// GetCourseByCode retrieves a course by its course code
func (c *CourseController) GetCourseByCode(ctx *gin.Context) {
	course, err := c.courseService.GetCourseByCode(ctx.Request.Context(), ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(course))
}

// UpdateCourse replaces an existing course record
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	var course models.Course
	if err := ctx.ShouldBindJSON(&course); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.courseService.UpdateCourse(ctx.Request.Context(), ctx.Param("id"), &course); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(course))
}

// DeleteCourse removes a course record
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	if err := c.courseService.DeleteCourse(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Course deleted"))
}

// EnrollStudent adds a student to the course roster
func (c *CourseController) EnrollStudent(ctx *gin.Context) {
	if err := c.courseService.EnrollStudent(ctx.Request.Context(), ctx.Param("id"), ctx.Param("studentId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Student enrolled"))
}

// WithdrawStudent removes a student from the course roster
func (c *CourseController) WithdrawStudent(ctx *gin.Context) {
	if err := c.courseService.WithdrawStudent(ctx.Request.Context(), ctx.Param("id"), ctx.Param("studentId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Student withdrawn"))
}

// ReconcileEnrollments rebuilds student enrollment mirrors from course
// rosters
func (c *CourseController) ReconcileEnrollments(ctx *gin.Context) {
	if err := c.courseService.ReconcileEnrollments(ctx.Request.Context()); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Enrollments reconciled"))
}
