package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/collegehub/collegehub/internal/app/controllers"
	"github.com/collegehub/collegehub/internal/app/models/dto"
	"github.com/collegehub/collegehub/internal/middleware"
)

// LoginPath is where the access gate sends anonymous browser navigations.
const LoginPath = "/api/v1/auth/login"

// SetupRouter configures all application routes. Catalog reads are public;
// every write and every student or admin record sits behind the session
// access gate.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	adminController *controllers.AdminController,
	studentController *controllers.StudentController,
	courseController *controllers.CourseController,
	departmentController *controllers.DepartmentController,
	facultyController *controllers.FacultyController,
	feedbackController *controllers.FeedbackController,
	accessGate *middleware.AccessGate,
) {
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", middleware.ValidateRequest[dto.LoginRequest](), authController.Login)
		auth.POST("/logout", authController.Logout)
	}

	// Catalog reads (public access)
	departments := v1.Group("/departments")
	{
		departments.GET("", departmentController.GetAllDepartments)
		departments.GET("/:id", departmentController.GetDepartmentByID)
		departments.GET("/code/:code", departmentController.GetDepartmentByCode)
	}

	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.GET("/code/:code", courseController.GetCourseByCode)
	}

	faculty := v1.Group("/faculty")
	{
		faculty.GET("", facultyController.GetAllFaculty)
		faculty.GET("/:id", facultyController.GetFacultyByID)
		faculty.GET("/number/:facultyId", facultyController.GetFacultyByFacultyID)
	}

	// Visitors can submit feedback without logging in
	v1.POST("/feedback", feedbackController.SubmitFeedback)

	// --- Admin routes ---
	admin := v1.Group("")
	admin.Use(accessGate.RequireAdmin())
	{
		admin.GET("/auth/me", authController.Me)
		admin.POST("/auth/change-password", middleware.ValidateRequest[dto.ChangePasswordRequest](), authController.ChangePassword)

		admins := admin.Group("/admins")
		{
			admins.GET("", adminController.GetAllAdmins)
			admins.GET("/:id", adminController.GetAdminByID)
			admins.POST("", middleware.ValidateRequest[dto.CreateAdminRequest](), adminController.CreateAdmin)
		}

		students := admin.Group("/students")
		{
			students.GET("", studentController.GetAllStudents)
			students.GET("/:id", studentController.GetStudentByID)
			students.GET("/number/:studentId", studentController.GetStudentByStudentID)
			students.POST("", studentController.CreateStudent)
			students.PUT("/:id", studentController.UpdateStudent)
			students.DELETE("/:id", studentController.DeleteStudent)
		}

		coursesAdmin := admin.Group("/courses")
		{
			coursesAdmin.POST("", courseController.CreateCourse)
			coursesAdmin.PUT("/:id", courseController.UpdateCourse)
			coursesAdmin.DELETE("/:id", courseController.DeleteCourse)
			coursesAdmin.POST("/:id/students/:studentId", courseController.EnrollStudent)
			coursesAdmin.DELETE("/:id/students/:studentId", courseController.WithdrawStudent)
			coursesAdmin.POST("/reconcile-enrollments", courseController.ReconcileEnrollments)
		}

		departmentsAdmin := admin.Group("/departments")
		{
			departmentsAdmin.POST("", departmentController.CreateDepartment)
			departmentsAdmin.PUT("/:id", departmentController.UpdateDepartment)
			departmentsAdmin.DELETE("/:id", departmentController.DeleteDepartment)
			departmentsAdmin.POST("/:id/faculty/:facultyId", departmentController.AddFaculty)
			departmentsAdmin.DELETE("/:id/faculty/:facultyId", departmentController.RemoveFaculty)
			departmentsAdmin.POST("/:id/courses/:courseId", departmentController.AddCourse)
			departmentsAdmin.DELETE("/:id/courses/:courseId", departmentController.RemoveCourse)
		}

		facultyAdmin := admin.Group("/faculty")
		{
			facultyAdmin.POST("", facultyController.CreateFaculty)
			facultyAdmin.PUT("/:id", facultyController.UpdateFaculty)
			facultyAdmin.DELETE("/:id", facultyController.DeleteFaculty)
			facultyAdmin.POST("/:id/courses/:courseId", facultyController.AssignCourse)
			facultyAdmin.DELETE("/:id/courses/:courseId", facultyController.RemoveCourseAssignment)
		}

		feedback := admin.Group("/feedback")
		{
			feedback.GET("", feedbackController.GetAllFeedback)
			feedback.POST("/:id/resolve", feedbackController.MarkResolved)
			feedback.DELETE("/:id", feedbackController.DeleteFeedback)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewAPIResponse(gin.H{"status": "ok"}))
	})
}
