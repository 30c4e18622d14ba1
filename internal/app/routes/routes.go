package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaganm/classpulse/internal/app/controllers"
	"github.com/kaganm/classpulse/internal/app/models"
	"github.com/kaganm/classpulse/internal/middleware"
)

// Controllers holds the controller instances the router needs
type Controllers struct {
	Auth     *controllers.AuthController
	Student  *controllers.StudentController
	Progress *controllers.ProgressController
	Feedback *controllers.FeedbackController
	Admin    *controllers.AdminController
}

// SetupRoutes registers all API routes on the given engine. Write access to
// progress and feedback is teacher-only; those routes carry no ownership
// middleware because the :id there names an entry, not a student.
func SetupRoutes(router *gin.Engine, ctrl Controllers, authMw *middleware.AuthMiddleware) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/login", ctrl.Auth.Login)
		auth.POST("/signup/teacher", ctrl.Auth.SignupTeacher)
		auth.POST("/signup/parent", ctrl.Auth.SignupParent)
		auth.GET("/verify-email/:token", ctrl.Auth.VerifyEmail)
	}

	protected := v1.Group("")
	protected.Use(authMw.Authenticate())
	{
		protected.GET("/profile", ctrl.Auth.GetProfile)

		students := protected.Group("/students")
		{
			students.GET("", ctrl.Student.List)
			students.GET("/:id", authMw.RestrictParentToOwnChild(), ctrl.Student.Get)
			students.POST("", authMw.RequireRole(models.RoleTeacher), ctrl.Student.Create)
			students.PUT("/:id", authMw.RequireRole(models.RoleTeacher), ctrl.Student.Update)
		}

		progress := protected.Group("/progress")
		{
			progress.GET("/student/:studentId", authMw.RestrictParentToOwnChild(), ctrl.Progress.GetByStudent)
			progress.POST("", authMw.RequireRole(models.RoleTeacher), ctrl.Progress.Create)
			progress.PUT("/:id", authMw.RequireRole(models.RoleTeacher), ctrl.Progress.Update)
		}

		feedback := protected.Group("/feedback")
		{
			feedback.GET("/student/:studentId", authMw.RestrictParentToOwnChild(), ctrl.Feedback.GetByStudent)
			feedback.POST("", authMw.RequireRole(models.RoleTeacher), ctrl.Feedback.Create)
			feedback.PUT("/:id", authMw.RequireRole(models.RoleTeacher), ctrl.Feedback.Update)
		}

		admin := protected.Group("/admin")
		admin.Use(authMw.RequireRole(models.RoleAdmin))
		{
			admin.GET("/pending", ctrl.Admin.GetPendingUsers)
			admin.POST("/approve", ctrl.Admin.Approve)
			admin.POST("/reject", ctrl.Admin.Reject)
		}
	}
}
