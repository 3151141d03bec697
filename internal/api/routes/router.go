package routes

import (
	"github.com/The-Tech-Tentacles/CampusHub-sub000/internal/api/handlers"
	"github.com/The-Tech-Tentacles/CampusHub-sub000/internal/api/middleware"
	"github.com/The-Tech-Tentacles/CampusHub-sub000/internal/application"
	"github.com/The-Tech-Tentacles/CampusHub-sub000/internal/repository"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	repos := repository.NewRepositories(db)
	services := application.New(repos)
	h := handlers.New(services, r)
	authMiddleware := middleware.NewAuth()

	r.POST("/register", h.User.Register)
	r.POST("/login", h.User.Login)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/ws/applications", h.WS.StreamApplications)

		applications := auth.Group("/applications")
		{
			applications.POST("", h.Application.Create)
			applications.GET("", h.Application.List)
			applications.POST("/proof", h.Upload.UploadProof)
			applications.GET("/:id", h.Application.Get)
			applications.PUT("/:id/review", h.Application.Review)
			applications.PUT("/:id/escalate", h.Application.Escalate)
			applications.DELETE("/:id", h.Application.Delete)
		}

		users := auth.Group("/users")
		{
			users.GET("", authMiddleware.Admin(), h.User.GetUsers)
			users.GET("/:id", h.User.GetUserByID)
			users.PUT("/:id/mentor", authMiddleware.Admin(), h.User.AssignMentor)
		}

		departments := auth.Group("/departments")
		{
			departments.GET("", h.Department.List)
			departments.POST("", authMiddleware.Admin(), h.Department.Create)
		}

		audit := auth.Group("/audit/logs")
		{
			audit.GET("", authMiddleware.Admin(), h.Audit.GetAuditLogs)
		}
	}
}
