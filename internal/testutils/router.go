package testutils

import (
	"github.com/The-Tech-Tentacles/CampusHub-sub000/internal/api/routes"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.RegisterRoutes(r, db)
	return r
}
