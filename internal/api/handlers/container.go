package handlers

import (
	svc "github.com/The-Tech-Tentacles/CampusHub-sub000/internal/application"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	User        *UserHandler
	Department  *DepartmentHandler
	Application *ApplicationHandler
	Upload      *UploadHandler
	Audit       *AuditHandler
	WS          *WSHandler
	Router      *gin.Engine
}

func New(services *svc.Services, router *gin.Engine) *Handlers {
	return &Handlers{
		User:        NewUserHandler(services.User),
		Department:  NewDepartmentHandler(services.Department),
		Application: NewApplicationHandler(services.Application),
		Upload:      NewUploadHandler(),
		Audit:       NewAuditHandler(services.Audit),
		WS:          NewWSHandler(services.Application),
		Router:      router,
	}
}
