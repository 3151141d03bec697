package application

import (
	"github.com/The-Tech-Tentacles/CampusHub-sub000/internal/repository"
)

type Services struct {
	User        *UserService
	Department  *DepartmentService
	Application *ApplicationService
	Audit       *AuditService
}

func New(repos *repository.Repos) *Services {
	return &Services{
		User:        NewUserService(repos),
		Department:  NewDepartmentService(repos),
		Application: NewApplicationService(repos),
		Audit:       NewAuditService(repos),
	}
}
