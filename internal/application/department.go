package application

import (
	"errors"

	"github.com/The-Tech-Tentacles/CampusHub-sub000/internal/domain/department"
	"github.com/The-Tech-Tentacles/CampusHub-sub000/internal/repository"
	"github.com/The-Tech-Tentacles/CampusHub-sub000/pkg/apperr"
	"gorm.io/gorm"
)

type DepartmentService struct {
	Repos *repository.Repos
}

func NewDepartmentService(repos *repository.Repos) *DepartmentService {
	return &DepartmentService{Repos: repos}
}

func (s *DepartmentService) ListDepartments() ([]department.Department, error) {
	return s.Repos.Department.ListDepartments()
}

func (s *DepartmentService) CreateDepartment(name, code string) (*department.Department, error) {
	if name == "" || code == "" {
		return nil, apperr.Validation("name and code are required")
	}
	_, err := s.Repos.Department.GetDepartmentByCode(code)
	if err == nil {
		return nil, apperr.Conflict("department code %q already exists", code)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	d := &department.Department{Name: name, Code: code}
	if err := s.Repos.Department.SaveDepartment(d); err != nil {
		return nil, err
	}
	return d, nil
}
