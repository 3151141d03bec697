package repository

import (
	"github.com/The-Tech-Tentacles/CampusHub-sub000/internal/domain/department"
	"gorm.io/gorm"
)

type DepartmentRepo interface {
	GetDepartmentByID(id uint) (department.Department, error)
	GetDepartmentByCode(code string) (department.Department, error)
	ListDepartments() ([]department.Department, error)
	SaveDepartment(d *department.Department) error
	WithTx(tx *gorm.DB) DepartmentRepo
}

type DBDepartmentRepo struct {
	db *gorm.DB
}

func NewDepartmentRepo(db *gorm.DB) *DBDepartmentRepo {
	return &DBDepartmentRepo{db: db}
}

func (r *DBDepartmentRepo) GetDepartmentByID(id uint) (department.Department, error) {
	var d department.Department
	err := r.db.First(&d, id).Error
	return d, err
}

func (r *DBDepartmentRepo) GetDepartmentByCode(code string) (department.Department, error) {
	var d department.Department
	err := r.db.Where("code = ?", code).First(&d).Error
	return d, err
}

func (r *DBDepartmentRepo) ListDepartments() ([]department.Department, error) {
	var deps []department.Department
	err := r.db.Order("code asc").Find(&deps).Error
	return deps, err
}

func (r *DBDepartmentRepo) SaveDepartment(d *department.Department) error {
	return r.db.Save(d).Error
}

func (r *DBDepartmentRepo) WithTx(tx *gorm.DB) DepartmentRepo {
	if tx == nil {
		return r
	}
	return &DBDepartmentRepo{db: tx}
}
