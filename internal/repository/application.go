package repository

import (
	"github.com/The-Tech-Tentacles/CampusHub-sub000/internal/domain/application"
	"gorm.io/gorm"
)

// ApplicationRepo exposes primitive filtered queries only; who may see or
// mutate which rows is decided by the workflow service.
type ApplicationRepo interface {
	Create(app *application.Application) error
	FindByID(id uint) (*application.Application, error)
	FindAll() ([]application.Application, error)
	FindBySubmitter(userID uint) ([]application.Application, error)
	FindByMentor(mentorID uint) ([]application.Application, error)
	FindByDepartment(departmentID uint) ([]application.Application, error)
	FindDeanEscalated() ([]application.Application, error)
	Save(app *application.Application) error
	Delete(id uint) error
	WithTx(tx *gorm.DB) ApplicationRepo
}

type DBApplicationRepo struct {
	db *gorm.DB
}

func NewApplicationRepo(db *gorm.DB) *DBApplicationRepo {
	return &DBApplicationRepo{db: db}
}

func (r *DBApplicationRepo) preloaded() *gorm.DB {
	return r.db.Preload("SubmittedBy").Preload("Department").Preload("Mentor")
}

func (r *DBApplicationRepo) Create(app *application.Application) error {
	return r.db.Create(app).Error
}

func (r *DBApplicationRepo) FindByID(id uint) (*application.Application, error) {
	var app application.Application
	if err := r.preloaded().First(&app, id).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *DBApplicationRepo) FindAll() ([]application.Application, error) {
	var apps []application.Application
	err := r.preloaded().Order("submitted_at desc").Find(&apps).Error
	return apps, err
}

func (r *DBApplicationRepo) FindBySubmitter(userID uint) ([]application.Application, error) {
	var apps []application.Application
	err := r.preloaded().Where("submitted_by_id = ?", userID).Order("submitted_at desc").Find(&apps).Error
	return apps, err
}

func (r *DBApplicationRepo) FindByMentor(mentorID uint) ([]application.Application, error) {
	var apps []application.Application
	err := r.preloaded().Where("mentor_id = ?", mentorID).Order("submitted_at desc").Find(&apps).Error
	return apps, err
}

func (r *DBApplicationRepo) FindByDepartment(departmentID uint) ([]application.Application, error) {
	var apps []application.Application
	err := r.preloaded().Where("department_id = ?", departmentID).Order("submitted_at desc").Find(&apps).Error
	return apps, err
}

func (r *DBApplicationRepo) FindDeanEscalated() ([]application.Application, error) {
	var apps []application.Application
	err := r.preloaded().Where("requires_dean_approval = ?", true).Order("submitted_at desc").Find(&apps).Error
	return apps, err
}

func (r *DBApplicationRepo) Save(app *application.Application) error {
	return r.db.Save(app).Error
}

func (r *DBApplicationRepo) Delete(id uint) error {
	return r.db.Delete(&application.Application{}, id).Error
}

func (r *DBApplicationRepo) WithTx(tx *gorm.DB) ApplicationRepo {
	if tx == nil {
		return r
	}
	return &DBApplicationRepo{db: tx}
}
