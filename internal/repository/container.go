package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	User        UserRepo
	Department  DepartmentRepo
	Application ApplicationRepo
	Audit       AuditRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		User:        NewUserRepo(db),
		Department:  NewDepartmentRepo(db),
		Application: NewApplicationRepo(db),
		Audit:       NewAuditRepo(db),
		db:          db,
	}
}

func (r *Repos) Begin() *gorm.DB {
	return r.db.Begin()
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:        r.User.WithTx(tx),
		Department:  r.Department.WithTx(tx),
		Application: r.Application.WithTx(tx),
		Audit:       r.Audit.WithTx(tx),
		db:          tx,
	}
}

func (r *Repos) ExecTx(fn func(*Repos) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
