package user

import "time"

type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleFaculty Role = "FACULTY"
	RoleHOD     Role = "HOD"
	RoleDean    Role = "DEAN"
	RoleAdmin   Role = "ADMIN"
)

// User is the campus directory entry. DepartmentID is set for students,
// faculty and HODs; MentorID points at the FACULTY user assigned as a
// student's first-line reviewer.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:50;not null;unique" json:"username"`
	Password     string    `gorm:"size:255;not null" json:"-"`
	Email        string    `gorm:"size:100;not null;unique" json:"email"`
	FullName     string    `gorm:"size:100;not null" json:"full_name"`
	Role         Role      `gorm:"size:20;not null;default:'STUDENT'" json:"role"`
	DepartmentID *uint     `gorm:"index" json:"department_id"`
	MentorID     *uint     `gorm:"index" json:"mentor_id"`
	Mentor       *User     `gorm:"foreignKey:MentorID" json:"mentor,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleFaculty, RoleHOD, RoleDean, RoleAdmin:
		return true
	}
	return false
}
