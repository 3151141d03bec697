package application

import (
	"time"

	"github.com/The-Tech-Tentacles/CampusHub-sub000/internal/domain/department"
	"github.com/The-Tech-Tentacles/CampusHub-sub000/internal/domain/user"
)

type Status string

const (
	StatusPending     Status = "PENDING"
	StatusUnderReview Status = "UNDER_REVIEW"
	StatusApproved    Status = "APPROVED"
	StatusRejected    Status = "REJECTED"
)

type Level string

const (
	LevelMentor Level = "MENTOR"
	LevelHOD    Level = "HOD"
	LevelDean   Level = "DEAN"
)

type Decision string

const (
	DecisionApprove         Decision = "APPROVE"
	DecisionReject          Decision = "REJECT"
	DecisionSendUnderReview Decision = "SEND_UNDER_REVIEW"
)

// Application is one student-submitted request walking the
// mentor -> HOD -> (dean) review chain. Department and mentor are
// snapshotted from the submitter's profile at creation time and never
// re-resolved afterwards, even if the profile changes.
type Application struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Title        string  `gorm:"size:200;not null" json:"title"`
	Type         string  `gorm:"size:100;not null" json:"type"`
	Description  string  `gorm:"type:text;not null" json:"description"`
	ProofFileURL *string `gorm:"size:500" json:"proof_file_url"`

	SubmittedByID uint                  `gorm:"not null;index" json:"submitted_by_id"`
	SubmittedBy   user.User             `gorm:"foreignKey:SubmittedByID" json:"submitted_by"`
	DepartmentID  uint                  `gorm:"not null;index" json:"department_id"`
	Department    department.Department `gorm:"foreignKey:DepartmentID" json:"department"`
	MentorID      *uint                 `gorm:"index" json:"mentor_id"`
	Mentor        *user.User            `gorm:"foreignKey:MentorID" json:"mentor,omitempty"`

	Status Status `gorm:"size:20;not null;default:'PENDING'" json:"status"`

	MentorStatus     *Status    `gorm:"size:20" json:"mentor_status"`
	MentorNotes      *string    `gorm:"type:text" json:"mentor_notes"`
	MentorReviewedAt *time.Time `json:"mentor_reviewed_at"`

	HODStatus     *Status    `gorm:"size:20;column:hod_status" json:"hod_status"`
	HODNotes      *string    `gorm:"type:text;column:hod_notes" json:"hod_notes"`
	HODReviewedAt *time.Time `gorm:"column:hod_reviewed_at" json:"hod_reviewed_at"`

	RequiresDeanApproval bool       `gorm:"not null;default:false;index" json:"requires_dean_approval"`
	EscalationReason     *string    `gorm:"type:text" json:"escalation_reason"`
	DeanStatus           *Status    `gorm:"size:20" json:"dean_status"`
	DeanNotes            *string    `gorm:"type:text" json:"dean_notes"`
	DeanReviewedAt       *time.Time `json:"dean_reviewed_at"`

	CurrentLevel  Level     `gorm:"size:20;not null;default:'MENTOR'" json:"current_level"`
	FinalDecision Status    `gorm:"size:20;not null;default:'PENDING'" json:"final_decision"`
	SubmittedAt   time.Time `gorm:"not null" json:"submitted_at"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Terminal reports whether the overall status admits no further review.
func (a *Application) Terminal() bool {
	return a.Status == StatusApproved || a.Status == StatusRejected
}

func (d Decision) Valid() bool {
	switch d {
	case DecisionApprove, DecisionReject, DecisionSendUnderReview:
		return true
	}
	return false
}
