package application

import "time"

type CreateApplicationDTO struct {
	Title        string  `json:"title" binding:"required"`
	Type         string  `json:"type" binding:"required"`
	Description  string  `json:"description" binding:"required"`
	ProofFileURL *string `json:"proofFileUrl"`
}

type ReviewDTO struct {
	Decision Decision `json:"decision" binding:"required,oneof=APPROVE REJECT SEND_UNDER_REVIEW"`
	Notes    *string  `json:"notes"`
}

type EscalateDTO struct {
	Reason string `json:"reason" binding:"required"`
}

// View is the flattened list/detail shape served by the API: nested review
// sub-states hoisted to top-level fields, submitter and department reduced
// to display values.
type View struct {
	ID                   uint       `json:"id"`
	Title                string     `json:"title"`
	Type                 string     `json:"type"`
	Description          string     `json:"description"`
	Status               Status     `json:"status"`
	SubmittedBy          string     `json:"submittedBy"`
	SubmittedByEmail     string     `json:"submittedByEmail"`
	Department           string     `json:"department"`
	DepartmentCode       string     `json:"departmentCode"`
	ProofFileURL         *string    `json:"proofFileUrl"`
	MentorStatus         *Status    `json:"mentorStatus"`
	MentorNotes          *string    `json:"mentorNotes"`
	MentorReviewedAt     *time.Time `json:"mentorReviewedAt"`
	HODStatus            *Status    `json:"hodStatus"`
	HODNotes             *string    `json:"hodNotes"`
	HODReviewedAt        *time.Time `json:"hodReviewedAt"`
	RequiresDeanApproval bool       `json:"requiresDeanApproval"`
	DeanStatus           *Status    `json:"deanStatus"`
	DeanNotes            *string    `json:"deanNotes"`
	DeanReviewedAt       *time.Time `json:"deanReviewedAt"`
	EscalationReason     *string    `json:"escalationReason"`
	CurrentLevel         Level      `json:"currentLevel"`
	FinalDecision        Status     `json:"finalDecision"`
	SubmittedAt          time.Time  `json:"submittedAt"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}

func ToView(a Application) View {
	return View{
		ID:                   a.ID,
		Title:                a.Title,
		Type:                 a.Type,
		Description:          a.Description,
		Status:               a.Status,
		SubmittedBy:          a.SubmittedBy.FullName,
		SubmittedByEmail:     a.SubmittedBy.Email,
		Department:           a.Department.Name,
		DepartmentCode:       a.Department.Code,
		ProofFileURL:         a.ProofFileURL,
		MentorStatus:         a.MentorStatus,
		MentorNotes:          a.MentorNotes,
		MentorReviewedAt:     a.MentorReviewedAt,
		HODStatus:            a.HODStatus,
		HODNotes:             a.HODNotes,
		HODReviewedAt:        a.HODReviewedAt,
		RequiresDeanApproval: a.RequiresDeanApproval,
		DeanStatus:           a.DeanStatus,
		DeanNotes:            a.DeanNotes,
		DeanReviewedAt:       a.DeanReviewedAt,
		EscalationReason:     a.EscalationReason,
		CurrentLevel:         a.CurrentLevel,
		FinalDecision:        a.FinalDecision,
		SubmittedAt:          a.SubmittedAt,
		CreatedAt:            a.CreatedAt,
		UpdatedAt:            a.UpdatedAt,
	}
}

func ToViews(apps []Application) []View {
	views := make([]View, 0, len(apps))
	for _, a := range apps {
		views = append(views, ToView(a))
	}
	return views
}
