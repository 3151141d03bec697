package application

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	app "github.com/The-Tech-Tentacles/CampusHub-sub000/internal/domain/application"
	"github.com/The-Tech-Tentacles/CampusHub-sub000/internal/domain/user"
	"github.com/The-Tech-Tentacles/CampusHub-sub000/internal/repository"
	"github.com/The-Tech-Tentacles/CampusHub-sub000/pkg/apperr"
	"github.com/The-Tech-Tentacles/CampusHub-sub000/pkg/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationService is the approval workflow engine: it decides who may see
// which applications and which review transitions are legal. Handlers do no
// business logic of their own.
type ApplicationService struct {
	Repos *repository.Repos
}

func NewApplicationService(repos *repository.Repos) *ApplicationService {
	return &ApplicationService{Repos: repos}
}

func (s *ApplicationService) actor(actorID uint) (user.User, error) {
	actor, err := s.Repos.User.GetUserByID(actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return actor, apperr.NotFound("user %d not found", actorID)
		}
		return actor, err
	}
	return actor, nil
}

func (s *ApplicationService) load(id uint) (*app.Application, error) {
	record, err := s.Repos.Application.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("application %d not found", id)
		}
		return nil, err
	}
	return record, nil
}

// Create snapshots the submitter's department and mentor onto the new
// record; later profile changes never affect existing applications.
func (s *ApplicationService) Create(c *gin.Context, actorID uint, input app.CreateApplicationDTO) (*app.Application, error) {
	actor, err := s.actor(actorID)
	if err != nil {
		return nil, err
	}
	if actor.Role != user.RoleStudent {
		return nil, apperr.Authorization("only students may submit applications")
	}
	if input.Title == "" || input.Type == "" || input.Description == "" {
		return nil, apperr.Validation("title, type and description are required")
	}
	if actor.DepartmentID == nil {
		return nil, apperr.Validation("submitter has no department assigned")
	}

	record := &app.Application{
		Title:         input.Title,
		Type:          input.Type,
		Description:   input.Description,
		ProofFileURL:  input.ProofFileURL,
		SubmittedByID: actor.ID,
		DepartmentID:  *actor.DepartmentID,
		MentorID:      actor.MentorID,
		Status:        app.StatusPending,
		CurrentLevel:  app.LevelMentor,
		FinalDecision: app.StatusPending,
		SubmittedAt:   time.Now(),
	}
	if err := s.Repos.Application.Create(record); err != nil {
		return nil, err
	}

	created, err := s.load(record.ID)
	if err != nil {
		return nil, err
	}
	utils.LogAuditWithConsole(c, "create", "application", strconv.Itoa(int(created.ID)), nil, created, "application submitted", s.Repos.Audit)
	return created, nil
}

// List applies the role visibility table: students see their own records,
// faculty the ones they mentor, HODs their department, deans only escalated
// records, admins everything.
func (s *ApplicationService) List(actorID uint) ([]app.Application, error) {
	actor, err := s.actor(actorID)
	if err != nil {
		return nil, err
	}

	switch actor.Role {
	case user.RoleStudent:
		return s.Repos.Application.FindBySubmitter(actor.ID)
	case user.RoleFaculty:
		return s.Repos.Application.FindByMentor(actor.ID)
	case user.RoleHOD:
		if actor.DepartmentID == nil {
			return []app.Application{}, nil
		}
		return s.Repos.Application.FindByDepartment(*actor.DepartmentID)
	case user.RoleDean:
		return s.Repos.Application.FindDeanEscalated()
	case user.RoleAdmin:
		return s.Repos.Application.FindAll()
	}
	return nil, apperr.Authorization("unknown role %q", actor.Role)
}

// Get enforces the same visibility rule as List, per record.
func (s *ApplicationService) Get(actorID, id uint) (*app.Application, error) {
	actor, err := s.actor(actorID)
	if err != nil {
		return nil, err
	}
	record, err := s.load(id)
	if err != nil {
		return nil, err
	}
	if !visibleTo(actor, record) {
		return nil, apperr.Authorization("not permitted to view this application")
	}
	return record, nil
}

func visibleTo(actor user.User, record *app.Application) bool {
	switch actor.Role {
	case user.RoleStudent:
		return record.SubmittedByID == actor.ID
	case user.RoleFaculty:
		return record.MentorID != nil && *record.MentorID == actor.ID
	case user.RoleHOD:
		return actor.DepartmentID != nil && *actor.DepartmentID == record.DepartmentID
	case user.RoleDean:
		return record.RequiresDeanApproval
	case user.RoleAdmin:
		return true
	}
	return false
}

// reviewLevelFor maps (role, relationship-to-record) to the level the actor
// may act on. Admins bypass the identity match but not the current-level
// gate; everyone else must both hold the relationship and be the tier whose
// turn it is.
func reviewLevelFor(actor user.User, record *app.Application) (app.Level, error) {
	switch actor.Role {
	case user.RoleFaculty:
		if record.MentorID == nil || *record.MentorID != actor.ID {
			return "", apperr.Authorization("not the assigned mentor")
		}
		if record.CurrentLevel != app.LevelMentor {
			return "", apperr.Authorization("application is past mentor review")
		}
		return app.LevelMentor, nil
	case user.RoleHOD:
		if actor.DepartmentID == nil || *actor.DepartmentID != record.DepartmentID {
			return "", apperr.Authorization("application belongs to another department")
		}
		if record.CurrentLevel != app.LevelHOD {
			return "", apperr.Authorization("application is not at HOD review")
		}
		return app.LevelHOD, nil
	case user.RoleDean:
		if !record.RequiresDeanApproval {
			return "", apperr.Authorization("application was not escalated to dean")
		}
		if record.CurrentLevel != app.LevelDean {
			return "", apperr.Authorization("application is not at dean review")
		}
		return app.LevelDean, nil
	case user.RoleAdmin:
		return record.CurrentLevel, nil
	}
	return "", apperr.Authorization("role %q cannot review applications", actor.Role)
}

func setLevelState(record *app.Application, level app.Level, status app.Status, notes *string, at time.Time) {
	ts := at
	switch level {
	case app.LevelMentor:
		record.MentorStatus = &status
		record.MentorNotes = notes
		record.MentorReviewedAt = &ts
	case app.LevelHOD:
		record.HODStatus = &status
		record.HODNotes = notes
		record.HODReviewedAt = &ts
	case app.LevelDean:
		record.DeanStatus = &status
		record.DeanNotes = notes
		record.DeanReviewedAt = &ts
	}
}

// Review advances the state machine:
//
//	PENDING/UNDER_REVIEW --(REJECT at any level)--> REJECTED, terminal
//	MENTOR --APPROVE--> HOD
//	HOD --APPROVE--> APPROVED, terminal (or DEAN when escalated)
//	DEAN --APPROVE--> APPROVED, terminal
//	SEND_UNDER_REVIEW marks the level in progress without advancing it.
func (s *ApplicationService) Review(c *gin.Context, actorID, id uint, input app.ReviewDTO) (*app.Application, error) {
	actor, err := s.actor(actorID)
	if err != nil {
		return nil, err
	}
	record, err := s.load(id)
	if err != nil {
		return nil, err
	}
	if record.Terminal() {
		return nil, apperr.Validation("application has already been finalized")
	}
	if !input.Decision.Valid() {
		return nil, apperr.Validation("invalid decision %q", input.Decision)
	}

	level, err := reviewLevelFor(actor, record)
	if err != nil {
		return nil, err
	}

	before := *record
	now := time.Now()

	switch input.Decision {
	case app.DecisionSendUnderReview:
		setLevelState(record, level, app.StatusUnderReview, input.Notes, now)
		record.Status = app.StatusUnderReview

	case app.DecisionReject:
		setLevelState(record, level, app.StatusRejected, input.Notes, now)
		record.Status = app.StatusRejected
		record.FinalDecision = app.StatusRejected

	case app.DecisionApprove:
		setLevelState(record, level, app.StatusApproved, input.Notes, now)
		switch level {
		case app.LevelMentor:
			record.CurrentLevel = app.LevelHOD
			record.Status = app.StatusUnderReview
		case app.LevelHOD:
			if record.RequiresDeanApproval {
				record.CurrentLevel = app.LevelDean
				record.Status = app.StatusUnderReview
			} else {
				record.Status = app.StatusApproved
				record.FinalDecision = app.StatusApproved
			}
		case app.LevelDean:
			record.Status = app.StatusApproved
			record.FinalDecision = app.StatusApproved
		}
	}

	if err := s.Repos.Application.Save(record); err != nil {
		return nil, err
	}

	action := fmt.Sprintf("review:%s", input.Decision)
	utils.LogAuditWithConsole(c, action, "application", strconv.Itoa(int(record.ID)), before, record, fmt.Sprintf("%s review at %s level", input.Decision, level), s.Repos.Audit)
	return record, nil
}

// Escalate flags the record for dean approval. Only the department's HOD
// (or an admin) may escalate, only while the HOD tier is current and has
// not issued its decision yet. The level pointer does not move here; the
// subsequent HOD approval routes to the dean.
func (s *ApplicationService) Escalate(c *gin.Context, actorID, id uint, reason string) (*app.Application, error) {
	actor, err := s.actor(actorID)
	if err != nil {
		return nil, err
	}
	record, err := s.load(id)
	if err != nil {
		return nil, err
	}
	if record.Terminal() {
		return nil, apperr.Validation("application has already been finalized")
	}
	if reason == "" {
		return nil, apperr.Validation("escalation reason is required")
	}

	switch actor.Role {
	case user.RoleHOD:
		if actor.DepartmentID == nil || *actor.DepartmentID != record.DepartmentID {
			return nil, apperr.Authorization("application belongs to another department")
		}
	case user.RoleAdmin:
	default:
		return nil, apperr.Authorization("only an HOD may escalate to dean")
	}
	if record.CurrentLevel != app.LevelHOD {
		return nil, apperr.Validation("application is not at HOD review")
	}
	if record.HODStatus != nil && (*record.HODStatus == app.StatusApproved || *record.HODStatus == app.StatusRejected) {
		return nil, apperr.Validation("HOD decision has already been issued")
	}

	before := *record
	record.RequiresDeanApproval = true
	record.EscalationReason = &reason

	if err := s.Repos.Application.Save(record); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "escalate", "application", strconv.Itoa(int(record.ID)), before, record, "escalated to dean", s.Repos.Audit)
	return record, nil
}

// Cancel hard-deletes the record. A student may cancel only their own
// application and only while it is still PENDING; an admin may delete any
// application in any state.
func (s *ApplicationService) Cancel(c *gin.Context, actorID, id uint) error {
	actor, err := s.actor(actorID)
	if err != nil {
		return err
	}
	record, err := s.load(id)
	if err != nil {
		return err
	}

	switch actor.Role {
	case user.RoleAdmin:
	case user.RoleStudent:
		if record.SubmittedByID != actor.ID {
			return apperr.Authorization("not the owner of this application")
		}
		if record.Status != app.StatusPending {
			return apperr.Validation("application is not pending")
		}
	default:
		return apperr.Authorization("role %q cannot delete applications", actor.Role)
	}

	if err := s.Repos.Application.Delete(record.ID); err != nil {
		return err
	}

	utils.LogAuditWithConsole(c, "delete", "application", strconv.Itoa(int(record.ID)), record, nil, "application removed", s.Repos.Audit)
	return nil
}
