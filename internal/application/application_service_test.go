package application_test

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	svc "github.com/The-Tech-Tentacles/CampusHub-sub000/internal/application"
	app "github.com/The-Tech-Tentacles/CampusHub-sub000/internal/domain/application"
	"github.com/The-Tech-Tentacles/CampusHub-sub000/internal/domain/department"
	"github.com/The-Tech-Tentacles/CampusHub-sub000/internal/domain/user"
	"github.com/The-Tech-Tentacles/CampusHub-sub000/internal/repository"
	"github.com/The-Tech-Tentacles/CampusHub-sub000/internal/repository/mock"
	"github.com/The-Tech-Tentacles/CampusHub-sub000/pkg/apperr"
	"github.com/The-Tech-Tentacles/CampusHub-sub000/pkg/utils"
)

const (
	deptCS = uint(1)
	deptEE = uint(2)

	studentID  = uint(10)
	mentorID   = uint(20)
	hodID      = uint(30)
	otherHODID = uint(31)
	deanID     = uint(40)
	adminID    = uint(50)
)

func ptr[T any](v T) *T { return &v }

func testUsers() map[uint]user.User {
	return map[uint]user.User{
		studentID:  {ID: studentID, Username: "s.kumar", FullName: "S Kumar", Email: "s@campus.edu", Role: user.RoleStudent, DepartmentID: ptr(deptCS), MentorID: ptr(mentorID)},
		mentorID:   {ID: mentorID, Username: "f.rao", FullName: "F Rao", Role: user.RoleFaculty, DepartmentID: ptr(deptCS)},
		hodID:      {ID: hodID, Username: "h.cs", FullName: "H CS", Role: user.RoleHOD, DepartmentID: ptr(deptCS)},
		otherHODID: {ID: otherHODID, Username: "h.ee", FullName: "H EE", Role: user.RoleHOD, DepartmentID: ptr(deptEE)},
		deanID:     {ID: deanID, Username: "d.ean", FullName: "D Ean", Role: user.RoleDean},
		adminID:    {ID: adminID, Username: "root", FullName: "Root", Role: user.RoleAdmin},
	}
}

func setupWorkflowMocks(t *testing.T) (*svc.ApplicationService, *mock.MockApplicationRepo, *gin.Context) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockApp := mock.NewMockApplicationRepo(ctrl)
	mockUser := mock.NewMockUserRepo(ctrl)
	mockAudit := mock.NewMockAuditRepo(ctrl)

	repos := &repository.Repos{
		User:        mockUser,
		Application: mockApp,
		Audit:       mockAudit,
	}

	users := testUsers()
	mockUser.EXPECT().GetUserByID(gomock.Any()).DoAndReturn(func(id uint) (user.User, error) {
		u, ok := users[id]
		if !ok {
			return user.User{}, gorm.ErrRecordNotFound
		}
		return u, nil
	}).AnyTimes()

	// Audit writes happen on a background goroutine; silence them in tests.
	utils.LogAuditWithConsole = func(c *gin.Context, action, resourceType, resourceID string, oldData, newData interface{}, msg string, repos repository.AuditRepo) {
	}

	service := svc.NewApplicationService(repos)
	c, _ := gin.CreateTestContext(nil)
	return service, mockApp, c
}

// wireRecord makes the mock repo behave like a single stored row: FindByID
// hands out copies, Save writes back.
func wireRecord(mockApp *mock.MockApplicationRepo, record *app.Application) {
	mockApp.EXPECT().FindByID(record.ID).DoAndReturn(func(id uint) (*app.Application, error) {
		cp := *record
		return &cp, nil
	}).AnyTimes()
	mockApp.EXPECT().Save(gomock.Any()).DoAndReturn(func(a *app.Application) error {
		*record = *a
		return nil
	}).AnyTimes()
}

func pendingApplication(id uint) *app.Application {
	return &app.Application{
		ID:            id,
		Title:         "Hostel leave",
		Type:          "LEAVE",
		Description:   "Family function",
		SubmittedByID: studentID,
		SubmittedBy:   testUsers()[studentID],
		DepartmentID:  deptCS,
		Department:    department.Department{ID: deptCS, Name: "Computer Science", Code: "CS"},
		MentorID:      ptr(mentorID),
		Status:        app.StatusPending,
		CurrentLevel:  app.LevelMentor,
		FinalDecision: app.StatusPending,
	}
}

func TestCreateApplication(t *testing.T) {
	service, mockApp, c := setupWorkflowMocks(t)

	t.Run("student create snapshots department and mentor", func(t *testing.T) {
		var stored *app.Application
		mockApp.EXPECT().Create(gomock.Any()).DoAndReturn(func(a *app.Application) error {
			a.ID = 1
			stored = a
			return nil
		})
		mockApp.EXPECT().FindByID(uint(1)).DoAndReturn(func(id uint) (*app.Application, error) {
			cp := *stored
			return &cp, nil
		})

		created, err := service.Create(c, studentID, app.CreateApplicationDTO{
			Title:       "Hostel leave",
			Type:        "LEAVE",
			Description: "Family function",
		})
		require.NoError(t, err)
		require.Equal(t, deptCS, created.DepartmentID)
		require.Equal(t, ptr(mentorID), created.MentorID)
		require.Equal(t, app.StatusPending, created.Status)
		require.Equal(t, app.LevelMentor, created.CurrentLevel)
		require.Equal(t, app.StatusPending, created.FinalDecision)
		require.False(t, created.SubmittedAt.IsZero())
	})

	t.Run("non-student cannot create", func(t *testing.T) {
		_, err := service.Create(c, mentorID, app.CreateApplicationDTO{Title: "x", Type: "y", Description: "z"})
		require.True(t, apperr.IsKind(err, apperr.KindAuthorization))
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		_, err := service.Create(c, studentID, app.CreateApplicationDTO{Title: "x"})
		require.True(t, apperr.IsKind(err, apperr.KindValidation))
	})

	t.Run("unknown submitter", func(t *testing.T) {
		_, err := service.Create(c, 999, app.CreateApplicationDTO{Title: "x", Type: "y", Description: "z"})
		require.True(t, apperr.IsKind(err, apperr.KindNotFound))
	})
}

func TestListVisibility(t *testing.T) {
	service, mockApp, _ := setupWorkflowMocks(t)

	t.Run("student sees own", func(t *testing.T) {
		mockApp.EXPECT().FindBySubmitter(studentID).Return([]app.Application{*pendingApplication(1)}, nil)
		apps, err := service.List(studentID)
		require.NoError(t, err)
		require.Len(t, apps, 1)
	})

	t.Run("faculty sees mentored", func(t *testing.T) {
		mockApp.EXPECT().FindByMentor(mentorID).Return([]app.Application{}, nil)
		_, err := service.List(mentorID)
		require.NoError(t, err)
	})

	t.Run("hod sees department", func(t *testing.T) {
		mockApp.EXPECT().FindByDepartment(deptCS).Return([]app.Application{}, nil)
		_, err := service.List(hodID)
		require.NoError(t, err)
	})

	t.Run("dean sees escalated only", func(t *testing.T) {
		mockApp.EXPECT().FindDeanEscalated().Return([]app.Application{}, nil)
		_, err := service.List(deanID)
		require.NoError(t, err)
	})

	t.Run("admin sees all", func(t *testing.T) {
		mockApp.EXPECT().FindAll().Return([]app.Application{}, nil)
		_, err := service.List(adminID)
		require.NoError(t, err)
	})
}

func TestGetVisibility(t *testing.T) {
	service, mockApp, _ := setupWorkflowMocks(t)
	record := pendingApplication(1)
	wireRecord(mockApp, record)

	_, err := service.Get(deanID, 1)
	require.True(t, apperr.IsKind(err, apperr.KindAuthorization))

	got, err := service.Get(studentID, 1)
	require.NoError(t, err)
	require.Equal(t, record.ID, got.ID)

	mockApp.EXPECT().FindByID(uint(404)).Return(nil, gorm.ErrRecordNotFound)
	_, err = service.Get(studentID, 404)
	require.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

// Mentor approval hands the application to the HOD; a plain HOD approval
// finalizes it when no dean escalation was requested.
func TestReviewHappyPathWithoutDean(t *testing.T) {
	service, mockApp, c := setupWorkflowMocks(t)
	record := pendingApplication(1)
	wireRecord(mockApp, record)

	got, err := service.Review(c, mentorID, 1, app.ReviewDTO{Decision: app.DecisionApprove})
	require.NoError(t, err)
	require.Equal(t, app.StatusUnderReview, got.Status)
	require.Equal(t, app.LevelHOD, got.CurrentLevel)
	require.NotNil(t, got.MentorStatus)
	require.Equal(t, app.StatusApproved, *got.MentorStatus)
	require.NotNil(t, got.MentorReviewedAt)

	got, err = service.Review(c, hodID, 1, app.ReviewDTO{Decision: app.DecisionApprove, Notes: ptr("fine")})
	require.NoError(t, err)
	require.Equal(t, app.StatusApproved, got.Status)
	require.Equal(t, app.StatusApproved, got.FinalDecision)
	require.Equal(t, app.LevelHOD, got.CurrentLevel)
	require.NotNil(t, got.HODStatus)
	require.Equal(t, app.StatusApproved, *got.HODStatus)
	require.Equal(t, "fine", *got.HODNotes)
	require.Nil(t, got.DeanStatus)
}

func TestReviewEscalatedToDean(t *testing.T) {
	service, mockApp, c := setupWorkflowMocks(t)
	record := pendingApplication(1)
	wireRecord(mockApp, record)

	_, err := service.Review(c, mentorID, 1, app.ReviewDTO{Decision: app.DecisionApprove})
	require.NoError(t, err)

	// Escalate before the HOD decision.
	got, err := service.Escalate(c, hodID, 1, "needs dean input")
	require.NoError(t, err)
	require.True(t, got.RequiresDeanApproval)
	require.Equal(t, "needs dean input", *got.EscalationReason)
	require.Equal(t, app.LevelHOD, got.CurrentLevel)

	got, err = service.Review(c, hodID, 1, app.ReviewDTO{Decision: app.DecisionApprove})
	require.NoError(t, err)
	require.Equal(t, app.StatusUnderReview, got.Status)
	require.Equal(t, app.LevelDean, got.CurrentLevel)
	require.Equal(t, app.StatusApproved, *got.HODStatus)

	got, err = service.Review(c, deanID, 1, app.ReviewDTO{Decision: app.DecisionReject, Notes: ptr("insufficient justification")})
	require.NoError(t, err)
	require.Equal(t, app.StatusRejected, got.Status)
	require.Equal(t, app.StatusRejected, got.FinalDecision)
	require.Equal(t, app.StatusRejected, *got.DeanStatus)
	require.Equal(t, "insufficient justification", *got.DeanNotes)

	// Terminal: nobody can review anymore, not even an admin.
	_, err = service.Review(c, adminID, 1, app.ReviewDTO{Decision: app.DecisionApprove})
	require.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestReviewSendUnderReview(t *testing.T) {
	service, mockApp, c := setupWorkflowMocks(t)
	record := pendingApplication(1)
	wireRecord(mockApp, record)

	got, err := service.Review(c, mentorID, 1, app.ReviewDTO{Decision: app.DecisionSendUnderReview, Notes: ptr("checking proof")})
	require.NoError(t, err)
	require.Equal(t, app.StatusUnderReview, got.Status)
	// The level pointer does not move for SEND_UNDER_REVIEW.
	require.Equal(t, app.LevelMentor, got.CurrentLevel)
	require.Equal(t, app.StatusUnderReview, *got.MentorStatus)

	// The mentor can still approve afterwards.
	got, err = service.Review(c, mentorID, 1, app.ReviewDTO{Decision: app.DecisionApprove})
	require.NoError(t, err)
	require.Equal(t, app.LevelHOD, got.CurrentLevel)
}

func TestReviewAuthorization(t *testing.T) {
	service, mockApp, c := setupWorkflowMocks(t)
	record := pendingApplication(1)
	wireRecord(mockApp, record)

	// HOD cannot act while the mentor tier is current.
	_, err := service.Review(c, hodID, 1, app.ReviewDTO{Decision: app.DecisionApprove})
	require.True(t, apperr.IsKind(err, apperr.KindAuthorization))

	// Dean cannot act without escalation.
	_, err = service.Review(c, deanID, 1, app.ReviewDTO{Decision: app.DecisionApprove})
	require.True(t, apperr.IsKind(err, apperr.KindAuthorization))

	// The student cannot review their own application.
	_, err = service.Review(c, studentID, 1, app.ReviewDTO{Decision: app.DecisionApprove})
	require.True(t, apperr.IsKind(err, apperr.KindAuthorization))

	// Admin bypasses the identity match at the current level.
	got, err := service.Review(c, adminID, 1, app.ReviewDTO{Decision: app.DecisionApprove})
	require.NoError(t, err)
	require.Equal(t, app.LevelHOD, got.CurrentLevel)

	// A different department's HOD is still rejected afterwards.
	_, err = service.Review(c, otherHODID, 1, app.ReviewDTO{Decision: app.DecisionApprove})
	require.True(t, apperr.IsKind(err, apperr.KindAuthorization))
}

func TestEscalateRules(t *testing.T) {
	service, mockApp, c := setupWorkflowMocks(t)
	record := pendingApplication(1)
	wireRecord(mockApp, record)

	// Too early: still at mentor review.
	_, err := service.Escalate(c, hodID, 1, "reason")
	require.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, err = service.Review(c, mentorID, 1, app.ReviewDTO{Decision: app.DecisionApprove})
	require.NoError(t, err)

	// Wrong department.
	_, err = service.Escalate(c, otherHODID, 1, "reason")
	require.True(t, apperr.IsKind(err, apperr.KindAuthorization))

	// Faculty cannot escalate at all.
	_, err = service.Escalate(c, mentorID, 1, "reason")
	require.True(t, apperr.IsKind(err, apperr.KindAuthorization))

	// Empty reason.
	_, err = service.Escalate(c, hodID, 1, "")
	require.True(t, apperr.IsKind(err, apperr.KindValidation))

	// After the HOD decision the escalation window is closed.
	_, err = service.Review(c, hodID, 1, app.ReviewDTO{Decision: app.DecisionApprove})
	require.NoError(t, err)
	_, err = service.Escalate(c, hodID, 1, "reason")
	require.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestCancelRules(t *testing.T) {
	service, mockApp, c := setupWorkflowMocks(t)

	t.Run("owner cancels pending", func(t *testing.T) {
		record := pendingApplication(1)
		wireRecord(mockApp, record)
		mockApp.EXPECT().Delete(uint(1)).Return(nil)
		require.NoError(t, service.Cancel(c, studentID, 1))
	})

	t.Run("owner cannot cancel once advanced", func(t *testing.T) {
		record := pendingApplication(2)
		record.Status = app.StatusUnderReview
		wireRecord(mockApp, record)
		err := service.Cancel(c, studentID, 2)
		require.True(t, apperr.IsKind(err, apperr.KindValidation))
	})

	t.Run("non-owner student denied", func(t *testing.T) {
		record := pendingApplication(3)
		record.SubmittedByID = 99
		wireRecord(mockApp, record)
		err := service.Cancel(c, studentID, 3)
		require.True(t, apperr.IsKind(err, apperr.KindAuthorization))
	})

	t.Run("reviewer roles denied", func(t *testing.T) {
		record := pendingApplication(4)
		wireRecord(mockApp, record)
		err := service.Cancel(c, mentorID, 4)
		require.True(t, apperr.IsKind(err, apperr.KindAuthorization))
	})

	t.Run("admin deletes in any state", func(t *testing.T) {
		record := pendingApplication(5)
		record.Status = app.StatusApproved
		wireRecord(mockApp, record)
		mockApp.EXPECT().Delete(uint(5)).Return(nil)
		require.NoError(t, service.Cancel(c, adminID, 5))
	})
}
