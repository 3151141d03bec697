package application

import (
	"errors"
	"time"

	"github.com/The-Tech-Tentacles/CampusHub-sub000/internal/api/middleware"
	"github.com/The-Tech-Tentacles/CampusHub-sub000/internal/domain/user"
	"github.com/The-Tech-Tentacles/CampusHub-sub000/internal/repository"
	"github.com/The-Tech-Tentacles/CampusHub-sub000/pkg/apperr"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken       = errors.New("username already taken")
	ErrPasswordHashFailure = errors.New("failed to hash password")
	ErrInvalidCredentials  = errors.New("invalid credentials")
)

type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{Repos: repos}
}

func (s *UserService) RegisterUser(input user.CreateUserInput) (*user.User, error) {
	_, err := s.Repos.User.GetUserByUsername(input.Username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err == nil {
		return nil, ErrUsernameTaken
	}

	role := user.RoleStudent
	if input.Role != "" {
		role = user.Role(input.Role)
	}
	if !role.Valid() {
		return nil, apperr.Validation("invalid role %q", input.Role)
	}

	if input.DepartmentID != nil {
		if _, err := s.Repos.Department.GetDepartmentByID(*input.DepartmentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound("department %d not found", *input.DepartmentID)
			}
			return nil, err
		}
	}
	if input.MentorID != nil {
		mentor, err := s.Repos.User.GetUserByID(*input.MentorID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound("mentor %d not found", *input.MentorID)
			}
			return nil, err
		}
		if mentor.Role != user.RoleFaculty {
			return nil, apperr.Validation("mentor must be a faculty member")
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrPasswordHashFailure
	}

	usr := user.User{
		Username:     input.Username,
		Password:     string(hashed),
		Email:        input.Email,
		FullName:     input.FullName,
		Role:         role,
		DepartmentID: input.DepartmentID,
		MentorID:     input.MentorID,
	}
	if err := s.Repos.User.SaveUser(&usr); err != nil {
		return nil, err
	}
	return &usr, nil
}

func (s *UserService) LoginUser(username, password string) (user.User, string, error) {
	usr, err := s.Repos.User.GetUserByUsername(username)
	if err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(usr, 24*time.Hour)
	if err != nil {
		return user.User{}, "", err
	}

	return usr, token, nil
}

func (s *UserService) FindUserByID(id uint) (user.User, error) {
	usr, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usr, apperr.NotFound("user %d not found", id)
		}
		return usr, err
	}
	return usr, nil
}

func (s *UserService) ListUsers() ([]user.User, error) {
	return s.Repos.User.ListUsers()
}

func (s *UserService) ListFaculty() ([]user.User, error) {
	return s.Repos.User.ListUsersByRole(user.RoleFaculty)
}

// AssignMentor points a student at their first-line reviewer. Existing
// applications keep the mentor captured at submission time.
func (s *UserService) AssignMentor(studentID, mentorID uint) (user.User, error) {
	student, err := s.FindUserByID(studentID)
	if err != nil {
		return user.User{}, err
	}
	if student.Role != user.RoleStudent {
		return user.User{}, apperr.Validation("mentor can only be assigned to a student")
	}
	mentor, err := s.FindUserByID(mentorID)
	if err != nil {
		return user.User{}, err
	}
	if mentor.Role != user.RoleFaculty {
		return user.User{}, apperr.Validation("mentor must be a faculty member")
	}

	student.MentorID = &mentor.ID
	if err := s.Repos.User.SaveUser(&student); err != nil {
		return user.User{}, err
	}
	return student, nil
}
