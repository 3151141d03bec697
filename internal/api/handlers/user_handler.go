package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	svc "github.com/The-Tech-Tentacles/CampusHub-sub000/internal/application"
	"github.com/The-Tech-Tentacles/CampusHub-sub000/internal/domain/user"
	"github.com/The-Tech-Tentacles/CampusHub-sub000/pkg/response"
	"github.com/The-Tech-Tentacles/CampusHub-sub000/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type UserHandler struct {
	svc *svc.UserService
}

func NewUserHandler(s *svc.UserService) *UserHandler {
	return &UserHandler{svc: s}
}

func bindErrorMessage(err error) string {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		return "Invalid input"
	}

	labels := map[string]string{
		"Username":     "username",
		"Password":     "password",
		"Email":        "email",
		"FullName":     "full name",
		"Role":         "role",
		"DepartmentID": "department",
		"MentorID":     "mentor",
	}

	msgs := make([]string, 0, len(verr))
	for _, fe := range verr {
		field := fe.StructField()
		lbl, ok := labels[field]
		if !ok {
			lbl = strings.ToLower(field)
		}

		var msg string
		switch fe.Tag() {
		case "required":
			msg = fmt.Sprintf("%s is required", lbl)
		case "min":
			msg = fmt.Sprintf("%s must be at least %s characters", lbl, fe.Param())
		case "max":
			msg = fmt.Sprintf("%s must be at most %s characters", lbl, fe.Param())
		case "email":
			msg = fmt.Sprintf("%s must be a valid email address", lbl)
		case "oneof":
			msg = fmt.Sprintf("%s must be one of [%s]", lbl, fe.Param())
		default:
			msg = fmt.Sprintf("%s is invalid", lbl)
		}
		msgs = append(msgs, msg)
	}
	return strings.Join(msgs, "; ")
}

// Register godoc
// @Summary Register a user
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.CreateUserInput true "User registration info"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var input user.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(bindErrorMessage(err)))
		return
	}

	created, err := h.svc.RegisterUser(input)
	if err != nil {
		if errors.Is(err, svc.ErrUsernameTaken) {
			c.JSON(http.StatusConflict, response.Fail(err.Error()))
			return
		}
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.OKMessage(user.ToDTO(*created), "user registered"))
}

// Login godoc
// @Summary Log in and receive a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.LoginInput true "Credentials"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var input user.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(bindErrorMessage(err)))
		return
	}

	usr, token, err := h.svc.LoginUser(input.Username, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Fail("invalid credentials"))
		return
	}

	c.JSON(http.StatusOK, response.OK(gin.H{
		"token": token,
		"user":  user.ToDTO(usr),
	}))
}

// GetUsers godoc
// @Summary List all users (admin)
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /users [get]
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.svc.ListUsers()
	if err != nil {
		fail(c, err)
		return
	}

	dtos := make([]user.UserDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, user.ToDTO(u))
	}
	c.JSON(http.StatusOK, response.OK(dtos))
}

// GetUserByID godoc
// @Summary Get a user by id
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path uint true "User ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /users/{id} [get]
func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Fail("invalid user id"))
		return
	}

	usr, err := h.svc.FindUserByID(id)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, response.OK(user.ToDTO(usr)))
}

// AssignMentor godoc
// @Summary Assign a mentor to a student (admin)
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Student user ID"
// @Param input body user.AssignMentorInput true "Mentor"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /users/{id}/mentor [put]
func (h *UserHandler) AssignMentor(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Fail("invalid user id"))
		return
	}

	var input user.AssignMentorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(bindErrorMessage(err)))
		return
	}

	student, err := h.svc.AssignMentor(id, input.MentorID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, response.OKMessage(user.ToDTO(student), "mentor assigned"))
}
