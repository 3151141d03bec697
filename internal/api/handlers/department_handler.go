package handlers

import (
	"net/http"

	svc "github.com/The-Tech-Tentacles/CampusHub-sub000/internal/application"
	"github.com/The-Tech-Tentacles/CampusHub-sub000/pkg/response"
	"github.com/gin-gonic/gin"
)

type DepartmentHandler struct {
	svc *svc.DepartmentService
}

func NewDepartmentHandler(s *svc.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{svc: s}
}

type createDepartmentInput struct {
	Name string `json:"name" binding:"required"`
	Code string `json:"code" binding:"required"`
}

func (h *DepartmentHandler) List(c *gin.Context) {
	deps, err := h.svc.ListDepartments()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(deps))
}

func (h *DepartmentHandler) Create(c *gin.Context) {
	var input createDepartmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
		return
	}

	dep, err := h.svc.CreateDepartment(input.Name, input.Code)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.OKMessage(dep, "department created"))
}
