package handlers

import (
	"net/http"

	svc "github.com/The-Tech-Tentacles/CampusHub-sub000/internal/application"
	app "github.com/The-Tech-Tentacles/CampusHub-sub000/internal/domain/application"
	"github.com/The-Tech-Tentacles/CampusHub-sub000/pkg/response"
	"github.com/The-Tech-Tentacles/CampusHub-sub000/pkg/utils"
	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	svc *svc.ApplicationService
}

func NewApplicationHandler(s *svc.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{svc: s}
}

func fail(c *gin.Context, err error) {
	status, msg := response.StatusOf(err)
	c.JSON(status, response.Fail(msg))
}

// Create godoc
// @Summary Submit a new application
// @Tags applications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body application.CreateApplicationDTO true "Application"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /applications [post]
func (h *ApplicationHandler) Create(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Fail("unauthorized"))
		return
	}

	var input app.CreateApplicationDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
		return
	}

	created, err := h.svc.Create(c, userID, input)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.OKMessage(app.ToView(*created), "application submitted"))
}

// List godoc
// @Summary List applications visible to the caller
// @Tags applications
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /applications [get]
func (h *ApplicationHandler) List(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Fail("unauthorized"))
		return
	}

	apps, err := h.svc.List(userID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, response.OK(app.ToViews(apps)))
}

// Get godoc
// @Summary Get one application
// @Tags applications
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Application ID"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /applications/{id} [get]
func (h *ApplicationHandler) Get(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Fail("unauthorized"))
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Fail("invalid application id"))
		return
	}

	record, err := h.svc.Get(userID, id)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, response.OK(app.ToView(*record)))
}

// Review godoc
// @Summary Approve, reject or mark an application under review
// @Tags applications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Application ID"
// @Param request body application.ReviewDTO true "Decision"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /applications/{id}/review [put]
func (h *ApplicationHandler) Review(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Fail("unauthorized"))
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Fail("invalid application id"))
		return
	}

	var input app.ReviewDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
		return
	}

	record, err := h.svc.Review(c, userID, id, input)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, response.OKMessage(app.ToView(*record), "review recorded"))
}

// Escalate godoc
// @Summary Escalate an application to dean approval
// @Tags applications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Application ID"
// @Param request body application.EscalateDTO true "Reason"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /applications/{id}/escalate [put]
func (h *ApplicationHandler) Escalate(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Fail("unauthorized"))
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Fail("invalid application id"))
		return
	}

	var input app.EscalateDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
		return
	}

	record, err := h.svc.Escalate(c, userID, id, input.Reason)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, response.OKMessage(app.ToView(*record), "escalated to dean"))
}

// Delete godoc
// @Summary Cancel or delete an application
// @Tags applications
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Application ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /applications/{id} [delete]
func (h *ApplicationHandler) Delete(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Fail("unauthorized"))
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Fail("invalid application id"))
		return
	}

	if err := h.svc.Cancel(c, userID, id); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, response.OKMessage(nil, "application removed"))
}
