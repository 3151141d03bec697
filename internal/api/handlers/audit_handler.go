package handlers

import (
	"net/http"
	"strconv"
	"time"

	svc "github.com/The-Tech-Tentacles/CampusHub-sub000/internal/application"
	"github.com/The-Tech-Tentacles/CampusHub-sub000/internal/repository"
	"github.com/The-Tech-Tentacles/CampusHub-sub000/pkg/response"
	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	svc *svc.AuditService
}

func NewAuditHandler(s *svc.AuditService) *AuditHandler {
	return &AuditHandler{svc: s}
}

// GetAuditLogs godoc
// @Summary Query the audit trail (admin)
// @Tags audit
// @Security BearerAuth
// @Produce json
// @Param user_id query uint false "Filter by acting user"
// @Param resource_type query string false "Filter by resource type"
// @Param resource_id query string false "Filter by resource id"
// @Param action query string false "Filter by action"
// @Param ip query string false "Filter by client IP"
// @Param start query string false "RFC3339 lower bound"
// @Param end query string false "RFC3339 upper bound"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {object} response.Envelope
// @Router /audit/logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	var params repository.AuditQueryParams

	if v := c.Query("user_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Fail("invalid user_id"))
			return
		}
		uid := uint(id)
		params.UserID = &uid
	}
	if v := c.Query("resource_type"); v != "" {
		params.ResourceType = &v
	}
	if v := c.Query("resource_id"); v != "" {
		params.ResourceID = &v
	}
	if v := c.Query("action"); v != "" {
		params.Action = &v
	}
	if v := c.Query("ip"); v != "" {
		params.IP = &v
	}
	if v := c.Query("start"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Fail("invalid start time"))
			return
		}
		params.StartTime = &t
	}
	if v := c.Query("end"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Fail("invalid end time"))
			return
		}
		params.EndTime = &t
	}
	params.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "100"))
	params.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	logs, err := h.svc.GetAuditLogs(params)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(logs))
}
