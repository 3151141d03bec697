package handlers

import (
	"net/http"

	"github.com/The-Tech-Tentacles/CampusHub-sub000/internal/storage"
	"github.com/The-Tech-Tentacles/CampusHub-sub000/pkg/response"
	"github.com/gin-gonic/gin"
)

// maxProofFileSize caps proof uploads at 10 MiB.
const maxProofFileSize = 10 << 20

type UploadHandler struct{}

func NewUploadHandler() *UploadHandler {
	return &UploadHandler{}
}

// UploadProof godoc
// @Summary Upload a proof document, returns its URL
// @Tags applications
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Proof document"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /applications/proof [post]
func (h *UploadHandler) UploadProof(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Fail("file is required"))
		return
	}
	if fileHeader.Size > maxProofFileSize {
		c.JSON(http.StatusBadRequest, response.Fail("file exceeds 10MB limit"))
		return
	}

	url, err := storage.PutProofFile(c.Request.Context(), fileHeader)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Fail("failed to store file"))
		return
	}

	c.JSON(http.StatusCreated, response.OK(gin.H{"proofFileUrl": url}))
}
