package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/interview-console/internal/dto"
	appErrors "github.com/noah-isme/interview-console/pkg/errors"
	"github.com/noah-isme/interview-console/pkg/response"
)

type importService interface {
	ImportStudents(ctx context.Context, token, fileName string, csvContent []byte) (*dto.ImportSummary, error)
	SampleCSV() ([]byte, error)
}

// ImportsHandler serves the mentor CSV student registration flow.
type ImportsHandler struct {
	service importService
}

// NewImportsHandler creates a new handler.
func NewImportsHandler(svc importService) *ImportsHandler {
	return &ImportsHandler{service: svc}
}

// ImportStudents godoc
// @Summary Import students
// @Description Upload a CSV of students to register
// @Tags Imports
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Student CSV"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /admin/imports/students [post]
func (h *ImportsHandler) ImportStudents(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var fileName string
	var content []byte
	if !readUploadedFile(c, "file", &fileName, &content) {
		return
	}

	summary, err := h.service.ImportStudents(c.Request.Context(), claims.UpstreamToken, fileName, content)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Reload(c, http.StatusOK, summary)
}

// SampleCSV godoc
// @Summary Student CSV template
// @Description Download the sample CSV for student registration
// @Tags Imports
// @Produce octet-stream
// @Success 200 {file} file
// @Router /admin/imports/students/sample [get]
func (h *ImportsHandler) SampleCSV(c *gin.Context) {
	content, err := h.service.SampleCSV()
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="student-sample.csv"`)
	c.Data(http.StatusOK, "text/csv", content)
}
