package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/interview-console/internal/dto"
	"github.com/noah-isme/interview-console/internal/middleware"
	"github.com/noah-isme/interview-console/internal/models"
	"github.com/noah-isme/interview-console/internal/service"
	appErrors "github.com/noah-isme/interview-console/pkg/errors"
	"github.com/noah-isme/interview-console/pkg/response"
)

// maxUploadBytes bounds the accepted CSV upload size.
const maxUploadBytes = 8 << 20

type questionService interface {
	Create(ctx context.Context, token string, form service.QuestionForm) (*models.Question, error)
	Upload(ctx context.Context, token string, form service.BulkUploadForm) (*dto.BulkUploadSummary, error)
	SampleCSV() ([]byte, error)
}

type optionSetProvider interface {
	BulkUploadOptions(ctx context.Context, token string) (*models.OptionSets, error)
}

// QuestionsHandler serves the single-question and bulk upload forms plus
// the shared option sets behind them.
type QuestionsHandler struct {
	service questionService
	options optionSetProvider
}

// NewQuestionsHandler creates a new handler.
func NewQuestionsHandler(svc questionService, options optionSetProvider) *QuestionsHandler {
	return &QuestionsHandler{service: svc, options: options}
}

// Create godoc
// @Summary Create a question
// @Description Validate and create a single interview question
// @Tags Questions
// @Accept json
// @Produce json
// @Param payload body service.QuestionForm true "Question payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /admin/questions [post]
func (h *QuestionsHandler) Create(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var form service.QuestionForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid question payload"))
		return
	}

	created, err := h.service.Create(c.Request.Context(), claims.UpstreamToken, form)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Reload(c, http.StatusCreated, created)
}

// BulkUpload godoc
// @Summary Bulk question upload
// @Description Upload a CSV of questions with category selections
// @Tags Questions
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Question CSV"
// @Param industries formData string true "JSON array of industries"
// @Param companies formData string false "JSON array of companies"
// @Param roles formData string false "JSON array of roles"
// @Param work_experiences formData string false "JSON array of experience levels"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /admin/questions/bulk [post]
func (h *QuestionsHandler) BulkUpload(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	form := service.BulkUploadForm{
		Industries:      categoryField(c, "industries"),
		Companies:       categoryField(c, "companies"),
		Roles:           categoryField(c, "roles"),
		WorkExperiences: categoryField(c, "work_experiences"),
	}
	if !readUploadedFile(c, "file", &form.CSVFileName, &form.CSVContent) {
		return
	}

	summary, err := h.service.Upload(c.Request.Context(), claims.UpstreamToken, form)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Reload(c, http.StatusOK, summary.View())
}

// SampleCSV godoc
// @Summary Question CSV template
// @Description Download the sample CSV for the bulk question upload
// @Tags Questions
// @Produce octet-stream
// @Success 200 {file} file
// @Router /admin/questions/sample [get]
func (h *QuestionsHandler) SampleCSV(c *gin.Context) {
	content, err := h.service.SampleCSV()
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="question-sample.csv"`)
	c.Data(http.StatusOK, "text/csv", content)
}

// Options godoc
// @Summary Question form options
// @Description Return the shared option sets behind the question forms
// @Tags Questions
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /admin/questions/options [get]
func (h *QuestionsHandler) Options(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	sets, err := h.options.BulkUploadOptions(c.Request.Context(), claims.UpstreamToken)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sets, nil, middleware.ExtractMeta(c))
}

// categoryField decodes a JSON array form field; a plain value falls back
// to a single-element list.
func categoryField(c *gin.Context, name string) []string {
	raw := c.PostForm(name)
	if raw == "" {
		return nil
	}
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return []string{raw}
	}
	return values
}

// readUploadedFile pulls the optional CSV out of the multipart form. A
// missing file is left for the service's field validation to report; a form
// that fails to parse or read is answered with a distinct 400 and the
// handler must return.
func readUploadedFile(c *gin.Context, field string, name *string, content *[]byte) bool {
	uploaded, data, err := uploadedFile(c, field)
	switch {
	case err == nil:
		*name = uploaded
		*content = data
	case errors.Is(err, http.ErrMissingFile):
	default:
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "failed to read uploaded file"))
		return false
	}
	return true
}

func uploadedFile(c *gin.Context, field string) (string, []byte, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return "", nil, err
	}
	file, err := header.Open()
	if err != nil {
		return "", nil, err
	}
	defer file.Close()
	content, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		return "", nil, err
	}
	return header.Filename, content, nil
}
