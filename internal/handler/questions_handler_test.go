package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/interview-console/internal/dto"
	"github.com/noah-isme/interview-console/internal/middleware"
	"github.com/noah-isme/interview-console/internal/models"
	"github.com/noah-isme/interview-console/internal/service"
)

type responseEnvelope struct {
	Data       map[string]interface{} `json:"data"`
	Error      map[string]interface{} `json:"error"`
	Pagination map[string]interface{} `json:"pagination"`
	Meta       map[string]interface{} `json:"meta"`
}

func adminContext(t *testing.T, rec *httptest.ResponseRecorder, req *http.Request) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(rec)
	c.Request = req
	c.Set(middleware.ContextUserKey, &models.ConsoleClaims{
		Role:          models.RoleAdmin,
		UpstreamToken: "upstream-token",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: "admin-1",
		},
	})
	return c
}

type fakeQuestionSrv struct {
	created    *models.Question
	createErr  error
	summary    *dto.BulkUploadSummary
	uploadErr  error
	lastForm   service.QuestionForm
	lastUpload service.BulkUploadForm
}

func (f *fakeQuestionSrv) Create(_ context.Context, _ string, form service.QuestionForm) (*models.Question, error) {
	f.lastForm = form
	return f.created, f.createErr
}

func (f *fakeQuestionSrv) Upload(_ context.Context, _ string, form service.BulkUploadForm) (*dto.BulkUploadSummary, error) {
	f.lastUpload = form
	return f.summary, f.uploadErr
}

func (f *fakeQuestionSrv) SampleCSV() ([]byte, error) {
	return []byte("question,mandatory_skills,predefined_answer,interview_type,difficulty,question_type\n"), nil
}

type fakeOptionSets struct {
	sets *models.OptionSets
	err  error
}

func (f *fakeOptionSets) BulkUploadOptions(context.Context, string) (*models.OptionSets, error) {
	return f.sets, f.err
}

func TestCreateQuestionFieldErrorsRenderAs400(t *testing.T) {
	srv := &fakeQuestionSrv{createErr: service.FieldErrors{"industries": "select at least one option"}}
	handler := NewQuestionsHandler(srv, &fakeOptionSets{})

	body, _ := json.Marshal(map[string]interface{}{"question": "Why Go?"})
	rec := httptest.NewRecorder()
	c := adminContext(t, rec, httptest.NewRequest(http.MethodPost, "/admin/questions", bytes.NewReader(body)))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	fields, ok := envelope.Meta["fields"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "select at least one option", fields["industries"])
}

func TestCreateQuestionSignalsReload(t *testing.T) {
	srv := &fakeQuestionSrv{created: &models.Question{ID: "q-1"}}
	handler := NewQuestionsHandler(srv, &fakeOptionSets{})

	body, _ := json.Marshal(map[string]interface{}{
		"question":       "Why Go?",
		"interview_type": "Technical",
		"difficulty":     "Easy",
		"question_type":  "Open-ended",
		"industries":     []string{"Finance"},
	})
	rec := httptest.NewRecorder()
	c := adminContext(t, rec, httptest.NewRequest(http.MethodPost, "/admin/questions", bytes.NewReader(body)))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, true, envelope.Meta["reload"])
	assert.Equal(t, []string{"Finance"}, srv.lastForm.Industries)
}

func TestBulkUploadDecodesMultipartForm(t *testing.T) {
	srv := &fakeQuestionSrv{summary: &dto.BulkUploadSummary{Inserted: 12, SkippedRows: []int{3, 7}}}
	handler := NewQuestionsHandler(srv, &fakeOptionSets{})

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("industries", `["Finance","Retail"]`))
	require.NoError(t, writer.WriteField("roles", `["Backend Engineer"]`))
	part, err := writer.CreateFormFile("file", "questions.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte("question,mandatory_skills\nWhy Go?,curiosity\n"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/questions/bulk", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c := adminContext(t, rec, req)

	handler.BulkUpload(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"Finance", "Retail"}, srv.lastUpload.Industries)
	assert.Equal(t, "questions.csv", srv.lastUpload.CSVFileName)

	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "Questions inserted: 12", envelope.Data["inserted_line"])
	assert.Equal(t, "Rows skipped: 2", envelope.Data["skipped_line"])
	assert.Equal(t, true, envelope.Meta["reload"])
}

func TestBulkUploadMissingFileRendersFieldError(t *testing.T) {
	srv := &fakeQuestionSrv{uploadErr: service.FieldErrors{"file": "a CSV file is required"}}
	handler := NewQuestionsHandler(srv, &fakeOptionSets{})

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("industries", `["Finance"]`))
	require.NoError(t, writer.Close())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/questions/bulk", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c := adminContext(t, rec, req)

	handler.BulkUpload(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQuestionSampleCSVDownload(t *testing.T) {
	handler := NewQuestionsHandler(&fakeQuestionSrv{}, &fakeOptionSets{})

	rec := httptest.NewRecorder()
	c := adminContext(t, rec, httptest.NewRequest(http.MethodGet, "/admin/questions/sample", nil))

	handler.SampleCSV(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.True(t, strings.Contains(rec.Header().Get("Content-Disposition"), "question-sample.csv"))
}

func TestQuestionOptionsEndpoint(t *testing.T) {
	handler := NewQuestionsHandler(&fakeQuestionSrv{}, &fakeOptionSets{
		sets: &models.OptionSets{Industries: []string{models.NoSpecificIndustry, "Finance"}},
	})

	rec := httptest.NewRecorder()
	c := adminContext(t, rec, httptest.NewRequest(http.MethodGet, "/admin/questions/options", nil))

	handler.Options(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	industries, ok := envelope.Data["industries"].([]interface{})
	require.True(t, ok)
	assert.Contains(t, industries, models.NoSpecificIndustry)
}

func TestBulkUploadUnreadableFormReportsReadFailure(t *testing.T) {
	srv := &fakeQuestionSrv{}
	handler := NewQuestionsHandler(srv, &fakeOptionSets{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/questions/bulk", strings.NewReader("not a multipart body"))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=broken")
	c := adminContext(t, rec, req)

	handler.BulkUpload(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, srv.lastUpload.CSVFileName, "service must not see a half-read upload")

	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "failed to read uploaded file", envelope.Error["message"])
}
