package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/interview-console/internal/dto"
	"github.com/noah-isme/interview-console/internal/models"
	"github.com/noah-isme/interview-console/internal/upstream"
)

type fakeQuestionsAPI struct {
	created      *models.Question
	createErr    error
	createCalls  int
	lastQuestion models.Question

	summary     *dto.BulkUploadSummary
	uploadErr   error
	uploadCalls int
	lastUpload  upstream.BulkQuestionUpload
}

func (f *fakeQuestionsAPI) CreateQuestion(_ context.Context, _ string, question models.Question) (*models.Question, error) {
	f.createCalls++
	f.lastQuestion = question
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.created != nil {
		return f.created, nil
	}
	return &question, nil
}

func (f *fakeQuestionsAPI) UploadQuestions(_ context.Context, _ string, upload upstream.BulkQuestionUpload) (*dto.BulkUploadSummary, error) {
	f.uploadCalls++
	f.lastUpload = upload
	return f.summary, f.uploadErr
}

func validQuestionForm() QuestionForm {
	return QuestionForm{
		Text:          "Describe a time you disagreed with a teammate.",
		InterviewType: "Behavioral",
		Difficulty:    "Medium",
		QuestionType:  "Open-ended",
		Industries:    []string{"Finance"},
	}
}

func TestCreateQuestionWithoutIndustriesBlocksSubmission(t *testing.T) {
	api := &fakeQuestionsAPI{}
	svc := NewQuestionService(api, nil, nil)

	form := validQuestionForm()
	form.Industries = nil
	created, err := svc.Create(context.Background(), "token", form)

	require.Error(t, err)
	assert.Nil(t, created)
	assert.Zero(t, api.createCalls)

	var fields FieldErrors
	require.True(t, errors.As(err, &fields))
	assert.Contains(t, fields, "industries")
}

func TestCreateQuestionReducesSentinelSelection(t *testing.T) {
	api := &fakeQuestionsAPI{}
	svc := NewQuestionService(api, nil, nil)

	form := validQuestionForm()
	form.Industries = []string{"Finance", models.NoSpecificIndustry, "Retail"}
	_, err := svc.Create(context.Background(), "token", form)

	require.NoError(t, err)
	assert.Equal(t, []string{models.NoSpecificIndustry}, api.lastQuestion.Industries)
}

func TestCreateQuestionRequiredTextFields(t *testing.T) {
	api := &fakeQuestionsAPI{}
	svc := NewQuestionService(api, nil, nil)

	_, err := svc.Create(context.Background(), "token", QuestionForm{Industries: []string{"Finance"}})

	var fields FieldErrors
	require.True(t, errors.As(err, &fields))
	assert.Contains(t, fields, "question")
	assert.Contains(t, fields, "interview_type")
	assert.Contains(t, fields, "difficulty")
	assert.Contains(t, fields, "question_type")
	assert.Zero(t, api.createCalls)
}

func validBulkUploadForm() BulkUploadForm {
	return BulkUploadForm{
		Industries:      []string{"Finance"},
		Companies:       []string{"Acme"},
		Roles:           []string{"Analyst"},
		WorkExperiences: []string{"0-2 years"},
		CSVFileName:     "questions.csv",
		CSVContent:      []byte("question,mandatory_skills\n"),
	}
}

func TestBulkUploadRequiresFile(t *testing.T) {
	api := &fakeQuestionsAPI{}
	svc := NewQuestionService(api, nil, nil)

	form := validBulkUploadForm()
	form.CSVFileName = ""
	form.CSVContent = nil
	_, err := svc.Upload(context.Background(), "token", form)

	var fields FieldErrors
	require.True(t, errors.As(err, &fields))
	assert.Contains(t, fields, "file")
	assert.Zero(t, api.uploadCalls)
}

func TestBulkUploadRequiresEveryCategory(t *testing.T) {
	api := &fakeQuestionsAPI{}
	svc := NewQuestionService(api, nil, nil)

	form := validBulkUploadForm()
	form.Companies = nil
	form.WorkExperiences = nil
	_, err := svc.Upload(context.Background(), "token", form)

	var fields FieldErrors
	require.True(t, errors.As(err, &fields))
	assert.Contains(t, fields, "companies")
	assert.Contains(t, fields, "work_experiences")
	assert.NotContains(t, fields, "roles")
	assert.Zero(t, api.uploadCalls)
}

func TestBulkUploadSummaryLines(t *testing.T) {
	api := &fakeQuestionsAPI{
		summary: &dto.BulkUploadSummary{Inserted: 12, SkippedRows: []int{3, 7}},
	}
	svc := NewQuestionService(api, nil, nil)

	summary, err := svc.Upload(context.Background(), "token", validBulkUploadForm())

	require.NoError(t, err)
	assert.Equal(t, "Questions inserted: 12", summary.InsertedLine())
	assert.Equal(t, "Rows skipped: 2", summary.SkippedLine())
	assert.Equal(t, 1, api.uploadCalls)
	assert.Equal(t, "questions.csv", api.lastUpload.CSVFileName)
}

func TestQuestionSampleCSVColumns(t *testing.T) {
	svc := NewQuestionService(&fakeQuestionsAPI{}, nil, nil)

	content, err := svc.SampleCSV()

	require.NoError(t, err)
	assert.Contains(t, string(content), "question,mandatory_skills,predefined_answer,interview_type,difficulty,question_type")
}

func TestCreateQuestionRejectsBlankText(t *testing.T) {
	api := &fakeQuestionsAPI{}
	svc := NewQuestionService(api, nil, nil)

	form := validQuestionForm()
	form.Text = "   "
	_, err := svc.Create(context.Background(), "token", form)

	var fields FieldErrors
	require.True(t, errors.As(err, &fields))
	assert.Equal(t, "this field is required", fields["question"])
	assert.Zero(t, api.createCalls)
}

func TestBulkUploadRejectsNonCSVFileName(t *testing.T) {
	api := &fakeQuestionsAPI{}
	svc := NewQuestionService(api, nil, nil)

	form := validBulkUploadForm()
	form.CSVFileName = "questions.xlsx"
	_, err := svc.Upload(context.Background(), "token", form)

	var fields FieldErrors
	require.True(t, errors.As(err, &fields))
	assert.Equal(t, "only CSV files are accepted", fields["file"])
	assert.Zero(t, api.uploadCalls)
}
