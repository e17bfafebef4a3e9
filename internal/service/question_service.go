package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/interview-console/internal/dto"
	"github.com/noah-isme/interview-console/internal/models"
	"github.com/noah-isme/interview-console/internal/upstream"
	"github.com/noah-isme/interview-console/internal/widget"
	"github.com/noah-isme/interview-console/pkg/export"
)

// FieldErrors maps form field names to their validation messages. Handlers
// render it as a 400 with per-field details instead of a single message.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	return "validation failed"
}

type optionsInvalidator interface {
	Invalidate(ctx context.Context, token string)
}

type questionsAPI interface {
	CreateQuestion(ctx context.Context, token string, question models.Question) (*models.Question, error)
	UploadQuestions(ctx context.Context, token string, upload upstream.BulkQuestionUpload) (*dto.BulkUploadSummary, error)
}

// QuestionForm is the single-question form payload.
type QuestionForm struct {
	Text             string   `json:"question" validate:"notblank"`
	MandatorySkills  string   `json:"mandatory_skills"`
	PredefinedAnswer string   `json:"predefined_answer"`
	InterviewType    string   `json:"interview_type" validate:"notblank"`
	Difficulty       string   `json:"difficulty" validate:"notblank"`
	QuestionType     string   `json:"question_type" validate:"notblank"`
	Industries       []string `json:"industries" validate:"min=1"`
	Companies        []string `json:"companies"`
	Roles            []string `json:"roles"`
	WorkExperiences  []string `json:"work_experiences"`
}

// BulkUploadForm is the bulk question upload payload: category selections
// plus the CSV file.
type BulkUploadForm struct {
	Industries      []string `json:"industries" validate:"min=1"`
	Companies       []string `json:"companies" validate:"min=1"`
	Roles           []string `json:"roles" validate:"min=1"`
	WorkExperiences []string `json:"work_experiences" validate:"min=1"`
	CSVFileName     string   `json:"-" field:"file" validate:"omitempty,endswith=.csv"`
	CSVContent      []byte   `json:"-" field:"file" validate:"min=1"`
}

var questionSampleHeaders = []string{
	"question", "mandatory_skills", "predefined_answer",
	"interview_type", "difficulty", "question_type",
}

// QuestionService validates and submits the single-question and bulk upload
// forms of the admin console.
type QuestionService struct {
	api     questionsAPI
	options optionsInvalidator
	csv     *export.CSVExporter
	logger  *zap.Logger
}

// NewQuestionService constructs the question service.
func NewQuestionService(api questionsAPI, options optionsInvalidator, logger *zap.Logger) *QuestionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuestionService{api: api, options: options, csv: export.NewCSVExporter(), logger: logger}
}

// Create validates the single-question form and posts it to the platform
// API. Validation failures return FieldErrors without any upstream call.
func (s *QuestionService) Create(ctx context.Context, token string, form QuestionForm) (*models.Question, error) {
	if fields := validateForm(form); len(fields) > 0 {
		return nil, fields
	}

	question := models.Question{
		Text:             strings.TrimSpace(form.Text),
		MandatorySkills:  strings.TrimSpace(form.MandatorySkills),
		PredefinedAnswer: strings.TrimSpace(form.PredefinedAnswer),
		InterviewType:    form.InterviewType,
		Difficulty:       form.Difficulty,
		QuestionType:     form.QuestionType,
		Industries:       normalizeIndustries(form.Industries),
		Companies:        form.Companies,
		Roles:            form.Roles,
		WorkExperiences:  form.WorkExperiences,
	}
	created, err := s.api.CreateQuestion(ctx, token, question)
	if err != nil {
		return nil, err
	}
	s.logger.Info("question created", zap.String("interview_type", question.InterviewType))
	return created, nil
}

// Upload validates the bulk upload form and posts the multipart payload.
// The returned summary backs the modal shown before the page reloads.
func (s *QuestionService) Upload(ctx context.Context, token string, form BulkUploadForm) (*dto.BulkUploadSummary, error) {
	if fields := validateForm(form); len(fields) > 0 {
		return nil, fields
	}

	summary, err := s.api.UploadQuestions(ctx, token, upstream.BulkQuestionUpload{
		Industries:      normalizeIndustries(form.Industries),
		Companies:       form.Companies,
		Roles:           form.Roles,
		WorkExperiences: form.WorkExperiences,
		CSVFileName:     form.CSVFileName,
		CSVContent:      form.CSVContent,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("bulk question upload complete",
		zap.Int("inserted", summary.Inserted),
		zap.Int("skipped", len(summary.SkippedRows)))
	if s.options != nil {
		s.options.Invalidate(ctx, token)
	}
	return summary, nil
}

// SampleCSV renders the downloadable question upload template.
func (s *QuestionService) SampleCSV() ([]byte, error) {
	return s.csv.Render(export.Dataset{
		Headers: questionSampleHeaders,
		Rows: [][]string{{
			"Tell me about a project you are proud of.",
			"communication",
			"A concrete project walkthrough covering role and impact.",
			"Behavioral",
			"Medium",
			"Open-ended",
		}},
	})
}

// normalizeIndustries runs the submitted set through the industry picker so
// the sentinel stays exclusive even when the payload pairs it with others.
func normalizeIndustries(industries []string) []string {
	picker := widget.NewMultiSelect(widget.MultiSelectConfig{
		Selected: industries,
		Sentinel: models.NoSpecificIndustry,
	})
	return picker.Selected()
}
