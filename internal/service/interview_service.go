package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/interview-console/internal/dto"
	"github.com/noah-isme/interview-console/internal/models"
	"github.com/noah-isme/interview-console/internal/upstream"
)

type interviewAPI interface {
	StartInterview(ctx context.Context, token string, req upstream.StartInterviewRequest) (*models.InterviewSession, *models.InterviewQuestion, error)
	NextQuestion(ctx context.Context, token, sessionID string) (*models.InterviewQuestion, error)
	SubmitAnswer(ctx context.Context, token, sessionID, questionID, answer string) error
	CompleteInterview(ctx context.Context, token, sessionID string) (*models.InterviewSummary, error)
}

// StartInterviewInput configures a new interview for the signed-in student.
type StartInterviewInput struct {
	JobRole       string `json:"job_role" binding:"required" validate:"notblank"`
	Company       string `json:"company"`
	InterviewType string `json:"interview_type" binding:"required" validate:"notblank"`
}

// AnswerInput is one submitted answer of the interview loop.
type AnswerInput struct {
	SessionID  string `json:"session_id" binding:"required" validate:"notblank"`
	QuestionID string `json:"question_id" binding:"required" validate:"notblank"`
	Answer     string `json:"answer" binding:"required" validate:"notblank"`
}

// InterviewService drives the student interview flow: instruction slides,
// session start, the question and answer loop, then completion and scoring.
type InterviewService struct {
	api    interviewAPI
	logger *zap.Logger
}

// NewInterviewService constructs the interview service.
func NewInterviewService(api interviewAPI, logger *zap.Logger) *InterviewService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InterviewService{api: api, logger: logger}
}

// Instructions returns the fixed pre-interview carousel slides.
func (s *InterviewService) Instructions() []dto.InstructionStep {
	return dto.InstructionSteps
}

// Start creates a session and returns its first question plus the
// instruction slides the interview screen opens on.
func (s *InterviewService) Start(ctx context.Context, token string, input StartInterviewInput) (*dto.StartInterviewResponse, error) {
	if fields := validateForm(input); len(fields) > 0 {
		return nil, fields
	}

	session, question, err := s.api.StartInterview(ctx, token, upstream.StartInterviewRequest{
		JobRole:       input.JobRole,
		Company:       input.Company,
		InterviewType: input.InterviewType,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("interview started",
		zap.String("session_id", session.ID),
		zap.String("job_role", input.JobRole))
	return &dto.StartInterviewResponse{
		SessionID: session.ID,
		Question:  questionView(question),
		Steps:     dto.InstructionSteps,
	}, nil
}

// CurrentQuestion fetches the question the student should answer next. A
// nil view means the session has no questions left and should complete.
func (s *InterviewService) CurrentQuestion(ctx context.Context, token, sessionID string) (*dto.QuestionView, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, FieldErrors{"session_id": "this field is required"}
	}
	question, err := s.api.NextQuestion(ctx, token, sessionID)
	if err != nil {
		return nil, err
	}
	return questionView(question), nil
}

// Answer submits one answer and returns the next question, or nil when the
// session is out of questions.
func (s *InterviewService) Answer(ctx context.Context, token string, input AnswerInput) (*dto.QuestionView, error) {
	if fields := validateForm(input); len(fields) > 0 {
		return nil, fields
	}

	if err := s.api.SubmitAnswer(ctx, token, input.SessionID, input.QuestionID, input.Answer); err != nil {
		return nil, err
	}
	question, err := s.api.NextQuestion(ctx, token, input.SessionID)
	if err != nil {
		return nil, err
	}
	return questionView(question), nil
}

// Complete finalises the session and returns the scored summary.
func (s *InterviewService) Complete(ctx context.Context, token, sessionID string) (*models.InterviewSummary, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, FieldErrors{"session_id": "this field is required"}
	}
	summary, err := s.api.CompleteInterview(ctx, token, sessionID)
	if err != nil {
		return nil, err
	}
	s.logger.Info("interview completed",
		zap.String("session_id", sessionID),
		zap.Float64("overall_score", summary.OverallScore))
	return summary, nil
}

func questionView(q *models.InterviewQuestion) *dto.QuestionView {
	if q == nil {
		return nil
	}
	return &dto.QuestionView{
		ID:       q.ID,
		Text:     q.Text,
		Sequence: q.Sequence,
		Total:    q.Total,
	}
}
