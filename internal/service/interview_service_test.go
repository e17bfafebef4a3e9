package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/interview-console/internal/models"
	"github.com/noah-isme/interview-console/internal/upstream"
)

type fakeInterviewAPI struct {
	session      *models.InterviewSession
	first        *models.InterviewQuestion
	next         *models.InterviewQuestion
	summary      *models.InterviewSummary
	answerCalls  int
	lastAnswer   string
	lastQuestion string
}

func (f *fakeInterviewAPI) StartInterview(context.Context, string, upstream.StartInterviewRequest) (*models.InterviewSession, *models.InterviewQuestion, error) {
	return f.session, f.first, nil
}

func (f *fakeInterviewAPI) NextQuestion(context.Context, string, string) (*models.InterviewQuestion, error) {
	return f.next, nil
}

func (f *fakeInterviewAPI) SubmitAnswer(_ context.Context, _ string, _ string, questionID, answer string) error {
	f.answerCalls++
	f.lastQuestion = questionID
	f.lastAnswer = answer
	return nil
}

func (f *fakeInterviewAPI) CompleteInterview(context.Context, string, string) (*models.InterviewSummary, error) {
	return f.summary, nil
}

func TestStartInterviewReturnsFirstQuestionAndSteps(t *testing.T) {
	api := &fakeInterviewAPI{
		session: &models.InterviewSession{ID: "sess-1"},
		first:   &models.InterviewQuestion{ID: "q-1", Text: "Tell me about yourself.", Sequence: 1, Total: 5},
	}
	svc := NewInterviewService(api, nil)

	resp, err := svc.Start(context.Background(), "token", StartInterviewInput{
		JobRole:       "Backend Engineer",
		InterviewType: "Technical",
	})

	require.NoError(t, err)
	assert.Equal(t, "sess-1", resp.SessionID)
	require.NotNil(t, resp.Question)
	assert.Equal(t, 1, resp.Question.Sequence)
	assert.Equal(t, 5, resp.Question.Total)
	assert.Len(t, resp.Steps, 4)
}

func TestStartInterviewRequiresRoleAndType(t *testing.T) {
	svc := NewInterviewService(&fakeInterviewAPI{}, nil)

	_, err := svc.Start(context.Background(), "token", StartInterviewInput{})

	var fields FieldErrors
	require.True(t, errors.As(err, &fields))
	assert.Contains(t, fields, "job_role")
	assert.Contains(t, fields, "interview_type")
}

func TestAnswerSubmitsAndReturnsNextQuestion(t *testing.T) {
	api := &fakeInterviewAPI{
		next: &models.InterviewQuestion{ID: "q-2", Sequence: 2, Total: 5},
	}
	svc := NewInterviewService(api, nil)

	question, err := svc.Answer(context.Background(), "token", AnswerInput{
		SessionID:  "sess-1",
		QuestionID: "q-1",
		Answer:     "I led the migration of our billing system.",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, api.answerCalls)
	assert.Equal(t, "q-1", api.lastQuestion)
	require.NotNil(t, question)
	assert.Equal(t, "q-2", question.ID)
}

func TestAnswerOnLastQuestionReturnsNil(t *testing.T) {
	api := &fakeInterviewAPI{next: nil}
	svc := NewInterviewService(api, nil)

	question, err := svc.Answer(context.Background(), "token", AnswerInput{
		SessionID:  "sess-1",
		QuestionID: "q-5",
		Answer:     "Done.",
	})

	require.NoError(t, err)
	assert.Nil(t, question)
}

func TestCompleteReturnsScoredSummary(t *testing.T) {
	api := &fakeInterviewAPI{
		summary: &models.InterviewSummary{
			SessionID:    "sess-1",
			OverallScore: 87.5,
			SkillScores:  []models.Score{{Skill: "communication", Value: 90}},
		},
	}
	svc := NewInterviewService(api, nil)

	summary, err := svc.Complete(context.Background(), "token", "sess-1")

	require.NoError(t, err)
	assert.Equal(t, 87.5, summary.OverallScore)
	require.Len(t, summary.SkillScores, 1)
}
