package upstream

import (
	"context"
	"fmt"

	"github.com/noah-isme/interview-console/internal/models"
)

// StartInterviewRequest configures a new interview session.
type StartInterviewRequest struct {
	JobRole       string `json:"job_role"`
	Company       string `json:"company"`
	InterviewType string `json:"interview_type"`
}

// StartInterview creates an interview session and returns its first question.
func (c *Client) StartInterview(ctx context.Context, token string, req StartInterviewRequest) (*models.InterviewSession, *models.InterviewQuestion, error) {
	var resp struct {
		Session  models.InterviewSession   `json:"session"`
		Question *models.InterviewQuestion `json:"question"`
	}
	if err := c.postJSON(ctx, "/api/interviews/start", token, req, &resp, "failed to start interview"); err != nil {
		return nil, nil, err
	}
	return &resp.Session, resp.Question, nil
}

// NextQuestion fetches the next question of an in-progress session. A nil
// question means the session has run out of questions.
func (c *Client) NextQuestion(ctx context.Context, token, sessionID string) (*models.InterviewQuestion, error) {
	var resp struct {
		Question *models.InterviewQuestion `json:"question"`
	}
	path := fmt.Sprintf("/api/interviews/%s/question", sessionID)
	if err := c.get(ctx, path, nil, token, &resp, "failed to load question"); err != nil {
		return nil, err
	}
	return resp.Question, nil
}

// SubmitAnswer posts the answer to the current question.
func (c *Client) SubmitAnswer(ctx context.Context, token, sessionID, questionID, answer string) error {
	payload := map[string]string{
		"question_id": questionID,
		"answer":      answer,
	}
	path := fmt.Sprintf("/api/interviews/%s/answer", sessionID)
	return c.postJSON(ctx, path, token, payload, nil, "failed to submit answer")
}

// CompleteInterview finalises the session and returns the scored summary.
func (c *Client) CompleteInterview(ctx context.Context, token, sessionID string) (*models.InterviewSummary, error) {
	var summary models.InterviewSummary
	path := fmt.Sprintf("/api/interviews/%s/complete", sessionID)
	if err := c.postJSON(ctx, path, token, struct{}{}, &summary, "failed to complete interview"); err != nil {
		return nil, err
	}
	return &summary, nil
}
