package models

import "time"

// Interview session lifecycle states reported by the platform API.
const (
	SessionInProgress = "in_progress"
	SessionCompleted  = "completed"
	SessionAbandoned  = "abandoned"
)

// InterviewSession mirrors the platform API's session record.
type InterviewSession struct {
	ID            string     `json:"id"`
	StudentID     string     `json:"student_id"`
	StudentName   string     `json:"student_name"`
	JobRole       string     `json:"job_role"`
	Company       string     `json:"company"`
	InterviewType string     `json:"interview_type"`
	OverallScore  float64    `json:"overall_score"`
	SkillScores   []Score    `json:"skill_scores,omitempty"`
	Status        string     `json:"status"`
	StartedAt     time.Time  `json:"started_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

// Score is a single named score within a session.
type Score struct {
	Skill string  `json:"skill"`
	Value float64 `json:"value"`
}

// InterviewQuestion is one question served during the interview loop.
type InterviewQuestion struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Sequence int    `json:"sequence"`
	Total    int    `json:"total"`
}

// InterviewSummary is returned when a session completes.
type InterviewSummary struct {
	SessionID    string  `json:"session_id"`
	OverallScore float64 `json:"overall_score"`
	SkillScores  []Score `json:"skill_scores"`
	Feedback     string  `json:"feedback"`
}
