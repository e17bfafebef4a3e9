package models

import "time"

// Student mirrors the platform API's student record.
type Student struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	University    string     `json:"university"`
	Program       string     `json:"program"`
	Batch         string     `json:"batch"`
	SessionCount  int        `json:"session_count"`
	AverageScore  float64    `json:"average_score"`
	Status        string     `json:"status"`
	LastSessionAt *time.Time `json:"last_session_at,omitempty"`
}
