package models

// Pagination contains pagination metadata supplied by the platform API. The
// console never computes page math itself.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Pages      int `json:"pages"`
	TotalCount int `json:"total_count"`
}

// HasPrev reports whether a previous page exists.
func (p *Pagination) HasPrev() bool {
	return p != nil && p.Page > 1
}

// HasNext reports whether a next page exists.
func (p *Pagination) HasNext() bool {
	return p != nil && p.Page < p.Pages
}

// StudentFilter captures the student list filters of the admin console.
type StudentFilter struct {
	Search     string `json:"search"`
	University string `json:"university"`
	Program    string `json:"program"`
	Batch      string `json:"batch"`
	Status     string `json:"status"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
}

// SessionFilter captures the interview session list filters.
type SessionFilter struct {
	Search        string `json:"search"`
	JobRole       string `json:"job_role"`
	Company       string `json:"company"`
	InterviewType string `json:"interview_type"`
	Status        string `json:"status"`
	Page          int    `json:"page"`
	PageSize      int    `json:"page_size"`
}

// LeaderboardFilter scopes the leaderboard view.
type LeaderboardFilter struct {
	University string `json:"university"`
	Program    string `json:"program"`
	Batch      string `json:"batch"`
	JobRole    string `json:"job_role"`
	Period     string `json:"period"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
}
