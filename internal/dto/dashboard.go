package dto

import "github.com/noah-isme/interview-console/internal/models"

// StudentDashboardResponse backs the student dashboard page.
type StudentDashboardResponse struct {
	Student        models.StudentSession     `json:"student"`
	SessionCount   int                       `json:"session_count"`
	AverageScore   float64                   `json:"average_score"`
	BestScore      float64                   `json:"best_score"`
	RecentSessions []models.InterviewSession `json:"recent_sessions"`
}

// AdminDashboardResponse backs the admin dashboard tab. Insights, UBP
// performance and retention are auxiliary: a fetch failure leaves the field
// null instead of failing the page.
type AdminDashboardResponse struct {
	Stats          *DashboardStats   `json:"stats"`
	Insights       []Insight         `json:"insights"`
	UBPPerformance []UBPPerformance  `json:"ubp_performance"`
	Retention      *RetentionSummary `json:"retention"`
}

// DashboardStats are the headline numbers of the admin dashboard.
type DashboardStats struct {
	TotalStudents     int     `json:"total_students"`
	ActiveStudents    int     `json:"active_students"`
	TotalSessions     int     `json:"total_sessions"`
	SessionsThisWeek  int     `json:"sessions_this_week"`
	AverageScore      float64 `json:"average_score"`
	CompletionRate    float64 `json:"completion_rate"`
	QuestionBankCount int     `json:"question_bank_count"`
}

// Insight is a generated observation surfaced on the dashboard.
type Insight struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	Severity string `json:"severity"`
}

// UBPPerformance aggregates scores per university-program-batch cohort.
type UBPPerformance struct {
	University   string  `json:"university"`
	Program      string  `json:"program"`
	Batch        string  `json:"batch"`
	StudentCount int     `json:"student_count"`
	AverageScore float64 `json:"average_score"`
}

// RetentionSummary reports how many students keep coming back.
type RetentionSummary struct {
	WeeklyActive  int     `json:"weekly_active"`
	MonthlyActive int     `json:"monthly_active"`
	RetentionRate float64 `json:"retention_rate"`
}

// AnalyticsResponse backs the admin analytics tab.
type AnalyticsResponse struct {
	SessionsPerDay  []TimeSeriesPoint `json:"sessions_per_day"`
	ScoreTrend      []TimeSeriesPoint `json:"score_trend"`
	TypeBreakdown   []LabelledCount   `json:"type_breakdown"`
	TopRoles        []LabelledCount   `json:"top_roles"`
	ScoreHistogram  []LabelledCount   `json:"score_histogram"`
	UniversityShare []LabelledCount   `json:"university_share"`
}

// TimeSeriesPoint is a date-keyed chart point.
type TimeSeriesPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// LabelledCount is a label-keyed chart point.
type LabelledCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}
