package models

// LeaderboardEntry is one ranked row of the leaderboard view.
type LeaderboardEntry struct {
	Rank         int     `json:"rank"`
	StudentID    string  `json:"student_id"`
	StudentName  string  `json:"student_name"`
	University   string  `json:"university"`
	Program      string  `json:"program"`
	Batch        string  `json:"batch"`
	SessionCount int     `json:"session_count"`
	AverageScore float64 `json:"average_score"`
	BestScore    float64 `json:"best_score"`
}
