package models

// NoSpecificIndustry is the sentinel industry option. Selecting it is
// mutually exclusive with every other industry.
const NoSpecificIndustry = "No specific industry"

// OptionSets holds the shared option lists backing the question upload and
// role mapping forms.
type OptionSets struct {
	Industries      []string `json:"industries"`
	Companies       []string `json:"companies"`
	Roles           []string `json:"roles"`
	WorkExperiences []string `json:"work_experiences"`
}

// LeaderboardOptions holds the filter option lists of the leaderboard view.
type LeaderboardOptions struct {
	Universities []string `json:"universities"`
	JobRoles     []string `json:"job_roles"`
	Periods      []string `json:"periods"`
}
