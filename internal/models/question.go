package models

// Question mirrors the platform API's interview question record.
type Question struct {
	ID               string   `json:"id,omitempty"`
	Text             string   `json:"question"`
	MandatorySkills  string   `json:"mandatory_skills"`
	PredefinedAnswer string   `json:"predefined_answer"`
	InterviewType    string   `json:"interview_type"`
	Difficulty       string   `json:"difficulty"`
	QuestionType     string   `json:"question_type"`
	Industries       []string `json:"industries"`
	Companies        []string `json:"companies"`
	Roles            []string `json:"roles"`
	WorkExperiences  []string `json:"work_experiences"`
}

// ProgramRoleMapping associates job roles with a UBP cohort and work
// experience level.
type ProgramRoleMapping struct {
	UBPID          string   `json:"ubp_id,omitempty"`
	University     string   `json:"university"`
	Program        string   `json:"program"`
	Batch          string   `json:"batch"`
	WorkExperience string   `json:"work_experience"`
	Roles          []string `json:"roles"`
}
