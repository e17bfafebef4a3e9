package dto

// InstructionStep is one slide of the pre-interview instruction carousel.
type InstructionStep struct {
	Sequence int    `json:"sequence"`
	Title    string `json:"title"`
	Body     string `json:"body"`
}

// InstructionSteps are the fixed carousel slides shown before an interview
// starts. Content is static; the carousel index lives in the page.
var InstructionSteps = []InstructionStep{
	{Sequence: 1, Title: "Find a quiet spot", Body: "The interview takes around 20 minutes. Pick a place without interruptions."},
	{Sequence: 2, Title: "Answer in your own words", Body: "The interviewer scores reasoning, not memorised answers. Think aloud."},
	{Sequence: 3, Title: "One question at a time", Body: "You cannot go back to a previous question once you submit an answer."},
	{Sequence: 4, Title: "Your score arrives at the end", Body: "A full breakdown with per-skill scores appears when the session completes."},
}

// StartInterviewResponse combines the created session with its first question.
type StartInterviewResponse struct {
	SessionID string            `json:"session_id"`
	Question  *QuestionView     `json:"question"`
	Steps     []InstructionStep `json:"steps,omitempty"`
}

// QuestionView is a question as shown on the interview screen.
type QuestionView struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Sequence int    `json:"sequence"`
	Total    int    `json:"total"`
}
