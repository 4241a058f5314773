package engine

// --- Tool input types ---

// ScoreATSInput is the input for the score_ats tool.
type ScoreATSInput struct {
	Resume         string `json:"resume" jsonschema:"Full resume text (plain text, already extracted from PDF/DOCX)"`
	JobDescription string `json:"job_description,omitempty" jsonschema:"Job description text to score against"`
	JobURL         string `json:"job_url,omitempty" jsonschema:"Job posting URL to fetch when job_description is not provided"`
	Label          string `json:"label,omitempty" jsonschema:"Optional label stored with the report in history (e.g. company or role)"`
}

// GenerateQuestionsInput is the input for the generate_questions tool.
type GenerateQuestionsInput struct {
	JobDescription string `json:"job_description" jsonschema:"Job description used to pick question categories"`
	JobTitle       string `json:"job_title,omitempty" jsonschema:"Job title, carried for display only"`
	Difficulty     string `json:"difficulty,omitempty" jsonschema:"Question difficulty: easy, medium, hard (default: medium)"`
	Count          int    `json:"count,omitempty" jsonschema:"Number of questions to generate (default: 5, max: 45)"`
}

// AnalyzeResponseInput is the input for the analyze_response tool.
type AnalyzeResponseInput struct {
	Question   string `json:"question" jsonschema:"The interview question that was asked"`
	Answer     string `json:"answer" jsonschema:"The candidate's free-text answer"`
	Category   string `json:"category,omitempty" jsonschema:"Question category: behavioral, technical, situational, general"`
	Difficulty string `json:"difficulty,omitempty" jsonschema:"Difficulty the question was asked at: easy, medium, hard (default: medium)"`
}

// SessionStartInput is the input for interview_session_start.
type SessionStartInput struct {
	JobDescription string `json:"job_description" jsonschema:"Job description the mock interview targets"`
	JobTitle       string `json:"job_title,omitempty" jsonschema:"Job title, stored with the session"`
	Difficulty     string `json:"difficulty,omitempty" jsonschema:"Difficulty: easy, medium, hard (default: medium)"`
	Count          int    `json:"count,omitempty" jsonschema:"Number of questions for the session (default: 5)"`
}

// SessionAnswerInput is the input for interview_session_answer.
type SessionAnswerInput struct {
	SessionID int64  `json:"session_id" jsonschema:"Session ID returned by interview_session_start"`
	Position  int    `json:"position" jsonschema:"1-based question position within the session"`
	Answer    string `json:"answer" jsonschema:"The candidate's free-text answer"`
}

// SessionReportInput is the input for interview_session_report.
type SessionReportInput struct {
	SessionID int64 `json:"session_id" jsonschema:"Session ID returned by interview_session_start"`
}

// HistoryListInput is the input for ats_history.
type HistoryListInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max reports to return (default: 20, max: 100)"`
}

// CoachInput is the input for the interview_coach tool.
type CoachInput struct {
	Question       string `json:"question" jsonschema:"The interview question that was asked"`
	Answer         string `json:"answer" jsonschema:"The candidate's free-text answer"`
	JobDescription string `json:"job_description,omitempty" jsonschema:"Job description for relevance context"`
}
