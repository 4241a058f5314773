package prepserver

import (
	"context"
	"fmt"

	"github.com/anatolykoptev/go_prep/internal/engine"
	"github.com/anatolykoptev/go_prep/internal/engine/interview"
	"github.com/anatolykoptev/go_prep/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SessionStartOutput is the output of interview_session_start.
type SessionStartOutput struct {
	interview.Session
	Outcome string `json:"outcome"`
}

// SessionAnswerOutput is the output of interview_session_answer.
type SessionAnswerOutput struct {
	interview.Analysis
	SessionID int64  `json:"session_id"`
	Position  int    `json:"position"`
	Outcome   string `json:"outcome"`
}

func registerSessionTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "interview_session_start",
		Description: "Start a persistent mock-interview session: generates a question set for the job description and stores it locally. Answers are recorded per question with interview_session_answer; interview_session_report aggregates the scores.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.SessionStartInput) (*mcp.CallToolResult, SessionStartOutput, error) {
		if err := toolutil.ValidateJobDescription(input.JobDescription); err != nil {
			return nil, SessionStartOutput{}, err
		}
		difficulty, err := toolutil.NormDifficulty(input.Difficulty)
		if err != nil {
			return nil, SessionStartOutput{}, err
		}
		count := toolutil.NormCount(input.Count, 5, 45)
		engine.IncrSessionOps()

		session, outcome, err := interview.StartSession(ctx, input.JobDescription, input.JobTitle, difficulty, count, nil)
		if err != nil {
			return nil, SessionStartOutput{}, err
		}
		return nil, SessionStartOutput{Session: *session, Outcome: outcome.String()}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "interview_session_answer",
		Description: "Record and score an answer to a question in a mock-interview session. The answer is analyzed against the question's category and the session's difficulty, then stored with its score and feedback.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.SessionAnswerInput) (*mcp.CallToolResult, SessionAnswerOutput, error) {
		if input.SessionID <= 0 {
			return nil, SessionAnswerOutput{}, fmt.Errorf("session_id is required")
		}
		if input.Position <= 0 {
			return nil, SessionAnswerOutput{}, fmt.Errorf("position must be >= 1")
		}
		if err := toolutil.ValidateAnswer(input.Answer); err != nil {
			return nil, SessionAnswerOutput{}, err
		}
		engine.IncrSessionOps()

		analysis, outcome, err := interview.RecordAnswer(ctx, input.SessionID, input.Position, input.Answer)
		if err != nil {
			return nil, SessionAnswerOutput{}, err
		}
		return nil, SessionAnswerOutput{
			Analysis:  *analysis,
			SessionID: input.SessionID,
			Position:  input.Position,
			Outcome:   outcome.String(),
		}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "interview_session_report",
		Description: "Summarize a mock-interview session: per-question answers, scores, and feedback, plus the average score across answered questions.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.SessionReportInput) (*mcp.CallToolResult, interview.SessionSummary, error) {
		if input.SessionID <= 0 {
			return nil, interview.SessionSummary{}, fmt.Errorf("session_id is required")
		}
		engine.IncrSessionOps()

		summary, err := interview.SessionReport(ctx, input.SessionID)
		if err != nil {
			return nil, interview.SessionSummary{}, err
		}
		return nil, *summary, nil
	})
}
