package prepserver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/anatolykoptev/go_prep/internal/engine"
	"github.com/anatolykoptev/go_prep/internal/engine/ats"
	"github.com/anatolykoptev/go_prep/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ScoreATSOutput is the output of the score_ats tool.
type ScoreATSOutput struct {
	ats.Report
	Outcome   string `json:"outcome"`
	JobTitle  string `json:"job_title,omitempty"`
	HistoryID int64  `json:"history_id,omitempty"`
}

func registerScoreATS(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "score_ats",
		Description: "Score a resume against a job description for ATS compatibility. Returns a 0-100 composite score (keyword match 50%, skill match 30%, format 20%) with matched/missing keywords, strengths, and improvement suggestions. Accepts job description text or a job posting URL to fetch.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.ScoreATSInput) (*mcp.CallToolResult, ScoreATSOutput, error) {
		if input.Resume == "" {
			return nil, ScoreATSOutput{}, fmt.Errorf("resume is required")
		}
		if input.JobDescription == "" && input.JobURL == "" {
			return nil, ScoreATSOutput{}, fmt.Errorf("one of job_description or job_url is required")
		}
		engine.IncrScoreRequests()

		jobDescription := input.JobDescription
		jobTitle := ""
		if jobDescription == "" {
			title, content, err := engine.FetchJobPosting(ctx, input.JobURL)
			if err != nil {
				return nil, ScoreATSOutput{}, fmt.Errorf("fetch job posting: %w", err)
			}
			jobDescription = content
			jobTitle = title
		} else if err := toolutil.ValidateJobDescription(jobDescription); err != nil {
			return nil, ScoreATSOutput{}, err
		}

		cacheKey := engine.CacheKey("score_ats", input.Resume, jobDescription)
		if out, ok := engine.CacheLoadJSON[ScoreATSOutput](ctx, cacheKey); ok {
			return nil, out, nil
		}

		report, outcome := ats.Score(input.Resume, jobDescription)

		out := ScoreATSOutput{
			Report:   *report,
			Outcome:  outcome.String(),
			JobTitle: jobTitle,
		}

		if db := ats.GetHistory(); db != nil && outcome == ats.OutcomeOK {
			engine.IncrHistoryOps()
			id, err := db.SaveReport(ctx, input.Label, report)
			if err != nil {
				slog.Warn("score_ats: history save failed", slog.Any("error", err))
			} else {
				out.HistoryID = id
			}
		}

		engine.CacheStoreJSON(ctx, cacheKey, out)
		return nil, out, nil
	})
}
