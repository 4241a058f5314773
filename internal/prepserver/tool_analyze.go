package prepserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_prep/internal/engine"
	"github.com/anatolykoptev/go_prep/internal/engine/interview"
	"github.com/anatolykoptev/go_prep/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// AnalyzeResponseOutput is the output of the analyze_response tool.
type AnalyzeResponseOutput struct {
	interview.Analysis
	Outcome string `json:"outcome"`
}

func registerAnalyzeResponse(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyze_response",
		Description: "Analyze a free-text interview answer. Scores 0-100 from answer length against the difficulty band plus quality signals (concrete examples, measurable results, reflection, sentence clarity), and returns rule-based feedback for the question category.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.AnalyzeResponseInput) (*mcp.CallToolResult, AnalyzeResponseOutput, error) {
		if input.Question == "" {
			return nil, AnalyzeResponseOutput{}, fmt.Errorf("question is required")
		}
		if err := toolutil.ValidateAnswer(input.Answer); err != nil {
			return nil, AnalyzeResponseOutput{}, err
		}
		difficulty, err := toolutil.NormDifficulty(input.Difficulty)
		if err != nil {
			return nil, AnalyzeResponseOutput{}, err
		}
		category := strings.ToLower(strings.TrimSpace(input.Category))
		if category == "" {
			category = interview.CategoryGeneral
		}
		engine.IncrAnalyzeRequests()

		analysis, outcome := interview.Analyze(input.Question, input.Answer, category, difficulty)
		return nil, AnalyzeResponseOutput{
			Analysis: *analysis,
			Outcome:  outcome.String(),
		}, nil
	})
}
