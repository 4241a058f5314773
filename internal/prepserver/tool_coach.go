package prepserver

import (
	"context"
	"fmt"

	"github.com/anatolykoptev/go_prep/internal/engine"
	"github.com/anatolykoptev/go_prep/internal/engine/interview"
	"github.com/anatolykoptev/go_prep/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerInterviewCoach(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "interview_coach",
		Description: "LLM-backed review of an interview answer: score, strengths, improvements, and overall feedback, judged against the job requirements. Requires LLM_API_KEY. For deterministic rule-based scoring use analyze_response instead.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.CoachInput) (*mcp.CallToolResult, interview.CoachReview, error) {
		if !engine.LLMAvailable() {
			return nil, interview.CoachReview{}, engine.ErrLLMDisabled
		}
		if input.Question == "" {
			return nil, interview.CoachReview{}, fmt.Errorf("question is required")
		}
		if err := toolutil.ValidateAnswer(input.Answer); err != nil {
			return nil, interview.CoachReview{}, err
		}
		engine.IncrCoachRequests()

		cacheKey := engine.CacheKey("interview_coach", input.Question, input.Answer, input.JobDescription)
		if out, ok := engine.CacheLoadJSON[interview.CoachReview](ctx, cacheKey); ok {
			return nil, out, nil
		}

		review, err := interview.Coach(ctx, input.Question, input.Answer, input.JobDescription)
		if err != nil {
			return nil, interview.CoachReview{}, err
		}

		engine.CacheStoreJSON(ctx, cacheKey, *review)
		return nil, *review, nil
	})
}
