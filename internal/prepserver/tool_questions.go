package prepserver

import (
	"context"
	"fmt"

	"github.com/anatolykoptev/go_prep/internal/engine"
	"github.com/anatolykoptev/go_prep/internal/engine/interview"
	"github.com/anatolykoptev/go_prep/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// GenerateQuestionsOutput is the output of the generate_questions tool.
type GenerateQuestionsOutput struct {
	Questions  []interview.Question `json:"questions"`
	Count      int                  `json:"count"`
	Difficulty string               `json:"difficulty"`
	Outcome    string               `json:"outcome"`
}

func registerGenerateQuestions(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_questions",
		Description: "Generate mock-interview questions tailored to a job description. Picks behavioral, technical, and situational categories from the description text and samples questions at the requested difficulty (easy, medium, hard). Returns question text with category labels.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.GenerateQuestionsInput) (*mcp.CallToolResult, GenerateQuestionsOutput, error) {
		if err := toolutil.ValidateJobDescription(input.JobDescription); err != nil {
			return nil, GenerateQuestionsOutput{}, err
		}
		difficulty, err := toolutil.NormDifficulty(input.Difficulty)
		if err != nil {
			return nil, GenerateQuestionsOutput{}, err
		}
		count := toolutil.NormCount(input.Count, 5, 45)
		engine.IncrQuestionRequests()

		questions, outcome := interview.Generate(input.JobDescription, input.JobTitle, difficulty, count, nil)
		if len(questions) == 0 {
			return nil, GenerateQuestionsOutput{}, fmt.Errorf("no questions generated")
		}

		return nil, GenerateQuestionsOutput{
			Questions:  questions,
			Count:      len(questions),
			Difficulty: difficulty,
			Outcome:    outcome.String(),
		}, nil
	})
}
