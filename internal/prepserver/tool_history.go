package prepserver

import (
	"context"
	"fmt"

	"github.com/anatolykoptev/go_prep/internal/engine"
	"github.com/anatolykoptev/go_prep/internal/engine/ats"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// HistoryOutput is the output of the ats_history tool.
type HistoryOutput struct {
	Reports []ats.StoredReport `json:"reports"`
	Total   int                `json:"total"`
}

func registerATSHistory(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "ats_history",
		Description: "List past ATS compatibility reports saved by score_ats, newest first. Requires DATABASE_URL to be configured.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.HistoryListInput) (*mcp.CallToolResult, HistoryOutput, error) {
		db := ats.GetHistory()
		if db == nil {
			return nil, HistoryOutput{}, fmt.Errorf("history is not configured (set DATABASE_URL)")
		}
		engine.IncrHistoryOps()

		reports, err := db.ListReports(ctx, input.Limit)
		if err != nil {
			return nil, HistoryOutput{}, err
		}
		return nil, HistoryOutput{Reports: reports, Total: len(reports)}, nil
	})
}
