// Package prepserver wires the ATS scoring and mock-interview engines into
// MCP tools.
package prepserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterTools registers all interview-prep tools on the given MCP server:
// score_ats, ats_history, generate_questions, analyze_response,
// interview_session_start/answer/report, and interview_coach.
func RegisterTools(server *mcp.Server) {
	registerScoreATS(server)
	registerATSHistory(server)
	registerGenerateQuestions(server)
	registerAnalyzeResponse(server)
	registerSessionTools(server)
	registerInterviewCoach(server)
}
