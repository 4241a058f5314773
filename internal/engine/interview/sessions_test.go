package interview

import (
	"context"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func setupSessionsDB(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	resetSessionsDB()
	t.Cleanup(resetSessionsDB)
}

func TestSessionLifecycle(t *testing.T) {
	setupSessionsDB(t)
	ctx := context.Background()
	jd := "Python developer with SQL who will manage a team project."

	session, outcome, err := StartSession(ctx, jd, "Backend Engineer", DifficultyMedium, 3, rand.New(rand.NewPCG(1, 1)))
	require.NoError(t, err)
	require.Equal(t, OutcomeOK, outcome)
	require.NotZero(t, session.ID)
	require.Len(t, session.Questions, 3)
	require.Equal(t, 1, session.Questions[0].Position)

	answer := strings.Repeat("For example I improved our deployment pipeline and learned plenty. ", 8)
	analysis, outcome, err := RecordAnswer(ctx, session.ID, 1, answer)
	require.NoError(t, err)
	require.Equal(t, OutcomeOK, outcome)
	require.GreaterOrEqual(t, analysis.Score, 0.0)
	require.LessOrEqual(t, analysis.Score, 100.0)
	require.NotEmpty(t, analysis.Feedback)

	summary, err := SessionReport(ctx, session.ID)
	require.NoError(t, err)
	require.Equal(t, session.ID, summary.SessionID)
	require.Equal(t, 3, summary.Total)
	require.Equal(t, 1, summary.Answered)
	require.Equal(t, analysis.Score, summary.AverageScore)
	require.True(t, summary.Questions[0].Answered)
	require.False(t, summary.Questions[1].Answered)
}

func TestRecordAnswerUnknownPosition(t *testing.T) {
	setupSessionsDB(t)
	ctx := context.Background()

	session, _, err := StartSession(ctx, "Python and SQL role on a team.", "", DifficultyEasy, 2, rand.New(rand.NewPCG(9, 9)))
	require.NoError(t, err)

	_, _, err = RecordAnswer(ctx, session.ID, 99, "a perfectly reasonable answer")
	require.Error(t, err)
}

func TestSessionReportUnknownSession(t *testing.T) {
	setupSessionsDB(t)

	_, err := SessionReport(context.Background(), 424242)
	require.Error(t, err)
}
