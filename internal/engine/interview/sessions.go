package interview

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Session is a persisted practice session with its question list.
type Session struct {
	ID         int64             `json:"id"`
	JobTitle   string            `json:"job_title,omitempty"`
	Difficulty string            `json:"difficulty"`
	CreatedAt  string            `json:"created_at"`
	Questions  []SessionQuestion `json:"questions"`
}

// SessionQuestion is one question within a session, with its answer and
// score once recorded.
type SessionQuestion struct {
	Position int     `json:"position"`
	Question string  `json:"question"`
	Category string  `json:"category"`
	Answer   string  `json:"answer,omitempty"`
	Score    float64 `json:"score,omitempty"`
	Feedback string  `json:"feedback,omitempty"`
	Answered bool    `json:"answered"`
}

// SessionSummary aggregates a session's progress and scores.
type SessionSummary struct {
	SessionID    int64             `json:"session_id"`
	JobTitle     string            `json:"job_title,omitempty"`
	Difficulty   string            `json:"difficulty"`
	Total        int               `json:"total"`
	Answered     int               `json:"answered"`
	AverageScore float64           `json:"average_score"`
	Questions    []SessionQuestion `json:"questions"`
}

var (
	sessionsDB   *sql.DB
	sessionsOnce sync.Once
	sessionsErr  error
)

// openSessionsDB opens (or creates) the SQLite sessions database.
func openSessionsDB() (*sql.DB, error) {
	sessionsOnce.Do(func() {
		dir := filepath.Join(os.Getenv("HOME"), ".go_prep")
		if err := os.MkdirAll(dir, 0750); err != nil {
			sessionsErr = fmt.Errorf("sessions: mkdir %s: %w", dir, err)
			return
		}
		dbPath := filepath.Join(dir, "sessions.db")
		db, err := sql.Open("sqlite", dbPath)
		if err != nil {
			sessionsErr = fmt.Errorf("sessions: open db: %w", err)
			return
		}
		db.SetMaxOpenConns(1) // SQLite: single writer
		if err := initSessionsSchema(db); err != nil {
			sessionsErr = fmt.Errorf("sessions: init schema: %w", err)
			return
		}
		sessionsDB = db
	})
	return sessionsDB, sessionsErr
}

func initSessionsSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS sessions (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		job_title  TEXT,
		difficulty TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`)
	if err != nil {
		return err
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS session_questions (
		session_id  INTEGER NOT NULL,
		position    INTEGER NOT NULL,
		question    TEXT NOT NULL,
		category    TEXT NOT NULL,
		answer      TEXT,
		score       REAL,
		feedback    TEXT,
		answered_at TEXT,
		PRIMARY KEY (session_id, position)
	)`)
	return err
}

// StartSession generates a question set and persists it as a new session.
func StartSession(_ context.Context, jobDescription, jobTitle, difficulty string, count int, rng *rand.Rand) (*Session, Outcome, error) {
	questions, outcome := Generate(jobDescription, jobTitle, difficulty, count, rng)
	if len(questions) == 0 {
		return nil, outcome, errors.New("session_start: no questions generated")
	}

	db, err := openSessionsDB()
	if err != nil {
		return nil, outcome, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	res, err := db.Exec(
		`INSERT INTO sessions (job_title, difficulty, created_at) VALUES (?, ?, ?)`,
		jobTitle, difficulty, now,
	)
	if err != nil {
		return nil, outcome, fmt.Errorf("session_start: insert session: %w", err)
	}
	id, _ := res.LastInsertId()

	session := &Session{
		ID:         id,
		JobTitle:   jobTitle,
		Difficulty: difficulty,
		CreatedAt:  now,
		Questions:  make([]SessionQuestion, 0, len(questions)),
	}
	for i, q := range questions {
		_, err := db.Exec(
			`INSERT INTO session_questions (session_id, position, question, category) VALUES (?, ?, ?, ?)`,
			id, i+1, q.Question, q.Category,
		)
		if err != nil {
			return nil, outcome, fmt.Errorf("session_start: insert question: %w", err)
		}
		session.Questions = append(session.Questions, SessionQuestion{
			Position: i + 1,
			Question: q.Question,
			Category: q.Category,
		})
	}

	return session, outcome, nil
}

// RecordAnswer analyzes an answer and stores it against the session question.
func RecordAnswer(_ context.Context, sessionID int64, position int, answer string) (*Analysis, Outcome, error) {
	db, err := openSessionsDB()
	if err != nil {
		return nil, OutcomeOK, err
	}

	var question, category string
	var difficulty string
	err = db.QueryRow(
		`SELECT q.question, q.category, s.difficulty
		 FROM session_questions q JOIN sessions s ON s.id = q.session_id
		 WHERE q.session_id = ? AND q.position = ?`,
		sessionID, position,
	).Scan(&question, &category, &difficulty)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, OutcomeOK, fmt.Errorf("session_answer: question %d not found in session %d", position, sessionID)
	}
	if err != nil {
		return nil, OutcomeOK, fmt.Errorf("session_answer: lookup: %w", err)
	}

	analysis, outcome := Analyze(question, answer, category, difficulty)

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = db.Exec(
		`UPDATE session_questions SET answer=?, score=?, feedback=?, answered_at=?
		 WHERE session_id=? AND position=?`,
		answer, analysis.Score, analysis.Feedback, now, sessionID, position,
	)
	if err != nil {
		return nil, outcome, fmt.Errorf("session_answer: update: %w", err)
	}

	return analysis, outcome, nil
}

// SessionReport loads a session and aggregates its recorded scores.
func SessionReport(_ context.Context, sessionID int64) (*SessionSummary, error) {
	db, err := openSessionsDB()
	if err != nil {
		return nil, err
	}

	summary := &SessionSummary{SessionID: sessionID}
	err = db.QueryRow(`SELECT job_title, difficulty FROM sessions WHERE id = ?`, sessionID).
		Scan(&summary.JobTitle, &summary.Difficulty)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("session_report: session %d not found", sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("session_report: lookup: %w", err)
	}

	rows, err := db.Query(
		`SELECT position, question, category, answer, score, feedback
		 FROM session_questions WHERE session_id = ? ORDER BY position`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("session_report: query: %w", err)
	}
	defer rows.Close()

	var totalScore float64
	for rows.Next() {
		var q SessionQuestion
		var answer, feedback sql.NullString
		var score sql.NullFloat64
		if err := rows.Scan(&q.Position, &q.Question, &q.Category, &answer, &score, &feedback); err != nil {
			continue
		}
		q.Answer = answer.String
		q.Feedback = feedback.String
		if answer.Valid {
			q.Answered = true
			q.Score = score.Float64
			totalScore += score.Float64
			summary.Answered++
		}
		summary.Questions = append(summary.Questions, q)
	}
	summary.Total = len(summary.Questions)

	if summary.Answered > 0 {
		summary.AverageScore = round2(totalScore / float64(summary.Answered))
	}
	if summary.Questions == nil {
		summary.Questions = []SessionQuestion{}
	}
	return summary, nil
}

// resetSessionsDB closes and forgets the singleton so tests can point HOME
// at a temp dir.
func resetSessionsDB() {
	if sessionsDB != nil {
		sessionsDB.Close() //nolint:errcheck
	}
	sessionsDB = nil
	sessionsErr = nil
	sessionsOnce = sync.Once{}
}
