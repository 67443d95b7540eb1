package match

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/victornm/quizduel/internal/domain"
)

// PostgresStore keeps matches durable: the room-to-match uniqueness and the
// one-submission-per-user rule are enforced by table constraints.
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

const selectMatch = `
SELECT match_id, room_id, section_id, status, question_ids, timer_per_question_seconds,
	participants, section_metadata, COALESCE(winner_id, ''), is_tie, create_time, finalize_time
FROM matches`

func (s *PostgresStore) CreateForRoom(ctx context.Context, m domain.Match) (domain.Match, error) {
	const stmt = `
INSERT INTO matches (match_id, room_id, section_id, status, question_ids, timer_per_question_seconds,
	participants, section_metadata, is_tie, create_time)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, FALSE, $9)
ON CONFLICT (room_id) DO NOTHING;`

	_, err := s.db.Exec(ctx, stmt,
		m.MatchID, m.RoomID, m.SectionID, m.Status, m.QuestionIDs, m.TimerPerQuestionSeconds,
		m.Participants, m.SectionMetadata, m.CreatedAt,
	)
	if err != nil {
		return domain.Match{}, fmt.Errorf("insert match: %w", err)
	}

	existing, err := scanMatch(s.db.QueryRow(ctx, selectMatch+` WHERE room_id = $1;`, m.RoomID))
	if err != nil {
		return domain.Match{}, fmt.Errorf("select match by room: %w", err)
	}

	existing.Submissions, err = s.listSubmissions(ctx, s.db, existing.MatchID)
	if err != nil {
		return domain.Match{}, err
	}

	return existing, nil
}

func (s *PostgresStore) Get(ctx context.Context, matchID string) (domain.Match, error) {
	m, err := scanMatch(s.db.QueryRow(ctx, selectMatch+` WHERE match_id = $1;`, matchID))
	if err != nil {
		return domain.Match{}, err
	}

	m.Submissions, err = s.listSubmissions(ctx, s.db, matchID)
	if err != nil {
		return domain.Match{}, err
	}

	return m, nil
}

func (s *PostgresStore) AddSubmission(ctx context.Context, matchID string, sub domain.Submission) (domain.Submission, bool, error) {
	const insStmt = `
INSERT INTO submissions (match_id, user_id, correct_count, total_points, total_questions, submit_time)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (match_id, user_id) DO NOTHING;`

	tag, err := s.db.Exec(ctx, insStmt,
		matchID, sub.UserID, sub.CorrectCount, sub.TotalPoints, sub.TotalQuestions, sub.SubmittedAt,
	)
	if err != nil {
		return domain.Submission{}, false, fmt.Errorf("insert submission: %w", err)
	}
	if tag.RowsAffected() == 1 {
		return sub, true, nil
	}

	const selStmt = `
SELECT user_id, correct_count, total_points, total_questions, submit_time
FROM submissions
WHERE match_id = $1 AND user_id = $2;`

	var existing domain.Submission
	err = s.db.QueryRow(ctx, selStmt, matchID, sub.UserID).Scan(
		&existing.UserID, &existing.CorrectCount, &existing.TotalPoints, &existing.TotalQuestions, &existing.SubmittedAt,
	)
	if err != nil {
		return domain.Submission{}, false, fmt.Errorf("select submission: %w", err)
	}

	return existing, false, nil
}

func (s *PostgresStore) Complete(ctx context.Context, matchID string, at time.Time, decide func(domain.Match) Outcome) (m domain.Match, transitioned bool, err error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return domain.Match{}, false, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			err = stderrors.Join(err, tx.Rollback(ctx))
		}
	}()

	// The row lock serializes concurrent finalizers of the same match.
	m, err = scanMatch(tx.QueryRow(ctx, selectMatch+` WHERE match_id = $1 FOR UPDATE;`, matchID))
	if err != nil {
		return domain.Match{}, false, err
	}

	m.Submissions, err = s.listSubmissions(ctx, tx, matchID)
	if err != nil {
		return domain.Match{}, false, err
	}

	if m.Status == domain.MatchStatusCompleted {
		return m, false, tx.Commit(ctx)
	}

	out := decide(m)

	const updStmt = `
UPDATE matches
SET status = $2, winner_id = NULLIF($3, ''), is_tie = $4, finalize_time = $5
WHERE match_id = $1 AND status = $6;`

	_, err = tx.Exec(ctx, updStmt, matchID, domain.MatchStatusCompleted, out.WinnerID, out.IsTie, at, domain.MatchStatusLive)
	if err != nil {
		return domain.Match{}, false, fmt.Errorf("complete match: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return domain.Match{}, false, fmt.Errorf("commit: %w", err)
	}

	m.Status = domain.MatchStatusCompleted
	m.WinnerID = out.WinnerID
	m.IsTie = out.IsTie
	m.FinalizedAt = &at

	return m, true, nil
}

func (s *PostgresStore) RecordCompositionGrade(ctx context.Context, g CompositionGrade) error {
	const stmt = `
INSERT INTO composition_grades (match_id, user_id, question_id, correct, grade_time)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (match_id, user_id, question_id) DO UPDATE SET correct = EXCLUDED.correct, grade_time = EXCLUDED.grade_time;`

	if _, err := s.db.Exec(ctx, stmt, g.MatchID, g.UserID, g.QuestionID, g.Correct, g.GradedAt); err != nil {
		return fmt.Errorf("record composition grade: %w", err)
	}

	return nil
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func (s *PostgresStore) listSubmissions(ctx context.Context, q querier, matchID string) (map[string]domain.Submission, error) {
	const stmt = `
SELECT user_id, correct_count, total_points, total_questions, submit_time
FROM submissions
WHERE match_id = $1;`

	rows, err := q.Query(ctx, stmt, matchID)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}

	subs, err := pgx.CollectRows(rows, func(r pgx.CollectableRow) (domain.Submission, error) {
		var sub domain.Submission
		err := r.Scan(&sub.UserID, &sub.CorrectCount, &sub.TotalPoints, &sub.TotalQuestions, &sub.SubmittedAt)
		return sub, err
	})
	if err != nil {
		return nil, fmt.Errorf("collect submissions: %w", err)
	}

	out := make(map[string]domain.Submission, len(subs))
	for _, sub := range subs {
		out[sub.UserID] = sub
	}

	return out, nil
}

func scanMatch(row pgx.Row) (domain.Match, error) {
	var m domain.Match
	err := row.Scan(
		&m.MatchID, &m.RoomID, &m.SectionID, &m.Status, &m.QuestionIDs, &m.TimerPerQuestionSeconds,
		&m.Participants, &m.SectionMetadata, &m.WinnerID, &m.IsTie, &m.CreatedAt, &m.FinalizedAt,
	)
	if stderrors.Is(err, pgx.ErrNoRows) {
		return domain.Match{}, ErrNotFound
	}
	if err != nil {
		return domain.Match{}, fmt.Errorf("scan match: %w", err)
	}

	return m, nil
}
