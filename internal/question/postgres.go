package question

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/victornm/quizduel/internal/domain"
)

// PostgresLoader reads the quiz document of a section, stored as JSONB by the
// curriculum admin panel.
type PostgresLoader struct {
	db *pgxpool.Pool
}

func NewPostgresLoader(db *pgxpool.Pool) *PostgresLoader {
	return &PostgresLoader{db: db}
}

func (l *PostgresLoader) LoadQuiz(ctx context.Context, sectionID string) (domain.Quiz, error) {
	const stmt = `SELECT data FROM section_quizzes WHERE section_id = $1;`

	var raw []byte
	err := l.db.QueryRow(ctx, stmt, sectionID).Scan(&raw)
	if stderrors.Is(err, pgx.ErrNoRows) {
		return domain.Quiz{}, ErrNotFound
	}
	if err != nil {
		return domain.Quiz{}, fmt.Errorf("load quiz: section=%s: %w", sectionID, err)
	}

	var quiz domain.Quiz
	if err := json.Unmarshal(raw, &quiz); err != nil {
		return domain.Quiz{}, fmt.Errorf("unmarshal quiz: section=%s: %w", sectionID, err)
	}
	quiz.SectionID = sectionID

	return quiz, nil
}
