package question_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victornm/quizduel/internal/domain"
	"github.com/victornm/quizduel/internal/question"
	"github.com/victornm/quizduel/internal/testutil"
)

func TestPostgresLoader(t *testing.T) {
	ctx := context.Background()
	db := testutil.Postgres(t)

	const doc = `{
		"timerPerQuestionSeconds": 15,
		"questions": [
			{"id": "q1", "type": "fill_blank", "answers": ["cat"], "points": 2},
			{"id": "q2", "type": "order_words", "order": ["I", "like", "tea"]}
		]
	}`
	_, err := db.Exec(ctx, `INSERT INTO section_quizzes (section_id, data) VALUES ($1, $2);`, "sec-1", doc)
	require.NoError(t, err)

	l := question.NewPostgresLoader(db)

	quiz, err := l.LoadQuiz(ctx, "sec-1")
	require.NoError(t, err)
	assert.Equal(t, "sec-1", quiz.SectionID)
	assert.Equal(t, 15, quiz.TimerPerQuestionSeconds)
	require.Len(t, quiz.Questions, 2)
	assert.Equal(t, domain.QuestionTypeFillBlank, quiz.Questions[0].Type)
	assert.Equal(t, []string{"I", "like", "tea"}, quiz.Questions[1].Order)

	_, err = l.LoadQuiz(ctx, "missing")
	assert.ErrorIs(t, err, question.ErrNotFound)
}
