package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/victornm/quizduel/internal/domain"
	"github.com/victornm/quizduel/internal/validator"
)

func TestValidate(t *testing.T) {
	var (
		fillBlank = domain.Question{ID: "q1", Type: domain.QuestionTypeFillBlank, Answers: []string{"Cat"}}
		spelling  = domain.Question{ID: "q2", Type: domain.QuestionTypeSpelling, Answers: []string{"colour", " Color "}}
		matching  = domain.Question{ID: "q3", Type: domain.QuestionTypeMatching, Pairs: map[string]string{
			"dog": "Chien",
			"cat": "Chat",
		}}
		order       = domain.Question{ID: "q4", Type: domain.QuestionTypeOrderWords, Order: []string{"the", "cat", "sat"}}
		composition = domain.Question{ID: "q5", Type: domain.QuestionTypeComposition, Prompt: "Describe your pet"}
	)

	tests := map[string]struct {
		question domain.Question
		answer   domain.Answer
		want     bool
	}{
		"fill_blank ignores case and surrounding spaces": {
			question: fillBlank,
			answer:   domain.TextAnswer("  cat "),
			want:     true,
		},
		"fill_blank rejects a different word": {
			question: fillBlank,
			answer:   domain.TextAnswer("dog"),
			want:     false,
		},
		"spelling accepts any normalized alternative": {
			question: spelling,
			answer:   domain.TextAnswer("COLOR"),
			want:     true,
		},
		"fill_blank rejects an answer of the wrong kind": {
			question: fillBlank,
			answer:   domain.OrderAnswer{"cat"},
			want:     false,
		},
		"matching accepts normalized values": {
			question: matching,
			answer:   domain.MatchingAnswer{"dog": " chien", "cat": "CHAT"},
			want:     true,
		},
		"matching rejects a wrong pair": {
			question: matching,
			answer:   domain.MatchingAnswer{"dog": "chat", "cat": "chien"},
			want:     false,
		},
		"matching rejects a missing key": {
			question: matching,
			answer:   domain.MatchingAnswer{"dog": "chien"},
			want:     false,
		},
		"matching rejects extra keys": {
			question: matching,
			answer:   domain.MatchingAnswer{"dog": "chien", "cat": "chat", "cow": "vache"},
			want:     false,
		},
		"matching rejects same count with an unknown key": {
			question: matching,
			answer:   domain.MatchingAnswer{"dog": "chien", "cow": "chat"},
			want:     false,
		},
		"order_words accepts trimmed positional match": {
			question: order,
			answer:   domain.OrderAnswer{" the", "cat ", "sat"},
			want:     true,
		},
		"order_words rejects a length mismatch": {
			question: order,
			answer:   domain.OrderAnswer{"the", "cat"},
			want:     false,
		},
		"order_words rejects a wrong order": {
			question: order,
			answer:   domain.OrderAnswer{"cat", "the", "sat"},
			want:     false,
		},
		"order_words is case sensitive": {
			question: order,
			answer:   domain.OrderAnswer{"The", "cat", "sat"},
			want:     false,
		},
		"composition accepts any non-empty text": {
			question: composition,
			answer:   domain.TextAnswer("My cat is orange."),
			want:     true,
		},
		"composition rejects blank text": {
			question: composition,
			answer:   domain.TextAnswer("   \n"),
			want:     false,
		},
		"nil answer is never correct": {
			question: fillBlank,
			answer:   nil,
			want:     false,
		},
		"unknown question type is never correct": {
			question: domain.Question{ID: "q9", Type: "multiple_choice"},
			answer:   domain.TextAnswer("a"),
			want:     false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.Validate(tt.question, tt.answer))
		})
	}
}
