package domain

import (
	"encoding/json"
	"fmt"
)

type QuestionType string

const (
	QuestionTypeFillBlank   QuestionType = "fill_blank"
	QuestionTypeSpelling    QuestionType = "spelling"
	QuestionTypeMatching    QuestionType = "matching"
	QuestionTypeOrderWords  QuestionType = "order_words"
	QuestionTypeComposition QuestionType = "composition"
)

// Question is the authoritative definition of a quiz question. Only the
// field matching Type is populated: Answers for fill_blank/spelling, Pairs
// for matching, Order for order_words. Composition questions carry only a Prompt.
type Question struct {
	ID      string            `json:"id"`
	Type    QuestionType      `json:"type"`
	Prompt  string            `json:"prompt,omitempty"`
	Answers []string          `json:"answers,omitempty"`
	Pairs   map[string]string `json:"pairs,omitempty"`
	Order   []string          `json:"order,omitempty"`
	Points  int               `json:"points"`
}

// Worth returns the points awarded for a correct answer; zero means one.
func (q Question) Worth() int {
	if q.Points <= 0 {
		return 1
	}
	return q.Points
}

// Quiz is the question set of a curriculum section.
type Quiz struct {
	SectionID               string     `json:"sectionId"`
	TimerPerQuestionSeconds int        `json:"timerPerQuestionSeconds,omitempty"`
	Questions               []Question `json:"questions"`
}

// Index returns the quiz questions keyed by id.
func (q Quiz) Index() map[string]Question {
	m := make(map[string]Question, len(q.Questions))
	for _, question := range q.Questions {
		m[question.ID] = question
	}
	return m
}

// Answer is a learner's response to a single question. The concrete type
// depends on the question kind.
type Answer interface {
	answer()
}

// TextAnswer answers fill_blank, spelling and composition questions.
type TextAnswer string

// MatchingAnswer maps each left-hand key to the chosen right-hand value.
type MatchingAnswer map[string]string

// OrderAnswer is the submitted word order.
type OrderAnswer []string

func (TextAnswer) answer()     {}
func (MatchingAnswer) answer() {}
func (OrderAnswer) answer()    {}

// DecodeAnswer decodes a raw JSON response into the Answer kind expected by t.
func DecodeAnswer(t QuestionType, raw json.RawMessage) (Answer, error) {
	switch t {
	case QuestionTypeFillBlank, QuestionTypeSpelling, QuestionTypeComposition:
		var a string
		if err := json.Unmarshal(raw, &a); err != nil {
			return nil, fmt.Errorf("decode %s answer: %w", t, err)
		}
		return TextAnswer(a), nil
	case QuestionTypeMatching:
		var a map[string]string
		if err := json.Unmarshal(raw, &a); err != nil {
			return nil, fmt.Errorf("decode %s answer: %w", t, err)
		}
		return MatchingAnswer(a), nil
	case QuestionTypeOrderWords:
		var a []string
		if err := json.Unmarshal(raw, &a); err != nil {
			return nil, fmt.Errorf("decode %s answer: %w", t, err)
		}
		return OrderAnswer(a), nil
	default:
		return nil, fmt.Errorf("unknown question type %q", t)
	}
}
