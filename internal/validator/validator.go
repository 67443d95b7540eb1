// Package validator decides whether a learner's answer to a single question
// is correct. It is pure: no I/O, no clock, no shared state.
package validator

import (
	"strings"

	"github.com/victornm/quizduel/internal/domain"
)

// Validate reports whether answer is correct for q. An answer of the wrong
// kind for the question type is never correct.
//
// For composition questions Validate only checks that something was written;
// the real verdict comes later from the external grader and is not part of
// the match score.
func Validate(q domain.Question, answer domain.Answer) bool {
	switch q.Type {
	case domain.QuestionTypeFillBlank, domain.QuestionTypeSpelling:
		a, ok := answer.(domain.TextAnswer)
		return ok && acceptsText(q.Answers, string(a))
	case domain.QuestionTypeMatching:
		a, ok := answer.(domain.MatchingAnswer)
		return ok && matchesPairs(q.Pairs, a)
	case domain.QuestionTypeOrderWords:
		a, ok := answer.(domain.OrderAnswer)
		return ok && matchesOrder(q.Order, a)
	case domain.QuestionTypeComposition:
		a, ok := answer.(domain.TextAnswer)
		return ok && strings.TrimSpace(string(a)) != ""
	default:
		return false
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func acceptsText(accepted []string, got string) bool {
	got = normalize(got)
	for _, a := range accepted {
		if normalize(a) == got {
			return true
		}
	}
	return false
}

func matchesPairs(canonical map[string]string, got map[string]string) bool {
	if len(got) != len(canonical) {
		return false
	}
	for k, want := range canonical {
		v, ok := got[k]
		if !ok || normalize(v) != normalize(want) {
			return false
		}
	}
	return true
}

func matchesOrder(canonical []string, got []string) bool {
	if len(got) != len(canonical) {
		return false
	}
	for i := range canonical {
		if strings.TrimSpace(got[i]) != strings.TrimSpace(canonical[i]) {
			return false
		}
	}
	return true
}
