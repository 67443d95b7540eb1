package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victornm/quizduel/internal/domain"
)

func TestRoom_Joinable(t *testing.T) {
	waiting := func(invited string) domain.Room {
		return domain.Room{
			Status:        domain.RoomStatusWaiting,
			InvitedUserID: invited,
			Participants: map[string]domain.Participant{
				"u1": {UserName: "Alice"},
			},
		}
	}

	tests := map[string]struct {
		room   domain.Room
		userID string
		want   bool
	}{
		"public room with one participant": {
			room:   waiting(""),
			userID: "u2",
			want:   true,
		},
		"creator cannot join twice": {
			room:   waiting(""),
			userID: "u1",
			want:   false,
		},
		"invite room accepts the invited user": {
			room:   waiting("u2"),
			userID: "u2",
			want:   true,
		},
		"invite room rejects anyone else": {
			room:   waiting("u2"),
			userID: "u3",
			want:   false,
		},
		"ready room is not joinable": {
			room: domain.Room{
				Status: domain.RoomStatusReady,
				Participants: map[string]domain.Participant{
					"u1": {}, "u2": {},
				},
			},
			userID: "u3",
			want:   false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.room.Joinable(tt.userID))
		})
	}
}

func TestMatch_Deadline(t *testing.T) {
	created := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	m := domain.Match{
		CreatedAt:               created,
		TimerPerQuestionSeconds: 30,
		QuestionIDs:             []string{"q1", "q2", "q3"},
	}

	assert.Equal(t, created.Add(90*time.Second+5*time.Second), m.Deadline(5*time.Second))
}

func TestDecodeAnswer(t *testing.T) {
	tests := map[string]struct {
		kind    domain.QuestionType
		raw     string
		want    domain.Answer
		wantErr bool
	}{
		"text": {
			kind: domain.QuestionTypeFillBlank,
			raw:  `"cat"`,
			want: domain.TextAnswer("cat"),
		},
		"matching": {
			kind: domain.QuestionTypeMatching,
			raw:  `{"dog":"chien"}`,
			want: domain.MatchingAnswer{"dog": "chien"},
		},
		"order": {
			kind: domain.QuestionTypeOrderWords,
			raw:  `["the","cat"]`,
			want: domain.OrderAnswer{"the", "cat"},
		},
		"wrong shape": {
			kind:    domain.QuestionTypeOrderWords,
			raw:     `"the cat"`,
			wantErr: true,
		},
		"unknown type": {
			kind:    "essay",
			raw:     `"x"`,
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := domain.DecodeAnswer(tt.kind, json.RawMessage(tt.raw))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuestion_Worth(t *testing.T) {
	assert.Equal(t, 1, domain.Question{}.Worth())
	assert.Equal(t, 3, domain.Question{Points: 3}.Worth())
}
