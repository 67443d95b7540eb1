package api

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	quizduelv1 "github.com/victornm/quizduel/internal/api/proto/quizduel/v1"
	"github.com/victornm/quizduel/internal/domain"
	"github.com/victornm/quizduel/internal/errors"
)

func (a *API) CreateRoom(ctx context.Context, req *quizduelv1.CreateRoomRequest) (*quizduelv1.CreateRoomResponse, error) {
	resp, err := a.createRoom(ctx, &CreateRoomRequest{
		SectionID:       req.GetSectionId(),
		MatchType:       domain.MatchType(req.GetMatchType()),
		UserName:        req.GetUserName(),
		InvitedUserID:   req.GetInvitedUserId(),
		SectionMetadata: req.GetSectionMetadata(),
	})
	if err != nil {
		return nil, err
	}

	return &quizduelv1.CreateRoomResponse{Room: toRoomTicket(resp)}, nil
}

func (a *API) JoinRoom(ctx context.Context, req *quizduelv1.JoinRoomRequest) (*quizduelv1.JoinRoomResponse, error) {
	resp, err := a.joinRoom(ctx, &JoinRoomRequest{
		RoomID:   req.GetRoomId(),
		UserName: req.GetUserName(),
	})
	if err != nil {
		return nil, err
	}

	return &quizduelv1.JoinRoomResponse{Room: toRoomTicket(resp)}, nil
}

func (a *API) GetRoom(ctx context.Context, req *quizduelv1.GetRoomRequest) (*quizduelv1.GetRoomResponse, error) {
	r, err := a.getRoom(ctx, &GetRoomRequest{RoomID: req.GetRoomId()})
	if err != nil {
		return nil, err
	}

	return &quizduelv1.GetRoomResponse{
		Room: &quizduelv1.Room{
			RoomId:                  r.RoomID,
			SectionId:               r.SectionID,
			MatchType:               string(r.MatchType),
			CreatedBy:               r.CreatedBy,
			CreatedAt:               timestamppb.New(r.CreatedAt),
			Status:                  string(r.Status),
			QuestionIds:             r.QuestionIDs,
			TimerPerQuestionSeconds: int32(r.TimerPerQuestionSeconds),
			Participants:            toParticipants(r.Participants),
			InvitedUserId:           r.InvitedUserID,
			MatchId:                 r.MatchID,
			SectionMetadata:         r.SectionMetadata,
		},
	}, nil
}

// SubmitAnswers accepts an empty answer list as a submission that answered
// nothing; proto3 cannot tell it apart from an omitted list.
func (a *API) SubmitAnswers(ctx context.Context, req *quizduelv1.SubmitAnswersRequest) (*quizduelv1.SubmitAnswersResponse, error) {
	responses, err := fromAnswers(req.GetAnswers())
	if err != nil {
		return nil, err
	}

	resp, err := a.submitAnswers(ctx, &SubmitAnswersRequest{
		MatchID:   req.GetMatchId(),
		Responses: responses,
	})
	if err != nil {
		return nil, err
	}

	return &quizduelv1.SubmitAnswersResponse{
		Score:          int32(resp.Score),
		CorrectCount:   int32(resp.CorrectCount),
		TotalQuestions: int32(resp.TotalQuestions),
	}, nil
}

func (a *API) GetMatch(ctx context.Context, req *quizduelv1.GetMatchRequest) (*quizduelv1.GetMatchResponse, error) {
	m, err := a.getMatch(ctx, &GetMatchRequest{MatchID: req.GetMatchId()})
	if err != nil {
		return nil, err
	}

	submissions := make([]*quizduelv1.Submission, 0, len(m.Submissions))
	for _, s := range m.Submissions {
		submissions = append(submissions, &quizduelv1.Submission{
			UserId:         s.UserID,
			CorrectCount:   int32(s.CorrectCount),
			TotalPoints:    int32(s.TotalPoints),
			TotalQuestions: int32(s.TotalQuestions),
			SubmittedAt:    timestamppb.New(s.SubmittedAt),
		})
	}
	slices.SortFunc(submissions, func(x, y *quizduelv1.Submission) int {
		return cmp.Compare(x.UserId, y.UserId)
	})

	return &quizduelv1.GetMatchResponse{
		Match: &quizduelv1.Match{
			MatchId:                 m.MatchID,
			RoomId:                  m.RoomID,
			SectionId:               m.SectionID,
			Status:                  string(m.Status),
			QuestionIds:             m.QuestionIDs,
			TimerPerQuestionSeconds: int32(m.TimerPerQuestionSeconds),
			Participants:            toParticipants(m.Participants),
			SectionMetadata:         m.SectionMetadata,
			Submissions:             submissions,
			WinnerId:                m.WinnerID,
			IsTie:                   m.IsTie,
			CreatedAt:               timestamppb.New(m.CreatedAt),
			FinalizedAt:             toTimestamp(m.FinalizedAt),
		},
	}, nil
}

func (a *API) GetLeaderboard(ctx context.Context, req *quizduelv1.GetLeaderboardRequest) (*quizduelv1.GetLeaderboardResponse, error) {
	l, err := a.getLeaderboard(ctx, &GetLeaderboardRequest{
		SectionID: req.GetSectionId(),
		Limit:     int(req.GetLimit()),
	})
	if err != nil {
		return nil, err
	}

	entries := make([]*quizduelv1.LeaderboardEntry, 0, len(l.Entries))
	for _, e := range l.Entries {
		entries = append(entries, &quizduelv1.LeaderboardEntry{
			UserId:   e.UserID,
			UserName: e.UserName,
			Points:   int64(e.Points),
			Rank:     int32(e.Rank),
		})
	}

	return &quizduelv1.GetLeaderboardResponse{
		Leaderboard: &quizduelv1.Leaderboard{
			SectionId: l.SectionID,
			Entries:   entries,
		},
	}, nil
}

// fromAnswers encodes each answer the way the HTTP API carries it, so both
// transports grade the same bytes. The result is never nil.
func fromAnswers(answers []*quizduelv1.Answer) (map[string]json.RawMessage, error) {
	responses := make(map[string]json.RawMessage, len(answers))
	for _, ans := range answers {
		id := ans.GetQuestionId()
		if id == "" {
			return nil, errors.InvalidArgument("answer questionId is required")
		}
		if _, ok := responses[id]; ok {
			return nil, errors.InvalidArgument("duplicate answer: question=%s", id)
		}

		var v any
		switch k := ans.GetKind().(type) {
		case *quizduelv1.Answer_Text:
			v = k.Text
		case *quizduelv1.Answer_Matching:
			v = k.Matching.GetPairs()
		case *quizduelv1.Answer_Order:
			v = k.Order.GetWords()
		default:
			// Unanswered.
			continue
		}

		raw, err := json.Marshal(v)
		if err != nil {
			return nil, errors.Internal(fmt.Errorf("encode answer %s: %w", id, err))
		}
		responses[id] = raw
	}

	return responses, nil
}

func toRoomTicket(r *RoomResponse) *quizduelv1.RoomTicket {
	return &quizduelv1.RoomTicket{
		RoomId:                  r.RoomID,
		Status:                  string(r.Status),
		QuestionIds:             r.QuestionIDs,
		TimerPerQuestionSeconds: int32(r.TimerPerQuestionSeconds),
		IsJoiningExistingRoom:   r.IsJoiningExistingRoom,
		MatchId:                 r.MatchID,
	}
}

// toParticipants orders participants by join time.
func toParticipants(ps map[string]domain.Participant) []*quizduelv1.Participant {
	out := make([]*quizduelv1.Participant, 0, len(ps))
	for id, p := range ps {
		out = append(out, &quizduelv1.Participant{
			UserId:   id,
			UserName: p.UserName,
			JoinedAt: timestamppb.New(p.JoinedAt),
			Status:   p.Status,
		})
	}
	slices.SortFunc(out, func(x, y *quizduelv1.Participant) int {
		if c := x.JoinedAt.AsTime().Compare(y.JoinedAt.AsTime()); c != 0 {
			return c
		}
		return cmp.Compare(x.UserId, y.UserId)
	})
	return out
}

func toTimestamp(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}
