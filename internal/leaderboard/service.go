package leaderboard

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/victornm/quizduel/internal/domain"
	"github.com/victornm/quizduel/internal/errors"
	"github.com/victornm/quizduel/internal/event"
	"github.com/victornm/quizduel/internal/telemetry"
)

const (
	// MaxEntries caps every section leaderboard.
	MaxEntries = 100

	PointsWin   = 10
	PointsOther = 5

	defaultMaxRetries = 10
	creditedTTL       = 7 * 24 * time.Hour
)

type Config struct {
	EventBus   *event.Bus
	Redis      redis.UniversalClient
	Prefix     string
	MaxRetries int
	Metrics    *telemetry.Metrics
}

type Service struct {
	eb         *event.Bus
	redis      redis.UniversalClient
	prefix     string
	maxRetries int
	metrics    *telemetry.Metrics
}

func NewService(c Config) *Service {
	s := &Service{
		eb:         c.EventBus,
		redis:      c.Redis,
		prefix:     c.Prefix,
		maxRetries: c.MaxRetries,
		metrics:    c.Metrics,
	}
	if s.maxRetries <= 0 {
		s.maxRetries = defaultMaxRetries
	}

	// Finalization credits synchronously; this catches the cases where that
	// credit failed. Credit is idempotent per match so both paths are safe.
	s.eb.Subscribe(domain.EventNameMatchCompleted, func(ctx context.Context, e event.Event) error {
		_, err := s.Credit(ctx, e.(domain.EventMatchCompleted).Match)
		return err
	}, event.WithRetry(5, 200*time.Millisecond))

	return s
}

// Awards returns the points each participant of a completed match earns: the
// sole winner gets PointsWin, everybody else (both players on a tie) PointsOther.
func Awards(m domain.Match) map[string]int {
	awards := make(map[string]int, len(m.Participants))
	for userID := range m.Participants {
		if !m.IsTie && m.WinnerID == userID {
			awards[userID] = PointsWin
		} else {
			awards[userID] = PointsOther
		}
	}
	return awards
}

var errAlreadyCredited = stderrors.New("match already credited")

// trimScript keeps the top ARGV[1] members of the leaderboard KEYS[1] and
// forgets the display names (KEYS[2]) of everybody it drops. Ranks
// [0, len-max-1] in ascending order are the ones that fall off.
var trimScript = redis.NewScript(`
local evicted = redis.call('ZRANGE', KEYS[1], 0, -(tonumber(ARGV[1]) + 1))
if #evicted > 0 then
	redis.call('ZREM', KEYS[1], unpack(evicted))
	redis.call('HDEL', KEYS[2], unpack(evicted))
end
return #evicted
`)

// Credit adds the awards of a completed match to its section leaderboard,
// re-ranks and trims it to MaxEntries. A match is credited at most once: the
// credit marker and the score changes commit in one transaction.
func (s *Service) Credit(ctx context.Context, m domain.Match) (*domain.Leaderboard, error) {
	if m.Status != domain.MatchStatusCompleted {
		return nil, errors.New(errors.CodeFailedPrecondition,
			errors.WithMessagef("match is not completed: match=%s", m.MatchID))
	}

	awards := Awards(m)
	var (
		lbKey       = s.leaderboardKey(m.SectionID)
		namesKey    = s.namesKey(m.SectionID)
		creditedKey = s.creditedKey(m.MatchID)
	)

	credit := func(tx *redis.Tx) error {
		n, err := tx.Exists(ctx, creditedKey).Result()
		if err != nil {
			return err
		}
		if n > 0 {
			return errAlreadyCredited
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			for userID, points := range awards {
				pipe.ZIncrBy(ctx, lbKey, float64(points), userID)
				pipe.HSet(ctx, namesKey, userID, m.Participants[userID].UserName)
			}
			trimScript.Eval(ctx, pipe, []string{lbKey, namesKey}, MaxEntries)
			pipe.Set(ctx, creditedKey, 1, creditedTTL)
			return nil
		})
		return err
	}

	var attempt int
	for attempt = 1; attempt <= s.maxRetries; attempt++ {
		err := s.redis.Watch(ctx, credit, creditedKey)
		if stderrors.Is(err, redis.TxFailedErr) {
			continue
		}
		if stderrors.Is(err, errAlreadyCredited) {
			slog.DebugContext(ctx, "leaderboard: match already credited", "match", m.MatchID)
			return s.GetLeaderboard(ctx, GetLeaderboardRequest{SectionID: m.SectionID})
		}
		if err != nil {
			return nil, fmt.Errorf("credit leaderboard: match=%s: %w", m.MatchID, err)
		}
		break
	}
	s.metrics.LeaderboardAttempts(attempt)

	if attempt > s.maxRetries {
		return nil, fmt.Errorf("credit leaderboard: match=%s: gave up after %d attempts", m.MatchID, s.maxRetries)
	}

	l, err := s.GetLeaderboard(ctx, GetLeaderboardRequest{SectionID: m.SectionID})
	if err != nil {
		return nil, err
	}

	userIDs := make([]string, 0, len(awards))
	for userID := range awards {
		userIDs = append(userIDs, userID)
	}

	slog.InfoContext(ctx, "leaderboard: credited match",
		"match", m.MatchID,
		"section", m.SectionID,
		"awards", awards,
	)

	s.eb.Publish(ctx, domain.EventLeaderboardUpdated{
		Leaderboard: *l,
		UserIDs:     userIDs,
	})

	return l, nil
}

type GetLeaderboardRequest struct {
	SectionID string
	// Limit defaults to MaxEntries.
	Limit int
}

// GetLeaderboard returns the ranked leaderboard of a section, highest points first.
func (s *Service) GetLeaderboard(ctx context.Context, req GetLeaderboardRequest) (*domain.Leaderboard, error) {
	if req.SectionID == "" {
		return nil, errors.InvalidArgument("sectionId is required")
	}
	limit := req.Limit
	if limit <= 0 || limit > MaxEntries {
		limit = MaxEntries
	}

	res, err := s.redis.ZRevRangeWithScores(ctx, s.leaderboardKey(req.SectionID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("get leaderboard: %w", err)
	}

	l := &domain.Leaderboard{
		SectionID: req.SectionID,
		Entries:   make([]domain.LeaderboardEntry, 0, len(res)),
	}
	if len(res) == 0 {
		return l, nil
	}

	userIDs := make([]string, 0, len(res))
	for _, z := range res {
		userIDs = append(userIDs, z.Member.(string))
	}

	names, err := s.redis.HMGet(ctx, s.namesKey(req.SectionID), userIDs...).Result()
	if err != nil {
		return nil, fmt.Errorf("get leaderboard names: %w", err)
	}

	for i, z := range res {
		name, _ := names[i].(string)
		l.Entries = append(l.Entries, domain.LeaderboardEntry{
			UserID:   userIDs[i],
			UserName: name,
			Points:   int(z.Score),
			Rank:     i + 1,
		})
	}

	return l, nil
}

func (s *Service) leaderboardKey(section string) string {
	return fmt.Sprintf("%s:section:%s:leaderboard", s.prefix, section)
}

func (s *Service) namesKey(section string) string {
	return fmt.Sprintf("%s:section:%s:names", s.prefix, section)
}

func (s *Service) creditedKey(matchID string) string {
	return fmt.Sprintf("%s:match:%s:credited", s.prefix, matchID)
}
