package room

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/victornm/quizduel/internal/domain"
)

const maxCASAttempts = 5

// RedisStore keeps each room as a JSON document under its own key with a TTL,
// plus a per-section sorted set (score: creation time in ms) indexing public
// rooms that still wait for an opponent.
//
// Conditional writes use WATCH/MULTI/EXEC on the room key.
type RedisStore struct {
	redis  redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewRedisStore expires rooms ttl after creation. A non-positive ttl keeps
// them indefinitely.
func NewRedisStore(r redis.UniversalClient, prefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{
		redis:  r,
		prefix: prefix,
		ttl:    max(ttl, 0),
	}
}

func (s *RedisStore) Create(ctx context.Context, r domain.Room) error {
	b, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal room: %w", err)
	}

	_, err = s.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SetNX(ctx, s.roomKey(r.RoomID), b, s.ttl)
		if indexable(r) {
			pipe.ZAdd(ctx, s.waitingKey(r.SectionID), redis.Z{
				Score:  float64(r.CreatedAt.UnixMilli()),
				Member: r.RoomID,
			})
			if s.ttl > 0 {
				pipe.Expire(ctx, s.waitingKey(r.SectionID), s.ttl)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("create room: %w", err)
	}

	return nil
}

func (s *RedisStore) Get(ctx context.Context, roomID string) (domain.Room, error) {
	return s.get(ctx, s.redis, roomID)
}

func (s *RedisStore) FindWaiting(ctx context.Context, sectionID string, since time.Time) ([]domain.Room, error) {
	key := s.waitingKey(sectionID)
	from := strconv.FormatInt(since.UnixMilli(), 10)

	// Entries older than since can never be matched again.
	if err := s.redis.ZRemRangeByScore(ctx, key, "-inf", "("+from).Err(); err != nil {
		return nil, fmt.Errorf("trim waiting rooms: %w", err)
	}

	ids, err := s.redis.ZRangeByScore(ctx, key, &redis.ZRangeBy{Min: from, Max: "+inf"}).Result()
	if err != nil {
		return nil, fmt.Errorf("list waiting rooms: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, s.roomKey(id))
	}

	vals, err := s.redis.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("load waiting rooms: %w", err)
	}

	rooms := make([]domain.Room, 0, len(vals))
	for i, v := range vals {
		raw, ok := v.(string)
		if !ok {
			// Expired room, drop it from the index.
			s.redis.ZRem(ctx, key, ids[i])
			continue
		}

		var r domain.Room
		if err := json.Unmarshal([]byte(raw), &r); err != nil {
			return nil, fmt.Errorf("unmarshal room %s: %w", ids[i], err)
		}
		if r.Status == domain.RoomStatusWaiting && len(r.Participants) == 1 {
			rooms = append(rooms, r)
		}
	}

	return rooms, nil
}

func (s *RedisStore) Join(ctx context.Context, roomID, userID string, p domain.Participant) (domain.Room, error) {
	var joined domain.Room

	err := s.redis.Watch(ctx, func(tx *redis.Tx) error {
		r, err := s.get(ctx, tx, roomID)
		if err != nil {
			return err
		}

		if !r.Joinable(userID) {
			return ErrConflict
		}
		r.Participants[userID] = p

		b, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("marshal room: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, s.roomKey(roomID), b, redis.KeepTTL)
			pipe.ZRem(ctx, s.waitingKey(r.SectionID), roomID)
			return nil
		})
		if err != nil {
			return err
		}

		joined = r
		return nil
	}, s.roomKey(roomID))

	if stderrors.Is(err, redis.TxFailedErr) {
		return domain.Room{}, ErrConflict
	}
	if err != nil {
		return domain.Room{}, err
	}

	return joined, nil
}

func (s *RedisStore) SetMatch(ctx context.Context, roomID, matchID string) (domain.Room, error) {
	var out domain.Room

	update := func(tx *redis.Tx) error {
		r, err := s.get(ctx, tx, roomID)
		if err != nil {
			return err
		}

		if r.MatchID != "" {
			out = r
			return nil
		}
		r.MatchID = matchID
		r.Status = domain.RoomStatusReady

		b, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("marshal room: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, s.roomKey(roomID), b, redis.KeepTTL)
			return nil
		})
		if err != nil {
			return err
		}

		out = r
		return nil
	}

	for i := 0; i < maxCASAttempts; i++ {
		err := s.redis.Watch(ctx, update, s.roomKey(roomID))
		if stderrors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return domain.Room{}, err
		}
		return out, nil
	}

	return domain.Room{}, fmt.Errorf("set match: room=%s: %w", roomID, ErrConflict)
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func (s *RedisStore) get(ctx context.Context, c getter, roomID string) (domain.Room, error) {
	b, err := c.Get(ctx, s.roomKey(roomID)).Bytes()
	if stderrors.Is(err, redis.Nil) {
		return domain.Room{}, ErrNotFound
	}
	if err != nil {
		return domain.Room{}, fmt.Errorf("get room: %w", err)
	}

	var r domain.Room
	if err := json.Unmarshal(b, &r); err != nil {
		return domain.Room{}, fmt.Errorf("unmarshal room: %w", err)
	}

	return r, nil
}

func (s *RedisStore) roomKey(roomID string) string {
	return fmt.Sprintf("%s:room:%s", s.prefix, roomID)
}

func (s *RedisStore) waitingKey(sectionID string) string {
	return fmt.Sprintf("%s:section:%s:waiting", s.prefix, sectionID)
}
