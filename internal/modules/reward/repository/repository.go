package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"anoa.com/arcadehub/internal/entity"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Store is the key-value blob store for per-player reward state.
// Update applies fn atomically: concurrent writers to the same key cause a
// retry, so a claim never reads stale streak data and writes over a newer one.
type Store interface {
	Load(ctx context.Context, userID uuid.UUID) (entity.RewardState, error)
	Save(ctx context.Context, userID uuid.UUID, state entity.RewardState) error
	Update(ctx context.Context, userID uuid.UUID, fn func(entity.RewardState) (entity.RewardState, error)) (entity.RewardState, error)
}

const maxUpdateRetries = 3

func rewardKey(userID uuid.UUID) string {
	return fmt.Sprintf("rewards:user:%s", userID.String())
}

type redisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func (s *redisStore) Load(ctx context.Context, userID uuid.UUID) (entity.RewardState, error) {
	payload, err := s.client.Get(ctx, rewardKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entity.DefaultRewardState(), nil
		}
		return entity.RewardState{}, fmt.Errorf("failed to load reward state: %w", err)
	}

	return decodeState([]byte(payload))
}

func (s *redisStore) Save(ctx context.Context, userID uuid.UUID, state entity.RewardState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode reward state: %w", err)
	}

	if err := s.client.Set(ctx, rewardKey(userID), payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to save reward state: %w", err)
	}
	return nil
}

// Update runs fn inside an optimistic WATCH transaction. If the key changes
// between read and write the transaction fails and the whole read-decide-write
// cycle is retried.
func (s *redisStore) Update(ctx context.Context, userID uuid.UUID, fn func(entity.RewardState) (entity.RewardState, error)) (entity.RewardState, error) {
	key := rewardKey(userID)
	var result entity.RewardState

	txn := func(tx *redis.Tx) error {
		state := entity.DefaultRewardState()

		payload, err := tx.Get(ctx, key).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("failed to load reward state: %w", err)
		}
		if err == nil {
			state, err = decodeState([]byte(payload))
			if err != nil {
				return err
			}
		}

		next, err := fn(state)
		if err != nil {
			return err
		}

		encoded, err := json.Marshal(next)
		if err != nil {
			return fmt.Errorf("failed to encode reward state: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, encoded, 0)
			return nil
		})
		if err != nil {
			return err
		}

		result = next
		return nil
	}

	var err error
	for i := 0; i < maxUpdateRetries; i++ {
		err = s.client.Watch(ctx, txn, key)
		if err == nil {
			return result, nil
		}
		if !errors.Is(err, redis.TxFailedErr) {
			return entity.RewardState{}, err
		}
	}

	return entity.RewardState{}, fmt.Errorf("reward state update kept conflicting: %w", err)
}

// decodeState unmarshals a stored blob and default-fills anything an older
// schema version is missing: short slot arrays get the default schedule,
// seed achievements absent from the blob are appended.
func decodeState(payload []byte) (entity.RewardState, error) {
	var state entity.RewardState
	if err := json.Unmarshal(payload, &state); err != nil {
		return entity.RewardState{}, fmt.Errorf("failed to decode reward state: %w", err)
	}

	if state.SchemaVersion < entity.RewardSchemaVersion {
		migrateState(&state)
	}

	return state, nil
}

func migrateState(state *entity.RewardState) {
	if len(state.DailyBonuses) != entity.DailyBonusDays {
		claimed := make(map[int]bool, len(state.DailyBonuses))
		for _, bonus := range state.DailyBonuses {
			if bonus.Claimed {
				claimed[bonus.Day] = true
			}
		}
		state.DailyBonuses = entity.DefaultDailyBonuses()
		for i := range state.DailyBonuses {
			state.DailyBonuses[i].Claimed = claimed[state.DailyBonuses[i].Day]
		}
	}

	known := make(map[string]bool, len(state.Achievements))
	for _, achievement := range state.Achievements {
		known[achievement.ID] = true
	}
	for _, seed := range entity.DefaultAchievements() {
		if !known[seed.ID] {
			state.Achievements = append(state.Achievements, seed)
		}
	}

	state.SchemaVersion = entity.RewardSchemaVersion
}

// memoryStore keeps reward state in process memory. Used when no Redis is
// configured and by tests.
type memoryStore struct {
	mu     sync.Mutex
	states map[uuid.UUID]entity.RewardState
}

func NewMemoryStore() Store {
	return &memoryStore{states: make(map[uuid.UUID]entity.RewardState)}
}

func (s *memoryStore) Load(ctx context.Context, userID uuid.UUID) (entity.RewardState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.states[userID]
	if !ok {
		return entity.DefaultRewardState(), nil
	}
	return cloneState(state), nil
}

func (s *memoryStore) Save(ctx context.Context, userID uuid.UUID, state entity.RewardState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.states[userID] = cloneState(state)
	return nil
}

func (s *memoryStore) Update(ctx context.Context, userID uuid.UUID, fn func(entity.RewardState) (entity.RewardState, error)) (entity.RewardState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.states[userID]
	if !ok {
		state = entity.DefaultRewardState()
	}

	next, err := fn(cloneState(state))
	if err != nil {
		return entity.RewardState{}, err
	}

	s.states[userID] = cloneState(next)
	return next, nil
}

func cloneState(state entity.RewardState) entity.RewardState {
	clone := state
	clone.DailyBonuses = append([]entity.DailyBonus(nil), state.DailyBonuses...)
	clone.Achievements = append([]entity.Achievement(nil), state.Achievements...)
	return clone
}
