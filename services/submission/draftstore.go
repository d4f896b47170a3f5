package submission

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"parcelo/models"

	"github.com/go-redis/redis/v8"
)

const draftKeyPrefix = "draft:"

// DraftStore persists wizard drafts between steps. Drafts are short-lived
// and private to the submitting client.
type DraftStore interface {
	Save(ctx context.Context, draft *models.Submission) error
	Get(ctx context.Context, id string) (*models.Submission, error)
	Delete(ctx context.Context, id string) error
}

// RedisDraftStore stores drafts as JSON with a TTL; abandoning the wizard
// just lets the draft expire.
type RedisDraftStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisDraftStore(client *redis.Client, ttl time.Duration) *RedisDraftStore {
	return &RedisDraftStore{Client: client, TTL: ttl}
}

func (s *RedisDraftStore) Save(ctx context.Context, draft *models.Submission) error {
	draft.UpdatedAt = time.Now()
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}
	if err := s.Client.Set(ctx, draftKeyPrefix+draft.ID, data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

func (s *RedisDraftStore) Get(ctx context.Context, id string) (*models.Submission, error) {
	data, err := s.Client.Get(ctx, draftKeyPrefix+id).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("failed to retrieve draft: %w", err)
	}
	var draft models.Submission
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft: %w", err)
	}
	return &draft, nil
}

func (s *RedisDraftStore) Delete(ctx context.Context, id string) error {
	return s.Client.Del(ctx, draftKeyPrefix+id).Err()
}

// MemoryDraftStore keeps drafts in process memory. Used in tests and as a
// fallback when Redis is not available.
type MemoryDraftStore struct {
	mu     sync.Mutex
	drafts map[string]models.Submission
}

func NewMemoryDraftStore() *MemoryDraftStore {
	return &MemoryDraftStore{drafts: make(map[string]models.Submission)}
}

func (s *MemoryDraftStore) Save(ctx context.Context, draft *models.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft.UpdatedAt = time.Now()
	s.drafts[draft.ID] = *draft
	return nil
}

func (s *MemoryDraftStore) Get(ctx context.Context, id string) (*models.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft, ok := s.drafts[id]
	if !ok {
		return nil, ErrDraftNotFound
	}
	return &draft, nil
}

func (s *MemoryDraftStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, id)
	return nil
}
