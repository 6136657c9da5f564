package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/smallbatch-apps/cashfloat/internal/domain"
)

// FlowStore keeps in-progress POS flow sessions in Redis. Sessions expire
// after the TTL; an abandoned wizard simply disappears, nothing was
// written anywhere else.
type FlowStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewFlowStore creates a new FlowStore.
func NewFlowStore(client *redis.Client, ttl time.Duration) *FlowStore {
	return &FlowStore{
		client: client,
		prefix: "posflow:",
		ttl:    ttl,
	}
}

// Save stores a session, resetting its TTL.
func (s *FlowStore) Save(ctx context.Context, flow *domain.POSFlow) error {
	data, err := json.Marshal(flow)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, s.prefix+flow.ID, data, s.ttl).Err()
}

// Get fetches a session by ID.
func (s *FlowStore) Get(ctx context.Context, id string) (*domain.POSFlow, error) {
	data, err := s.client.Get(ctx, s.prefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrFlowNotFound
		}
		return nil, err
	}

	var flow domain.POSFlow
	if err := json.Unmarshal(data, &flow); err != nil {
		return nil, err
	}

	return &flow, nil
}

// Delete removes a session.
func (s *FlowStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, s.prefix+id).Err()
}
