package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"ai-procurement-be/internal/repository/contract"
	"ai-procurement-be/pkg/store"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "conversation:"

// ConversationRepository keeps transcripts in Redis as JSON payloads. It is a
// drop-in alternative to the in-memory store when several instances should
// share dialogue state behind a sticky load balancer. Per-key mutual exclusion
// stays in-process: the engine serializes interactions before touching Redis.
type ConversationRepository struct {
	client *redis.Client
	locks  store.KeyedMutex
}

var _ contract.ConversationRepository = &ConversationRepository{}

func NewConversationRepository(client *redis.Client) *ConversationRepository {
	return &ConversationRepository{client: client}
}

func (r *ConversationRepository) GetOrCreate(ctx context.Context, sessionID, systemPrompt string) (*store.Conversation, error) {
	conv, err := r.load(ctx, sessionID)
	if err == nil {
		return conv, nil
	}
	if !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("load conversation: %w", err)
	}

	conv = &store.Conversation{
		ID:    sessionID,
		Turns: []store.Turn{{Role: store.RoleSystem, Content: systemPrompt}},
	}
	if err := r.save(ctx, conv); err != nil {
		return nil, err
	}
	return conv, nil
}

func (r *ConversationRepository) Append(ctx context.Context, sessionID string, turn store.Turn) error {
	conv, err := r.load(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("load conversation: %w", err)
	}
	conv.Turns = append(conv.Turns, turn)
	return r.save(ctx, conv)
}

func (r *ConversationRepository) RemoveLast(ctx context.Context, sessionID string) error {
	conv, err := r.load(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("load conversation: %w", err)
	}
	if len(conv.Turns) > 0 {
		conv.Turns = conv.Turns[:len(conv.Turns)-1]
	}
	return r.save(ctx, conv)
}

func (r *ConversationRepository) Clear(ctx context.Context, sessionID string) (bool, error) {
	removed, err := r.client.Del(ctx, keyPrefix+sessionID).Result()
	if err != nil {
		return false, fmt.Errorf("delete conversation: %w", err)
	}
	return removed > 0, nil
}

func (r *ConversationRepository) LockSession(sessionID string) {
	r.locks.Lock(sessionID)
}

func (r *ConversationRepository) UnlockSession(sessionID string) {
	r.locks.Unlock(sessionID)
}

func (r *ConversationRepository) load(ctx context.Context, sessionID string) (*store.Conversation, error) {
	data, err := r.client.Get(ctx, keyPrefix+sessionID).Bytes()
	if err != nil {
		return nil, err
	}
	var conv store.Conversation
	if err := json.Unmarshal(data, &conv); err != nil {
		return nil, fmt.Errorf("unmarshal conversation: %w", err)
	}
	return &conv, nil
}

func (r *ConversationRepository) save(ctx context.Context, conv *store.Conversation) error {
	data, err := json.Marshal(conv)
	if err != nil {
		return fmt.Errorf("marshal conversation: %w", err)
	}
	if err := r.client.Set(ctx, keyPrefix+conv.ID, data, 0).Err(); err != nil {
		return fmt.Errorf("save conversation: %w", err)
	}
	return nil
}
