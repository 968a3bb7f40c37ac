package memory

import (
	"context"
	"fmt"

	"ai-procurement-be/internal/repository/contract"
	"ai-procurement-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

type ConversationRepository struct {
	cache *cache.Cache
	locks store.KeyedMutex
}

var _ contract.ConversationRepository = &ConversationRepository{}

func NewConversationRepository() *ConversationRepository {
	// Sessions live until explicitly cleared or the process exits, so no
	// expiration and no janitor.
	c := cache.New(cache.NoExpiration, 0)
	return &ConversationRepository{
		cache: c,
	}
}

func (r *ConversationRepository) GetOrCreate(_ context.Context, sessionID, systemPrompt string) (*store.Conversation, error) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.Conversation).Clone(), nil
	}

	conv := &store.Conversation{
		ID:    sessionID,
		Turns: []store.Turn{{Role: store.RoleSystem, Content: systemPrompt}},
	}
	r.cache.Set(sessionID, conv, cache.NoExpiration)
	return conv.Clone(), nil
}

func (r *ConversationRepository) Append(_ context.Context, sessionID string, turn store.Turn) error {
	x, found := r.cache.Get(sessionID)
	if !found {
		return fmt.Errorf("conversation not found: %s", sessionID)
	}
	conv := x.(*store.Conversation)
	conv.Turns = append(conv.Turns, turn)
	return nil
}

func (r *ConversationRepository) RemoveLast(_ context.Context, sessionID string) error {
	x, found := r.cache.Get(sessionID)
	if !found {
		return fmt.Errorf("conversation not found: %s", sessionID)
	}
	conv := x.(*store.Conversation)
	if len(conv.Turns) > 0 {
		conv.Turns = conv.Turns[:len(conv.Turns)-1]
	}
	return nil
}

func (r *ConversationRepository) Clear(_ context.Context, sessionID string) (bool, error) {
	if _, found := r.cache.Get(sessionID); !found {
		return false, nil
	}
	r.cache.Delete(sessionID)
	return true, nil
}

func (r *ConversationRepository) LockSession(sessionID string) {
	r.locks.Lock(sessionID)
}

func (r *ConversationRepository) UnlockSession(sessionID string) {
	r.locks.Unlock(sessionID)
}
