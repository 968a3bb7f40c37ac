package contract

import (
	"context"

	"ai-procurement-be/pkg/store"
)

// ConversationRepository owns all dialogue transcripts for their lifetime.
// GetOrCreate returns a snapshot copy; mutations go through Append/RemoveLast.
// Clear reports whether the session existed so callers can log the no-op case.
type ConversationRepository interface {
	// GetOrCreate resolves the transcript for a session key, seeding it with
	// the system instruction turn on first sight.
	GetOrCreate(ctx context.Context, sessionID, systemPrompt string) (*store.Conversation, error)

	Append(ctx context.Context, sessionID string, turn store.Turn) error

	// RemoveLast rolls back the most recent turn (oracle-failure recovery).
	RemoveLast(ctx context.Context, sessionID string) error

	Clear(ctx context.Context, sessionID string) (bool, error)

	// LockSession / UnlockSession serialize interactions per session key.
	// Distinct keys never block each other.
	LockSession(sessionID string)
	UnlockSession(sessionID string)
}
