package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ai-procurement-be/internal/constant"
	"ai-procurement-be/internal/dto"
	"ai-procurement-be/internal/pkg/logger"
	"ai-procurement-be/internal/repository/contract"
	"ai-procurement-be/pkg/dialogue"
	"ai-procurement-be/pkg/events"
	"ai-procurement-be/pkg/llm"
	pkgNats "ai-procurement-be/pkg/nats"
	"ai-procurement-be/pkg/store"
)

// IChatService drives one conversational turn of the procurement dialogue.
type IChatService interface {
	Interact(ctx context.Context, sessionID, userMessage string) (*dto.TurnResult, error)
}

type chatService struct {
	conversations contract.ConversationRepository
	llmProvider   llm.LLMProvider
	publisher     IPublisherService
	natsPub       *pkgNats.Publisher // nil when NATS is unavailable
	logger        logger.ILogger
	now           func() time.Time
}

func NewChatService(
	conversations contract.ConversationRepository,
	llmProvider llm.LLMProvider,
	publisher IPublisherService,
	natsPub *pkgNats.Publisher,
	sysLogger logger.ILogger,
) IChatService {
	return &chatService{
		conversations: conversations,
		llmProvider:   llmProvider,
		publisher:     publisher,
		natsPub:       natsPub,
		logger:        sysLogger,
		now:           time.Now,
	}
}

// Interact appends the user's utterance, consults the oracle with the full
// transcript and resolves the reply into a TurnResult. Interactions on one
// session key are serialized; an oracle failure rolls the transcript back to
// its exact pre-call state.
func (cs *chatService) Interact(ctx context.Context, sessionID, userMessage string) (*dto.TurnResult, error) {
	cs.conversations.LockSession(sessionID)
	defer cs.conversations.UnlockSession(sessionID)

	conv, err := cs.conversations.GetOrCreate(ctx, sessionID, constant.SystemPromptProcurement)
	if err != nil {
		return nil, fmt.Errorf("resolve conversation: %w", err)
	}
	if len(conv.Turns) == 1 {
		cs.logger.Info("chat", "New conversation started", map[string]interface{}{
			"session_id": sessionID,
		})
	}

	userTurn := store.Turn{Role: store.RoleUser, Content: userMessage}
	if err := cs.conversations.Append(ctx, sessionID, userTurn); err != nil {
		return nil, fmt.Errorf("append user turn: %w", err)
	}

	history := make([]llm.Message, 0, len(conv.Turns)+1)
	for _, turn := range conv.Turns {
		history = append(history, llm.Message{Role: turn.Role, Content: turn.Content})
	}
	history = append(history, llm.Message{Role: userTurn.Role, Content: userTurn.Content})

	raw, err := cs.llmProvider.Chat(ctx, history,
		llm.WithTemperature(0.3),
		llm.WithJSONResponse(),
	)
	if err != nil {
		// Roll back so the session is exactly as it was before this call.
		if rbErr := cs.conversations.RemoveLast(ctx, sessionID); rbErr != nil {
			cs.logger.Error("chat", "Rollback after oracle failure failed", map[string]interface{}{
				"session_id": sessionID,
				"error":      rbErr.Error(),
			})
		}
		cs.logger.Error("chat", "Oracle call failed", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("oracle call: %w", err)
	}

	// The raw reply is kept in the transcript even when it fails to parse, so
	// follow-up turns retain full context.
	if err := cs.conversations.Append(ctx, sessionID, store.Turn{Role: store.RoleAssistant, Content: raw}); err != nil {
		return nil, fmt.Errorf("append assistant turn: %w", err)
	}

	result, parsed := dialogue.ParseTurnResult(raw)
	if !parsed {
		cs.logger.Warn("chat", "Oracle response was not a valid turn object, treating as question", map[string]interface{}{
			"session_id": sessionID,
			"content":    raw,
		})
		return result, nil
	}

	if !result.IsDone {
		return result, nil
	}

	if err := dialogue.ValidatePurchaseRequest(result.PurchaseRequest, cs.now()); err != nil {
		cs.logger.Warn("chat", "Terminal request failed validation, re-questioning", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		return &dto.TurnResult{
			Type:    dto.TurnResultQuestion,
			Message: correctionMessage(err),
			IsDone:  false,
		}, nil
	}

	cs.announce(ctx, sessionID, result.PurchaseRequest)

	// Clearing is the very last step: the terminal result is fully built
	// before the session disappears.
	found, err := cs.conversations.Clear(ctx, sessionID)
	if err != nil {
		cs.logger.Error("chat", "Failed to clear finalized conversation", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
	} else if !found {
		cs.logger.Warn("chat", "No conversation found to clear", map[string]interface{}{
			"session_id": sessionID,
		})
	} else {
		cs.logger.Info("chat", "Conversation finalized and cleared", map[string]interface{}{
			"session_id": sessionID,
			"title":      result.PurchaseRequest.Title,
		})
	}

	return result, nil
}

// announce publishes the finalized request to the archive pipeline and the
// event bus. Both are best-effort: a delivery failure never invalidates the
// terminal result.
func (cs *chatService) announce(ctx context.Context, sessionID string, pr *dto.PurchaseRequest) {
	if cs.publisher != nil {
		if err := cs.publisher.PublishPurchaseRequest(sessionID, pr); err != nil {
			cs.logger.Warn("chat", "Failed to publish request to archive pipeline", map[string]interface{}{
				"session_id": sessionID,
				"error":      err.Error(),
			})
		}
	}

	if cs.natsPub != nil {
		event := events.NewPurchaseRequestCreated(sessionID, pr.Title, pr.Priority, len(pr.Items))
		if err := cs.natsPub.Publish(ctx, event); err != nil {
			cs.logger.Warn("chat", "Failed to publish purchase request event", map[string]interface{}{
				"session_id": sessionID,
				"error":      err.Error(),
			})
		}
	}
}

// correctionMessage maps a validation failure to the policy's own Turkish
// re-prompt wording.
func correctionMessage(err error) string {
	switch {
	case errors.Is(err, dialogue.ErrBadQuantity):
		return "Lütfen geçerli bir miktar girin (örn: 5)."
	case errors.Is(err, dialogue.ErrBadDateFormat):
		return "Lütfen tarihi YYYY-AA-GG formatında girin (örn: 2025-12-31)."
	case errors.Is(err, dialogue.ErrPastDate):
		return "Girdiğiniz tarih geçmişte. Lütfen geçerli bir tarih belirtin (örn: 2025-12-31)."
	case errors.Is(err, dialogue.ErrBadPriority):
		return "Lütfen geçerli bir öncelik seçin: Düşük, Orta, Yüksek."
	case errors.Is(err, dialogue.ErrNoItems):
		return "Talebinizde henüz bir kalem bulunmuyor. Hangi ürün veya hizmeti eklemek istersiniz?"
	default:
		return "Talebinizde eksik veya hatalı bir alan var. Lütfen bilgileri kontrol edip tekrar iletir misiniz?"
	}
}
