package events

import "time"

const (
	PurchaseRequestCreated = "PURCHASE_REQUEST_CREATED"
)

// NewPurchaseRequestCreated announces that a dialogue finalized a purchase
// request. The payload carries summary fields only; the archive pipeline owns
// the full document.
func NewPurchaseRequestCreated(sessionID, title, priority string, itemCount int) Event {
	return BaseEvent{
		Type: PurchaseRequestCreated,
		Data: map[string]interface{}{
			"session_id": sessionID,
			"title":      title,
			"priority":   priority,
			"item_count": itemCount,
		},
		OccurredAt: time.Now(),
	}
}
