package dto

import "time"

// ArchivePurchaseRequestMessage travels over the in-process event bus from the
// chat service to the archive consumer.
type ArchivePurchaseRequestMessage struct {
	SessionId   string           `json:"session_id"`
	Request     *PurchaseRequest `json:"request"`
	FinalizedAt time.Time        `json:"finalized_at"`
}
