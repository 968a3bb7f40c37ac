package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PurchaseRequestRecord archives a finalized purchase request. The full
// document is kept as JSON; the flat columns exist for listing and reporting.
type PurchaseRequestRecord struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	SessionId string    `gorm:"index"`
	Title     string
	Priority  string
	NeededBy  *string
	ItemCount int
	Payload   datatypes.JSON
	CreatedAt time.Time
}
