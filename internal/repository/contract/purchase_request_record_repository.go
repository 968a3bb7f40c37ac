package contract

import (
	"context"

	"ai-procurement-be/internal/entity"
)

type PurchaseRequestRecordRepository interface {
	Create(ctx context.Context, record *entity.PurchaseRequestRecord) error
	FindBySessionId(ctx context.Context, sessionID string) ([]entity.PurchaseRequestRecord, error)
	Count(ctx context.Context) (int64, error)
}
