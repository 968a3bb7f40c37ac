package implementation

import (
	"context"

	"ai-procurement-be/internal/entity"
	"ai-procurement-be/internal/repository/contract"

	"gorm.io/gorm"
)

type PurchaseRequestRecordRepositoryImpl struct {
	db *gorm.DB
}

func NewPurchaseRequestRecordRepository(db *gorm.DB) contract.PurchaseRequestRecordRepository {
	return &PurchaseRequestRecordRepositoryImpl{db: db}
}

func (r *PurchaseRequestRecordRepositoryImpl) Create(ctx context.Context, record *entity.PurchaseRequestRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *PurchaseRequestRecordRepositoryImpl) FindBySessionId(ctx context.Context, sessionID string) ([]entity.PurchaseRequestRecord, error) {
	var records []entity.PurchaseRequestRecord
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *PurchaseRequestRecordRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.PurchaseRequestRecord{}).Count(&count).Error
	return count, err
}
