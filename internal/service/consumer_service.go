package service

import (
	"context"
	"encoding/json"
	"log"

	"ai-procurement-be/internal/dto"
	"ai-procurement-be/internal/entity"
	"ai-procurement-be/internal/repository/contract"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the archive topic and persists finalized purchase
// requests. The dialogue result never depends on it: archiving is best-effort
// and fully asynchronous.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	records   contract.PurchaseRequestRecordRepository
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	records contract.PurchaseRequestRecordRepository,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		records:   records,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.ArchivePurchaseRequestMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal archive message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}
	if payload.Request == nil {
		log.Printf("[ERROR] Archive message for session %s carried no request", payload.SessionId)
		msg.Ack()
		return
	}

	requestJSON, err := json.Marshal(payload.Request)
	if err != nil {
		log.Printf("[ERROR] Failed to marshal purchase request for session %s: %v", payload.SessionId, err)
		msg.Ack()
		return
	}

	record := &entity.PurchaseRequestRecord{
		Id:        uuid.New(),
		SessionId: payload.SessionId,
		Title:     payload.Request.Title,
		Priority:  payload.Request.Priority,
		ItemCount: len(payload.Request.Items),
		Payload:   datatypes.JSON(requestJSON),
		CreatedAt: payload.FinalizedAt,
	}
	if payload.Request.NeededBy != "" {
		neededBy := payload.Request.NeededBy
		record.NeededBy = &neededBy
	}

	if err := cs.records.Create(ctx, record); err != nil {
		log.Printf("[ERROR] Failed to archive purchase request for session %s: %v", payload.SessionId, err)
		msg.Nack() // Nack for retriable errors
		return
	}

	log.Printf("[INFO] Archived purchase request %s for session %s", record.Id, payload.SessionId)
	msg.Ack()
}
