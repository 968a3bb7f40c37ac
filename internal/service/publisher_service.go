package service

import (
	"encoding/json"
	"fmt"
	"time"

	"ai-procurement-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IPublisherService hands finalized purchase requests to the in-process
// archive pipeline.
type IPublisherService interface {
	PublishPurchaseRequest(sessionID string, request *dto.PurchaseRequest) error
}

type publisherService struct {
	topicName string
	pubSub    *gochannel.GoChannel
}

func NewPublisherService(topicName string, pubSub *gochannel.GoChannel) IPublisherService {
	return &publisherService{
		topicName: topicName,
		pubSub:    pubSub,
	}
}

func (ps *publisherService) PublishPurchaseRequest(sessionID string, request *dto.PurchaseRequest) error {
	payload := dto.ArchivePurchaseRequestMessage{
		SessionId:   sessionID,
		Request:     request,
		FinalizedAt: time.Now(),
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal archive message: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	if err := ps.pubSub.Publish(ps.topicName, msg); err != nil {
		return fmt.Errorf("publish archive message: %w", err)
	}
	return nil
}
