package bootstrap

import (
	"context"
	"log"

	"ai-procurement-be/internal/config"
	"ai-procurement-be/internal/controller"
	"ai-procurement-be/internal/pkg/logger"
	"ai-procurement-be/internal/repository/contract"
	"ai-procurement-be/internal/repository/implementation"
	"ai-procurement-be/internal/repository/memory"
	"ai-procurement-be/internal/repository/redisstore"
	"ai-procurement-be/internal/service"
	"ai-procurement-be/pkg/llm/factory"

	pkgNats "ai-procurement-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController    controller.IChatController
	PriceController   controller.IPriceController
	UtilityController controller.IUtilityController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Oracle
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OpenAIAPIKey,
		cfg.Ai.OpenAIBaseURL,
		cfg.Ai.OllamaBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Conversation Store
	var conversationRepo contract.ConversationRepository
	if cfg.Session.Backend == "redis" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		conversationRepo = redisstore.NewConversationRepository(rdb)
		log.Printf("[INFO] Using Session Backend: REDIS")
	} else {
		conversationRepo = memory.NewConversationRepository()
		log.Printf("[INFO] Using Session Backend: MEMORY")
	}

	// 5. Infrastructure
	natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	recordRepo := implementation.NewPurchaseRequestRecordRepository(db)

	// 6. Services
	publisherService := service.NewPublisherService(cfg.App.ArchiveTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.App.ArchiveTopic, recordRepo)

	chatService := service.NewChatService(
		conversationRepo,
		llmProvider,
		publisherService,
		natsPub,
		sysLogger,
	)
	priceService := service.NewPriceService(llmProvider, sysLogger, cfg.Ai.PricingModel)

	return &Container{
		ChatController:    controller.NewChatController(chatService),
		PriceController:   controller.NewPriceController(priceService),
		UtilityController: controller.NewUtilityController(db),
		ConsumerService:   consumerService,
		Logger:            sysLogger,
	}
}
