package bootstrap

import (
	"context"
	"log"

	"smepro-be/internal/config"
	"smepro-be/internal/controller"
	"smepro-be/internal/pkg/logger"
	"smepro-be/internal/repository/memory"
	"smepro-be/internal/repository/redisstore"
	"smepro-be/internal/repository/unitofwork"
	"smepro-be/internal/service"
	"smepro-be/pkg/ai"
	"smepro-be/pkg/capability"
	"smepro-be/pkg/events"
	"smepro-be/pkg/suggestion"
	"smepro-be/pkg/synthesis"

	pktNats "smepro-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController      controller.AuthController
	UserController      controller.UserController
	PlanController      controller.PlanController
	ChatController      controller.ChatController
	VaultController     controller.VaultController
	WorkbenchController controller.WorkbenchController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
	AuditTrail      *events.AuditTrail

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS (audit trail; the app degrades to local logging without it)
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	audit := events.NewNatsAuditPublisher(natsPub, sysLogger)

	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}
	auditTrail := events.NewAuditTrail(natsSub, sysLogger)

	// Pending capability grants live in redis when available so confirm
	// calls can land on any instance; otherwise in process memory.
	var pendingStore capability.PendingStore = memory.NewPendingGrantStore()
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis, keeping in-memory grant store: %v", err)
		} else {
			pendingStore = redisstore.NewPendingGrantStore(rdb)
		}
	}

	// 3. AI Collaborator + domain engines
	collaborator, err := ai.NewGeminiCollaborator(cfg.Keys.GoogleGemini, cfg.Ai.ChatModel)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize Gemini collaborator: %v", err)
	}

	suggestionEngine := suggestion.NewEngine(collaborator)
	capabilityManager := capability.NewManager(collaborator, pendingStore)
	analyzer := synthesis.NewAnalyzer(collaborator)
	suggestionCache := memory.NewSuggestionCache()

	// 4. Services
	authService := service.NewAuthService(uowFactory, cfg, audit)
	userService := service.NewUserService(uowFactory)
	planService := service.NewPlanService(uowFactory, audit)
	chatService := service.NewChatService(
		uowFactory,
		collaborator,
		capabilityManager,
		suggestionEngine,
		suggestionCache,
		pubSub,
		audit,
		sysLogger,
	)
	vaultService := service.NewVaultService(uowFactory, analyzer, audit, sysLogger)
	workbenchService := service.NewWorkbenchService(uowFactory, collaborator, cfg, audit)

	consumerService := service.NewConsumerService(
		pubSub,
		service.ExchangeCompletedTopic,
		uowFactory,
		suggestionEngine,
		suggestionCache,
		sysLogger,
	)

	// 5. Controllers
	return &Container{
		AuthController:      controller.NewAuthController(authService),
		UserController:      controller.NewUserController(userService),
		PlanController:      controller.NewPlanController(planService),
		ChatController:      controller.NewChatController(chatService),
		VaultController:     controller.NewVaultController(vaultService),
		WorkbenchController: controller.NewWorkbenchController(workbenchService),

		ConsumerService: consumerService,
		AuditTrail:      auditTrail,
		Logger:          sysLogger,
	}
}
