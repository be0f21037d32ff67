package bootstrap

import (
	"context"
	"log"

	"cofoundr-be/internal/config"
	"cofoundr-be/internal/controller"
	"cofoundr-be/internal/handler"
	"cofoundr-be/internal/pkg/logger"
	"cofoundr-be/internal/pkg/mailer"
	"cofoundr-be/internal/repository/implementation"
	"cofoundr-be/internal/repository/memory"
	"cofoundr-be/internal/repository/unitofwork"
	"cofoundr-be/internal/service"
	"cofoundr-be/internal/websocket"
	"cofoundr-be/pkg/embedding"

	pktNats "cofoundr-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	OAuthController     controller.IOAuthController
	ProfileController   controller.IProfileController
	DiscoveryController controller.IDiscoveryController
	MatchController     controller.IMatchController
	ChatController      controller.IChatController
	CollabController    controller.ICollabController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// In-process event bus for the embedding pipeline
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Ai.GeminiApiKey)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	// Step editor drafts live in process memory
	sessionRepo := memory.NewStepSessionRepository()

	// NATS
	var eventBus service.EventPublisher
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	} else {
		eventBus = natsPub
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
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
		rdb = nil
	}

	// WebSocket hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	publisherService := service.NewPublisherService(cfg.Ai.EmbedProfileTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Ai.EmbedProfileTopic,
		uowFactory,
		embeddingProvider,
	)

	authService := service.NewAuthService(uowFactory, emailService)
	oauthService := service.NewOAuthService(
		uowFactory,
		cfg.OAuth.GoogleClientID,
		cfg.OAuth.GoogleClientSecret,
		cfg.OAuth.GoogleRedirectURL,
	)
	profileService := service.NewProfileService(uowFactory, publisherService)
	discoveryService := service.NewDiscoveryService(uowFactory, eventBus)
	matchService := service.NewMatchService(uowFactory)
	chatService := service.NewChatService(uowFactory, eventBus)
	methodService := service.NewMethodService(uowFactory)
	collabService := service.NewCollabService(uowFactory, sessionRepo, eventBus)

	// Notification worker
	notifRepo := implementation.NewNotificationRepository(db)
	notifService := service.NewNotificationService(notifRepo, natsSub, wsHub, wsLogger)
	if natsSub != nil {
		go notifService.Start()
	}
	notifHandler := handler.NewNotificationHandler(notifService, wsHub, wsLogger)

	sysLogger.Info("Bootstrap", "Container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	return &Container{
		AuthController:      controller.NewAuthController(authService),
		OAuthController:     controller.NewOAuthController(oauthService, cfg.App.ClientURL),
		ProfileController:   controller.NewProfileController(profileService),
		DiscoveryController: controller.NewDiscoveryController(discoveryService),
		MatchController:     controller.NewMatchController(matchService),
		ChatController:      controller.NewChatController(chatService),
		CollabController:    controller.NewCollabController(methodService, collabService),

		ConsumerService: consumerService,

		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,
	}
}
