package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"
	fbapp "firebase.google.com/go/v4"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"github.com/burhansaar3-alt/app/internal/adapter/api"
	"github.com/burhansaar3-alt/app/internal/adapter/api/handler"
	apimiddleware "github.com/burhansaar3-alt/app/internal/adapter/api/middleware"
	"github.com/burhansaar3-alt/app/internal/adapter/api/router"
	"github.com/burhansaar3-alt/app/internal/adapter/repository"
	"github.com/burhansaar3-alt/app/internal/domain/service"
	"github.com/burhansaar3-alt/app/internal/infrastructure/firebase"
	"github.com/burhansaar3-alt/app/internal/infrastructure/kafka"
	"github.com/burhansaar3-alt/app/internal/infrastructure/redisx"
	"github.com/burhansaar3-alt/app/internal/infrastructure/storage"
	"github.com/burhansaar3-alt/app/internal/infrastructure/websocket"
	"github.com/burhansaar3-alt/app/internal/usecase"
	"github.com/burhansaar3-alt/app/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var opts []option.ClientOption
	credentialsPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	fbAuth, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, credentialsPath)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	redisClient := redisx.New(cfg.RedisAddr)
	defer redisClient.Close()
	if err := redisx.Ping(ctx, redisClient); err != nil {
		log.Fatalf("Failed to reach Redis: %v", err)
	}

	orderEvents := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaOrderTopic, 256)
	orderEvents.Start(ctx)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	storeRepo := repository.NewFirestoreStoreRepository(firestoreClient)
	productRepo := repository.NewFirestoreProductRepository(firestoreClient)
	categoryRepo := repository.NewFirestoreCategoryRepository(firestoreClient)
	reviewRepo := repository.NewFirestoreReviewRepository(firestoreClient)
	orderRepo := repository.NewFirestoreOrderRepository(firestoreClient)
	complaintRepo := repository.NewFirestoreComplaintRepository(firestoreClient)
	wishlistRepo := repository.NewFirestoreWishlistRepository(firestoreClient)
	chatRepo := repository.NewFirestoreChatRepository(firestoreClient)
	cartRepo := repository.NewRedisCartRepository(redisClient, time.Duration(cfg.CartTTLDays)*24*time.Hour)

	authClient := firebase.NewAuthClient(fbAuth, cfg.FirebaseAPIKey)
	policy := service.NewPolicy(cfg.SuperAdminEmail)

	authUseCase := usecase.NewAuthUseCase(userRepo, authClient)
	storeUseCase := usecase.NewStoreUseCase(storeRepo, productRepo, policy)
	productUseCase := usecase.NewProductUseCase(productRepo, storeRepo, categoryRepo, reviewRepo, policy)
	cartUseCase := usecase.NewCartUseCase(cartRepo, productRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, productRepo, storeRepo, cartRepo, policy, orderEvents)
	complaintUseCase := usecase.NewComplaintUseCase(complaintRepo, orderRepo, policy)
	wishlistUseCase := usecase.NewWishlistUseCase(wishlistRepo, productRepo)
	userUseCase := usecase.NewUserUseCase(userRepo, authClient, policy)
	chatUseCase := usecase.NewChatUseCase(chatRepo, storeRepo, wsManager)

	handler.Setup(
		authUseCase,
		storeUseCase,
		productUseCase,
		cartUseCase,
		orderUseCase,
		complaintUseCase,
		wishlistUseCase,
		userUseCase,
		chatUseCase,
		storageClient,
		wsManager,
	)
	handler.SetupHealthHandler(redisClient)

	e := echo.New()
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient, userRepo)
	adminMiddleware := apimiddleware.NewAdminMiddleware(policy)

	router.Setup(e, authMiddleware, adminMiddleware)

	go func() {
		log.Printf("Starting server on port %s...", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server stopped: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}

	// Stop the producer loop and drain pending order events.
	cancel()
	orderEvents.WaitClosed()
}
