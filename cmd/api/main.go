package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"findhere/internal/adapter/api"
	"findhere/internal/adapter/api/handler"
	apimiddleware "findhere/internal/adapter/api/middleware"
	"findhere/internal/adapter/api/router"
	"findhere/internal/adapter/cache"
	"findhere/internal/adapter/repository"
	"findhere/internal/domain/discovery"
	"findhere/internal/domain/service"
	"findhere/internal/infrastructure/firebase"
	"findhere/internal/infrastructure/ratelimit"
	"findhere/internal/infrastructure/storage"
	"findhere/internal/infrastructure/websocket"
	"findhere/internal/usecase"
	"findhere/pkg/config"
	"findhere/pkg/logger"
)

func credentials(cfg *config.Config) []option.ClientOption {
	if cfg.ServiceAccountJSON != "" {
		logger.Info("using Firebase service account from environment variable")
		return []option.ClientOption{option.WithCredentialsJSON([]byte(cfg.ServiceAccountJSON))}
	}
	if cfg.ServiceAccountPath != "" {
		if _, err := os.Stat(cfg.ServiceAccountPath); err != nil {
			logger.Fatal("service account file %s: %v", cfg.ServiceAccountPath, err)
		}
		logger.Info("using Firebase service account from file: %s", cfg.ServiceAccountPath)
		return []option.ClientOption{option.WithCredentialsFile(cfg.ServiceAccountPath)}
	}
	logger.Info("using application default credentials")
	return nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration: %v", err)
	}
	logger.Setup(logger.Options{Level: cfg.LogLevel, JSON: cfg.IsProduction()})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := credentials(cfg)

	firebaseApp, err := firebase.NewApp(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		logger.Fatal("failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		logger.Fatal("failed to initialize Firebase Auth: %v", err)
	}
	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient)

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		logger.Fatal("failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	// Image uploads are disabled without a bucket.
	var images service.ImageStorage
	if cfg.StorageBucket != "" {
		storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, opts...)
		if err != nil {
			logger.Fatal("failed to initialize Cloud Storage: %v", err)
		}
		defer storageClient.Close()
		images = storageClient
	} else {
		logger.Warn("STORAGE_BUCKET not set, image uploads disabled")
	}

	healthChecks := map[string]handler.HealthCheck{}

	// The catalog cache is optional; without Redis every request reads Firestore.
	var catalogCache usecase.CatalogCache
	if cfg.RedisAddr != "" {
		rdb, err := cache.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			logger.Warn("redis unavailable, catalog cache disabled: %v", err)
		} else {
			defer rdb.Close()
			catalogCache = cache.NewRedisCatalogCache(rdb, cfg.CatalogCacheTTL)
			healthChecks["redis"] = func(ctx context.Context) error {
				return rdb.Ping(ctx).Err()
			}
		}
	}

	listingRepo := repository.NewFirestoreListingRepository(firestoreClient)
	categoryRepo := repository.NewFirestoreCategoryRepository(firestoreClient)
	profileRepo := repository.NewFirestoreProfileRepository(firestoreClient)
	favoriteRepo := repository.NewFirestoreFavoriteRepository(firestoreClient)
	inquiryRepo := repository.NewFirestoreInquiryRepository(firestoreClient)
	conversationRepo := repository.NewFirestoreConversationRepository(firestoreClient)
	orderRepo := repository.NewFirestoreOrderRepository(firestoreClient)
	reviewRepo := repository.NewFirestoreReviewRepository(firestoreClient)

	healthChecks["firestore"] = func(ctx context.Context) error {
		_, err := categoryRepo.List(ctx)
		return err
	}

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	limiter := ratelimit.NewRateLimiter()
	limiter.StartCleanupRoutine(10*time.Minute, ctx.Done())

	if cfg.DeepSeekAPIKey == "" {
		logger.Warn("DEEPSEEK_API_KEY not set, assistant chat disabled")
	}
	assistantService := service.NewDeepSeekService(cfg.DeepSeekAPIKey, cfg.DeepSeekBaseURL, cfg.DeepSeekModel)

	var payments service.PaymentIntentCreator
	if cfg.StripeSecretKey != "" {
		payments = service.NewStripePaymentService(cfg.StripeSecretKey, "")
	} else {
		logger.Warn("STRIPE_SECRET_KEY not set, payments disabled")
	}

	fallback := discovery.Point{Lat: cfg.DefaultLatitude, Lon: cfg.DefaultLongitude}

	browseUseCase := usecase.NewBrowseUseCase(listingRepo, categoryRepo, profileRepo, catalogCache)
	listingUseCase := usecase.NewListingUseCase(listingRepo, categoryRepo, images, catalogCache)
	mapUseCase := usecase.NewMapUseCase(browseUseCase, fallback)
	favoriteUseCase := usecase.NewFavoriteUseCase(favoriteRepo, listingRepo)
	inquiryUseCase := usecase.NewInquiryUseCase(inquiryRepo, listingRepo, wsManager)
	profileUseCase := usecase.NewProfileUseCase(profileRepo, firebaseAuthClient, catalogCache)
	assistantUseCase := usecase.NewAssistantUseCase(
		assistantService,
		service.DefaultKnowledgeBase(),
		conversationRepo,
		limiter,
		cfg.DeepSeekAPIKey != "",
	)
	paymentUseCase := usecase.NewPaymentUseCase(payments, orderRepo, listingRepo, cfg.DefaultCurrency)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, listingRepo, wsManager)

	handler.Setup(
		browseUseCase,
		listingUseCase,
		mapUseCase,
		favoriteUseCase,
		inquiryUseCase,
		profileUseCase,
		assistantUseCase,
		paymentUseCase,
		reviewUseCase,
	)
	handler.SetupHealthHandler(healthChecks)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	if len(cfg.AllowedOrigins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{AllowOrigins: cfg.AllowedOrigins}))
	} else {
		e.Use(middleware.CORS())
	}

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(firebaseAuthClient)
	wsHandler := handler.NewWebSocketHandler(wsManager, cfg.AllowedOrigins)

	router.Setup(e, authMiddleware, limiter)
	router.SetupWebSocketRouter(e, wsHandler, authMiddleware)

	go func() {
		logger.Info("starting server on port %s", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server stopped: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed: %v", err)
	}
}
