package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"reflekt/internal/cache"
	"reflekt/internal/config"
	"reflekt/internal/repository"
	"reflekt/internal/service"
	"reflekt/internal/transport/rest"
	"reflekt/internal/transport/ws"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()
	log.Printf("Recommendation config:")
	log.Printf("  Top K:          %d", cfg.TopK)
	log.Printf("  Min entries:    %d", cfg.MinEntries)
	log.Printf("  Min completed:  %d", cfg.MinCompleted)
	log.Printf("  Lookback:       %d days", cfg.LookbackDays)
	log.Printf("  Batch workers:  %d", cfg.BatchWorkers)
	if cfg.CronToken == "" {
		log.Println("Warning: CRON_TOKEN not set, batch endpoint disabled")
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis connection
	redisAddr := cfg.RedisURI
	if len(redisAddr) > 8 && redisAddr[:8] == "redis://" {
		redisAddr = redisAddr[8:]
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories
	entryRepo := repository.NewEntryRepo(db)
	questionRepo := repository.NewQuestionRepo(db)
	setRepo := repository.NewSetRepo(db)
	completionRepo := repository.NewCompletionRepo(db)

	// Initialize caches
	engagementCache := cache.NewEngagementCache(rdb)
	setCache := cache.NewSetCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService(cfg.JWTSecret)
	generatorSvc := service.NewGeneratorService(entryRepo, questionRepo, cfg.MinEntries, cfg.TopK)
	setSvc := service.NewSetService(setRepo, setCache)
	completionSvc := service.NewCompletionService(completionRepo, setRepo, engagementCache)
	batchSvc := service.NewBatchService(entryRepo, completionSvc, generatorSvc, setSvc,
		cfg.ActivityWindowDays, cfg.LookbackDays, cfg.MinCompleted, cfg.BatchWorkers)

	// Inject notifier (wsHub implements service.Notifier)
	batchSvc.SetNotifier(wsHub)

	// Create router with container
	container := &rest.Container{
		AuthService:       authSvc,
		GeneratorService:  generatorSvc,
		SetService:        setSvc,
		CompletionService: completionSvc,
		BatchService:      batchSvc,
		WSHub:             wsHub,
		CronToken:         cfg.CronToken,
		LookbackDays:      cfg.LookbackDays,
		BatchTimeout:      cfg.BatchTimeout,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		log.Println("Endpoints:")
		log.Println("  POST /v1/questions/generate")
		log.Println("  GET  /v1/questions/current")
		log.Println("  POST /v1/questions/{questionId}/complete")
		log.Println("  POST /v1/batch/run")
		log.Println("  WS   /v1/ws/questions")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
