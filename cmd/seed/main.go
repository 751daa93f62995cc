package main

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"reflekt/internal/bank"
	"reflekt/internal/config"
	"reflekt/internal/repository"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDatabase)
	questionRepo := repository.NewQuestionRepo(db)

	questions := bank.Questions()
	if err := questionRepo.ReplaceAll(ctx, questions); err != nil {
		log.Fatalf("Failed to seed question bank: %v", err)
	}

	log.Printf("Seeded %d questions into %s.questions", len(questions), cfg.MongoDatabase)
}
