package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"reflekt/internal/model"
)

// CompletionRepo persists question completion records
type CompletionRepo interface {
	Get(ctx context.Context, userID, questionID string) (*model.QuestionCompletion, error)
	Create(ctx context.Context, completion *model.QuestionCompletion) error
	CountByUser(ctx context.Context, userID string) (int, error)
}

type completionRepo struct {
	collection *mongo.Collection
}

// NewCompletionRepo creates a new completion repository
func NewCompletionRepo(db *mongo.Database) CompletionRepo {
	return &completionRepo{
		collection: db.Collection("completions"),
	}
}

func (r *completionRepo) Get(ctx context.Context, userID, questionID string) (*model.QuestionCompletion, error) {
	filter := bson.M{"userId": userID, "questionId": questionID}

	var completion model.QuestionCompletion
	err := r.collection.FindOne(ctx, filter).Decode(&completion)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &completion, nil
}

func (r *completionRepo) Create(ctx context.Context, completion *model.QuestionCompletion) error {
	_, err := r.collection.InsertOne(ctx, completion)
	return err
}

func (r *completionRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"userId": userID})
	if err != nil {
		return 0, err
	}
	return int(count), nil
}
