package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"reflekt/internal/model"
)

// QuestionRepo reads the curated question bank. ReplaceAll exists for the
// seed command only; the service itself never writes questions.
type QuestionRepo interface {
	List(ctx context.Context) ([]model.Question, error)
	ReplaceAll(ctx context.Context, questions []model.Question) error
}

type questionRepo struct {
	collection *mongo.Collection
}

// NewQuestionRepo creates a new question bank repository
func NewQuestionRepo(db *mongo.Database) QuestionRepo {
	return &questionRepo{
		collection: db.Collection("questions"),
	}
}

func (r *questionRepo) List(ctx context.Context) ([]model.Question, error) {
	// Bank order is significant: tied scores keep it
	opts := options.Find().SetSort(bson.M{"order": 1})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questions []model.Question
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepo) ReplaceAll(ctx context.Context, questions []model.Question) error {
	if err := r.collection.Drop(ctx); err != nil {
		return err
	}

	docs := make([]interface{}, len(questions))
	for i, q := range questions {
		q.Order = i
		docs[i] = q
	}

	_, err := r.collection.InsertMany(ctx, docs)
	return err
}
