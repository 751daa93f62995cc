package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"reflekt/internal/model"
)

// SetRepo persists generated weekly question sets
type SetRepo interface {
	Upsert(ctx context.Context, set *model.GeneratedQuestionSet) error
	GetByPeriod(ctx context.Context, userID string, week, year int) (*model.GeneratedQuestionSet, error)
	LatestByUser(ctx context.Context, userID string) (*model.GeneratedQuestionSet, error)
	HasAnyForUser(ctx context.Context, userID string) (bool, error)
	OwnersOfQuestion(ctx context.Context, questionID string) ([]string, error)
}

type setRepo struct {
	collection *mongo.Collection
}

// NewSetRepo creates a new question set repository
func NewSetRepo(db *mongo.Database) SetRepo {
	return &setRepo{
		collection: db.Collection("question_sets"),
	}
}

// Upsert writes the set keyed by (userId, week, year) so batch re-runs never
// duplicate a period. Old periods stay untouched as history.
func (r *setRepo) Upsert(ctx context.Context, set *model.GeneratedQuestionSet) error {
	filter := bson.M{
		"userId":     set.UserID,
		"weekNumber": set.WeekNumber,
		"year":       set.Year,
	}
	update := bson.M{
		"$set": bson.M{
			"questions":   set.Questions,
			"generatedAt": set.GeneratedAt,
		},
		"$setOnInsert": bson.M{
			"_id":        set.ID,
			"userId":     set.UserID,
			"weekNumber": set.WeekNumber,
			"year":       set.Year,
		},
	}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *setRepo) GetByPeriod(ctx context.Context, userID string, week, year int) (*model.GeneratedQuestionSet, error) {
	filter := bson.M{"userId": userID, "weekNumber": week, "year": year}

	var set model.GeneratedQuestionSet
	err := r.collection.FindOne(ctx, filter).Decode(&set)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &set, nil
}

func (r *setRepo) LatestByUser(ctx context.Context, userID string) (*model.GeneratedQuestionSet, error) {
	opts := options.FindOne().SetSort(bson.M{"generatedAt": -1})

	var set model.GeneratedQuestionSet
	err := r.collection.FindOne(ctx, bson.M{"userId": userID}, opts).Decode(&set)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &set, nil
}

func (r *setRepo) HasAnyForUser(ctx context.Context, userID string) (bool, error) {
	opts := options.Count().SetLimit(1)
	count, err := r.collection.CountDocuments(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// OwnersOfQuestion returns the user ids of every set containing the question,
// used by completion marking to tell "not yours" from "never delivered".
func (r *setRepo) OwnersOfQuestion(ctx context.Context, questionID string) ([]string, error) {
	filter := bson.M{"questions.question._id": questionID}

	values, err := r.collection.Distinct(ctx, "userId", filter)
	if err != nil {
		return nil, err
	}

	owners := make([]string, 0, len(values))
	for _, v := range values {
		if id, ok := v.(string); ok {
			owners = append(owners, id)
		}
	}
	return owners, nil
}
