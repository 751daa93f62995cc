package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"reflekt/internal/model"
)

// EntryRepo reads journal entries written by the journaling app
type EntryRepo interface {
	FetchRange(ctx context.Context, userID string, start, end time.Time) ([]*model.JournalEntry, error)
	MostRecent(ctx context.Context, userID string) (*model.JournalEntry, error)
	ActiveUserIDs(ctx context.Context, since time.Time) ([]string, error)
}

type entryRepo struct {
	collection *mongo.Collection
}

// NewEntryRepo creates a new entry repository
func NewEntryRepo(db *mongo.Database) EntryRepo {
	return &entryRepo{
		collection: db.Collection("entries"),
	}
}

func (r *entryRepo) FetchRange(ctx context.Context, userID string, start, end time.Time) ([]*model.JournalEntry, error) {
	filter := bson.M{
		"userId":    userID,
		"createdAt": bson.M{"$gte": start, "$lt": end},
	}
	opts := options.Find().SetSort(bson.M{"createdAt": 1})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*model.JournalEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *entryRepo) MostRecent(ctx context.Context, userID string) (*model.JournalEntry, error) {
	opts := options.FindOne().SetSort(bson.M{"createdAt": -1})

	var entry model.JournalEntry
	err := r.collection.FindOne(ctx, bson.M{"userId": userID}, opts).Decode(&entry)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *entryRepo) ActiveUserIDs(ctx context.Context, since time.Time) ([]string, error) {
	filter := bson.M{"createdAt": bson.M{"$gte": since}}

	values, err := r.collection.Distinct(ctx, "userId", filter)
	if err != nil {
		return nil, err
	}

	userIDs := make([]string, 0, len(values))
	for _, v := range values {
		if id, ok := v.(string); ok {
			userIDs = append(userIDs, id)
		}
	}
	return userIDs, nil
}
