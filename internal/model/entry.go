package model

import "time"

// JournalEntry is a user's journal entry as stored by the journaling app.
// The reflection service only reads entries; writing them is the app's job.
type JournalEntry struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	UserID    string    `json:"userId" bson:"userId"`
	Text      string    `json:"text" bson:"text"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
