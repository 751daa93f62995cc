package model

import "time"

// GeneratedQuestionSet is one user's weekly set of reflection questions.
// One set exists per (userId, week, year); re-generation upserts the same
// document, so a batch re-run never duplicates a period.
type GeneratedQuestionSet struct {
	ID          string           `json:"id" bson:"_id,omitempty"`
	UserID      string           `json:"userId" bson:"userId"`
	WeekNumber  int              `json:"weekNumber" bson:"weekNumber"`
	Year        int              `json:"year" bson:"year"`
	Questions   []ScoredQuestion `json:"questions" bson:"questions"`
	GeneratedAt time.Time        `json:"generatedAt" bson:"generatedAt"`
}

// Period returns the ISO week and year for a timestamp. ISO weeks run
// Monday-Sunday and a year's last days can fall into week 1 of the next year.
func Period(t time.Time) (week, year int) {
	y, w := t.ISOWeek()
	return w, y
}

// QuestionCompletion records that a user answered a delivered question by
// writing a linked journal entry. Terminal once created.
type QuestionCompletion struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	QuestionID    string    `json:"questionId" bson:"questionId"`
	UserID        string    `json:"userId" bson:"userId"`
	LinkedEntryID string    `json:"linkedEntryId" bson:"linkedEntryId"`
	CompletedAt   time.Time `json:"completedAt" bson:"completedAt"`
}
