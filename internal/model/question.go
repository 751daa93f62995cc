package model

// QuestionDepth describes how probing a reflection question is
type QuestionDepth string

const (
	DepthLight  QuestionDepth = "light"
	DepthMedium QuestionDepth = "medium"
	DepthDeep   QuestionDepth = "deep"
)

// EmotionalTone describes the emotional register of a question
type EmotionalTone string

const (
	ToneNeutral     EmotionalTone = "neutral"
	ToneEncouraging EmotionalTone = "encouraging"
	ToneCurious     EmotionalTone = "curious"
	ToneChallenging EmotionalTone = "challenging"
	ToneSoothing    EmotionalTone = "soothing"
)

// Question is a curated reflection question from the question bank.
// The bank is static seed data; the service reads it, never mutates it.
type Question struct {
	ID       string        `json:"id" bson:"_id"`
	Text     string        `json:"text" bson:"text"`
	Themes   []string      `json:"themes" bson:"themes"`
	Keywords []string      `json:"keywords" bson:"keywords"`
	Tone     EmotionalTone `json:"tone" bson:"tone"`
	Depth    QuestionDepth `json:"depth" bson:"depth"`

	// Order is the bank authoring position; ranking ties fall back to it
	Order int `json:"-" bson:"order"`
}

// ScoredQuestion pairs a question with its relevance score in [0,1]
type ScoredQuestion struct {
	Question Question `json:"question" bson:"question"`
	Score    float64  `json:"score" bson:"score"`
}
