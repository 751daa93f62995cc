// Package bank holds the curated reflection question bank. The bank is
// authored seed data: cmd/seed loads it into the store and tests use it
// directly. The service never generates or mutates bank questions.
package bank

import "reflekt/internal/model"

// Questions is the curated bank in authoring order. Insertion order matters:
// the ranker's stable sort falls back to it on tied scores.
func Questions() []model.Question {
	return []model.Question{
		{
			ID:       "stress-strategies",
			Text:     "What strategies help you manage stress effectively?",
			Themes:   []string{"stress", "coping"},
			Keywords: []string{"stress", "pressure", "overwhelmed", "deadline", "cope", "manage"},
			Tone:     model.ToneEncouraging,
			Depth:    model.DepthMedium,
		},
		{
			ID:       "gratitude-moments",
			Text:     "What small moments brought you gratitude this week?",
			Themes:   []string{"gratitude", "positivity"},
			Keywords: []string{"gratitude", "thankful", "appreciate", "joy", "blessing"},
			Tone:     model.ToneEncouraging,
			Depth:    model.DepthLight,
		},
		{
			ID:       "work-boundaries",
			Text:     "Where could you draw a firmer boundary between work and rest?",
			Themes:   []string{"work", "balance"},
			Keywords: []string{"work", "job", "boundary", "rest", "balance", "overtime"},
			Tone:     model.ToneChallenging,
			Depth:    model.DepthMedium,
		},
		{
			ID:       "relationships-connection",
			Text:     "Which relationship deserves more of your attention right now?",
			Themes:   []string{"relationships", "connection"},
			Keywords: []string{"friend", "family", "partner", "relationship", "connect", "lonely"},
			Tone:     model.ToneCurious,
			Depth:    model.DepthMedium,
		},
		{
			ID:       "sleep-energy",
			Text:     "How has your sleep been shaping your energy and mood?",
			Themes:   []string{"health", "sleep"},
			Keywords: []string{"sleep", "tired", "energy", "rest", "exhausted", "insomnia"},
			Tone:     model.ToneNeutral,
			Depth:    model.DepthLight,
		},
		{
			ID:       "emotions-naming",
			Text:     "What emotion have you been avoiding naming lately?",
			Themes:   []string{"emotions", "awareness"},
			Keywords: []string{"emotion", "anger", "sadness", "fear", "anxious", "avoid"},
			Tone:     model.ToneSoothing,
			Depth:    model.DepthDeep,
		},
		{
			ID:       "growth-challenge",
			Text:     "What recent challenge taught you something about yourself?",
			Themes:   []string{"growth", "resilience"},
			Keywords: []string{"challenge", "learn", "grow", "mistake", "failure", "lesson"},
			Tone:     model.ToneCurious,
			Depth:    model.DepthDeep,
		},
		{
			ID:       "body-signals",
			Text:     "What is your body telling you that your mind keeps overruling?",
			Themes:   []string{"health", "awareness"},
			Keywords: []string{"body", "pain", "tension", "headache", "sick", "listen"},
			Tone:     model.ToneSoothing,
			Depth:    model.DepthDeep,
		},
		{
			ID:       "creative-outlet",
			Text:     "When did you last make something just for the joy of it?",
			Themes:   []string{"creativity", "play"},
			Keywords: []string{"creative", "hobby", "paint", "write", "music", "play"},
			Tone:     model.ToneEncouraging,
			Depth:    model.DepthLight,
		},
		{
			ID:       "change-fear",
			Text:     "What change are you resisting, and what would happen if you stopped?",
			Themes:   []string{"change", "fear"},
			Keywords: []string{"change", "afraid", "resist", "stuck", "decision", "risk"},
			Tone:     model.ToneChallenging,
			Depth:    model.DepthDeep,
		},
		{
			ID:       "values-alignment",
			Text:     "Which of your choices this week reflected your core values?",
			Themes:   []string{"values", "purpose"},
			Keywords: []string{"value", "purpose", "meaning", "priority", "choice", "important"},
			Tone:     model.ToneNeutral,
			Depth:    model.DepthMedium,
		},
		{
			ID:       "future-self",
			Text:     "What would your future self thank you for starting now?",
			Themes:   []string{"goals", "future"},
			Keywords: []string{"goal", "future", "plan", "dream", "start", "habit"},
			Tone:     model.ToneEncouraging,
			Depth:    model.DepthMedium,
		},
	}
}
