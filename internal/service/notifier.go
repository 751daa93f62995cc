package service

import "reflekt/internal/model"

// Notifier interface for WebSocket push of generation events (avoids import cycle)
type Notifier interface {
	NotifyQuestionsReady(userID string, set *model.GeneratedQuestionSet)
}
