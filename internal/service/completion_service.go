package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"reflekt/internal/cache"
	"reflekt/internal/model"
	"reflekt/internal/repository"
)

var (
	// ErrQuestionNotFound means the question was never delivered to anyone
	ErrQuestionNotFound = errors.New("question not found in any delivered set")

	// ErrForbidden means the question was delivered to a different user
	ErrForbidden = errors.New("question belongs to another user")
)

// CompletionService tracks which delivered questions a user has answered.
// Completion counts feed the batch orchestrator's engagement gate.
type CompletionService struct {
	completionRepo repository.CompletionRepo
	setRepo        repository.SetRepo
	engagement     cache.EngagementCache
}

// NewCompletionService creates a new completion service
func NewCompletionService(completionRepo repository.CompletionRepo, setRepo repository.SetRepo, engagement cache.EngagementCache) *CompletionService {
	return &CompletionService{
		completionRepo: completionRepo,
		setRepo:        setRepo,
		engagement:     engagement,
	}
}

// MarkCompleted records that callerUserID answered the question with the
// linked entry. Idempotent: marking an already-completed question is a no-op
// success. Returns ErrForbidden when the question was delivered to someone
// else, ErrQuestionNotFound when it was never delivered at all.
func (s *CompletionService) MarkCompleted(ctx context.Context, questionID, entryID, callerUserID string) error {
	existing, err := s.completionRepo.Get(ctx, callerUserID, questionID)
	if err != nil {
		return fmt.Errorf("check existing completion: %w", err)
	}
	if existing != nil {
		return nil
	}

	owners, err := s.setRepo.OwnersOfQuestion(ctx, questionID)
	if err != nil {
		return fmt.Errorf("resolve question owner: %w", err)
	}

	owned := false
	for _, owner := range owners {
		if owner == callerUserID {
			owned = true
			break
		}
	}
	if !owned {
		if len(owners) > 0 {
			return ErrForbidden
		}
		return ErrQuestionNotFound
	}

	completion := &model.QuestionCompletion{
		ID:            uuid.New().String(),
		QuestionID:    questionID,
		UserID:        callerUserID,
		LinkedEntryID: entryID,
		CompletedAt:   time.Now(),
	}
	if err := s.completionRepo.Create(ctx, completion); err != nil {
		return fmt.Errorf("record completion: %w", err)
	}

	if err := s.engagement.Invalidate(ctx, callerUserID); err != nil {
		log.Printf("Failed to invalidate engagement cache for user %s: %v", callerUserID, err)
	}
	return nil
}

// HistoricalCompletedCount returns the user's total completed questions,
// served from cache when warm. Cache errors fall through to the store.
func (s *CompletionService) HistoricalCompletedCount(ctx context.Context, userID string) (int, error) {
	count, ok, err := s.engagement.GetCount(ctx, userID)
	if err != nil {
		log.Printf("Engagement cache read failed for user %s: %v", userID, err)
	} else if ok {
		return count, nil
	}

	count, err = s.completionRepo.CountByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("count completions: %w", err)
	}

	if err := s.engagement.SetCount(ctx, userID, count); err != nil {
		log.Printf("Failed to cache engagement count for user %s: %v", userID, err)
	}
	return count, nil
}
