package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"reflekt/internal/cache"
	"reflekt/internal/model"
	"reflekt/internal/repository"
)

// SetService persists and serves generated question sets
type SetService struct {
	setRepo  repository.SetRepo
	setCache cache.SetCache
}

// NewSetService creates a new question set service
func NewSetService(setRepo repository.SetRepo, setCache cache.SetCache) *SetService {
	return &SetService{
		setRepo:  setRepo,
		setCache: setCache,
	}
}

// Save upserts the set keyed by (userId, week, year) and refreshes the
// latest-set cache. Cache failures are logged, not propagated.
func (s *SetService) Save(ctx context.Context, set *model.GeneratedQuestionSet) error {
	if err := s.setRepo.Upsert(ctx, set); err != nil {
		return fmt.Errorf("persist question set: %w", err)
	}

	if err := s.setCache.SetLatest(ctx, set); err != nil {
		log.Printf("Failed to cache question set for user %s: %v", set.UserID, err)
	}
	return nil
}

// CurrentForUser returns the user's set for the current week, or nil when
// none has been generated yet
func (s *SetService) CurrentForUser(ctx context.Context, userID string, now time.Time) (*model.GeneratedQuestionSet, error) {
	week, year := model.Period(now)

	cached, err := s.setCache.GetLatest(ctx, userID)
	if err != nil {
		log.Printf("Question set cache read failed for user %s: %v", userID, err)
	}
	if cached != nil && cached.WeekNumber == week && cached.Year == year {
		return cached, nil
	}

	return s.setRepo.GetByPeriod(ctx, userID, week, year)
}

// HasAnyForUser reports whether the user has ever received a set
func (s *SetService) HasAnyForUser(ctx context.Context, userID string) (bool, error) {
	return s.setRepo.HasAnyForUser(ctx, userID)
}
