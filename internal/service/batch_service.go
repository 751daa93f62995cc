package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"reflekt/internal/model"
	"reflekt/internal/repository"
)

type userOutcome int

const (
	outcomeSuccess userOutcome = iota
	outcomeSkipEntries
	outcomeSkipEngagement
	outcomeFailed
)

// BatchService runs the weekly generation across all eligible users. Users
// are processed by a bounded worker pool; each user is independent, and a
// failure for one never aborts the run. The only shared mutable state is the
// aggregate result, guarded by a mutex.
type BatchService struct {
	entryRepo   repository.EntryRepo
	completions *CompletionService
	generator   *GeneratorService
	sets        *SetService
	notifier    Notifier

	activityWindow time.Duration
	lookback       time.Duration
	minCompleted   int
	workers        int
}

// NewBatchService creates a new batch service
func NewBatchService(
	entryRepo repository.EntryRepo,
	completions *CompletionService,
	generator *GeneratorService,
	sets *SetService,
	activityWindowDays, lookbackDays, minCompleted, workers int,
) *BatchService {
	return &BatchService{
		entryRepo:      entryRepo,
		completions:    completions,
		generator:      generator,
		sets:           sets,
		activityWindow: time.Duration(activityWindowDays) * 24 * time.Hour,
		lookback:       time.Duration(lookbackDays) * 24 * time.Hour,
		minCompleted:   minCompleted,
		workers:        workers,
	}
}

// SetNotifier sets the notifier for WebSocket push events
func (s *BatchService) SetNotifier(n Notifier) {
	s.notifier = n
}

// RunWeeklyBatch generates question sets for every eligible user and returns
// the aggregated run result. Only a failure to enumerate eligible users fails
// the run itself. On context deadline, already-persisted sets stay valid
// (upsert is idempotent) and unprocessed users wait for the next run.
func (s *BatchService) RunWeeklyBatch(ctx context.Context) (*model.BatchRunResult, error) {
	users, err := s.entryRepo.ActiveUserIDs(ctx, time.Now().Add(-s.activityWindow))
	if err != nil {
		return nil, fmt.Errorf("enumerate eligible users: %w", err)
	}

	result := &model.BatchRunResult{
		TotalUsers: len(users),
		Errors:     []model.BatchError{},
	}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for _, userID := range users {
		userID := userID
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}

			outcome, message := s.processUser(gctx, userID)

			mu.Lock()
			switch outcome {
			case outcomeSuccess:
				result.Successful++
			case outcomeSkipEntries:
				result.SkippedInsufficientEntries++
			case outcomeSkipEngagement:
				result.SkippedInsufficientEngagement++
			case outcomeFailed:
				result.Failed++
				result.Errors = append(result.Errors, model.BatchError{UserID: userID, Message: message})
			}
			mu.Unlock()
			return nil
		})
	}
	g.Wait()

	log.Printf("Weekly batch done: %d users, %d generated, %d skipped (entries), %d skipped (engagement), %d failed",
		result.TotalUsers, result.Successful, result.SkippedInsufficientEntries,
		result.SkippedInsufficientEngagement, result.Failed)

	return result, nil
}

func (s *BatchService) processUser(ctx context.Context, userID string) (userOutcome, string) {
	completed, err := s.completions.HistoricalCompletedCount(ctx, userID)
	if err != nil {
		return outcomeFailed, err.Error()
	}

	var res *GenerationResult
	if completed < s.minCompleted {
		hasPrior, err := s.sets.HasAnyForUser(ctx, userID)
		if err != nil {
			return outcomeFailed, err.Error()
		}
		if hasPrior {
			return outcomeSkipEngagement, ""
		}
		// First-time user: bootstrap from the most recent entry, outside
		// the engagement gate
		res, err = s.generator.GenerateBootstrap(ctx, userID)
		if err != nil {
			return classifyGenerationError(err)
		}
	} else {
		res, err = s.generator.GenerateForUser(ctx, userID, s.lookback)
		if err != nil {
			return classifyGenerationError(err)
		}
	}

	if err := s.sets.Save(ctx, res.Set); err != nil {
		return outcomeFailed, err.Error()
	}

	if s.notifier != nil {
		s.notifier.NotifyQuestionsReady(userID, res.Set)
	}
	return outcomeSuccess, ""
}

func classifyGenerationError(err error) (userOutcome, string) {
	var insufficient *InsufficientEntriesError
	if errors.As(err, &insufficient) {
		return outcomeSkipEntries, ""
	}
	return outcomeFailed, err.Error()
}
