package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reflekt/internal/bank"
	"reflekt/internal/model"
)

func deliveredSet(userID string, questionIDs ...string) *model.GeneratedQuestionSet {
	questions := bank.Questions()
	byID := make(map[string]model.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	var scored []model.ScoredQuestion
	for _, id := range questionIDs {
		scored = append(scored, model.ScoredQuestion{Question: byID[id], Score: 0.5})
	}

	week, year := model.Period(time.Now())
	return &model.GeneratedQuestionSet{
		ID:          userID + "-set",
		UserID:      userID,
		WeekNumber:  week,
		Year:        year,
		Questions:   scored,
		GeneratedAt: time.Now(),
	}
}

func newTestCompletionService() (*CompletionService, *fakeCompletionRepo, *fakeSetRepo, *fakeEngagementCache) {
	completionRepo := newFakeCompletionRepo()
	setRepo := &fakeSetRepo{}
	engagement := newFakeEngagementCache()
	svc := NewCompletionService(completionRepo, setRepo, engagement)
	return svc, completionRepo, setRepo, engagement
}

func TestMarkCompleted(t *testing.T) {
	svc, completionRepo, setRepo, _ := newTestCompletionService()
	setRepo.Upsert(context.Background(), deliveredSet("u1", "stress-strategies", "gratitude-moments"))

	err := svc.MarkCompleted(context.Background(), "stress-strategies", "entry-1", "u1")
	require.NoError(t, err)

	require.Len(t, completionRepo.completions, 1)
	completion := completionRepo.completions[0]
	assert.Equal(t, "stress-strategies", completion.QuestionID)
	assert.Equal(t, "u1", completion.UserID)
	assert.Equal(t, "entry-1", completion.LinkedEntryID)
	assert.False(t, completion.CompletedAt.IsZero())
}

func TestMarkCompletedIdempotent(t *testing.T) {
	svc, completionRepo, setRepo, _ := newTestCompletionService()
	setRepo.Upsert(context.Background(), deliveredSet("u1", "stress-strategies"))

	require.NoError(t, svc.MarkCompleted(context.Background(), "stress-strategies", "entry-1", "u1"))
	require.NoError(t, svc.MarkCompleted(context.Background(), "stress-strategies", "entry-1", "u1"))

	assert.Len(t, completionRepo.completions, 1)
}

func TestMarkCompletedForbiddenForOtherUsersQuestion(t *testing.T) {
	svc, completionRepo, setRepo, _ := newTestCompletionService()
	setRepo.Upsert(context.Background(), deliveredSet("u1", "stress-strategies"))

	err := svc.MarkCompleted(context.Background(), "stress-strategies", "entry-1", "u2")
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Empty(t, completionRepo.completions)
}

func TestMarkCompletedUnknownQuestion(t *testing.T) {
	svc, _, _, _ := newTestCompletionService()

	err := svc.MarkCompleted(context.Background(), "never-delivered", "entry-1", "u1")
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestMarkCompletedInvalidatesEngagementCache(t *testing.T) {
	svc, _, setRepo, engagement := newTestCompletionService()
	setRepo.Upsert(context.Background(), deliveredSet("u1", "stress-strategies"))
	engagement.SetCount(context.Background(), "u1", 7)

	require.NoError(t, svc.MarkCompleted(context.Background(), "stress-strategies", "entry-1", "u1"))

	_, ok, _ := engagement.GetCount(context.Background(), "u1")
	assert.False(t, ok)
}

func TestHistoricalCompletedCount(t *testing.T) {
	svc, completionRepo, setRepo, _ := newTestCompletionService()
	setRepo.Upsert(context.Background(), deliveredSet("u1", "stress-strategies", "gratitude-moments"))

	require.NoError(t, svc.MarkCompleted(context.Background(), "stress-strategies", "entry-1", "u1"))
	require.NoError(t, svc.MarkCompleted(context.Background(), "gratitude-moments", "entry-2", "u1"))

	count, err := svc.HistoricalCompletedCount(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// Second read is served from cache: mutating the store underneath does
	// not change the answer until invalidation
	completionRepo.completions = nil
	count, err = svc.HistoricalCompletedCount(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestHistoricalCompletedCountZero(t *testing.T) {
	svc, _, _, _ := newTestCompletionService()

	count, err := svc.HistoricalCompletedCount(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Zero(t, count)
}
