package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reflekt/internal/bank"
	"reflekt/internal/model"
)

type batchFixture struct {
	entries     *fakeEntryRepo
	completions *fakeCompletionRepo
	setRepo     *fakeSetRepo
	notifier    *recordingNotifier
	svc         *BatchService
}

func newBatchFixture() *batchFixture {
	entries := newFakeEntryRepo()
	completions := newFakeCompletionRepo()
	setRepo := &fakeSetRepo{}

	completionSvc := NewCompletionService(completions, setRepo, newFakeEngagementCache())
	generator := NewGeneratorService(entries, &fakeQuestionRepo{questions: bank.Questions()}, 3, 5)
	setSvc := NewSetService(setRepo, newFakeSetCache())

	svc := NewBatchService(entries, completionSvc, generator, setSvc, 30, 14, 3, 4)
	notifier := &recordingNotifier{}
	svc.SetNotifier(notifier)

	return &batchFixture{
		entries:     entries,
		completions: completions,
		setRepo:     setRepo,
		notifier:    notifier,
		svc:         svc,
	}
}

// addRecentEntries seeds n journal entries inside the lookback window.
func (f *batchFixture) addRecentEntries(userID string, n int) {
	now := time.Now()
	for i := 0; i < n; i++ {
		f.entries.add(userID, "Felt so much stress and pressure from the deadline at work today", now.Add(-time.Duration(i+1)*24*time.Hour))
	}
}

func (f *batchFixture) seedCompletions(userID string, n int) {
	for i := 0; i < n; i++ {
		f.completions.Create(context.Background(), &model.QuestionCompletion{
			ID:            fmt.Sprintf("%s-completion-%d", userID, i),
			QuestionID:    fmt.Sprintf("question-%d", i),
			UserID:        userID,
			LinkedEntryID: "entry",
			CompletedAt:   time.Now(),
		})
	}
}

// seedPriorSet marks the user as having received questions in an earlier week.
func (f *batchFixture) seedPriorSet(userID string) {
	f.setRepo.Upsert(context.Background(), &model.GeneratedQuestionSet{
		ID:          userID + "-prior",
		UserID:      userID,
		WeekNumber:  1,
		Year:        2019,
		GeneratedAt: time.Now().Add(-30 * 24 * time.Hour),
	})
}

func TestRunWeeklyBatchGeneratesForEngagedUser(t *testing.T) {
	f := newBatchFixture()
	f.addRecentEntries("u1", 3)
	f.seedCompletions("u1", 3)

	result, err := f.svc.RunWeeklyBatch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.TotalUsers)
	assert.Equal(t, 1, result.Successful)
	assert.Zero(t, result.Failed)
	assert.Empty(t, result.Errors)

	week, year := model.Period(time.Now())
	set, err := f.setRepo.GetByPeriod(context.Background(), "u1", week, year)
	require.NoError(t, err)
	require.NotNil(t, set)
	assert.NotEmpty(t, set.Questions)

	assert.Equal(t, []string{"u1"}, f.notifier.notified)
}

func TestRunWeeklyBatchEngagementGate(t *testing.T) {
	f := newBatchFixture()

	// Below the gate with a prior set: skipped
	f.addRecentEntries("lapsed", 3)
	f.seedCompletions("lapsed", 2)
	f.seedPriorSet("lapsed")

	// At the gate: generated
	f.addRecentEntries("engaged", 3)
	f.seedCompletions("engaged", 3)

	result, err := f.svc.RunWeeklyBatch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, result.TotalUsers)
	assert.Equal(t, 1, result.Successful)
	assert.Equal(t, 1, result.SkippedInsufficientEngagement)
	assert.Equal(t, []string{"engaged"}, f.notifier.notified)
}

func TestRunWeeklyBatchBootstrapsFirstTimeUser(t *testing.T) {
	f := newBatchFixture()
	// No completions and no prior set, but one entry: the engagement gate
	// does not apply, a starter set comes from the single entry
	f.addRecentEntries("newcomer", 1)

	result, err := f.svc.RunWeeklyBatch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Successful)
	assert.Zero(t, result.SkippedInsufficientEngagement)
	assert.Equal(t, 1, f.setRepo.countForUser("newcomer"))
	assert.Equal(t, []string{"newcomer"}, f.notifier.notified)
}

func TestRunWeeklyBatchSkipsInsufficientEntries(t *testing.T) {
	f := newBatchFixture()
	f.addRecentEntries("sparse", 2)
	f.seedCompletions("sparse", 3)

	result, err := f.svc.RunWeeklyBatch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.SkippedInsufficientEntries)
	assert.Zero(t, result.Successful)
	assert.Zero(t, result.Failed)
	assert.Zero(t, f.setRepo.countForUser("sparse"))
}

func TestRunWeeklyBatchIsolatesPerUserFailures(t *testing.T) {
	f := newBatchFixture()

	f.addRecentEntries("healthy", 3)
	f.seedCompletions("healthy", 3)

	f.addRecentEntries("broken", 3)
	f.seedCompletions("broken", 3)
	f.entries.fetchErr["broken"] = errors.New("connection reset")

	result, err := f.svc.RunWeeklyBatch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Successful)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "broken", result.Errors[0].UserID)
	assert.Contains(t, result.Errors[0].Message, "connection reset")
	assert.Equal(t, []string{"healthy"}, f.notifier.notified)
}

func TestRunWeeklyBatchEnumerationFailure(t *testing.T) {
	f := newBatchFixture()
	f.entries.activeErr = errors.New("mongo down")

	result, err := f.svc.RunWeeklyBatch(context.Background())
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestRunWeeklyBatchIdempotentWithinWeek(t *testing.T) {
	f := newBatchFixture()
	f.addRecentEntries("u1", 3)
	f.seedCompletions("u1", 3)

	_, err := f.svc.RunWeeklyBatch(context.Background())
	require.NoError(t, err)
	_, err = f.svc.RunWeeklyBatch(context.Background())
	require.NoError(t, err)

	// Same (user, week, year) key: the second run replaces, never duplicates
	assert.Equal(t, 1, f.setRepo.countForUser("u1"))
}

func TestRunWeeklyBatchNoActiveUsers(t *testing.T) {
	f := newBatchFixture()

	result, err := f.svc.RunWeeklyBatch(context.Background())
	require.NoError(t, err)

	assert.Zero(t, result.TotalUsers)
	assert.Zero(t, result.Successful)
	assert.Empty(t, f.notifier.notified)
}

func TestRunWeeklyBatchManyUsersBoundedWorkers(t *testing.T) {
	f := newBatchFixture()
	for i := 0; i < 20; i++ {
		userID := fmt.Sprintf("user-%02d", i)
		f.addRecentEntries(userID, 3)
		f.seedCompletions(userID, 3)
	}

	result, err := f.svc.RunWeeklyBatch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 20, result.TotalUsers)
	assert.Equal(t, 20, result.Successful)
	assert.Len(t, f.notifier.notified, 20)
}
