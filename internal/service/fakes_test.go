package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"reflekt/internal/model"
)

// In-memory fakes for the repository and cache interfaces. All fakes are
// mutex-guarded because the batch service exercises them from worker
// goroutines.

type fakeEntryRepo struct {
	mu        sync.Mutex
	entries   map[string][]*model.JournalEntry
	fetchErr  map[string]error
	activeErr error
}

func newFakeEntryRepo() *fakeEntryRepo {
	return &fakeEntryRepo{
		entries:  make(map[string][]*model.JournalEntry),
		fetchErr: make(map[string]error),
	}
}

func (r *fakeEntryRepo) add(userID, text string, createdAt time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[userID] = append(r.entries[userID], &model.JournalEntry{
		ID:        userID + "-entry-" + createdAt.Format("20060102150405"),
		UserID:    userID,
		Text:      text,
		CreatedAt: createdAt,
	})
}

func (r *fakeEntryRepo) FetchRange(ctx context.Context, userID string, start, end time.Time) ([]*model.JournalEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fetchErr[userID]; err != nil {
		return nil, err
	}

	var result []*model.JournalEntry
	for _, e := range r.entries[userID] {
		if !e.CreatedAt.Before(start) && e.CreatedAt.Before(end) {
			result = append(result, e)
		}
	}
	return result, nil
}

func (r *fakeEntryRepo) MostRecent(ctx context.Context, userID string) (*model.JournalEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fetchErr[userID]; err != nil {
		return nil, err
	}

	var latest *model.JournalEntry
	for _, e := range r.entries[userID] {
		if latest == nil || e.CreatedAt.After(latest.CreatedAt) {
			latest = e
		}
	}
	return latest, nil
}

func (r *fakeEntryRepo) ActiveUserIDs(ctx context.Context, since time.Time) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.activeErr != nil {
		return nil, r.activeErr
	}

	var users []string
	for userID, entries := range r.entries {
		for _, e := range entries {
			if !e.CreatedAt.Before(since) {
				users = append(users, userID)
				break
			}
		}
	}
	sort.Strings(users)
	return users, nil
}

type fakeQuestionRepo struct {
	questions []model.Question
	listErr   error
}

func (r *fakeQuestionRepo) List(ctx context.Context) ([]model.Question, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.questions, nil
}

func (r *fakeQuestionRepo) ReplaceAll(ctx context.Context, questions []model.Question) error {
	r.questions = questions
	return nil
}

type fakeSetRepo struct {
	mu   sync.Mutex
	sets []*model.GeneratedQuestionSet
}

func (r *fakeSetRepo) Upsert(ctx context.Context, set *model.GeneratedQuestionSet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.sets {
		if existing.UserID == set.UserID && existing.WeekNumber == set.WeekNumber && existing.Year == set.Year {
			r.sets[i] = set
			return nil
		}
	}
	r.sets = append(r.sets, set)
	return nil
}

func (r *fakeSetRepo) GetByPeriod(ctx context.Context, userID string, week, year int) (*model.GeneratedQuestionSet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sets {
		if s.UserID == userID && s.WeekNumber == week && s.Year == year {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeSetRepo) LatestByUser(ctx context.Context, userID string) (*model.GeneratedQuestionSet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var latest *model.GeneratedQuestionSet
	for _, s := range r.sets {
		if s.UserID == userID && (latest == nil || s.GeneratedAt.After(latest.GeneratedAt)) {
			latest = s
		}
	}
	return latest, nil
}

func (r *fakeSetRepo) HasAnyForUser(ctx context.Context, userID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sets {
		if s.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeSetRepo) OwnersOfQuestion(ctx context.Context, questionID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := make(map[string]bool)
	var owners []string
	for _, s := range r.sets {
		for _, sq := range s.Questions {
			if sq.Question.ID == questionID && !seen[s.UserID] {
				seen[s.UserID] = true
				owners = append(owners, s.UserID)
			}
		}
	}
	return owners, nil
}

func (r *fakeSetRepo) countForUser(userID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, s := range r.sets {
		if s.UserID == userID {
			count++
		}
	}
	return count
}

type fakeCompletionRepo struct {
	mu          sync.Mutex
	completions []*model.QuestionCompletion
	countErr    map[string]error
}

func newFakeCompletionRepo() *fakeCompletionRepo {
	return &fakeCompletionRepo{countErr: make(map[string]error)}
}

func (r *fakeCompletionRepo) Get(ctx context.Context, userID, questionID string) (*model.QuestionCompletion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.completions {
		if c.UserID == userID && c.QuestionID == questionID {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCompletionRepo) Create(ctx context.Context, completion *model.QuestionCompletion) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.completions = append(r.completions, completion)
	return nil
}

func (r *fakeCompletionRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.countErr[userID]; err != nil {
		return 0, err
	}
	count := 0
	for _, c := range r.completions {
		if c.UserID == userID {
			count++
		}
	}
	return count, nil
}

type fakeEngagementCache struct {
	mu     sync.Mutex
	counts map[string]int
}

func newFakeEngagementCache() *fakeEngagementCache {
	return &fakeEngagementCache{counts: make(map[string]int)}
}

func (c *fakeEngagementCache) GetCount(ctx context.Context, userID string) (int, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	count, ok := c.counts[userID]
	return count, ok, nil
}

func (c *fakeEngagementCache) SetCount(ctx context.Context, userID string, count int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[userID] = count
	return nil
}

func (c *fakeEngagementCache) Invalidate(ctx context.Context, userID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.counts, userID)
	return nil
}

type fakeSetCache struct {
	mu     sync.Mutex
	latest map[string]*model.GeneratedQuestionSet
}

func newFakeSetCache() *fakeSetCache {
	return &fakeSetCache{latest: make(map[string]*model.GeneratedQuestionSet)}
}

func (c *fakeSetCache) GetLatest(ctx context.Context, userID string) (*model.GeneratedQuestionSet, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.latest[userID], nil
}

func (c *fakeSetCache) SetLatest(ctx context.Context, set *model.GeneratedQuestionSet) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.latest[set.UserID] = set
	return nil
}

func (c *fakeSetCache) Delete(ctx context.Context, userID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.latest, userID)
	return nil
}

type recordingNotifier struct {
	mu       sync.Mutex
	notified []string
}

func (n *recordingNotifier) NotifyQuestionsReady(userID string, set *model.GeneratedQuestionSet) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notified = append(n.notified, userID)
}
