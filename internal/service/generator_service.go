package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"reflekt/internal/model"
	"reflekt/internal/nlp"
	"reflekt/internal/repository"
)

// InsufficientEntriesError signals a skip, not a failure: the user has not
// written enough in the lookback window to rank against.
type InsufficientEntriesError struct {
	Current  int
	Required int
}

func (e *InsufficientEntriesError) Error() string {
	return fmt.Sprintf("insufficient entries: have %d, need %d", e.Current, e.Required)
}

// GenerationResult is one user's generated set plus generation metadata
type GenerationResult struct {
	Set             *model.GeneratedQuestionSet
	EntriesAnalyzed int
}

// GeneratorService builds one user's weekly question set: it assembles the
// unified corpus (question bank + that user's entries), builds a fresh IDF
// table over it, and ranks every bank question by cosine similarity against
// the user's aggregate entry vector. Nothing here is cached or shared across
// users; each invocation gets its own vector space.
type GeneratorService struct {
	entryRepo    repository.EntryRepo
	questionRepo repository.QuestionRepo
	minEntries   int
	topK         int
}

// NewGeneratorService creates a new generator service
func NewGeneratorService(entryRepo repository.EntryRepo, questionRepo repository.QuestionRepo, minEntries, topK int) *GeneratorService {
	return &GeneratorService{
		entryRepo:    entryRepo,
		questionRepo: questionRepo,
		minEntries:   minEntries,
		topK:         topK,
	}
}

// GenerateForUser generates a question set from the user's entries within
// the lookback window. Returns *InsufficientEntriesError when the user has
// fewer entries than the minimum; no vectors are computed in that case.
func (s *GeneratorService) GenerateForUser(ctx context.Context, userID string, lookback time.Duration) (*GenerationResult, error) {
	now := time.Now()

	entries, err := s.entryRepo.FetchRange(ctx, userID, now.Add(-lookback), now)
	if err != nil {
		return nil, fmt.Errorf("fetch entries: %w", err)
	}
	if len(entries) < s.minEntries {
		return nil, &InsufficientEntriesError{Current: len(entries), Required: s.minEntries}
	}

	return s.generate(ctx, userID, entries, now)
}

// GenerateBootstrap generates a first-time set from the user's single most
// recent entry. This path serves users who have never received a set and so
// cannot have passed the engagement gate yet.
func (s *GeneratorService) GenerateBootstrap(ctx context.Context, userID string) (*GenerationResult, error) {
	entry, err := s.entryRepo.MostRecent(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch most recent entry: %w", err)
	}
	if entry == nil {
		return nil, &InsufficientEntriesError{Current: 0, Required: 1}
	}

	return s.generate(ctx, userID, []*model.JournalEntry{entry}, time.Now())
}

func (s *GeneratorService) generate(ctx context.Context, userID string, entries []*model.JournalEntry, now time.Time) (*GenerationResult, error) {
	questions, err := s.questionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load question bank: %w", err)
	}

	// The IDF corpus is the union of question documents and this user's
	// entry documents. Building it from either side alone puts the two
	// vector families in incomparable scales.
	corpus := make([][]string, 0, len(questions)+len(entries))
	questionDocs := make([][]string, len(questions))
	for i, q := range questions {
		questionDocs[i] = questionTokens(q)
		corpus = append(corpus, questionDocs[i])
	}

	var userTokens []string
	for _, entry := range entries {
		tokens := nlp.Normalize(entry.Text)
		corpus = append(corpus, tokens)
		userTokens = append(userTokens, tokens...)
	}

	idf := nlp.BuildIDF(corpus)
	userVec := nlp.Vectorize(userTokens, idf)

	questionVecs := make([]nlp.QuestionVector, len(questions))
	for i, q := range questions {
		questionVecs[i] = nlp.QuestionVector{
			Question: q,
			Vector:   nlp.Vectorize(questionDocs[i], idf),
		}
	}

	ranked := nlp.Rank(userVec, questionVecs)
	if len(ranked) > s.topK {
		ranked = ranked[:s.topK]
	}

	week, year := model.Period(now)
	set := &model.GeneratedQuestionSet{
		ID:          uuid.New().String(),
		UserID:      userID,
		WeekNumber:  week,
		Year:        year,
		Questions:   ranked,
		GeneratedAt: now,
	}

	return &GenerationResult{Set: set, EntriesAnalyzed: len(entries)}, nil
}

// questionTokens builds a question's document from its text plus keywords,
// so short keyword lists are not penalized against long entries
func questionTokens(q model.Question) []string {
	return nlp.Normalize(q.Text + " " + strings.Join(q.Keywords, " "))
}
