package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"reflekt/internal/service"
	"reflekt/internal/transport/rest/middleware"
)

// QuestionsHandler handles question generation, retrieval and completion
type QuestionsHandler struct {
	generatorSvc  *service.GeneratorService
	setSvc        *service.SetService
	completionSvc *service.CompletionService
	lookbackDays  int
}

// NewQuestionsHandler creates a new questions handler
func NewQuestionsHandler(generatorSvc *service.GeneratorService, setSvc *service.SetService, completionSvc *service.CompletionService, lookbackDays int) *QuestionsHandler {
	return &QuestionsHandler{
		generatorSvc:  generatorSvc,
		setSvc:        setSvc,
		completionSvc: completionSvc,
		lookbackDays:  lookbackDays,
	}
}

// GenerateRequest is the request body for on-demand generation
type GenerateRequest struct {
	LookbackDays int  `json:"lookbackDays"`
	Persist      bool `json:"persist"`
}

// GenerateResponse is the on-demand generation success payload
type GenerateResponse struct {
	Questions []QuestionScore  `json:"questions"`
	Metadata  GenerateMetadata `json:"metadata"`
}

// QuestionScore is one recommended question with its relevance score
type QuestionScore struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

// GenerateMetadata describes how a set was generated
type GenerateMetadata struct {
	EntriesAnalyzed int       `json:"entriesAnalyzed"`
	GeneratedAt     time.Time `json:"generatedAt"`
	ThemesCount     int       `json:"themesCount"`
}

// Generate handles POST /v1/questions/generate
func (h *QuestionsHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	req := GenerateRequest{LookbackDays: h.lookbackDays}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}
	if req.LookbackDays <= 0 {
		req.LookbackDays = h.lookbackDays
	}

	lookback := time.Duration(req.LookbackDays) * 24 * time.Hour
	result, err := h.generatorSvc.GenerateForUser(r.Context(), userID, lookback)
	if err != nil {
		var insufficient *service.InsufficientEntriesError
		if errors.As(err, &insufficient) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
				"error":          "insufficient entries",
				"details":        "write a few more journal entries to get personalized questions",
				"currentEntries": insufficient.Current,
				"required":       insufficient.Required,
			})
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if req.Persist {
		if err := h.setSvc.Save(r.Context(), result.Set); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
	}

	writeJSON(w, http.StatusOK, toGenerateResponse(result))
}

// Current handles GET /v1/questions/current
func (h *QuestionsHandler) Current(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	set, err := h.setSvc.CurrentForUser(r.Context(), userID, time.Now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if set == nil {
		writeError(w, http.StatusNotFound, "no question set generated for this week")
		return
	}

	writeJSON(w, http.StatusOK, set)
}

// CompleteRequest is the request body for marking a question completed
type CompleteRequest struct {
	EntryID string `json:"entryId"`
}

// Complete handles POST /v1/questions/{questionId}/complete
func (h *QuestionsHandler) Complete(w http.ResponseWriter, r *http.Request) {
	questionID := mux.Vars(r)["questionId"]
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req CompleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.EntryID == "" {
		writeError(w, http.StatusBadRequest, "entryId is required")
		return
	}

	err := h.completionSvc.MarkCompleted(r.Context(), questionID, req.EntryID, userID)
	switch {
	case errors.Is(err, service.ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrQuestionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		writeJSON(w, http.StatusOK, map[string]string{"status": "completed"})
	}
}

func toGenerateResponse(result *service.GenerationResult) GenerateResponse {
	questions := make([]QuestionScore, len(result.Set.Questions))
	themes := make(map[string]bool)
	for i, sq := range result.Set.Questions {
		questions[i] = QuestionScore{Text: sq.Question.Text, Score: sq.Score}
		for _, theme := range sq.Question.Themes {
			themes[theme] = true
		}
	}

	return GenerateResponse{
		Questions: questions,
		Metadata: GenerateMetadata{
			EntriesAnalyzed: result.EntriesAnalyzed,
			GeneratedAt:     result.Set.GeneratedAt,
			ThemesCount:     len(themes),
		},
	}
}
