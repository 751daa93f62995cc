package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"reflekt/internal/service"
)

// BatchHandler exposes the batch entry point to the platform scheduler
type BatchHandler struct {
	batchSvc *service.BatchService
	timeout  time.Duration
}

// NewBatchHandler creates a new batch handler
func NewBatchHandler(batchSvc *service.BatchService, timeout time.Duration) *BatchHandler {
	return &BatchHandler{
		batchSvc: batchSvc,
		timeout:  timeout,
	}
}

// Run handles POST /v1/batch/run
func (h *BatchHandler) Run(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	result, err := h.batchSvc.RunWeeklyBatch(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Helper functions
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
