package rest

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"

	"reflekt/internal/service"
	"reflekt/internal/transport/rest/handler"
	"reflekt/internal/transport/rest/middleware"
	"reflekt/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService       *service.AuthService
	GeneratorService  *service.GeneratorService
	SetService        *service.SetService
	CompletionService *service.CompletionService
	BatchService      *service.BatchService
	WSHub             *ws.Hub
	CronToken         string
	LookbackDays      int
	BatchTimeout      time.Duration
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	questionsHandler := handler.NewQuestionsHandler(c.GeneratorService, c.SetService, c.CompletionService, c.LookbackDays)
	batchHandler := handler.NewBatchHandler(c.BatchService, c.BatchTimeout)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService, c.CronToken)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// WebSocket route (token in query param)
	v1.HandleFunc("/ws/questions", wsHandler.QuestionsWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// User routes (require user auth)
	userRoutes := v1.NewRoute().Subrouter()
	userRoutes.Use(authMW.RequireUser)

	userRoutes.HandleFunc("/questions/generate", questionsHandler.Generate).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/questions/current", questionsHandler.Current).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/questions/{questionId}/complete", questionsHandler.Complete).Methods("POST", "OPTIONS")

	// Scheduler routes (require cron token)
	cronRoutes := v1.NewRoute().Subrouter()
	cronRoutes.Use(authMW.RequireCron)

	cronRoutes.HandleFunc("/batch/run", batchHandler.Run).Methods("POST")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Cron-Token")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
