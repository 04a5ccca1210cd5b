package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"quizowl/internal/monitoring"
	"quizowl/internal/security"
	"quizowl/internal/service"
)

// RouterDeps holds everything the HTTP layer needs
type RouterDeps struct {
	Sessions  *service.SessionManager
	Tokens    *security.TokenIssuer
	Limiter   *security.RateLimiter
	Quiz      *service.QuizService
	Accounts  *service.AccountService
	Assistant *service.Assistant
	Metrics   *monitoring.Metrics
	Logger    *zap.Logger
}

// NewRouter registers every route and wraps the mux with request logging
func NewRouter(d RouterDeps) http.Handler {
	middleware := NewMiddleware(d.Sessions, d.Tokens, d.Limiter, d.Metrics, d.Logger)
	sessionHandler := NewSessionHandler(d.Accounts, d.Logger)
	parentHandler := NewParentHandler(d.Accounts, d.Assistant, d.Logger)
	childHandler := NewChildHandler(d.Quiz, d.Logger)

	s := middleware.WithSession

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if d.Metrics != nil {
		mux.Handle("GET /metrics", d.Metrics.Handler())
	}

	// Session routes
	mux.HandleFunc("GET /api/state", s(sessionHandler.State))
	mux.HandleFunc("POST /api/navigate", s(sessionHandler.Navigate))
	mux.HandleFunc("POST /api/login", middleware.RateLimit(s(sessionHandler.Login)))
	mux.HandleFunc("POST /api/logout", s(sessionHandler.Logout))
	mux.HandleFunc("POST /api/signup", middleware.RateLimit(s(sessionHandler.Signup)))
	mux.HandleFunc("POST /api/forgot-password", middleware.RateLimit(s(sessionHandler.ForgotPassword)))
	mux.HandleFunc("POST /api/contact", middleware.RateLimit(s(sessionHandler.Contact)))

	// Parent routes
	mux.HandleFunc("GET /api/parent/children", s(parentHandler.ListChildren))
	mux.HandleFunc("POST /api/parent/children", s(parentHandler.CreateChild))
	mux.HandleFunc("GET /api/parent/children/suggest", s(parentHandler.SuggestCredentials))
	mux.HandleFunc("POST /api/parent/children/{id}/select", s(parentHandler.SelectChild))
	mux.HandleFunc("PUT /api/parent/children/{id}", s(parentHandler.UpdateChild))
	mux.HandleFunc("DELETE /api/parent/children/{id}", s(parentHandler.DeleteChild))
	mux.HandleFunc("POST /api/parent/group", s(parentHandler.SelectGroup))
	mux.HandleFunc("POST /api/parent/subject", s(parentHandler.SelectSubject))
	mux.HandleFunc("GET /api/parent/performance", s(parentHandler.Performance))
	mux.HandleFunc("GET /api/parent/performance/categories", s(parentHandler.Categories))
	mux.HandleFunc("GET /api/parent/performance/exercises", s(parentHandler.Exercises))
	mux.HandleFunc("PUT /api/parent/account", s(parentHandler.UpdateAccount))
	mux.HandleFunc("GET /api/parent/assistant", s(parentHandler.AssistantGreeting))
	mux.HandleFunc("POST /api/parent/assistant", s(parentHandler.AssistantReply))

	// Child routes
	mux.HandleFunc("GET /api/child/quiz", s(childHandler.Quiz))
	mux.HandleFunc("POST /api/child/quiz/answer", s(childHandler.Answer))
	mux.HandleFunc("GET /api/child/performance", s(childHandler.Performance))
	mux.HandleFunc("GET /api/child/incorrect", s(childHandler.Incorrect))
	mux.HandleFunc("PUT /api/child/account", s(childHandler.UpdateAccount))
	mux.HandleFunc("PUT /api/child/avatar", s(childHandler.UpdateAvatar))

	return middleware.Logging(mux)
}
