package handlers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"quizowl/internal/monitoring"
	"quizowl/internal/security"
	"quizowl/internal/service"
)

// Middleware holds dependencies for middleware functions
type Middleware struct {
	sessions *service.SessionManager
	tokens   *security.TokenIssuer
	limiter  *security.RateLimiter
	metrics  *monitoring.Metrics
	log      *zap.Logger
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(sessions *service.SessionManager, tokens *security.TokenIssuer, limiter *security.RateLimiter, metrics *monitoring.Metrics, log *zap.Logger) *Middleware {
	return &Middleware{
		sessions: sessions,
		tokens:   tokens,
		limiter:  limiter,
		metrics:  metrics,
		log:      log,
	}
}

// WithSession resolves the client's session from the session cookie. Clients
// without a valid cookie get a fresh logged-out session and a new cookie; a
// cookie past half its lifetime is reissued so active clients stay signed in.
func (m *Middleware) WithSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sessionID string
		var tokenExpires time.Time
		if cookie, err := r.Cookie(security.SessionCookieName); err == nil {
			if id, expires, err := m.tokens.Parse(cookie.Value); err == nil {
				sessionID, tokenExpires = id, expires
			} else {
				m.log.Debug("ignoring invalid session cookie", zap.Error(err))
			}
		}

		id, session, created := m.sessions.Resolve(sessionID)
		switch {
		case created:
			token, expires, err := m.tokens.Issue(id)
			if err != nil {
				m.sessions.Remove(id)
				respondWithError(w, m.log, http.StatusInternalServerError, ErrInternalServerError, "failed to issue session token", err)
				return
			}
			http.SetCookie(w, security.CreateSessionCookie(r, token, expires))
		case m.tokens.NeedsRefresh(tokenExpires):
			// The old token is still valid, so a failed refresh only logs
			if token, expires, err := m.tokens.Issue(id); err == nil {
				http.SetCookie(w, security.CreateSessionCookie(r, token, expires))
			} else {
				m.log.Warn("failed to refresh session token", zap.Error(err))
			}
		}

		ctx := context.WithValue(r.Context(), SessionContextKey, session)
		next(w, r.WithContext(ctx))
	}
}

// RateLimit rejects clients that exceed the configured request rate
func (m *Middleware) RateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ip := security.GetClientIP(r)
		if !m.limiter.Allow(ip) {
			m.log.Warn("rate limit exceeded", zap.String("ip", ip), zap.String("path", r.URL.Path))
			respondWithError(w, m.log, http.StatusTooManyRequests, ErrTooManyRequests, "", nil)
			return
		}
		next(w, r)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Logging logs every request and records it in the request metrics
func (m *Middleware) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		elapsed := time.Since(start)
		m.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", elapsed))

		if m.metrics != nil {
			// The mux sets the matched pattern; label by it to keep cardinality bounded
			endpoint := r.Pattern
			if endpoint == "" {
				endpoint = "unmatched"
			}
			m.metrics.ObserveRequest(r.Method, endpoint, rec.status, elapsed)
		}
	})
}

// GetSessionFromContext retrieves the client session from the request context
func GetSessionFromContext(ctx context.Context) *service.Session {
	session, ok := ctx.Value(SessionContextKey).(*service.Session)
	if !ok {
		return nil
	}
	return session
}
