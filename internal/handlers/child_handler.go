package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"quizowl/internal/models"
	"quizowl/internal/service"
)

// ChildHandler handles the quiz and the child's own performance pages
type ChildHandler struct {
	quiz *service.QuizService
	log  *zap.Logger
}

// NewChildHandler creates a new child handler
func NewChildHandler(quiz *service.QuizService, log *zap.Logger) *ChildHandler {
	return &ChildHandler{quiz: quiz, log: log}
}

// Quiz returns the questions of a topic. A topic query parameter also
// navigates the session to the quiz; otherwise the current topic is used.
func (h *ChildHandler) Quiz(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	if _, err := session.CurrentChild(); err != nil {
		respondWithServiceError(w, h.log, "failed to load child", err)
		return
	}

	topic := service.NormalizeTopic(r.URL.Query().Get("topic"))
	if topic != "" {
		if err := session.Navigate(models.ScreenQuiz, models.NavContext{Topic: topic}); err != nil {
			respondWithServiceError(w, h.log, "failed to navigate", err)
			return
		}
	} else {
		topic = session.CurrentTopic()
	}

	respondJSON(w, http.StatusOK, quizResponse{
		Topic:     topic,
		Questions: h.quiz.Questions(topic),
	})
}

// Answer grades an answer and records it in the child's history
func (h *ChildHandler) Answer(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	var req answerRequest
	if err := decodeJSON(r, w, &req); err != nil {
		respondWithServiceError(w, h.log, "failed to decode answer", err)
		return
	}

	feedback, err := h.quiz.Answer(r.Context(), session, req.QuestionID, *req.Answer, *req.TimeSpent)
	if err != nil {
		respondWithServiceError(w, h.log, "failed to record answer", err)
		return
	}
	respondJSON(w, http.StatusOK, feedback)
}

// Performance returns the child's overall report
func (h *ChildHandler) Performance(w http.ResponseWriter, r *http.Request) {
	child, err := GetSessionFromContext(r.Context()).CurrentChild()
	if err != nil {
		respondWithServiceError(w, h.log, "failed to load child", err)
		return
	}

	respondJSON(w, http.StatusOK, performanceResponse{
		Child:  child.Summary(),
		Groups: service.GroupSummaries(child),
		Report: service.BuildChildReport(child),
	})
}

// Incorrect lists the child's wrong answers, optionally for one subject
func (h *ChildHandler) Incorrect(w http.ResponseWriter, r *http.Request) {
	child, err := GetSessionFromContext(r.Context()).CurrentChild()
	if err != nil {
		respondWithServiceError(w, h.log, "failed to load child", err)
		return
	}

	subject, err := subjectParam(r, "")
	if err != nil {
		respondWithServiceError(w, h.log, "", err)
		return
	}

	exercises := service.FilterHistory(child.ExerciseHistory, subject, models.GroupIncorrect)
	respondJSON(w, http.StatusOK, exercisesResponse{
		Group:     models.GroupIncorrect,
		Subject:   subject,
		Exercises: exercises,
		Stats:     service.ComputeExerciseStats(exercises),
	})
}

// UpdateAccount changes the child's name and username
func (h *ChildHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	var req childAccountRequest
	if err := decodeJSON(r, w, &req); err != nil {
		respondWithServiceError(w, h.log, "failed to decode account", err)
		return
	}
	if err := session.UpdateChildInfo(req.Name, req.Username); err != nil {
		respondWithServiceError(w, h.log, "failed to update account", err)
		return
	}
	respondJSON(w, http.StatusOK, session.State())
}

// UpdateAvatar changes the child's avatar
func (h *ChildHandler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	var req avatarRequest
	if err := decodeJSON(r, w, &req); err != nil {
		respondWithServiceError(w, h.log, "failed to decode avatar", err)
		return
	}
	if err := session.UpdateChildAvatar(req.Avatar); err != nil {
		respondWithServiceError(w, h.log, "failed to update avatar", err)
		return
	}
	respondJSON(w, http.StatusOK, session.State())
}
