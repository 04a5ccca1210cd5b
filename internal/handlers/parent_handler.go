package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"quizowl/internal/models"
	"quizowl/internal/service"
	"quizowl/internal/validation"
)

// ParentHandler handles the parent's roster, performance and assistant endpoints
type ParentHandler struct {
	accounts  *service.AccountService
	assistant *service.Assistant
	log       *zap.Logger
}

// NewParentHandler creates a new parent handler
func NewParentHandler(accounts *service.AccountService, assistant *service.Assistant, log *zap.Logger) *ParentHandler {
	return &ParentHandler{accounts: accounts, assistant: assistant, log: log}
}

// ListChildren returns the parent's children without their histories
func (h *ParentHandler) ListChildren(w http.ResponseWriter, r *http.Request) {
	parent, err := GetSessionFromContext(r.Context()).CurrentParent()
	if err != nil {
		respondWithServiceError(w, h.log, "failed to load parent", err)
		return
	}
	respondJSON(w, http.StatusOK, childrenResponse{Children: childSummaries(parent.Children)})
}

// CreateChild adds a child to the parent's roster
func (h *ParentHandler) CreateChild(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	var req createChildRequest
	if err := decodeJSON(r, w, &req); err != nil {
		respondWithServiceError(w, h.log, "failed to decode child", err)
		return
	}
	if err := validation.ValidatePasswordConfirmation(req.Password, req.ConfirmPassword); err != nil {
		respondWithServiceError(w, h.log, "", err)
		return
	}

	child, err := session.CreateChild(req.Name, req.Username, req.Password)
	if err != nil {
		respondWithServiceError(w, h.log, "failed to create child", err)
		return
	}
	respondJSON(w, http.StatusCreated, childResponse{Child: child.Summary()})
}

// SuggestCredentials proposes a username and password for a new child
func (h *ParentHandler) SuggestCredentials(w http.ResponseWriter, r *http.Request) {
	if _, err := GetSessionFromContext(r.Context()).CurrentParent(); err != nil {
		respondWithServiceError(w, h.log, "failed to load parent", err)
		return
	}

	suggestion, err := h.accounts.SuggestChildCredentials()
	if err != nil {
		respondWithServiceError(w, h.log, "failed to suggest credentials", err)
		return
	}
	respondJSON(w, http.StatusOK, suggestion)
}

// SelectChild makes a child the subject of the performance screens
func (h *ParentHandler) SelectChild(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	if err := session.SelectChild(r.PathValue("id")); err != nil {
		respondWithServiceError(w, h.log, "failed to select child", err)
		return
	}
	respondJSON(w, http.StatusOK, session.State())
}

// UpdateChild edits one of the parent's children
func (h *ParentHandler) UpdateChild(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	var req updateChildRequest
	if err := decodeJSON(r, w, &req); err != nil {
		respondWithServiceError(w, h.log, "failed to decode child", err)
		return
	}
	if err := validation.ValidatePasswordConfirmation(req.Password, req.ConfirmPassword); err != nil {
		respondWithServiceError(w, h.log, "", err)
		return
	}

	if err := session.UpdateParentChildInfo(r.PathValue("id"), req.Name, req.Username, req.Password); err != nil {
		respondWithServiceError(w, h.log, "failed to update child", err)
		return
	}
	respondJSON(w, http.StatusOK, session.State())
}

// DeleteChild removes a child and its history
func (h *ParentHandler) DeleteChild(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	if err := session.DeleteChild(r.PathValue("id")); err != nil {
		respondWithServiceError(w, h.log, "failed to delete child", err)
		return
	}
	respondJSON(w, http.StatusOK, session.State())
}

// SelectGroup selects a performance group of the selected child
func (h *ParentHandler) SelectGroup(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	var req groupRequest
	if err := decodeJSON(r, w, &req); err != nil {
		respondWithServiceError(w, h.log, "failed to decode group", err)
		return
	}
	if err := session.SelectGroup(req.Group); err != nil {
		respondWithServiceError(w, h.log, "failed to select group", err)
		return
	}
	respondJSON(w, http.StatusOK, session.State())
}

// SelectSubject selects a subject within the selected group
func (h *ParentHandler) SelectSubject(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	var req subjectRequest
	if err := decodeJSON(r, w, &req); err != nil {
		respondWithServiceError(w, h.log, "failed to decode subject", err)
		return
	}
	if err := session.SelectSubject(req.Subject); err != nil {
		respondWithServiceError(w, h.log, "failed to select subject", err)
		return
	}
	respondJSON(w, http.StatusOK, session.State())
}

// Performance summarises the selected child's performance groups
func (h *ParentHandler) Performance(w http.ResponseWriter, r *http.Request) {
	child, err := GetSessionFromContext(r.Context()).SelectedChild()
	if err != nil {
		respondWithServiceError(w, h.log, "failed to load selected child", err)
		return
	}

	respondJSON(w, http.StatusOK, performanceResponse{
		Child:  child.Summary(),
		Groups: service.GroupSummaries(child),
		Report: service.BuildChildReport(child),
	})
}

// Categories breaks the selected group down by subject. A group query
// parameter overrides the selection for this read.
func (h *ParentHandler) Categories(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	child, err := session.SelectedChild()
	if err != nil {
		respondWithServiceError(w, h.log, "failed to load selected child", err)
		return
	}

	selected, _ := session.Selection()
	group, err := groupParam(r, selected)
	if err != nil {
		respondWithServiceError(w, h.log, "", err)
		return
	}
	if group == "" {
		respondWithServiceError(w, h.log, "", validation.FieldError("group", "select a group first"))
		return
	}

	respondJSON(w, http.StatusOK, categoriesResponse{
		Child:    child.Summary(),
		Group:    group,
		Count:    service.GroupCount(child, group),
		Subjects: service.SubjectBreakdowns(child, group),
	})
}

// Exercises lists the selected child's exercises for the selected group and
// subject. Query parameters override the selection for this read.
func (h *ParentHandler) Exercises(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	child, err := session.SelectedChild()
	if err != nil {
		respondWithServiceError(w, h.log, "failed to load selected child", err)
		return
	}

	selectedGroup, selectedSubject := session.Selection()
	group, err := groupParam(r, selectedGroup)
	if err != nil {
		respondWithServiceError(w, h.log, "", err)
		return
	}
	subject, err := subjectParam(r, selectedSubject)
	if err != nil {
		respondWithServiceError(w, h.log, "", err)
		return
	}

	exercises := service.FilterHistory(child.ExerciseHistory, subject, group)
	respondJSON(w, http.StatusOK, exercisesResponse{
		Group:     group,
		Subject:   subject,
		Exercises: exercises,
		Stats:     service.ComputeExerciseStats(exercises),
	})
}

// UpdateAccount changes the parent's username and e-mail
func (h *ParentHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	var req parentAccountRequest
	if err := decodeJSON(r, w, &req); err != nil {
		respondWithServiceError(w, h.log, "failed to decode account", err)
		return
	}
	if err := session.UpdateParentInfo(req.Username, req.Email); err != nil {
		respondWithServiceError(w, h.log, "failed to update account", err)
		return
	}
	respondJSON(w, http.StatusOK, session.State())
}

// AssistantGreeting returns the assistant's opening message for what the
// parent is looking at
func (h *ParentHandler) AssistantGreeting(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	actx, err := h.assistantContext(GetSessionFromContext(r.Context()), q.Get("exerciseId"), models.Group(q.Get("group")))
	if err != nil {
		h.respondAssistantError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, assistantResponse{Message: h.assistant.Greeting(actx)})
}

// AssistantReply answers a parent's question about the selected child
func (h *ParentHandler) AssistantReply(w http.ResponseWriter, r *http.Request) {
	var req assistantRequest
	if err := decodeJSON(r, w, &req); err != nil {
		respondWithServiceError(w, h.log, "failed to decode question", err)
		return
	}

	actx, err := h.assistantContext(GetSessionFromContext(r.Context()), req.ExerciseID, req.Group)
	if err != nil {
		h.respondAssistantError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, assistantResponse{Message: h.assistant.Reply(actx, req.Question)})
}

var errExerciseNotFound = validation.FieldError("exerciseId", "exercise not found")

func (h *ParentHandler) respondAssistantError(w http.ResponseWriter, err error) {
	if err == errExerciseNotFound {
		writeError(w, http.StatusNotFound, "exercise_not_found", "Exercise not found", nil)
		return
	}
	respondWithServiceError(w, h.log, "failed to build assistant context", err)
}

// assistantContext resolves the parent, the selected child (if any) and the
// optional exercise or group the parent is asking about
func (h *ParentHandler) assistantContext(session *service.Session, exerciseID string, group models.Group) (service.AssistantContext, error) {
	parent, err := session.CurrentParent()
	if err != nil {
		return service.AssistantContext{}, err
	}
	actx := service.AssistantContext{ParentName: parent.Username}

	child, err := session.SelectedChild()
	if err != nil {
		// Without a selected child only the general context applies
		return actx, nil
	}
	actx.Child = child

	if group != "" {
		if !group.Valid() {
			return actx, validation.FieldError("group", "unknown group")
		}
		actx.Group = group
	}

	if exerciseID != "" {
		for i := range child.ExerciseHistory {
			if child.ExerciseHistory[i].ID == exerciseID {
				actx.Exercise = &child.ExerciseHistory[i]
				return actx, nil
			}
		}
		return actx, errExerciseNotFound
	}
	return actx, nil
}

func groupParam(r *http.Request, fallback models.Group) (models.Group, error) {
	raw := r.URL.Query().Get("group")
	if raw == "" {
		return fallback, nil
	}
	group := models.Group(raw)
	if !group.Valid() {
		return "", validation.FieldError("group", "unknown group")
	}
	return group, nil
}

func subjectParam(r *http.Request, fallback string) (string, error) {
	raw := r.URL.Query().Get("subject")
	if raw == "" {
		return fallback, nil
	}
	subject, ok := models.ParseSubject(raw)
	if !ok {
		return "", validation.FieldError("subject", "unknown subject")
	}
	return string(subject), nil
}
