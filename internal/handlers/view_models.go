package handlers

import "quizowl/internal/models"

// Request payloads

type loginRequest struct {
	Username string      `json:"username" validate:"required,max=100"`
	Password string      `json:"password" validate:"required,max=100"`
	Role     models.Role `json:"role" validate:"required,oneof=parent child"`
}

type signupRequest struct {
	Username        string `json:"username" validate:"required,username,max=50"`
	Password        string `json:"password" validate:"required,max=100"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
	Email           string `json:"email" validate:"omitempty,email,max=254"`
}

type navigateRequest struct {
	Screen  models.Screen `json:"screen" validate:"required"`
	Topic   string        `json:"topic" validate:"max=50"`
	Group   models.Group  `json:"group" validate:"omitempty,oneof=correct timer incorrect"`
	Subject string        `json:"subject" validate:"max=50"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type createChildRequest struct {
	Name            string `json:"name" validate:"required,max=100"`
	Username        string `json:"username" validate:"required,username,max=50"`
	Password        string `json:"password" validate:"required,max=100"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

type updateChildRequest struct {
	Name            string `json:"name" validate:"required,max=100"`
	Username        string `json:"username" validate:"required,username,max=50"`
	Password        string `json:"password" validate:"required,max=100"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

type groupRequest struct {
	Group models.Group `json:"group" validate:"required"`
}

type subjectRequest struct {
	Subject string `json:"subject" validate:"required"`
}

type parentAccountRequest struct {
	Username string `json:"username" validate:"required,username,max=50"`
	Email    string `json:"email" validate:"omitempty,email,max=254"`
}

type assistantRequest struct {
	Question   string       `json:"question" validate:"required,max=500"`
	ExerciseID string       `json:"exerciseId" validate:"max=64"`
	Group      models.Group `json:"group" validate:"omitempty,oneof=correct timer incorrect"`
}

type answerRequest struct {
	QuestionID string `json:"questionId" validate:"required"`
	Answer     *int   `json:"answer" validate:"required"`
	TimeSpent  *int   `json:"timeSpent" validate:"required"`
}

type childAccountRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Username string `json:"username" validate:"required,username,max=50"`
}

type avatarRequest struct {
	Avatar string `json:"avatar" validate:"required,max=32"`
}

// Responses

type messageResponse struct {
	Message string `json:"message"`
}

type childrenResponse struct {
	Children []models.ChildSummary `json:"children"`
}

type childResponse struct {
	Child models.ChildSummary `json:"child"`
}

type performanceResponse struct {
	Child  models.ChildSummary   `json:"child"`
	Groups []models.GroupSummary `json:"groups"`
	Report models.ChildReport    `json:"report"`
}

type categoriesResponse struct {
	Child    models.ChildSummary       `json:"child"`
	Group    models.Group              `json:"group"`
	Count    int                       `json:"count"`
	Subjects []models.SubjectBreakdown `json:"subjects"`
}

type exercisesResponse struct {
	Group     models.Group            `json:"group,omitempty"`
	Subject   string                  `json:"subject,omitempty"`
	Exercises []models.ExerciseRecord `json:"exercises"`
	Stats     models.ExerciseStats    `json:"stats"`
}

type assistantResponse struct {
	Message string `json:"message"`
}

type quizResponse struct {
	Topic     string                  `json:"topic"`
	Questions []models.PublicQuestion `json:"questions"`
}

func childSummaries(children []*models.Child) []models.ChildSummary {
	out := make([]models.ChildSummary, len(children))
	for i, c := range children {
		out[i] = c.Summary()
	}
	return out
}
