package models

import (
	"strings"
	"time"
)

// Subject is one of the quiz subjects
type Subject string

const (
	SubjectMaths   Subject = "Maths"
	SubjectEnglish Subject = "English"
	SubjectScience Subject = "Science"
)

// Subjects lists every subject in display order
var Subjects = []Subject{SubjectMaths, SubjectEnglish, SubjectScience}

// ParseSubject matches a subject name case-insensitively
func ParseSubject(s string) (Subject, bool) {
	for _, subject := range Subjects {
		if strings.EqualFold(string(subject), strings.TrimSpace(s)) {
			return subject, true
		}
	}
	return "", false
}

// TopicMix selects questions from every subject
const TopicMix = "mix"

// WithinTimeLimit is the longest answer time, in seconds, that still counts as on time
const WithinTimeLimit = 15

// QuizQuestion is a multiple choice question from the question bank
type QuizQuestion struct {
	ID            string    `json:"id"`
	Subject       Subject   `json:"subject"`
	Question      string    `json:"question"`
	Options       [4]string `json:"options"`
	CorrectAnswer int       `json:"correctAnswer"`
	Explanation   string    `json:"explanation"`
}

// ExerciseRecord is one answered question in a child's history.
// Records are never mutated after they are appended.
type ExerciseRecord struct {
	ID            string    `json:"id"`
	QuestionID    string    `json:"questionId"`
	Subject       Subject   `json:"subject"`
	Question      string    `json:"question"`
	Options       [4]string `json:"options"`
	UserAnswer    int       `json:"userAnswer"`
	CorrectAnswer int       `json:"correctAnswer"`
	IsCorrect     bool      `json:"isCorrect"`
	WithinTime    bool      `json:"withinTime"`
	TimeSpent     int       `json:"timeSpent"`
	Timestamp     time.Time `json:"timestamp"`
}

// ExerciseInput is an answer submission before it gets an ID and timestamp
type ExerciseInput struct {
	QuestionID    string
	Subject       Subject
	Question      string
	Options       [4]string
	UserAnswer    int
	CorrectAnswer int
	TimeSpent     int
}

// InputFromQuestion snapshots a question together with the child's answer
func InputFromQuestion(q QuizQuestion, userAnswer, timeSpent int) ExerciseInput {
	return ExerciseInput{
		QuestionID:    q.ID,
		Subject:       q.Subject,
		Question:      q.Question,
		Options:       q.Options,
		UserAnswer:    userAnswer,
		CorrectAnswer: q.CorrectAnswer,
		TimeSpent:     timeSpent,
	}
}

// PublicQuestion is a quiz question as shown to a child, without the answer
type PublicQuestion struct {
	ID       string    `json:"id"`
	Subject  Subject   `json:"subject"`
	Question string    `json:"question"`
	Options  [4]string `json:"options"`
}

// Public strips the answer and explanation from a question
func (q QuizQuestion) Public() PublicQuestion {
	return PublicQuestion{ID: q.ID, Subject: q.Subject, Question: q.Question, Options: q.Options}
}

// AnswerFeedback is returned to a child after answering a question
type AnswerFeedback struct {
	Record        ExerciseRecord `json:"record"`
	IsCorrect     bool           `json:"isCorrect"`
	WithinTime    bool           `json:"withinTime"`
	CorrectAnswer int            `json:"correctAnswer"`
	Explanation   string         `json:"explanation"`
}
