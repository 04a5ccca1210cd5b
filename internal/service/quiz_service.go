package service

import (
	"context"
	"fmt"
	"strings"

	"quizowl/internal/models"
	"quizowl/internal/repository"
)

// QuizService serves quiz questions and grades answers against the question bank
type QuizService struct {
	bank *repository.QuestionBank
}

// NewQuizService creates a new quiz service
func NewQuizService(bank *repository.QuestionBank) *QuizService {
	return &QuizService{bank: bank}
}

// NormalizeTopic canonicalises a topic: subject names get their display
// spelling and any casing of "mix" becomes "mix". Other input is returned trimmed.
func NormalizeTopic(topic string) string {
	topic = strings.TrimSpace(topic)
	if strings.EqualFold(topic, models.TopicMix) {
		return models.TopicMix
	}
	if subject, ok := models.ParseSubject(topic); ok {
		return string(subject)
	}
	return topic
}

// Questions returns the questions of a topic without their answers.
// Unknown topics yield an empty quiz.
func (s *QuizService) Questions(topic string) []models.PublicQuestion {
	questions := s.bank.ForTopic(topic)
	out := make([]models.PublicQuestion, len(questions))
	for i, q := range questions {
		out[i] = q.Public()
	}
	return out
}

// Answer grades a child's answer to a bank question and records it in the
// child's history
func (s *QuizService) Answer(ctx context.Context, session *Session, questionID string, answer, timeSpent int) (*models.AnswerFeedback, error) {
	question, ok := s.bank.Get(questionID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrQuestionNotFound, questionID)
	}

	record, err := session.SubmitQuizAnswer(ctx, models.InputFromQuestion(question, answer, timeSpent))
	if err != nil {
		return nil, err
	}

	return &models.AnswerFeedback{
		Record:        record,
		IsCorrect:     record.IsCorrect,
		WithinTime:    record.WithinTime,
		CorrectAnswer: question.CorrectAnswer,
		Explanation:   question.Explanation,
	}, nil
}
