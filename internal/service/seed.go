package service

import (
	"time"

	"quizowl/internal/models"
	"quizowl/internal/repository"
)

// NewSeededIdentityStore returns an identity store holding the demo family:
// parent "sarah" with the children Ahmed and Omar and their answer histories.
func NewSeededIdentityStore() *repository.IdentityStore {
	return repository.NewIdentityStore(SeedParents())
}

// SeedParents builds the demo accounts. The children's counters and accuracy
// are replayed from their histories so they always agree with them.
func SeedParents() []*models.Parent {
	ahmed := seedChild("child1", "Ahmed", "ahmed123", []models.ExerciseRecord{
		seedRecord("ex1", "1", models.SubjectMaths, "What is 5 + 3?", [4]string{"6", "7", "8", "9"}, 2, 2, 8, "2024-11-15T10:30:00"),
		seedRecord("ex2", "2", models.SubjectMaths, "What is 12 - 4?", [4]string{"6", "7", "8", "9"}, 1, 2, 18, "2024-11-15T10:32:00"),
		seedRecord("ex3", "9", models.SubjectEnglish, "Which word is a noun?", [4]string{"Run", "Happy", "Book", "Quickly"}, 2, 2, 6, "2024-11-15T10:35:00"),
		seedRecord("ex4", "3", models.SubjectMaths, "What is 7 × 2?", [4]string{"12", "14", "16", "18"}, 1, 1, 10, "2024-11-16T09:15:00"),
		seedRecord("ex5", "10", models.SubjectEnglish, "Which word is a verb?", [4]string{"Cat", "Jump", "Blue", "Tall"}, 0, 1, 12, "2024-11-16T09:20:00"),
		seedRecord("ex6", "15", models.SubjectScience, "What do plants need to grow?", [4]string{"Only water", "Only sunlight", "Water and sunlight", "Nothing"}, 2, 2, 9, "2024-11-16T14:30:00"),
		seedRecord("ex7", "4", models.SubjectMaths, "What is 20 ÷ 4?", [4]string{"4", "5", "6", "7"}, 1, 1, 20, "2024-11-17T10:00:00"),
		seedRecord("ex8", "16", models.SubjectScience, "How many legs does a spider have?", [4]string{"6", "8", "10", "12"}, 0, 1, 7, "2024-11-17T10:05:00"),
		seedRecord("ex9", "11", models.SubjectEnglish, `What is the plural of "child"?`, [4]string{"Childs", "Children", "Childes", "Childrens"}, 1, 1, 11, "2024-11-17T11:00:00"),
		seedRecord("ex10", "5", models.SubjectMaths, "What is 9 + 6?", [4]string{"13", "14", "15", "16"}, 2, 2, 8, "2024-11-18T09:00:00"),
	})

	omar := seedChild("child2", "Omar", "omar456", []models.ExerciseRecord{
		seedRecord("ex11", "1", models.SubjectMaths, "What is 5 + 3?", [4]string{"6", "7", "8", "9"}, 2, 2, 7, "2024-11-15T14:00:00"),
		seedRecord("ex12", "9", models.SubjectEnglish, "Which word is a noun?", [4]string{"Run", "Happy", "Book", "Quickly"}, 2, 2, 9, "2024-11-15T14:10:00"),
		seedRecord("ex13", "15", models.SubjectScience, "What do plants need to grow?", [4]string{"Only water", "Only sunlight", "Water and sunlight", "Nothing"}, 1, 2, 10, "2024-11-16T10:00:00"),
		seedRecord("ex14", "3", models.SubjectMaths, "What is 7 × 2?", [4]string{"12", "14", "16", "18"}, 1, 1, 8, "2024-11-16T10:15:00"),
		seedRecord("ex15", "12", models.SubjectEnglish, "Which word is an adjective?", [4]string{"Run", "Beautiful", "Table", "Swim"}, 1, 1, 11, "2024-11-17T09:00:00"),
	})

	return []*models.Parent{
		{
			ID:       "parent1",
			Username: "sarah",
			Password: "password",
			Email:    "sarah@example.com",
			Children: []*models.Child{ahmed, omar},
		},
	}
}

func seedChild(id, name, username string, history []models.ExerciseRecord) *models.Child {
	child := &models.Child{
		ID:              id,
		Name:            name,
		Username:        username,
		Password:        "password",
		Avatar:          models.DefaultAvatar,
		ExerciseHistory: []models.ExerciseRecord{},
	}
	for _, record := range history {
		ApplyAnswer(child, record)
	}
	return child
}

func seedRecord(id, questionID string, subject models.Subject, question string, options [4]string, userAnswer, correctAnswer, timeSpent int, at string) models.ExerciseRecord {
	timestamp, err := time.Parse("2006-01-02T15:04:05", at)
	if err != nil {
		panic("invalid seed timestamp " + at)
	}
	return NewExerciseRecord(id, timestamp, models.ExerciseInput{
		QuestionID:    questionID,
		Subject:       subject,
		Question:      question,
		Options:       options,
		UserAnswer:    userAnswer,
		CorrectAnswer: correctAnswer,
		TimeSpent:     timeSpent,
	})
}
