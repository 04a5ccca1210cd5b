package service

import (
	"testing"
	"time"

	"quizowl/internal/models"
)

func TestPercentage(t *testing.T) {
	tests := []struct {
		name     string
		part     int
		total    int
		expected int
	}{
		{"no answers", 0, 0, 0},
		{"all correct", 5, 5, 100},
		{"none correct", 0, 4, 0},
		{"one third rounds down", 1, 3, 33},
		{"two thirds rounds up", 2, 3, 67},
		{"half", 1, 2, 50},
		{"seven of ten", 7, 10, 70},
		{"half percent rounds up", 1, 8, 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Percentage(tt.part, tt.total); got != tt.expected {
				t.Errorf("Percentage(%d, %d) = %d, want %d", tt.part, tt.total, got, tt.expected)
			}
		})
	}
}

func TestNewExerciseRecord(t *testing.T) {
	at := time.Date(2024, 11, 20, 9, 0, 0, 0, time.UTC)
	base := models.ExerciseInput{
		QuestionID:    "1",
		Subject:       models.SubjectMaths,
		Question:      "What is 5 + 3?",
		Options:       [4]string{"6", "7", "8", "9"},
		CorrectAnswer: 2,
	}

	tests := []struct {
		name       string
		userAnswer int
		timeSpent  int
		correct    bool
		withinTime bool
	}{
		{"correct and fast", 2, 8, true, true},
		{"correct at the limit", 2, 15, true, true},
		{"correct but slow", 2, 16, true, false},
		{"wrong and fast", 0, 3, false, true},
		{"wrong and slow", 1, 40, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base
			in.UserAnswer = tt.userAnswer
			in.TimeSpent = tt.timeSpent

			r := NewExerciseRecord("r1", at, in)
			if r.IsCorrect != tt.correct {
				t.Errorf("IsCorrect = %v, want %v", r.IsCorrect, tt.correct)
			}
			if r.WithinTime != tt.withinTime {
				t.Errorf("WithinTime = %v, want %v", r.WithinTime, tt.withinTime)
			}
			if r.ID != "r1" || !r.Timestamp.Equal(at) || r.QuestionID != "1" || r.Options != base.Options {
				t.Errorf("record did not copy its input: %+v", r)
			}
		})
	}
}

func TestApplyAnswer(t *testing.T) {
	child := &models.Child{ID: "c1", ExerciseHistory: []models.ExerciseRecord{}}
	steps := []struct {
		correct    bool
		withinTime bool
	}{
		{true, true},
		{true, false},
		{false, true},
		{true, true},
	}
	for i, s := range steps {
		ApplyAnswer(child, models.ExerciseRecord{ID: string(rune('a' + i)), IsCorrect: s.correct, WithinTime: s.withinTime})
	}

	if child.CorrectCount != 3 {
		t.Errorf("CorrectCount = %d, want 3", child.CorrectCount)
	}
	if child.CorrectWithinTimerCount != 2 {
		t.Errorf("CorrectWithinTimerCount = %d, want 2", child.CorrectWithinTimerCount)
	}
	if child.IncorrectCount != 1 {
		t.Errorf("IncorrectCount = %d, want 1", child.IncorrectCount)
	}
	if child.Accuracy != 75 {
		t.Errorf("Accuracy = %d, want 75", child.Accuracy)
	}
	if len(child.ExerciseHistory) != 4 || child.ExerciseHistory[3].ID != "d" {
		t.Errorf("history not appended in order: %+v", child.ExerciseHistory)
	}
}

func seededChild(t *testing.T, childID string) *models.Child {
	t.Helper()
	child, _ := NewSeededIdentityStore().GetChild(childID)
	if child == nil {
		t.Fatalf("seed child %s not found", childID)
	}
	return child
}

func TestFilterHistory(t *testing.T) {
	ahmed := seededChild(t, "child1")

	tests := []struct {
		name     string
		subject  string
		group    models.Group
		expected []string
	}{
		{"everything", "", "", []string{"ex1", "ex2", "ex3", "ex4", "ex5", "ex6", "ex7", "ex8", "ex9", "ex10"}},
		{"incorrect", "", models.GroupIncorrect, []string{"ex2", "ex5", "ex8"}},
		{"timer includes wrong answers", "", models.GroupTimer, []string{"ex1", "ex3", "ex4", "ex5", "ex6", "ex8", "ex9", "ex10"}},
		{"subject is case-insensitive", "maths", models.GroupCorrect, []string{"ex1", "ex4", "ex7", "ex10"}},
		{"subject only", "Science", "", []string{"ex6", "ex8"}},
		{"unknown subject", "History", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterHistory(ahmed.ExerciseHistory, tt.subject, tt.group)
			if got == nil {
				t.Fatal("FilterHistory() returned nil")
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("FilterHistory() returned %d records, want %d", len(got), len(tt.expected))
			}
			for i, r := range got {
				if r.ID != tt.expected[i] {
					t.Errorf("record %d = %s, want %s", i, r.ID, tt.expected[i])
				}
			}
		})
	}
}

func TestGroupSummaries(t *testing.T) {
	ahmed := seededChild(t, "child1")
	summaries := GroupSummaries(ahmed)

	expected := []struct {
		group      models.Group
		count      int
		percentage int
		last       string
	}{
		{models.GroupCorrect, 7, 70, "ex10"},
		{models.GroupTimer, 6, 60, "ex10"},
		{models.GroupIncorrect, 3, 30, "ex8"},
	}
	if len(summaries) != len(expected) {
		t.Fatalf("got %d summaries, want %d", len(summaries), len(expected))
	}

	for i, want := range expected {
		got := summaries[i]
		if got.Group != want.group || got.Count != want.count || got.Percentage != want.percentage {
			t.Errorf("summary %d = %+v, want group %s count %d percentage %d", i, got, want.group, want.count, want.percentage)
		}
		var lastRecord models.ExerciseRecord
		for _, r := range ahmed.ExerciseHistory {
			if r.ID == want.last {
				lastRecord = r
			}
		}
		if got.LastActivity == nil || !got.LastActivity.Equal(lastRecord.Timestamp) {
			t.Errorf("summary %s last activity = %v, want %v", want.group, got.LastActivity, lastRecord.Timestamp)
		}
	}
}

func TestGroupSummaries_NoHistory(t *testing.T) {
	child := &models.Child{ID: "c1"}
	for _, s := range GroupSummaries(child) {
		if s.Count != 0 || s.Percentage != 0 || s.LastActivity != nil {
			t.Errorf("empty child summary = %+v, want zeros", s)
		}
	}
}

func TestSubjectBreakdowns(t *testing.T) {
	ahmed := seededChild(t, "child1")

	tests := []struct {
		group    models.Group
		expected []int
	}{
		{models.GroupCorrect, []int{4, 2, 1}},
		{models.GroupTimer, []int{3, 3, 2}},
		{models.GroupIncorrect, []int{1, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(string(tt.group), func(t *testing.T) {
			got := SubjectBreakdowns(ahmed, tt.group)
			for i, b := range got {
				if b.Subject != models.Subjects[i] {
					t.Errorf("breakdown %d subject = %s, want %s", i, b.Subject, models.Subjects[i])
				}
				if b.Count != tt.expected[i] {
					t.Errorf("%s count = %d, want %d", b.Subject, b.Count, tt.expected[i])
				}
			}
		})
	}
}

func TestComputeExerciseStats(t *testing.T) {
	ahmed := seededChild(t, "child1")

	stats := ComputeExerciseStats(FilterHistory(ahmed.ExerciseHistory, "Maths", ""))
	if stats.Count != 5 || stats.CorrectCount != 4 || stats.OnTimeCount != 3 {
		t.Errorf("counts = %+v, want 5 answered, 4 correct, 3 on time", stats)
	}
	if stats.Accuracy != 80 {
		t.Errorf("Accuracy = %d, want 80", stats.Accuracy)
	}
	// 64 seconds over 5 answers
	if stats.AverageTimeSpent != 13 {
		t.Errorf("AverageTimeSpent = %d, want 13", stats.AverageTimeSpent)
	}
	if stats.LastActivity == nil || stats.LastActivity.Day() != 18 {
		t.Errorf("LastActivity = %v, want 2024-11-18", stats.LastActivity)
	}

	empty := ComputeExerciseStats(nil)
	if empty.Count != 0 || empty.Accuracy != 0 || empty.AverageTimeSpent != 0 || empty.LastActivity != nil {
		t.Errorf("empty stats = %+v, want zeros", empty)
	}
}

func TestBuildChildReport(t *testing.T) {
	tests := []struct {
		childID  string
		accuracy int
		subjects []int
		best     models.Subject
		stars    float64
	}{
		{"child1", 70, []int{80, 67, 50}, models.SubjectMaths, 3.5},
		// Maths and English tie at 100
		{"child2", 80, []int{100, 100, 0}, models.SubjectMaths, 4},
	}

	for _, tt := range tests {
		t.Run(tt.childID, func(t *testing.T) {
			report := BuildChildReport(seededChild(t, tt.childID))
			if report.Accuracy != tt.accuracy {
				t.Errorf("Accuracy = %d, want %d", report.Accuracy, tt.accuracy)
			}
			for i, s := range report.Subjects {
				if s.Accuracy != tt.subjects[i] {
					t.Errorf("%s accuracy = %d, want %d", s.Subject, s.Accuracy, tt.subjects[i])
				}
			}
			if report.BestSubject != tt.best {
				t.Errorf("BestSubject = %s, want %s", report.BestSubject, tt.best)
			}
			if report.Stars != tt.stars {
				t.Errorf("Stars = %v, want %v", report.Stars, tt.stars)
			}
		})
	}
}

func TestStarRating(t *testing.T) {
	tests := []struct {
		accuracy int
		expected float64
	}{
		{100, 5}, {90, 5}, {89, 4}, {80, 4}, {79, 3.5}, {70, 3.5},
		{69, 3}, {60, 3}, {59, 2.5}, {50, 2.5}, {49, 2}, {0, 2},
	}

	for _, tt := range tests {
		if got := StarRating(tt.accuracy); got != tt.expected {
			t.Errorf("StarRating(%d) = %v, want %v", tt.accuracy, got, tt.expected)
		}
	}
}
