package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"quizowl/internal/database"
	"quizowl/internal/models"
)

func newTestJournal(t *testing.T) *JournalRepository {
	t.Helper()

	db, err := database.Initialize(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations(context.Background(), "../../migrations", zap.NewNop()); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return NewJournalRepository(db)
}

func TestJournalAppendAndList(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping database test in short mode")
	}

	journal := newTestJournal(t)
	ctx := context.Background()
	base := time.Date(2024, 11, 15, 10, 30, 0, 0, time.UTC)

	records := []struct {
		childID string
		name    string
		record  models.ExerciseRecord
	}{
		{"child1", "Ahmed", models.ExerciseRecord{ID: "r1", QuestionID: "1", Subject: models.SubjectMaths, Question: "What is 7 + 5?",
			Options: [4]string{"10", "11", "12", "13"}, UserAnswer: 2, CorrectAnswer: 2, IsCorrect: true, WithinTime: true, TimeSpent: 8, Timestamp: base}},
		{"child1", "Ahmed", models.ExerciseRecord{ID: "r2", QuestionID: "9", Subject: models.SubjectEnglish, Question: "Plural of child?",
			Options: [4]string{"childs", "children", "childes", "child"}, UserAnswer: 0, CorrectAnswer: 1, IsCorrect: false, WithinTime: false, TimeSpent: 20, Timestamp: base.Add(time.Minute)}},
		{"child2", "Omar", models.ExerciseRecord{ID: "r3", QuestionID: "15", Subject: models.SubjectScience, Question: "Closest planet to the sun?",
			Options: [4]string{"Venus", "Mercury", "Earth", "Mars"}, UserAnswer: 0, CorrectAnswer: 1, IsCorrect: false, WithinTime: true, TimeSpent: 5, Timestamp: base.Add(2 * time.Minute)}},
	}

	for _, r := range records {
		id, err := journal.Append(ctx, r.childID, r.name, r.record)
		if err != nil {
			t.Fatalf("Append() error: %v", err)
		}
		if id <= 0 {
			t.Errorf("Append() id = %d", id)
		}
	}

	tests := []struct {
		name   string
		filter JournalFilter
		want   []string
	}{
		{"all", JournalFilter{}, []string{"r1", "r2", "r3"}},
		{"by child", JournalFilter{ChildID: "child1"}, []string{"r1", "r2"}},
		{"incorrect only", JournalFilter{IncorrectOnly: true}, []string{"r2", "r3"}},
		{"since", JournalFilter{Since: base.Add(90 * time.Second)}, []string{"r3"}},
		{"limit", JournalFilter{Limit: 1}, []string{"r1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := journal.List(ctx, tt.filter)
			if err != nil {
				t.Fatalf("List() error: %v", err)
			}
			if len(entries) != len(tt.want) {
				t.Fatalf("List() returned %d entries, want %d", len(entries), len(tt.want))
			}
			for i, id := range tt.want {
				if entries[i].Record.ID != id {
					t.Errorf("entry %d = %q, want %q", i, entries[i].Record.ID, id)
				}
			}
		})
	}

	entries, err := journal.List(ctx, JournalFilter{ChildID: "child2"})
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	got := entries[0]
	if got.ChildName != "Omar" || got.Record.Options[1] != "Mercury" || got.Record.Subject != models.SubjectScience {
		t.Errorf("round-tripped entry mismatch: %+v", got)
	}
	if !got.Record.Timestamp.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("timestamp = %v, want %v", got.Record.Timestamp, base.Add(2*time.Minute))
	}

	count, err := journal.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error: %v", err)
	}
	if count != 3 {
		t.Errorf("Count() = %d, want 3", count)
	}
}
