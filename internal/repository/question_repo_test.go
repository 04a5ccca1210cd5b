package repository

import (
	"testing"

	"quizowl/internal/models"
)

func TestDefaultQuestionBank(t *testing.T) {
	bank := NewDefaultQuestionBank()

	all := bank.All()
	if len(all) != 60 {
		t.Fatalf("All() returned %d questions, want 60", len(all))
	}

	seen := make(map[string]bool)
	for _, q := range all {
		if seen[q.ID] {
			t.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true
		if q.CorrectAnswer < 0 || q.CorrectAnswer > 3 {
			t.Errorf("question %q has correct answer %d", q.ID, q.CorrectAnswer)
		}
		if _, ok := models.ParseSubject(string(q.Subject)); !ok {
			t.Errorf("question %q has unknown subject %q", q.ID, q.Subject)
		}
	}

	for _, subject := range models.Subjects {
		if n := len(bank.BySubject(subject)); n != 20 {
			t.Errorf("BySubject(%s) returned %d questions, want 20", subject, n)
		}
	}
}

func TestForTopic(t *testing.T) {
	bank := NewDefaultQuestionBank()

	tests := []struct {
		topic string
		want  int
	}{
		{"Maths", 20},
		{"english", 20},
		{"SCIENCE", 20},
		{"mix", 60},
		{"Mix", 60},
		{"history", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.topic, func(t *testing.T) {
			if got := len(bank.ForTopic(tt.topic)); got != tt.want {
				t.Errorf("ForTopic(%q) returned %d questions, want %d", tt.topic, got, tt.want)
			}
		})
	}
}

func TestForTopicSubjectKeepsBankOrder(t *testing.T) {
	bank := NewDefaultQuestionBank()

	got := bank.ForTopic("maths")
	want := bank.BySubject(models.SubjectMaths)
	for i := range want {
		if got[i].ID != want[i].ID {
			t.Fatalf("ForTopic(maths)[%d] = %q, want %q", i, got[i].ID, want[i].ID)
		}
	}
}

func TestMixDoesNotReorderBank(t *testing.T) {
	bank := NewDefaultQuestionBank()
	before := bank.All()

	mixed := bank.ForTopic(models.TopicMix)
	mixed[0].Question = "changed"

	after := bank.All()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("bank changed at %d after mix", i)
		}
	}
}

func TestGet(t *testing.T) {
	bank := NewDefaultQuestionBank()

	if _, ok := bank.Get("does-not-exist"); ok {
		t.Error("Get() found unknown id")
	}
	q, ok := bank.Get("1")
	if !ok {
		t.Fatal("Get(1) not found")
	}
	if q.Subject != models.SubjectMaths {
		t.Errorf("question 1 subject = %q, want Maths", q.Subject)
	}
}
