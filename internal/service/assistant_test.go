package service

import (
	"strings"
	"testing"

	"quizowl/internal/models"
)

func TestAssistant_Greeting(t *testing.T) {
	a := NewAssistant()
	ahmed := seededChild(t, "child1")
	wrong := ahmed.ExerciseHistory[1]

	tests := []struct {
		name     string
		ctx      AssistantContext
		contains []string
	}{
		{"general", AssistantContext{ParentName: "sarah"}, []string{"Hello sarah", "your children"}},
		{"child", AssistantContext{ParentName: "sarah", Child: ahmed}, []string{"Ahmed's performance"}},
		{"group", AssistantContext{Child: ahmed, Group: models.GroupIncorrect}, []string{"Ahmed's incorrect exercises", "3 exercises"}},
		{"timer group uses the counter", AssistantContext{Child: ahmed, Group: models.GroupTimer}, []string{"completed within time", "6 exercises"}},
		{"exercise", AssistantContext{Child: ahmed, Exercise: &wrong}, []string{"incorrectly", "Maths", "18 seconds"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Greeting(tt.ctx)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("Greeting() = %q, want it to contain %q", got, want)
				}
			}
		})
	}
}

func TestAssistant_Reply(t *testing.T) {
	a := NewAssistant()
	ahmed := seededChild(t, "child1")
	wrong := ahmed.ExerciseHistory[1]
	slow := ahmed.ExerciseHistory[6]

	tests := []struct {
		name     string
		ctx      AssistantContext
		question string
		contains string
	}{
		{"exercise mistake", AssistantContext{Exercise: &wrong}, "Why was this wrong?", `chose "7" but the correct answer was "8"`},
		{"exercise improve slow", AssistantContext{Exercise: &slow}, "How can they improve?", "time management"},
		{"exercise default", AssistantContext{Exercise: &slow}, "hmm", "answered correctly in 20 seconds"},
		{"group pattern", AssistantContext{Child: ahmed, Group: models.GroupCorrect}, "Any pattern?", "strong performance"},
		{"group subject", AssistantContext{Child: ahmed, Group: models.GroupCorrect}, "Which topic?", "Maths, English, and Science"},
		{"group default", AssistantContext{Child: ahmed, Group: models.GroupIncorrect}, "hello", "Ahmed has 3 exercises"},
		{"progress", AssistantContext{Child: ahmed}, "Is there progress?", "accuracy is at 70%"},
		{"weakness", AssistantContext{Child: ahmed}, "What are the weak spots?", "Ahmed has 3 incorrect exercises"},
		{"strength", AssistantContext{Child: ahmed}, "What is Ahmed best at?", "7 correct answers out of 10"},
		{"recommendation", AssistantContext{Child: ahmed}, "What do you suggest?", "Review incorrect exercises together"},
		{"child default", AssistantContext{Child: ahmed}, "hello", "70% accuracy"},
		{"no child default", AssistantContext{}, "hello", "your children's performance"},
		{"no child weakness", AssistantContext{}, "struggle", "Review the incorrect exercises section"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Reply(tt.ctx, tt.question)
			if !strings.Contains(got, tt.contains) {
				t.Errorf("Reply(%q) = %q, want it to contain %q", tt.question, got, tt.contains)
			}
		})
	}
}
