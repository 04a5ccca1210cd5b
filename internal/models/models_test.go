package models

import (
	"testing"
	"time"
)

func TestGroupContains(t *testing.T) {
	correctOnTime := ExerciseRecord{IsCorrect: true, WithinTime: true}
	correctSlow := ExerciseRecord{IsCorrect: true, WithinTime: false}
	wrongOnTime := ExerciseRecord{IsCorrect: false, WithinTime: true}

	tests := []struct {
		name   string
		group  Group
		record ExerciseRecord
		want   bool
	}{
		{"correct includes correct", GroupCorrect, correctSlow, true},
		{"correct excludes incorrect", GroupCorrect, wrongOnTime, false},
		{"timer includes on time correct", GroupTimer, correctOnTime, true},
		{"timer includes on time incorrect", GroupTimer, wrongOnTime, true},
		{"timer excludes slow", GroupTimer, correctSlow, false},
		{"incorrect includes incorrect", GroupIncorrect, wrongOnTime, true},
		{"incorrect excludes correct", GroupIncorrect, correctOnTime, false},
		{"unknown group", Group("other"), correctOnTime, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.group.Contains(tt.record); got != tt.want {
				t.Errorf("Group(%q).Contains() = %v, want %v", tt.group, got, tt.want)
			}
		})
	}
}

func TestScreenValid(t *testing.T) {
	tests := []struct {
		screen Screen
		want   bool
	}{
		{ScreenWelcome, true},
		{ScreenForgotPassword, true},
		{ScreenChildPerformanceGroups, true},
		{Screen("dashboard"), false},
		{Screen(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.screen), func(t *testing.T) {
			if got := tt.screen.Valid(); got != tt.want {
				t.Errorf("Screen(%q).Valid() = %v, want %v", tt.screen, got, tt.want)
			}
		})
	}
}

func TestParseSubject(t *testing.T) {
	tests := []struct {
		input  string
		want   Subject
		wantOK bool
	}{
		{"Maths", SubjectMaths, true},
		{"english", SubjectEnglish, true},
		{" SCIENCE ", SubjectScience, true},
		{"mix", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseSubject(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseSubject(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestChildCloneIsIndependent(t *testing.T) {
	original := &Child{
		ID:           "child1",
		Name:         "Ahmed",
		CorrectCount: 1,
		ExerciseHistory: []ExerciseRecord{
			{ID: "ex1", Options: [4]string{"a", "b", "c", "d"}, Timestamp: time.Now()},
		},
	}

	clone := original.Clone()
	clone.Name = "Changed"
	clone.CorrectCount++
	clone.ExerciseHistory[0].Options[0] = "z"
	clone.ExerciseHistory = append(clone.ExerciseHistory, ExerciseRecord{ID: "ex2"})

	if original.Name != "Ahmed" {
		t.Errorf("original name changed to %q", original.Name)
	}
	if original.CorrectCount != 1 {
		t.Errorf("original correct count changed to %d", original.CorrectCount)
	}
	if original.ExerciseHistory[0].Options[0] != "a" {
		t.Errorf("original options changed to %v", original.ExerciseHistory[0].Options)
	}
	if len(original.ExerciseHistory) != 1 {
		t.Errorf("original history length = %d, want 1", len(original.ExerciseHistory))
	}
}

func TestParentCloneCopiesChildren(t *testing.T) {
	parent := &Parent{ID: "p1", Children: []*Child{{ID: "c1", Name: "Omar"}}}

	clone := parent.Clone()
	clone.Children[0].Name = "Changed"

	if parent.Children[0].Name != "Omar" {
		t.Errorf("original child name changed to %q", parent.Children[0].Name)
	}
	if clone.FindChild("c1") == nil {
		t.Error("FindChild() on clone returned nil")
	}
	if clone.FindChild("missing") != nil {
		t.Error("FindChild() for unknown ID should return nil")
	}
}

func TestIdentityLoggedIn(t *testing.T) {
	tests := []struct {
		name     string
		identity Identity
		want     bool
	}{
		{"zero value", Identity{}, false},
		{"parent", Identity{Role: RoleParent, ID: "parent1"}, true},
		{"child", Identity{Role: RoleChild, ID: "child1"}, true},
		{"role without id", Identity{Role: RoleChild}, false},
		{"unknown role", Identity{Role: Role("admin"), ID: "x"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.identity.LoggedIn(); got != tt.want {
				t.Errorf("LoggedIn() = %v, want %v", got, tt.want)
			}
		})
	}
}
