package models

// Screen identifies a navigation target of the presentation layer
type Screen string

const (
	ScreenWelcome                Screen = "welcome"
	ScreenParentLogin            Screen = "parent-login"
	ScreenParentSignup           Screen = "parent-signup"
	ScreenChildLogin             Screen = "child-login"
	ScreenParentHome             Screen = "parent-home"
	ScreenParentDashboard        Screen = "parent-dashboard"
	ScreenChildPerformanceGroups Screen = "child-performance-groups"
	ScreenExerciseCategories     Screen = "exercise-categories"
	ScreenExerciseList           Screen = "exercise-list"
	ScreenCreateChild            Screen = "create-child"
	ScreenTopicSelection         Screen = "topic-selection"
	ScreenQuiz                   Screen = "quiz"
	ScreenPerformance            Screen = "performance"
	ScreenIncorrectExercises     Screen = "incorrect-exercises"
	ScreenAccountInfo            Screen = "account-info"
	ScreenEditAccount            Screen = "edit-account"
	ScreenAbout                  Screen = "about"
	ScreenContact                Screen = "contact"
	ScreenPrivacy                Screen = "privacy"
	ScreenTerms                  Screen = "terms"
	ScreenForgotPassword         Screen = "forgot-password"
)

var screens = map[Screen]struct{}{
	ScreenWelcome: {}, ScreenParentLogin: {}, ScreenParentSignup: {}, ScreenChildLogin: {},
	ScreenParentHome: {}, ScreenParentDashboard: {}, ScreenChildPerformanceGroups: {},
	ScreenExerciseCategories: {}, ScreenExerciseList: {}, ScreenCreateChild: {},
	ScreenTopicSelection: {}, ScreenQuiz: {}, ScreenPerformance: {}, ScreenIncorrectExercises: {},
	ScreenAccountInfo: {}, ScreenEditAccount: {}, ScreenAbout: {}, ScreenContact: {},
	ScreenPrivacy: {}, ScreenTerms: {}, ScreenForgotPassword: {},
}

// Valid reports whether s is a known screen
func (s Screen) Valid() bool {
	_, ok := screens[s]
	return ok
}

// Group is one of the three partitions of a child's exercise history
type Group string

const (
	GroupCorrect   Group = "correct"
	GroupTimer     Group = "timer"
	GroupIncorrect Group = "incorrect"
)

// Groups lists the performance groups in display order
var Groups = []Group{GroupCorrect, GroupTimer, GroupIncorrect}

// Valid reports whether g is a known group
func (g Group) Valid() bool {
	return g == GroupCorrect || g == GroupTimer || g == GroupIncorrect
}

// Contains reports whether the record belongs to the group
func (g Group) Contains(r ExerciseRecord) bool {
	switch g {
	case GroupCorrect:
		return r.IsCorrect
	case GroupTimer:
		return r.WithinTime
	case GroupIncorrect:
		return !r.IsCorrect
	}
	return false
}

// NavContext carries optional selection updates for a navigation.
// Empty fields leave the current selection unchanged.
type NavContext struct {
	Topic   string `json:"topic,omitempty"`
	Group   Group  `json:"group,omitempty"`
	Subject string `json:"subject,omitempty"`
}

// SessionState is a read-only snapshot of a session
type SessionState struct {
	CurrentUser     *CurrentUser `json:"currentUser"`
	UserType        Role         `json:"userType"`
	SelectedChild   *Child       `json:"selectedChild"`
	SelectedGroup   Group        `json:"selectedGroup"`
	SelectedSubject string       `json:"selectedSubject"`
	CurrentScreen   Screen       `json:"currentScreen"`
	CurrentTopic    string       `json:"currentTopic"`
}
