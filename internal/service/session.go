package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"quizowl/internal/models"
	"quizowl/internal/monitoring"
	"quizowl/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrPermissionDenied   = errors.New("operation not allowed for this account")
	ErrNoChildSelected    = errors.New("no child selected")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrInvalidAnswer      = errors.New("invalid answer")
	ErrInvalidSelection   = errors.New("invalid selection")
)

// AnswerJournal receives every submitted exercise record
type AnswerJournal interface {
	Append(ctx context.Context, childID, childName string, record models.ExerciseRecord) (int64, error)
}

// SessionDeps holds what every session shares. Only Store is required.
type SessionDeps struct {
	Store   *repository.IdentityStore
	Journal AnswerJournal
	Metrics *monitoring.Metrics
	Logger  *zap.Logger
	Now     func() time.Time
	NewID   func() string
}

func (d SessionDeps) withDefaults() SessionDeps {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.NewID == nil {
		d.NewID = uuid.NewString
	}
	return d
}

// Session is the state of one client: who is logged in, what is selected and
// which screen is shown. All account data lives in the identity store; the
// session only keeps IDs, so every read sees the latest version.
type Session struct {
	deps SessionDeps

	mu              sync.Mutex
	identity        models.Identity
	selectedChildID string
	selectedGroup   models.Group
	selectedSubject string
	currentScreen   models.Screen
	currentTopic    string
}

// NewSession creates a logged-out session on the welcome screen
func NewSession(deps SessionDeps) *Session {
	return &Session{
		deps:          deps.withDefaults(),
		currentScreen: models.ScreenWelcome,
	}
}

// Login authenticates against the parents or the flat child roster and moves
// to the role's home screen. A failed login leaves the session untouched.
func (s *Session) Login(username, password string, role models.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		id   string
		home models.Screen
	)
	switch role {
	case models.RoleParent:
		if p := s.deps.Store.FindParentByCredentials(username, password); p != nil {
			id, home = p.ID, models.ScreenParentHome
		}
	case models.RoleChild:
		if c := s.deps.Store.FindChildByCredentials(username, password); c != nil {
			id, home = c.ID, models.ScreenTopicSelection
		}
	}

	if s.deps.Metrics != nil {
		s.deps.Metrics.ObserveLogin(string(role), id != "")
	}
	if id == "" {
		s.deps.Logger.Info("login failed", zap.String("role", string(role)), zap.String("username", username))
		return ErrInvalidCredentials
	}

	s.identity = models.Identity{Role: role, ID: id}
	s.currentScreen = home
	s.deps.Logger.Info("login", zap.String("role", string(role)), zap.String("account_id", id))
	return nil
}

// Logout clears the account and every selection and returns to the welcome
// screen. The current topic is kept.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.identity = models.Identity{}
	s.selectedChildID = ""
	s.selectedGroup = ""
	s.selectedSubject = ""
	s.currentScreen = models.ScreenWelcome
}

// SignupParent creates a parent without children and logs it in
func (s *Session) SignupParent(username, password, email string) (*models.Parent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	parent := &models.Parent{
		ID:       s.deps.NewID(),
		Username: username,
		Password: password,
		Email:    email,
		Children: []*models.Child{},
	}
	if err := s.deps.Store.AddParent(parent); err != nil {
		if errors.Is(err, repository.ErrParentUsernameTaken) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to add parent: %w", err)
	}

	s.identity = models.Identity{Role: models.RoleParent, ID: parent.ID}
	s.currentScreen = models.ScreenParentHome
	s.deps.Logger.Info("parent signed up", zap.String("parent_id", parent.ID))
	return parent, nil
}

// CreateChild adds a child with zeroed counters to the logged-in parent
func (s *Session) CreateChild(name, username, password string) (*models.Child, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	parentID, err := s.requireRole(models.RoleParent)
	if err != nil {
		return nil, err
	}

	child := &models.Child{
		ID:              s.deps.NewID(),
		Name:            name,
		Username:        username,
		Password:        password,
		Avatar:          models.DefaultAvatar,
		ExerciseHistory: []models.ExerciseRecord{},
	}
	if !s.deps.Store.AddChild(parentID, child) {
		return nil, ErrPermissionDenied
	}

	s.currentScreen = models.ScreenParentHome
	s.deps.Logger.Info("child created", zap.String("parent_id", parentID), zap.String("child_id", child.ID))
	return child, nil
}

// SelectChild makes one of the parent's children the subject of the
// performance screens. IDs outside the parent's roster are ignored.
func (s *Session) SelectChild(childID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	parentID, err := s.requireRole(models.RoleParent)
	if err != nil {
		return err
	}
	if _, owner := s.deps.Store.GetChild(childID); owner == parentID {
		s.selectedChildID = childID
	}
	return nil
}

// SelectGroup selects a performance group and shows its subject breakdown
func (s *Session) SelectGroup(group models.Group) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.requireRole(models.RoleParent); err != nil {
		return err
	}
	if !group.Valid() {
		return fmt.Errorf("%w: unknown group %q", ErrInvalidSelection, group)
	}
	s.selectedGroup = group
	s.currentScreen = models.ScreenExerciseCategories
	return nil
}

// SelectSubject selects a subject and shows the matching exercise list
func (s *Session) SelectSubject(subject string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.requireRole(models.RoleParent); err != nil {
		return err
	}
	parsed, ok := models.ParseSubject(subject)
	if !ok {
		return fmt.Errorf("%w: unknown subject %q", ErrInvalidSelection, subject)
	}
	s.selectedSubject = string(parsed)
	s.currentScreen = models.ScreenExerciseList
	return nil
}

// DeleteChild removes a child and its history from the parent's roster.
// Unknown IDs are a no-op.
func (s *Session) DeleteChild(childID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	parentID, err := s.requireRole(models.RoleParent)
	if err != nil {
		return err
	}
	if s.deps.Store.DeleteChild(parentID, childID) {
		s.deps.Logger.Info("child deleted", zap.String("parent_id", parentID), zap.String("child_id", childID))
	}
	if s.selectedChildID == childID {
		s.selectedChildID = ""
	}
	return nil
}

// SubmitQuizAnswer records an answer for the logged-in child. The record is
// appended and the counters updated in one store write. Identical submissions
// are recorded twice.
func (s *Session) SubmitQuizAnswer(ctx context.Context, in models.ExerciseInput) (models.ExerciseRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	childID, err := s.requireRole(models.RoleChild)
	if err != nil {
		return models.ExerciseRecord{}, err
	}
	if err := validateInput(in); err != nil {
		return models.ExerciseRecord{}, err
	}

	record := NewExerciseRecord(s.deps.NewID(), s.deps.Now(), in)
	child := s.deps.Store.UpdateChild(childID, func(c *models.Child) {
		ApplyAnswer(c, record)
	})
	if child == nil {
		return models.ExerciseRecord{}, ErrPermissionDenied
	}

	if s.deps.Metrics != nil {
		s.deps.Metrics.ObserveAnswer(string(record.Subject), record.IsCorrect)
	}
	s.journal(ctx, child, record)
	return record, nil
}

// journal writes to the optional answer journal. Failures never undo the
// in-memory update.
func (s *Session) journal(ctx context.Context, child *models.Child, record models.ExerciseRecord) {
	if s.deps.Journal == nil {
		return
	}
	if _, err := s.deps.Journal.Append(ctx, child.ID, child.Name, record); err != nil {
		s.deps.Logger.Error("failed to journal answer",
			zap.String("child_id", child.ID),
			zap.String("record_id", record.ID),
			zap.Error(err))
		if s.deps.Metrics != nil {
			s.deps.Metrics.JournalFailures.Inc()
		}
	}
}

func validateInput(in models.ExerciseInput) error {
	if in.UserAnswer < 0 || in.UserAnswer >= len(in.Options) {
		return fmt.Errorf("%w: answer index %d out of range", ErrInvalidAnswer, in.UserAnswer)
	}
	if in.CorrectAnswer < 0 || in.CorrectAnswer >= len(in.Options) {
		return fmt.Errorf("%w: correct answer index %d out of range", ErrInvalidAnswer, in.CorrectAnswer)
	}
	if in.TimeSpent < 0 {
		return fmt.Errorf("%w: negative time spent", ErrInvalidAnswer)
	}
	return nil
}

// UpdateParentInfo changes the logged-in parent's username and e-mail
func (s *Session) UpdateParentInfo(username, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	parentID, err := s.requireRole(models.RoleParent)
	if err != nil {
		return err
	}
	if s.deps.Store.UpdateParent(parentID, func(p *models.Parent) {
		p.Username = username
		p.Email = email
	}) == nil {
		return ErrPermissionDenied
	}
	return nil
}

// UpdateChildInfo changes the logged-in child's name and username
func (s *Session) UpdateChildInfo(name, username string) error {
	return s.updateOwnChild(func(c *models.Child) {
		c.Name = name
		c.Username = username
	})
}

// UpdateChildAvatar changes the logged-in child's avatar
func (s *Session) UpdateChildAvatar(avatar string) error {
	return s.updateOwnChild(func(c *models.Child) {
		c.Avatar = avatar
	})
}

func (s *Session) updateOwnChild(fn func(*models.Child)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	childID, err := s.requireRole(models.RoleChild)
	if err != nil {
		return err
	}
	if s.deps.Store.UpdateChild(childID, fn) == nil {
		return ErrPermissionDenied
	}
	return nil
}

// UpdateParentChildInfo lets a parent edit one of its children. Unknown or
// foreign IDs are a no-op.
func (s *Session) UpdateParentChildInfo(childID, name, username, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	parentID, err := s.requireRole(models.RoleParent)
	if err != nil {
		return err
	}
	s.deps.Store.UpdateParentChild(parentID, childID, func(c *models.Child) {
		c.Name = name
		c.Username = username
		c.Password = password
	})
	return nil
}

// Navigate moves to a screen. Non-empty fields of nav replace the current
// topic, group and subject; empty fields leave them as they are.
func (s *Session) Navigate(screen models.Screen, nav models.NavContext) error {
	if !screen.Valid() {
		return fmt.Errorf("%w: unknown screen %q", ErrInvalidSelection, screen)
	}
	if nav.Group != "" && !nav.Group.Valid() {
		return fmt.Errorf("%w: unknown group %q", ErrInvalidSelection, nav.Group)
	}
	var subject models.Subject
	if nav.Subject != "" {
		parsed, ok := models.ParseSubject(nav.Subject)
		if !ok {
			return fmt.Errorf("%w: unknown subject %q", ErrInvalidSelection, nav.Subject)
		}
		subject = parsed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentScreen = screen
	if nav.Topic != "" {
		s.currentTopic = nav.Topic
	}
	if nav.Group != "" {
		s.selectedGroup = nav.Group
	}
	if subject != "" {
		s.selectedSubject = string(subject)
	}
	return nil
}

// Identity returns the tagged reference to the logged-in account
func (s *Session) Identity() models.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity
}

// State returns a snapshot of the session with the account and the selected
// child resolved from the identity store
func (s *Session) State() models.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := models.SessionState{
		SelectedGroup:   s.selectedGroup,
		SelectedSubject: s.selectedSubject,
		CurrentScreen:   s.currentScreen,
		CurrentTopic:    s.currentTopic,
	}

	user := s.currentUser()
	if user == nil {
		return state
	}
	state.CurrentUser = user
	state.UserType = user.Role
	if user.Parent != nil && s.selectedChildID != "" {
		state.SelectedChild = user.Parent.FindChild(s.selectedChildID)
	}
	return state
}

// CurrentParent returns the logged-in parent
func (s *Session) CurrentParent() (*models.Parent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	parentID, err := s.requireRole(models.RoleParent)
	if err != nil {
		return nil, err
	}
	parent := s.deps.Store.GetParent(parentID)
	if parent == nil {
		return nil, ErrPermissionDenied
	}
	return parent, nil
}

// CurrentChild returns the logged-in child
func (s *Session) CurrentChild() (*models.Child, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	childID, err := s.requireRole(models.RoleChild)
	if err != nil {
		return nil, err
	}
	child, _ := s.deps.Store.GetChild(childID)
	if child == nil {
		return nil, ErrPermissionDenied
	}
	return child, nil
}

// SelectedChild returns the child the logged-in parent selected
func (s *Session) SelectedChild() (*models.Child, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	parentID, err := s.requireRole(models.RoleParent)
	if err != nil {
		return nil, err
	}
	if s.selectedChildID == "" {
		return nil, ErrNoChildSelected
	}
	child, owner := s.deps.Store.GetChild(s.selectedChildID)
	if child == nil || owner != parentID {
		return nil, ErrNoChildSelected
	}
	return child, nil
}

// Selection returns the selected group and subject
func (s *Session) Selection() (models.Group, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedGroup, s.selectedSubject
}

// CurrentTopic returns the quiz topic last navigated to
func (s *Session) CurrentTopic() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentTopic
}

// requireRole returns the account ID if the session is logged in with role.
// Callers hold s.mu.
func (s *Session) requireRole(role models.Role) (string, error) {
	if !s.identity.LoggedIn() || s.identity.Role != role {
		return "", ErrPermissionDenied
	}
	return s.identity.ID, nil
}

// currentUser resolves the identity. It returns nil when nobody is logged in
// or the account no longer exists. Callers hold s.mu.
func (s *Session) currentUser() *models.CurrentUser {
	if !s.identity.LoggedIn() {
		return nil
	}
	switch s.identity.Role {
	case models.RoleParent:
		if p := s.deps.Store.GetParent(s.identity.ID); p != nil {
			return &models.CurrentUser{Role: models.RoleParent, Parent: p}
		}
	case models.RoleChild:
		if c, _ := s.deps.Store.GetChild(s.identity.ID); c != nil {
			return &models.CurrentUser{Role: models.RoleChild, Child: c}
		}
	}
	return nil
}
