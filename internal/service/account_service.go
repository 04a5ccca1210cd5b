package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"quizowl/internal/credentials"
	"quizowl/internal/repository"
)

// AccountService handles the account help features around the session:
// username reminders, the contact form and child credential suggestions
type AccountService struct {
	store *repository.IdentityStore
	email *EmailService
	log   *zap.Logger
}

// NewAccountService creates a new account service
func NewAccountService(store *repository.IdentityStore, email *EmailService, log *zap.Logger) *AccountService {
	return &AccountService{store: store, email: email, log: log}
}

// ForgotPassword sends a username reminder if a parent uses the address.
// It reports nothing back; unknown addresses look the same as known ones.
func (s *AccountService) ForgotPassword(ctx context.Context, email string) {
	parent := s.store.FindParentByEmail(email)
	if parent == nil {
		s.log.Info("password help requested for unknown address")
		return
	}
	if err := s.email.SendUsernameReminder(ctx, parent.Email, parent.Username); err != nil {
		s.log.Error("failed to send username reminder", zap.String("parent_id", parent.ID), zap.Error(err))
	}
}

// Contact forwards a contact form message
func (s *AccountService) Contact(ctx context.Context, msg ContactMessage) error {
	if err := s.email.SendContactMessage(ctx, msg); err != nil {
		return fmt.Errorf("failed to forward contact message: %w", err)
	}
	return nil
}

// SuggestChildCredentials proposes a username no child uses yet and a password
func (s *AccountService) SuggestChildCredentials() (credentials.Suggestion, error) {
	suggestion, err := credentials.Suggest(s.store.ChildUsernameExists)
	if err != nil {
		return credentials.Suggestion{}, fmt.Errorf("failed to generate credentials: %w", err)
	}
	return suggestion, nil
}
