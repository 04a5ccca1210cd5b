package service

import (
	"context"
	"testing"

	"go.uber.org/zap"
)

func newTestAccountService() (*AccountService, *fakeSender) {
	sender := &fakeSender{}
	email := newEmailServiceWithClient(sender, testEmailOptions(), zap.NewNop())
	return NewAccountService(NewSeededIdentityStore(), email, zap.NewNop()), sender
}

func TestAccountService_ForgotPassword(t *testing.T) {
	tests := []struct {
		name  string
		email string
		sent  int
	}{
		{"known address", "sarah@example.com", 1},
		{"known address in other case", "Sarah@Example.com", 1},
		{"unknown address", "nobody@example.com", 0},
		{"empty address", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, sender := newTestAccountService()
			svc.ForgotPassword(context.Background(), tt.email)
			if len(sender.inputs) != tt.sent {
				t.Fatalf("sent %d emails, want %d", len(sender.inputs), tt.sent)
			}
			if tt.sent == 1 && sender.inputs[0].Destination.ToAddresses[0] != "sarah@example.com" {
				t.Errorf("reminder sent to %v", sender.inputs[0].Destination.ToAddresses)
			}
		})
	}
}

func TestAccountService_Contact(t *testing.T) {
	svc, sender := newTestAccountService()

	if err := svc.Contact(context.Background(), ContactMessage{Name: "A", Email: "a@example.com", Subject: "S", Message: "M"}); err != nil {
		t.Fatalf("Contact() error = %v", err)
	}
	if len(sender.inputs) != 1 {
		t.Errorf("sent %d emails, want 1", len(sender.inputs))
	}
}

func TestAccountService_SuggestChildCredentials(t *testing.T) {
	svc, _ := newTestAccountService()

	suggestion, err := svc.SuggestChildCredentials()
	if err != nil {
		t.Fatalf("SuggestChildCredentials() error = %v", err)
	}
	if suggestion.Username == "" || suggestion.Password == "" {
		t.Errorf("suggestion = %+v, want both fields set", suggestion)
	}
	if svc.store.ChildUsernameExists(suggestion.Username) {
		t.Errorf("suggested username %q is taken", suggestion.Username)
	}
}
