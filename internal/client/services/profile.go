package services

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/cheikhtourad19/artshop-cli/internal/client/api"
	"github.com/cheikhtourad19/artshop-cli/internal/client/models"
	"github.com/cheikhtourad19/artshop-cli/internal/logging"
)

// ProfileService covers the account pages: profile read/update, password
// change, and the two-step password-reset flow.
type ProfileService interface {
	Get(ctx context.Context) (*models.User, error)
	Update(ctx context.Context, upd models.ProfileUpdate) (*models.User, error)
	ChangePassword(ctx context.Context, current, next, confirm string) (string, error)
	RequestReset(ctx context.Context, email string) (string, error)
	ConfirmReset(ctx context.Context, token, password, confirm string) (string, error)
}

type profileService struct {
	api api.Client
	log logging.Logger
}

// NewProfileService constructs a ProfileService bound to the given API client.
func NewProfileService(client api.Client, log logging.Logger) ProfileService {
	return &profileService{api: client, log: log}
}

func (s *profileService) Get(ctx context.Context) (*models.User, error) {
	return s.api.GetProfile(ctx)
}

func (s *profileService) Update(ctx context.Context, upd models.ProfileUpdate) (*models.User, error) {
	if strings.TrimSpace(upd.Nom) == "" || strings.TrimSpace(upd.Prenom) == "" {
		return nil, fmt.Errorf("please fill in all required fields")
	}
	return s.api.UpdateProfile(ctx, upd)
}

// ChangePassword validates locally before any network call: the new password
// and its confirmation must match and be at least 6 characters.
func (s *profileService) ChangePassword(ctx context.Context, current, next, confirm string) (string, error) {
	if next != confirm {
		return "", fmt.Errorf("les mots de passe ne correspondent pas")
	}
	if len(next) < 6 {
		return "", fmt.Errorf("le mot de passe doit contenir au moins 6 caractères")
	}
	return s.api.UpdatePassword(ctx, current, next)
}

func (s *profileService) RequestReset(ctx context.Context, email string) (string, error) {
	if strings.TrimSpace(email) == "" {
		return "", fmt.Errorf("email is required")
	}
	return s.api.RequestPasswordReset(ctx, email)
}

// ConfirmReset applies the reset-form rules: 8 characters minimum with an
// upper-case letter, a lower-case letter and a digit, and a matching
// confirmation.
func (s *profileService) ConfirmReset(ctx context.Context, token, password, confirm string) (string, error) {
	if !PasswordMeetsRules(password) {
		return "", fmt.Errorf("le mot de passe ne respecte pas tous les critères requis")
	}
	if password != confirm {
		return "", fmt.Errorf("les mots de passe ne correspondent pas")
	}
	return s.api.ConfirmPasswordReset(ctx, token, password)
}

// PasswordMeetsRules reports whether pwd satisfies the reset-form strength
// rules: at least 8 characters, one upper, one lower, one digit.
func PasswordMeetsRules(pwd string) bool {
	if len(pwd) < 8 {
		return false
	}
	var upper, lower, digit bool
	for _, r := range pwd {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit
}
