package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cheikhtourad19/artshop-cli/internal/client/models"
	"github.com/cheikhtourad19/artshop-cli/internal/logging"
)

func TestPasswordMeetsRules(t *testing.T) {
	tests := []struct {
		name string
		pwd  string
		want bool
	}{
		{name: "all rules met", pwd: "Abcdef12", want: true},
		{name: "too short", pwd: "Abc1", want: false},
		{name: "no upper", pwd: "abcdef12", want: false},
		{name: "no lower", pwd: "ABCDEF12", want: false},
		{name: "no digit", pwd: "Abcdefgh", want: false},
		{name: "empty", pwd: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PasswordMeetsRules(tt.pwd))
		})
	}
}

func TestProfileService_UpdateValidation(t *testing.T) {
	f := &fakeClient{user: &models.User{Nom: "Ben"}}
	s := NewProfileService(f, logging.NewNop())
	ctx := context.Background()

	_, err := s.Update(ctx, models.ProfileUpdate{Nom: "", Prenom: "Ali"})
	assert.Error(t, err)
	assert.Nil(t, f.updated)

	_, err = s.Update(ctx, models.ProfileUpdate{Nom: "Ben", Prenom: "Ali"})
	require.NoError(t, err)
	require.NotNil(t, f.updated)
	assert.Equal(t, "Ben", f.updated.Nom)
}

func TestProfileService_ChangePassword(t *testing.T) {
	f := &fakeClient{pwMsg: "Mot de passe mis à jour"}
	s := NewProfileService(f, logging.NewNop())
	ctx := context.Background()

	t.Run("confirmation mismatch", func(t *testing.T) {
		_, err := s.ChangePassword(ctx, "old", "newpass", "different")
		require.EqualError(t, err, "les mots de passe ne correspondent pas")
	})

	t.Run("too short", func(t *testing.T) {
		_, err := s.ChangePassword(ctx, "old", "abc", "abc")
		require.EqualError(t, err, "le mot de passe doit contenir au moins 6 caractères")
	})

	t.Run("success", func(t *testing.T) {
		msg, err := s.ChangePassword(ctx, "old", "newpass", "newpass")
		require.NoError(t, err)
		assert.Equal(t, "Mot de passe mis à jour", msg)
	})
}

func TestProfileService_RequestReset(t *testing.T) {
	f := &fakeClient{resetMsg: "Email envoyé"}
	s := NewProfileService(f, logging.NewNop())
	ctx := context.Background()

	_, err := s.RequestReset(ctx, "  ")
	assert.Error(t, err)

	msg, err := s.RequestReset(ctx, "a@b.c")
	require.NoError(t, err)
	assert.Equal(t, "Email envoyé", msg)
}

func TestProfileService_ConfirmReset(t *testing.T) {
	f := &fakeClient{resetMsg: "Mot de passe réinitialisé"}
	s := NewProfileService(f, logging.NewNop())
	ctx := context.Background()

	t.Run("weak password rejected before any call", func(t *testing.T) {
		_, err := s.ConfirmReset(ctx, "tok", "weak", "weak")
		require.EqualError(t, err, "le mot de passe ne respecte pas tous les critères requis")
	})

	t.Run("mismatch rejected", func(t *testing.T) {
		_, err := s.ConfirmReset(ctx, "tok", "Abcdef12", "Abcdef13")
		require.EqualError(t, err, "les mots de passe ne correspondent pas")
	})

	t.Run("success", func(t *testing.T) {
		msg, err := s.ConfirmReset(ctx, "tok", "Abcdef12", "Abcdef12")
		require.NoError(t, err)
		assert.Equal(t, "Mot de passe réinitialisé", msg)
	})
}
