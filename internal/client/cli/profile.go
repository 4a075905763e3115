package cli

import (
	"context"
	"os"

	"github.com/cheikhtourad19/artshop-cli/internal/client/models"
)

// Profile fetches and displays the current account.
func (a *App) Profile(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	user, err := a.profile.Get(ctx)
	if err != nil {
		return a.fail(ctx, err)
	}

	printlnFn("Nom:", user.Nom)
	printlnFn("Prénom:", user.Prenom)
	printlnFn("Email:", user.Email)
	printlnFn("Téléphone:", user.Phone)
	if user.IsAdmin {
		printlnFn("Rôle: administrateur")
	}
	return nil
}

// UpdateProfile edits the account fields. Pressing Enter on a field keeps
// its current value.
func (a *App) UpdateProfile(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	current, err := a.profile.Get(ctx)
	if err != nil {
		return a.fail(ctx, err)
	}

	upd := models.ProfileUpdate{
		Nom:    current.Nom,
		Prenom: current.Prenom,
		Email:  current.Email,
		Phone:  current.Phone,
	}
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Nom [" + upd.Nom + "]", &upd.Nom},
		{"Prénom [" + upd.Prenom + "]", &upd.Prenom},
		{"Email [" + upd.Email + "]", &upd.Email},
		{"Téléphone [" + upd.Phone + "]", &upd.Phone},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, os.Stdout)
		if err != nil {
			return err
		}
		if v != "" {
			*f.dst = v
		}
	}

	user, err := a.profile.Update(ctx, upd)
	if err != nil {
		return a.fail(ctx, err)
	}

	printlnFn("Profil mis à jour avec succès")
	printlnFn("Bonjour " + user.FullName() + " !")
	return nil
}

// ChangePassword asks for the current password, the new one and its
// confirmation, then applies the change.
func (a *App) ChangePassword(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	currentPw, err := getPassword("Current password", os.Stdout)
	if err != nil {
		return err
	}
	nextPw, err := getPassword("New password", os.Stdout)
	if err != nil {
		return err
	}
	confirmPw, err := getPassword("Confirm new password", os.Stdout)
	if err != nil {
		return err
	}

	msg, err := a.profile.ChangePassword(ctx, currentPw, nextPw, confirmPw)
	if err != nil {
		return a.fail(ctx, err)
	}

	printlnFn(msg)
	return nil
}
