package cli

import (
	"context"
	"os"

	"github.com/cheikhtourad19/artshop-cli/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getMultiline = GetMultiline
var confirm = Confirm

// Login prompts for credentials and authenticates against the backend. On
// success the session is persisted and a greeting printed; on failure the
// backend's message is shown and the session stays anonymous.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.session.Login(ctx, email, password)
	if err != nil {
		return a.fail(ctx, err)
	}

	printlnFn("Bonjour " + user.FullName() + " !")
	return nil
}

// Register collects the signup form and creates the account. The user is
// then invited to log in; registration does not start a session.
func (a *App) Register(ctx context.Context) error {
	req := models.RegisterRequest{}
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Enter family name (nom)", &req.Nom},
		{"Enter given name (prenom)", &req.Prenom},
		{"Enter phone", &req.Phone},
		{"Enter email", &req.Email},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, os.Stdout)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	req.Password = password

	if err := a.session.Register(ctx, req); err != nil {
		return a.fail(ctx, err)
	}

	printlnFn("Compte créé avec succès. Vous pouvez maintenant vous connecter avec 'login'.")
	return nil
}

// Logout ends the session locally. Safe to call when already logged out.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return a.fail(ctx, err)
	}
	printlnFn("Déconnecté.")
	return nil
}

// requireLogin prints the standard message and reports whether the command
// may proceed.
func (a *App) requireLogin() bool {
	if a.isLoggedIn() {
		return true
	}
	printlnFn("You must be logged in to do this. Use 'login' first.")
	return false
}
