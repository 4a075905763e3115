package cli

import (
	"context"
	"os"
)

// RequestReset asks the backend to email a password-reset token.
func (a *App) RequestReset(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter your account email", os.Stdout)
	if err != nil {
		return err
	}

	msg, err := a.profile.RequestReset(ctx, email)
	if err != nil {
		return a.fail(ctx, err)
	}

	printlnFn(msg)
	printlnFn("Utilisez 'newpass' avec le jeton reçu par email pour choisir un nouveau mot de passe.")
	return nil
}

// ConfirmReset finishes the reset flow with the emailed token. The new
// password must be at least 8 characters with an upper-case letter, a
// lower-case letter and a digit.
func (a *App) ConfirmReset(ctx context.Context) error {
	token, err := getSimpleText(a.reader, "Enter the reset token from the email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword("New password", os.Stdout)
	if err != nil {
		return err
	}
	confirmPw, err := getPassword("Confirm new password", os.Stdout)
	if err != nil {
		return err
	}

	msg, err := a.profile.ConfirmReset(ctx, token, password, confirmPw)
	if err != nil {
		return a.fail(ctx, err)
	}

	printlnFn(msg)
	return nil
}
