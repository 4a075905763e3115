package cli

import (
	"context"
	"errors"

	"github.com/cheikhtourad19/artshop-cli/internal/client/api"
)

// fail converts a handler error into the user-facing message. A 401 clears
// the local session before reporting, so the next prompt shows the user as
// logged out. The original error is returned unchanged for the caller.
func (a *App) fail(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, api.ErrUnauthorized):
		_ = a.session.Logout(ctx)
		printlnFn("Votre session a expiré. Veuillez vous reconnecter.")
	case errors.Is(err, api.ErrUnavailable):
		printlnFn("Erreur réseau : impossible de joindre le serveur.")
	default:
		printlnFn("Erreur :", err.Error())
	}
	return err
}
