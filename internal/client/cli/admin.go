package cli

import (
	"context"
	"fmt"
	"os"
)

// requireAdmin gates the admin commands locally. The backend enforces the
// real authorization; this only keeps non-admins out of prompts that would
// fail anyway.
func (a *App) requireAdmin() bool {
	if !a.requireLogin() {
		return false
	}
	if a.isAdmin() {
		return true
	}
	printlnFn("Cette commande est réservée aux administrateurs.")
	return false
}

// Users lists every registered account.
func (a *App) Users(ctx context.Context) error {
	if !a.requireAdmin() {
		return nil
	}

	users, err := a.admin.Users(ctx)
	if err != nil {
		return a.fail(ctx, err)
	}

	if len(users) == 0 {
		printlnFn("Aucun utilisateur.")
		return nil
	}
	if len(users) == 1 {
		printlnFn("1 utilisateur")
	} else {
		printlnFn(fmt.Sprintf("%d utilisateurs", len(users)))
	}
	renderUsers(users)
	return nil
}

// DeleteUser deletes one account after confirmation, then invokes the
// refresh callback once to re-list the users.
func (a *App) DeleteUser(ctx context.Context, refresh func(context.Context) error) error {
	if !a.requireAdmin() {
		return nil
	}

	id, err := getSimpleText(a.reader, "Enter user id to delete", os.Stdout)
	if err != nil {
		return err
	}

	ok, err := confirm(a.reader, "Êtes-vous sûr de vouloir supprimer cet utilisateur ?", os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		printlnFn("Suppression annulée.")
		return nil
	}

	if err := a.admin.DeleteUser(ctx, id); err != nil {
		return a.fail(ctx, err)
	}

	printlnFn("Utilisateur supprimé avec succès")
	if refresh != nil {
		return refresh(ctx)
	}
	return nil
}

// Stats shows the dashboard counters.
func (a *App) Stats(ctx context.Context) error {
	if !a.requireAdmin() {
		return nil
	}

	stats, err := a.admin.Stats(ctx)
	if err != nil {
		return a.fail(ctx, err)
	}

	printlnFn("Utilisateurs :", stats.TotalUsers)
	printlnFn("Produits :", stats.TotalProducts)
	return nil
}
