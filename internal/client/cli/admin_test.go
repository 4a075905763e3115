package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/cheikhtourad19/artshop-cli/internal/client/models"
)

type fakeAdmin struct {
	users     []models.User
	usersErr  error
	userCalls int
	deleted   []string
	stats     *models.Stats
}

func (f *fakeAdmin) Users(context.Context) ([]models.User, error) {
	f.userCalls++
	return f.users, f.usersErr
}
func (f *fakeAdmin) DeleteUser(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}
func (f *fakeAdmin) Stats(context.Context) (*models.Stats, error) {
	return f.stats, nil
}

func adminApp(t *testing.T) *App {
	t.Helper()
	return loggedInApp(t, models.User{Nom: "Root", Email: "root@example.org", IsAdmin: true})
}

func TestUsers_NonAdminRejected(t *testing.T) {
	a := loggedInApp(t, models.User{Nom: "Ben", Email: "ben@example.org"})
	fa := &fakeAdmin{users: []models.User{{ID: "u1"}}}
	a.admin = fa
	printed := capturePrintln(t)

	if err := a.Users(context.Background()); err != nil {
		t.Fatalf("Users err: %v", err)
	}
	if fa.userCalls != 0 {
		t.Fatal("backend called for non-admin")
	}
	if !strings.Contains(strings.Join(*printed, "\n"), "administrateurs") {
		t.Fatalf("got %v", *printed)
	}
}

func TestUsers_ListsAccounts(t *testing.T) {
	a := adminApp(t)
	a.admin = &fakeAdmin{users: []models.User{
		{ID: "u1", Nom: "Ben", Email: "ben@example.org"},
		{ID: "u2", Nom: "Ali", Email: "ali@example.org"},
	}}
	printed := capturePrintln(t)

	if err := a.Users(context.Background()); err != nil {
		t.Fatalf("Users err: %v", err)
	}
	if (*printed)[0] != "2 utilisateurs" {
		t.Fatalf("count label missing, got %v", *printed)
	}
}

func TestDeleteUser_ConfirmAndRefresh(t *testing.T) {
	a := adminApp(t)
	fa := &fakeAdmin{}
	a.admin = fa
	printed := capturePrintln(t)

	stubInputs(t, []string{"u2"}, "")
	stubConfirm(t, true)

	refreshes := 0
	if err := a.DeleteUser(context.Background(), func(context.Context) error {
		refreshes++
		return nil
	}); err != nil {
		t.Fatalf("DeleteUser err: %v", err)
	}

	if len(fa.deleted) != 1 || fa.deleted[0] != "u2" {
		t.Fatalf("deleted = %v", fa.deleted)
	}
	if refreshes != 1 {
		t.Fatalf("refreshes = %d, want 1", refreshes)
	}
	if !strings.Contains(strings.Join(*printed, "\n"), "Utilisateur supprimé avec succès") {
		t.Fatalf("success message missing, got %v", *printed)
	}
}

func TestStats(t *testing.T) {
	a := adminApp(t)
	a.admin = &fakeAdmin{stats: &models.Stats{TotalUsers: 12, TotalProducts: 34}}
	printed := capturePrintln(t)

	if err := a.Stats(context.Background()); err != nil {
		t.Fatalf("Stats err: %v", err)
	}
	joined := strings.Join(*printed, "\n")
	if !strings.Contains(joined, "Utilisateurs") || !strings.Contains(joined, "Produits") {
		t.Fatalf("got %v", *printed)
	}
}
