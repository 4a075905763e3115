package cli

import (
	"bufio"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/cheikhtourad19/artshop-cli/internal/client/api"
	"github.com/cheikhtourad19/artshop-cli/internal/client/models"
	"github.com/cheikhtourad19/artshop-cli/internal/client/services"
)

type fakeProducts struct {
	products  []models.Product
	listErr   error
	listCalls int
	detail    *models.ProductDetail
	getErr    error
	deleted   []string
	deleteErr error
	edited    map[string]models.ProductUpdate
}

func (f *fakeProducts) List(context.Context) ([]models.Product, error) {
	f.listCalls++
	return f.products, f.listErr
}
func (f *fakeProducts) Get(context.Context, string) (*models.ProductDetail, error) {
	return f.detail, f.getErr
}
func (f *fakeProducts) Add(context.Context, models.NewProduct, bool, services.EnhanceProgress) (string, error) {
	return "", nil
}
func (f *fakeProducts) Edit(_ context.Context, id string, upd models.ProductUpdate) error {
	if f.edited == nil {
		f.edited = map[string]models.ProductUpdate{}
	}
	f.edited[id] = upd
	return nil
}
func (f *fakeProducts) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return f.deleteErr
}
func (f *fakeProducts) GenerateDescription(context.Context, string) (string, error) {
	return "", nil
}

func stubConfirm(t *testing.T, answer bool) {
	t.Helper()
	orig := confirm
	confirm = func(_ *bufio.Reader, _ string, _ io.Writer) (bool, error) { return answer, nil }
	t.Cleanup(func() { confirm = orig })
}

func threeProducts() []models.Product {
	return []models.Product{
		{ID: "p1", Title: "Tapis berbère", Price: 120.5},
		{ID: "p2", Title: "Vase", Price: 45},
		{ID: "p3", Title: "Panier", Price: 30},
	}
}

func TestProducts_CountLabel(t *testing.T) {
	a := newTestApp(t, &fakeAuth{})
	a.products = &fakeProducts{products: threeProducts()}
	printed := capturePrintln(t)

	if err := a.Products(context.Background()); err != nil {
		t.Fatalf("Products err: %v", err)
	}

	if len(*printed) == 0 || (*printed)[0] != "3 produits" {
		t.Fatalf("count label missing, got %v", *printed)
	}
}

func TestProducts_SingularLabel(t *testing.T) {
	a := newTestApp(t, &fakeAuth{})
	a.products = &fakeProducts{products: threeProducts()[:1]}
	printed := capturePrintln(t)

	if err := a.Products(context.Background()); err != nil {
		t.Fatalf("Products err: %v", err)
	}
	if (*printed)[0] != "1 produit" {
		t.Fatalf("got %v", *printed)
	}
}

func TestProducts_EmptyState(t *testing.T) {
	a := newTestApp(t, &fakeAuth{})
	a.products = &fakeProducts{products: []models.Product{}}
	printed := capturePrintln(t)

	if err := a.Products(context.Background()); err != nil {
		t.Fatalf("Products err: %v", err)
	}
	if len(*printed) != 1 || (*printed)[0] != "Aucun produit disponible" {
		t.Fatalf("empty state not rendered, got %v", *printed)
	}
}

func TestProducts_ErrorIsNotEmptyState(t *testing.T) {
	a := newTestApp(t, &fakeAuth{})
	a.products = &fakeProducts{listErr: &testErr{"boom"}}
	printed := capturePrintln(t)

	if err := a.Products(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	for _, line := range *printed {
		if line == "Aucun produit disponible" {
			t.Fatal("error rendered as empty state")
		}
	}
}

func TestSearch_FiltersAndCounts(t *testing.T) {
	a := newTestApp(t, &fakeAuth{})
	a.products = &fakeProducts{products: threeProducts()}
	printed := capturePrintln(t)

	if err := a.Search(context.Background(), "tapis"); err != nil {
		t.Fatalf("Search err: %v", err)
	}

	joined := strings.Join(*printed, "\n")
	if !strings.Contains(joined, "1 produit trouvé sur 3 au total") {
		t.Fatalf("search count missing, got %v", *printed)
	}
}

func TestSearch_NoMatch(t *testing.T) {
	a := newTestApp(t, &fakeAuth{})
	a.products = &fakeProducts{products: threeProducts()}
	printed := capturePrintln(t)

	if err := a.Search(context.Background(), "bijoux"); err != nil {
		t.Fatalf("Search err: %v", err)
	}
	if !strings.Contains(strings.Join(*printed, "\n"), "Aucun produit trouvé") {
		t.Fatalf("got %v", *printed)
	}
}

func TestDeleteProduct_RefreshExactlyOnce(t *testing.T) {
	a := loggedInApp(t, models.User{Nom: "Ben", Email: "ben@example.org"})
	fp := &fakeProducts{}
	a.products = fp
	capturePrintln(t)

	stubInputs(t, []string{"p2"}, "")
	stubConfirm(t, true)

	refreshes := 0
	refresh := func(context.Context) error { refreshes++; return nil }

	if err := a.DeleteProduct(context.Background(), refresh); err != nil {
		t.Fatalf("DeleteProduct err: %v", err)
	}

	if len(fp.deleted) != 1 || fp.deleted[0] != "p2" {
		t.Fatalf("deleted = %v", fp.deleted)
	}
	if refreshes != 1 {
		t.Fatalf("refreshes = %d, want exactly 1", refreshes)
	}
}

func TestDeleteProduct_Declined(t *testing.T) {
	a := loggedInApp(t, models.User{Nom: "Ben", Email: "ben@example.org"})
	fp := &fakeProducts{}
	a.products = fp
	capturePrintln(t)

	stubInputs(t, []string{"p2"}, "")
	stubConfirm(t, false)

	refreshes := 0
	if err := a.DeleteProduct(context.Background(), func(context.Context) error {
		refreshes++
		return nil
	}); err != nil {
		t.Fatalf("DeleteProduct err: %v", err)
	}

	if len(fp.deleted) != 0 {
		t.Fatalf("delete called despite decline: %v", fp.deleted)
	}
	if refreshes != 0 {
		t.Fatalf("refresh called despite decline")
	}
}

func TestDeleteProduct_RequiresLogin(t *testing.T) {
	a := newTestApp(t, &fakeAuth{})
	fp := &fakeProducts{}
	a.products = fp
	capturePrintln(t)

	if err := a.DeleteProduct(context.Background(), nil); err != nil {
		t.Fatalf("DeleteProduct err: %v", err)
	}
	if len(fp.deleted) != 0 {
		t.Fatal("delete must not run for anonymous users")
	}
}

func TestFail_UnauthorizedEndsSession(t *testing.T) {
	a := loggedInApp(t, models.User{Nom: "Ben", Email: "ben@example.org"})
	a.products = &fakeProducts{listErr: &api.Error{Status: 401, Msg: "jwt expired"}}
	printed := capturePrintln(t)

	if err := a.Products(context.Background()); err == nil {
		t.Fatal("expected error")
	}

	if a.isLoggedIn() {
		t.Fatal("session must be cleared on 401")
	}
	if !strings.Contains(strings.Join(*printed, "\n"), "session a expiré") {
		t.Fatalf("expiry message missing, got %v", *printed)
	}
}

func TestFail_Unavailable(t *testing.T) {
	a := newTestApp(t, &fakeAuth{})
	a.products = &fakeProducts{listErr: api.ErrUnavailable}
	printed := capturePrintln(t)

	if err := a.Products(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(strings.Join(*printed, "\n"), "Erreur réseau") {
		t.Fatalf("network message missing, got %v", *printed)
	}
}

func TestShow_RendersArtisanContact(t *testing.T) {
	a := newTestApp(t, &fakeAuth{})
	a.products = &fakeProducts{detail: &models.ProductDetail{
		Product: models.Product{ID: "p1", Title: "Tapis", Price: 120},
		Artisan: &models.Artisan{Nom: "Ben", Prenom: "Ali", Phone: "21612345678"},
	}}
	printed := capturePrintln(t)

	stubInputs(t, []string{"p1"}, "")

	if err := a.Show(context.Background()); err != nil {
		t.Fatalf("Show err: %v", err)
	}

	joined := strings.Join(*printed, "\n")
	if !strings.Contains(joined, "https://wa.me/21612345678?text=") {
		t.Fatalf("WhatsApp link missing, got %v", *printed)
	}
}
