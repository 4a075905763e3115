// Package cli implements the interactive terminal frontend of the artshop
// marketplace: a REPL whose commands mirror the pages of the web storefront
// (catalogue, product detail, add product, profile, admin area).
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/cheikhtourad19/artshop-cli/internal/client/api"
	"github.com/cheikhtourad19/artshop-cli/internal/client/config"
	"github.com/cheikhtourad19/artshop-cli/internal/client/services"
	"github.com/cheikhtourad19/artshop-cli/internal/client/session"
	"github.com/cheikhtourad19/artshop-cli/internal/logging"
)

// App wires the session manager and the application services to the REPL.
type App struct {
	config   *config.Config
	log      logging.Logger
	session  *session.Manager
	products services.ProductService
	profile  services.ProfileService
	admin    services.AdminService
	reader   *bufio.Reader
	store    session.Store
}

// NewApp builds the application graph. A session store that cannot be opened
// is not fatal: the app degrades to memory-only sessions, matching the
// "storage unavailable means not authenticated" contract.
func NewApp(cfg *config.Config, log logging.Logger) *App {
	ctx := context.Background()

	var store session.Store
	if s, err := session.OpenStore(ctx, cfg.SessionDBPath); err != nil {
		log.Warn(ctx, "session store unavailable, sessions will not persist", "error", err)
	} else {
		store = s
	}

	client := api.New(cfg.APIBaseURL, cfg.RequestTimeout, log)
	mgr := session.NewManager(client, store, log)
	client.SetTokenSource(mgr)

	return &App{
		config:   cfg,
		log:      log,
		session:  mgr,
		products: services.NewProductService(client, log),
		profile:  services.NewProfileService(client, log),
		admin:    services.NewAdminService(client, log),
		reader:   bufio.NewReader(os.Stdin),
		store:    store,
	}
}

// Run restores the persisted session and enters the REPL until EOF or exit.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	if err := a.session.Init(ctx); err != nil {
		a.log.Warn(ctx, "could not restore session", "error", err)
	}
	if u := a.session.CurrentUser(); u != nil {
		printlnFn("Bonjour " + u.FullName() + " !")
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
	return nil
}

// Close releases the session store.
func (a *App) Close() {
	if a.store != nil {
		_ = a.store.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) isAdmin() bool {
	return a.session.IsAdmin()
}

// status is the prompt decoration: the logged-in email, plus an admin marker.
func (a *App) status() string {
	u := a.session.CurrentUser()
	if u == nil {
		return ""
	}
	s := u.Email
	if u.IsAdmin {
		s += " admin"
	}
	return "(" + s + ")"
}
