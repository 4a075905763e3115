// Package api implements the HTTP client for the artshop backend. All
// network access in the program goes through the Client interface, so header
// construction and error normalization are single-sourced.
package api

import (
	"context"

	"github.com/cheikhtourad19/artshop-cli/internal/client/models"
)

// TokenSource yields the bearer token for the current session, or "" when
// anonymous. The session manager satisfies it.
type TokenSource interface {
	Token() string
}

// Client is the backend API surface consumed by the rest of the program.
//
// Every call threads its context into the underlying HTTP request, so
// cancelling the context aborts the request. Non-success HTTP statuses come
// back as *Error values carrying the backend's message field; transport
// failures wrap ErrUnavailable.
type Client interface {
	// Auth.
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) error
	RequestPasswordReset(ctx context.Context, email string) (string, error)
	ConfirmPasswordReset(ctx context.Context, token, password string) (string, error)

	// Profile.
	GetProfile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error)
	UpdatePassword(ctx context.Context, current, next string) (string, error)

	// Products.
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.ProductDetail, error)
	AddProduct(ctx context.Context, p models.NewProduct) (string, error)
	EditProduct(ctx context.Context, id string, upd models.ProductUpdate) error
	DeleteProduct(ctx context.Context, id string) error

	// Admin.
	AdminUsers(ctx context.Context) ([]models.User, error)
	AdminDeleteUser(ctx context.Context, id string) error
	AdminStats(ctx context.Context) (*models.Stats, error)

	// AI helpers of the add-product flow.
	GenerateDescription(ctx context.Context, title string) (string, error)
	EnhanceImage(ctx context.Context, path string) ([]byte, error)
}
