package services

import (
	"context"

	"github.com/cheikhtourad19/artshop-cli/internal/client/api"
	"github.com/cheikhtourad19/artshop-cli/internal/client/models"
	"github.com/cheikhtourad19/artshop-cli/internal/logging"
)

// AdminService covers the administration area. Authorization is enforced by
// the backend; these calls simply surface its errors.
type AdminService interface {
	Users(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, id string) error
	Stats(ctx context.Context) (*models.Stats, error)
}

type adminService struct {
	api api.Client
	log logging.Logger
}

// NewAdminService constructs an AdminService bound to the given API client.
func NewAdminService(client api.Client, log logging.Logger) AdminService {
	return &adminService{api: client, log: log}
}

func (s *adminService) Users(ctx context.Context) ([]models.User, error) {
	return s.api.AdminUsers(ctx)
}

func (s *adminService) DeleteUser(ctx context.Context, id string) error {
	return s.api.AdminDeleteUser(ctx, id)
}

func (s *adminService) Stats(ctx context.Context) (*models.Stats, error) {
	return s.api.AdminStats(ctx)
}
