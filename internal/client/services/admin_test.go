package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cheikhtourad19/artshop-cli/internal/client/models"
	"github.com/cheikhtourad19/artshop-cli/internal/logging"
)

func TestAdminService(t *testing.T) {
	f := &fakeClient{
		users: []models.User{{ID: "u1"}, {ID: "u2"}},
		stats: &models.Stats{TotalUsers: 2, TotalProducts: 5},
	}
	s := NewAdminService(f, logging.NewNop())
	ctx := context.Background()

	users, err := s.Users(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	require.NoError(t, s.DeleteUser(ctx, "u1"))
	assert.Equal(t, "u1", f.delUserID)

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalUsers)
	assert.Equal(t, 5, stats.TotalProducts)
}
