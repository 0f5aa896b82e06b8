package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
)

func TestFeedbackRepositoryImpl_ListByTarget(t *testing.T) {
	repo := NewFeedbackRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Feedback{UserID: 1, Target: domain.RoleAdmin, Message: "late payment this month"}))
	require.NoError(t, repo.Create(ctx, &domain.Feedback{UserID: 2, Target: domain.RoleSuperAdmin, Message: "please review admins"}))
	require.NoError(t, repo.Create(ctx, &domain.Feedback{UserID: 3, Target: domain.RoleAdmin, Message: "thanks"}))

	admin, err := repo.ListByTarget(ctx, domain.RoleAdmin)
	require.NoError(t, err)
	require.Len(t, admin, 2)
	for _, f := range admin {
		assert.Equal(t, domain.RoleAdmin, f.Target)
	}

	super, err := repo.ListByTarget(ctx, domain.RoleSuperAdmin)
	require.NoError(t, err)
	require.Len(t, super, 1)
	assert.Equal(t, "please review admins", super[0].Message)

	none, err := repo.ListByTarget(ctx, domain.RoleMember)
	require.NoError(t, err)
	assert.Empty(t, none)
}
