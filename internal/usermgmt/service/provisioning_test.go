package service

import (
	"context"
	"testing"

	"github.com/clinicwave/usermgmt/internal/usermgmt/domain"
	"github.com/stretchr/testify/require"
)

func TestProvisionRole(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	t.Run("assigns the role to an active user", func(t *testing.T) {
		u := f.createUser(t, "1", domain.UserStatusActive, f.defaultRole.ID)

		got, err := f.provisioning.ProvisionRole(ctx, u.ID, f.adminRole.ID)
		require.NoError(t, err)
		require.Equal(t, domain.RoleAssignment{
			UserID:    u.ID,
			Username:  u.Username,
			RoleName:  domain.AdminRoleName,
			Timestamp: f.clock.Now(),
		}, got)
		require.Equal(t, f.adminRole.ID, f.reloadUser(t, u.ID).RoleID)
	})

	t.Run("re-assigning the held role is rejected", func(t *testing.T) {
		u := f.createUser(t, "2", domain.UserStatusActive, f.adminRole.ID)

		_, err := f.provisioning.ProvisionRole(ctx, u.ID, f.adminRole.ID)
		require.ErrorIs(t, err, ErrDuplicateRoleAssignment)
		require.Contains(t, err.Error(), "'ROLE_ADMIN'")
		require.Equal(t, f.adminRole.ID, f.reloadUser(t, u.ID).RoleID)
	})

	t.Run("inactive users cannot be provisioned", func(t *testing.T) {
		for i, status := range []domain.UserStatus{
			domain.UserStatusPending,
			domain.UserStatusVerified,
			domain.UserStatusInactive,
			domain.UserStatusSuspended,
		} {
			u := f.createUser(t, string(rune('3'+i)), status, f.defaultRole.ID)

			_, err := f.provisioning.ProvisionRole(ctx, u.ID, f.adminRole.ID)
			require.ErrorIs(t, err, ErrInactiveUser, "status %s", status)
			require.Equal(t, f.defaultRole.ID, f.reloadUser(t, u.ID).RoleID)
		}
	})

	t.Run("lookups come before rule checks", func(t *testing.T) {
		pending := f.createUser(t, "8", domain.UserStatusPending, f.defaultRole.ID)

		_, err := f.provisioning.ProvisionRole(ctx, 9999, 9999)
		requireNotFound(t, err, "User")

		_, err = f.provisioning.ProvisionRole(ctx, pending.ID, 9999)
		requireNotFound(t, err, "Role")
	})
}

func TestDeProvisionRole(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	t.Run("drops the user back to the default role", func(t *testing.T) {
		u := f.createUser(t, "1", domain.UserStatusActive, f.adminRole.ID)

		got, err := f.provisioning.DeProvisionRole(ctx, u.ID, f.adminRole.ID)
		require.NoError(t, err)
		require.Equal(t, domain.DefaultRoleName, got.RoleName)
		require.Equal(t, u.Username, got.Username)
		require.True(t, got.Timestamp.Equal(f.clock.Now()))
		require.Equal(t, f.defaultRole.ID, f.reloadUser(t, u.ID).RoleID)
	})

	t.Run("the default role cannot be removed", func(t *testing.T) {
		u := f.createUser(t, "2", domain.UserStatusActive, f.defaultRole.ID)

		_, err := f.provisioning.DeProvisionRole(ctx, u.ID, f.defaultRole.ID)
		require.ErrorIs(t, err, ErrDefaultRoleRemoval)
		require.Equal(t, f.defaultRole.ID, f.reloadUser(t, u.ID).RoleID)
	})

	t.Run("only the held role can be removed", func(t *testing.T) {
		u := f.createUser(t, "3", domain.UserStatusActive, f.defaultRole.ID)

		_, err := f.provisioning.DeProvisionRole(ctx, u.ID, f.adminRole.ID)
		require.ErrorIs(t, err, ErrRoleMismatch)
		require.Equal(t, f.defaultRole.ID, f.reloadUser(t, u.ID).RoleID)
	})

	t.Run("inactive check comes before role checks", func(t *testing.T) {
		u := f.createUser(t, "4", domain.UserStatusVerified, f.defaultRole.ID)

		_, err := f.provisioning.DeProvisionRole(ctx, u.ID, f.adminRole.ID)
		require.ErrorIs(t, err, ErrInactiveUser)

		_, err = f.provisioning.DeProvisionRole(ctx, u.ID, f.defaultRole.ID)
		require.ErrorIs(t, err, ErrInactiveUser)
	})

	t.Run("unknown user and role", func(t *testing.T) {
		u := f.createUser(t, "5", domain.UserStatusActive, f.adminRole.ID)

		_, err := f.provisioning.DeProvisionRole(ctx, 9999, f.adminRole.ID)
		requireNotFound(t, err, "User")

		_, err = f.provisioning.DeProvisionRole(ctx, u.ID, 9999)
		requireNotFound(t, err, "Role")
	})
}

func TestDeProvisionRole_MissingDefaultRole(t *testing.T) {
	ctx := context.Background()
	f := newFixtureWithCatalog(t, domain.Catalog{
		Roles: []domain.RoleDefinition{
			{Name: domain.AdminRoleName, Permissions: []string{domain.PermissionWrite}},
		},
	})
	u := f.createUser(t, "1", domain.UserStatusActive, f.adminRole.ID)

	_, err := f.provisioning.DeProvisionRole(ctx, u.ID, f.adminRole.ID)
	requireNotFound(t, err, "Role")
	require.Equal(t, f.adminRole.ID, f.reloadUser(t, u.ID).RoleID)
}

func requireNotFound(t *testing.T, err error, resource string) {
	t.Helper()

	require.ErrorIs(t, err, ErrNotFound)

	var rerr *ResourceError
	require.ErrorAs(t, err, &rerr)
	require.Equal(t, resource, rerr.Resource)
}
