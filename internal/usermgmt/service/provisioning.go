package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/clinicwave/usermgmt/internal/usermgmt/domain"
	"github.com/clinicwave/usermgmt/internal/usermgmt/store"
	"github.com/clinicwave/usermgmt/pkg/slogx"
)

// ProvisioningService assigns and revokes roles. Every user holds exactly
// one role and never drops below the default role.
type ProvisioningService struct {
	Store store.Store

	// Now stamps the returned assignment. Defaults to time.Now.
	Now func() time.Time
}

func (s *ProvisioningService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// ProvisionRole moves an ACTIVE user onto roleID. Re-assigning the role the
// user already holds is rejected rather than treated as a no-op.
func (s *ProvisioningService) ProvisionRole(ctx context.Context, userID, roleID int64) (domain.RoleAssignment, error) {
	log := slogx.FromContext(ctx)

	var assignment domain.RoleAssignment
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		user, role, err := s.resolve(ctx, tx, userID, roleID)
		if err != nil {
			return err
		}

		if !user.IsActive() {
			log.Warn("role provisioning attempted on inactive user",
				slog.Int64("user_id", userID),
				slog.String("status", string(user.Status)),
			)
			return resourceErr(ErrInactiveUser, resourceUser, "id", userID)
		}

		if user.RoleID == role.ID {
			log.Warn("role already assigned",
				slog.Int64("user_id", userID),
				slog.String("role", role.Name),
			)
			return &ResourceError{
				Kind:     ErrDuplicateRoleAssignment,
				Resource: resourceUser,
				Field:    "id",
				Value:    userID,
				Detail:   role.Name,
			}
		}

		if err := tx.Users().UpdateUserRole(ctx, user.ID, role.ID); err != nil {
			return fmt.Errorf("service: update user role: %w", err)
		}

		assignment = domain.RoleAssignment{
			UserID:    user.ID,
			Username:  user.Username,
			RoleName:  role.Name,
			Timestamp: s.now(),
		}
		return nil
	})
	if err != nil {
		return domain.RoleAssignment{}, err
	}

	log.Info("role provisioned",
		slog.Int64("user_id", assignment.UserID),
		slog.String("role", assignment.RoleName),
	)

	return assignment, nil
}

// DeProvisionRole removes roleID from an ACTIVE user and drops them back
// onto the default role. roleID must be the role the user currently holds.
func (s *ProvisioningService) DeProvisionRole(ctx context.Context, userID, roleID int64) (domain.RoleAssignment, error) {
	log := slogx.FromContext(ctx)

	var assignment domain.RoleAssignment
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		user, role, err := s.resolve(ctx, tx, userID, roleID)
		if err != nil {
			return err
		}

		if !user.IsActive() {
			log.Warn("role de-provisioning attempted on inactive user",
				slog.Int64("user_id", userID),
				slog.String("status", string(user.Status)),
			)
			return resourceErr(ErrInactiveUser, resourceUser, "id", userID)
		}

		if user.RoleID != role.ID {
			log.Warn("role de-provisioning attempted with mismatched role",
				slog.Int64("user_id", userID),
				slog.Int64("role_id", roleID),
			)
			return resourceErr(ErrRoleMismatch, resourceRole, "roleId", roleID)
		}

		if role.IsDefault() {
			log.Warn("default role removal attempted", slog.Int64("user_id", userID))
			return resourceErr(ErrDefaultRoleRemoval, resourceUser, "id", userID)
		}

		def, err := tx.Roles().GetRoleByName(ctx, domain.DefaultRoleName)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				log.Error("default role missing from catalog")
				return notFound(resourceRole, "roleName", domain.DefaultRoleName)
			}
			return fmt.Errorf("service: load default role: %w", err)
		}

		if err := tx.Users().UpdateUserRole(ctx, user.ID, def.ID); err != nil {
			return fmt.Errorf("service: update user role: %w", err)
		}

		assignment = domain.RoleAssignment{
			UserID:    user.ID,
			Username:  user.Username,
			RoleName:  def.Name,
			Timestamp: s.now(),
		}
		return nil
	})
	if err != nil {
		return domain.RoleAssignment{}, err
	}

	log.Info("role de-provisioned",
		slog.Int64("user_id", assignment.UserID),
		slog.Int64("removed_role_id", roleID),
		slog.String("role", assignment.RoleName),
	)

	return assignment, nil
}

// resolve locks the user row for the rest of the transaction and loads the
// target role.
func (s *ProvisioningService) resolve(
	ctx context.Context,
	tx store.Tx,
	userID, roleID int64,
) (domain.User, domain.Role, error) {
	user, err := tx.Users().LockUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, domain.Role{}, notFound(resourceUser, "id", userID)
		}
		return domain.User{}, domain.Role{}, fmt.Errorf("service: load user: %w", err)
	}

	role, err := tx.Roles().GetRoleByID(ctx, roleID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, domain.Role{}, notFound(resourceRole, "id", roleID)
		}
		return domain.User{}, domain.Role{}, fmt.Errorf("service: load role: %w", err)
	}

	return user, role, nil
}
