package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/clinicwave/usermgmt/internal/usermgmt/domain"
	"github.com/clinicwave/usermgmt/internal/usermgmt/store"
	"github.com/clinicwave/usermgmt/pkg/slogx"
)

type CatalogService struct {
	Store store.Store
}

// Seed creates whatever user types, permissions, roles and grants from c are
// missing. Running it again against a seeded store changes nothing.
func (s *CatalogService) Seed(ctx context.Context, c domain.Catalog) error {
	l := slogx.FromContext(ctx)

	var created int
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 1. User types
		types, err := tx.UserTypes().ListUserTypes(ctx)
		if err != nil {
			return fmt.Errorf("service: list user types: %w", err)
		}
		haveType := make(map[domain.UserTypeName]bool, len(types))
		for _, t := range types {
			haveType[t.Type] = true
		}
		for _, name := range c.UserTypes {
			if haveType[name] {
				continue
			}
			if _, err := tx.UserTypes().CreateUserType(ctx, name); err != nil {
				l.Error("failed to seed user type",
					slog.String("type", string(name)),
					slog.Any("error", err),
				)
				return fmt.Errorf("service: seed user type %s: %w", name, err)
			}
			haveType[name] = true
			created++
		}

		// 2. Permissions, roles reference them
		existing, err := tx.Permissions().ListPermissions(ctx)
		if err != nil {
			return fmt.Errorf("service: list permissions: %w", err)
		}
		perms := make(map[string]int64, len(existing))
		for _, p := range existing {
			perms[p.Name] = p.ID
		}
		for _, def := range c.Roles {
			for _, name := range def.Permissions {
				if _, ok := perms[name]; ok {
					continue
				}

				p, err := tx.Permissions().CreatePermission(ctx, domain.Permission{Name: name})
				if err != nil {
					l.Error("failed to seed permission",
						slog.String("permission", name),
						slog.Any("error", err),
					)
					return fmt.Errorf("service: seed permission %s: %w", name, err)
				}
				perms[name] = p.ID
				created++
			}
		}

		// 3. Roles and their grants
		for _, def := range c.Roles {
			role, err := tx.Roles().GetRoleByName(ctx, def.Name)
			if errors.Is(err, store.ErrNotFound) {
				role, err = tx.Roles().CreateRole(ctx, domain.Role{
					Name:        def.Name,
					Description: def.Description,
				})
				if err == nil {
					created++
				}
			}
			if err != nil {
				l.Error("failed to seed role",
					slog.String("role", def.Name),
					slog.Any("error", err),
				)
				return fmt.Errorf("service: seed role %s: %w", def.Name, err)
			}

			for _, name := range def.Permissions {
				if err := tx.Roles().GrantPermission(ctx, role.ID, perms[name]); err != nil {
					return fmt.Errorf("service: grant %s to %s: %w", name, def.Name, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	l.Info("catalog seeded", slog.Int("created", created))
	return nil
}

// ListRoles returns all roles with their permission names.
func (s *CatalogService) ListRoles(ctx context.Context) ([]domain.Role, error) {
	return s.Store.Roles().ListRoles(ctx)
}

func (s *CatalogService) GetRole(ctx context.Context, id int64) (domain.Role, error) {
	role, err := s.Store.Roles().GetRoleByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Role{}, notFound(resourceRole, "id", id)
		}
		return domain.Role{}, err
	}
	return role, nil
}
