package sqlite

import (
	"context"

	"github.com/clinicwave/usermgmt/internal/usermgmt/domain"
	"github.com/clinicwave/usermgmt/internal/usermgmt/store/drivers/sqlite/gen"
)

type rolesRepo struct {
	q *gen.Queries
}

func (r *rolesRepo) GetRoleByID(ctx context.Context, id int64) (domain.Role, error) {
	row, err := r.q.GetRoleByID(ctx, id)
	if err != nil {
		return domain.Role{}, mapNotFound(err)
	}
	return r.withPermissions(ctx, row)
}

func (r *rolesRepo) GetRoleByName(ctx context.Context, name string) (domain.Role, error) {
	row, err := r.q.GetRoleByName(ctx, name)
	if err != nil {
		return domain.Role{}, mapNotFound(err)
	}
	return r.withPermissions(ctx, row)
}

func (r *rolesRepo) ListRoles(ctx context.Context) ([]domain.Role, error) {
	rows, err := r.q.ListRoles(ctx)
	if err != nil {
		return nil, err
	}

	roles := make([]domain.Role, 0, len(rows))
	for _, row := range rows {
		role, err := r.withPermissions(ctx, row)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, nil
}

func (r *rolesRepo) CreateRole(ctx context.Context, role domain.Role) (domain.Role, error) {
	id, err := r.q.CreateRole(ctx, gen.CreateRoleParams{
		Name:        role.Name,
		Description: role.Description,
	})
	if err != nil {
		return domain.Role{}, mapConstraint(err)
	}
	return r.GetRoleByID(ctx, id)
}

func (r *rolesRepo) GrantPermission(ctx context.Context, roleID, permissionID int64) error {
	return r.q.GrantPermission(ctx, gen.GrantPermissionParams{
		RoleID:       roleID,
		PermissionID: permissionID,
	})
}

func (r *rolesRepo) withPermissions(ctx context.Context, row gen.Role) (domain.Role, error) {
	names, err := r.q.ListRolePermissionNames(ctx, row.ID)
	if err != nil {
		return domain.Role{}, err
	}
	return mapRole(row, names), nil
}
