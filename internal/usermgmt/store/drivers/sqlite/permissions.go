package sqlite

import (
	"context"

	"github.com/clinicwave/usermgmt/internal/usermgmt/domain"
	"github.com/clinicwave/usermgmt/internal/usermgmt/store/drivers/sqlite/gen"
)

type permissionsRepo struct {
	q *gen.Queries
}

func (r *permissionsRepo) ListPermissions(ctx context.Context) ([]domain.Permission, error) {
	rows, err := r.q.ListPermissions(ctx)
	if err != nil {
		return nil, err
	}

	perms := make([]domain.Permission, len(rows))
	for i, row := range rows {
		perms[i] = mapPermission(row)
	}
	return perms, nil
}

func (r *permissionsRepo) CreatePermission(ctx context.Context, p domain.Permission) (domain.Permission, error) {
	id, err := r.q.CreatePermission(ctx, gen.CreatePermissionParams{
		Name:        p.Name,
		Description: p.Description,
	})
	if err != nil {
		return domain.Permission{}, mapConstraint(err)
	}

	row, err := r.q.GetPermissionByID(ctx, id)
	if err != nil {
		return domain.Permission{}, mapNotFound(err)
	}
	return mapPermission(row), nil
}
