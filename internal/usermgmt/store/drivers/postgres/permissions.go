package postgres

import (
	"context"
	"time"

	"github.com/clinicwave/usermgmt/internal/usermgmt/domain"
	"github.com/jmoiron/sqlx"
)

type permissionRow struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

type permissionsRepo struct {
	q sqlx.ExtContext
}

func (r *permissionsRepo) ListPermissions(ctx context.Context) ([]domain.Permission, error) {
	var rows []permissionRow
	err := sqlx.SelectContext(ctx, r.q, &rows,
		`SELECT id, name, description, created_at FROM permissions ORDER BY name`)
	if err != nil {
		return nil, err
	}

	perms := make([]domain.Permission, len(rows))
	for i, row := range rows {
		perms[i] = row.toDomain()
	}
	return perms, nil
}

func (r *permissionsRepo) CreatePermission(ctx context.Context, p domain.Permission) (domain.Permission, error) {
	var row permissionRow
	err := sqlx.GetContext(ctx, r.q, &row, `
		INSERT INTO permissions (name, description)
		VALUES ($1, $2)
		RETURNING id, name, description, created_at`,
		p.Name, p.Description,
	)
	if err != nil {
		return domain.Permission{}, mapConstraint(err)
	}
	return row.toDomain(), nil
}
