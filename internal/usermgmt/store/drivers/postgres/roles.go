package postgres

import (
	"context"
	"time"

	"github.com/clinicwave/usermgmt/internal/usermgmt/domain"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type roleRow struct {
	ID          int64          `db:"id"`
	Name        string         `db:"name"`
	Description string         `db:"description"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
	Permissions pq.StringArray `db:"permissions"`
}

// roleSelect loads roles together with their sorted permission names.
const roleSelect = `
	SELECT r.id, r.name, r.description, r.created_at, r.updated_at,
	       COALESCE(array_agg(p.name ORDER BY p.name) FILTER (WHERE p.name IS NOT NULL), '{}') AS permissions
	FROM roles r
	LEFT JOIN role_permissions rp ON rp.role_id = r.id
	LEFT JOIN permissions p ON p.id = rp.permission_id`

type rolesRepo struct {
	q sqlx.ExtContext
}

func (r *rolesRepo) get(ctx context.Context, where string, arg any) (domain.Role, error) {
	var row roleRow
	query := roleSelect + ` WHERE ` + where + ` GROUP BY r.id`
	if err := sqlx.GetContext(ctx, r.q, &row, query, arg); err != nil {
		return domain.Role{}, mapNotFound(err)
	}
	return row.toDomain(), nil
}

func (r *rolesRepo) GetRoleByID(ctx context.Context, id int64) (domain.Role, error) {
	return r.get(ctx, `r.id = $1`, id)
}

func (r *rolesRepo) GetRoleByName(ctx context.Context, name string) (domain.Role, error) {
	return r.get(ctx, `r.name = $1`, name)
}

func (r *rolesRepo) ListRoles(ctx context.Context) ([]domain.Role, error) {
	var rows []roleRow
	if err := sqlx.SelectContext(ctx, r.q, &rows, roleSelect+` GROUP BY r.id ORDER BY r.id`); err != nil {
		return nil, err
	}

	roles := make([]domain.Role, len(rows))
	for i, row := range rows {
		roles[i] = row.toDomain()
	}
	return roles, nil
}

func (r *rolesRepo) CreateRole(ctx context.Context, role domain.Role) (domain.Role, error) {
	var id int64
	err := sqlx.GetContext(ctx, r.q, &id,
		`INSERT INTO roles (name, description) VALUES ($1, $2) RETURNING id`,
		role.Name, role.Description,
	)
	if err != nil {
		return domain.Role{}, mapConstraint(err)
	}
	return r.GetRoleByID(ctx, id)
}

func (r *rolesRepo) GrantPermission(ctx context.Context, roleID, permissionID int64) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO role_permissions (role_id, permission_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`,
		roleID, permissionID,
	)
	return err
}
