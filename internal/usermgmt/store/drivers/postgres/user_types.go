package postgres

import (
	"context"
	"time"

	"github.com/clinicwave/usermgmt/internal/usermgmt/domain"
	"github.com/jmoiron/sqlx"
)

type userTypeRow struct {
	ID        int64     `db:"id"`
	Type      string    `db:"type"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type userTypesRepo struct {
	q sqlx.ExtContext
}

func (r *userTypesRepo) GetUserTypeByType(ctx context.Context, typ domain.UserTypeName) (domain.UserType, error) {
	var row userTypeRow
	err := sqlx.GetContext(ctx, r.q, &row,
		`SELECT id, type, created_at, updated_at FROM user_types WHERE type = $1`, string(typ))
	if err != nil {
		return domain.UserType{}, mapNotFound(err)
	}
	return row.toDomain(), nil
}

func (r *userTypesRepo) ListUserTypes(ctx context.Context) ([]domain.UserType, error) {
	var rows []userTypeRow
	err := sqlx.SelectContext(ctx, r.q, &rows,
		`SELECT id, type, created_at, updated_at FROM user_types ORDER BY type`)
	if err != nil {
		return nil, err
	}

	types := make([]domain.UserType, len(rows))
	for i, row := range rows {
		types[i] = row.toDomain()
	}
	return types, nil
}

func (r *userTypesRepo) CreateUserType(ctx context.Context, typ domain.UserTypeName) (domain.UserType, error) {
	var row userTypeRow
	err := sqlx.GetContext(ctx, r.q, &row, `
		INSERT INTO user_types (type)
		VALUES ($1)
		RETURNING id, type, created_at, updated_at`,
		string(typ),
	)
	if err != nil {
		return domain.UserType{}, mapConstraint(err)
	}
	return row.toDomain(), nil
}
