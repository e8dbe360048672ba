package sqlite

import (
	"context"

	"github.com/clinicwave/usermgmt/internal/usermgmt/domain"
	"github.com/clinicwave/usermgmt/internal/usermgmt/store/drivers/sqlite/gen"
)

type userTypesRepo struct {
	q *gen.Queries
}

func (r *userTypesRepo) GetUserTypeByType(ctx context.Context, typ domain.UserTypeName) (domain.UserType, error) {
	row, err := r.q.GetUserTypeByType(ctx, string(typ))
	if err != nil {
		return domain.UserType{}, mapNotFound(err)
	}
	return mapUserType(row), nil
}

func (r *userTypesRepo) ListUserTypes(ctx context.Context) ([]domain.UserType, error) {
	rows, err := r.q.ListUserTypes(ctx)
	if err != nil {
		return nil, err
	}

	types := make([]domain.UserType, len(rows))
	for i, row := range rows {
		types[i] = mapUserType(row)
	}
	return types, nil
}

func (r *userTypesRepo) CreateUserType(ctx context.Context, typ domain.UserTypeName) (domain.UserType, error) {
	id, err := r.q.CreateUserType(ctx, string(typ))
	if err != nil {
		return domain.UserType{}, mapConstraint(err)
	}

	row, err := r.q.GetUserTypeByID(ctx, id)
	if err != nil {
		return domain.UserType{}, mapNotFound(err)
	}
	return mapUserType(row), nil
}
