package sqlite

import (
	"context"

	"github.com/clinicwave/usermgmt/internal/usermgmt/domain"
	"github.com/clinicwave/usermgmt/internal/usermgmt/store/drivers/sqlite/gen"
)

type usersRepo struct {
	q *gen.Queries
}

func (r *usersRepo) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	row, err := r.q.GetUserByID(ctx, id)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row, err := r.q.GetUserByEmail(ctx, email)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(gen.GetUserByIDRow(row)), nil
}

// LockUserByID is a plain read: sqlite transactions opened with
// _txlock=immediate already hold the database write lock.
func (r *usersRepo) LockUserByID(ctx context.Context, id int64) (domain.User, error) {
	return r.GetUserByID(ctx, id)
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.q.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	users := make([]domain.User, len(rows))
	for i, row := range rows {
		users[i] = mapUser(gen.GetUserByIDRow(row))
	}
	return users, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) (domain.User, error) {
	id, err := r.q.CreateUser(ctx, gen.CreateUserParams{
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Mobile:      u.Mobile,
		Username:    u.Username,
		Email:       u.Email,
		DateOfBirth: u.DateOfBirth,
		Gender:      string(u.Gender),
		Bio:         u.Bio,
		Status:      string(u.Status),
		RoleID:      mapNullID(u.RoleID),
		UserTypeID:  mapNullID(u.UserTypeID),
	})
	if err != nil {
		return domain.User{}, mapConstraint(err)
	}
	return r.GetUserByID(ctx, id)
}

func (r *usersRepo) UpdateUserProfile(ctx context.Context, id int64, p domain.UserProfile) error {
	return affected(r.q.UpdateUserProfile(ctx, gen.UpdateUserProfileParams{
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Mobile:      p.Mobile,
		Username:    p.Username,
		Email:       p.Email,
		DateOfBirth: p.DateOfBirth,
		Gender:      string(p.Gender),
		Bio:         p.Bio,
		ID:          id,
	}))
}

func (r *usersRepo) UpdateUserStatus(ctx context.Context, id int64, status domain.UserStatus) error {
	return affected(r.q.UpdateUserStatus(ctx, gen.UpdateUserStatusParams{
		Status: string(status),
		ID:     id,
	}))
}

func (r *usersRepo) UpdateUserRole(ctx context.Context, id int64, roleID int64) error {
	return affected(r.q.UpdateUserRole(ctx, gen.UpdateUserRoleParams{
		RoleID: mapNullID(roleID),
		ID:     id,
	}))
}

func (r *usersRepo) DeleteUser(ctx context.Context, id int64) error {
	return affected(r.q.DeleteUser(ctx, id))
}
