package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/clinicwave/usermgmt/internal/usermgmt/domain"
	"github.com/jmoiron/sqlx"
)

type userRow struct {
	ID          int64          `db:"id"`
	FirstName   string         `db:"first_name"`
	LastName    string         `db:"last_name"`
	Mobile      string         `db:"mobile"`
	Username    string         `db:"username"`
	Email       string         `db:"email"`
	DateOfBirth time.Time      `db:"date_of_birth"`
	Gender      string         `db:"gender"`
	Bio         string         `db:"bio"`
	Status      string         `db:"status"`
	RoleID      sql.NullInt64  `db:"role_id"`
	UserTypeID  sql.NullInt64  `db:"user_type_id"`
	UserType    sql.NullString `db:"user_type"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

// userSelect joins the user type name onto every user read.
const userSelect = `
	SELECT u.id, u.first_name, u.last_name, u.mobile, u.username, u.email, u.date_of_birth,
	       u.gender, u.bio, u.status, u.role_id, u.user_type_id, t.type AS user_type,
	       u.created_at, u.updated_at
	FROM users u
	LEFT JOIN user_types t ON t.id = u.user_type_id`

type usersRepo struct {
	q sqlx.ExtContext
}

func (r *usersRepo) get(ctx context.Context, query string, args ...any) (domain.User, error) {
	var row userRow
	if err := sqlx.GetContext(ctx, r.q, &row, query, args...); err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return row.toDomain(), nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	return r.get(ctx, userSelect+` WHERE u.id = $1`, id)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.get(ctx, userSelect+` WHERE u.email = $1`, email)
}

// LockUserByID holds a row lock until the surrounding transaction ends.
// Outside a transaction the lock is released immediately.
func (r *usersRepo) LockUserByID(ctx context.Context, id int64) (domain.User, error) {
	return r.get(ctx, userSelect+` WHERE u.id = $1 FOR UPDATE OF u`, id)
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	var rows []userRow
	if err := sqlx.SelectContext(ctx, r.q, &rows, userSelect+` ORDER BY u.id`); err != nil {
		return nil, err
	}

	users := make([]domain.User, len(rows))
	for i, row := range rows {
		users[i] = row.toDomain()
	}
	return users, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) (domain.User, error) {
	var id int64
	err := sqlx.GetContext(ctx, r.q, &id, `
		INSERT INTO users (first_name, last_name, mobile, username, email, date_of_birth, gender, bio, status, role_id, user_type_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`,
		u.FirstName, u.LastName, u.Mobile, u.Username, u.Email,
		u.DateOfBirth, string(u.Gender), u.Bio, string(u.Status),
		nullID(u.RoleID), nullID(u.UserTypeID),
	)
	if err != nil {
		return domain.User{}, mapConstraint(err)
	}
	return r.GetUserByID(ctx, id)
}

func (r *usersRepo) UpdateUserProfile(ctx context.Context, id int64, p domain.UserProfile) error {
	return affected(r.q.ExecContext(ctx, `
		UPDATE users
		SET first_name = $1, last_name = $2, mobile = $3, username = $4, email = $5,
		    date_of_birth = $6, gender = $7, bio = $8, updated_at = now()
		WHERE id = $9`,
		p.FirstName, p.LastName, p.Mobile, p.Username, p.Email,
		p.DateOfBirth, string(p.Gender), p.Bio, id,
	))
}

func (r *usersRepo) UpdateUserStatus(ctx context.Context, id int64, status domain.UserStatus) error {
	return affected(r.q.ExecContext(ctx,
		`UPDATE users SET status = $1, updated_at = now() WHERE id = $2`,
		string(status), id,
	))
}

func (r *usersRepo) UpdateUserRole(ctx context.Context, id int64, roleID int64) error {
	return affected(r.q.ExecContext(ctx,
		`UPDATE users SET role_id = $1, updated_at = now() WHERE id = $2`,
		nullID(roleID), id,
	))
}

func (r *usersRepo) DeleteUser(ctx context.Context, id int64) error {
	return affected(r.q.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id))
}
