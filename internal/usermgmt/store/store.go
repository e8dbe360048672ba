package store

import (
	"context"
	"errors"
	"time"

	"github.com/clinicwave/usermgmt/internal/usermgmt/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrStaleRow is returned by guarded updates whose precondition no
	// longer holds when the statement runs (zero rows affected).
	ErrStaleRow = errors.New("store: row changed concurrently")
)

// ConflictError reports a unique constraint violation on Field.
// It matches ErrAlreadyExists with errors.Is.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	return "store: already exists: " + e.Field
}

func (e *ConflictError) Is(target error) bool { return target == ErrAlreadyExists }

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. It exposes sub-repositories so a transaction scoped store
// has exactly the same shape as the root one.
type Store interface {
	Users() Users
	Roles() Roles
	Permissions() Permissions
	UserTypes() UserTypes
	VerificationCodes() VerificationCodes

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. The transaction is rolled
	// back if fn returns an error and committed otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id int64) (domain.User, error)

	// GetUserByEmail returns a user by email address.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// LockUserByID returns a user and holds a write lock on the row until
	// the surrounding transaction ends.
	LockUserByID(ctx context.Context, id int64) (domain.User, error)

	// ListUsers returns all users ordered by id.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// CreateUser inserts a user and returns it with the store assigned id.
	// The returned user carries the name of its user type, if any.
	// Unique violations on email, username or mobile surface as *ConflictError.
	CreateUser(ctx context.Context, u domain.User) (domain.User, error)

	// UpdateUserProfile overwrites the profile fields and bumps updated_at.
	UpdateUserProfile(ctx context.Context, id int64, p domain.UserProfile) error

	UpdateUserStatus(ctx context.Context, id int64, status domain.UserStatus) error
	UpdateUserRole(ctx context.Context, id int64, roleID int64) error

	// DeleteUser cascades to verification_codes (per schema).
	DeleteUser(ctx context.Context, id int64) error
}

type Roles interface {
	GetRoleByID(ctx context.Context, id int64) (domain.Role, error)
	GetRoleByName(ctx context.Context, name string) (domain.Role, error)

	// ListRoles returns all roles with their permission names.
	ListRoles(ctx context.Context) ([]domain.Role, error)

	CreateRole(ctx context.Context, r domain.Role) (domain.Role, error)

	// GrantPermission links a permission to a role. Granting twice is a no-op.
	GrantPermission(ctx context.Context, roleID, permissionID int64) error
}

type Permissions interface {
	// ListPermissions returns all permissions ordered by name.
	ListPermissions(ctx context.Context) ([]domain.Permission, error)
	CreatePermission(ctx context.Context, p domain.Permission) (domain.Permission, error)
}

type UserTypes interface {
	GetUserTypeByType(ctx context.Context, typ domain.UserTypeName) (domain.UserType, error)

	// ListUserTypes returns all user types ordered by type.
	ListUserTypes(ctx context.Context) ([]domain.UserType, error)

	CreateUserType(ctx context.Context, typ domain.UserTypeName) (domain.UserType, error)
}

// VerificationCodes is the append-only ledger of issued codes.
type VerificationCodes interface {
	CreateVerificationCode(ctx context.Context, c domain.VerificationCode) (domain.VerificationCode, error)

	GetVerificationCodeByToken(ctx context.Context, token string) (domain.VerificationCode, error)

	// GetLatestVerificationCode returns the most recently created code for
	// the (user, type) pair.
	GetLatestVerificationCode(
		ctx context.Context,
		userID int64,
		typ domain.VerificationType,
	) (domain.VerificationCode, error)

	// IncrementVerificationCodeAttempts bumps attempt_count and returns the
	// updated row.
	IncrementVerificationCodeAttempts(ctx context.Context, id int64) (domain.VerificationCode, error)

	// MarkVerificationCodeUsed flips is_used and is_verified together. It
	// returns ErrStaleRow if the code was already consumed.
	MarkVerificationCodeUsed(ctx context.Context, id int64, verifiedAt time.Time) error

	// ListVerificationCodesByUser returns the full history for a user, oldest first.
	ListVerificationCodesByUser(ctx context.Context, userID int64) ([]domain.VerificationCode, error)
}
