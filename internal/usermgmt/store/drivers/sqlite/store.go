package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/clinicwave/usermgmt/internal/usermgmt/domain"
	"github.com/clinicwave/usermgmt/internal/usermgmt/store"
	"github.com/clinicwave/usermgmt/internal/usermgmt/store/drivers/sqlite/gen"
	sqlite3 "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

type Store struct {
	db  *sql.DB
	q   *gen.Queries
	dsn string
}

// NewStore opens the database at dsn. Passing ":memory:" gives a private
// in-memory database, which is pinned to a single connection so every query
// sees the same data.
func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if strings.Contains(dsn, ":memory:") {
		db.SetMaxOpenConns(1)
	}

	// Enforce FKs
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		db:  db,
		q:   gen.New(db),
		dsn: dsn,
	}, nil
}

// FileDSN builds the DSN used for on-disk databases. Every connection gets
// foreign keys and a busy timeout, and transactions begin IMMEDIATE so
// concurrent units of work are serialized on the write lock.
func FileDSN(path string) string {
	return "file:" + path +
		"?_pragma=foreign_keys(1)" +
		"&_pragma=busy_timeout(5000)" +
		"&_pragma=journal_mode(WAL)" +
		"&_txlock=immediate"
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx), nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback() // safe to call even after commit
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) Users() store.Users                         { return &usersRepo{q: s.q} }
func (s *Store) Roles() store.Roles                         { return &rolesRepo{q: s.q} }
func (s *Store) Permissions() store.Permissions             { return &permissionsRepo{q: s.q} }
func (s *Store) UserTypes() store.UserTypes                 { return &userTypesRepo{q: s.q} }
func (s *Store) VerificationCodes() store.VerificationCodes { return &verificationCodesRepo{q: s.q} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapConstraint turns a sqlite unique violation into a *store.ConflictError
// naming the offending column.
func mapConstraint(err error) error {
	var serr *sqlite3.Error
	if !errors.As(err, &serr) {
		return err
	}

	// Extended codes carry the primary code in the low byte.
	if serr.Code()&0xff != sqlite3lib.SQLITE_CONSTRAINT {
		return err
	}
	if !strings.Contains(serr.Error(), "UNIQUE constraint failed") {
		return err
	}
	return &store.ConflictError{Field: uniqueColumn(serr.Error())}
}

// uniqueColumn extracts "email" from "... UNIQUE constraint failed: users.email (2067)".
func uniqueColumn(msg string) string {
	const marker = "constraint failed: "
	idx := strings.LastIndex(msg, marker)
	if idx < 0 {
		return ""
	}

	rest := msg[idx+len(marker):]
	if end := strings.IndexAny(rest, " ,"); end >= 0 {
		rest = rest[:end]
	}
	if dot := strings.LastIndex(rest, "."); dot >= 0 {
		rest = rest[dot+1:]
	}
	return rest
}

func affected(n int64, err error) error {
	if err != nil {
		return mapConstraint(err)
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func mapNullTimePtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		val := nt.Time
		return &val
	}
	return nil
}

func mapNullID(id int64) sql.NullInt64 {
	if id == 0 {
		return sql.NullInt64{Valid: false}
	}
	return sql.NullInt64{Int64: id, Valid: true}
}

func mapUser(row gen.GetUserByIDRow) domain.User {
	return domain.User{
		ID: row.ID,
		UserProfile: domain.UserProfile{
			FirstName:   row.FirstName,
			LastName:    row.LastName,
			Mobile:      row.Mobile,
			Username:    row.Username,
			Email:       row.Email,
			DateOfBirth: row.DateOfBirth,
			Gender:      domain.Gender(row.Gender),
			Bio:         row.Bio,
		},
		Status:     domain.UserStatus(row.Status),
		RoleID:     row.RoleID.Int64,
		UserTypeID: row.UserTypeID.Int64,
		UserType:   domain.UserTypeName(row.UserType.String),
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}

func mapRole(row gen.Role, permissions []string) domain.Role {
	return domain.Role{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Permissions: permissions,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func mapPermission(row gen.Permission) domain.Permission {
	return domain.Permission{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		CreatedAt:   row.CreatedAt,
	}
}

func mapUserType(row gen.UserType) domain.UserType {
	return domain.UserType{
		ID:        row.ID,
		Type:      domain.UserTypeName(row.Type),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func mapVerificationCode(row gen.VerificationCode) domain.VerificationCode {
	return domain.VerificationCode{
		ID:           row.ID,
		UserID:       row.UserID,
		Code:         row.Code,
		Token:        row.Token,
		Type:         domain.VerificationType(row.Type),
		ExpiresAt:    row.ExpiresAt,
		Used:         row.IsUsed,
		Verified:     row.IsVerified,
		VerifiedAt:   mapNullTimePtr(row.VerifiedAt),
		AttemptCount: int(row.AttemptCount),
		CreatedAt:    row.CreatedAt,
	}
}
