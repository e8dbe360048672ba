package postgres

import (
	"context"
	"database/sql"

	"github.com/clinicwave/usermgmt/internal/usermgmt/store"
	"github.com/jmoiron/sqlx"
)

type txStore struct {
	tx *sqlx.Tx
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // outer DB stays open

func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) Users() store.Users                         { return &usersRepo{q: t.tx} }
func (t *txStore) Roles() store.Roles                         { return &rolesRepo{q: t.tx} }
func (t *txStore) Permissions() store.Permissions             { return &permissionsRepo{q: t.tx} }
func (t *txStore) UserTypes() store.UserTypes                 { return &userTypesRepo{q: t.tx} }
func (t *txStore) VerificationCodes() store.VerificationCodes { return &verificationCodesRepo{q: t.tx} }

func (t *txStore) ApplyMigrations() error { return nil } // migrations run before any tx
