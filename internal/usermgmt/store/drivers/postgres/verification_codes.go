package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/clinicwave/usermgmt/internal/usermgmt/domain"
	"github.com/clinicwave/usermgmt/internal/usermgmt/store"
	"github.com/jmoiron/sqlx"
)

type verificationCodeRow struct {
	ID           int64        `db:"id"`
	UserID       int64        `db:"user_id"`
	Code         string       `db:"code"`
	Token        string       `db:"token"`
	Type         string       `db:"type"`
	ExpiresAt    time.Time    `db:"expires_at"`
	IsUsed       bool         `db:"is_used"`
	IsVerified   bool         `db:"is_verified"`
	VerifiedAt   sql.NullTime `db:"verified_at"`
	AttemptCount int          `db:"attempt_count"`
	CreatedAt    time.Time    `db:"created_at"`
}

const verificationCodeColumns = `id, user_id, code, token, type, expires_at, is_used, is_verified, verified_at, attempt_count, created_at`

type verificationCodesRepo struct {
	q sqlx.ExtContext
}

func (r *verificationCodesRepo) get(ctx context.Context, query string, args ...any) (domain.VerificationCode, error) {
	var row verificationCodeRow
	if err := sqlx.GetContext(ctx, r.q, &row, query, args...); err != nil {
		return domain.VerificationCode{}, mapNotFound(err)
	}
	return row.toDomain(), nil
}

func (r *verificationCodesRepo) CreateVerificationCode(
	ctx context.Context,
	c domain.VerificationCode,
) (domain.VerificationCode, error) {
	createdAt := c.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	var row verificationCodeRow
	err := sqlx.GetContext(ctx, r.q, &row, `
		INSERT INTO verification_codes (user_id, code, token, type, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+verificationCodeColumns,
		c.UserID, c.Code, c.Token, string(c.Type), c.ExpiresAt, createdAt,
	)
	if err != nil {
		return domain.VerificationCode{}, mapConstraint(err)
	}
	return row.toDomain(), nil
}

func (r *verificationCodesRepo) GetVerificationCodeByToken(
	ctx context.Context,
	token string,
) (domain.VerificationCode, error) {
	return r.get(ctx, `SELECT `+verificationCodeColumns+` FROM verification_codes WHERE token = $1`, token)
}

// GetLatestVerificationCode locks the returned row until the surrounding
// transaction ends, so concurrent submissions for the same code serialize.
func (r *verificationCodesRepo) GetLatestVerificationCode(
	ctx context.Context,
	userID int64,
	typ domain.VerificationType,
) (domain.VerificationCode, error) {
	return r.get(ctx, `
		SELECT `+verificationCodeColumns+`
		FROM verification_codes
		WHERE user_id = $1 AND type = $2
		ORDER BY id DESC
		LIMIT 1
		FOR UPDATE`,
		userID, string(typ),
	)
}

func (r *verificationCodesRepo) IncrementVerificationCodeAttempts(
	ctx context.Context,
	id int64,
) (domain.VerificationCode, error) {
	return r.get(ctx, `
		UPDATE verification_codes
		SET attempt_count = attempt_count + 1
		WHERE id = $1
		RETURNING `+verificationCodeColumns,
		id,
	)
}

func (r *verificationCodesRepo) MarkVerificationCodeUsed(ctx context.Context, id int64, verifiedAt time.Time) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE verification_codes
		SET is_used = true, is_verified = true, verified_at = $1
		WHERE id = $2 AND is_used = false AND is_verified = false`,
		verifiedAt, id,
	)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrStaleRow
	}
	return nil
}

func (r *verificationCodesRepo) ListVerificationCodesByUser(
	ctx context.Context,
	userID int64,
) ([]domain.VerificationCode, error) {
	var rows []verificationCodeRow
	err := sqlx.SelectContext(ctx, r.q, &rows,
		`SELECT `+verificationCodeColumns+` FROM verification_codes WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}

	codes := make([]domain.VerificationCode, len(rows))
	for i, row := range rows {
		codes[i] = row.toDomain()
	}
	return codes, nil
}
