package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/clinicwave/usermgmt/internal/usermgmt/domain"
	"github.com/clinicwave/usermgmt/internal/usermgmt/store"
	"github.com/clinicwave/usermgmt/internal/usermgmt/store/drivers/sqlite/gen"
)

type verificationCodesRepo struct {
	q *gen.Queries
}

func (r *verificationCodesRepo) CreateVerificationCode(
	ctx context.Context,
	c domain.VerificationCode,
) (domain.VerificationCode, error) {
	id, err := r.q.CreateVerificationCode(ctx, gen.CreateVerificationCodeParams{
		UserID:    c.UserID,
		Code:      c.Code,
		Token:     c.Token,
		Type:      string(c.Type),
		ExpiresAt: c.ExpiresAt,
		CreatedAt: c.CreatedAt,
	})
	if err != nil {
		return domain.VerificationCode{}, mapConstraint(err)
	}
	return r.getByID(ctx, id)
}

func (r *verificationCodesRepo) GetVerificationCodeByToken(
	ctx context.Context,
	token string,
) (domain.VerificationCode, error) {
	row, err := r.q.GetVerificationCodeByToken(ctx, token)
	if err != nil {
		return domain.VerificationCode{}, mapNotFound(err)
	}
	return mapVerificationCode(row), nil
}

func (r *verificationCodesRepo) GetLatestVerificationCode(
	ctx context.Context,
	userID int64,
	typ domain.VerificationType,
) (domain.VerificationCode, error) {
	row, err := r.q.GetLatestVerificationCode(ctx, gen.GetLatestVerificationCodeParams{
		UserID: userID,
		Type:   string(typ),
	})
	if err != nil {
		return domain.VerificationCode{}, mapNotFound(err)
	}
	return mapVerificationCode(row), nil
}

func (r *verificationCodesRepo) IncrementVerificationCodeAttempts(
	ctx context.Context,
	id int64,
) (domain.VerificationCode, error) {
	if err := affected(r.q.IncrementVerificationCodeAttempts(ctx, id)); err != nil {
		return domain.VerificationCode{}, err
	}
	return r.getByID(ctx, id)
}

func (r *verificationCodesRepo) MarkVerificationCodeUsed(ctx context.Context, id int64, verifiedAt time.Time) error {
	n, err := r.q.MarkVerificationCodeUsed(ctx, gen.MarkVerificationCodeUsedParams{
		VerifiedAt: sql.NullTime{Time: verifiedAt, Valid: true},
		ID:         id,
	})
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
	rows, err := r.q.ListVerificationCodesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	codes := make([]domain.VerificationCode, len(rows))
	for i, row := range rows {
		codes[i] = mapVerificationCode(row)
	}
	return codes, nil
}

func (r *verificationCodesRepo) getByID(ctx context.Context, id int64) (domain.VerificationCode, error) {
	row, err := r.q.GetVerificationCodeByID(ctx, id)
	if err != nil {
		return domain.VerificationCode{}, mapNotFound(err)
	}
	return mapVerificationCode(row), nil
}
