package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/clinicwave/usermgmt/internal/usermgmt/domain"
	"github.com/clinicwave/usermgmt/internal/usermgmt/store"
	"github.com/clinicwave/usermgmt/pkg/cryptox"
	"github.com/clinicwave/usermgmt/pkg/slogx"
	"github.com/pquerna/otp"
)

const (
	resourceUser             = "User"
	resourceRole             = "Role"
	resourceUserType         = "UserType"
	resourceVerificationCode = "VerificationCode"
)

// VerificationService issues one-time codes and gates the PENDING -> VERIFIED
// transition on their correct, timely, single use.
type VerificationService struct {
	Store store.Store

	// Rand is the source for codes and tokens. Defaults to crypto/rand.
	Rand io.Reader

	// Now defaults to time.Now.
	Now func() time.Time

	// CodeTTL defaults to domain.VerificationCodeTTL.
	CodeTTL time.Duration
}

func (s *VerificationService) random() io.Reader {
	if s.Rand != nil {
		return s.Rand
	}
	return rand.Reader
}

func (s *VerificationService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *VerificationService) ttl() time.Duration {
	if s.CodeTTL > 0 {
		return s.CodeTTL
	}
	return domain.VerificationCodeTTL
}

// IssueCode mints a new code of type typ for the user and appends it to the
// ledger. The user's status is left untouched.
func (s *VerificationService) IssueCode(
	ctx context.Context,
	userID int64,
	typ domain.VerificationType,
) (domain.VerificationCode, error) {
	var issued domain.VerificationCode

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		user, err := tx.Users().GetUserByID(ctx, userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return notFound(resourceUser, "id", userID)
			}
			return fmt.Errorf("service: load user: %w", err)
		}

		issued, err = s.issueCode(ctx, tx, user, typ)
		return err
	})
	if err != nil {
		return domain.VerificationCode{}, err
	}

	return issued, nil
}

// issueCode runs inside the caller's transaction so registration can create
// the user and its first code atomically.
func (s *VerificationService) issueCode(
	ctx context.Context,
	tx store.Tx,
	user domain.User,
	typ domain.VerificationType,
) (domain.VerificationCode, error) {
	log := slogx.FromContext(ctx)

	if !typ.IsValid() {
		return domain.VerificationCode{}, fmt.Errorf("service: unknown verification type %q", typ)
	}

	code, err := cryptox.NumericCode(s.random(), otp.DigitsSix)
	if err != nil {
		log.Error("failed to generate verification code", slog.Any("error", err))
		return domain.VerificationCode{}, err
	}

	token, err := cryptox.NewToken(s.random())
	if err != nil {
		log.Error("failed to generate verification token", slog.Any("error", err))
		return domain.VerificationCode{}, err
	}

	now := s.now()
	created, err := tx.VerificationCodes().CreateVerificationCode(ctx, domain.VerificationCode{
		UserID:    user.ID,
		Code:      code,
		Token:     token,
		Type:      typ,
		ExpiresAt: now.Add(s.ttl()),
		CreatedAt: now,
	})
	if err != nil {
		log.Error("failed to store verification code",
			slog.Int64("user_id", user.ID),
			slog.Any("error", err),
		)
		return domain.VerificationCode{}, fmt.Errorf("service: create verification code: %w", err)
	}

	log.Debug("verification code issued",
		slog.Int64("user_id", user.ID),
		slog.Int64("code_id", created.ID),
		slog.String("type", string(typ)),
		slog.Time("expires_at", created.ExpiresAt),
	)

	return created, nil
}

// CheckStatus reports whether the user owning token is VERIFIED, along with
// their email address. It reads the user's current status, not the code row.
func (s *VerificationService) CheckStatus(ctx context.Context, token string) (domain.VerificationStatus, error) {
	var status domain.VerificationStatus

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		code, err := tx.VerificationCodes().GetVerificationCodeByToken(ctx, token)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return notFound(resourceVerificationCode, "token", token)
			}
			return fmt.Errorf("service: load verification code: %w", err)
		}

		user, err := tx.Users().GetUserByID(ctx, code.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return notFound(resourceUser, "id", code.UserID)
			}
			return fmt.Errorf("service: load user: %w", err)
		}

		status = domain.VerificationStatus{
			Verified: user.Status == domain.UserStatusVerified,
			Email:    user.Email,
		}
		return nil
	})
	if err != nil {
		return domain.VerificationStatus{}, err
	}

	return status, nil
}

// VerifyAccount checks submittedCode against the most recent
// EMAIL_VERIFICATION code of the user with the given email and, on success,
// consumes the code and marks the user VERIFIED.
//
// Every call counts as an attempt: the attempt counter is committed even
// when validation fails.
func (s *VerificationService) VerifyAccount(ctx context.Context, email, submittedCode string) error {
	log := slogx.FromContext(ctx)

	// Rule failures are returned after the transaction commits.
	var rejected error

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 1. Resolve the user
		user, err := tx.Users().GetUserByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				log.Warn("verification attempted for unknown email")
				return notFound(resourceUser, "email", email)
			}
			return fmt.Errorf("service: load user: %w", err)
		}

		// 2. Only the latest code is eligible
		latest, err := tx.VerificationCodes().GetLatestVerificationCode(ctx, user.ID, domain.VerificationEmail)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				log.Warn("verification attempted with no code issued", slog.Int64("user_id", user.ID))
				return notFound(resourceVerificationCode, "user and type",
					user.Username+" and "+string(domain.VerificationEmail))
			}
			return fmt.Errorf("service: load verification code: %w", err)
		}

		// 3. Count the attempt before validating
		latest, err = tx.VerificationCodes().IncrementVerificationCodeAttempts(ctx, latest.ID)
		if err != nil {
			return fmt.Errorf("service: increment attempts: %w", err)
		}

		// 4. Expiry, then reuse, then mismatch
		now := s.now()
		if rejected = validateCode(latest, submittedCode, now); rejected != nil {
			log.Warn("verification rejected",
				slog.Int64("user_id", user.ID),
				slog.Int64("code_id", latest.ID),
				slog.Int("attempt_count", latest.AttemptCount),
				slog.String("reason", errors.Unwrap(rejected).Error()),
			)
			return nil
		}

		// 5. Consume the code. A concurrent winner leaves zero rows to update.
		if err := tx.VerificationCodes().MarkVerificationCodeUsed(ctx, latest.ID, now); err != nil {
			if errors.Is(err, store.ErrStaleRow) {
				rejected = resourceErr(ErrCodeAlreadyUsed, resourceVerificationCode, "code", submittedCode)
				return nil
			}
			return fmt.Errorf("service: mark code used: %w", err)
		}

		if err := tx.Users().UpdateUserStatus(ctx, user.ID, domain.UserStatusVerified); err != nil {
			return fmt.Errorf("service: update user status: %w", err)
		}

		log.Info("user verified",
			slog.Int64("user_id", user.ID),
			slog.String("username", user.Username),
		)
		return nil
	})
	if err != nil {
		return err
	}

	return rejected
}

func validateCode(code domain.VerificationCode, submitted string, now time.Time) error {
	switch {
	case code.IsExpired(now):
		return resourceErr(ErrCodeExpired, resourceVerificationCode, "code", submitted)
	case code.IsConsumed():
		return resourceErr(ErrCodeAlreadyUsed, resourceVerificationCode, "code", submitted)
	case code.Code != submitted:
		return resourceErr(ErrInvalidCode, resourceVerificationCode, "code", submitted)
	}
	return nil
}
