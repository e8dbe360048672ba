package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/clinicwave/usermgmt/internal/usermgmt/domain"
	"github.com/clinicwave/usermgmt/internal/usermgmt/store"
	"github.com/clinicwave/usermgmt/pkg/idx"
	"github.com/clinicwave/usermgmt/pkg/slogx"
)

// Notifier delivers notifications without blocking the caller. Delivery
// failures are the notifier's to log.
type Notifier interface {
	Dispatch(ctx context.Context, req domain.NotificationRequest)
}

type UserService struct {
	Store        store.Store
	Verification *VerificationService
	Notifier     Notifier

	// VerificationLinkBase prefixes the link sent with verification codes,
	// e.g. "https://app.example.com".
	VerificationLinkBase string

	// Now defaults to time.Now.
	Now func() time.Time
}

func (s *UserService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// CreateUser registers a PENDING user on the default role and user type, issues their
// first EMAIL_VERIFICATION code and sends it. The user and code are stored
// atomically; the notification goes out after commit.
func (s *UserService) CreateUser(ctx context.Context, p domain.UserProfile) (domain.User, error) {
	l := slogx.FromContext(ctx)

	// 1. Validate input
	if err := p.Validate(s.now()); err != nil {
		return domain.User{}, err
	}

	var (
		user domain.User
		code domain.VerificationCode
	)
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 2. Every user starts on the default role
		def, err := tx.Roles().GetRoleByName(ctx, domain.DefaultRoleName)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				l.Error("default role missing from catalog")
				return notFound(resourceRole, "roleName", domain.DefaultRoleName)
			}
			return fmt.Errorf("service: load default role: %w", err)
		}

		// 3. And on the default user type
		typ, err := tx.UserTypes().GetUserTypeByType(ctx, domain.UserTypeDefault)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				l.Error("default user type missing from catalog")
				return notFound(resourceUserType, "type", domain.UserTypeDefault)
			}
			return fmt.Errorf("service: load default user type: %w", err)
		}

		// 4. Persist the user
		user, err = tx.Users().CreateUser(ctx, domain.User{
			UserProfile: p,
			Status:      domain.UserStatusPending,
			RoleID:      def.ID,
			UserTypeID:  typ.ID,
		})
		if err != nil {
			if conflict := userConflict(err, p); conflict != nil {
				l.Warn("user registration conflict", slog.Any("error", conflict))
				return conflict
			}
			return fmt.Errorf("service: create user: %w", err)
		}

		// 5. Issue the first code in the same transaction
		code, err = s.Verification.issueCode(ctx, tx, user, domain.VerificationEmail)
		return err
	})
	if err != nil {
		return domain.User{}, err
	}

	l.Info("user registered",
		slog.Int64("user_id", user.ID),
		slog.String("username", user.Username),
	)

	// 6. Fire and forget
	s.sendCode(ctx, user, code)

	return user, nil
}

// ResendVerification issues a fresh EMAIL_VERIFICATION code to a PENDING
// user. The new code supersedes every earlier one.
func (s *UserService) ResendVerification(ctx context.Context, email string) error {
	l := slogx.FromContext(ctx)

	var (
		user domain.User
		code domain.VerificationCode
	)
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		user, err = tx.Users().GetUserByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return notFound(resourceUser, "email", email)
			}
			return fmt.Errorf("service: load user: %w", err)
		}

		if user.Status != domain.UserStatusPending {
			l.Warn("verification resend requested for verified user",
				slog.Int64("user_id", user.ID),
				slog.String("status", string(user.Status)),
			)
			return resourceErr(ErrCodeAlreadyUsed, resourceVerificationCode, "email", email)
		}

		code, err = s.Verification.issueCode(ctx, tx, user, domain.VerificationEmail)
		return err
	})
	if err != nil {
		return err
	}

	s.sendCode(ctx, user, code)
	return nil
}

func (s *UserService) GetUser(ctx context.Context, id int64) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, notFound(resourceUser, "id", id)
		}
		return domain.User{}, fmt.Errorf("service: load user: %w", err)
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx)
}

// UpdateUser replaces the profile fields of a user. Status and role are
// owned by the verification and provisioning flows and are left alone.
func (s *UserService) UpdateUser(ctx context.Context, id int64, p domain.UserProfile) (domain.User, error) {
	if err := p.Validate(s.now()); err != nil {
		return domain.User{}, err
	}

	var user domain.User
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().UpdateUserProfile(ctx, id, p); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return notFound(resourceUser, "id", id)
			}
			if conflict := userConflict(err, p); conflict != nil {
				return conflict
			}
			return fmt.Errorf("service: update user: %w", err)
		}

		var err error
		user, err = tx.Users().GetUserByID(ctx, id)
		return err
	})
	if err != nil {
		return domain.User{}, err
	}

	return user, nil
}

// SetStatus applies a lifecycle transition made outside the verification
// flow, such as VERIFIED -> ACTIVE.
func (s *UserService) SetStatus(ctx context.Context, id int64, status domain.UserStatus) error {
	if !status.IsValid() {
		return domain.ValidationErrors{"status": "unknown status " + string(status)}
	}

	if err := s.Store.Users().UpdateUserStatus(ctx, id, status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return notFound(resourceUser, "id", id)
		}
		return fmt.Errorf("service: update user status: %w", err)
	}

	slogx.FromContext(ctx).Info("user status changed",
		slog.Int64("user_id", id),
		slog.String("status", string(status)),
	)
	return nil
}

// DeleteUser removes a user along with their verification history.
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.Store.Users().DeleteUser(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return notFound(resourceUser, "id", id)
		}
		return fmt.Errorf("service: delete user: %w", err)
	}
	return nil
}

// VerificationLink builds the link a user follows to check their status.
func (s *UserService) VerificationLink(token string) string {
	return strings.TrimRight(s.VerificationLinkBase, "/") + "/verification/verify?token=" + url.QueryEscape(token)
}

func (s *UserService) sendCode(ctx context.Context, user domain.User, code domain.VerificationCode) {
	if s.Notifier == nil {
		return
	}

	req := domain.NewVerificationNotification(user, code, s.VerificationLink(code.Token))
	req.ID = idx.New().String()
	s.Notifier.Dispatch(ctx, req)
}

// userConflict maps a unique violation onto AlreadyExists naming the field
// and the submitted value. It returns nil for any other error.
func userConflict(err error, p domain.UserProfile) error {
	var conflict *store.ConflictError
	if !errors.As(err, &conflict) {
		return nil
	}

	var value string
	switch conflict.Field {
	case "email":
		value = p.Email
	case "username":
		value = p.Username
	case "mobile":
		value = p.Mobile
	}
	return resourceErr(ErrAlreadyExists, resourceUser, conflict.Field, value)
}
