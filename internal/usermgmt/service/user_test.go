package service

import (
	"context"
	"testing"

	"github.com/clinicwave/usermgmt/internal/usermgmt/domain"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	u, err := f.users.CreateUser(ctx, profile("1"))
	require.NoError(t, err)
	require.NotZero(t, u.ID)
	require.Equal(t, domain.UserStatusPending, u.Status)
	require.Equal(t, f.defaultRole.ID, u.RoleID)
	require.NotZero(t, u.UserTypeID)
	require.Equal(t, domain.UserTypeDefault, u.UserType)

	stored := f.reloadUser(t, u.ID)
	require.Equal(t, u.UserTypeID, stored.UserTypeID)
	require.Equal(t, domain.UserTypeDefault, stored.UserType)

	codes, err := f.store.VerificationCodes().ListVerificationCodesByUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, codes, 1)
	code := codes[0]
	require.Equal(t, domain.VerificationEmail, code.Type)

	req := f.notifier.Last(t)
	require.NotEmpty(t, req.ID)
	require.Equal(t, u.Email, req.Recipient)
	require.Equal(t, "Verify Your Email", req.Subject)
	require.Equal(t, "email-verification", req.TemplateName)
	require.Equal(t, domain.ChannelEmail, req.Channel)
	require.Equal(t, domain.CategoryVerification, req.Category)
	require.Equal(t, code.Code, req.Variables[domain.VarVerificationCode])
	require.Equal(t, u.Username, req.Variables[domain.VarUserName])
	require.Equal(t,
		"https://clinic.example.com/verification/verify?token="+code.Token,
		req.Variables[domain.VarVerificationLink],
	)

	t.Run("invalid profile", func(t *testing.T) {
		p := profile("2")
		p.Mobile = "123"
		p.Email = "nope"

		_, err := f.users.CreateUser(ctx, p)
		var verrs domain.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		require.Contains(t, verrs, "mobile")
		require.Contains(t, verrs, "email")

		users, err := f.users.ListUsers(ctx)
		require.NoError(t, err)
		require.Len(t, users, 1)
	})

	t.Run("duplicate fields are reported", func(t *testing.T) {
		before := f.notifier.Count()

		tests := []struct {
			field string
			edit  func(p *domain.UserProfile)
		}{
			{"email", func(p *domain.UserProfile) { p.Email = u.Email }},
			{"username", func(p *domain.UserProfile) { p.Username = u.Username }},
			{"mobile", func(p *domain.UserProfile) { p.Mobile = u.Mobile }},
		}
		for _, tc := range tests {
			p := profile("3")
			tc.edit(&p)

			_, err := f.users.CreateUser(ctx, p)
			require.ErrorIs(t, err, ErrAlreadyExists, tc.field)

			var rerr *ResourceError
			require.ErrorAs(t, err, &rerr)
			require.Equal(t, tc.field, rerr.Field)
		}

		require.Equal(t, before, f.notifier.Count())
	})
}

func TestCreateUser_RequiresDefaultRole(t *testing.T) {
	ctx := context.Background()
	f := newFixtureWithCatalog(t, domain.Catalog{UserTypes: []domain.UserTypeName{domain.UserTypeDefault}})

	_, err := f.users.CreateUser(ctx, profile("1"))
	requireNotFound(t, err, "Role")

	users, err := f.users.ListUsers(ctx)
	require.NoError(t, err)
	require.Empty(t, users)
}

func TestCreateUser_RequiresDefaultUserType(t *testing.T) {
	ctx := context.Background()
	f := newFixtureWithCatalog(t, domain.Catalog{Roles: domain.DefaultCatalog().Roles})

	_, err := f.users.CreateUser(ctx, profile("1"))
	requireNotFound(t, err, "UserType")

	var rerr *ResourceError
	require.ErrorAs(t, err, &rerr)
	require.Equal(t, "type", rerr.Field)
	require.Equal(t, domain.UserTypeDefault, rerr.Value)

	users, err := f.users.ListUsers(ctx)
	require.NoError(t, err)
	require.Empty(t, users)
	require.Zero(t, f.notifier.Count())
}

// Registration through verification, as a caller would drive it.
func TestRegistrationAndVerification(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	u, err := f.users.CreateUser(ctx, profile("1"))
	require.NoError(t, err)
	require.Equal(t, domain.UserStatusPending, u.Status)
	require.Equal(t, f.defaultRole.ID, u.RoleID)

	req := f.notifier.Last(t)
	code := req.Variables[domain.VarVerificationCode]
	require.Regexp(t, `^\d{6}$`, code)

	require.NoError(t, f.verification.VerifyAccount(ctx, u.Email, code))
	require.Equal(t, domain.UserStatusVerified, f.reloadUser(t, u.ID).Status)

	require.ErrorIs(t, f.verification.VerifyAccount(ctx, u.Email, code), ErrCodeAlreadyUsed)

	codes, err := f.store.VerificationCodes().ListVerificationCodesByUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, codes, 1)

	status, err := f.verification.CheckStatus(ctx, codes[0].Token)
	require.NoError(t, err)
	require.Equal(t, domain.VerificationStatus{Verified: true, Email: u.Email}, status)

	// Once activated the user can be moved onto another role and back.
	require.NoError(t, f.users.SetStatus(ctx, u.ID, domain.UserStatusActive))

	assigned, err := f.provisioning.ProvisionRole(ctx, u.ID, f.adminRole.ID)
	require.NoError(t, err)
	require.Equal(t, domain.AdminRoleName, assigned.RoleName)

	removed, err := f.provisioning.DeProvisionRole(ctx, u.ID, f.adminRole.ID)
	require.NoError(t, err)
	require.Equal(t, domain.DefaultRoleName, removed.RoleName)
}

func TestResendVerification(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.verification.Rand = codeSequence(111111, 222222)

	u, err := f.users.CreateUser(ctx, profile("1"))
	require.NoError(t, err)
	require.Equal(t, "111111", f.notifier.Last(t).Variables[domain.VarVerificationCode])

	require.NoError(t, f.users.ResendVerification(ctx, u.Email))
	require.Equal(t, 2, f.notifier.Count())
	require.Equal(t, "222222", f.notifier.Last(t).Variables[domain.VarVerificationCode])

	require.ErrorIs(t, f.verification.VerifyAccount(ctx, u.Email, "111111"), ErrInvalidCode)
	require.NoError(t, f.verification.VerifyAccount(ctx, u.Email, "222222"))

	t.Run("verified users are refused", func(t *testing.T) {
		err := f.users.ResendVerification(ctx, u.Email)
		require.ErrorIs(t, err, ErrCodeAlreadyUsed)
		require.Equal(t, 2, f.notifier.Count())
	})

	t.Run("unknown email", func(t *testing.T) {
		require.ErrorIs(t, f.users.ResendVerification(ctx, "nobody@example.com"), ErrNotFound)
	})
}

func TestUserManagement(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	u, err := f.users.CreateUser(ctx, profile("1"))
	require.NoError(t, err)
	other, err := f.users.CreateUser(ctx, profile("2"))
	require.NoError(t, err)

	t.Run("get", func(t *testing.T) {
		got, err := f.users.GetUser(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, u.Email, got.Email)

		_, err = f.users.GetUser(ctx, 9999)
		requireNotFound(t, err, "User")
	})

	t.Run("update profile", func(t *testing.T) {
		p := u.UserProfile
		p.Bio = "Night shift"
		p.FirstName = "Janet"

		got, err := f.users.UpdateUser(ctx, u.ID, p)
		require.NoError(t, err)
		require.Equal(t, "Janet", got.FirstName)
		require.Equal(t, "Night shift", got.Bio)
		require.Equal(t, domain.UserStatusPending, got.Status)

		p.Email = other.Email
		_, err = f.users.UpdateUser(ctx, u.ID, p)
		require.ErrorIs(t, err, ErrAlreadyExists)

		_, err = f.users.UpdateUser(ctx, 9999, profile("9"))
		requireNotFound(t, err, "User")
	})

	t.Run("status", func(t *testing.T) {
		require.NoError(t, f.users.SetStatus(ctx, u.ID, domain.UserStatusSuspended))
		require.Equal(t, domain.UserStatusSuspended, f.reloadUser(t, u.ID).Status)

		var verrs domain.ValidationErrors
		require.ErrorAs(t, f.users.SetStatus(ctx, u.ID, "DELETED"), &verrs)
		require.ErrorIs(t, f.users.SetStatus(ctx, 9999, domain.UserStatusActive), ErrNotFound)
	})

	t.Run("delete cascades to codes", func(t *testing.T) {
		require.NoError(t, f.users.DeleteUser(ctx, other.ID))

		_, err := f.users.GetUser(ctx, other.ID)
		require.ErrorIs(t, err, ErrNotFound)

		codes, err := f.store.VerificationCodes().ListVerificationCodesByUser(ctx, other.ID)
		require.NoError(t, err)
		require.Empty(t, codes)

		require.ErrorIs(t, f.users.DeleteUser(ctx, other.ID), ErrNotFound)
	})
}

func TestVerificationLink(t *testing.T) {
	t.Parallel()

	s := &UserService{VerificationLinkBase: "http://localhost:3000/"}
	require.Equal(t, "http://localhost:3000/verification/verify?token=abc-123", s.VerificationLink("abc-123"))
}
