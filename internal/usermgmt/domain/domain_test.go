package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTemplateFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typ      VerificationType
		channel  NotificationChannel
		subject  string
		template string
	}{
		{VerificationEmail, ChannelEmail, "Verify Your Email", "email-verification"},
		{VerificationPasswordReset, ChannelEmail, "Reset Your Password", "password-reset"},
		{VerificationTwoFactor, ChannelEmail, "Two-Factor Authentication Code", "two-factor-authentication"},
		{VerificationAccountDeletion, ChannelEmail, "Confirm Account Deletion Request", "account-deletion"},
		{VerificationEmailChange, ChannelEmail, "Confirm Email Address Change", "email-change"},
		{VerificationPhone, ChannelSMS, "Action Required: Verification Needed", "generic-verification"},
		{VerificationPhoneNumberChange, ChannelSMS, "Action Required: Verification Needed", "generic-verification"},
	}

	for _, tc := range tests {
		t.Run(string(tc.typ), func(t *testing.T) {
			tmpl := TemplateFor(tc.typ)
			require.Equal(t, tc.channel, tmpl.Channel)
			require.Equal(t, tc.subject, tmpl.Subject)
			require.Equal(t, tc.template, tmpl.TemplateName)
		})
	}
}

func TestNewVerificationNotification(t *testing.T) {
	t.Parallel()

	user := User{UserProfile: UserProfile{Username: "jdoe", Email: "jdoe@example.com", Mobile: "0412345678"}}

	t.Run("email codes go to the email address", func(t *testing.T) {
		code := VerificationCode{Code: "000042", Type: VerificationEmail}
		req := NewVerificationNotification(user, code, "http://app/verification/verify?token=abc")

		require.Equal(t, "jdoe@example.com", req.Recipient)
		require.Equal(t, ChannelEmail, req.Channel)
		require.Equal(t, CategoryVerification, req.Category)
		require.Equal(t, map[string]string{
			"verificationCode": "000042",
			"userName":         "jdoe",
			"verificationType": "EMAIL_VERIFICATION",
			"verificationLink": "http://app/verification/verify?token=abc",
		}, req.Variables)
	})

	t.Run("phone codes go to the mobile number", func(t *testing.T) {
		code := VerificationCode{Code: "123456", Type: VerificationPhone}
		req := NewVerificationNotification(user, code, "")

		require.Equal(t, "0412345678", req.Recipient)
		require.Equal(t, ChannelSMS, req.Channel)
	})
}

func TestVerificationCodePredicates(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

	code := VerificationCode{ExpiresAt: now.Add(time.Second)}
	require.False(t, code.IsExpired(now))
	require.False(t, code.IsConsumed())

	code.ExpiresAt = now.Add(-time.Second)
	require.True(t, code.IsExpired(now))

	// Expiry is strict: a code expiring exactly now is still valid.
	code.ExpiresAt = now
	require.False(t, code.IsExpired(now))

	require.True(t, VerificationCode{Used: true}.IsConsumed())
	require.True(t, VerificationCode{Verified: true}.IsConsumed())
}

func TestEnumValidity(t *testing.T) {
	t.Parallel()

	require.True(t, UserStatusPending.IsValid())
	require.True(t, UserStatusSuspended.IsValid())
	require.False(t, UserStatus("DELETED").IsValid())

	require.True(t, GenderPreferNotToSay.IsValid())
	require.False(t, Gender("male").IsValid())

	require.True(t, VerificationPhoneNumberChange.IsValid())
	require.False(t, VerificationType("MAGIC_LINK").IsValid())
}

func TestRoleIsDefault(t *testing.T) {
	t.Parallel()

	require.True(t, Role{Name: DefaultRoleName}.IsDefault())
	require.False(t, Role{Name: AdminRoleName}.IsDefault())
}

func TestUserProfileValidate(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	valid := UserProfile{
		FirstName:   "Jane",
		LastName:    "Doe",
		Mobile:      "0412345678",
		Username:    "jdoe",
		Email:       "jane@example.com",
		DateOfBirth: time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
		Gender:      GenderFemale,
	}
	require.NoError(t, valid.Validate(now))

	tests := []struct {
		name  string
		field string
		edit  func(p *UserProfile)
	}{
		{"blank first name", "firstName", func(p *UserProfile) { p.FirstName = "  " }},
		{"blank last name", "lastName", func(p *UserProfile) { p.LastName = "" }},
		{"short mobile", "mobile", func(p *UserProfile) { p.Mobile = "12345" }},
		{"alpha mobile", "mobile", func(p *UserProfile) { p.Mobile = "04123456ab" }},
		{"blank username", "username", func(p *UserProfile) { p.Username = "" }},
		{"bad email", "email", func(p *UserProfile) { p.Email = "not-an-email" }},
		{"display name email", "email", func(p *UserProfile) { p.Email = "Jane <jane@example.com>" }},
		{"future birth date", "dateOfBirth", func(p *UserProfile) { p.DateOfBirth = now.Add(24 * time.Hour) }},
		{"missing birth date", "dateOfBirth", func(p *UserProfile) { p.DateOfBirth = time.Time{} }},
		{"unknown gender", "gender", func(p *UserProfile) { p.Gender = "UNKNOWN" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := valid
			tc.edit(&p)

			err := p.Validate(now)
			var verrs ValidationErrors
			require.ErrorAs(t, err, &verrs)
			require.Contains(t, verrs, tc.field)
			require.Len(t, verrs, 1)
		})
	}
}

func TestValidationErrorsMessageIsSorted(t *testing.T) {
	t.Parallel()

	verrs := ValidationErrors{
		"mobile":    "mobile number must be 10 digits",
		"email":     "email must be a valid address",
		"firstName": "first name is required",
	}

	want := "validation failed: email: email must be a valid address, " +
		"firstName: first name is required, mobile: mobile number must be 10 digits"
	for range 10 {
		require.Equal(t, want, verrs.Error())
	}
}

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()

	c := DefaultCatalog()
	require.Contains(t, c.UserTypes, UserTypeDefault)

	names := make([]string, len(c.Roles))
	for i, def := range c.Roles {
		names[i] = def.Name
	}
	require.ElementsMatch(t, []string{DefaultRoleName, AdminRoleName}, names)
}
