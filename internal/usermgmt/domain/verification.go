package domain

import "time"

// VerificationType tags the purpose a verification code was issued for.
type VerificationType string

const (
	VerificationEmail             VerificationType = "EMAIL_VERIFICATION"
	VerificationPasswordReset     VerificationType = "PASSWORD_RESET"
	VerificationTwoFactor         VerificationType = "TWO_FACTOR_AUTHENTICATION"
	VerificationAccountDeletion   VerificationType = "ACCOUNT_DELETION"
	VerificationEmailChange       VerificationType = "EMAIL_CHANGE"
	VerificationPhone             VerificationType = "PHONE_VERIFICATION"
	VerificationPhoneNumberChange VerificationType = "PHONE_NUMBER_CHANGE"
)

func (t VerificationType) IsValid() bool {
	switch t {
	case VerificationEmail, VerificationPasswordReset, VerificationTwoFactor,
		VerificationAccountDeletion, VerificationEmailChange,
		VerificationPhone, VerificationPhoneNumberChange:
		return true
	}
	return false
}

const (
	// VerificationCodeTTL is how long an issued code stays valid.
	VerificationCodeTTL = 3 * 24 * time.Hour
)

// VerificationCode is one row of the per-user ledger of issued codes.
// Used and Verified flip together exactly once.
type VerificationCode struct {
	ID           int64
	UserID       int64
	Code         string // 6 digit, zero padded
	Token        string // public lookup handle, safe to embed in a URL
	Type         VerificationType
	ExpiresAt    time.Time
	Used         bool
	Verified     bool
	VerifiedAt   *time.Time
	AttemptCount int
	CreatedAt    time.Time
}

func (c VerificationCode) IsExpired(now time.Time) bool { return c.ExpiresAt.Before(now) }

func (c VerificationCode) IsConsumed() bool { return c.Used || c.Verified }

// VerificationStatus is what a token holder may learn about the owning account.
type VerificationStatus struct {
	Verified bool
	Email    string
}
