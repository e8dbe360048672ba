package usersdk

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVerifyRequestValidate(t *testing.T) {
	t.Parallel()

	require.Nil(t, VerifyRequest{Email: "jane@example.com", Code: "000042"}.Validate())

	tests := []struct {
		name   string
		req    VerifyRequest
		field  string
		reason string
	}{
		{"missing email", VerifyRequest{Code: "123456"}, "email", requiredReason},
		{"bad email", VerifyRequest{Email: "jane", Code: "123456"}, "email", invalidEmail},
		{"missing code", VerifyRequest{Email: "jane@example.com"}, "code", requiredReason},
		{"short code", VerifyRequest{Email: "jane@example.com", Code: "12345"}, "code", "must be exactly 6 digits"},
		{"alpha code", VerifyRequest{Email: "jane@example.com", Code: "12345a"}, "code", "must be exactly 6 digits"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			errs := tc.req.Validate()
			require.Equal(t, tc.reason, errs[tc.field])
			require.Len(t, errs, 1)
		})
	}
}

func TestResendRequestValidate(t *testing.T) {
	t.Parallel()

	require.Nil(t, ResendRequest{Email: "jane@example.com"}.Validate())
	require.Equal(t, map[string]string{"email": requiredReason}, ResendRequest{}.Validate())
	require.Equal(t, map[string]string{"email": invalidEmail}, ResendRequest{Email: "Jane <jane@example.com>"}.Validate())
}

func TestStatusRequestValidate(t *testing.T) {
	t.Parallel()

	require.Nil(t, StatusRequest{Status: "ACTIVE"}.Validate())
	require.Equal(t, map[string]string{"status": requiredReason}, StatusRequest{Status: " "}.Validate())
}
