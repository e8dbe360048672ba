package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResourceErrorMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		kind error
		want string
	}{
		{notFound("User", "id", int64(7)), ErrNotFound, "User with id: 7 not found"},
		{resourceErr(ErrAlreadyExists, "User", "email", "a@b.c"), ErrAlreadyExists, "User with email: a@b.c already exists"},
		{resourceErr(ErrInvalidCode, "VerificationCode", "code", "123456"), ErrInvalidCode, "VerificationCode with code 123456 is invalid"},
		{resourceErr(ErrCodeAlreadyUsed, "VerificationCode", "code", "123456"), ErrCodeAlreadyUsed, "VerificationCode with code 123456 has already been used"},
		{resourceErr(ErrCodeExpired, "VerificationCode", "code", "123456"), ErrCodeExpired, "VerificationCode with code 123456 has expired"},
		{resourceErr(ErrInactiveUser, "User", "id", int64(7)), ErrInactiveUser, "User with id 7 is inactive"},
		{
			&ResourceError{Kind: ErrDuplicateRoleAssignment, Resource: "User", Field: "id", Value: int64(7), Detail: "ROLE_ADMIN"},
			ErrDuplicateRoleAssignment,
			"User with id : '7' already has the role 'ROLE_ADMIN' assigned",
		},
		{resourceErr(ErrRoleMismatch, "Role", "roleId", int64(2)), ErrRoleMismatch, "Role with roleId 2 does not match user's roleId"},
		{resourceErr(ErrDefaultRoleRemoval, "User", "id", int64(7)), ErrDefaultRoleRemoval, "Cannot remove default role from User with id: 7"},
	}

	for _, tc := range tests {
		t.Run(tc.kind.Error(), func(t *testing.T) {
			require.EqualError(t, tc.err, tc.want)
			require.ErrorIs(t, tc.err, tc.kind)

			wrapped := fmt.Errorf("handler: %w", tc.err)
			require.ErrorIs(t, wrapped, tc.kind)
		})
	}
}

func TestResourceErrorKindsAreDistinct(t *testing.T) {
	t.Parallel()

	err := resourceErr(ErrCodeExpired, "VerificationCode", "code", "1")
	for _, other := range []error{ErrNotFound, ErrInvalidCode, ErrCodeAlreadyUsed, ErrInactiveUser} {
		require.False(t, errors.Is(err, other))
	}
}
