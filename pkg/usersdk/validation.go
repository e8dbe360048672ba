package usersdk

import (
	"net/mail"
	"regexp"
	"strings"
)

const (
	requiredReason = "required"
	invalidEmail   = "must be a valid email address"
)

var codePattern = regexp.MustCompile(`^\d{6}$`)

// Validate checks the verify request fields.
// Returns a map of field names to error messages, or nil if all fields are valid.
func (v VerifyRequest) Validate() map[string]string {
	errs := make(map[string]string)

	validateEmail(errs, v.Email)

	switch {
	case strings.TrimSpace(v.Code) == "":
		errs["code"] = requiredReason
	case !codePattern.MatchString(v.Code):
		errs["code"] = "must be exactly 6 digits"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Validate checks the resend request fields.
func (r ResendRequest) Validate() map[string]string {
	errs := make(map[string]string)
	validateEmail(errs, r.Email)

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Validate checks the status request fields. Whether the status is a known
// value is left to the server.
func (s StatusRequest) Validate() map[string]string {
	if strings.TrimSpace(s.Status) == "" {
		return map[string]string{"status": requiredReason}
	}
	return nil
}

func validateEmail(errs map[string]string, email string) {
	email = strings.TrimSpace(email)
	if email == "" {
		errs["email"] = requiredReason
		return
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		errs["email"] = invalidEmail
	}
}
