package domain

import (
	"maps"
	"net/mail"
	"regexp"
	"slices"
	"strings"
	"time"
)

// UserStatus is the lifecycle state of a user account.
type UserStatus string

const (
	UserStatusPending   UserStatus = "PENDING"
	UserStatusVerified  UserStatus = "VERIFIED"
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusInactive  UserStatus = "INACTIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"
)

func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusPending, UserStatusVerified, UserStatusActive, UserStatusInactive, UserStatusSuspended:
		return true
	}
	return false
}

type Gender string

const (
	GenderMale           Gender = "MALE"
	GenderFemale         Gender = "FEMALE"
	GenderOther          Gender = "OTHER"
	GenderPreferNotToSay Gender = "PREFER_NOT_TO_SAY"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther, GenderPreferNotToSay:
		return true
	}
	return false
}

// UserProfile holds the user-editable fields of an account.
type UserProfile struct {
	FirstName   string
	LastName    string
	Mobile      string
	Username    string
	Email       string
	DateOfBirth time.Time
	Gender      Gender
	Bio         string
}

type User struct {
	ID int64
	UserProfile
	Status     UserStatus
	RoleID     int64 // Foreign key to roles table
	UserTypeID int64 // Foreign key to user_types table, 0 when unset
	UserType   UserTypeName
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (u User) IsActive() bool { return u.Status == UserStatusActive }

var mobilePattern = regexp.MustCompile(`^\d{10}$`)

// ValidationErrors maps a field name to the reason it was rejected.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, field := range slices.Sorted(maps.Keys(v)) {
		parts = append(parts, field+": "+v[field])
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Validate checks the profile against the registration rules. now is used
// for the date of birth check.
func (p UserProfile) Validate(now time.Time) error {
	errs := ValidationErrors{}

	if strings.TrimSpace(p.FirstName) == "" {
		errs["firstName"] = "first name is required"
	}
	if strings.TrimSpace(p.LastName) == "" {
		errs["lastName"] = "last name is required"
	}
	if !mobilePattern.MatchString(p.Mobile) {
		errs["mobile"] = "mobile number must be 10 digits"
	}
	if strings.TrimSpace(p.Username) == "" {
		errs["username"] = "username is required"
	}
	if addr, err := mail.ParseAddress(p.Email); err != nil || addr.Address != p.Email {
		errs["email"] = "email must be a valid address"
	}
	if p.DateOfBirth.IsZero() || !p.DateOfBirth.Before(now) {
		errs["dateOfBirth"] = "date of birth must be in the past"
	}
	if !p.Gender.IsValid() {
		errs["gender"] = "gender must be one of MALE, FEMALE, OTHER, PREFER_NOT_TO_SAY"
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
