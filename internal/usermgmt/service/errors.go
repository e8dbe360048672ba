package service

import (
	"errors"
	"fmt"
)

// Error kinds. Every business rule failure is a *ResourceError wrapping
// exactly one of these, so callers can match with errors.Is.
var (
	ErrNotFound                = errors.New("not found")
	ErrAlreadyExists           = errors.New("already exists")
	ErrInvalidCode             = errors.New("invalid verification code")
	ErrCodeAlreadyUsed         = errors.New("verification code already used")
	ErrCodeExpired             = errors.New("verification code expired")
	ErrInactiveUser            = errors.New("user is not active")
	ErrDuplicateRoleAssignment = errors.New("role already assigned")
	ErrRoleMismatch            = errors.New("role does not match")
	ErrDefaultRoleRemoval      = errors.New("default role cannot be removed")
)

// ResourceError names the resource, field and value a rule failed on.
type ResourceError struct {
	Kind     error
	Resource string
	Field    string
	Value    any

	// Detail carries the role name for duplicate assignments.
	Detail string
}

func (e *ResourceError) Error() string {
	switch e.Kind {
	case ErrNotFound:
		return fmt.Sprintf("%s with %s: %v not found", e.Resource, e.Field, e.Value)
	case ErrAlreadyExists:
		return fmt.Sprintf("%s with %s: %v already exists", e.Resource, e.Field, e.Value)
	case ErrInvalidCode:
		return fmt.Sprintf("%s with %s %v is invalid", e.Resource, e.Field, e.Value)
	case ErrCodeAlreadyUsed:
		return fmt.Sprintf("%s with %s %v has already been used", e.Resource, e.Field, e.Value)
	case ErrCodeExpired:
		return fmt.Sprintf("%s with %s %v has expired", e.Resource, e.Field, e.Value)
	case ErrInactiveUser:
		return fmt.Sprintf("%s with %s %v is inactive", e.Resource, e.Field, e.Value)
	case ErrDuplicateRoleAssignment:
		return fmt.Sprintf("%s with %s : '%v' already has the role '%s' assigned", e.Resource, e.Field, e.Value, e.Detail)
	case ErrRoleMismatch:
		return fmt.Sprintf("%s with %s %v does not match user's roleId", e.Resource, e.Field, e.Value)
	case ErrDefaultRoleRemoval:
		return fmt.Sprintf("Cannot remove default role from %s with %s: %v", e.Resource, e.Field, e.Value)
	}
	return fmt.Sprintf("%s with %s %v: %v", e.Resource, e.Field, e.Value, e.Kind)
}

func (e *ResourceError) Unwrap() error { return e.Kind }

func notFound(resource, field string, value any) error {
	return &ResourceError{Kind: ErrNotFound, Resource: resource, Field: field, Value: value}
}

func resourceErr(kind error, resource, field string, value any) error {
	return &ResourceError{Kind: kind, Resource: resource, Field: field, Value: value}
}
