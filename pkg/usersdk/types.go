package usersdk

import "time"

// ============================================================================
// Error Types
// ============================================================================

// ErrorResponse is the body of every failed response except validation failures.
type ErrorResponse struct {
	// Error is a machine readable error code (e.g., "not_found", "code_expired")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// ValidationErrorResponse is returned with 400 when request fields are rejected.
type ValidationErrorResponse struct {
	// Code is always "validation_error"
	Code string `json:"code"`

	// Message is a human-readable error message
	Message string `json:"message"`

	// Details maps field names to the reason they were rejected
	Details map[string]string `json:"details,omitempty"`
}

// ============================================================================
// User Types
// ============================================================================

// DateLayout is the wire format of dates of birth.
const DateLayout = "2006-01-02"

// UserRequest creates or updates a user profile.
type UserRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Mobile      string `json:"mobile"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	DateOfBirth string `json:"dateOfBirth"` // YYYY-MM-DD
	Gender      string `json:"gender"`      // MALE, FEMALE, OTHER or PREFER_NOT_TO_SAY
	Bio         string `json:"bio,omitempty"`
}

type UserResponse struct {
	ID          int64     `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Mobile      string    `json:"mobile"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	DateOfBirth string    `json:"dateOfBirth"`
	Gender      string    `json:"gender"`
	Bio         string    `json:"bio,omitempty"`
	Status      string    `json:"status"`
	RoleID      int64     `json:"roleId"`
	UserType    string    `json:"userType,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// StatusRequest moves a user to another lifecycle status.
type StatusRequest struct {
	// Status is one of PENDING, VERIFIED, ACTIVE, INACTIVE or SUSPENDED
	Status string `json:"status"`
}

// ============================================================================
// Role Types
// ============================================================================

type RoleResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Permissions []string `json:"permissions"`
}

type ListRolesResponse struct {
	Roles []RoleResponse `json:"roles"`
}

// RoleAssignmentResponse is the outcome of provisioning or de-provisioning a role.
type RoleAssignmentResponse struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`

	// RoleName is the role the user holds after the operation
	RoleName string `json:"roleName"`

	// AssignmentTimestamp is when the operation ran
	AssignmentTimestamp time.Time `json:"assignmentTimestamp"`
}

// ============================================================================
// Verification Types
// ============================================================================

// VerifyRequest submits the code a user received.
type VerifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"` // exactly 6 digits
}

type VerifyResponse struct {
	Message string `json:"message"`
}

// VerificationStatusResponse reports whether the account owning a token is verified.
type VerificationStatusResponse struct {
	Verified bool   `json:"verified"`
	Email    string `json:"email"`
}

// ResendRequest asks for a fresh email verification code.
type ResendRequest struct {
	Email string `json:"email"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse represents the response from health check endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks contains the status of individual dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}
