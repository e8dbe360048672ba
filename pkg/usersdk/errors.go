package usersdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/clinicwave/usermgmt/pkg/httpx"
)

// Error codes returned in the "error" field of failed responses.
const (
	ErrorCodeInvalidRequest          = "invalid_request"
	ErrorCodeValidation              = "validation_error"
	ErrorCodeNotFound                = "not_found"
	ErrorCodeAlreadyExists           = "already_exists"
	ErrorCodeInvalidCode             = "invalid_code"
	ErrorCodeCodeAlreadyUsed         = "code_already_used"
	ErrorCodeCodeExpired             = "code_expired"
	ErrorCodeInactiveUser            = "inactive_user"
	ErrorCodeDuplicateRoleAssignment = "duplicate_role_assignment"
	ErrorCodeRoleMismatch            = "role_mismatch"
	ErrorCodeDefaultRoleRemoval      = "default_role_removal"
	ErrorCodeRateLimitExceeded       = "rate_limit_exceeded"
	ErrorCodeServerError             = "server_error"
)

// APIError is a failed API call. It is written by the HTTP handlers and
// returned by every SDKClient method on a non-success status.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is one of the ErrorCode constants
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`

	// Details holds per-field reasons for validation errors
	Details map[string]string `json:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error:            e.Code,
		ErrorDescription: e.Description,
	})
}

// NewAPIError creates a new APIError with the given status code, error code, and description.
func NewAPIError(statusCode int, code, description string) *APIError {
	return &APIError{
		StatusCode:  statusCode,
		Code:        code,
		Description: description,
	}
}

// parseErrorResponse attempts to parse an HTTP error response into a typed error.
// Returns nil if the response indicates success (2xx status code).
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	// Validation errors carry per-field details
	var valErr ValidationErrorResponse
	if err := json.Unmarshal(body, &valErr); err == nil && valErr.Code != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        valErr.Code,
			Description: valErr.Message,
			Details:     valErr.Details,
		}
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	// Fallback: create generic error from status code
	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
