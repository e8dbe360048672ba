package http

import (
	"errors"
	"net/http"

	"github.com/clinicwave/usermgmt/internal/usermgmt/domain"
	"github.com/clinicwave/usermgmt/internal/usermgmt/service"
	"github.com/clinicwave/usermgmt/pkg/httpx"
	"github.com/clinicwave/usermgmt/pkg/slogx"
	"github.com/clinicwave/usermgmt/pkg/usersdk"
)

// errorMapping pairs a service error kind with its HTTP representation.
type errorMapping struct {
	kind   error
	status int
	code   string
}

var serviceErrors = []errorMapping{
	{service.ErrNotFound, http.StatusNotFound, usersdk.ErrorCodeNotFound},
	{service.ErrAlreadyExists, http.StatusConflict, usersdk.ErrorCodeAlreadyExists},
	{service.ErrInvalidCode, http.StatusBadRequest, usersdk.ErrorCodeInvalidCode},
	{service.ErrCodeAlreadyUsed, http.StatusConflict, usersdk.ErrorCodeCodeAlreadyUsed},
	{service.ErrCodeExpired, http.StatusGone, usersdk.ErrorCodeCodeExpired},
	{service.ErrInactiveUser, http.StatusBadRequest, usersdk.ErrorCodeInactiveUser},
	{service.ErrDuplicateRoleAssignment, http.StatusConflict, usersdk.ErrorCodeDuplicateRoleAssignment},
	{service.ErrRoleMismatch, http.StatusBadRequest, usersdk.ErrorCodeRoleMismatch},
	{service.ErrDefaultRoleRemoval, http.StatusBadRequest, usersdk.ErrorCodeDefaultRoleRemoval},
}

// writeServiceError translates err into an error response. Business rule
// failures carry their message to the client; anything else is logged and
// reported as a generic server error.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, failure string) {
	var verrs domain.ValidationErrors
	if errors.As(err, &verrs) {
		writeValidationError(w, verrs)
		return
	}

	for _, m := range serviceErrors {
		if errors.Is(err, m.kind) {
			usersdk.NewAPIError(m.status, m.code, err.Error()).WriteError(w)
			return
		}
	}

	slogx.FromContext(r.Context()).Error(failure, "error", err)
	usersdk.NewAPIError(http.StatusInternalServerError, usersdk.ErrorCodeServerError, failure).WriteError(w)
}

func writeValidationError(w http.ResponseWriter, details map[string]string) {
	httpx.WriteJSON(w, http.StatusBadRequest, usersdk.ValidationErrorResponse{
		Code:    usersdk.ErrorCodeValidation,
		Message: "request validation failed",
		Details: details,
	})
}

func writeBadRequest(w http.ResponseWriter, description string) {
	usersdk.NewAPIError(http.StatusBadRequest, usersdk.ErrorCodeInvalidRequest, description).WriteError(w)
}
