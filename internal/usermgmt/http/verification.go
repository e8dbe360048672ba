package http

import (
	"net/http"
	"strings"

	"github.com/clinicwave/usermgmt/internal/usermgmt/service"
	"github.com/clinicwave/usermgmt/pkg/httpx"
	"github.com/clinicwave/usermgmt/pkg/usersdk"
)

type VerificationHandler struct {
	VerificationService *service.VerificationService
	UserService         *service.UserService
}

// HandleStatus godoc
//
//	@Summary		Check verification status
//	@Description	Reports whether the account owning the token from a verification link is verified.
//	@Tags			Verification
//	@Produce		json
//	@Param			token	query		string								true	"Verification token"
//	@Success		200		{object}	usersdk.VerificationStatusResponse	"verified, email"
//	@Failure		400		{object}	usersdk.ErrorResponse				"Missing token"
//	@Failure		404		{object}	usersdk.ErrorResponse				"Unknown token"
//	@Router			/v1/verification/verify [get].
func (h *VerificationHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimSpace(r.URL.Query().Get("token"))
	if token == "" {
		writeBadRequest(w, "token is required")
		return
	}

	status, err := h.VerificationService.CheckStatus(r.Context(), token)
	if err != nil {
		writeServiceError(w, r, err, "failed to check verification status")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, usersdk.VerificationStatusResponse{
		Verified: status.Verified,
		Email:    status.Email,
	})
}

// HandleVerify godoc
//
//	@Summary		Verify an account
//	@Description	Submits the 6 digit code sent to the user. Only the most recent code is accepted and every submission counts as an attempt.
//	@Tags			Verification
//	@Accept			json
//	@Produce		json
//	@Param			request	body		usersdk.VerifyRequest			true	"email, code"
//	@Success		200		{object}	usersdk.VerifyResponse			"Account verified"
//	@Failure		400		{object}	usersdk.ErrorResponse			"Invalid code"
//	@Failure		404		{object}	usersdk.ErrorResponse			"Unknown email or no code issued"
//	@Failure		409		{object}	usersdk.ErrorResponse			"Code already used"
//	@Failure		410		{object}	usersdk.ErrorResponse			"Code expired"
//	@Failure		429		{object}	usersdk.ErrorResponse			"Too many attempts"
//	@Router			/v1/verification/verify [post].
func (h *VerificationHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	var req usersdk.VerifyRequest
	if err := httpx.ReadJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	if verrs := req.Validate(); verrs != nil {
		writeValidationError(w, verrs)
		return
	}

	if err := h.VerificationService.VerifyAccount(r.Context(), req.Email, req.Code); err != nil {
		writeServiceError(w, r, err, "failed to verify account")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, usersdk.VerifyResponse{
		Message: "Account verified successfully!",
	})
}

// HandleResend godoc
//
//	@Summary		Resend a verification code
//	@Description	Issues a fresh email verification code to a PENDING user. Earlier codes stop being accepted.
//	@Tags			Verification
//	@Accept			json
//	@Param			request	body	usersdk.ResendRequest	true	"email"
//	@Success		204
//	@Failure		404	{object}	usersdk.ErrorResponse	"Unknown email"
//	@Failure		409	{object}	usersdk.ErrorResponse	"Account already verified"
//	@Router			/v1/verification/resend [post].
func (h *VerificationHandler) HandleResend(w http.ResponseWriter, r *http.Request) {
	var req usersdk.ResendRequest
	if err := httpx.ReadJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	if verrs := req.Validate(); verrs != nil {
		writeValidationError(w, verrs)
		return
	}

	if err := h.UserService.ResendVerification(r.Context(), req.Email); err != nil {
		writeServiceError(w, r, err, "failed to resend verification code")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
