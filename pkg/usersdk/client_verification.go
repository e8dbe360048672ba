package usersdk

import (
	"context"
	"net/http"
	"net/url"
)

// CheckVerificationStatus reports whether the account owning token is verified.
func (c *SDKClient) CheckVerificationStatus(ctx context.Context, token string) (*VerificationStatusResponse, error) {
	path := "/v1/verification/verify?" + url.Values{"token": {token}}.Encode()
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var status VerificationStatusResponse
	if err := decodeJSON(resp, &status, http.StatusOK); err != nil {
		return nil, err
	}

	return &status, nil
}

// VerifyAccount submits a verification code. Every call counts as an attempt.
func (c *SDKClient) VerifyAccount(ctx context.Context, req VerifyRequest) error {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/verification/verify", req)
	if err != nil {
		return err
	}

	var out VerifyResponse
	return decodeJSON(resp, &out, http.StatusOK)
}

// ResendVerification issues a fresh code to a pending user.
func (c *SDKClient) ResendVerification(ctx context.Context, req ResendRequest) error {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/verification/resend", req)
	if err != nil {
		return err
	}

	return checkStatusNoContent(resp)
}
