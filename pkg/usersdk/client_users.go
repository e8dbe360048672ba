package usersdk

import (
	"context"
	"fmt"
	"net/http"
)

// CreateUser registers a new user. The user starts PENDING and receives an
// email verification code.
func (c *SDKClient) CreateUser(ctx context.Context, req UserRequest) (*UserResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/users", req)
	if err != nil {
		return nil, err
	}

	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusCreated); err != nil {
		return nil, err
	}

	return &user, nil
}

// GetUser fetches a single user by ID.
func (c *SDKClient) GetUser(ctx context.Context, userID int64) (*UserResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/v1/users/%d", userID), nil, nil)
	if err != nil {
		return nil, err
	}

	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}

	return &user, nil
}

// ListUsers returns every user ordered by ID.
func (c *SDKClient) ListUsers(ctx context.Context) ([]UserResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/users", nil, nil)
	if err != nil {
		return nil, err
	}

	var list ListUsersResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}

	return list.Users, nil
}

// UpdateUser replaces the profile fields of a user.
func (c *SDKClient) UpdateUser(ctx context.Context, userID int64, req UserRequest) (*UserResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/v1/users/%d", userID), req)
	if err != nil {
		return nil, err
	}

	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}

	return &user, nil
}

// SetUserStatus moves a user to another lifecycle status.
func (c *SDKClient) SetUserStatus(ctx context.Context, userID int64, status string) error {
	resp, err := c.doJSON(ctx, http.MethodPatch, fmt.Sprintf("/v1/users/%d/status", userID), StatusRequest{Status: status})
	if err != nil {
		return err
	}

	return checkStatusNoContent(resp)
}

// DeleteUser removes a user and their verification codes.
func (c *SDKClient) DeleteUser(ctx context.Context, userID int64) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/v1/users/%d", userID), nil, nil)
	if err != nil {
		return err
	}

	return checkStatusNoContent(resp)
}
