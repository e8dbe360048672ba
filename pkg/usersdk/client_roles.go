package usersdk

import (
	"context"
	"fmt"
	"net/http"
)

// ListRoles returns every role with its permission names.
func (c *SDKClient) ListRoles(ctx context.Context) ([]RoleResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/roles", nil, nil)
	if err != nil {
		return nil, err
	}

	var list ListRolesResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}

	return list.Roles, nil
}

// GetRole returns a single role by ID.
func (c *SDKClient) GetRole(ctx context.Context, roleID int64) (*RoleResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/v1/roles/%d", roleID), nil, nil)
	if err != nil {
		return nil, err
	}

	var role RoleResponse
	if err := decodeJSON(resp, &role, http.StatusOK); err != nil {
		return nil, err
	}

	return &role, nil
}

// ProvisionRole assigns roleID to an active user.
func (c *SDKClient) ProvisionRole(ctx context.Context, userID, roleID int64) (*RoleAssignmentResponse, error) {
	return c.roleAssignment(ctx, http.MethodPost, userID, roleID)
}

// DeProvisionRole removes roleID from an active user, who falls back to the
// default role.
func (c *SDKClient) DeProvisionRole(ctx context.Context, userID, roleID int64) (*RoleAssignmentResponse, error) {
	return c.roleAssignment(ctx, http.MethodDelete, userID, roleID)
}

func (c *SDKClient) roleAssignment(ctx context.Context, method string, userID, roleID int64) (*RoleAssignmentResponse, error) {
	path := fmt.Sprintf("/v1/users/%d/roles/%d", userID, roleID)
	resp, err := c.doRequest(ctx, method, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var assignment RoleAssignmentResponse
	if err := decodeJSON(resp, &assignment, http.StatusOK); err != nil {
		return nil, err
	}

	return &assignment, nil
}
