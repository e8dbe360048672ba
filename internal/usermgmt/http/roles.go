package http

import (
	"net/http"

	"github.com/clinicwave/usermgmt/internal/usermgmt/domain"
	"github.com/clinicwave/usermgmt/internal/usermgmt/service"
	"github.com/clinicwave/usermgmt/pkg/httpx"
	"github.com/clinicwave/usermgmt/pkg/usersdk"
)

type RolesHandler struct {
	CatalogService *service.CatalogService
}

// HandleList godoc
//
//	@Summary		List all roles
//	@Description	Returns every role with the names of the permissions it grants.
//	@Tags			Roles
//	@Produce		json
//	@Success		200	{object}	usersdk.ListRolesResponse	"List of roles"
//	@Failure		500	{object}	usersdk.ErrorResponse		"Internal server error"
//	@Router			/v1/roles [get].
func (h *RolesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	roles, err := h.CatalogService.ListRoles(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "failed to retrieve roles")
		return
	}

	response := usersdk.ListRolesResponse{
		Roles: make([]usersdk.RoleResponse, len(roles)),
	}
	for i, role := range roles {
		response.Roles[i] = toRoleResponse(role)
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}

// HandleGet godoc
//
//	@Summary	Get a role
//	@Tags		Roles
//	@Produce	json
//	@Param		roleId	path		int						true	"Role ID"
//	@Success	200		{object}	usersdk.RoleResponse	"Role"
//	@Failure	400		{object}	usersdk.ErrorResponse	"Malformed role ID"
//	@Failure	404		{object}	usersdk.ErrorResponse	"Role not found"
//	@Router		/v1/roles/{roleId} [get].
func (h *RolesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "roleId")
	if !ok {
		return
	}

	role, err := h.CatalogService.GetRole(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "failed to get role")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toRoleResponse(role))
}

func toRoleResponse(role domain.Role) usersdk.RoleResponse {
	perms := role.Permissions
	if perms == nil {
		perms = []string{}
	}
	return usersdk.RoleResponse{
		ID:          role.ID,
		Name:        role.Name,
		Description: role.Description,
		Permissions: perms,
	}
}

type RoleAssignmentHandler struct {
	ProvisioningService *service.ProvisioningService
}

// HandleProvision godoc
//
//	@Summary		Provision a role
//	@Description	Assigns the role to an ACTIVE user, replacing their current role.
//	@Tags			Roles
//	@Produce		json
//	@Param			userId	path		int								true	"User ID"
//	@Param			roleId	path		int								true	"Role ID"
//	@Success		200		{object}	usersdk.RoleAssignmentResponse	"Assignment result"
//	@Failure		400		{object}	usersdk.ErrorResponse			"User is not active"
//	@Failure		404		{object}	usersdk.ErrorResponse			"User or role not found"
//	@Failure		409		{object}	usersdk.ErrorResponse			"Role already assigned"
//	@Router			/v1/users/{userId}/roles/{roleId} [post].
func (h *RoleAssignmentHandler) HandleProvision(w http.ResponseWriter, r *http.Request) {
	userID, roleID, ok := assignmentIDs(w, r)
	if !ok {
		return
	}

	assignment, err := h.ProvisioningService.ProvisionRole(r.Context(), userID, roleID)
	if err != nil {
		writeServiceError(w, r, err, "failed to provision role")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toAssignmentResponse(assignment))
}

// HandleDeProvision godoc
//
//	@Summary		De-provision a role
//	@Description	Removes the user's current role and falls back to the default role.
//	@Tags			Roles
//	@Produce		json
//	@Param			userId	path		int								true	"User ID"
//	@Param			roleId	path		int								true	"Role ID"
//	@Success		200		{object}	usersdk.RoleAssignmentResponse	"Assignment result"
//	@Failure		400		{object}	usersdk.ErrorResponse			"Inactive user, role mismatch or default role"
//	@Failure		404		{object}	usersdk.ErrorResponse			"User or role not found"
//	@Router			/v1/users/{userId}/roles/{roleId} [delete].
func (h *RoleAssignmentHandler) HandleDeProvision(w http.ResponseWriter, r *http.Request) {
	userID, roleID, ok := assignmentIDs(w, r)
	if !ok {
		return
	}

	assignment, err := h.ProvisioningService.DeProvisionRole(r.Context(), userID, roleID)
	if err != nil {
		writeServiceError(w, r, err, "failed to de-provision role")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toAssignmentResponse(assignment))
}

func assignmentIDs(w http.ResponseWriter, r *http.Request) (userID, roleID int64, ok bool) {
	if userID, ok = pathID(w, r, "userId"); !ok {
		return 0, 0, false
	}
	if roleID, ok = pathID(w, r, "roleId"); !ok {
		return 0, 0, false
	}
	return userID, roleID, true
}

func toAssignmentResponse(a domain.RoleAssignment) usersdk.RoleAssignmentResponse {
	return usersdk.RoleAssignmentResponse{
		UserID:              a.UserID,
		Username:            a.Username,
		RoleName:            a.RoleName,
		AssignmentTimestamp: a.Timestamp,
	}
}
