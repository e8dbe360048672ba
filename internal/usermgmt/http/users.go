package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/clinicwave/usermgmt/internal/usermgmt/domain"
	"github.com/clinicwave/usermgmt/internal/usermgmt/service"
	"github.com/clinicwave/usermgmt/pkg/httpx"
	"github.com/clinicwave/usermgmt/pkg/usersdk"
)

type UsersHandler struct {
	UserService *service.UserService
}

// HandleCreate godoc
//
//	@Summary		Register a user
//	@Description	Creates a PENDING user on the default role and sends an email verification code.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		usersdk.UserRequest				true	"User profile"
//	@Success		201		{object}	usersdk.UserResponse			"Created user"
//	@Failure		400		{object}	usersdk.ValidationErrorResponse	"Invalid profile"
//	@Failure		404		{object}	usersdk.ErrorResponse			"Default role missing"
//	@Failure		409		{object}	usersdk.ErrorResponse			"Email, username or mobile taken"
//	@Failure		500		{object}	usersdk.ErrorResponse			"Internal server error"
//	@Router			/v1/users [post].
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req usersdk.UserRequest
	if err := httpx.ReadJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	profile, verrs := toProfile(req)
	if verrs != nil {
		writeValidationError(w, verrs)
		return
	}

	user, err := h.UserService.CreateUser(r.Context(), profile)
	if err != nil {
		writeServiceError(w, r, err, "failed to create user")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toUserResponse(user))
}

// HandleList godoc
//
//	@Summary	List users
//	@Tags		Users
//	@Produce	json
//	@Success	200	{object}	usersdk.ListUsersResponse	"All users"
//	@Failure	500	{object}	usersdk.ErrorResponse		"Internal server error"
//	@Router		/v1/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "failed to list users")
		return
	}

	response := usersdk.ListUsersResponse{
		Users: make([]usersdk.UserResponse, len(users)),
	}
	for i, u := range users {
		response.Users[i] = toUserResponse(u)
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}

// HandleGet godoc
//
//	@Summary	Get a user
//	@Tags		Users
//	@Produce	json
//	@Param		userId	path		int						true	"User ID"
//	@Success	200		{object}	usersdk.UserResponse	"User"
//	@Failure	400		{object}	usersdk.ErrorResponse	"Malformed user ID"
//	@Failure	404		{object}	usersdk.ErrorResponse	"User not found"
//	@Router		/v1/users/{userId} [get].
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	user, err := h.UserService.GetUser(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "failed to get user")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}

// HandleUpdate godoc
//
//	@Summary		Update a user profile
//	@Description	Replaces the profile fields. Status and role are managed by their own endpoints.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			userId	path		int								true	"User ID"
//	@Param			request	body		usersdk.UserRequest				true	"User profile"
//	@Success		200		{object}	usersdk.UserResponse			"Updated user"
//	@Failure		400		{object}	usersdk.ValidationErrorResponse	"Invalid profile"
//	@Failure		404		{object}	usersdk.ErrorResponse			"User not found"
//	@Failure		409		{object}	usersdk.ErrorResponse			"Email, username or mobile taken"
//	@Router			/v1/users/{userId} [put].
func (h *UsersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	var req usersdk.UserRequest
	if err := httpx.ReadJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	profile, verrs := toProfile(req)
	if verrs != nil {
		writeValidationError(w, verrs)
		return
	}

	user, err := h.UserService.UpdateUser(r.Context(), id, profile)
	if err != nil {
		writeServiceError(w, r, err, "failed to update user")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}

// HandleSetStatus godoc
//
//	@Summary	Change a user's status
//	@Tags		Users
//	@Accept		json
//	@Param		userId	path	int						true	"User ID"
//	@Param		request	body	usersdk.StatusRequest	true	"New status"
//	@Success	204
//	@Failure	400	{object}	usersdk.ValidationErrorResponse	"Unknown status"
//	@Failure	404	{object}	usersdk.ErrorResponse			"User not found"
//	@Router		/v1/users/{userId}/status [patch].
func (h *UsersHandler) HandleSetStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	var req usersdk.StatusRequest
	if err := httpx.ReadJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	if verrs := req.Validate(); verrs != nil {
		writeValidationError(w, verrs)
		return
	}

	if err := h.UserService.SetStatus(r.Context(), id, domain.UserStatus(req.Status)); err != nil {
		writeServiceError(w, r, err, "failed to update user status")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete godoc
//
//	@Summary	Delete a user
//	@Tags		Users
//	@Param		userId	path	int	true	"User ID"
//	@Success	204
//	@Failure	404	{object}	usersdk.ErrorResponse	"User not found"
//	@Router		/v1/users/{userId} [delete].
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	if err := h.UserService.DeleteUser(r.Context(), id); err != nil {
		writeServiceError(w, r, err, "failed to delete user")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pathID parses a positive integer path wildcard, writing a 400 if it is malformed.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		writeBadRequest(w, name+" must be a positive integer")
		return 0, false
	}
	return id, true
}

func toProfile(req usersdk.UserRequest) (domain.UserProfile, domain.ValidationErrors) {
	var dob time.Time
	if s := strings.TrimSpace(req.DateOfBirth); s != "" {
		parsed, err := time.Parse(usersdk.DateLayout, s)
		if err != nil {
			return domain.UserProfile{}, domain.ValidationErrors{
				"dateOfBirth": "must be a date in YYYY-MM-DD format",
			}
		}
		dob = parsed
	}

	return domain.UserProfile{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Mobile:      req.Mobile,
		Username:    req.Username,
		Email:       req.Email,
		DateOfBirth: dob,
		Gender:      domain.Gender(req.Gender),
		Bio:         req.Bio,
	}, nil
}

func toUserResponse(u domain.User) usersdk.UserResponse {
	var dob string
	if !u.DateOfBirth.IsZero() {
		dob = u.DateOfBirth.Format(usersdk.DateLayout)
	}

	return usersdk.UserResponse{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Mobile:      u.Mobile,
		Username:    u.Username,
		Email:       u.Email,
		DateOfBirth: dob,
		Gender:      string(u.Gender),
		Bio:         u.Bio,
		Status:      string(u.Status),
		RoleID:      u.RoleID,
		UserType:    string(u.UserType),
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
