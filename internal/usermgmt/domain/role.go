package domain

import "time"

const (
	// DefaultRoleName is the role every user lands on and can never be stripped below.
	DefaultRoleName = "ROLE_DEFAULT"
	AdminRoleName   = "ROLE_ADMIN"

	PermissionRead  = "PERMISSION_READ"
	PermissionWrite = "PERMISSION_WRITE"
)

type Role struct {
	ID          int64
	Name        string
	Description string
	Permissions []string // Permission names granted to the role
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (r Role) IsDefault() bool { return r.Name == DefaultRoleName }

type Permission struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
}

// RoleDefinition describes a role to be seeded into the catalog.
type RoleDefinition struct {
	Name        string
	Description string
	Permissions []string
}

// Catalog is the reference data seeded into an empty store.
type Catalog struct {
	Roles     []RoleDefinition
	UserTypes []UserTypeName
}

// DefaultCatalog returns the roles and user types the service seeds on startup.
func DefaultCatalog() Catalog {
	return Catalog{
		Roles: []RoleDefinition{
			{
				Name:        DefaultRoleName,
				Description: "Default role assigned to every registered user",
				Permissions: []string{PermissionRead},
			},
			{
				Name:        AdminRoleName,
				Description: "Administrative role",
				Permissions: []string{PermissionRead, PermissionWrite},
			},
		},
		UserTypes: []UserTypeName{UserTypeDefault},
	}
}

// RoleAssignment is the outcome of a provisioning operation. Timestamp is
// the wall-clock time of the operation and is not persisted.
type RoleAssignment struct {
	UserID    int64
	Username  string
	RoleName  string
	Timestamp time.Time
}
