package domain

import "time"

// UserTypeName is the enumerated kind of account a user holds.
type UserTypeName string

// UserTypeDefault is assigned to every user at registration.
const UserTypeDefault UserTypeName = "USER_TYPE_DEFAULT"

type UserType struct {
	ID        int64
	Type      UserTypeName
	CreatedAt time.Time
	UpdatedAt time.Time
}
