package entity

import (
	"time"
)

// User is the aggregate root for the user domain.
// PasswordHash holds a bcrypt hash and must never be serialized to a client;
// handlers build explicit views instead of marshaling the entity directly.
type User struct {
	ID                string
	Email             string
	PasswordHash      string
	Name              string
	Bio               string
	Phone             string
	ProfilePictureURL string
	IsPublic          bool
	Role              Role
	OAuthAccount      bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Optional profile strings default to a single space when unset.
const ProfileFieldDefault = " "

// NewUser builds a user with registration defaults applied.
func NewUser(email, passwordHash, name string) *User {
	return &User{
		Email:             email,
		PasswordHash:      passwordHash,
		Name:              name,
		Bio:               ProfileFieldDefault,
		Phone:             ProfileFieldDefault,
		ProfilePictureURL: ProfileFieldDefault,
		IsPublic:          true,
		Role:              RoleUser,
	}
}
