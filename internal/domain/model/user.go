package model

import (
	"strings"
	"time"
)

const (
	RoleShopOwner   = "shopowner"
	RoleDistributor = "distributor"
)

// User represents a registered shop owner or distributor.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         string
	ContactNo    string
	Address      string
	CreatedAt    time.Time
}

// IsDistributor compares role case-insensitively.
func (u User) IsDistributor() bool {
	return strings.EqualFold(u.Role, RoleDistributor)
}

// ProfileUpdate holds editable profile fields.
type ProfileUpdate struct {
	Name      string
	ContactNo string
	Address   string
}

// Registration is the sign-up form of a new shop owner or distributor.
type Registration struct {
	Name     string
	Email    string
	Password string
	Role     string
}
