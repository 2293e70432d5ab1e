package models

import (
	"github.com/google/uuid"
)

// User represents a registered account of the directory.
// Password material is persisted but never serialized.
type User struct {
	ID           string  `json:"_id"`
	Name         Name    `json:"name"`
	IsBusiness   bool    `json:"isBusiness"`
	IsAdmin      bool    `json:"isAdmin"`
	Phone        string  `json:"phone"`
	Email        string  `json:"email"`
	PasswordHash string  `json:"-"`
	Salt         string  `json:"-"`
	Address      Address `json:"address"`
	Image        Image   `json:"image"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// NewUser creates a User from a registration with a fresh id and both
// timestamps set to now. Password fields are filled by the caller after hashing.
func NewUser(reg *UserRegistration) *User {
	now := Now()
	user := &User{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	user.applyProfile(reg)
	return user
}

// TableName returns the database table name for the User model.
func (u *User) TableName() string {
	return "users"
}

// ReplaceProfile overwrites the profile fields with reg and refreshes updatedAt.
// The id, createdAt and the flags are left to the caller.
func (u *User) ReplaceProfile(reg *UserRegistration) {
	u.applyProfile(reg)
	u.Touch()
}

// Touch refreshes updatedAt.
func (u *User) Touch() {
	u.UpdatedAt = Now()
}

func (u *User) applyProfile(reg *UserRegistration) {
	image := reg.Image
	image.ApplyDefaults()

	u.Name = reg.Name
	u.Phone = reg.Phone
	u.Email = reg.Email
	u.Address = reg.Address
	u.Image = image
}

// Sanitize removes sensitive information from the User object when sending to clients.
func (u *User) Sanitize() *User {
	sanitized := *u
	sanitized.PasswordHash = ""
	sanitized.Salt = ""
	return &sanitized
}

// UserRegistration is the body of POST /api/users and PUT /api/users/{id}.
// Field order decides which error is reported first.
type UserRegistration struct {
	Name       Name    `json:"name"`
	Email      string  `json:"email" validate:"required,email"`
	Password   string  `json:"password" validate:"required,min=8"`
	IsBusiness bool    `json:"isBusiness"`
	IsAdmin    bool    `json:"isAdmin"`
	Phone      string  `json:"phone" validate:"required,min=9,max=10,israeli_phone"`
	Address    Address `json:"address"`
	Image      Image   `json:"image"`
}

// UserCredentials represents the login credentials provided by a user.
type UserCredentials struct {
	Email    string `json:"email" validate:"required,min=2,email"`
	Password string `json:"password" validate:"required,min=6,login_password"`
}
