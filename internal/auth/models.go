package auth

import "errors"

const (
	RoleCustomer = "CUSTOMER"
	RoleChef     = "CHEF"
	RoleAdmin    = "ADMIN"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrNotLoggedIn        = errors.New("user must be logged in")
)

// User is the identity the rest of the system reads. It never carries a
// password.
type User struct {
	ID          int    `json:"id"`
	Username    string `json:"username"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Role        string `json:"role"`
}

// Session is a logged-in user plus their bearer token, cached in the KV store
// under SessionKey.
type Session struct {
	User
	Token string `json:"token"`
}

// Credentials is a login request body.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// NewUser is a registration request body.
type NewUser struct {
	Username    string `json:"username" validate:"required,min=3"`
	Password    string `json:"password" validate:"required,min=6"`
	Name        string `json:"name" validate:"required"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}
