package domain

import "errors"

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")

// ErrInvalidCredentials covers both an unknown username and a wrong
// password, so callers cannot tell which case occurred.
var ErrInvalidCredentials = errors.New("invalid credentials")

// User models an account. Password holds the bcrypt hash and is never
// serialized.
type User struct {
	Username  string  `json:"username"`
	Password  string  `json:"-"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	PhotoURL  *string `json:"photo_url"`
	IsAdmin   bool    `json:"-"`
}

// Public returns the user's externally visible fields.
func (u User) Public() PublicUser {
	return PublicUser{
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		PhotoURL:  u.PhotoURL,
	}
}

// PublicUser is the representation returned to API callers: no password
// hash, no admin flag.
type PublicUser struct {
	Username  string  `json:"username"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	PhotoURL  *string `json:"photo_url"`
}
