package user

import "errors"

// MaxPasswordLength is the longest password bcrypt accepts, in bytes.
const MaxPasswordLength = 72

// Errors of the credential store.
var (
	ErrMissingField    = errors.New("email and password are required")
	ErrPasswordTooLong = errors.New("password is longer than 72 bytes")
	ErrDuplicateEmail  = errors.New("email already exists")
	ErrEmailNotFound   = errors.New("email not found")
	ErrBadPassword     = errors.New("incorrect password")
	ErrUserNotFound    = errors.New("user not found")
	ErrUserExists      = errors.New("user ID already exists")
)

// User is a registered account. Password holds the bcrypt hash, never the plaintext.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"-"`
}
