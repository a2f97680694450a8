package domain

import "errors"

// Repository sentinels, mapped to client-facing errors by the service layer.
var (
	ErrNotFound  = errors.New("user not found")
	ErrDuplicate = errors.New("duplicate user")
)

// User is a registered account. Email is unique across all users.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
