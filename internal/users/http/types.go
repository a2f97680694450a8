package http

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/projectdesk/projectdesk-backend/internal/users/domain"
)

var validate = validator.New()

type userRequest struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// fieldErrors checks the request body constraints: name non-blank, email
// present and syntactically valid. Returns an empty map when the body is
// valid.
func (r userRequest) fieldErrors() map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		errs["name"] = "name must not be null nor empty"
	}
	if r.Email == "" {
		errs["email"] = "email must not be null"
	} else if validate.Var(r.Email, "email") != nil {
		errs["email"] = "email must be a valid email address"
	}
	return errs
}

func (r userRequest) toDomain() *domain.User {
	return &domain.User{ID: r.ID, Name: r.Name, Email: r.Email}
}
