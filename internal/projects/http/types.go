package http

import (
	"strings"

	"github.com/projectdesk/projectdesk-backend/internal/projects/domain"
	userdomain "github.com/projectdesk/projectdesk-backend/internal/users/domain"
)

type projectRequest struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	Description *string            `json:"description"`
	Users       *[]userdomain.User `json:"users"`
}

// fieldErrors checks the request body constraints: name non-blank. Returns
// an empty map when the body is valid.
func (r projectRequest) fieldErrors() map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		errs["name"] = "name must not be null nor empty"
	}
	return errs
}

// toDomain converts the body. A nil Users pointer means the field was
// omitted; the domain value keeps that distinction as a nil slice.
func (r projectRequest) toDomain() *domain.Project {
	p := &domain.Project{ID: r.ID, Name: r.Name, Description: r.Description}
	if r.Users != nil {
		p.Users = *r.Users
	}
	return p
}

// projectCore is the reduced list view: the assignment list is omitted.
type projectCore struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func coreViews(projects []domain.Project) []projectCore {
	out := make([]projectCore, 0, len(projects))
	for _, p := range projects {
		out = append(out, projectCore{ID: p.ID, Name: p.Name, Description: p.Description})
	}
	return out
}
