package domain

import (
	"errors"

	userdomain "github.com/projectdesk/projectdesk-backend/internal/users/domain"
)

// Repository sentinels, mapped to client-facing errors by the service layer.
var (
	ErrNotFound  = errors.New("project not found")
	ErrDuplicate = errors.New("duplicate project")
)

// Project is a named unit of work users can be assigned to. Name is unique
// across all projects; Description is optional and serialized as null when
// absent.
type Project struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Description *string           `json:"description"`
	Users       []userdomain.User `json:"users"`
}

// SameDescription reports whether both projects carry the same optional
// description (both absent, or both present and equal).
func (p *Project) SameDescription(other *Project) bool {
	if p.Description == nil || other.Description == nil {
		return p.Description == nil && other.Description == nil
	}
	return *p.Description == *other.Description
}

// HasUser reports whether the user is already a member, compared by full
// value equality.
func (p *Project) HasUser(u userdomain.User) bool {
	for _, member := range p.Users {
		if member == u {
			return true
		}
	}
	return false
}
