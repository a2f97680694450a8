// Package service enforces the project business rules, including the
// assign-user membership checks.
package service

import (
	"context"
	"errors"

	"github.com/projectdesk/projectdesk-backend/internal/apperr"
	"github.com/projectdesk/projectdesk-backend/internal/projects/domain"
	userdomain "github.com/projectdesk/projectdesk-backend/internal/users/domain"
)

// Store is the persistence surface the project service needs.
type Store interface {
	List(ctx context.Context, page, size int) ([]domain.Project, error)
	ListByName(ctx context.Context, name string, page, size int) ([]domain.Project, error)
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	Insert(ctx context.Context, p *domain.Project) error
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id int64) error
	AddMember(ctx context.Context, projectID, userID int64) error
}

// UserDirectory resolves users for assignment, typically the user service.
type UserDirectory interface {
	FindByEmail(ctx context.Context, email string) (*userdomain.User, error)
}

type ProjectService struct {
	store Store
	users UserDirectory
}

func New(store Store, users UserDirectory) *ProjectService {
	return &ProjectService{store: store, users: users}
}

// FindAll returns the requested page of projects (core fields only), or
// NotFound when the page is empty.
func (s *ProjectService) FindAll(ctx context.Context, page, size int) ([]domain.Project, error) {
	projects, err := s.store.List(ctx, page, size)
	if err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return nil, apperr.NotFound("There are no results to show.")
	}
	return projects, nil
}

// FindAllByName returns the requested page of projects whose name contains
// the given text, or NotFound echoing the searched value.
func (s *ProjectService) FindAllByName(ctx context.Context, name string, page, size int) ([]domain.Project, error) {
	projects, err := s.store.ListByName(ctx, name, page, size)
	if err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return nil, apperr.NotFound("There are no results to show with the value: '%s'.", name)
	}
	return projects, nil
}

// FindByID loads a project including its assigned users.
func (s *ProjectService) FindByID(ctx context.Context, id int64) (*domain.Project, error) {
	p, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperr.NotFound("There are no projects with the id: '%d'.", id)
		}
		return nil, err
	}
	return p, nil
}

// Create persists a new project and returns it with the generated id filled
// in.
func (s *ProjectService) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	if err := s.store.Insert(ctx, p); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperr.BadRequest("The project name '%s' is not available.", p.Name)
		}
		return nil, err
	}
	if p.Users == nil {
		p.Users = []userdomain.User{}
	}
	return p, nil
}

// Update replaces the project's name and description. The id embedded in the
// body is overridden by the path id, an update that changes nothing is
// rejected, and the assignment list is never touched by a plain update (a
// submitted users list only participates in the no-op comparison).
func (s *ProjectService) Update(ctx context.Context, id int64, p *domain.Project) (*domain.Project, error) {
	existing, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.ID = id
	unchanged := p.Name == existing.Name &&
		p.SameDescription(existing) &&
		(p.Users == nil || sameUsers(p.Users, existing.Users))
	if unchanged {
		return nil, apperr.BadRequest("There are no changes to make on this project")
	}

	if err := s.store.Update(ctx, p); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperr.BadRequest("The project name '%s' is not available.", p.Name)
		}
		return nil, err
	}

	existing.Name = p.Name
	existing.Description = p.Description
	return existing, nil
}

// AssignUser adds the user with the given email to the project's assignment
// list. Already-assigned users are a Conflict.
func (s *ProjectService) AssignUser(ctx context.Context, projectID int64, email string) (*domain.Project, error) {
	p, err := s.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if p.HasUser(*u) {
		return nil, apperr.Conflict("The selected user is already assigned to this project.")
	}

	if err := s.store.AddMember(ctx, p.ID, u.ID); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperr.Conflict("The selected user is already assigned to this project.")
		}
		return nil, err
	}

	p.Users = append(p.Users, *u)
	return p, nil
}

// Remove deletes the project (assignment rows cascade) and returns its last
// known state.
func (s *ProjectService) Remove(ctx context.Context, id int64) (*domain.Project, error) {
	p, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperr.NotFound("There are no projects with the id: '%d'.", id)
		}
		return nil, err
	}
	return p, nil
}

// sameUsers compares assignment lists by membership, order-insensitively.
func sameUsers(a, b []userdomain.User) bool {
	if len(a) != len(b) {
		return false
	}
	for _, u := range a {
		found := false
		for _, v := range b {
			if u == v {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
