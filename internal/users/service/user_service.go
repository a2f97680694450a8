// Package service enforces the user business rules: empty pages and missing
// lookups are NotFound, unique-email collisions are reported as the email
// being unavailable, and no-op updates are rejected.
package service

import (
	"context"
	"errors"

	"github.com/projectdesk/projectdesk-backend/internal/apperr"
	"github.com/projectdesk/projectdesk-backend/internal/users/domain"
)

// Store is the persistence surface the user service needs.
type Store interface {
	List(ctx context.Context, page, size int) ([]domain.User, error)
	ListByName(ctx context.Context, name string, page, size int) ([]domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Insert(ctx context.Context, u *domain.User) error
	Update(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id int64) error
}

type UserService struct {
	store Store
}

func New(store Store) *UserService {
	return &UserService{store: store}
}

// FindAll returns the requested page of users, or NotFound when the page is
// empty.
func (s *UserService) FindAll(ctx context.Context, page, size int) ([]domain.User, error) {
	users, err := s.store.List(ctx, page, size)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, apperr.NotFound("There are no results to show.")
	}
	return users, nil
}

// FindAllByName returns the requested page of users whose name contains the
// given text, or NotFound echoing the searched value.
func (s *UserService) FindAllByName(ctx context.Context, name string, page, size int) ([]domain.User, error) {
	users, err := s.store.ListByName(ctx, name, page, size)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, apperr.NotFound("There are no results to show with the value: '%s'.", name)
	}
	return users, nil
}

func (s *UserService) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperr.NotFound("There are no users with the id: '%d'.", id)
		}
		return nil, err
	}
	return u, nil
}

func (s *UserService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperr.NotFound("There are no users with the email: '%s'.", email)
		}
		return nil, err
	}
	return u, nil
}

// Create persists a new user and returns it with the generated id filled in.
func (s *UserService) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	if err := s.store.Insert(ctx, u); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperr.BadRequest("The email address '%s' is not available.", u.Email)
		}
		return nil, err
	}
	return u, nil
}

// Update replaces the user's name and email wholesale. The id embedded in
// the body is overridden by the path id, and an update that changes nothing
// is rejected.
func (s *UserService) Update(ctx context.Context, id int64, u *domain.User) (*domain.User, error) {
	existing, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	u.ID = id
	if *u == *existing {
		return nil, apperr.BadRequest("There are no changes to make on this user")
	}

	if err := s.store.Update(ctx, u); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperr.BadRequest("this email address is not available")
		}
		return nil, err
	}
	return u, nil
}

// Remove deletes the user and returns its last known state.
func (s *UserService) Remove(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperr.NotFound("There are no users with the id: '%d'.", id)
		}
		return nil, err
	}
	return u, nil
}
