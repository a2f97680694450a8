package service

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projectdesk/projectdesk-backend/internal/apperr"
	"github.com/projectdesk/projectdesk-backend/internal/users/domain"
)

// memStore is an in-memory Store with the same contract as the pgx repo:
// id order, zero-based pages, unique email.
type memStore struct {
	users  []domain.User
	nextID int64
}

func newMemStore(users ...domain.User) *memStore {
	s := &memStore{nextID: 1}
	for _, u := range users {
		u := u
		_ = s.Insert(context.Background(), &u)
	}
	return s
}

func (s *memStore) page(all []domain.User, page, size int) []domain.User {
	from := page * size
	if from >= len(all) {
		return nil
	}
	to := from + size
	if to > len(all) {
		to = len(all)
	}
	return all[from:to]
}

func (s *memStore) List(_ context.Context, page, size int) ([]domain.User, error) {
	return s.page(s.users, page, size), nil
}

func (s *memStore) ListByName(_ context.Context, name string, page, size int) ([]domain.User, error) {
	var matched []domain.User
	for _, u := range s.users {
		if strings.Contains(strings.ToLower(u.Name), strings.ToLower(name)) {
			matched = append(matched, u)
		}
	}
	return s.page(matched, page, size), nil
}

func (s *memStore) GetByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			u := u
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *memStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *memStore) Insert(_ context.Context, u *domain.User) error {
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return domain.ErrDuplicate
		}
	}
	u.ID = s.nextID
	s.nextID++
	s.users = append(s.users, *u)
	return nil
}

func (s *memStore) Update(_ context.Context, u *domain.User) error {
	for _, existing := range s.users {
		if existing.Email == u.Email && existing.ID != u.ID {
			return domain.ErrDuplicate
		}
	}
	for i, existing := range s.users {
		if existing.ID == u.ID {
			s.users[i] = *u
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *memStore) Delete(_ context.Context, id int64) error {
	for i, existing := range s.users {
		if existing.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func statusError(t *testing.T, err error) *apperr.Error {
	t.Helper()
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	return ae
}

func TestFindAllPaging(t *testing.T) {
	svc := New(newMemStore(
		domain.User{Name: "Ann", Email: "ann@example.com"},
		domain.User{Name: "Ben", Email: "ben@example.com"},
		domain.User{Name: "Cleo", Email: "cleo@example.com"},
	))

	first, err := svc.FindAll(context.Background(), 0, 2)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, "Ann", first[0].Name)
	assert.Equal(t, "Ben", first[1].Name)

	second, err := svc.FindAll(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "Cleo", second[0].Name)
}

func TestFindAllEmptyPageIsNotFound(t *testing.T) {
	svc := New(newMemStore(domain.User{Name: "Ann", Email: "ann@example.com"}))

	_, err := svc.FindAll(context.Background(), 5, 5)
	ae := statusError(t, err)
	assert.Equal(t, http.StatusNotFound, ae.Status)
	assert.Equal(t, "There are no results to show.", ae.Message)
}

func TestFindAllByName(t *testing.T) {
	svc := New(newMemStore(
		domain.User{Name: "Annabel", Email: "annabel@example.com"},
		domain.User{Name: "Joanne", Email: "joanne@example.com"},
		domain.User{Name: "Ben", Email: "ben@example.com"},
	))

	got, err := svc.FindAllByName(context.Background(), "ANN", 0, 5)
	require.NoError(t, err)
	require.Len(t, got, 2)

	_, err = svc.FindAllByName(context.Background(), "zoe", 0, 5)
	ae := statusError(t, err)
	assert.Equal(t, http.StatusNotFound, ae.Status)
	assert.Equal(t, "There are no results to show with the value: 'zoe'.", ae.Message)
}

func TestFindByIDRoundTrip(t *testing.T) {
	svc := New(newMemStore())

	created, err := svc.Create(context.Background(), &domain.User{Name: "Ann", Email: "ann@example.com"})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	byID, err := svc.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *byID)

	byEmail, err := svc.FindByEmail(context.Background(), "ann@example.com")
	require.NoError(t, err)
	assert.Equal(t, *created, *byEmail)
}

func TestFindByIDMissing(t *testing.T) {
	svc := New(newMemStore())

	_, err := svc.FindByID(context.Background(), 99)
	ae := statusError(t, err)
	assert.Equal(t, http.StatusNotFound, ae.Status)
	assert.Equal(t, "There are no users with the id: '99'.", ae.Message)

	_, err = svc.FindByEmail(context.Background(), "ghost@example.com")
	ae = statusError(t, err)
	assert.Equal(t, "There are no users with the email: 'ghost@example.com'.", ae.Message)
}

func TestCreateDuplicateEmail(t *testing.T) {
	svc := New(newMemStore(domain.User{Name: "Ann", Email: "ann@example.com"}))

	_, err := svc.Create(context.Background(), &domain.User{Name: "Other Ann", Email: "ann@example.com"})
	ae := statusError(t, err)
	assert.Equal(t, http.StatusBadRequest, ae.Status)
	assert.Equal(t, "The email address 'ann@example.com' is not available.", ae.Message)

	// first user remains untouched
	u, err := svc.FindByEmail(context.Background(), "ann@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ann", u.Name)
}

func TestUpdateRejectsNoOp(t *testing.T) {
	store := newMemStore(domain.User{Name: "Ann", Email: "ann@example.com"})
	svc := New(store)

	_, err := svc.Update(context.Background(), 1, &domain.User{Name: "Ann", Email: "ann@example.com"})
	ae := statusError(t, err)
	assert.Equal(t, http.StatusBadRequest, ae.Status)
	assert.Equal(t, "There are no changes to make on this user", ae.Message)

	// the id in the body is overridden by the path id
	_, err = svc.Update(context.Background(), 1, &domain.User{ID: 42, Name: "Ann", Email: "ann@example.com"})
	ae = statusError(t, err)
	assert.Equal(t, http.StatusBadRequest, ae.Status)
}

func TestUpdatePersistsChanges(t *testing.T) {
	store := newMemStore(domain.User{Name: "Ann", Email: "ann@example.com"})
	svc := New(store)

	updated, err := svc.Update(context.Background(), 1, &domain.User{Name: "Ann B.", Email: "ann@example.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.ID)
	assert.Equal(t, "Ann B.", updated.Name)

	persisted, err := svc.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Ann B.", persisted.Name)
}

func TestUpdateMissingUser(t *testing.T) {
	svc := New(newMemStore())

	_, err := svc.Update(context.Background(), 7, &domain.User{Name: "Ann", Email: "ann@example.com"})
	ae := statusError(t, err)
	assert.Equal(t, http.StatusNotFound, ae.Status)
}

func TestUpdateEmailCollision(t *testing.T) {
	svc := New(newMemStore(
		domain.User{Name: "Ann", Email: "ann@example.com"},
		domain.User{Name: "Ben", Email: "ben@example.com"},
	))

	_, err := svc.Update(context.Background(), 2, &domain.User{Name: "Ben", Email: "ann@example.com"})
	ae := statusError(t, err)
	assert.Equal(t, http.StatusBadRequest, ae.Status)
	assert.Equal(t, "this email address is not available", ae.Message)
}

func TestRemove(t *testing.T) {
	svc := New(newMemStore(domain.User{Name: "Ann", Email: "ann@example.com"}))

	removed, err := svc.Remove(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Ann", removed.Name)

	_, err = svc.Remove(context.Background(), 1)
	ae := statusError(t, err)
	assert.Equal(t, http.StatusNotFound, ae.Status)
	assert.Equal(t, "There are no users with the id: '1'.", ae.Message)
}
