package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/projectdesk/projectdesk-backend/internal/users/domain"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

// List returns the page-th slice of all users in id order. Page is
// zero-based.
func (r *Repo) List(ctx context.Context, page, size int) ([]domain.User, error) {
	const q = `
select id, name, email
from users
order by id
limit $1 offset $2;
`
	rows, err := r.db.Query(ctx, q, size, page*size)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanUsers(rows, size)
}

// ListByName returns the page-th slice of users whose name contains the
// given text, case-insensitively.
func (r *Repo) ListByName(ctx context.Context, name string, page, size int) ([]domain.User, error) {
	const q = `
select id, name, email
from users
where name ilike '%' || $1 || '%'
order by id
limit $2 offset $3;
`
	rows, err := r.db.Query(ctx, q, name, size, page*size)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanUsers(rows, size)
}

func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	const q = `select id, name, email from users where id = $1;`

	var u domain.User
	err := r.db.QueryRow(ctx, q, id).Scan(&u.ID, &u.Name, &u.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const q = `select id, name, email from users where email = $1;`

	var u domain.User
	err := r.db.QueryRow(ctx, q, email).Scan(&u.ID, &u.Name, &u.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Insert persists a new user and fills in the generated id.
func (r *Repo) Insert(ctx context.Context, u *domain.User) error {
	const q = `
insert into users (name, email)
values ($1, $2)
returning id;
`
	err := r.db.QueryRow(ctx, q, u.Name, u.Email).Scan(&u.ID)
	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	return err
}

// Update replaces the user's mutable fields wholesale.
func (r *Repo) Update(ctx context.Context, u *domain.User) error {
	const q = `update users set name = $2, email = $3 where id = $1;`

	ct, err := r.db.Exec(ctx, q, u.ID, u.Name, u.Email)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return err
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the user. Assignment rows go with it via the join table's
// cascading foreign key.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	const q = `delete from users where id = $1;`

	ct, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanUsers(rows pgx.Rows, capHint int) ([]domain.User, error) {
	out := make([]domain.User, 0, capHint)
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
