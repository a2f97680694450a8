package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/projectdesk/projectdesk-backend/internal/projects/domain"
	userdomain "github.com/projectdesk/projectdesk-backend/internal/users/domain"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

// List returns the page-th slice of all projects in id order, core fields
// only (members are not loaded). Page is zero-based.
func (r *Repo) List(ctx context.Context, page, size int) ([]domain.Project, error) {
	const q = `
select id, name, description
from projects
order by id
limit $1 offset $2;
`
	rows, err := r.db.Query(ctx, q, size, page*size)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProjects(rows, size)
}

// ListByName returns the page-th slice of projects whose name contains the
// given text, case-insensitively. Core fields only.
func (r *Repo) ListByName(ctx context.Context, name string, page, size int) ([]domain.Project, error) {
	const q = `
select id, name, description
from projects
where name ilike '%' || $1 || '%'
order by id
limit $2 offset $3;
`
	rows, err := r.db.Query(ctx, q, name, size, page*size)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProjects(rows, size)
}

// GetByID loads a project including its assigned users.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	const q = `select id, name, description from projects where id = $1;`

	var p domain.Project
	err := r.db.QueryRow(ctx, q, id).Scan(&p.ID, &p.Name, &p.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	p.Users, err = r.members(ctx, id)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Insert persists a new project and fills in the generated id.
func (r *Repo) Insert(ctx context.Context, p *domain.Project) error {
	const q = `
insert into projects (name, description)
values ($1, $2)
returning id;
`
	err := r.db.QueryRow(ctx, q, p.Name, p.Description).Scan(&p.ID)
	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	return err
}

// Update replaces the project's name and description. Assignment rows are
// not touched.
func (r *Repo) Update(ctx context.Context, p *domain.Project) error {
	const q = `update projects set name = $2, description = $3 where id = $1;`

	ct, err := r.db.Exec(ctx, q, p.ID, p.Name, p.Description)
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

// Delete removes the project; its assignment rows cascade away with it.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	const q = `delete from projects where id = $1;`

	ct, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AddMember records a user's assignment to a project. The composite primary
// key backstops concurrent duplicate assignments.
func (r *Repo) AddMember(ctx context.Context, projectID, userID int64) error {
	const q = `insert into project_users (project_id, user_id) values ($1, $2);`

	_, err := r.db.Exec(ctx, q, projectID, userID)
	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *Repo) members(ctx context.Context, projectID int64) ([]userdomain.User, error) {
	const q = `
select u.id, u.name, u.email
from users u
join project_users pu on pu.user_id = u.id
where pu.project_id = $1
order by u.id;
`
	rows, err := r.db.Query(ctx, q, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]userdomain.User, 0, 4)
	for rows.Next() {
		var u userdomain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func scanProjects(rows pgx.Rows, capHint int) ([]domain.Project, error) {
	out := make([]domain.Project, 0, capHint)
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Description); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
