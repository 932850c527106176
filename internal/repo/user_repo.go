package repo

import (
	"context"

	dom "jobly/internal/domain"
)

// UserRepo provides user and application persistence.
type UserRepo interface {
	GetByUsername(ctx context.Context, username string) (dom.User, error)
	Create(ctx context.Context, u dom.User) (dom.User, error)
	AppliedJobIDs(ctx context.Context, username string) ([]int64, error)
	Apply(ctx context.Context, username string, jobID int64) (dom.Application, error)
}

// PGUserRepo implements UserRepo with Postgres.
type PGUserRepo struct {
	db DB
}

// NewPGUserRepo returns a new PGUserRepo.
func NewPGUserRepo(db DB) *PGUserRepo {
	return &PGUserRepo{db: db}
}

// GetByUsername returns the user by username.
func (r *PGUserRepo) GetByUsername(ctx context.Context, username string) (dom.User, error) {
	var u dom.User
	err := r.db.QueryRow(ctx,
		`SELECT username, password, first_name, last_name, email, is_admin FROM users WHERE username = $1`,
		username,
	).Scan(&u.Username, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Email, &u.IsAdmin)
	return u, err
}

// Create inserts a new user and returns it.
func (r *PGUserRepo) Create(ctx context.Context, u dom.User) (dom.User, error) {
	query := `
		INSERT INTO users (username, password, first_name, last_name, email, is_admin)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING username, password, first_name, last_name, email, is_admin`
	var out dom.User
	err := r.db.QueryRow(ctx, query, u.Username, u.PasswordHash, u.FirstName, u.LastName, u.Email, u.IsAdmin).Scan(
		&out.Username, &out.PasswordHash, &out.FirstName, &out.LastName, &out.Email, &out.IsAdmin,
	)
	return out, err
}

// AppliedJobIDs returns the ids of jobs the user applied to, oldest application first.
func (r *PGUserRepo) AppliedJobIDs(ctx context.Context, username string) ([]int64, error) {
	rows, err := r.db.Query(ctx,
		`SELECT job_id FROM applications WHERE username = $1 ORDER BY applied_at, job_id`, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Apply records an application. The store rejects a repeated pair
// (unique violation) and unknown users or jobs (foreign key violation).
func (r *PGUserRepo) Apply(ctx context.Context, username string, jobID int64) (dom.Application, error) {
	query := `
		INSERT INTO applications (username, job_id)
		VALUES ($1, $2)
		RETURNING username, job_id, applied_at`
	var a dom.Application
	err := r.db.QueryRow(ctx, query, username, jobID).Scan(&a.Username, &a.JobID, &a.AppliedAt)
	return a, err
}
