package repo

import (
	"context"

	dom "jobly/internal/domain"
	"jobly/internal/sqlbuild"

	"github.com/jackc/pgx/v5"
)

// jobColumns maps every mutable job field to its column.
var jobColumns = map[string]string{
	dom.JobFieldTitle:  "title",
	dom.JobFieldSalary: "salary",
	dom.JobFieldEquity: "equity",
}

const jobCols = `id, title, salary, equity, company_handle`

type JobRepo interface {
	Create(ctx context.Context, j dom.Job) (dom.Job, error)
	List(ctx context.Context, f dom.JobFilter) ([]dom.Job, error)
	GetByID(ctx context.Context, id int64) (dom.Job, error)
	Update(ctx context.Context, id int64, patch dom.Patch) (dom.Job, error)
	Delete(ctx context.Context, id int64) (string, error)
}

type PGJobRepo struct {
	db DB
}

func NewPGJobRepo(db DB) *PGJobRepo {
	return &PGJobRepo{db: db}
}

func (r *PGJobRepo) Create(ctx context.Context, j dom.Job) (dom.Job, error) {
	query := `
		INSERT INTO jobs (title, salary, equity, company_handle)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + jobCols
	return scanJob(r.db.QueryRow(ctx, query, j.Title, j.Salary, j.Equity, j.CompanyHandle))
}

func (r *PGJobRepo) List(ctx context.Context, f dom.JobFilter) ([]dom.Job, error) {
	where := sqlbuild.JobWhere(f)
	query := `SELECT ` + jobCols + ` FROM jobs` + where.Clause() + ` ORDER BY title, id`
	rows, err := r.db.Query(ctx, query, where.Args()...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	list := []dom.Job{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, j)
	}
	return list, rows.Err()
}

func (r *PGJobRepo) GetByID(ctx context.Context, id int64) (dom.Job, error) {
	return scanJob(r.db.QueryRow(ctx, `SELECT `+jobCols+` FROM jobs WHERE id = $1`, id))
}

func (r *PGJobRepo) Update(ctx context.Context, id int64, patch dom.Patch) (dom.Job, error) {
	set, err := sqlbuild.PartialUpdate(patch, jobColumns)
	if err != nil {
		return dom.Job{}, err
	}
	query := `UPDATE jobs SET ` + set.Cols + ` WHERE id = ` + set.KeyPlaceholder() + ` RETURNING ` + jobCols
	return scanJob(r.db.QueryRow(ctx, query, set.Args(id)...))
}

// Delete removes the job and returns its title.
func (r *PGJobRepo) Delete(ctx context.Context, id int64) (string, error) {
	var title string
	err := r.db.QueryRow(ctx, `DELETE FROM jobs WHERE id = $1 RETURNING title`, id).Scan(&title)
	return title, err
}

func scanJob(row pgx.Row) (dom.Job, error) {
	var j dom.Job
	err := row.Scan(&j.ID, &j.Title, &j.Salary, &j.Equity, &j.CompanyHandle)
	return j, err
}
