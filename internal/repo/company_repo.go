package repo

import (
	"context"

	dom "jobly/internal/domain"
	"jobly/internal/sqlbuild"

	"github.com/jackc/pgx/v5"
)

// companyColumns maps every mutable company field to its column.
var companyColumns = map[string]string{
	dom.CompanyFieldName:         "name",
	dom.CompanyFieldDescription:  "description",
	dom.CompanyFieldNumEmployees: "num_employees",
	dom.CompanyFieldLogoURL:      "logo_url",
}

const companyCols = `handle, name, description, num_employees, logo_url`

// CompanyRepo provides company persistence.
type CompanyRepo interface {
	Exists(ctx context.Context, handle string) (bool, error)
	Create(ctx context.Context, c dom.Company) (dom.Company, error)
	List(ctx context.Context, f dom.CompanyFilter) ([]dom.Company, error)
	GetWithJobs(ctx context.Context, handle string) (dom.Company, error)
	Update(ctx context.Context, handle string, patch dom.Patch) (dom.Company, error)
	Delete(ctx context.Context, handle string) error
}

// PGCompanyRepo implements CompanyRepo with Postgres.
type PGCompanyRepo struct {
	db DB
}

// NewPGCompanyRepo returns a new PGCompanyRepo.
func NewPGCompanyRepo(db DB) *PGCompanyRepo {
	return &PGCompanyRepo{db: db}
}

func (r *PGCompanyRepo) Exists(ctx context.Context, handle string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM companies WHERE handle = $1)`, handle).Scan(&exists)
	return exists, err
}

func (r *PGCompanyRepo) Create(ctx context.Context, c dom.Company) (dom.Company, error) {
	query := `
		INSERT INTO companies (handle, name, description, num_employees, logo_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + companyCols
	return scanCompany(r.db.QueryRow(ctx, query, c.Handle, c.Name, c.Description, c.NumEmployees, c.LogoURL))
}

// List returns companies matching f, ordered by employee count then handle.
func (r *PGCompanyRepo) List(ctx context.Context, f dom.CompanyFilter) ([]dom.Company, error) {
	where := sqlbuild.CompanyWhere(f)
	query := `SELECT ` + companyCols + ` FROM companies` + where.Clause() + ` ORDER BY num_employees, handle`
	rows, err := r.db.Query(ctx, query, where.Args()...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	list := []dom.Company{}
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// GetWithJobs returns the company and its jobs in one statement.
// Returns pgx.ErrNoRows if the handle is unknown.
func (r *PGCompanyRepo) GetWithJobs(ctx context.Context, handle string) (dom.Company, error) {
	query := `
		SELECT c.handle, c.name, c.description, c.num_employees, c.logo_url,
		       j.id, j.title, j.salary, j.equity
		FROM companies c
		LEFT JOIN jobs j ON j.company_handle = c.handle
		WHERE c.handle = $1
		ORDER BY j.id`
	rows, err := r.db.Query(ctx, query, handle)
	if err != nil {
		return dom.Company{}, err
	}
	defer rows.Close()

	var c dom.Company
	found := false
	for rows.Next() {
		var (
			jobID  *int64
			title  *string
			salary *int64
			equity *float64
		)
		if err := rows.Scan(&c.Handle, &c.Name, &c.Description, &c.NumEmployees, &c.LogoURL,
			&jobID, &title, &salary, &equity); err != nil {
			return dom.Company{}, err
		}
		if !found {
			c.Jobs = []dom.Job{}
			found = true
		}
		if jobID != nil {
			c.Jobs = append(c.Jobs, dom.Job{
				ID:            *jobID,
				Title:         *title,
				Salary:        salary,
				Equity:        equity,
				CompanyHandle: c.Handle,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return dom.Company{}, err
	}
	if !found {
		return dom.Company{}, pgx.ErrNoRows
	}
	return c, nil
}

// Update applies patch to the company. Returns pgx.ErrNoRows if the handle is unknown.
func (r *PGCompanyRepo) Update(ctx context.Context, handle string, patch dom.Patch) (dom.Company, error) {
	set, err := sqlbuild.PartialUpdate(patch, companyColumns)
	if err != nil {
		return dom.Company{}, err
	}
	query := `UPDATE companies SET ` + set.Cols + ` WHERE handle = ` + set.KeyPlaceholder() + ` RETURNING ` + companyCols
	return scanCompany(r.db.QueryRow(ctx, query, set.Args(handle)...))
}

// Delete removes the company. Returns pgx.ErrNoRows if the handle is unknown.
func (r *PGCompanyRepo) Delete(ctx context.Context, handle string) error {
	var deleted string
	return r.db.QueryRow(ctx, `DELETE FROM companies WHERE handle = $1 RETURNING handle`, handle).Scan(&deleted)
}

func scanCompany(row pgx.Row) (dom.Company, error) {
	var c dom.Company
	err := row.Scan(&c.Handle, &c.Name, &c.Description, &c.NumEmployees, &c.LogoURL)
	return c, err
}
