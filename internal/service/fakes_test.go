package service

import (
	"context"
	"sort"
	"time"

	dom "jobly/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// memStore mimics the constraints the Postgres schema enforces.
type memStore struct {
	companies map[string]dom.Company
	jobs      map[int64]dom.Job
	users     map[string]dom.User
	apps      []dom.Application
	nextJobID int64

	lastCompanyFilter dom.CompanyFilter
	lastJobFilter     dom.JobFilter
	updates           int
}

func newMemStore() *memStore {
	return &memStore{
		companies: map[string]dom.Company{},
		jobs:      map[int64]dom.Job{},
		users:     map[string]dom.User{},
		nextJobID: 1,
	}
}

var (
	errUnique     = &pgconn.PgError{Code: "23505"}
	errForeignKey = &pgconn.PgError{Code: "23503"}
)

type memCompanyRepo struct{ s *memStore }

func (r memCompanyRepo) Exists(_ context.Context, handle string) (bool, error) {
	_, ok := r.s.companies[handle]
	return ok, nil
}

func (r memCompanyRepo) Create(_ context.Context, c dom.Company) (dom.Company, error) {
	if _, ok := r.s.companies[c.Handle]; ok {
		return dom.Company{}, errUnique
	}
	r.s.companies[c.Handle] = c
	return c, nil
}

func (r memCompanyRepo) List(_ context.Context, f dom.CompanyFilter) ([]dom.Company, error) {
	r.s.lastCompanyFilter = f
	list := []dom.Company{}
	for _, c := range r.s.companies {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Handle < list[j].Handle })
	return list, nil
}

func (r memCompanyRepo) GetWithJobs(_ context.Context, handle string) (dom.Company, error) {
	c, ok := r.s.companies[handle]
	if !ok {
		return dom.Company{}, pgx.ErrNoRows
	}
	c.Jobs = []dom.Job{}
	for id := int64(1); id < r.s.nextJobID; id++ {
		if j, ok := r.s.jobs[id]; ok && j.CompanyHandle == handle {
			c.Jobs = append(c.Jobs, j)
		}
	}
	return c, nil
}

func (r memCompanyRepo) Update(_ context.Context, handle string, patch dom.Patch) (dom.Company, error) {
	c, ok := r.s.companies[handle]
	if !ok {
		return dom.Company{}, pgx.ErrNoRows
	}
	for _, f := range patch {
		switch f.Name {
		case dom.CompanyFieldName:
			c.Name = f.Value.(string)
		case dom.CompanyFieldDescription:
			c.Description = f.Value.(string)
		case dom.CompanyFieldNumEmployees:
			c.NumEmployees = nil
			if f.Value != nil {
				n := f.Value.(int)
				c.NumEmployees = &n
			}
		case dom.CompanyFieldLogoURL:
			c.LogoURL = nil
			if f.Value != nil {
				s := f.Value.(string)
				c.LogoURL = &s
			}
		}
	}
	r.s.updates++
	r.s.companies[handle] = c
	return c, nil
}

func (r memCompanyRepo) Delete(_ context.Context, handle string) error {
	if _, ok := r.s.companies[handle]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.s.companies, handle)
	for id, j := range r.s.jobs {
		if j.CompanyHandle == handle {
			delete(r.s.jobs, id)
		}
	}
	return nil
}

type memJobRepo struct{ s *memStore }

func (r memJobRepo) Create(_ context.Context, j dom.Job) (dom.Job, error) {
	if _, ok := r.s.companies[j.CompanyHandle]; !ok {
		return dom.Job{}, errForeignKey
	}
	j.ID = r.s.nextJobID
	r.s.nextJobID++
	r.s.jobs[j.ID] = j
	return j, nil
}

func (r memJobRepo) List(_ context.Context, f dom.JobFilter) ([]dom.Job, error) {
	r.s.lastJobFilter = f
	list := []dom.Job{}
	for id := int64(1); id < r.s.nextJobID; id++ {
		if j, ok := r.s.jobs[id]; ok {
			list = append(list, j)
		}
	}
	return list, nil
}

func (r memJobRepo) GetByID(_ context.Context, id int64) (dom.Job, error) {
	j, ok := r.s.jobs[id]
	if !ok {
		return dom.Job{}, pgx.ErrNoRows
	}
	return j, nil
}

func (r memJobRepo) Update(_ context.Context, id int64, patch dom.Patch) (dom.Job, error) {
	j, ok := r.s.jobs[id]
	if !ok {
		return dom.Job{}, pgx.ErrNoRows
	}
	for _, f := range patch {
		switch f.Name {
		case dom.JobFieldTitle:
			j.Title = f.Value.(string)
		case dom.JobFieldSalary:
			j.Salary = nil
			if f.Value != nil {
				v := f.Value.(int64)
				j.Salary = &v
			}
		case dom.JobFieldEquity:
			j.Equity = nil
			if f.Value != nil {
				v := f.Value.(float64)
				j.Equity = &v
			}
		}
	}
	r.s.updates++
	r.s.jobs[id] = j
	return j, nil
}

func (r memJobRepo) Delete(_ context.Context, id int64) (string, error) {
	j, ok := r.s.jobs[id]
	if !ok {
		return "", pgx.ErrNoRows
	}
	delete(r.s.jobs, id)
	return j.Title, nil
}

type memUserRepo struct{ s *memStore }

func (r memUserRepo) GetByUsername(_ context.Context, username string) (dom.User, error) {
	u, ok := r.s.users[username]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (r memUserRepo) Create(_ context.Context, u dom.User) (dom.User, error) {
	if _, ok := r.s.users[u.Username]; ok {
		return dom.User{}, errUnique
	}
	r.s.users[u.Username] = u
	return u, nil
}

func (r memUserRepo) AppliedJobIDs(_ context.Context, username string) ([]int64, error) {
	ids := []int64{}
	for _, a := range r.s.apps {
		if a.Username == username {
			ids = append(ids, a.JobID)
		}
	}
	return ids, nil
}

func (r memUserRepo) Apply(_ context.Context, username string, jobID int64) (dom.Application, error) {
	_, userOK := r.s.users[username]
	_, jobOK := r.s.jobs[jobID]
	if !userOK || !jobOK {
		return dom.Application{}, errForeignKey
	}
	for _, a := range r.s.apps {
		if a.Username == username && a.JobID == jobID {
			return dom.Application{}, errUnique
		}
	}
	a := dom.Application{Username: username, JobID: jobID, AppliedAt: time.Now().UTC()}
	r.s.apps = append(r.s.apps, a)
	return a, nil
}
