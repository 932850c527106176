package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"jobly/internal/apperr"
	"jobly/internal/cache"
	dom "jobly/internal/domain"
	"jobly/internal/repo"
	"jobly/internal/utils"
	"jobly/internal/validate"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

// CompanyService implements company create/read/update/delete.
type CompanyService struct {
	repo      repo.CompanyRepo
	companies *cache.ListCache[dom.Company]
	jobs      *cache.ListCache[dom.Job]
	sf        singleflight.Group
}

// NewCompanyService creates a CompanyService. Nil caches disable caching;
// jobs is only invalidated, since deleting a company deletes its jobs.
func NewCompanyService(r repo.CompanyRepo, companies *cache.ListCache[dom.Company], jobs *cache.ListCache[dom.Job]) *CompanyService {
	return &CompanyService{repo: r, companies: companies, jobs: jobs}
}

func (s *CompanyService) Create(ctx context.Context, c dom.Company) (dom.Company, error) {
	c.Handle = strings.TrimSpace(c.Handle)
	c.Name = strings.TrimSpace(c.Name)
	c.Description = strings.TrimSpace(c.Description)
	if err := validate.Company(c); err != nil {
		return dom.Company{}, err
	}

	exists, err := s.repo.Exists(ctx, c.Handle)
	if err != nil {
		return dom.Company{}, fmt.Errorf("check company: %w", err)
	}
	if exists {
		return dom.Company{}, apperr.Conflict("Duplicate company: " + c.Handle)
	}

	out, err := s.repo.Create(ctx, c)
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.Company{}, apperr.New(apperr.CodeConflict, "Duplicate company: "+c.Handle, err)
		}
		return dom.Company{}, fmt.Errorf("create company: %w", err)
	}
	s.invalidate(ctx, false)
	return out, nil
}

// List returns companies matching f, ordered by employee count.
func (s *CompanyService) List(ctx context.Context, f dom.CompanyFilter) ([]dom.Company, error) {
	f.NameLike = strings.TrimSpace(f.NameLike)
	if err := validate.CompanyFilter(f); err != nil {
		return nil, err
	}
	if s.companies == nil {
		return s.repo.List(ctx, f)
	}
	key := cache.Key("name="+f.NameLike, "min="+optInt(f.MinEmployees), "max="+optInt(f.MaxEmployees))
	v, err, _ := s.sf.Do("companies:"+key, func() (interface{}, error) {
		if list, err := s.companies.Get(ctx, key); err == nil && list != nil {
			return list, nil
		}
		list, err := s.repo.List(ctx, f)
		if err != nil {
			return nil, err
		}
		if err := s.companies.Set(ctx, key, list); err != nil {
			log.Printf("cache companies: %v", err)
		}
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]dom.Company), nil
}

// Get returns the company with its jobs.
func (s *CompanyService) Get(ctx context.Context, handle string) (dom.Company, error) {
	c, err := s.repo.GetWithJobs(ctx, handle)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Company{}, apperr.NotFound("No company: " + handle)
		}
		return dom.Company{}, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

// Update applies a partial update. The handle can never change.
func (s *CompanyService) Update(ctx context.Context, handle string, patch dom.Patch) (dom.Company, error) {
	patch, err := validate.CompanyPatch(patch)
	if err != nil {
		return dom.Company{}, err
	}
	c, err := s.repo.Update(ctx, handle, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Company{}, apperr.NotFound("No company: " + handle)
		}
		if utils.IsPGUniqueViolation(err) {
			return dom.Company{}, apperr.New(apperr.CodeConflict, "Company name already taken", err)
		}
		return dom.Company{}, fmt.Errorf("update company: %w", err)
	}
	s.invalidate(ctx, false)
	return c, nil
}

// Delete removes the company; its jobs go with it.
func (s *CompanyService) Delete(ctx context.Context, handle string) error {
	if err := s.repo.Delete(ctx, handle); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound("No company: " + handle)
		}
		return fmt.Errorf("delete company: %w", err)
	}
	s.invalidate(ctx, true)
	return nil
}

func (s *CompanyService) invalidate(ctx context.Context, withJobs bool) {
	if s.companies != nil {
		if err := s.companies.InvalidateAll(ctx); err != nil {
			log.Printf("invalidate companies cache: %v", err)
		}
	}
	if withJobs && s.jobs != nil {
		if err := s.jobs.InvalidateAll(ctx); err != nil {
			log.Printf("invalidate jobs cache: %v", err)
		}
	}
}

func optInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
