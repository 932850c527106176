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

const jobNotFound = "No job found with that ID."

type JobService struct {
	repo  repo.JobRepo
	cache *cache.ListCache[dom.Job]
	sf    singleflight.Group
}

// NewJobService creates a JobService. If c is nil, caching is disabled.
func NewJobService(r repo.JobRepo, c *cache.ListCache[dom.Job]) *JobService {
	return &JobService{repo: r, cache: c}
}

// ParseID parses a job id from a path segment. Anything that is not an
// integer in the range of the id column cannot name a job, so it is
// reported as not found.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 32)
	if err != nil {
		return 0, apperr.NotFound("Invalid job ID. Job ID must be an integer!")
	}
	return id, nil
}

func (s *JobService) Create(ctx context.Context, j dom.Job) (dom.Job, error) {
	j.Title = strings.TrimSpace(j.Title)
	j.CompanyHandle = strings.TrimSpace(j.CompanyHandle)
	if err := validate.Job(j); err != nil {
		return dom.Job{}, err
	}
	out, err := s.repo.Create(ctx, j)
	if err != nil {
		if utils.IsPGForeignKeyViolation(err) {
			return dom.Job{}, apperr.New(apperr.CodeValidation, "No company: "+j.CompanyHandle, err)
		}
		return dom.Job{}, fmt.Errorf("create job: %w", err)
	}
	s.invalidateCache(ctx)
	return out, nil
}

// List returns jobs matching f, ordered by title.
func (s *JobService) List(ctx context.Context, f dom.JobFilter) ([]dom.Job, error) {
	f.Title = strings.TrimSpace(f.Title)
	if err := validate.JobFilter(f); err != nil {
		return nil, err
	}
	if s.cache == nil {
		return s.repo.List(ctx, f)
	}
	minSalary := ""
	if f.MinSalary != nil {
		minSalary = strconv.FormatInt(*f.MinSalary, 10)
	}
	key := cache.Key("title="+f.Title, "min="+minSalary, "equity="+strconv.FormatBool(f.HasEquity))
	v, err, _ := s.sf.Do("jobs:"+key, func() (interface{}, error) {
		if list, err := s.cache.Get(ctx, key); err == nil && list != nil {
			return list, nil
		}
		list, err := s.repo.List(ctx, f)
		if err != nil {
			return nil, err
		}
		if err := s.cache.Set(ctx, key, list); err != nil {
			log.Printf("cache jobs: %v", err)
		}
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]dom.Job), nil
}

func (s *JobService) Get(ctx context.Context, id int64) (dom.Job, error) {
	j, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Job{}, apperr.NotFound(jobNotFound)
		}
		return dom.Job{}, fmt.Errorf("get job: %w", err)
	}
	return j, nil
}

// Update applies a partial update of title, salary and equity.
func (s *JobService) Update(ctx context.Context, id int64, patch dom.Patch) (dom.Job, error) {
	patch, err := validate.JobPatch(patch)
	if err != nil {
		return dom.Job{}, err
	}
	j, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Job{}, apperr.NotFound(jobNotFound)
		}
		return dom.Job{}, fmt.Errorf("update job: %w", err)
	}
	s.invalidateCache(ctx)
	return j, nil
}

// Delete removes the job and returns its title.
func (s *JobService) Delete(ctx context.Context, id int64) (string, error) {
	title, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperr.NotFound(jobNotFound)
		}
		return "", fmt.Errorf("delete job: %w", err)
	}
	s.invalidateCache(ctx)
	return title, nil
}

func (s *JobService) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		if err := s.cache.InvalidateAll(ctx); err != nil {
			log.Printf("invalidate jobs cache: %v", err)
		}
	}
}
