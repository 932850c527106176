package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"jobly/internal/apperr"
	dom "jobly/internal/domain"
	"jobly/internal/repo"
	"jobly/internal/utils"
	"jobly/internal/validate"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = apperr.New(apperr.CodeUnauthorized, "Invalid username/password", nil)

// UserService handles accounts and job applications.
type UserService struct {
	repo repo.UserRepo
	cost int
}

// NewUserService returns a new UserService. cost is the bcrypt cost;
// values outside bcrypt's range fall back to bcrypt.DefaultCost.
func NewUserService(repo repo.UserRepo, cost int) *UserService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &UserService{repo: repo, cost: cost}
}

// Authenticate checks username and password; returns user if valid.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (dom.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return dom.User{}, ErrInvalidCredentials
	}
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrInvalidCredentials
		}
		return dom.User{}, fmt.Errorf("get user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return dom.User{}, ErrInvalidCredentials
	}
	return u, nil
}

// Register creates a new user with hashed password.
func (s *UserService) Register(ctx context.Context, u dom.User, password string) (dom.User, error) {
	u.Username = strings.TrimSpace(u.Username)
	u.Email = strings.TrimSpace(u.Email)
	if err := validate.User(u, password); err != nil {
		return dom.User{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return dom.User{}, fmt.Errorf("hash password: %w", err)
	}
	u.PasswordHash = string(hash)
	out, err := s.repo.Create(ctx, u)
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.User{}, apperr.New(apperr.CodeConflict, "Duplicate username: "+u.Username, err)
		}
		return dom.User{}, fmt.Errorf("create user: %w", err)
	}
	return out, nil
}

// Get returns the user with the ids of the jobs they applied to.
func (s *UserService) Get(ctx context.Context, username string) (dom.User, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, apperr.NotFound("No user: " + username)
		}
		return dom.User{}, fmt.Errorf("get user: %w", err)
	}
	ids, err := s.repo.AppliedJobIDs(ctx, username)
	if err != nil {
		return dom.User{}, fmt.Errorf("list applications: %w", err)
	}
	u.Jobs = ids
	return u, nil
}

// Apply records that username applied to jobID. A second application for
// the same pair is a conflict.
func (s *UserService) Apply(ctx context.Context, username string, jobID int64) (dom.Application, error) {
	a, err := s.repo.Apply(ctx, username, jobID)
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.Application{}, apperr.New(apperr.CodeConflict, "You have already applied for this position.", err)
		}
		if utils.IsPGForeignKeyViolation(err) {
			return dom.Application{}, apperr.New(apperr.CodeNotFound, "Invalid username or job does not exist.", err)
		}
		return dom.Application{}, fmt.Errorf("apply: %w", err)
	}
	return a, nil
}
