package utils

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres SQLSTATE codes the services translate into domain errors.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// ParseDurationEnv accepts a Go duration ("90s", "5m") or a bare integer
// number of seconds. Surrounding quotes left by some .env writers are ignored.
func ParseDurationEnv(raw string) (time.Duration, error) {
	s := strings.Trim(strings.TrimSpace(raw), `"'`)
	switch {
	case s == "":
		return 0, errors.New("empty duration")
	case strings.Trim(s, "0123456789") == "":
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("duration %q: %w", raw, err)
		}
		return time.Duration(n) * time.Second, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("duration must be like 10s, 5m or a number of seconds: %w", err)
	}
	return d, nil
}

// ParseRedisURL splits a redis:// or rediss:// URL into address, password
// and database number.
func ParseRedisURL(raw string) (addr, password string, db int, err error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", "", 0, err
	}
	switch {
	case u.Scheme != "redis" && u.Scheme != "rediss":
		return "", "", 0, fmt.Errorf("scheme must be redis or rediss, got %q", u.Scheme)
	case u.Host == "":
		return "", "", 0, errors.New("missing host in Redis URL")
	}
	password, _ = u.User.Password()
	if path := strings.TrimPrefix(u.Path, "/"); path != "" {
		if db, err = strconv.Atoi(path); err != nil {
			return "", "", 0, fmt.Errorf("redis db must be a number: %w", err)
		}
	}
	return u.Host, password, db, nil
}

// IsPGUniqueViolation reports a unique constraint violation anywhere in err's chain.
func IsPGUniqueViolation(err error) bool {
	return pgCode(err) == pgUniqueViolation
}

// IsPGForeignKeyViolation reports a foreign key violation anywhere in err's chain.
func IsPGForeignKeyViolation(err error) bool {
	return pgCode(err) == pgForeignKeyViolation
}

func pgCode(err error) string {
	var pge *pgconn.PgError
	if errors.As(err, &pge) {
		return pge.Code
	}
	return ""
}
