// Package validate holds the pre-storage checks for companies, jobs and
// users. Each check reports the first violated constraint as a validation
// error and never mutates its input.
package validate

import (
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"strings"

	"jobly/internal/apperr"
	dom "jobly/internal/domain"
)

func fail(format string, args ...any) error {
	return apperr.Validation(fmt.Sprintf(format, args...))
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

// number accepts the numeric shapes a decoded payload can carry.
func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func nonNegativeInt(field string, v any) (int64, error) {
	f, ok := number(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fail("%s must be a number", field)
	}
	if f != math.Trunc(f) {
		return 0, fail("%s must be an integer", field)
	}
	if f < 0 {
		return 0, fail("%s must be >= 0", field)
	}
	if f > math.MaxInt32 {
		return 0, fail("%s is too large", field)
	}
	return int64(f), nil
}

func fraction(field string, v any) (float64, error) {
	f, ok := number(v)
	if !ok || math.IsNaN(f) {
		return 0, fail("%s must be a number", field)
	}
	if f < 0 || f > 1 {
		return 0, fail("%s must be between 0 and 1", field)
	}
	return f, nil
}

func text(field string, v any, required bool) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fail("%s must be a string", field)
	}
	s = strings.TrimSpace(s)
	if required && s == "" {
		return "", fail("%s is required", field)
	}
	return s, nil
}

func webURL(field, raw string) error {
	u, err := url.ParseRequestURI(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fail("%s must be an http(s) URL", field)
	}
	return nil
}

func noRepeats(p dom.Patch) error {
	seen := make(map[string]bool, len(p))
	for _, f := range p {
		if seen[f.Name] {
			return fail("duplicate field: %s", f.Name)
		}
		seen[f.Name] = true
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
