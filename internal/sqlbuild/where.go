package sqlbuild

import (
	"strconv"
	"strings"

	dom "jobly/internal/domain"
)

// Where accumulates independent predicates joined with AND. Every value is
// bound as a positional parameter; nothing is interpolated into the SQL.
type Where struct {
	preds []string
	args  []any
}

// And appends expr, replacing its single "?" with the next placeholder.
func (w *Where) And(expr string, arg any) *Where {
	w.args = append(w.args, arg)
	w.preds = append(w.preds, strings.Replace(expr, "?", "$"+strconv.Itoa(len(w.args)), 1))
	return w
}

// Cond appends a predicate that takes no parameter.
func (w *Where) Cond(expr string) *Where {
	w.preds = append(w.preds, expr)
	return w
}

// Clause returns " WHERE a AND b" or "" when no predicate was added.
func (w *Where) Clause() string {
	if len(w.preds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.preds, " AND ")
}

// Args returns the bound values in placeholder order.
func (w *Where) Args() []any { return w.args }

// Len returns the number of predicates.
func (w *Where) Len() int { return len(w.preds) }

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Contains returns an ILIKE pattern matching s anywhere, with LIKE
// metacharacters in s taken literally.
func Contains(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// CompanyWhere builds the predicate for a company listing.
// Employee bounds are exclusive on both ends.
func CompanyWhere(f dom.CompanyFilter) *Where {
	w := &Where{}
	if f.NameLike != "" {
		w.And("name ILIKE ?", Contains(f.NameLike))
	}
	if f.MinEmployees != nil {
		w.And("num_employees > ?", *f.MinEmployees)
	}
	if f.MaxEmployees != nil {
		w.And("num_employees < ?", *f.MaxEmployees)
	}
	return w
}

// JobWhere builds the predicate for a job listing.
// minSalary is inclusive; hasEquity=false adds no constraint.
func JobWhere(f dom.JobFilter) *Where {
	w := &Where{}
	if f.Title != "" {
		w.And("title ILIKE ?", Contains(f.Title))
	}
	if f.MinSalary != nil {
		w.And("salary >= ?", *f.MinSalary)
	}
	if f.HasEquity {
		w.Cond("equity > 0")
	}
	return w
}
