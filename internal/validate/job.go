package validate

import (
	dom "jobly/internal/domain"
)

// Job checks a job about to be created.
func Job(j dom.Job) error {
	if blank(j.Title) {
		return fail("title is required")
	}
	if blank(j.CompanyHandle) {
		return fail("companyHandle is required")
	}
	if j.Salary != nil {
		if _, err := nonNegativeInt(dom.JobFieldSalary, *j.Salary); err != nil {
			return err
		}
	}
	if j.Equity != nil {
		if _, err := fraction(dom.JobFieldEquity, *j.Equity); err != nil {
			return err
		}
	}
	return nil
}

// JobPatch checks a partial job update and returns it with typed values:
// title string, salary int64 or nil, equity float64 or nil.
func JobPatch(p dom.Patch) (dom.Patch, error) {
	if len(p) == 0 {
		return nil, fail("No data")
	}
	if len(p) > len(dom.JobMutableFields) {
		return nil, fail("at most %d fields can be updated", len(dom.JobMutableFields))
	}
	if err := noRepeats(p); err != nil {
		return nil, err
	}
	out := make(dom.Patch, 0, len(p))
	for _, f := range p {
		if contains(dom.JobIdentityFields, f.Name) {
			return nil, fail("%s cannot be changed", f.Name)
		}
		var (
			v   any
			err error
		)
		switch f.Name {
		case dom.JobFieldTitle:
			v, err = text(f.Name, f.Value, true)
		case dom.JobFieldSalary:
			if f.Value != nil {
				v, err = nonNegativeInt(f.Name, f.Value)
			}
		case dom.JobFieldEquity:
			if f.Value != nil {
				v, err = fraction(f.Name, f.Value)
			}
		default:
			return nil, fail("unknown field: %s", f.Name)
		}
		if err != nil {
			return nil, err
		}
		out = append(out, dom.PatchField{Name: f.Name, Value: v})
	}
	return out, nil
}

// JobFilter checks listing filters.
func JobFilter(f dom.JobFilter) error {
	if f.MinSalary != nil && *f.MinSalary < 0 {
		return fail("minSalary must be >= 0")
	}
	return nil
}
