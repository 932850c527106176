package validate

import (
	"strings"

	dom "jobly/internal/domain"
)

// Company checks a company about to be created.
func Company(c dom.Company) error {
	if blank(c.Handle) {
		return fail("handle is required")
	}
	if len(c.Handle) > 25 {
		return fail("handle must be at most 25 characters")
	}
	if c.Handle != strings.ToLower(c.Handle) {
		return fail("handle must be lowercase")
	}
	if blank(c.Name) {
		return fail("name is required")
	}
	if blank(c.Description) {
		return fail("description is required")
	}
	if c.NumEmployees != nil {
		if _, err := nonNegativeInt(dom.CompanyFieldNumEmployees, *c.NumEmployees); err != nil {
			return err
		}
	}
	if c.LogoURL != nil {
		if err := webURL("logoUrl", *c.LogoURL); err != nil {
			return err
		}
	}
	return nil
}

// CompanyPatch checks a partial company update and returns it with typed
// values: strings for name/description, int or nil for numEmployees,
// string or nil for logoUrl.
func CompanyPatch(p dom.Patch) (dom.Patch, error) {
	if len(p) == 0 {
		return nil, fail("No data")
	}
	if len(p) > len(dom.CompanyMutableFields) {
		return nil, fail("at most %d fields can be updated", len(dom.CompanyMutableFields))
	}
	if err := noRepeats(p); err != nil {
		return nil, err
	}
	out := make(dom.Patch, 0, len(p))
	for _, f := range p {
		var (
			v   any
			err error
		)
		switch f.Name {
		case dom.CompanyFieldHandle:
			return nil, fail("handle cannot be changed")
		case dom.CompanyFieldName:
			v, err = text(f.Name, f.Value, true)
		case dom.CompanyFieldDescription:
			v, err = text(f.Name, f.Value, true)
		case dom.CompanyFieldNumEmployees:
			if f.Value != nil {
				var n int64
				n, err = nonNegativeInt(f.Name, f.Value)
				v = int(n)
			}
		case dom.CompanyFieldLogoURL:
			if f.Value != nil {
				var s string
				if s, err = text(f.Name, f.Value, true); err == nil {
					err = webURL(f.Name, s)
				}
				v = s
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

// CompanyFilter checks listing filters.
func CompanyFilter(f dom.CompanyFilter) error {
	if f.MinEmployees != nil && *f.MinEmployees < 0 {
		return fail("minEmployees must be >= 0")
	}
	if f.MaxEmployees != nil && *f.MaxEmployees < 0 {
		return fail("maxEmployees must be >= 0")
	}
	if f.MinEmployees != nil && f.MaxEmployees != nil && *f.MinEmployees > *f.MaxEmployees {
		return fail("minEmployees cannot be greater than maxEmployees")
	}
	return nil
}
