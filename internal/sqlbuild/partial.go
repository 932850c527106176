package sqlbuild

import (
	"fmt"
	"strconv"
	"strings"

	"jobly/internal/apperr"
	dom "jobly/internal/domain"
)

// SetClause is the compiled SET list of a partial UPDATE.
type SetClause struct {
	Cols   string
	Values []any
}

// KeyPlaceholder returns the placeholder that follows the SET values,
// used for the row key in the WHERE clause.
func (s SetClause) KeyPlaceholder() string {
	return "$" + strconv.Itoa(len(s.Values)+1)
}

// Args returns the SET values followed by key.
func (s SetClause) Args(key any) []any {
	args := make([]any, 0, len(s.Values)+1)
	args = append(args, s.Values...)
	return append(args, key)
}

// PartialUpdate compiles data into `"col"=$1, "col2"=$2` and the matching
// value list. columns maps a field name to its column; fields without an
// entry are used as-is. Placeholders follow the order of data.
//
// {firstName: "Aliya", age: 32} => `"first_name"=$1, "age"=$2`, ["Aliya", 32]
func PartialUpdate(data dom.Patch, columns map[string]string) (SetClause, error) {
	if len(data) == 0 {
		return SetClause{}, apperr.Validation("No data")
	}
	cols := make([]string, len(data))
	values := make([]any, len(data))
	for i, f := range data {
		col, ok := columns[f.Name]
		if !ok {
			col = f.Name
		}
		cols[i] = fmt.Sprintf(`"%s"=$%d`, col, i+1)
		values[i] = f.Value
	}
	return SetClause{Cols: strings.Join(cols, ", "), Values: values}, nil
}
