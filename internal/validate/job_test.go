package validate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobly/internal/apperr"
	dom "jobly/internal/domain"
)

func i64(v int64) *int64     { return &v }
func f64(v float64) *float64 { return &v }

func TestJob(t *testing.T) {
	testCases := []struct {
		name string
		job  dom.Job
		msg  string
	}{
		{name: "ok", job: dom.Job{Title: "welder", Salary: i64(50000), Equity: f64(0), CompanyHandle: "c1"}},
		{name: "equity one", job: dom.Job{Title: "t", Equity: f64(1), CompanyHandle: "c1"}},
		{name: "optional numbers absent", job: dom.Job{Title: "t", CompanyHandle: "c1"}},
		{name: "missing title", job: dom.Job{CompanyHandle: "c1"}, msg: "title is required"},
		{name: "blank title", job: dom.Job{Title: "  ", CompanyHandle: "c1"}, msg: "title is required"},
		{name: "missing company", job: dom.Job{Title: "t"}, msg: "companyHandle is required"},
		{name: "negative salary", job: dom.Job{Title: "t", Salary: i64(-5), CompanyHandle: "c1"}, msg: "salary must be >= 0"},
		{name: "equity above one", job: dom.Job{Title: "t", Equity: f64(1.2), CompanyHandle: "c1"}, msg: "equity must be between 0 and 1"},
		{name: "negative equity", job: dom.Job{Title: "t", Equity: f64(-0.1), CompanyHandle: "c1"}, msg: "equity must be between 0 and 1"},
		{name: "NaN equity", job: dom.Job{Title: "t", Equity: f64(math.NaN()), CompanyHandle: "c1"}, msg: "equity must be a number"},
		{name: "salary at column limit", job: dom.Job{Title: "t", Salary: i64(math.MaxInt32), CompanyHandle: "c1"}},
		{name: "salary past column limit", job: dom.Job{Title: "t", Salary: i64(1 << 40), CompanyHandle: "c1"}, msg: "salary is too large"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Job(tc.job)
			if tc.msg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperr.Is(err, apperr.CodeValidation))
			assert.Equal(t, tc.msg, err.Error())
		})
	}
}

func TestJobPatch_NormalizesValues(t *testing.T) {
	in := dom.Patch{
		{Name: "equity", Value: 0.5},
		{Name: "title", Value: "  principal "},
		{Name: "salary", Value: float64(70000)},
	}

	out, err := JobPatch(in)
	require.NoError(t, err)

	assert.Equal(t, dom.Patch{
		{Name: "equity", Value: 0.5},
		{Name: "title", Value: "principal"},
		{Name: "salary", Value: int64(70000)},
	}, out)
}

func TestJobPatch_NullClearsNumbers(t *testing.T) {
	out, err := JobPatch(dom.Patch{{Name: "salary", Value: nil}, {Name: "equity", Value: nil}})
	require.NoError(t, err)
	assert.Nil(t, out[0].Value)
	assert.Nil(t, out[1].Value)
}

func TestJobPatch_Rejects(t *testing.T) {
	testCases := []struct {
		name  string
		patch dom.Patch
		msg   string
	}{
		{name: "empty", patch: dom.Patch{}, msg: "No data"},
		{name: "company handle", patch: dom.Patch{{Name: "companyHandle", Value: "c9"}}, msg: "companyHandle cannot be changed"},
		{name: "snake company handle", patch: dom.Patch{{Name: "company_handle", Value: "c9"}}, msg: "company_handle cannot be changed"},
		{name: "id", patch: dom.Patch{{Name: "title", Value: "x"}, {Name: "id", Value: 9}}, msg: "id cannot be changed"},
		{
			name: "too many fields",
			patch: dom.Patch{
				{Name: "title", Value: "x"}, {Name: "salary", Value: 1},
				{Name: "equity", Value: 0}, {Name: "companyHandle", Value: "c2"},
			},
			msg: "at most 3 fields can be updated",
		},
		{name: "unknown", patch: dom.Patch{{Name: "location", Value: "x"}}, msg: "unknown field: location"},
		{name: "salary string", patch: dom.Patch{{Name: "salary", Value: "lots"}}, msg: "salary must be a number"},
		{name: "salary fraction", patch: dom.Patch{{Name: "salary", Value: 10.5}}, msg: "salary must be an integer"},
		{name: "salary negative", patch: dom.Patch{{Name: "salary", Value: -5}}, msg: "salary must be >= 0"},
		{name: "equity high", patch: dom.Patch{{Name: "equity", Value: 1.2}}, msg: "equity must be between 0 and 1"},
		{name: "title blank", patch: dom.Patch{{Name: "title", Value: ""}}, msg: "title is required"},
		{name: "title null", patch: dom.Patch{{Name: "title", Value: nil}}, msg: "title must be a string"},
		{name: "repeated field", patch: dom.Patch{{Name: "title", Value: "a"}, {Name: "title", Value: "b"}}, msg: "duplicate field: title"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := JobPatch(tc.patch)
			require.Error(t, err)
			assert.True(t, apperr.Is(err, apperr.CodeValidation))
			assert.Equal(t, tc.msg, err.Error())
		})
	}
}

func TestJobFilter(t *testing.T) {
	assert.NoError(t, JobFilter(dom.JobFilter{MinSalary: i64(0)}))
	assert.Error(t, JobFilter(dom.JobFilter{MinSalary: i64(-1)}))
}
