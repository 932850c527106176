package domain

// Job is a posting owned by a company. ID is assigned by the store.
type Job struct {
	ID            int64
	Title         string
	Salary        *int64
	Equity        *float64
	CompanyHandle string
}

// JobFilter narrows a job listing. Zero values mean "no constraint".
type JobFilter struct {
	Title     string
	MinSalary *int64
	HasEquity bool
}

const (
	JobFieldTitle  = "title"
	JobFieldSalary = "salary"
	JobFieldEquity = "equity"

	JobFieldID                 = "id"
	JobFieldCompanyHandle      = "companyHandle"
	JobFieldCompanyHandleSnake = "company_handle"
)

// JobMutableFields lists the fields a partial update may touch.
var JobMutableFields = []string{
	JobFieldTitle,
	JobFieldSalary,
	JobFieldEquity,
}

// JobIdentityFields can never be changed after creation.
var JobIdentityFields = []string{
	JobFieldID,
	JobFieldCompanyHandle,
	JobFieldCompanyHandleSnake,
}
