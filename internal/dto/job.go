package dto

type CreateJobRequest struct {
	Title         string   `json:"title" binding:"required,min=1"`
	Salary        *int64   `json:"salary" binding:"omitempty,min=0"`
	Equity        *float64 `json:"equity" binding:"omitempty,min=0,max=1"`
	CompanyHandle string   `json:"companyHandle" binding:"required,max=25"`
}

// ListJobsQuery holds the optional job search filters.
type ListJobsQuery struct {
	Title     string `form:"title"`
	MinSalary *int64 `form:"minSalary"`
	HasEquity bool   `form:"hasEquity"`
}

type JobResponse struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	Salary        *int64   `json:"salary"`
	Equity        *float64 `json:"equity"`
	CompanyHandle string   `json:"companyHandle"`
}
