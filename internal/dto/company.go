package dto

type CreateCompanyRequest struct {
	Handle       string  `json:"handle" binding:"required,min=1,max=25"`
	Name         string  `json:"name" binding:"required,min=1"`
	Description  string  `json:"description" binding:"required"`
	NumEmployees *int    `json:"numEmployees" binding:"omitempty,min=0"`
	LogoURL      *string `json:"logoUrl" binding:"omitempty,url"`
}

// ListCompaniesQuery holds the optional company search filters.
type ListCompaniesQuery struct {
	NameLike     string `form:"nameLike"`
	MinEmployees *int   `form:"minEmployees"`
	MaxEmployees *int   `form:"maxEmployees"`
}

type CompanyResponse struct {
	Handle       string  `json:"handle"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	NumEmployees *int    `json:"numEmployees"`
	LogoURL      *string `json:"logoUrl"`
}

// CompanyDetailResponse is a company with all of its jobs.
type CompanyDetailResponse struct {
	CompanyResponse
	Jobs []JobResponse `json:"jobs"`
}
