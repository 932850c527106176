package domain

// Company is an employer identified by a human-chosen handle.
type Company struct {
	Handle       string
	Name         string
	Description  string
	NumEmployees *int
	LogoURL      *string

	// Jobs is only populated by single-company reads.
	Jobs []Job
}

// CompanyFilter narrows a company listing. Zero values mean "no constraint".
type CompanyFilter struct {
	NameLike     string
	MinEmployees *int
	MaxEmployees *int
}

// Patchable company fields, in the JSON naming used by clients.
const (
	CompanyFieldName         = "name"
	CompanyFieldDescription  = "description"
	CompanyFieldNumEmployees = "numEmployees"
	CompanyFieldLogoURL      = "logoUrl"

	CompanyFieldHandle = "handle"
)

// CompanyMutableFields lists the fields a partial update may touch.
var CompanyMutableFields = []string{
	CompanyFieldName,
	CompanyFieldDescription,
	CompanyFieldNumEmployees,
	CompanyFieldLogoURL,
}
