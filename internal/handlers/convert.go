package handlers

import (
	dom "jobly/internal/domain"
	"jobly/internal/dto"
)

func companyToResponse(c dom.Company) dto.CompanyResponse {
	return dto.CompanyResponse{
		Handle:       c.Handle,
		Name:         c.Name,
		Description:  c.Description,
		NumEmployees: c.NumEmployees,
		LogoURL:      c.LogoURL,
	}
}

func companyToDetail(c dom.Company) dto.CompanyDetailResponse {
	return dto.CompanyDetailResponse{
		CompanyResponse: companyToResponse(c),
		Jobs:            jobsToResponses(c.Jobs),
	}
}

func companiesToResponses(list []dom.Company) []dto.CompanyResponse {
	out := make([]dto.CompanyResponse, len(list))
	for i := range list {
		out[i] = companyToResponse(list[i])
	}
	return out
}

func jobToResponse(j dom.Job) dto.JobResponse {
	return dto.JobResponse{
		ID:            j.ID,
		Title:         j.Title,
		Salary:        j.Salary,
		Equity:        j.Equity,
		CompanyHandle: j.CompanyHandle,
	}
}

func jobsToResponses(list []dom.Job) []dto.JobResponse {
	out := make([]dto.JobResponse, len(list))
	for i := range list {
		out[i] = jobToResponse(list[i])
	}
	return out
}

func userToResponse(u dom.User) dto.UserResponse {
	return dto.UserResponse{
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		Jobs:      u.Jobs,
	}
}
