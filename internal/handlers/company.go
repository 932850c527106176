package handlers

import (
	"context"
	"net/http"

	dom "jobly/internal/domain"
	"jobly/internal/dto"

	"github.com/gin-gonic/gin"
)

// CompanyService is the subset of service.CompanyService the handler uses.
type CompanyService interface {
	Create(ctx context.Context, c dom.Company) (dom.Company, error)
	List(ctx context.Context, f dom.CompanyFilter) ([]dom.Company, error)
	Get(ctx context.Context, handle string) (dom.Company, error)
	Update(ctx context.Context, handle string, patch dom.Patch) (dom.Company, error)
	Delete(ctx context.Context, handle string) error
}

type CompanyHandler struct {
	svc CompanyService
}

func NewCompanyHandler(svc CompanyService) *CompanyHandler {
	return &CompanyHandler{svc: svc}
}

// Create godoc
// @Summary      Create a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.CreateCompanyRequest  true  "Company"
// @Success      201   {object}  map[string]dto.CompanyResponse
// @Failure      400   {object}  map[string]interface{}
// @Failure      409   {object}  map[string]interface{}
// @Router       /companies [post]
func (h *CompanyHandler) Create(c *gin.Context) {
	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	company, err := h.svc.Create(c.Request.Context(), dom.Company{
		Handle:       req.Handle,
		Name:         req.Name,
		Description:  req.Description,
		NumEmployees: req.NumEmployees,
		LogoURL:      req.LogoURL,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"company": companyToResponse(company)})
}

// List godoc
// @Summary      List companies
// @Tags         companies
// @Produce      json
// @Param        nameLike      query  string  false  "Case-insensitive name substring"
// @Param        minEmployees  query  int     false  "Employees strictly greater than"
// @Param        maxEmployees  query  int     false  "Employees strictly less than"
// @Success      200  {object}  map[string][]dto.CompanyResponse
// @Failure      400  {object}  map[string]interface{}
// @Router       /companies [get]
func (h *CompanyHandler) List(c *gin.Context) {
	var q dto.ListCompaniesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	list, err := h.svc.List(c.Request.Context(), dom.CompanyFilter{
		NameLike:     q.NameLike,
		MinEmployees: q.MinEmployees,
		MaxEmployees: q.MaxEmployees,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"companies": companiesToResponses(list)})
}

// Get godoc
// @Summary      Get a company with its jobs
// @Tags         companies
// @Produce      json
// @Param        handle  path      string  true  "Company handle"
// @Success      200     {object}  map[string]dto.CompanyDetailResponse
// @Failure      404     {object}  map[string]interface{}
// @Router       /companies/{handle} [get]
func (h *CompanyHandler) Get(c *gin.Context) {
	company, err := h.svc.Get(c.Request.Context(), c.Param("handle"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"company": companyToDetail(company)})
}

// Update godoc
// @Summary      Partially update a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        handle  path      string  true  "Company handle"
// @Param        body    body      object  true  "Any of name, description, numEmployees, logoUrl"
// @Success      200     {object}  map[string]dto.CompanyResponse
// @Failure      400     {object}  map[string]interface{}
// @Failure      404     {object}  map[string]interface{}
// @Router       /companies/{handle} [patch]
func (h *CompanyHandler) Update(c *gin.Context) {
	var req dto.Patch
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	company, err := h.svc.Update(c.Request.Context(), c.Param("handle"), req.Fields())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"company": companyToResponse(company)})
}

// Delete godoc
// @Summary      Delete a company and its jobs
// @Tags         companies
// @Produce      json
// @Security     CookieAuth
// @Param        handle  path      string  true  "Company handle"
// @Success      200     {object}  map[string]string
// @Failure      404     {object}  map[string]interface{}
// @Router       /companies/{handle} [delete]
func (h *CompanyHandler) Delete(c *gin.Context) {
	handle := c.Param("handle")
	if err := h.svc.Delete(c.Request.Context(), handle); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": handle})
}
