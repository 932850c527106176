package handlers

import (
	"context"
	"net/http"

	dom "jobly/internal/domain"
	"jobly/internal/dto"
	"jobly/internal/service"

	"github.com/gin-gonic/gin"
)

type JobService interface {
	Create(ctx context.Context, j dom.Job) (dom.Job, error)
	List(ctx context.Context, f dom.JobFilter) ([]dom.Job, error)
	Get(ctx context.Context, id int64) (dom.Job, error)
	Update(ctx context.Context, id int64, patch dom.Patch) (dom.Job, error)
	Delete(ctx context.Context, id int64) (string, error)
}

type JobHandler struct {
	svc JobService
}

func NewJobHandler(svc JobService) *JobHandler {
	return &JobHandler{svc: svc}
}

// Create godoc
// @Summary      Create a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.CreateJobRequest  true  "Job"
// @Success      201   {object}  map[string]dto.JobResponse
// @Failure      400   {object}  map[string]interface{}
// @Router       /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	job, err := h.svc.Create(c.Request.Context(), dom.Job{
		Title:         req.Title,
		Salary:        req.Salary,
		Equity:        req.Equity,
		CompanyHandle: req.CompanyHandle,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"job": jobToResponse(job)})
}

// List godoc
// @Summary      List jobs
// @Tags         jobs
// @Produce      json
// @Param        title      query  string  false  "Case-insensitive title substring"
// @Param        minSalary  query  int     false  "Salary at least"
// @Param        hasEquity  query  bool    false  "Only jobs with equity > 0"
// @Success      200  {object}  map[string][]dto.JobResponse
// @Failure      400  {object}  map[string]interface{}
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	var q dto.ListJobsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	list, err := h.svc.List(c.Request.Context(), dom.JobFilter{
		Title:     q.Title,
		MinSalary: q.MinSalary,
		HasEquity: q.HasEquity,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobsToResponses(list)})
}

// Get godoc
// @Summary      Get a job by ID
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  map[string]dto.JobResponse
// @Failure      404  {object}  map[string]interface{}
// @Router       /jobs/{id} [get]
func (h *JobHandler) Get(c *gin.Context) {
	id, err := service.ParseID(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	job, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": jobToResponse(job)})
}

// Update godoc
// @Summary      Partially update a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      int     true  "Job ID"
// @Param        body  body      object  true  "Any of title, salary, equity"
// @Success      200   {object}  map[string]dto.JobResponse
// @Failure      400   {object}  map[string]interface{}
// @Failure      404   {object}  map[string]interface{}
// @Router       /jobs/{id} [patch]
func (h *JobHandler) Update(c *gin.Context) {
	id, err := service.ParseID(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	var req dto.Patch
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	job, err := h.svc.Update(c.Request.Context(), id, req.Fields())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": jobToResponse(job)})
}

// Delete godoc
// @Summary      Delete a job
// @Tags         jobs
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]interface{}
// @Router       /jobs/{id} [delete]
func (h *JobHandler) Delete(c *gin.Context) {
	id, err := service.ParseID(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	title, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": title})
}
