package handlers

import (
	"context"
	"net/http"

	dom "jobly/internal/domain"
	"jobly/internal/service"

	"github.com/gin-gonic/gin"
)

type UserService interface {
	Get(ctx context.Context, username string) (dom.User, error)
	Apply(ctx context.Context, username string, jobID int64) (dom.Application, error)
}

type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Get godoc
// @Summary      Get a user and the jobs they applied to
// @Tags         users
// @Produce      json
// @Security     CookieAuth
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  map[string]dto.UserResponse
// @Failure      404       {object}  map[string]interface{}
// @Router       /users/{username} [get]
func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.svc.Get(c.Request.Context(), c.Param("username"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": userToResponse(u)})
}

// Apply godoc
// @Summary      Apply to a job
// @Tags         users
// @Produce      json
// @Security     CookieAuth
// @Param        username  path      string  true  "Username"
// @Param        id        path      int     true  "Job ID"
// @Success      201       {object}  map[string]int64
// @Failure      404       {object}  map[string]interface{}
// @Failure      409       {object}  map[string]interface{}
// @Router       /users/{username}/jobs/{id} [post]
func (h *UserHandler) Apply(c *gin.Context) {
	jobID, err := service.ParseID(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	a, err := h.svc.Apply(c.Request.Context(), c.Param("username"), jobID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"applied": a.JobID})
}
