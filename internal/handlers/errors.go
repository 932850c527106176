package handlers

import (
	"log"
	"net/http"

	"jobly/internal/apperr"

	"github.com/gin-gonic/gin"
)

var statusByCode = map[apperr.Code]int{
	apperr.CodeValidation:   http.StatusBadRequest,
	apperr.CodeUnauthorized: http.StatusUnauthorized,
	apperr.CodeForbidden:    http.StatusForbidden,
	apperr.CodeNotFound:     http.StatusNotFound,
	apperr.CodeConflict:     http.StatusConflict,
}

func errorJSON(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": gin.H{"message": msg, "status": status}})
}

// writeError maps err to its HTTP status. Unclassified errors are logged
// and reported without detail.
func writeError(c *gin.Context, err error) {
	status, ok := statusByCode[apperr.CodeOf(err)]
	if !ok {
		log.Printf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		errorJSON(c, http.StatusInternalServerError, "internal server error")
		return
	}
	errorJSON(c, status, err.Error())
}

func badRequest(c *gin.Context, err error) {
	errorJSON(c, http.StatusBadRequest, err.Error())
}
