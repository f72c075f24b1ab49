// README: Base handler utilities (JSON helpers, domain error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldops/internal/modules/contractor"
	"fieldops/internal/modules/job"
	"fieldops/internal/modules/recommend"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(c *gin.Context, status int, msg string) {
	c.JSON(status, errorResponse{Error: msg})
}

func writeDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, job.ErrNotFound), errors.Is(err, contractor.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, job.ErrBadRequest),
		errors.Is(err, contractor.ErrBadRating),
		errors.Is(err, recommend.ErrJobInPast),
		errors.Is(err, recommend.ErrBadDuration),
		errors.Is(err, recommend.ErrScoreOutOfRange):
		writeError(c, http.StatusBadRequest, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
