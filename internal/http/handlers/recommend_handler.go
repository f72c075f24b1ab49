// README: Recommendation handler; ranked contractor shortlist for a job.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldops/internal/http/middleware"
	"fieldops/internal/modules/recommend"
	"fieldops/internal/types"
)

type RecommendHandler struct {
	recommend *recommend.Service
}

func NewRecommendHandler(svc *recommend.Service) *RecommendHandler {
	return &RecommendHandler{recommend: svc}
}

// Get handles GET /api/jobs/:id/recommendations. With ?list_only=true the
// candidate pool is restricted to the requester's curated contractor list.
func (h *RecommendHandler) Get(c *gin.Context) {
	requester := middleware.UserID(c)
	curatedOnly := c.Query("list_only") == "true"
	if curatedOnly && requester == "" {
		writeError(c, http.StatusBadRequest, "list_only requires an authenticated requester")
		return
	}

	res, err := h.recommend.GetRecommendations(c.Request.Context(), types.ID(c.Param("id")), types.ID(requester), curatedOnly)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
