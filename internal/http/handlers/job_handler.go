// README: Job handlers for create/get.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fieldops/internal/modules/job"
	"fieldops/internal/types"
)

type JobHandler struct {
	jobs *job.Service
}

func NewJobHandler(svc *job.Service) *JobHandler {
	return &JobHandler{jobs: svc}
}

type createJobReq struct {
	Description   string    `json:"description" binding:"required"`
	JobType       string    `json:"job_type" binding:"required"`
	Location      string    `json:"location"`
	Lat           float64   `json:"lat"`
	Lng           float64   `json:"lng"`
	ScheduledAt   time.Time `json:"scheduled_at" binding:"required"`
	DurationHours float64   `json:"duration_hours" binding:"required"`
}

func (h *JobHandler) Create(c *gin.Context) {
	var req createJobReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	id, err := h.jobs.Create(c.Request.Context(), job.CreateCommand{
		Description:   req.Description,
		JobType:       req.JobType,
		Location:      req.Location,
		Position:      types.Point{Lat: req.Lat, Lng: req.Lng},
		ScheduledAt:   req.ScheduledAt,
		DurationHours: req.DurationHours,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"job_id": id})
}

func (h *JobHandler) Get(c *gin.Context) {
	j, err := h.jobs.Get(c.Request.Context(), types.ID(c.Param("id")))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"job_id":         j.ID,
		"description":    j.Description,
		"job_type":       j.JobType,
		"location":       j.Location,
		"lat":            j.Position.Lat,
		"lng":            j.Position.Lng,
		"scheduled_at":   j.ScheduledAt,
		"duration_hours": j.DurationHours,
	})
}
