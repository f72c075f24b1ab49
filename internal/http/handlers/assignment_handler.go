// README: Assignment handler; books contractors onto jobs.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldops/internal/modules/assignment"
	"fieldops/internal/types"
)

type AssignmentHandler struct {
	assignments *assignment.Service
}

func NewAssignmentHandler(svc *assignment.Service) *AssignmentHandler {
	return &AssignmentHandler{assignments: svc}
}

type assignReq struct {
	JobID        string `json:"job_id" binding:"required"`
	ContractorID string `json:"contractor_id" binding:"required"`
}

func (h *AssignmentHandler) Create(c *gin.Context) {
	var req assignReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	id, err := h.assignments.Assign(c.Request.Context(), assignment.AssignCommand{
		JobID:        types.ID(req.JobID),
		ContractorID: types.ID(req.ContractorID),
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"assignment_id": id})
}
