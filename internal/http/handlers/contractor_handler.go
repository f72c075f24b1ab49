// README: Contractor handlers: lookup, free slots, review intake.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fieldops/internal/modules/contractor"
	"fieldops/internal/modules/recommend"
	"fieldops/internal/types"
)

type ContractorHandler struct {
	contractors *contractor.Service
	recommend   *recommend.Service
}

func NewContractorHandler(contractors *contractor.Service, rec *recommend.Service) *ContractorHandler {
	return &ContractorHandler{contractors: contractors, recommend: rec}
}

func (h *ContractorHandler) Get(c *gin.Context) {
	ct, err := h.contractors.Get(c.Request.Context(), types.ID(c.Param("id")))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"contractor_id":  ct.ID,
		"name":           ct.Name,
		"active":         ct.Active,
		"lat":            ct.Position.Lat,
		"lng":            ct.Position.Lng,
		"work_start_min": ct.WorkStartMin,
		"work_end_min":   ct.WorkEndMin,
		"rating":         ct.Rating,
		"review_count":   ct.ReviewCount,
	})
}

// Slots returns the contractor's free one-hour slots for ?date=YYYY-MM-DD.
func (h *ContractorHandler) Slots(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}
	slots, err := h.recommend.GetAvailableTimeSlots(c.Request.Context(), types.ID(c.Param("id")), date)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"available_slots": slots})
}

type reviewReq struct {
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
}

func (h *ContractorHandler) AddReview(c *gin.Context) {
	var req reviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	id, err := h.contractors.AddReview(c.Request.Context(), contractor.ReviewCommand{
		ContractorID: types.ID(c.Param("id")),
		Rating:       req.Rating,
		Comment:      req.Comment,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"review_id": id})
}
