package handlers

import (
	"net/http"
	"strconv"

	"tripmarket/internal/http/middleware"
	"tripmarket/internal/services"

	"github.com/gin-gonic/gin"
)

func leadID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("leadId"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_lead_id", "invalid lead id", nil)
		return 0, false
	}
	return id, true
}

// POST /api/trips/:id/leads
func CreateLead(c *gin.Context) {
	var in services.CreateLeadInput
	if !bindOptionalJSON(c, &in) {
		return
	}
	rc := middleware.GetRequestContext(c)
	lead, err := leadService(c).Create(c.Request.Context(), rc, c.Param("id"), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, lead)
}

// GET /api/leads
func ListLeads(c *gin.Context) {
	rc := middleware.GetRequestContext(c)
	leads, err := leadService(c).List(c.Request.Context(), rc)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": leads})
}

// POST /api/leads/:leadId/nudge
func NudgeLead(c *gin.Context) {
	id, ok := leadID(c)
	if !ok {
		return
	}
	lead, err := leadService(c).Nudge(c.Request.Context(), middleware.GetRequestContext(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, lead)
}

// DELETE /api/leads/:leadId
func UnsendLead(c *gin.Context) {
	id, ok := leadID(c)
	if !ok {
		return
	}
	if err := leadService(c).Unsend(c.Request.Context(), middleware.GetRequestContext(c), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "lead withdrawn", "id": id})
}
