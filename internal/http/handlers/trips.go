package handlers

import (
	"net/http"

	"tripmarket/internal/domain/models"
	"tripmarket/internal/http/middleware"
	"tripmarket/internal/pricing"

	"github.com/gin-gonic/gin"
)

// GET /api/trips/:id
func GetTripDetail(c *gin.Context) {
	d, err := tripService(c).Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// GET /api/trips/:id/starting-price
func GetStartingPrice(c *gin.Context) {
	res, err := tripService(c).StartingPrice(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// POST /api/trips/:id/quote
//
// Body is a selection; an empty body prices the trip with nothing chosen.
func QuoteTrip(c *gin.Context) {
	sel := pricing.NewSelection()
	if !bindOptionalJSON(c, &sel) {
		return
	}
	svc := quoteService(c)
	res, err := svc.Quote(c.Request.Context(), c.Param("id"), sel)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// POST /api/trips/:id/quote/pdf
func QuoteTripPDF(c *gin.Context) {
	sel := pricing.NewSelection()
	if !bindOptionalJSON(c, &sel) {
		return
	}
	data, filename, err := quoteService(c).QuotePDF(c.Request.Context(), c.Param("id"), sel)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendFile(c, "application/pdf", "inline", filename, data)
}

// PUT /api/organizer/trips/:id/pricing
func UpdateTripPricing(c *gin.Context) {
	var p models.TripPricing
	if !BindJSONOrError(c, &p) {
		return
	}
	rc := middleware.GetRequestContext(c)
	if err := tripService(c).UpdatePricing(c.Request.Context(), rc, c.Param("id"), &p); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "pricing updated", "tripId": c.Param("id"), "tripPricingDTO": p})
}
