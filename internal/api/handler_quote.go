package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"venue-booking-backend/internal/pricing"
)

// quoteResponse is the JSON shape of a computed cost estimate.
type quoteResponse struct {
	Base      string   `json:"base"`
	Extras    string   `json:"extras"`
	Total     string   `json:"total"`
	Breakdown []string `json:"breakdown"`
	Summary   []string `json:"summary"`
	Bookable  bool     `json:"bookable"`
	Reason    string   `json:"reason,omitempty"`
}

func newQuoteResponse(req pricing.Request) quoteResponse {
	res := pricing.Compute(req)
	return quoteResponse{
		Base:      res.BaseString(),
		Extras:    res.ExtrasString(),
		Total:     res.TotalString(),
		Breakdown: res.Breakdown,
		Summary:   pricing.SummaryLines(req, res),
		Bookable:  res.Bookable,
		Reason:    res.Reason,
	}
}

// PostQuote handles POST /api/quote: a stateless pricing computation that
// leaves the session untouched.
func (h *Handler) PostQuote(c *gin.Context) {
	var req pricing.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, newQuoteResponse(req))
}

// GetPricing handles GET /api/pricing, serving the compiled-in catalog.
func (h *Handler) GetPricing(c *gin.Context) {
	c.JSON(http.StatusOK, pricing.BuildCatalog())
}
