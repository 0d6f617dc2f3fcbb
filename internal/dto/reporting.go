package dto

import (
	"time"

	"github.com/vastram/retail_pos_backend/internal/core/domain"
)

// SalesSummaryParams bounds the reporting window. Both bounds are inclusive
// of the day they name.
type SalesSummaryParams struct {
	From time.Time `form:"from" time_format:"2006-01-02" binding:"required"`
	To   time.Time `form:"to" time_format:"2006-01-02" binding:"required"`
}

// SalesSummaryResponse wraps the aggregate for the API.
type SalesSummaryResponse struct {
	Summary domain.SalesSummary `json:"summary"`
}
