package services

import (
	"context"
	"fmt"
	"time"

	"github.com/vastram/retail_pos_backend/internal/apperrors"
	"github.com/vastram/retail_pos_backend/internal/core/domain"
	portsrepo "github.com/vastram/retail_pos_backend/internal/core/ports/repositories"
	portssvc "github.com/vastram/retail_pos_backend/internal/core/ports/services"
	"github.com/vastram/retail_pos_backend/internal/dto"
)

// reportingService serves sales aggregates for the back office.
type reportingService struct {
	BaseService
	reportRepo portsrepo.ReportingReader
}

// NewReportingService creates the reporting service.
func NewReportingService(reportRepo portsrepo.ReportingReader) portssvc.ReportingSvcFacade {
	return &reportingService{reportRepo: reportRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) GetSalesSummary(ctx context.Context, from, to time.Time) (*domain.SalesSummary, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: summary range end precedes start", apperrors.ErrValidation)
	}

	summary, err := s.reportRepo.GetSalesSummary(ctx, dto.SalesSummaryParams{From: from, To: to})
	if err != nil {
		return nil, fmt.Errorf("failed to compute sales summary: %w", err)
	}
	return summary, nil
}
