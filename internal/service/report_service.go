package service

import (
	"context"

	"github.com/google/uuid"

	"claimguard/internal/domain"
	"claimguard/internal/port"
)

// ReportService provides claim reporting over analyzed documents.
type ReportService interface {
	ClaimsRegister(ctx context.Context, tenantID uuid.UUID, filters domain.ReportFilters) ([]domain.ClaimRegisterRow, int, error)
	ClaimsByStatus(ctx context.Context, tenantID uuid.UUID, filters domain.ReportFilters) ([]domain.StatusSummaryRow, error)
	ClaimsByPeril(ctx context.Context, tenantID uuid.UUID, filters domain.ReportFilters) ([]domain.PerilSummaryRow, error)
	AnalysisOverview(ctx context.Context, tenantID uuid.UUID, filters domain.ReportFilters) (*domain.AnalysisOverviewRow, error)
}

type reportService struct {
	reportRepo port.ReportRepository
}

// NewReportService creates a new ReportService implementation.
func NewReportService(reportRepo port.ReportRepository) ReportService {
	return &reportService{reportRepo: reportRepo}
}

func (s *reportService) ClaimsRegister(ctx context.Context, tenantID uuid.UUID, filters domain.ReportFilters) ([]domain.ClaimRegisterRow, int, error) {
	return s.reportRepo.ClaimsRegister(ctx, tenantID, filters)
}

func (s *reportService) ClaimsByStatus(ctx context.Context, tenantID uuid.UUID, filters domain.ReportFilters) ([]domain.StatusSummaryRow, error) {
	return s.reportRepo.ClaimsByStatus(ctx, tenantID, filters)
}

func (s *reportService) ClaimsByPeril(ctx context.Context, tenantID uuid.UUID, filters domain.ReportFilters) ([]domain.PerilSummaryRow, error) {
	return s.reportRepo.ClaimsByPeril(ctx, tenantID, filters)
}

func (s *reportService) AnalysisOverview(ctx context.Context, tenantID uuid.UUID, filters domain.ReportFilters) (*domain.AnalysisOverviewRow, error) {
	return s.reportRepo.AnalysisOverview(ctx, tenantID, filters)
}
