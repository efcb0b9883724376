package port

import (
	"context"

	"github.com/google/uuid"

	"claimguard/internal/domain"
)

// ReportRepository provides aggregation queries for reports.
type ReportRepository interface {
	ClaimsRegister(ctx context.Context, tenantID uuid.UUID, filters domain.ReportFilters) ([]domain.ClaimRegisterRow, int, error)
	ClaimsByStatus(ctx context.Context, tenantID uuid.UUID, filters domain.ReportFilters) ([]domain.StatusSummaryRow, error)
	ClaimsByPeril(ctx context.Context, tenantID uuid.UUID, filters domain.ReportFilters) ([]domain.PerilSummaryRow, error)
	AnalysisOverview(ctx context.Context, tenantID uuid.UUID, filters domain.ReportFilters) (*domain.AnalysisOverviewRow, error)
}
