package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"claimguard/internal/domain"
	"claimguard/internal/port"
)

type reportRepo struct {
	db *sqlx.DB
}

// NewReportRepo creates a new PostgreSQL-backed ReportRepository.
func NewReportRepo(db *sqlx.DB) port.ReportRepository {
	return &reportRepo{db: db}
}

// buildWhereClause constructs a dynamic WHERE clause over the claims table.
// It returns the clause string (starting with "WHERE") and the positional arguments.
func buildWhereClause(tenantID uuid.UUID, filters *domain.ReportFilters) (clause string, args []interface{}) {
	args = []interface{}{tenantID}
	clause = "WHERE c.tenant_id = $1"
	argN := 2

	if filters.From != nil {
		clause += fmt.Sprintf(" AND c.incident_date >= $%d", argN)
		args = append(args, *filters.From)
		argN++
	}
	if filters.To != nil {
		clause += fmt.Sprintf(" AND c.incident_date <= $%d", argN)
		args = append(args, *filters.To)
		argN++
	}
	if filters.Peril != "" {
		clause += fmt.Sprintf(" AND c.peril = $%d", argN)
		args = append(args, filters.Peril)
		argN++
	}
	if filters.Status != "" {
		clause += fmt.Sprintf(" AND c.status = $%d", argN)
		args = append(args, filters.Status)
		argN++ //nolint:ineffassign // argN kept incremented for consistency
	}

	return clause, args
}

func (r *reportRepo) ClaimsRegister(ctx context.Context, tenantID uuid.UUID, filters domain.ReportFilters) ([]domain.ClaimRegisterRow, int, error) {
	clause, args := buildWhereClause(tenantID, &filters)

	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM claims c "+clause, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("reportRepo.ClaimsRegister count: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 50
	}
	query := fmt.Sprintf(`
		SELECT
			c.claim_number,
			c.peril,
			c.status,
			p.address,
			p.county,
			c.incident_date,
			COUNT(d.id) AS document_count,
			COALESCE(AVG(d.confidence) FILTER (WHERE d.analysis_status = 'completed'), 0) AS avg_confidence,
			c.created_at
		FROM claims c
		JOIN properties p ON p.id = c.property_id
		LEFT JOIN claim_documents d ON d.claim_id = c.id
		%s
		GROUP BY c.id, c.claim_number, c.peril, c.status, p.address, p.county, c.incident_date, c.created_at
		ORDER BY c.created_at DESC
		LIMIT $%d OFFSET $%d`, clause, len(args)+1, len(args)+2)
	args = append(args, limit, filters.Offset)

	var rows []domain.ClaimRegisterRow
	err = r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("reportRepo.ClaimsRegister: %w", err)
	}
	return rows, total, nil
}

func (r *reportRepo) ClaimsByStatus(ctx context.Context, tenantID uuid.UUID, filters domain.ReportFilters) ([]domain.StatusSummaryRow, error) {
	clause, args := buildWhereClause(tenantID, &filters)

	var rows []domain.StatusSummaryRow
	err := r.db.SelectContext(ctx, &rows,
		fmt.Sprintf(`SELECT c.status, COUNT(*) AS count
			FROM claims c %s
			GROUP BY c.status
			ORDER BY count DESC`, clause),
		args...)
	if err != nil {
		return nil, fmt.Errorf("reportRepo.ClaimsByStatus: %w", err)
	}
	return rows, nil
}

func (r *reportRepo) ClaimsByPeril(ctx context.Context, tenantID uuid.UUID, filters domain.ReportFilters) ([]domain.PerilSummaryRow, error) {
	clause, args := buildWhereClause(tenantID, &filters)

	var rows []domain.PerilSummaryRow
	err := r.db.SelectContext(ctx, &rows,
		fmt.Sprintf(`SELECT c.peril, COUNT(*) AS count
			FROM claims c %s
			GROUP BY c.peril
			ORDER BY count DESC`, clause),
		args...)
	if err != nil {
		return nil, fmt.Errorf("reportRepo.ClaimsByPeril: %w", err)
	}
	return rows, nil
}

func (r *reportRepo) AnalysisOverview(ctx context.Context, tenantID uuid.UUID, filters domain.ReportFilters) (*domain.AnalysisOverviewRow, error) {
	clause, args := buildWhereClause(tenantID, &filters)

	var row domain.AnalysisOverviewRow
	err := r.db.GetContext(ctx, &row,
		fmt.Sprintf(`
			SELECT
				COUNT(d.id) AS total_documents,
				COUNT(d.id) FILTER (WHERE d.analysis_status = 'completed') AS completed,
				COUNT(d.id) FILTER (WHERE d.analysis_status = 'failed') AS failed,
				COUNT(d.id) FILTER (WHERE d.analysis_status IN ('queued', 'processing')) AS queued,
				COALESCE(AVG(d.confidence) FILTER (WHERE d.analysis_status = 'completed'), 0) AS avg_confidence
			FROM claims c
			JOIN claim_documents d ON d.claim_id = c.id
			%s`, clause),
		args...)
	if err != nil {
		return nil, fmt.Errorf("reportRepo.AnalysisOverview: %w", err)
	}
	return &row, nil
}
