package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"claimguard/internal/domain"
	"claimguard/internal/port"
)

type countyRepo struct {
	db *sqlx.DB
}

// NewCountyRepo creates a new PostgreSQL-backed CountyRepository.
func NewCountyRepo(db *sqlx.DB) port.CountyRepository {
	return &countyRepo{db: db}
}

func (r *countyRepo) LoadAll(ctx context.Context) ([]domain.County, error) {
	var counties []domain.County
	err := r.db.SelectContext(ctx, &counties,
		`SELECT fips_code, name, region, coastal, wind_borne
		 FROM counties
		 ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("countyRepo.LoadAll: %w", err)
	}
	return counties, nil
}

func (r *countyRepo) UpsertBatch(ctx context.Context, counties []domain.County) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("countyRepo.UpsertBatch begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO counties (fips_code, name, region, coastal, wind_borne)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (fips_code) DO UPDATE SET
			name = EXCLUDED.name,
			region = EXCLUDED.region,
			coastal = EXCLUDED.coastal,
			wind_borne = EXCLUDED.wind_borne`)
	if err != nil {
		return fmt.Errorf("countyRepo.UpsertBatch prepare: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, c := range counties {
		if _, err := stmt.ExecContext(ctx, c.FIPSCode, c.Name, c.Region, c.Coastal, c.WindBorne); err != nil {
			return fmt.Errorf("countyRepo.UpsertBatch exec (%s): %w", c.FIPSCode, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("countyRepo.UpsertBatch commit: %w", err)
	}
	return nil
}
