// Command seedcounties loads the Florida county reference workbook into the
// counties table. The workbook's first sheet carries one row per county:
// FIPS code, name, region, coastal flag, wind-borne debris flag.
// Usage: go run ./cmd/seedcounties [path/to/counties.xlsx]
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"claimguard/internal/config"
	"claimguard/internal/domain"
	"claimguard/internal/repository/postgres"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	xlsxPath := "db/seeds/fl_counties.xlsx"
	if len(os.Args) > 1 {
		xlsxPath = os.Args[1]
	}

	counties, err := readWorkbook(xlsxPath)
	if err != nil {
		return err
	}
	log.Printf("parsed %d counties from %s", len(counties), xlsxPath)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer func() { _ = db.Close() }()

	repo := postgres.NewCountyRepo(db)
	if err := repo.UpsertBatch(context.Background(), counties); err != nil {
		return fmt.Errorf("upserting counties: %w", err)
	}

	log.Printf("seed complete: %d counties upserted", len(counties))
	return nil
}

func readWorkbook(path string) ([]domain.County, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open Excel file: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	seen := make(map[string]bool)
	var counties []domain.County
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if len(row) < 3 {
			continue
		}
		fips := strings.TrimSpace(row[0])
		name := strings.TrimSpace(row[1])
		if fips == "" || name == "" {
			log.Printf("WARN: skipping row %d: missing FIPS code or name", i+1)
			continue
		}
		if seen[fips] {
			log.Printf("WARN: skipping row %d: duplicate FIPS code %s", i+1, fips)
			continue
		}
		seen[fips] = true

		counties = append(counties, domain.County{
			FIPSCode:  fips,
			Name:      name,
			Region:    strings.TrimSpace(row[2]),
			Coastal:   cellBool(row, 3),
			WindBorne: cellBool(row, 4),
		})
	}
	if len(counties) == 0 {
		return nil, fmt.Errorf("no county rows found in %s", path)
	}
	return counties, nil
}

// cellBool reads a yes/no style cell, tolerating the variants the source
// workbook uses.
func cellBool(row []string, idx int) bool {
	if idx >= len(row) {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(row[idx])) {
	case "y", "yes", "true", "1", "x":
		return true
	default:
		return false
	}
}
