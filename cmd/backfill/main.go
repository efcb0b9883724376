// Command backfill requeues claim documents whose analysis never reached a
// terminal state: failed documents with attempts left, and documents stuck in
// processing after a worker crash. Requeued documents are picked up by the
// running analysis queue worker.
// Usage: go run ./cmd/backfill
package main

import (
	"context"
	"fmt"
	"log"

	"claimguard/internal/config"
	"claimguard/internal/repository/postgres"
)

// staleProcessingAge is how long a document may sit in processing before it
// is presumed orphaned. Analysis runs under a timeout measured in minutes,
// so an hour is well past any legitimate in-flight work.
const staleProcessingAge = "1 hour"

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer func() { _ = db.Close() }()

	ctx := context.Background()

	// Failed documents that have not exhausted their retry budget.
	failedRes, err := db.ExecContext(ctx,
		`UPDATE claim_documents
		 SET analysis_status = 'queued', retry_after = NULL, updated_at = NOW()
		 WHERE analysis_status = 'failed' AND analysis_attempts < $1`,
		cfg.Queue.MaxRetries)
	if err != nil {
		return fmt.Errorf("requeueing failed documents: %w", err)
	}
	failed, _ := failedRes.RowsAffected()

	// Documents orphaned mid-processing by a crashed or restarted worker.
	staleRes, err := db.ExecContext(ctx,
		`UPDATE claim_documents
		 SET analysis_status = 'queued', retry_after = NULL, updated_at = NOW()
		 WHERE analysis_status = 'processing' AND updated_at < NOW() - INTERVAL '`+staleProcessingAge+`'`)
	if err != nil {
		return fmt.Errorf("requeueing stale documents: %w", err)
	}
	stale, _ := staleRes.RowsAffected()

	log.Printf("Backfill complete: %d failed and %d stale documents requeued", failed, stale)
	return nil
}
