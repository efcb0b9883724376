package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "claimguard/docs"
	"claimguard/internal/analysis"
	"claimguard/internal/analysis/providers"
	"claimguard/internal/config"
	"claimguard/internal/email/noop"
	"claimguard/internal/email/ses"
	"claimguard/internal/handler"
	"claimguard/internal/port"
	"claimguard/internal/repository/postgres"
	"claimguard/internal/router"
	"claimguard/internal/service"
	s3storage "claimguard/internal/storage/s3"
	"claimguard/internal/validator"
)

// @title ClaimGuard API
// @version 1.0
// @description Multi-tenant property claim platform with multi-provider AI document analysis.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	tenantRepo := postgres.NewTenantRepo(db)
	userRepo := postgres.NewUserRepo(db)
	fileRepo := postgres.NewFileMetaRepo(db)
	propertyRepo := postgres.NewPropertyRepo(db)
	claimRepo := postgres.NewClaimRepo(db)
	docRepo := postgres.NewClaimDocumentRepo(db)
	countyRepo := postgres.NewCountyRepo(db)
	reportRepo := postgres.NewReportRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize the analysis provider registry; only providers with
	// credentials configured are registered.
	registry, err := providers.BuildRegistry(&cfg.Analysis)
	if err != nil {
		return fmt.Errorf("failed to build analysis registry: %w", err)
	}
	analyzer := analysis.NewService(registry, analysis.InvokerConfig{
		Timeout:     time.Duration(cfg.Analysis.TimeoutSecs) * time.Second,
		MaxInFlight: cfg.Analysis.MaxInFlight,
	})

	validationEngine := validator.NewDefaultEngine()

	emailSender, err := buildEmailSender(&cfg.Email)
	if err != nil {
		return fmt.Errorf("failed to initialize email sender: %w", err)
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, tenantRepo, cfg.JWT)
	fileSvc := service.NewFileService(fileRepo, s3Client, &cfg.S3)
	tenantSvc := service.NewTenantService(tenantRepo)
	userSvc := service.NewUserService(userRepo)
	propertySvc := service.NewPropertyService(propertyRepo, countyRepo)
	claimSvc := service.NewClaimService(claimRepo, propertyRepo, userRepo, emailSender)
	documentSvc := service.NewDocumentService(
		docRepo, claimRepo, propertyRepo, fileRepo, userRepo,
		analyzer, s3Client, validationEngine, emailSender,
	)
	reportSvc := service.NewReportService(reportRepo)

	// Initialize handlers
	h := router.Handlers{
		Auth:     handler.NewAuthHandler(authSvc),
		File:     handler.NewFileHandler(fileSvc),
		Tenant:   handler.NewTenantHandler(tenantSvc),
		User:     handler.NewUserHandler(userSvc),
		Property: handler.NewPropertyHandler(propertySvc),
		Claim:    handler.NewClaimHandler(claimSvc),
		Document: handler.NewDocumentHandler(documentSvc),
		Report:   handler.NewReportHandler(reportSvc, tenantSvc),
		Health:   handler.NewHealthHandler(db),
	}

	r := router.Setup(authSvc, cfg.CORS.AllowedOrigins, h)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start the background analysis queue worker
	worker := service.NewAnalysisQueueWorker(docRepo, documentSvc, service.AnalysisQueueConfig{
		PollInterval: time.Duration(cfg.Queue.PollIntervalSecs) * time.Second,
		MaxRetries:   cfg.Queue.MaxRetries,
		Concurrency:  cfg.Queue.Concurrency,
	})
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		worker.Start(ctx)
	}()

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Printf("Shutdown signal received, draining...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	<-workerDone

	return nil
}

func buildEmailSender(cfg *config.EmailConfig) (port.EmailSender, error) {
	switch cfg.Provider {
	case "ses":
		return ses.NewSESSender(cfg.Region, cfg.FromAddress, cfg.FromName, cfg.FrontendURL)
	default:
		return noop.NewNoopSender(), nil
	}
}
