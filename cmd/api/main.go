package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/scg-heim/heim-backend-go/internal/config"
	"github.com/scg-heim/heim-backend-go/internal/domain/roster"
	appHTTP "github.com/scg-heim/heim-backend-go/internal/handler/http"
	"github.com/scg-heim/heim-backend-go/internal/pkg/cron"
	"github.com/scg-heim/heim-backend-go/internal/pkg/database"
	"github.com/scg-heim/heim-backend-go/internal/pkg/fetch"
	"github.com/scg-heim/heim-backend-go/internal/repository/postgresql"
	datasetService "github.com/scg-heim/heim-backend-go/internal/service/dataset"
	ingestService "github.com/scg-heim/heim-backend-go/internal/service/ingest"
	reportService "github.com/scg-heim/heim-backend-go/internal/service/report"
	statsService "github.com/scg-heim/heim-backend-go/internal/service/stats"
	syncService "github.com/scg-heim/heim-backend-go/internal/service/sync"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	if err := postgresql.EnsureSchema(context.Background(), db); err != nil {
		log.Fatal("Failed to ensure database schema:", err)
	}

	snapshotRepo := postgresql.NewSnapshotRepository(db)
	store := datasetService.NewStore()
	ingestSvc := ingestService.NewIngestService()
	statsSvc := statsService.NewStatsService()
	reportSvc := reportService.NewReportService()

	fetcher := fetch.NewClient(nil, cfg.Sheets.ExportURL, cfg.Sheets.Proxies, cfg.Sheets.FetchTimeout)
	syncSvc := syncService.NewSyncService(
		fetcher,
		ingestSvc,
		store,
		snapshotRepo,
		cfg.Sheets.MembersID,
		cfg.Sheets.RecordsID,
		cfg.Sheets.SyncDeadline,
	)

	// Serve the persisted snapshot until the first sync lands.
	if res, _ := syncSvc.Restore(context.Background()); res.Outcome == roster.OutcomeEmpty {
		log.Println("No persisted snapshot found, waiting for first sync")
	}

	scheduler := cron.NewScheduler()
	if cfg.Sheets.AutoSync {
		scheduler.AddJob("auto-sync", cfg.Sheets.SyncInterval, func(ctx context.Context) error {
			_, err := syncSvc.Sync(ctx, true)
			return err
		})
	}
	scheduler.Start()
	defer scheduler.Stop()

	dashboardHandler := appHTTP.NewDashboardHandler(statsSvc, reportSvc, store)
	datasetHandler := appHTTP.NewDatasetHandler(syncSvc, ingestSvc, store, snapshotRepo)

	router := appHTTP.NewRouter(dashboardHandler, datasetHandler, cfg.App.CORSOrigins, cfg.App.Env)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
