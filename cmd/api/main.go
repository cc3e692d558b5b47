package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"proposalapi/internal/config"
	"proposalapi/internal/database"
	"proposalapi/internal/database/migration"
	handlers "proposalapi/internal/http/handler"
	"proposalapi/internal/http/middleware"
	"proposalapi/internal/otel"
	"proposalapi/internal/render"
	"proposalapi/internal/repository/postgres"
	"proposalapi/internal/service"
	"proposalapi/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	ctx := context.Background()

	shutdownTracing, err := otel.Init(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, cfg.Database.Host); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	// Select PDF persistence backend: local directory or S3-compatible bucket
	var store storage.Storage
	switch cfg.Storage.Backend {
	case "s3":
		store, err = storage.NewMinIO(cfg.MinIO)
	default:
		store, err = storage.NewLocal(cfg.Storage.Dir, cfg.Storage.PublicPrefix)
	}
	if err != nil {
		log.Fatalf("failed to initialize storage backend %q: %v", cfg.Storage.Backend, err)
	}

	tmpl, err := render.NewTemplateRenderer(cfg.TemplatePath)
	if err != nil {
		log.Fatalf("failed to load proposal template: %v", err)
	}
	pdf := render.NewChromeRenderer(cfg.PDF)

	// Initialize repositories and the generation pipeline
	destRepo := postgres.NewDestinationPostgres(db)
	auditRepo := postgres.NewAuditPostgres(db)
	svc := service.NewProposalService(destRepo, auditRepo, tmpl, pdf, store)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	promMW, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMW.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Register HTTP routes with injected dependencies
	handlers.RegisterRoutes(app, db, svc, destRepo)

	// Local backend: generated PDFs are downloadable as static files
	if cfg.Storage.Backend != "s3" {
		app.Static(cfg.Storage.PublicPrefix, cfg.Storage.Dir)
	}

	go func() {
		addr := ":" + cfg.Port
		if err := app.Listen(addr); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	// Let in-flight audit writes finish before closing the database.
	svc.Wait()
	if err := shutdownTracing(context.Background()); err != nil {
		log.Printf("tracing shutdown: %v", err)
	}
}
