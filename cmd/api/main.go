package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/leadmarket/internal/infra/database"
	"github.com/xavierca1/leadmarket/internal/infra/http/handlers"
	"github.com/xavierca1/leadmarket/internal/infra/http/middleware"
	"github.com/xavierca1/leadmarket/internal/infra/mail"
	"github.com/xavierca1/leadmarket/internal/infra/queue"
	"github.com/xavierca1/leadmarket/internal/infra/worker"
	"github.com/xavierca1/leadmarket/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		envOr("RABBITMQ_USER", "guest"),
		envOr("RABBITMQ_PASS", "guest"),
		envOr("RABBITMQ_HOST", "localhost"),
		envOr("RABBITMQ_PORT", "5672"),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositórios
	leadRepo := database.NewLeadRepository(db)
	vendorRepo := database.NewVendorRepository(db)
	validationRepo := database.NewValidationRecordRepository(db)
	approvalRepo := database.NewApprovalRecordRepository(db)

	// 2. Adapters
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	smtpPort, _ := strconv.Atoi(envOr("SMTP_PORT", "587"))
	mailSender := mail.NewEmailSender(
		os.Getenv("SMTP_HOST"), smtpPort,
		os.Getenv("SMTP_USER"), os.Getenv("SMTP_PASS"),
		envOr("SMTP_FROM", "nao-responda@leadmarket.io"),
	)

	// 3. Workers
	notificationWorker := queue.NewWorker(rabbitMQ.Ch, vendorRepo, mailSender)
	go notificationWorker.Start(queue.QueueName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listingWindowDays, _ := strconv.Atoi(envOr("LISTING_WINDOW_DAYS", "30"))
	expirationWorker := worker.NewListingExpirationWorker(db, time.Duration(listingWindowDays)*24*time.Hour)
	go expirationWorker.Start(ctx)

	// 4. Motores e UseCases
	validator := usecase.NewLeadValidator()
	scorer := usecase.NewScoringEngine()

	createLeadUC := usecase.NewCreateLeadUseCase(leadRepo, validationRepo, validator, scorer)
	validateLeadUC := usecase.NewValidateLeadUseCase(leadRepo, validationRepo, validator, scorer)
	findDuplicatesUC := usecase.NewFindDuplicatesUseCase(leadRepo, scorer)
	mergeDuplicatesUC := usecase.NewMergeDuplicatesUseCase(leadRepo)
	approveLeadUC := usecase.NewApproveLeadUseCase(leadRepo, approvalRepo, producer, usecase.DefaultApprovalPolicy())
	rejectLeadUC := usecase.NewRejectLeadUseCase(leadRepo, approvalRepo, producer)
	resubmitLeadUC := usecase.NewResubmitLeadUseCase(leadRepo, approvalRepo, producer)
	bulkUpdateUC := usecase.NewBulkUpdateLeadsUseCase(leadRepo)
	bulkImportUC := usecase.NewBulkImportLeadsUseCase(createLeadUC)
	pipelineSummaryUC := usecase.NewPipelineSummaryUseCase(leadRepo)

	// 5. Handlers
	leadHandler := handlers.NewLeadHandler(
		createLeadUC, validateLeadUC, bulkUpdateUC, bulkImportUC, pipelineSummaryUC, leadRepo, scorer,
	)
	duplicatesHandler := handlers.NewDuplicatesHandler(findDuplicatesUC, mergeDuplicatesUC)
	workflowHandler := handlers.NewWorkflowHandler(approveLeadUC, rejectLeadUC, resubmitLeadUC, leadRepo)
	vendorHandler := handlers.NewVendorHandler(vendorRepo)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
	}))

	r.Post("/vendors", vendorHandler.Register)
	r.Get("/vendors/{id}", vendorHandler.Get)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/leads", func(r chi.Router) {
		r.Post("/", leadHandler.Create)
		r.Post("/import", leadHandler.BulkImport)
		r.Patch("/bulk", leadHandler.BulkUpdate)
		r.Get("/duplicates", duplicatesHandler.Find)
		r.Post("/merge", duplicatesHandler.Merge)
		r.Get("/pending-approval", workflowHandler.PendingApproval)
		r.Get("/pipeline", leadHandler.PipelineSummary)
		r.Get("/{id}", leadHandler.Get)
		r.Get("/{id}/score", leadHandler.Score)
		r.Post("/{id}/validate", leadHandler.Validate)
		r.Post("/{id}/approve", workflowHandler.Approve)
		r.Post("/{id}/reject", workflowHandler.Reject)
		r.Post("/{id}/resubmit", workflowHandler.Resubmit)
	})

	port := ":" + envOr("PORT", "8080")
	log.Printf("🔥 LeadMarket API rodando na porta %s", port)
	http.ListenAndServe(port, r)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
