package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/construction-sites/crm/internal/config"
	"github.com/construction-sites/crm/internal/infra/database"
	"github.com/construction-sites/crm/internal/infra/enquirylog"
	"github.com/construction-sites/crm/internal/infra/http/handlers"
	"github.com/construction-sites/crm/internal/infra/http/middleware"
	"github.com/construction-sites/crm/internal/infra/mail"
	"github.com/construction-sites/crm/internal/infra/queue"
	"github.com/construction-sites/crm/internal/infra/storage"
	"github.com/construction-sites/crm/internal/infra/worker"
	"github.com/construction-sites/crm/internal/usecase"
)

func main() {
	godotenv.Load()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := database.NewDBConnection(cfg.DB.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(cfg.AMQPURL())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to RabbitMQ")
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	clients, err := config.LoadClients(cfg.ClientsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load site directory")
	}

	// Repositories
	leadRepo := database.NewLeadRepository(db)
	agreementRepo := database.NewAgreementRepository(db)
	operatorRepo := database.NewOperatorRepository(db)

	// Adapters
	producer := queue.NewProducer(rabbitMQ.Ch)
	mailSender := mail.NewEmailSender(
		cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Pass, cfg.SMTP.From,
		cfg.CRM.NotifyEmail, cfg.App.BaseURL,
	)
	enquiryLog := enquirylog.NewRedisLogger(redisClient)
	mockupChecker := storage.NewFSMockupChecker(cfg.Mockups.Dir)

	// Background workers
	notifyWorker := queue.NewWorker(rabbitMQ.Ch, mailSender, agreementRepo, producer)
	go notifyWorker.Start(queue.QueueName)

	callbackWorker := worker.NewCallbackDueWorker(leadRepo)
	go callbackWorker.Start(context.Background())

	// Use cases
	authService := usecase.NewAuthService(operatorRepo, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, cfg.App.Name)
	listUC := usecase.NewListLeadsUseCase(leadRepo, operatorRepo)
	createUC := usecase.NewCreateLeadUseCase(leadRepo)
	updateUC := usecase.NewUpdateLeadUseCase(leadRepo)
	deleteUC := usecase.NewDeleteLeadUseCase(leadRepo)
	upsertAgreementUC := usecase.NewUpsertAgreementUseCase(agreementRepo)
	sendAgreementUC := usecase.NewSendAgreementUseCase(agreementRepo, mailSender, cfg.App.BaseURL)
	signAgreementUC := usecase.NewSignAgreementUseCase(agreementRepo, producer)
	findMockupsUC := usecase.NewFindMockupsUseCase(mockupChecker, cfg.App.BaseURL)
	relayUC := usecase.NewRelayEnquiryUseCase(clients, mailSender, enquiryLog)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	crmHandler := handlers.NewCRMHandler(listUC, createUC, updateUC, deleteUC)
	agreementHandler := handlers.NewAgreementHandler(agreementRepo, upsertAgreementUC, sendAgreementUC, signAgreementUC)
	mockupHandler := handlers.NewMockupHandler(findMockupsUC)
	enquiryHandler := handlers.NewEnquiryHandler(relayUC)
	webhookHandler := handlers.NewWebhookHandler(createUC, cfg.CRM.DefaultOwner)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn, redisClient)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	// Public
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())
	r.Post("/api/auth/login", authHandler.Login)
	r.Post("/api/enquiry", enquiryHandler.Handle)
	r.Post("/api/webhook", webhookHandler.Handle)
	r.Get("/api/agreement", agreementHandler.Get)
	r.Post("/api/agreement/sign", agreementHandler.Sign)

	// Authenticated
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(authService))
		r.Get("/api/crm", crmHandler.List)
		r.Post("/api/crm", crmHandler.Create)
		r.Put("/api/crm", crmHandler.Update)
		r.Delete("/api/crm", crmHandler.Delete)
		r.Get("/api/check-mockups", mockupHandler.Check)
		r.Post("/api/agreement", agreementHandler.Upsert)
		r.Post("/api/agreement/send", agreementHandler.Send)
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Info().Str("addr", addr).Msg("server listening")
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
