package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"database/sql"

	"github.com/contatoscormecial-rgb/zap/internal/config"
	"github.com/contatoscormecial-rgb/zap/internal/handler"
	"github.com/contatoscormecial-rgb/zap/internal/integrations/rates"
	"github.com/contatoscormecial-rgb/zap/internal/middleware"
	"github.com/contatoscormecial-rgb/zap/internal/notify"
	"github.com/contatoscormecial-rgb/zap/internal/repository"
	"github.com/contatoscormecial-rgb/zap/internal/service"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}

	// Initialize layers
	repo := repository.NewRepository(db)
	ratesClient := rates.NewClient(cfg, logger)
	var rateSource service.RateSource
	if ratesClient.Enabled() {
		rateSource = ratesClient
	}
	svc := service.NewService(repo, logger, cfg, rateSource)
	h := handler.NewHandler(svc, logger)

	// Reminder digest job
	if cfg.DigestEnabled() {
		digest := notify.NewDigest(cfg, repo, logger)
		if err := digest.Start(); err != nil {
			logger.Fatalf("Failed to start reminder digest: %v", err)
		}
		defer digest.Stop()
	} else {
		logger.Info("Reminder digest disabled (no SMTP configuration)")
	}

	// Setup router
	r := mux.NewRouter()
	// Public routes
	r.HandleFunc("/register", h.Register).Methods("POST")
	r.HandleFunc("/login", h.Login).Methods("POST")
	if ratesClient.Enabled() {
		r.HandleFunc("/rates", func(w http.ResponseWriter, r *http.Request) {
			rate, err := ratesClient.GetCurrencyRate()
			if err != nil {
				http.Error(w, fmt.Sprintf("Failed to get reference rate: %v", err), http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]interface{}{
				"currency": ratesClient.Currency(),
				"rate":     rate,
			})
		}).Methods("GET")
	}
	// Protected routes
	authRouter := r.PathPrefix("/").Subrouter()
	authRouter.Use(middleware.AuthMiddleware(cfg))
	h.RegisterRoutes(authRouter)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
