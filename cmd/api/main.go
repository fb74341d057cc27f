package main

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rloureiro/cashbook/internal/api"
	"github.com/rloureiro/cashbook/internal/config"
	"github.com/rloureiro/cashbook/internal/store"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	if cfg.Env == "production" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	ledgerStore, err := store.New(cfg.DBSource)
	if err != nil {
		logger.Fatalf("Unable to connect to database: %v", err)
	}
	defer ledgerStore.Close()

	handler := api.NewHandler(ledgerStore, logger)

	// Router
	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.Handler())
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// /transactions/summary must be registered ahead of /transactions/{id}.
	r.HandleFunc("/transactions", handler.ListTransactions).Methods("GET")
	r.HandleFunc("/transactions/summary", handler.GetSummary).Methods("GET")
	r.HandleFunc("/transactions/{id}", handler.GetTransaction).Methods("GET")
	r.HandleFunc("/transactions", handler.CreateTransaction).Methods("POST")

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}).Handler(r)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      corsHandler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on :%s", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
