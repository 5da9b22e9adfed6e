package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"example.com/fitlife/internal/api"
	"example.com/fitlife/internal/auth"
	"example.com/fitlife/internal/config"
	"example.com/fitlife/internal/domain"
	"example.com/fitlife/internal/events"
	"example.com/fitlife/internal/session"
	"example.com/fitlife/internal/store"
	httptransport "example.com/fitlife/internal/transport/http"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storage := store.NewMemory()
	if cfg.SeedDemoData {
		if err := storage.SeedDemoData(ctx); err != nil {
			log.Fatalf("failed to seed demo data: %v", err)
		}
	}

	var publisher events.Publisher = events.NoopPublisher{}
	if len(cfg.EventBrokers) > 0 {
		kafkaPublisher := events.NewKafkaPublisher(cfg.EventBrokers, cfg.EventTopic)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	}

	service := domain.NewService(storage, publisher)

	sessions := session.NewStore(cfg.SessionTTL)
	go sessions.PruneLoop(ctx, cfg.SessionPruneInterval)

	authCfg := auth.Config{Secret: cfg.SessionSecret, Issuer: cfg.SessionIssuer}

	handler := api.NewHandler(service, sessions, authCfg, cfg.CookieSecure)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	mux.Handle("/metrics", promhttp.Handler())

	// Simple CORS middleware for the local SPA dev server
	cors := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", cfg.CORSOrigin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}

	// Basic request logger
	logger := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.Printf("%s %s", r.Method, r.URL.Path)
			next.ServeHTTP(w, r)
		})
	}

	sessionMiddleware := auth.NewMiddleware(authCfg, sessions, storage)

	server := httptransport.NewServer(httptransport.ServerConfig{
		Address:      cfg.HTTPAddress,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}, sessionMiddleware.Wrap(logger(cors(mux))))

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("fitlife api listening on %s", cfg.HTTPAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-shutdownCh
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
