package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/scripturalzealous/zealous-api/internal/database"
	"github.com/scripturalzealous/zealous-api/internal/server"
	"github.com/scripturalzealous/zealous-api/pkg/config"
)

func gracefulShutdown(apiServer *http.Server, srv *server.Server, done chan bool) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	log.Println("shutting down gracefully, press Ctrl+C again to force")

	srv.StopBackgroundJobs()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown with error: %v", err)
	}

	log.Println("Server exiting")

	done <- true
}

func main() {
	cfg := config.LoadConfig()

	db := database.New(cfg)
	defer db.Close()

	srv := server.NewServer(db, cfg)
	srv.StartBackgroundJobs()

	apiServer := srv.HTTPServer()

	done := make(chan bool, 1)
	go gracefulShutdown(apiServer, srv, done)

	log.Printf("Zealous api listening on :%s", cfg.Port)
	if err := apiServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("http server error: %v", err)
	}

	<-done
	log.Println("Graceful shutdown complete.")
}
