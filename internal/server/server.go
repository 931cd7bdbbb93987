package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/scripturalzealous/zealous-api/internal/dailyverse"
	"github.com/scripturalzealous/zealous-api/internal/database"
	"github.com/scripturalzealous/zealous-api/internal/mail"
	"github.com/scripturalzealous/zealous-api/pkg/config"
)

type Server struct {
	port      string
	db        database.Service
	handler   http.Handler
	cfg       *config.Config
	mail      *mail.Mailer
	dvService dailyverse.DailyVerseService
	cancel    context.CancelFunc
}

// NewServer constructs the app server with all dependencies injected.
func NewServer(db database.Service, cfg *config.Config) *Server {
	stats := db.Health()
	mailer := mail.NewMail(
		cfg.SmtpFrom,
		"Zealous",
		cfg.SmtpPassword,
		cfg.SmtpHost,
		cfg.SmtpPort,
	)

	fmt.Println("Database Health:", stats)

	if stats["status"] != "up" {
		log.Fatal("Database connection failed")
		return &Server{}
	}
	log.Println("Database connection successful")

	gateway := dailyverse.NewGateway(cfg.AIGatewayURL, cfg.AIGatewayKey, cfg.AIGatewayModel)
	dvStore := dailyverse.NewPostgresStore(db)
	feelings := dailyverse.NewFeelingsRepo(db)
	dvService := dailyverse.NewDailyVerseService(dvStore, feelings, gateway)

	s := &Server{
		port:      cfg.Port,
		db:        db,
		cfg:       cfg,
		mail:      mailer,
		dvService: dvService,
	}

	s.handler = s.RegisterRoutes()
	return s
}

// HTTPServer returns the actual *http.Server instance
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%s", s.port),
		Handler:      s.handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// StartBackgroundJobs runs scheduled jobs
func (s *Server) StartBackgroundJobs() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	// Keep the shared daily verse warm in the background
	go s.dvService.StartScheduler(ctx)
	log.Println("DailyVerse scheduler started")
}

func (s *Server) StopBackgroundJobs() {
	if s.cancel != nil {
		s.cancel()
		log.Println("Background jobs stopped gracefully")
	}
}
