package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/scripturalzealous/zealous-api/internal/auth"
	"github.com/scripturalzealous/zealous-api/internal/dailyverse"
	"github.com/scripturalzealous/zealous-api/internal/prayer"
	"github.com/scripturalzealous/zealous-api/internal/verse"
	"github.com/scripturalzealous/zealous-api/pkg/response"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Get home route
	r.Get("/", s.ServerIsWorking)

	r.Route("/api/v1", func(r chi.Router) {
		s.loadAuthRoutes(r)
		s.loadVerseRoutes(r)
		s.loadDailyVerseRoutes(r)
		s.loadPrayerRoutes(r)
	})
	r.Get("/api/v1", s.ServerIsWorking)

	return r
}

func (s *Server) ServerIsWorking(w http.ResponseWriter, r *http.Request) {
	resp := make(map[string]string)
	resp["message"] = "Welcome to the Zealous api"
	response.Success(w, resp, "Success")
}

func (s *Server) loadAuthRoutes(router chi.Router) {
	authRepo := auth.NewRepository(s.db)
	authService := auth.NewAuthService(authRepo, s.mail)
	authHandler := auth.NewHandler(authService)

	router.Post("/auth/register", authHandler.RegisterHandler)
	router.Post("/auth/login", authHandler.LoginHandler)

	router.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Get("/auth/me", authHandler.GetUserDetailsHandler)
	})
}

func (s *Server) loadVerseRoutes(router chi.Router) {
	verseHandler := verse.NewVerseHandler()

	router.Post("/verses/match", verseHandler.MatchHandler)
	router.Get("/verses/mood/{moodID}", verseHandler.VersesForMoodHandler)
	router.Get("/moods", verseHandler.MoodsHandler)
}

func (s *Server) loadDailyVerseRoutes(router chi.Router) {
	dvHandler := dailyverse.NewDailyVerseHandler(s.dvService)

	router.Group(func(r chi.Router) {
		r.Use(auth.OptionalAuthMiddleware)
		r.Post("/daily-verse", dvHandler.GetDailyVerseHandler)
	})

	router.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Get("/daily-verse/feelings", dvHandler.ListFeelingsHandler)
		r.Post("/daily-verse/feelings", dvHandler.AddFeelingHandler)
	})
}

func (s *Server) loadPrayerRoutes(router chi.Router) {
	authRepo := auth.NewRepository(s.db)
	prayerRepo := prayer.NewPrayerRepo(s.db)
	prayerService := prayer.NewPrayerService(prayerRepo, s.mail, s.cfg.PrayerNotifyEmail)
	prayerHandler := prayer.NewPrayerHandler(prayerService)

	router.Post("/prayer-requests", prayerHandler.SubmitHandler)

	router.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Get("/prayer-requests/mine", prayerHandler.ListMineHandler)
	})

	router.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Use(auth.AdminMiddleware(authRepo))
		r.Get("/admin/prayer-requests", prayerHandler.ListAllHandler)
		r.Patch("/admin/prayer-requests/{id}/status", prayerHandler.UpdateStatusHandler)
		r.Patch("/admin/prayer-requests/{id}/notes", prayerHandler.UpdateNotesHandler)
		r.Delete("/admin/prayer-requests/{id}", prayerHandler.DeleteHandler)
	})
}
