package routers

import (
	"time"

	"svitlo-service/internal/app/config"
	"svitlo-service/internal/app/delivery/http/middlewares"
	"svitlo-service/internal/app/services/calendars"
	"svitlo-service/internal/app/services/pages"
	"svitlo-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	calendarController *calendars.CalendarController,
	pageController *pages.PageController,
) {
	corsOptions := cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", constvars.HeaderXAPIKey},
		MaxAge:         300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging)

	router.Get("/", pageController.Home)
	router.Get("/robots.txt", pageController.Robots)

	router.Route("/calendar", func(r chi.Router) {
		attachCalendarRoutes(r, calendarController)
	})

	router.Route("/api", func(r chi.Router) {
		r.Use(middlewares.RequireAPIKey)
		attachCacheRoutes(r, calendarController)
	})

	router.NotFound(pageController.RedirectHome)
}
