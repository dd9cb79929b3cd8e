package routers

import (
	"svitlo-service/internal/app/services/calendars"

	"github.com/go-chi/chi/v5"
)

func attachCalendarRoutes(router chi.Router, calendarController *calendars.CalendarController) {
	router.Get("/{filename}", calendarController.GetCalendar)
}

func attachCacheRoutes(router chi.Router, calendarController *calendars.CalendarController) {
	router.Get("/cache/status", calendarController.CacheStatus)
	router.Get("/cache/regenerate", calendarController.RegenerateCache)
}
