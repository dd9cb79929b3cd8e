package calendars

import (
	"context"
	"net/http"
	"strings"
	"time"

	"svitlo-service/internal/app/contracts"
	"svitlo-service/internal/pkg/constvars"
	"svitlo-service/internal/pkg/exceptions"
	"svitlo-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CalendarController struct {
	CalendarUsecase contracts.CalendarUsecase
	Log             *zap.Logger
}

func NewCalendarController(calendarUsecase contracts.CalendarUsecase, logger *zap.Logger) *CalendarController {
	return &CalendarController{
		CalendarUsecase: calendarUsecase,
		Log:             logger,
	}
}

// GetCalendar serves /calendar/{filename}, where filename is
// "<major>.<minor>.ics".
func (ctrl *CalendarController) GetCalendar(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")

	if !strings.HasSuffix(filename, constvars.CalendarFileExtension) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidCalendarFilename(nil))
		return
	}

	group := strings.TrimSuffix(filename, constvars.CalendarFileExtension)
	if !utils.IsValidOutageGroup(group) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidCalendarFilename(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	content, err := ctrl.CalendarUsecase.GetOrGenerate(ctx, group)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextCalendarCharsetUTF8)
	w.Header().Set(constvars.HeaderContentDisposition, constvars.CalendarAttachmentName)
	w.Header().Set(constvars.HeaderAccessControlAllowOrigin, "*")
	w.WriteHeader(constvars.StatusOK)
	w.Write([]byte(content))
}

// CacheStatus serves GET /api/cache/status.
func (ctrl *CalendarController) CacheStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	status, err := ctrl.CalendarUsecase.CacheStatus(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, "Cache status", status)
}

// RegenerateCache serves GET /api/cache/regenerate. The batch never fails as
// a whole; per-group outcomes come back in the payload.
func (ctrl *CalendarController) RegenerateCache(w http.ResponseWriter, r *http.Request) {
	result := ctrl.CalendarUsecase.RegenerateAll(r.Context())
	utils.BuildSuccessResponse(w, constvars.StatusOK, "Cache regeneration completed", result)
}
