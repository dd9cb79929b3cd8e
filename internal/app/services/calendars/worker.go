package calendars

import (
	"context"
	"time"

	"svitlo-service/internal/app/config"
	"svitlo-service/internal/app/contracts"
	"svitlo-service/internal/pkg/constvars"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Worker periodically regenerates every known group's cached calendar.
type Worker struct {
	log             *zap.Logger
	cfg             *config.InternalConfig
	locker          contracts.LockerService
	calendarUsecase contracts.CalendarUsecase
	cron            *cron.Cron
	runCtx          context.Context
	cancel          context.CancelFunc
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, lockerSvc contracts.LockerService, calendarUsecase contracts.CalendarUsecase) *Worker {
	return &Worker{log: log, cfg: cfg, locker: lockerSvc, calendarUsecase: calendarUsecase}
}

// Start schedules the periodic regeneration using the configured cron spec.
func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.App.RegenerationCronSpec
	_, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("calendars.worker: failed to schedule with provided cron spec; falling back to @every 30m", zap.Error(err))
		c = cron.New()
		_, _ = c.AddFunc("@every 30m", func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop halts the cron and waits for an in-flight batch to finish.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	// Leader lock keeps multiple replicas from regenerating the same batch.
	ttl := 5 * time.Minute
	acquired, token, err := w.locker.TryLock(ctx, constvars.RedisKeyRegenLeader, ttl)
	if err != nil {
		w.log.Warn("calendars.worker: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("calendars.worker: leader lock not acquired; another instance is regenerating")
		return
	}
	defer w.locker.Unlock(ctx, constvars.RedisKeyRegenLeader, token)

	result := w.calendarUsecase.RegenerateAll(ctx)
	w.log.Info("calendars.worker: scheduled regeneration completed",
		zap.Int("success", result.Success),
		zap.Int("failed", result.Failed),
		zap.Strings("errors", result.Errors),
	)
}
