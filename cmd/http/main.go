package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"svitlo-service/internal/app/config"
	"svitlo-service/internal/app/delivery/http/middlewares"
	"svitlo-service/internal/app/delivery/http/routers"
	"svitlo-service/internal/app/drivers/database"
	"svitlo-service/internal/app/drivers/logger"
	"svitlo-service/internal/app/services/calendars"
	"svitlo-service/internal/app/services/pages"
	"svitlo-service/internal/app/services/shared/locker"
	"svitlo-service/internal/app/services/shared/redis"
	"svitlo-service/internal/app/services/yasno"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	worker := bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	worker.Start(context.Background())

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	log.Info("Server started", zap.String("port", internalConfig.App.Port))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that were already received by the server to be processed..")

	worker.Stop()

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) *calendars.Worker {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.InternalConfig, bootstrap.Logger)

	// Yasno
	yasnoClient := yasno.NewYasnoClient(bootstrap.InternalConfig)

	// Calendar
	calendarUsecase := calendars.NewCalendarUsecase(redisRepository, yasnoClient, bootstrap.InternalConfig, bootstrap.Logger)
	calendarController := calendars.NewCalendarController(calendarUsecase, bootstrap.Logger)
	calendarWorker := calendars.NewWorker(bootstrap.Logger, bootstrap.InternalConfig, lockerService, calendarUsecase)

	// Pages
	pageController := pages.NewPageController(calendarUsecase, bootstrap.Logger)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, calendarController, pageController)

	return calendarWorker
}
