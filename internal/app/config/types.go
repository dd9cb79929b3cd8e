package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		Redis          *redis.Client
		Logger         *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	InternalConfig struct {
		App   App
		Yasno Yasno
	}

	DriverConfig struct {
		Redis  Redis
		Logger Logger
	}

	App struct {
		Env                  string
		Port                 string
		Timezone             string
		APIKey               string
		MaxRequests          int
		ShutdownTimeout      int
		RegenerationCronSpec string
		CacheTTLInHour       int
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	Yasno struct {
		BaseUrl           string
		RegionID          string
		DsoID             string
		TimeoutInSecond   int
		RequestsPerSecond float64
		RequestBurst      int
	}
)
