package config

import (
	"svitlo-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                  utils.GetEnvString("APP_ENV", "development"),
			Port:                 utils.GetEnvString("APP_PORT", ":8080"),
			Timezone:             utils.GetEnvString("APP_TIMEZONE", "Europe/Kyiv"),
			APIKey:               utils.GetEnvString("APP_API_KEY", ""),
			MaxRequests:          utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:      utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RegenerationCronSpec: utils.GetEnvString("APP_REGENERATION_CRON_SPEC", "*/30 * * * *"),
			CacheTTLInHour:       utils.GetEnvInt("APP_CACHE_TTL_IN_HOUR", 24),
		},
		Yasno: Yasno{
			BaseUrl:           utils.GetEnvString("YASNO_BASE_URL", "https://app.yasno.ua/api/blackout-service/public/shutdowns"),
			RegionID:          utils.GetEnvString("YASNO_REGION_ID", "25"),
			DsoID:             utils.GetEnvString("YASNO_DSO_ID", "902"),
			TimeoutInSecond:   utils.GetEnvInt("YASNO_TIMEOUT_IN_SECOND", 15),
			RequestsPerSecond: utils.GetEnvFloat("YASNO_REQUESTS_PER_SECOND", 1),
			RequestBurst:      utils.GetEnvInt("YASNO_REQUEST_BURST", 3),
		},
	}
}
