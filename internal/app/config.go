package app

import (
	"github.com/oakline/rental-backend/internal/pkg/logger"
	"github.com/oakline/rental-backend/internal/utils"
)

type Config struct {
	Port        int
	AllowOrigin string
}

func LoadConfig(log *logger.Logger) Config {
	return Config{
		Port:        utils.GetEnvAsInt("PORT", 3000, log),
		AllowOrigin: utils.GetEnv("ORIGIN", "http://127.0.0.1", log),
	}
}
