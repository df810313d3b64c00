package config

import (
	"os"
	"sync"

	"github.com/spf13/cast"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName           string
	Port              string
	Env               string
	Debug             bool
	MediaDir          string
	JWTSecret         string
	TokenTTLHours     int
	LowStockThreshold float64
	// Add more fields as needed
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() {
	once.Do(func() {
		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			secret = "super-secret-key-change-in-production"
		}
		mediaDir := os.Getenv("MEDIA_DIR")
		if mediaDir == "" {
			mediaDir = "media"
		}
		AppConfig = &Config{
			AppName:           os.Getenv("APP_NAME"),
			Port:              os.Getenv("PORT"),
			Env:               os.Getenv("APP_ENV"),
			Debug:             os.Getenv("DEBUG") == "true",
			MediaDir:          mediaDir,
			JWTSecret:         secret,
			TokenTTLHours:     castEnvInt("TOKEN_TTL_HOURS", 8),
			LowStockThreshold: castEnvFloat("LOW_STOCK_THRESHOLD", 10),
		}
	})
}

func castEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		return cast.ToInt(v)
	}
	return def
}

func castEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		return cast.ToFloat64(v)
	}
	return def
}
