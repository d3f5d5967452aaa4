package config

import (
	"log"
	"os"
	"strconv"
)

// Config struct holds application configuration
// This is a simple way to make config accessible globally.
// A more advanced approach might use dependency injection.
type Config struct {
	JWTSecret string

	// SelloutThreshold is the day count above which a row is slow-moving.
	SelloutThreshold float64
	// ProjectedQtyThreshold is the number of future days used to project
	// expected unit sales.
	ProjectedQtyThreshold float64
}

// AppConfig holds the application-wide configuration
var AppConfig Config

// Load reads the threshold defaults from the environment. Both remain
// overridable per request via query parameters; these are the fallbacks.
func Load() {
	AppConfig.SelloutThreshold = envFloat("SELLOUT_THRESHOLD", 120)
	AppConfig.ProjectedQtyThreshold = envFloat("PROJECTED_QTY_THRESHOLD", 30)
}

func envFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %v", key, raw, fallback)
		return fallback
	}
	return f
}
