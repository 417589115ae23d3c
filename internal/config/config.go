// README: Config loader with env defaults for HTTP, geocoding, hazard feeds, and AI backends.
package config

import (
	"os"
	"strconv"
	"time"
)

type HazardConfig struct {
	WeatherBaseURL string
	QuakeBaseURL   string
	AlertsFeedURL  string
	CallTimeout    time.Duration
}

type Config struct {
	HTTP struct {
		Addr string
	}
	Log struct {
		Level  string
		Pretty bool
	}
	Geo struct {
		Provider  string // "nominatim" or "google"
		BaseURL   string
		UserAgent string
		MapsKey   string
	}
	Hazard HazardConfig
	AI     struct {
		GeminiKey   string
		GeminiModel string
		GroqKey     string
		GroqBaseURL string
		GroqModel   string
	}
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("WAYFARER_HTTP_ADDR", ":8080")
	cfg.Log.Level = envOrDefault("WAYFARER_LOG_LEVEL", "info")
	cfg.Log.Pretty = envOrDefaultBool("WAYFARER_LOG_PRETTY", false)
	cfg.Geo.Provider = envOrDefault("WAYFARER_GEOCODER", "nominatim")
	cfg.Geo.BaseURL = envOrDefault("WAYFARER_NOMINATIM_URL", "https://nominatim.openstreetmap.org")
	// Nominatim rejects anonymous clients, so the agent string must identify us.
	cfg.Geo.UserAgent = envOrDefault("WAYFARER_GEO_USER_AGENT", "Wayfarer/1.0 (ops@wayfarer.dev)")
	cfg.Geo.MapsKey = os.Getenv("GOOGLE_MAPS_API_KEY")
	cfg.Hazard.WeatherBaseURL = envOrDefault("WAYFARER_WEATHER_URL", "https://api.open-meteo.com")
	cfg.Hazard.QuakeBaseURL = envOrDefault("WAYFARER_QUAKE_URL", "https://earthquake.usgs.gov")
	cfg.Hazard.AlertsFeedURL = envOrDefault("WAYFARER_ALERTS_FEED_URL", "https://www.gdacs.org/xml/rss.xml")
	cfg.Hazard.CallTimeout = time.Duration(envOrDefaultInt("WAYFARER_HAZARD_TIMEOUT_SEC", 10)) * time.Second
	cfg.AI.GeminiKey = envOrError("GEMINI_API_KEY")
	cfg.AI.GeminiModel = envOrDefault("WAYFARER_GEMINI_MODEL", "gemini-2.0-flash")
	cfg.AI.GroqKey = envOrError("GROQ_API_KEY")
	cfg.AI.GroqBaseURL = envOrDefault("WAYFARER_GROQ_URL", "https://api.groq.com/openai/v1")
	cfg.AI.GroqModel = envOrDefault("WAYFARER_GROQ_MODEL", "deepseek-r1-distill-llama-70b")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrError(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	panic("environment variable " + key + " is required")
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
