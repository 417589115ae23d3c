// README: Entry point; loads config, wires providers and services, starts the HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"wayfarer/internal/ai"
	"wayfarer/internal/config"
	"wayfarer/internal/geo"
	httptransport "wayfarer/internal/http"
	"wayfarer/internal/metrics"
	"wayfarer/internal/modules/guide"
	"wayfarer/internal/modules/hazard"
	"wayfarer/internal/modules/hotel"
	"wayfarer/internal/modules/itinerary"
	"wayfarer/internal/modules/planner"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := newLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gemini, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey, cfg.AI.GeminiModel)
	if err != nil {
		logger.Fatal().Err(err).Msg("gemini init")
	}
	defer gemini.Close()

	groq := ai.NewGroqProvider(cfg.AI.GroqKey, cfg.AI.GroqBaseURL, cfg.AI.GroqModel)

	geocoder, err := buildGeocoder(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("geocoder init")
	}

	m := metrics.New()

	hazardSvc := hazard.NewService(hazard.Deps{
		Geocoder: geocoder,
		Config:   cfg.Hazard,
		Logger:   logger,
		Metrics:  m,
	})

	guideSvc := guide.NewService(ai.WithMetrics(gemini, "guide", m))
	hotelSvc := hotel.NewService(ai.WithMetrics(gemini, "hotel", m))
	itinerarySvc := itinerary.NewService(ai.WithMetrics(groq, "itinerary", m))
	plannerSvc := planner.NewService(guideSvc, hotelSvc, itinerarySvc, nil)

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Planner: plannerSvc,
		Hazard:  hazardSvc,
		Logger:  logger,
		Metrics: m,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info().Str("addr", cfg.HTTP.Addr).Msg("wayfarer api listening")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal().Err(err).Msg("server")
	}
}

// buildGeocoder selects the provider from config: the Google geocoder when
// requested (requires GOOGLE_MAPS_API_KEY), Nominatim otherwise.
func buildGeocoder(cfg config.Config) (geo.Geocoder, error) {
	if cfg.Geo.Provider == "google" {
		return geo.NewGoogleGeocoder(cfg.Geo.MapsKey)
	}
	return geo.NewNominatimGeocoder(cfg.Geo.BaseURL, cfg.Geo.UserAgent, cfg.Hazard.CallTimeout), nil
}

func newLogger(cfg config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.Log.Pretty {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	} else {
		logger = zerolog.New(os.Stdout)
	}
	return logger.Level(level).With().Timestamp().Logger()
}
