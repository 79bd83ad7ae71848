package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/carbonledger/backend/internal/aggregation"
	"github.com/carbonledger/backend/internal/config"
	v1 "github.com/carbonledger/backend/internal/controllers/v1"
	"github.com/carbonledger/backend/internal/health"
	"github.com/carbonledger/backend/internal/ingest"
	"github.com/carbonledger/backend/internal/mapping"
	"github.com/carbonledger/backend/internal/models"
	"github.com/carbonledger/backend/internal/report"
	"github.com/carbonledger/backend/internal/router"
	"github.com/carbonledger/backend/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if (cfg.LogFormat == "" && gin.IsDebugging()) || cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	if err := cfg.Validate(); err != nil {
		log.Fatal().Msg(err.Error())
	}

	url, err := cfg.BaseURL()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Create data directory
	err = os.MkdirAll(filepath.Dir(cfg.DatabasePath), os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	err = models.Connect(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	if cfg.SeedFallback {
		if err := models.SeedFallback(models.DB, cfg.FallbackFactor()); err != nil {
			log.Fatal().Msg(err.Error())
		}
	}

	s := store.New(models.DB, store.WithClock(time.Now))

	// Without the fallback, transactions of unmapped merchants cannot be categorized
	if err := health.CheckFallback(context.Background(), s); err != nil {
		log.Fatal().Msg(err.Error())
	}

	ingestor := ingest.New(s, s,
		mapping.NewNormalizer(s),
		mapping.NewResolver(s),
		ingest.WithClock(time.Now),
		ingest.WithPageSize(cfg.ImportPageSize),
	)

	engine := aggregation.New(s.Summaries(), s,
		aggregation.WithClock(time.Now),
		aggregation.WithPageSize(cfg.AggregationPageSize),
		aggregation.WithConcurrency(cfg.AggregationPageConcurrency),
	)

	reports := report.NewService(s, s, engine, report.WithConcurrency(cfg.ReportMonthConcurrency))

	r, teardown, err := router.Config(url, router.WithAllowOrigins(cfg.AllowOrigins()))
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer teardown()

	router.AttachRoutes(v1.New(s, ingestor, reports), r.Group("/"), router.WithPprof(cfg.EnablePprof))

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
