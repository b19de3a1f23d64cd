package main

import (
	"context"
	"flag"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/leadflow/leadflow/internal/api"
	"github.com/leadflow/leadflow/internal/auth"
	"github.com/leadflow/leadflow/internal/config"
	"github.com/leadflow/leadflow/internal/seed"
	"github.com/leadflow/leadflow/internal/store"
	"github.com/leadflow/leadflow/web"
)

func main() {
	configPath := flag.String("config", "leadflow.yaml", "path to the configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}

	logger, err := newLogger(cfg.DevLogging)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	st, err := store.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		logger.Fatal("opening store", zap.Error(err))
	}
	defer st.Close()

	ctx := context.Background()
	if err := st.SeedCatalog(ctx, seed.Categories(), seed.Companies(), seed.Leads()); err != nil {
		logger.Fatal("seeding catalog", zap.Error(err))
	}

	authSvc := auth.NewService(st,
		time.Duration(cfg.SessionTTLHours)*time.Hour,
		cfg.BcryptCost,
	)

	server := api.New(st, authSvc, logger, cfg.DailyLeadLimit, web.FS)

	srv := &http.Server{
		Handler:      server,
		Addr:         cfg.HTTPAddr,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	logger.Info("leadflow listening",
		zap.String("addr", cfg.HTTPAddr),
		zap.String("db", cfg.DBPath),
		zap.Int("daily_lead_limit", cfg.DailyLeadLimit),
	)
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal("http server", zap.Error(err))
	}
}

func newLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
