package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"brigade/internal/api"
	"brigade/internal/assistant"
	"brigade/internal/assistant/provider"
	"brigade/internal/chatws"
	"brigade/internal/config"
	"brigade/internal/database"
	"brigade/internal/logger"
	"brigade/internal/monitoring"
)

var (
	configFile = flag.String("config", "configs/config.yaml", "Path to configuration file")
	logLevel   = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	dev        = flag.Bool("dev", false, "Development mode (console logging)")
)

func main() {
	flag.Parse()

	log, err := logger.New(*logLevel, *dev)
	if err != nil {
		os.Exit(1)
	}
	defer log.Sync()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatal("failed to load configuration", zap.Error(err))
	}

	if err := database.InitDB(cfg.Database.Driver, cfg.Database.ConnStr()); err != nil {
		log.Fatal("failed to initialize database", zap.Error(err))
	}
	defer database.CloseDB()

	db := database.GetDB()
	if err := database.Migrate(db); err != nil {
		log.Fatal("failed to migrate database", zap.Error(err))
	}
	if err := database.Seed(db, cfg.Database.SeedFile); err != nil {
		log.Fatal("failed to seed database", zap.Error(err))
	}

	llm, err := provider.New(provider.Options{
		Kind:      cfg.LLM.Provider,
		Model:     cfg.LLM.Model,
		Token:     cfg.LLM.Token,
		BaseURL:   cfg.LLM.BaseURL,
		ServerURL: cfg.LLM.ServerURL,
	})
	if err != nil {
		log.Fatal("failed to initialize LLM provider", zap.Error(err))
	}
	llm.SetTemperature(cfg.LLM.Temperature)
	llm.SetMaxTokens(cfg.LLM.MaxTokens)

	chef := assistant.NewService(llm, log.Named("assistant"))

	srv := api.NewServer(db, chef, monitoring.NewMonitor(), cfg.Auth.Secret, cfg.Auth.TokenTTL, log.Named("api"))

	hub := chatws.NewHub(db, chef, log.Named("chatws"))
	srv.Router.GET("/ws", hub.Handle)

	apiServer := &http.Server{
		Addr:    cfg.Server.Address(),
		Handler: srv.Router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info("starting API server", zap.String("addr", apiServer.Addr))
		if err := apiServer.ListenAndServe(); err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	var metricsServer *http.Server
	if cfg.Metrics.Enabled {
		metricsRouter := gin.New()
		metricsRouter.GET("/metrics", gin.WrapH(promhttp.Handler()))
		metricsServer = &http.Server{
			Addr:    cfg.Metrics.Address(),
			Handler: metricsRouter,
		}
		group.Go(func() error {
			log.Info("starting metrics server", zap.String("addr", metricsServer.Addr))
			if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
				return err
			}
			return nil
		})
	}

	group.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down servers")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := apiServer.Shutdown(shutdownCtx); err != nil {
			log.Warn("API server shutdown error", zap.Error(err))
		}
		if metricsServer != nil {
			if err := metricsServer.Shutdown(shutdownCtx); err != nil {
				log.Warn("metrics server shutdown error", zap.Error(err))
			}
		}
		return nil
	})

	if err := group.Wait(); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
