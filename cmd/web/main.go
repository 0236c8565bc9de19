package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	plan "github.com/fin-tools/plan-advisor/pkg/handlers/plan"
	"github.com/fin-tools/plan-advisor/pkg/render"
	"github.com/fin-tools/plan-advisor/pkg/server"
	"github.com/fin-tools/plan-advisor/pkg/services/advisor"
	"github.com/fin-tools/plan-advisor/pkg/services/config"
	"github.com/fin-tools/plan-advisor/pkg/services/planner"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the investment plan advisor gateway",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "plan-advisor.yaml",
		"Path to the gateway config file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("No .env file loaded: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var clientOpts []advisor.ClientOption
	if cfg.Advisor.TimeoutSeconds > 0 {
		clientOpts = append(clientOpts, advisor.WithHTTPClient(&http.Client{
			Timeout: time.Duration(cfg.Advisor.TimeoutSeconds) * time.Second,
		}))
	}
	if cfg.Cache.Enabled {
		var repo advisor.CacheRepository
		if cfg.Cache.RedisAddr != "" {
			repo = advisor.NewRedisCache(cfg.Cache.RedisAddr)
			logger.Info().Str("addr", cfg.Cache.RedisAddr).Msg("advice cache backed by redis")
		} else {
			repo = advisor.NewMemoryCache()
			logger.Info().Msg("advice cache held in memory")
		}
		ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second
		clientOpts = append(clientOpts, advisor.WithCache(repo, ttl))
	}

	advisorClient := advisor.NewClient(cfg.Advisor.Endpoint, clientOpts...)
	renderer := render.NewRenderer(cfg.Currency)
	controller := planner.NewController(advisorClient, renderer)

	if addr := os.Getenv("SERVER_ADDR"); addr != "" {
		cfg.Server.Addr = addr
	}

	logger.Info().Str("endpoint", cfg.Advisor.Endpoint).Msg("calculation service configured")

	api := server.NewWebAPI(logger, server.Config{
		Addr:            cfg.Server.Addr,
		ShutdownTimeout: time.Duration(cfg.Server.ShutdownSeconds) * time.Second,
		Dependencies: server.Dependencies{
			Plan: plan.NewHandler(controller),
		},
	})

	return api.Start()
}
