package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/mkondo/gh-census/pkg/census"
	"github.com/mkondo/gh-census/pkg/config"
	"github.com/mkondo/gh-census/pkg/github"
	"github.com/mkondo/gh-census/pkg/logging"
	"github.com/mkondo/gh-census/pkg/metrics"
)

var runFlags struct {
	location     string
	minFollowers int
	maxPages     int
	maxRepos     int
	pageDelay    time.Duration
	outputDir    string
	redisAddr    string
	metricsAddr  string
	logLevel     string
	logJSON      bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a census and write the CSV tables",
	RunE:  runCensus,
}

func init() {
	runCmd.Flags().StringVar(&runFlags.location, "location", "Tokyo", "exact-match location filter")
	runCmd.Flags().IntVar(&runFlags.minFollowers, "min-followers", 200, "exclusive follower floor")
	runCmd.Flags().IntVar(&runFlags.maxPages, "max-pages", 10, "search page cap")
	runCmd.Flags().IntVar(&runFlags.maxRepos, "max-repos", 500, "repository cap per user")
	runCmd.Flags().DurationVar(&runFlags.pageDelay, "page-delay", time.Second, "fixed delay between pages")
	runCmd.Flags().StringVarP(&runFlags.outputDir, "output", "o", ".", "output directory for the CSV tables")
	runCmd.Flags().StringVar(&runFlags.redisAddr, "redis", "", "Redis address for the ETag response cache (empty: disabled)")
	runCmd.Flags().StringVar(&runFlags.metricsAddr, "metrics", "", "Prometheus listen address (empty: disabled)")
	runCmd.Flags().StringVar(&runFlags.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	runCmd.Flags().BoolVar(&runFlags.logJSON, "log-json", false, "emit JSON logs instead of console output")

	rootCmd.AddCommand(runCmd)
}

func runCensus(cmd *cobra.Command, args []string) error {
	logger := logging.Setup(logging.Config{
		Level:  logging.LogLevel(runFlags.logLevel),
		Pretty: !runFlags.logJSON,
		Output: os.Stderr,
	})

	cfg := config.Default()
	cfg.Location = runFlags.location
	cfg.MinFollowers = runFlags.minFollowers
	cfg.MaxUserPages = runFlags.maxPages
	cfg.MaxReposPerUser = runFlags.maxRepos
	cfg.PageDelay = runFlags.pageDelay
	cfg.OutputDir = runFlags.outputDir
	cfg.RedisAddr = runFlags.redisAddr
	cfg.MetricsAddr = runFlags.metricsAddr

	// Token check happens before any network activity; this is the only
	// fatal error path.
	if err := cfg.Validate(); err != nil {
		if errors.Is(err, config.ErrMissingToken) {
			fmt.Fprintln(os.Stderr, "Error: GitHub personal access token not found.")
			fmt.Fprintf(os.Stderr, "Set the %s environment variable and try again.\n", config.TokenEnvVar)
			os.Exit(1)
		}
		return err
	}

	if cfg.MetricsAddr != "" {
		metrics.Serve(cfg.MetricsAddr)
		logger.Info().Str("addr", cfg.MetricsAddr).Msg("Metrics listener started")
	}

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := redisClient.Ping(cmd.Context()).Err(); err != nil {
			logger.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("Redis unreachable - response cache disabled")
			redisClient = nil
		}
	}

	client, err := github.New(github.Config{
		BaseURL: cfg.BaseURL,
		Token:   cfg.Token,
		Redis:   redisClient,
	})
	if err != nil {
		return fmt.Errorf("create GitHub client: %w", err)
	}

	pipeline := census.New(cfg, client)
	sum, err := pipeline.Run(cmd.Context())
	if err != nil {
		return err
	}

	logger.Info().
		Int("users_found", sum.UsersFound).
		Int("users_kept", sum.UsersKept).
		Int("users_skipped", sum.UsersSkipped).
		Int("repos", sum.Repos).
		Msg("Census complete")

	return nil
}
