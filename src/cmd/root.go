package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"QuickTech-Backend/src/config"
	"QuickTech-Backend/src/logger"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "quicktech",
	Short: "QuickTech marketing-site backend",
	Long: `QuickTech backend: form intake, admin review and notifications.

Available commands:
  serve     - Run the HTTP API
  worker    - Run the asynq notification worker
  dashboard - Show submissions in the terminal
  quote     - Fill in the quick-quote wizard from the terminal`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(workerCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(quoteCmd)
}

// bootstrap loads config and builds the process logger.
func bootstrap() (config.Config, *zap.Logger, error) {
	cfg := config.Load()
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return cfg, nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, log.With(zap.String("app", cfg.AppName)), nil
}
