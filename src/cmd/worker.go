package cmd

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"QuickTech-Backend/src/database"
	"QuickTech-Backend/src/jobs"
	"QuickTech-Backend/src/services/notification"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Run the asynq notification worker",
	RunE:  runWorker,
}

func runWorker(_ *cobra.Command, _ []string) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if !cfg.NotificationsEnabled() {
		return errors.New("REDIS_URI is required for the worker")
	}

	sender, err := notification.NewSMTPSender(cfg.SMTP)
	if err != nil {
		return err
	}
	if cfg.NotifyEmail == "" {
		log.Warn("NOTIFY_EMAIL not set, notification tasks will be skipped")
	}

	opt, err := database.AsynqRedisOpt(cfg.RedisURI)
	if err != nil {
		return err
	}

	srv := jobs.NewServer(opt, log)
	mux := jobs.NewServeMux(sender, cfg.NotifyEmail, cfg.BaseURL+"/admin", log)

	log.Info("worker started", zap.String("queue", jobs.QueueNotifications))
	// Run blocks until SIGTERM/SIGINT
	return srv.Run(mux)
}
