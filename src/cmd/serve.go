package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "QuickTech-Backend/docs"
	"QuickTech-Backend/src/config"
	"QuickTech-Backend/src/database"
	"QuickTech-Backend/src/jobs"
	"QuickTech-Backend/src/metrics"
	"QuickTech-Backend/src/routes"
	"QuickTech-Backend/src/server"
	"QuickTech-Backend/src/services/auth"
	"QuickTech-Backend/src/services/content"
	"QuickTech-Backend/src/services/submission"
	"QuickTech-Backend/src/utils"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	subOpts := []submission.Option{submission.WithMetrics(metrics.New(reg))}
	var limiter auth.AttemptLimiter = auth.NewMemoryLimiter(cfg.LoginMaxAttempts, cfg.LoginCooldown)

	// Redis เป็น optional: ไม่มีก็ใช้ limiter ในหน่วยความจำและไม่ส่งแจ้งเตือน
	if cfg.NotificationsEnabled() {
		rdb, err := database.NewRedis(ctx, cfg.RedisURI)
		if err != nil {
			log.Warn("Redis not available, notifications disabled", zap.Error(err))
		} else {
			defer rdb.Close()
			limiter = auth.NewRedisLimiter(rdb, cfg.LoginMaxAttempts, cfg.LoginCooldown)

			client, err := database.NewAsynqClient(cfg.RedisURI)
			if err != nil {
				return err
			}
			defer func(c *asynq.Client) { _ = c.Close() }(client)
			subOpts = append(subOpts, submission.WithNotifier(jobs.NewSubmissionNotifier(client)))
			log.Info("Asynq client initialized")
		}
	}

	subs := submission.NewService(store, log, subOpts...)

	authSvc, err := auth.NewService(
		auth.Config{AdminEmail: cfg.AdminEmail, AdminPassword: cfg.AdminPassword},
		utils.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL),
		limiter,
		subs,
		log,
	)
	if err != nil {
		return err
	}

	contentSvc, err := content.NewService()
	if err != nil {
		return err
	}

	app := server.NewApp(
		server.Options{AppName: cfg.AppName, AllowedOrigins: cfg.AllowedOrigins, Production: cfg.IsProduction()},
		routes.Deps{
			Submissions:       subs,
			Auth:              authSvc,
			Content:           contentSvc,
			Gatherer:          reg,
			Log:               log,
			AdminAuthRequired: cfg.AdminAuthRequired,
		},
	)

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server is running", zap.String("addr", cfg.Addr()), zap.String("store", cfg.StoreDriver))
		errCh <- app.Listen(cfg.Addr())
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	return app.ShutdownWithTimeout(10 * time.Second)
}

// openStore picks the submission store from STORE_DRIVER.
func openStore(ctx context.Context, cfg config.Config, log *zap.Logger) (submission.Store, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreMongo:
		db, disconnect, err := database.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDB, log)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() { _ = disconnect(context.Background()) }
		return submission.NewMongoStore(db), closeFn, nil

	case config.StoreSQLite:
		db, err := database.OpenSQLite(cfg.SQLitePath, log)
		if err != nil {
			return nil, nil, err
		}
		store, err := submission.NewGormStore(db)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return store, closeFn, nil

	case config.StoreMemory:
		log.Warn("using in-memory submission store, data is lost on restart")
		return submission.NewMemoryStore(), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
