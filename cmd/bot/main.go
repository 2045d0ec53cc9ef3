package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/diegoclair/shift-notify-bot/internal/config"
	"github.com/diegoclair/shift-notify-bot/internal/database"
	"github.com/diegoclair/shift-notify-bot/internal/domain"
	"github.com/diegoclair/shift-notify-bot/internal/domain/service"
	"github.com/diegoclair/shift-notify-bot/internal/handlers"
	"github.com/diegoclair/shift-notify-bot/internal/logger"
	"github.com/diegoclair/shift-notify-bot/internal/notifier"
	"github.com/diegoclair/shift-notify-bot/migrator/sqlite"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

func main() {
	cfg, dotenv, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if !dotenv {
		zl.Info(".env file not found, using environment only")
	}

	if err := run(cfg, zl); err != nil {
		zl.Fatal("bot stopped with error", zap.Error(err))
	}
}

func run(cfg *config.Config, zl *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	policy, err := domain.ParseDeliveryPolicy(cfg.DeliveryPolicy)
	if err != nil {
		return err
	}
	if _, err := domain.LoadTimezone(cfg.DefaultTZ, ""); err != nil {
		return err
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	zl.Info("running migrations", zap.String("path", cfg.DatabasePath))
	if err := sqlite.Migrate(db.DB()); err != nil {
		return err
	}
	zl.Info("migrations completed")

	slackClient := slack.New(cfg.SlackBotToken)

	deps := service.Dependencies{
		DataManager: database.NewInstance(db),
		SlackClient: slackClient,
		Inbox:       notifier.NewSlackInbox(slackClient),
		Logger:      zl,
	}

	if cfg.SES.Enabled() {
		mailer, err := notifier.NewSESMailer(ctx, cfg.SES)
		if err != nil {
			return err
		}
		layout, err := notifier.NewEmailLayout()
		if err != nil {
			return err
		}
		deps.Mailer = mailer
		deps.EmailLayout = layout
		zl.Info("email delivery enabled", zap.String("from", cfg.SES.FromAddress), zap.String("region", cfg.SES.Region))
	}

	services := service.NewInstance(deps, service.Options{
		FallbackTimezone: cfg.DefaultTZ,
		DeliveryPolicy:   policy,
	})

	handler := handlers.New(services.Shift, services.Directory, cfg.SlackSigningSecret, zl.Named("handler"))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handlers.NewRouter(handler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zl.Info("server starting", zap.String("port", cfg.Port), zap.String("delivery_policy", string(policy)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Error("http server error", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	zl.Info("shutdown signal received")

	shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shCtx); err != nil {
		zl.Warn("http server shutdown error", zap.Error(err))
	}
	return nil
}
