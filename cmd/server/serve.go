package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"yelpcamp/internal/application/services"
	"yelpcamp/internal/config"
	"yelpcamp/internal/delivery/web"
	"yelpcamp/internal/domain/repositories"
	"yelpcamp/internal/infrastructure"
	"yelpcamp/internal/infrastructure/messaging"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := infrastructure.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx, cfg.Store, logger)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := st.close(closeCtx); err != nil {
			logger.Warn("close store", zap.Error(err))
		}
	}()

	redisService := infrastructure.NewRedisService(ctx, cfg.Redis, logger)
	defer func() { _ = redisService.Close() }()
	var sessions repositories.SessionRepository = redisService
	if !redisService.Enabled() && st.sessions != nil {
		sessions = st.sessions
	}

	mailer, err := infrastructure.NewMailer(cfg.Mail, logger)
	if err != nil {
		return err
	}
	geocoder, err := infrastructure.NewGoogleGeocoder(cfg.Geocoder.APIKey)
	if err != nil {
		return fmt.Errorf("GEOCODER_API_KEY: %w", err)
	}
	publisher, err := messaging.ConnectNats(cfg.Nats.URL, logger)
	if err != nil {
		return err
	}
	defer publisher.Close()

	forgotLimiter := infrastructure.NewWindowLimiter(time.Hour, cfg.Limits.ForgotPerHour)
	defer forgotLimiter.Stop()
	requestLimiter := infrastructure.NewRateLimiter(rate.Limit(cfg.Limits.RequestsPerSecond), cfg.Limits.Burst, 10*time.Minute)
	defer requestLimiter.Stop()

	notificationService := services.NewNotificationService(st.users, st.notifications, logger)
	userService := services.NewUserService(
		st.users,
		st.campgrounds,
		sessions,
		infrastructure.NewJWTService(cfg.Session.Secret, cfg.Session.TTL),
		mailer,
		forgotLimiter,
		logger,
		services.UserServiceOptions{AdminCode: cfg.AdminCode, ResetTokenTTL: cfg.ResetTokenTTL},
	)
	campgroundService := services.NewCampgroundService(
		st.campgrounds, st.comments, st.users, notificationService, geocoder, publisher, logger)
	commentService := services.NewCommentService(st.comments, st.campgrounds, logger)

	renderer, err := web.NewRenderer(logger)
	if err != nil {
		return err
	}
	handler := web.NewHandler(userService, campgroundService, commentService, notificationService, renderer, logger,
		web.HandlerOptions{
			SessionTTL:   cfg.Session.TTL,
			CookieSecure: cfg.Session.CookieSecure,
			Health:       st.health,
		})

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      web.NewRouter(handler, requestLimiter, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("The YelpCamp server has started", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
