package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vasiliy-maslov/portfolio-api/internal/blog"
	"github.com/vasiliy-maslov/portfolio-api/internal/book"
	"github.com/vasiliy-maslov/portfolio-api/internal/config"
	"github.com/vasiliy-maslov/portfolio-api/internal/contact"
	"github.com/vasiliy-maslov/portfolio-api/internal/db"
	"github.com/vasiliy-maslov/portfolio-api/internal/feature"
	handlerhttp "github.com/vasiliy-maslov/portfolio-api/internal/handler/http"
	"github.com/vasiliy-maslov/portfolio-api/internal/mail"
	"github.com/vasiliy-maslov/portfolio-api/internal/order"
	"github.com/vasiliy-maslov/portfolio-api/internal/payment"
	"github.com/vasiliy-maslov/portfolio-api/internal/stamp"
	"github.com/vasiliy-maslov/portfolio-api/internal/transport"
)

const shutdownTimeout = 15 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	setupLogger(cfg.App.LogLevel, cfg.App.LogFormat)

	log.Info().Msg("Starting portfolio-api...")

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.App.MigrateOnStart {
		if err := db.Migrate(cfg.Postgres.URI, db.Up); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	pg, err := db.New(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pg.Close()

	stamper, err := stamp.New(cfg.App.Timezone)
	if err != nil {
		return err
	}

	var sender mail.Sender = mail.NopSender{}
	if cfg.MailEnabled() {
		smtp, err := mail.NewSMTPSender(cfg.Mail)
		if err != nil {
			return err
		}
		sender = smtp
	} else {
		log.Warn().Msg("MAIL_USER is not set, contact notifications are disabled")
	}
	notifier := contact.NewNotifier(sender, contact.NotifySettings{
		From:    cfg.Mail.User,
		To:      cfg.Mail.Owner,
		Timeout: cfg.Mail.Timeout,
	})

	bookSvc := book.NewService(book.NewRepository(pg.Pool))
	orderSvc := order.NewService(
		order.NewRepository(pg.Pool),
		bookSvc,
		payment.NewClient(cfg.Payment),
		stamper,
		order.Settings{
			APIURL:    cfg.App.APIURL,
			ClientURL: cfg.App.ClientURL,
			Currency:  cfg.Payment.Currency,
		},
	)

	router := transport.NewRouter(cfg.App.CORSOrigins, pg,
		handlerhttp.NewBookHandler(bookSvc),
		handlerhttp.NewOrderHandler(orderSvc),
		handlerhttp.NewBlogHandler(blog.NewService(blog.NewRepository(pg.Pool), stamper)),
		handlerhttp.NewFeatureHandler(feature.NewService(feature.NewRepository(pg.Pool), stamper)),
		handlerhttp.NewContactHandler(contact.NewService(contact.NewRepository(pg.Pool), stamper, notifier)),
	)

	server := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.Payment.Timeout + 10*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("port", cfg.App.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("could not listen on %s: %w", cfg.App.Port, err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	err = g.Wait()

	notifier.Wait()
	log.Info().Msg("portfolio-api stopped gracefully")
	return err
}
