package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/prato-lab/prato/pkg/cli/config"
	httpctrl "github.com/prato-lab/prato/pkg/controller/http"
	"github.com/prato-lab/prato/pkg/service/oracle"
	"github.com/prato-lab/prato/pkg/usecase"
	"github.com/prato-lab/prato/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var addr string
	var repoCfg config.Repository
	var geminiCfg config.Gemini
	var messagingCfg config.Messaging
	var storageCfg config.Storage
	var messagesCfg config.MessagesConfig
	var sentryCfg config.Sentry

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("PRATO_ADDR"),
			Destination: &addr,
		},
	}

	// Add shared config flags
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, geminiCfg.Flags()...)
	flags = append(flags, messagingCfg.Flags()...)
	flags = append(flags, storageCfg.Flags()...)
	flags = append(flags, messagesCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			sentryCloser, err := sentryCfg.Configure(c.Root().Version)
			if err != nil {
				return goerr.Wrap(err, "failed to configure sentry")
			}
			defer sentryCloser()

			// Initialize repository based on backend type
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			msgs, err := messagesCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load reply texts")
			}

			ucOpts := []usecase.Option{
				usecase.WithMessages(msgs),
			}

			// Initialize the oracle if Gemini is configured
			llmClient, err := geminiCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure Gemini client")
			}
			if llmClient != nil {
				oracleSvc, err := oracle.New(llmClient)
				if err != nil {
					return goerr.Wrap(err, "failed to initialize oracle service")
				}
				ucOpts = append(ucOpts, usecase.WithOracle(oracleSvc))
				logging.Default().LogAttrs(ctx, slog.LevelInfo, "Oracle enabled", geminiCfg.LogAttrs()...)
			} else {
				logging.Default().Info("Gemini not configured, classification falls back to general conversation")
			}

			// Initialize outbound messaging if configured
			messagingSvc, err := messagingCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to initialize messaging service")
			}
			if messagingSvc != nil {
				ucOpts = append(ucOpts, usecase.WithMessaging(messagingSvc))
				logging.Default().LogAttrs(ctx, slog.LevelInfo, "Outbound messaging enabled", messagingCfg.LogAttrs()...)
			} else {
				logging.Default().Info("Messaging gateway not configured, replies ride the webhook response only")
			}

			// Initialize attachment extractor if a bucket is configured
			extractorSvc, err := storageCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize attachment extractor")
			}
			if extractorSvc != nil {
				ucOpts = append(ucOpts, usecase.WithExtractor(extractorSvc))
				logging.Default().Info("Attachment extraction enabled", "bucket", storageCfg.Bucket())
			}

			uc := usecase.New(repo, ucOpts...)

			httpHandler := httpctrl.New(uc, httpctrl.WithMessages(msgs))
			server := &http.Server{
				Addr:              addr,
				Handler:           httpHandler,
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			// Start server in goroutine
			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			// Wait for shutdown signal or server error
			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
