package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tahaburak/would-watch/internal/config"
	"github.com/tahaburak/would-watch/internal/mockbackend"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "wouldwatch",
		Short:         "Would Watch movie matching client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newTUICommand())
	cmd.AddCommand(newMockServerCommand())
	return cmd
}

func newTUICommand() *cobra.Command {
	var apiURL string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Interactive console client",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if apiURL != "" {
				cfg.SetBaseURL(apiURL)
			}

			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelWarn,
			}))

			app := newApp(cfg, logger)
			defer app.Close()
			return app.run()
		},
	}

	cmd.Flags().StringVar(&apiURL, "api", "", "Base URL of the backend (overrides WOULDWATCH_API_URL)")
	return cmd
}

func newMockServerCommand() *cobra.Command {
	var (
		addr   string
		secret string
	)

	cmd := &cobra.Command{
		Use:   "mockserver",
		Short: "Run the in-memory mock backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
			backend := mockbackend.New(secret, logger)

			server := &http.Server{
				Addr:    addr,
				Handler: backend.Handler(),
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("mock backend listening", "addr", addr)
				errCh <- server.ListenAndServe()
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-quit:
			}

			logger.Info("shutting down mock backend")
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	cmd.Flags().StringVar(&secret, "secret", "dev-secret", "HMAC secret for issued tokens")
	return cmd
}
