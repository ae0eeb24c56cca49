package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bagdasarian/taskflow/internal/handler"
	"github.com/bagdasarian/taskflow/internal/handler/server"
	"github.com/bagdasarian/taskflow/internal/metrics"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "taskflow",
	Short: "TaskFlow project and task tracker",
}

func main() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			return runServe(cmd.Context(), addr)
		},
	}
	serveCmd.Flags().String("addr", "", "listen address (overrides TASKFLOW_HTTP_ADDR)")
	rootCmd.AddCommand(serveCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Migrate the backend and create empty collections",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(a *app) error {
				a.store.Initialize(cmd.Context())
				a.log.Info().Msg("store initialized")
				return nil
			})
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Delete every TaskFlow key, including the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(a *app) error {
				a.store.Clear(cmd.Context())
				a.log.Info().Msg("store cleared")
				return nil
			})
		},
	})

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func withApp(ctx context.Context, fn func(*app) error) error {
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}

func runServe(ctx context.Context, addr string) error {
	return withApp(ctx, func(a *app) error {
		a.store.Initialize(ctx)

		ws, err := a.workspace()
		if err != nil {
			return err
		}
		if user := ws.Restore(ctx); user != nil {
			a.log.Info().Str("user_id", user.ID).Msg("session restored")
		}

		if addr == "" {
			addr = a.cfg.HTTP.Addr
		}
		h := handler.NewHandler(ws, a.log)
		srv := server.NewServer(h, metrics.Handler(a.registry), addr, a.log)

		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				a.log.Fatal().Err(err).Msg("server failed to start")
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})
}
