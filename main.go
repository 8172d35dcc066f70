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

	intconfig "tripmarket/internal/config"
	router "tripmarket/internal/http"
	"tripmarket/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	env    intconfig.Env
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "tripmarket",
	Short: "Trip pricing, comparison and lead backend",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; real environment variables win.
		_ = godotenv.Load()

		var err error
		env, err = intconfig.LoadEnv()
		if err != nil {
			return err
		}
		intconfig.SetCurrent(env)

		logger, err = utils.NewLogger(env.LogLevel, env.GinMode)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		utils.SetLogger(logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, quoteCmd, tokenCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := intconfig.ConnectDB(ctx, env, logger); err != nil {
		return err
	}
	defer intconfig.CloseDB()

	if _, err := intconfig.ConnectRedis(ctx, env, logger); err != nil {
		// The API still serves quotes without redis; only the compare list goes away.
		logger.Warn("redis unavailable", zap.Error(err))
	}
	defer intconfig.CloseRedis()

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           router.NewRouter(env),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", env.AppAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
