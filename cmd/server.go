package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/joblyhq/jobs-api/internal/api"
	"github.com/joblyhq/jobs-api/internal/infrastructure/config"
	"github.com/joblyhq/jobs-api/internal/infrastructure/db/postgres"
	"github.com/joblyhq/jobs-api/pkg/logger"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.JWTSecret == "" {
			return errors.New("JWT_SECRET is required")
		}

		log := logger.New(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		db, err := postgres.Connect(ctx, cfg.Database.DSN())
		if err != nil {
			return err
		}
		defer db.Close()

		e := api.NewRouter(api.Options{
			DB:        db,
			JWTSecret: cfg.JWTSecret,
			TokenTTL:  cfg.TokenTTL,
			Logger:    log,
		})

		go func() {
			log.Info().Str("port", cfg.Port).Msg("server listening")
			if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error().Err(err).Msg("server stopped")
				stop()
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			return err
		}
		log.Info().Msg("server shut down")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
