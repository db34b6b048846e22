package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/joblyhq/jobs-api/internal/infrastructure/config"
	"github.com/joblyhq/jobs-api/internal/infrastructure/db/postgres"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load sample companies, jobs, and an admin user",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		db, err := postgres.Connect(cmd.Context(), cfg.Database.DSN())
		if err != nil {
			return err
		}
		defer db.Close()

		ctx := cmd.Context()

		hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if _, err := db.ExecContext(ctx, `
			INSERT INTO users (username, password, is_admin)
			VALUES ('admin', $1, TRUE)
			ON CONFLICT (username) DO NOTHING`, string(hash)); err != nil {
			return fmt.Errorf("seed users: %w", err)
		}

		if _, err := db.ExecContext(ctx, `
			INSERT INTO companies (handle, name, num_employees) VALUES
				('apple', 'apple inc', 1000),
				('nike', 'nike inc', 200),
				('rithm', 'rithm school', 10),
				('starbucks', 'starbucks inc', 500)
			ON CONFLICT (handle) DO NOTHING`); err != nil {
			return fmt.Errorf("seed companies: %w", err)
		}

		// Jobs have a serial key, so guard against re-seeding instead of
		// relying on ON CONFLICT.
		var jobCount int
		if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&jobCount); err != nil {
			return fmt.Errorf("seed jobs: %w", err)
		}
		if jobCount == 0 {
			if _, err := db.ExecContext(ctx, `
				INSERT INTO jobs (title, salary, company_handle) VALUES
					('engineer', 100000, 'apple'),
					('plumber', 120000, 'apple'),
					('barista', 200000, 'nike')`); err != nil {
				return fmt.Errorf("seed jobs: %w", err)
			}
		}

		fmt.Println("seed complete")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
