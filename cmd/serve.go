package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nine-hub/api/api"
	"github.com/nine-hub/api/datastore"
	"github.com/nine-hub/api/migrations"
	"github.com/nine-hub/api/newsletter"
	"github.com/nine-hub/api/scheduler"
	"github.com/nine-hub/api/webhook"
)

func (c *cli) openDB() (*sql.DB, error) {
	cfg := c.settings.API
	connStr := datastore.BuildDBConnStr(
		cfg.DatabaseHost,
		cfg.DatabasePassword,
		cfg.DatabaseUser,
		cfg.DatabaseName,
		cfg.SSLMode,
	)
	db, err := datastore.NewDB(cfg.DatabaseType, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

func newServeCmd(c *cli) *cobra.Command {
	var skipMigrations bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.serve(skipMigrations)
		},
	}
	cmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "do not apply pending migrations on start")
	return cmd
}

func (c *cli) serve(skipMigrations bool) error {
	logger := c.logger

	dbConn, err := c.openDB()
	if err != nil {
		return err
	}
	defer dbConn.Close()

	if !skipMigrations {
		logger.Info("running database migrations")
		if err := migrations.RunMigrations(dbConn, migrations.Files(), logger); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	subscriptionRepo, err := datastore.NewSubscriptionDatabase(dbConn)
	if err != nil {
		return fmt.Errorf("failed to create subscription repository: %w", err)
	}
	waitlistRepo, err := datastore.NewWaitlistDatabase(dbConn)
	if err != nil {
		return fmt.Errorf("failed to create waitlist repository: %w", err)
	}

	expiry, err := scheduler.NewScheduler(subscriptionRepo, c.settings.ExpirySchedule, c.settings.ExpiryGrace, logger)
	if err != nil {
		return err
	}
	if err := expiry.Start(); err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		expiry.Stop(ctx)
	}()

	loops := newsletter.New(c.settings.LoopsFormID, logger)
	if loops.Demo() {
		logger.Warn("LOOPS_FORM_ID not set, newsletter sign-ups are only logged")
	}
	if c.settings.API.WebhookSecret == "" {
		logger.Warn("FASTSPRING_WEBHOOK_SECRET not set, webhook signatures are not checked")
	}

	app := api.NewApplication(api.Application{
		Config:           c.settings.API,
		Logger:           logger,
		DB:               dbConn,
		SubscriptionRepo: subscriptionRepo,
		WaitlistRepo:     waitlistRepo,
		Webhooks:         webhook.NewProcessor(subscriptionRepo, logger),
		Newsletter:       loops,
		Expiry:           expiry,
	})

	logger.Info("Nine Hub API starting", zap.String("version", version))
	return app.Serve(http.NewServeMux())
}

func newMigrateCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbConn, err := c.openDB()
			if err != nil {
				return err
			}
			defer dbConn.Close()

			if err := migrations.RunMigrations(dbConn, migrations.Files(), c.logger); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations up to date")
			return nil
		},
	}
}
