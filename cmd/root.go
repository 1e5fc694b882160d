package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nine-hub/api/storage"
)

// version is overridden at build time with -ldflags
var version = "dev"

// cli carries what the subcommands share once the root command has loaded configuration
type cli struct {
	settings  Settings
	logger    *zap.Logger
	storePath string
}

func (c *cli) store() *storage.Store {
	path := c.storePath
	if path == "" {
		path = c.settings.StorePath
	}
	return storage.New(path, c.logger)
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "ninehub",
		Short: "Nine Hub colour tools and subscription backend",
		Long: `ninehub serves the Nine Hub API (colour tools, waitlist, newsletter
and FastSpring subscription webhooks) and exposes the same colour tools,
presets and export history on the command line.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			settings, err := LoadSettings()
			if err != nil {
				return err
			}
			logger, err := newLogger(settings.API.DevMode)
			if err != nil {
				return fmt.Errorf("build logger: %w", err)
			}
			c.settings = settings
			c.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}
	root.SetVersionTemplate(`{{printf "ninehub version %s\n" .Version}}`)
	root.PersistentFlags().StringVar(&c.storePath, "store", "", "path of the local preset store (default $STORE_PATH)")

	root.AddCommand(
		newServeCmd(c),
		newMigrateCmd(c),
		newColorCmd(),
		newPaletteCmd(c),
		newGridCmd(c),
		newMetaCmd(c),
		newPromptCmd(c),
		newPresetCmd(c),
		newFavoriteCmd(c),
		newHistoryCmd(c),
		newStoreCmd(c),
		newHashKeyCmd(),
	)
	return root
}

// Execute runs the root command. It is called once from main.main.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		// cobra already printed the error
		os.Exit(1)
	}
}
