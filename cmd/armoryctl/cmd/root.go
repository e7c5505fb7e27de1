// Package cmd provides the armoryctl commands for working with the equipment
// catalog and the crafting resolver outside the HTTP server.
package cmd

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/osse101/Armory_Go/internal/config"
	"github.com/osse101/Armory_Go/internal/database"
	"github.com/osse101/Armory_Go/internal/logger"
)

const (
	formatText = "text"
	formatJSON = "json"
)

var (
	outputFormat string
	verbose      bool

	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "armoryctl",
	Short: "Inspect and maintain the Armory equipment catalog",
	Long: `armoryctl validates catalog files, imports them into Postgres and
answers crafting questions straight from the database.

Examples:
  armoryctl validate configs/equipment/equipment.json
  armoryctl sync --force
  armoryctl raw-cost iron_sword
  armoryctl final-products iron_ore --format json`,
	SilenceUsage:      true,
	PersistentPreRunE: initConfig,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", formatText, "output format (text, json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(rawCostCmd)
	rootCmd.AddCommand(finalProductsCmd)
}

func initConfig(cmd *cobra.Command, args []string) error {
	if outputFormat != formatText && outputFormat != formatJSON {
		return fmt.Errorf("unsupported format %q", outputFormat)
	}

	loaded, err := config.Load()
	if err != nil {
		return err
	}
	cfg = loaded

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	logger.InitLoggerWithWriter(
		logger.NewConfig(level, cfg.LogFormat, cfg.ServiceName+"-ctl", cfg.Version, cfg.Environment, false),
		cmd.ErrOrStderr(),
	)
	return nil
}

// openPool connects to the configured database and applies pending migrations
func openPool(ctx context.Context) (*pgxpool.Pool, error) {
	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, err
	}
	if _, err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
