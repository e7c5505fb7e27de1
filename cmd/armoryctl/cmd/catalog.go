package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/Armory_Go/internal/database/postgres"
	"github.com/osse101/Armory_Go/internal/equipment"
	"github.com/osse101/Armory_Go/internal/event"
	"github.com/osse101/Armory_Go/internal/eventlog"
)

var forceSync bool

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a catalog file without touching the database",
	Long: `Checks a JSON or YAML catalog against the schema, then for duplicate
slugs, dangling requirements and requirement cycles.

The path defaults to EQUIPMENT_CONFIG_PATH.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

var syncCmd = &cobra.Command{
	Use:   "sync [path]",
	Short: "Import a catalog file into the database",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSync,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pool, err := openPool(cmd.Context())
		if err != nil {
			return err
		}
		pool.Close()
		fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date.")
		return nil
	},
}

func init() {
	syncCmd.Flags().BoolVar(&forceSync, "force", false, "import even when the file hash is unchanged")
}

func catalogPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.EquipmentConfigPath
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := catalogPath(args)
	loader := equipment.NewLoader(cfg.EquipmentSchemaPath)

	catalog, err := loader.Load(path)
	if err != nil {
		return err
	}
	if err := loader.Validate(catalog); err != nil {
		return err
	}
	return writeValidation(cmd.OutOrStdout(), outputFormat, path, catalog)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	pool, err := openPool(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	// Events from a CLI import land in the same audit log as server syncs
	bus := event.NewMemoryBus()
	if err := eventlog.NewService(postgres.NewEventLogRepository(pool)).Subscribe(bus); err != nil {
		return err
	}

	svc := equipment.NewService(
		postgres.NewEquipmentRepository(pool),
		equipment.NewLoader(cfg.EquipmentSchemaPath),
		bus,
		catalogPath(args),
	)
	result, err := svc.Sync(ctx, forceSync)
	if err != nil {
		return err
	}
	return writeSyncResult(cmd.OutOrStdout(), outputFormat, result)
}
