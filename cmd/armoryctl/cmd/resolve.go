package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/Armory_Go/internal/crafting"
	"github.com/osse101/Armory_Go/internal/database/postgres"
)

var rawCostCmd = &cobra.Command{
	Use:   "raw-cost <slug>",
	Short: "Flatten an item's recipe tree into raw materials and gold",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withResolver(cmd.Context(), func(ctx context.Context, svc crafting.Service) error {
			result, err := svc.ResolveRawCostBySlug(ctx, args[0])
			if err != nil {
				return err
			}
			return writeRawCost(cmd.OutOrStdout(), outputFormat, args[0], result)
		})
	},
}

var finalProductsCmd = &cobra.Command{
	Use:   "final-products <slug>",
	Short: "List every final product that consumes an item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withResolver(cmd.Context(), func(ctx context.Context, svc crafting.Service) error {
			products, err := svc.FindFinalProducts(ctx, args[0])
			if err != nil {
				return err
			}
			return writeFinalProducts(cmd.OutOrStdout(), outputFormat, args[0], products)
		})
	},
}

func withResolver(ctx context.Context, fn func(context.Context, crafting.Service) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	pool, err := openPool(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	ctx, cancel := context.WithTimeout(ctx, cfg.ResolveTimeout)
	defer cancel()

	if err := fn(ctx, crafting.NewService(postgres.NewEquipmentRepository(pool))); err != nil {
		return fmt.Errorf("resolve: %w", err)
	}
	return nil
}
