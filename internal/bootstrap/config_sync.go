package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/Armory_Go/internal/equipment"
)

// SyncEquipmentCatalog imports the equipment catalog at startup.
// Hash-based change detection skips the import when the file is unchanged.
func SyncEquipmentCatalog(ctx context.Context, catalog equipment.Service) (*equipment.SyncResult, error) {
	slog.Info(LogMsgSyncingEquipment)

	result, err := catalog.Sync(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedSyncEquipment, err)
	}

	if result.Unchanged {
		slog.Info(LogMsgEquipmentUnchanged)
		return result, nil
	}

	slog.Info(LogMsgEquipmentSynced,
		"inserted", result.Inserted,
		"updated", result.Updated,
		"skipped", result.Skipped,
		"edges_written", result.EdgesWritten)
	return result, nil
}
