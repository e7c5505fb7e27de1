package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/internal/logger"
	"github.com/osse101/Armory_Go/internal/repository"
)

const equipmentColumns = `equipment_id, slug, name, description, rarity, slot, tier,
	craft_gold_cost, sell_value, created_at, updated_at`

// EquipmentRepository implements repository.Equipment for PostgreSQL
type EquipmentRepository struct {
	db *pgxpool.Pool
}

// NewEquipmentRepository creates a new EquipmentRepository
func NewEquipmentRepository(db *pgxpool.Pool) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

var _ repository.Equipment = (*EquipmentRepository)(nil)

// GetEquipmentBySlug retrieves one catalog item
func (r *EquipmentRepository) GetEquipmentBySlug(ctx context.Context, slug string) (*domain.Equipment, error) {
	rows, err := r.db.Query(ctx, `SELECT `+equipmentColumns+` FROM equipment WHERE slug = $1`, slug)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetEquipment, err)
	}
	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[domain.Equipment])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, slug)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetEquipment, err)
	}
	return item, nil
}

// GetRequiredItems lists the direct ingredients of slug in recipe order
func (r *EquipmentRepository) GetRequiredItems(ctx context.Context, slug string) ([]domain.RequiredItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT child_slug, quantity
		FROM equipment_requirements
		WHERE parent_slug = $1
		ORDER BY position, child_slug`, slug)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRequiredItems, err)
	}
	required, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.RequiredItem, error) {
		var ri domain.RequiredItem
		err := row.Scan(&ri.RequiredSlug, &ri.Quantity)
		return ri, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRequiredItems, err)
	}
	return required, nil
}

// GetRequirers lists the items whose recipe consumes slug
func (r *EquipmentRepository) GetRequirers(ctx context.Context, slug string) ([]domain.Requirer, error) {
	rows, err := r.db.Query(ctx, `
		SELECT parent_slug, quantity
		FROM equipment_requirements
		WHERE child_slug = $1
		ORDER BY parent_slug`, slug)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRequirers, err)
	}
	requirers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Requirer, error) {
		var rq domain.Requirer
		err := row.Scan(&rq.ParentSlug, &rq.Quantity)
		return rq, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRequirers, err)
	}
	return requirers, nil
}

// ListEquipment returns a page of the catalog ordered by slug
func (r *EquipmentRepository) ListEquipment(ctx context.Context, filter domain.EquipmentFilter) ([]domain.Equipment, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + equipmentColumns + ` FROM equipment WHERE 1=1`)

	args := []any{}
	if filter.Slot != "" {
		args = append(args, filter.Slot)
		fmt.Fprintf(&queryBuilder, " AND slot = $%d", len(args))
	}
	if filter.Rarity != "" {
		args = append(args, filter.Rarity)
		fmt.Fprintf(&queryBuilder, " AND rarity = $%d", len(args))
	}
	if filter.Craftable != nil {
		if *filter.Craftable {
			queryBuilder.WriteString(" AND craft_gold_cost > 0")
		} else {
			queryBuilder.WriteString(" AND craft_gold_cost = 0")
		}
	}
	queryBuilder.WriteString(" ORDER BY slug")

	page, args := paginate(args, domain.NormalizeLimit(filter.Limit), filter.Offset)
	queryBuilder.WriteString(page)

	return r.queryEquipment(ctx, queryBuilder.String(), args...)
}

// GetAllEquipment returns the whole catalog ordered by slug
func (r *EquipmentRepository) GetAllEquipment(ctx context.Context) ([]domain.Equipment, error) {
	return r.queryEquipment(ctx, `SELECT `+equipmentColumns+` FROM equipment ORDER BY slug`)
}

func (r *EquipmentRepository) queryEquipment(ctx context.Context, query string, args ...any) ([]domain.Equipment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListEquipment, err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Equipment])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListEquipment, err)
	}
	return items, nil
}

// GetAllRequirements returns every requirement edge
func (r *EquipmentRepository) GetAllRequirements(ctx context.Context) ([]domain.RequirementEdge, error) {
	rows, err := r.db.Query(ctx, `
		SELECT parent_slug, child_slug, quantity
		FROM equipment_requirements
		ORDER BY parent_slug, position, child_slug`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRequirements, err)
	}
	edges, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.RequirementEdge])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRequirements, err)
	}
	return edges, nil
}

// SyncEquipment upserts items then rewrites the requirement list of each
// parent in requirements, atomically
func (r *EquipmentRepository) SyncEquipment(ctx context.Context, items []domain.Equipment, requirements map[string][]domain.RequiredItem) (int, error) {
	type edgeRow struct {
		parent   string
		item     domain.RequiredItem
		position int
	}
	parents := make([]string, 0, len(requirements))
	var edges []edgeRow
	for parent, list := range requirements {
		parents = append(parents, parent)
		for pos, ri := range list {
			edges = append(edges, edgeRow{parent: parent, item: ri, position: pos})
		}
	}

	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		err := sendBatch(ctx, tx, len(items), func(b *pgx.Batch, i int) {
			it := items[i]
			b.Queue(`
				INSERT INTO equipment (slug, name, description, rarity, slot, tier, craft_gold_cost, sell_value)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
				ON CONFLICT (slug) DO UPDATE SET
					name = EXCLUDED.name,
					description = EXCLUDED.description,
					rarity = EXCLUDED.rarity,
					slot = EXCLUDED.slot,
					tier = EXCLUDED.tier,
					craft_gold_cost = EXCLUDED.craft_gold_cost,
					sell_value = EXCLUDED.sell_value,
					updated_at = NOW()`,
				it.Slug, it.Name, it.Description, it.Rarity, it.Slot, it.Tier, it.CraftGoldCost, it.SellValue)
		})
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertEquipment, err)
		}

		if len(parents) > 0 {
			if _, err := tx.Exec(ctx,
				`DELETE FROM equipment_requirements WHERE parent_slug = ANY($1)`, parents); err != nil {
				return fmt.Errorf("%s: %w", ErrMsgFailedToReplaceRequirements, err)
			}
		}

		err = sendBatch(ctx, tx, len(edges), func(b *pgx.Batch, i int) {
			e := edges[i]
			b.Queue(`
				INSERT INTO equipment_requirements (parent_slug, child_slug, quantity, position)
				VALUES ($1, $2, $3, $4)`,
				e.parent, e.item.RequiredSlug, e.item.Quantity, e.position)
		})
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToReplaceRequirements, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	logger.FromContext(ctx).Debug(LogMsgCatalogWritten, "items", len(items), "edges", len(edges))
	return len(edges), nil
}

// DeleteEquipment removes an item and its own recipe. Edges that list it as
// an ingredient stay behind and are skipped by readers.
func (r *EquipmentRepository) DeleteEquipment(ctx context.Context, slug string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM equipment WHERE slug = $1`, slug)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteEquipment, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrItemNotFound, slug)
	}
	return nil
}

// GetSyncMetadata retrieves sync metadata for a config file
func (r *EquipmentRepository) GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error) {
	rows, err := r.db.Query(ctx, `
		SELECT config_name, last_sync_time, file_hash, file_mod_time
		FROM sync_metadata
		WHERE config_name = $1`, configName)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSyncMetadata, err)
	}
	meta, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[domain.SyncMetadata])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSyncMetadataNotFound, configName)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSyncMetadata, err)
	}
	return meta, nil
}

// UpsertSyncMetadata inserts or updates sync metadata for a config file
func (r *EquipmentRepository) UpsertSyncMetadata(ctx context.Context, metadata *domain.SyncMetadata) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO sync_metadata (config_name, last_sync_time, file_hash, file_mod_time)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (config_name) DO UPDATE SET
			last_sync_time = EXCLUDED.last_sync_time,
			file_hash = EXCLUDED.file_hash,
			file_mod_time = EXCLUDED.file_mod_time`,
		metadata.ConfigName, metadata.LastSyncTime, metadata.FileHash, metadata.FileModTime)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertSyncMetadata, err)
	}
	return nil
}
