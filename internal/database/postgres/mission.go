package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/internal/repository"
)

const missionColumns = `mission_id, slug, name, difficulty, energy_cost, reward_gold, reward_equipment, created_at, updated_at`

// MissionRepository implements repository.Mission for PostgreSQL
type MissionRepository struct {
	db *pgxpool.Pool
}

// NewMissionRepository creates a new MissionRepository
func NewMissionRepository(db *pgxpool.Pool) *MissionRepository {
	return &MissionRepository{db: db}
}

var _ repository.Mission = (*MissionRepository)(nil)

// GetMissionBySlug retrieves one mission
func (r *MissionRepository) GetMissionBySlug(ctx context.Context, slug string) (*domain.Mission, error) {
	row := r.db.QueryRow(ctx, `SELECT `+missionColumns+` FROM missions WHERE slug = $1`, slug)
	mission, err := scanMission(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrMissionNotFound, slug)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetMission, err)
	}
	return &mission, nil
}

// ListMissions returns a page of missions ordered by difficulty then slug
func (r *MissionRepository) ListMissions(ctx context.Context, filter domain.MissionFilter) ([]domain.Mission, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + missionColumns + ` FROM missions WHERE 1=1`)

	args := []any{}
	if filter.MinDifficulty > 0 {
		args = append(args, filter.MinDifficulty)
		fmt.Fprintf(&queryBuilder, " AND difficulty >= $%d", len(args))
	}
	if filter.MaxDifficulty > 0 {
		args = append(args, filter.MaxDifficulty)
		fmt.Fprintf(&queryBuilder, " AND difficulty <= $%d", len(args))
	}
	queryBuilder.WriteString(" ORDER BY difficulty, slug")

	page, args := paginate(args, domain.NormalizeLimit(filter.Limit), filter.Offset)
	queryBuilder.WriteString(page)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListMissions, err)
	}
	missions, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Mission, error) {
		return scanMission(row)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListMissions, err)
	}
	return missions, nil
}

// BulkUpsertMissions writes every mission in one transaction using batched statements
func (r *MissionRepository) BulkUpsertMissions(ctx context.Context, missions []domain.Mission) (int, error) {
	if len(missions) == 0 {
		return 0, nil
	}

	rewards := make([][]byte, len(missions))
	for i, m := range missions {
		data, err := marshalJSONB(m.RewardEquipment, emptyJSONArray)
		if err != nil {
			return 0, err
		}
		rewards[i] = data
	}

	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		return sendBatch(ctx, tx, len(missions), func(b *pgx.Batch, i int) {
			m := missions[i]
			b.Queue(`
				INSERT INTO missions (slug, name, difficulty, energy_cost, reward_gold, reward_equipment)
				VALUES ($1, $2, $3, $4, $5, $6)
				ON CONFLICT (slug) DO UPDATE SET
					name = EXCLUDED.name,
					difficulty = EXCLUDED.difficulty,
					energy_cost = EXCLUDED.energy_cost,
					reward_gold = EXCLUDED.reward_gold,
					reward_equipment = EXCLUDED.reward_equipment,
					updated_at = NOW()`,
				m.Slug, m.Name, m.Difficulty, m.EnergyCost, m.RewardGold, rewards[i])
		})
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToUpsertMissions, err)
	}
	return len(missions), nil
}

// DeleteMission removes a mission
func (r *MissionRepository) DeleteMission(ctx context.Context, slug string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM missions WHERE slug = $1`, slug)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteMission, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrMissionNotFound, slug)
	}
	return nil
}

func scanMission(row pgx.Row) (domain.Mission, error) {
	var m domain.Mission
	var rewards []byte
	err := row.Scan(&m.ID, &m.Slug, &m.Name, &m.Difficulty, &m.EnergyCost, &m.RewardGold, &rewards, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return m, err
	}
	if err := unmarshalJSONB(rewards, &m.RewardEquipment); err != nil {
		return m, err
	}
	return m, nil
}
