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

const heroColumns = `hero_id, slug, name, class, rarity, base_stats, default_equipment, created_at, updated_at`

// HeroRepository implements repository.Hero for PostgreSQL
type HeroRepository struct {
	db *pgxpool.Pool
}

// NewHeroRepository creates a new HeroRepository
func NewHeroRepository(db *pgxpool.Pool) *HeroRepository {
	return &HeroRepository{db: db}
}

var _ repository.Hero = (*HeroRepository)(nil)

// GetHeroBySlug retrieves one hero template
func (r *HeroRepository) GetHeroBySlug(ctx context.Context, slug string) (*domain.Hero, error) {
	row := r.db.QueryRow(ctx, `SELECT `+heroColumns+` FROM heroes WHERE slug = $1`, slug)
	hero, err := scanHero(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrHeroNotFound, slug)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetHero, err)
	}
	return &hero, nil
}

// ListHeroes returns a page of heroes ordered by slug
func (r *HeroRepository) ListHeroes(ctx context.Context, filter domain.HeroFilter) ([]domain.Hero, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + heroColumns + ` FROM heroes WHERE 1=1`)

	args := []any{}
	if filter.Class != "" {
		args = append(args, filter.Class)
		fmt.Fprintf(&queryBuilder, " AND class = $%d", len(args))
	}
	if filter.Rarity != "" {
		args = append(args, filter.Rarity)
		fmt.Fprintf(&queryBuilder, " AND rarity = $%d", len(args))
	}
	queryBuilder.WriteString(" ORDER BY slug")

	page, args := paginate(args, domain.NormalizeLimit(filter.Limit), filter.Offset)
	queryBuilder.WriteString(page)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListHeroes, err)
	}
	heroes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Hero, error) {
		return scanHero(row)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListHeroes, err)
	}
	return heroes, nil
}

// BulkUpsertHeroes writes every hero in one transaction using batched statements
func (r *HeroRepository) BulkUpsertHeroes(ctx context.Context, heroes []domain.Hero) (int, error) {
	if len(heroes) == 0 {
		return 0, nil
	}

	type encoded struct{ stats, equipment []byte }
	rows := make([]encoded, len(heroes))
	for i, h := range heroes {
		stats, err := marshalJSONB(h.BaseStats, emptyJSONObject)
		if err != nil {
			return 0, err
		}
		equipment, err := marshalJSONB(h.DefaultEquipment, emptyJSONArray)
		if err != nil {
			return 0, err
		}
		rows[i] = encoded{stats: stats, equipment: equipment}
	}

	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		return sendBatch(ctx, tx, len(heroes), func(b *pgx.Batch, i int) {
			h := heroes[i]
			b.Queue(`
				INSERT INTO heroes (slug, name, class, rarity, base_stats, default_equipment)
				VALUES ($1, $2, $3, $4, $5, $6)
				ON CONFLICT (slug) DO UPDATE SET
					name = EXCLUDED.name,
					class = EXCLUDED.class,
					rarity = EXCLUDED.rarity,
					base_stats = EXCLUDED.base_stats,
					default_equipment = EXCLUDED.default_equipment,
					updated_at = NOW()`,
				h.Slug, h.Name, h.Class, h.Rarity, rows[i].stats, rows[i].equipment)
		})
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToUpsertHeroes, err)
	}
	return len(heroes), nil
}

// DeleteHero removes a hero template
func (r *HeroRepository) DeleteHero(ctx context.Context, slug string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM heroes WHERE slug = $1`, slug)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteHero, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrHeroNotFound, slug)
	}
	return nil
}

func scanHero(row pgx.Row) (domain.Hero, error) {
	var h domain.Hero
	var stats, equipment []byte
	err := row.Scan(&h.ID, &h.Slug, &h.Name, &h.Class, &h.Rarity, &stats, &equipment, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return h, err
	}
	if err := unmarshalJSONB(stats, &h.BaseStats); err != nil {
		return h, err
	}
	if err := unmarshalJSONB(equipment, &h.DefaultEquipment); err != nil {
		return h, err
	}
	return h, nil
}
