// Package equipment imports the equipment catalog from its JSON config file
// and manages catalog records.
package equipment

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/internal/logger"
	"github.com/osse101/Armory_Go/internal/repository"
	"github.com/osse101/Armory_Go/internal/validation"
)

// Sentinel errors for the catalog loader
var (
	ErrDuplicateSlug    = errors.New("duplicate slug")
	ErrRequirementCycle = errors.New("requirement cycle")

	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config represents the JSON equipment catalog
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Items []Def `json:"items"`
}

// Def represents a single equipment definition in the JSON
type Def struct {
	Slug          string           `json:"slug,omitempty"`
	Name          string           `json:"name"`
	Description   string           `json:"description,omitempty"`
	Rarity        domain.Rarity    `json:"rarity,omitempty"`
	Slot          string           `json:"slot,omitempty"`
	Tier          int              `json:"tier,omitempty"`
	CraftGoldCost int              `json:"craft_gold_cost,omitempty"`
	SellValue     int              `json:"sell_value,omitempty"`
	Requires      []RequirementDef `json:"requires,omitempty"`
}

// RequirementDef is one recipe line of a Def
type RequirementDef struct {
	Slug     string `json:"slug"`
	Quantity int    `json:"quantity"`
}

// ResolvedSlug returns the explicit slug or one derived from the name
func (d *Def) ResolvedSlug() string {
	if d.Slug != "" {
		return d.Slug
	}
	return DeriveSlug(d.Name)
}

func (d *Def) toDomain() domain.Equipment {
	rarity := d.Rarity
	if rarity == "" {
		rarity = domain.RarityCommon
	}
	return domain.Equipment{
		Slug:          d.ResolvedSlug(),
		Name:          d.Name,
		Description:   d.Description,
		Rarity:        rarity,
		Slot:          d.Slot,
		Tier:          d.Tier,
		CraftGoldCost: d.CraftGoldCost,
		SellValue:     d.SellValue,
	}
}

func (d *Def) requiredItems() []domain.RequiredItem {
	out := make([]domain.RequiredItem, len(d.Requires))
	for i, r := range d.Requires {
		out[i] = domain.RequiredItem{RequiredSlug: r.Slug, Quantity: r.Quantity}
	}
	return out
}

// Loader handles loading and validating the equipment catalog
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
	SyncToDatabase(ctx context.Context, config *Config, repo repository.Equipment, configPath string, force bool) (*SyncResult, error)
}

// SyncResult contains the result of syncing the catalog to the database
type SyncResult struct {
	Inserted     int  `json:"inserted"`
	Updated      int  `json:"updated"`
	Skipped      int  `json:"skipped"`
	EdgesWritten int  `json:"edges_written"`
	Unchanged    bool `json:"unchanged"`
}

// Changed reports whether the sync wrote anything
func (r *SyncResult) Changed() bool {
	return r.Inserted > 0 || r.Updated > 0 || r.EdgesWritten > 0
}

type loader struct {
	schemaValidator validation.SchemaValidator
	schemaPath      string
}

// NewLoader creates a Loader validating against schemaPath. An empty path
// selects DefaultSchemaPath.
func NewLoader(schemaPath string) Loader {
	if schemaPath == "" {
		schemaPath = DefaultSchemaPath
	}
	return &loader{
		schemaValidator: validation.NewSchemaValidator(),
		schemaPath:      schemaPath,
	}
}

// Load reads and parses an equipment catalog. Files ending in .yaml or .yml
// are converted to JSON first so both formats share one schema.
func (l *loader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	if isYAML(path) {
		if data, err = yamlToJSON(data); err != nil {
			return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
		}
	}

	// Validate against schema first
	if err := l.schemaValidator.ValidateBytes(data, l.schemaPath); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	return &config, nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// yamlToJSON re-encodes a YAML document as JSON. yaml.v3 decodes mappings
// into map[string]any, which encoding/json handles directly.
func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

// Validate checks the catalog for errors the schema cannot express:
// uniqueness, references, and requirement cycles
func (l *loader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}
	if len(config.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoItemsDefined)
	}

	slugs := make(map[string]bool, len(config.Items))
	for i := range config.Items {
		if err := validateDef(i, &config.Items[i], slugs); err != nil {
			return err
		}
	}

	for i := range config.Items {
		if err := validateRequirements(&config.Items[i], slugs); err != nil {
			return err
		}
	}

	return detectCycle(config)
}

func validateDef(index int, def *Def, slugs map[string]bool) error {
	slug := def.ResolvedSlug()
	if slug == "" {
		return fmt.Errorf(ErrFmtItemAtIndexNoSlug, ErrInvalidConfig, index)
	}
	if slugs[slug] {
		return fmt.Errorf("%w: '%s'", ErrDuplicateSlug, slug)
	}
	slugs[slug] = true

	if def.CraftGoldCost < 0 {
		return fmt.Errorf(ErrFmtItemNegativeGold, ErrInvalidConfig, slug)
	}
	if def.SellValue < 0 {
		return fmt.Errorf(ErrFmtItemNegativeValue, ErrInvalidConfig, slug)
	}
	if def.Tier < 0 {
		return fmt.Errorf(ErrFmtItemNegativeTier, ErrInvalidConfig, slug)
	}
	if !def.Rarity.IsValid() {
		return fmt.Errorf(ErrFmtItemInvalidRarity, ErrInvalidConfig, slug, def.Rarity)
	}
	if !domain.IsValidSlot(def.Slot) {
		return fmt.Errorf(ErrFmtItemInvalidSlot, ErrInvalidConfig, slug, def.Slot)
	}
	if len(def.Requires) > 0 && def.CraftGoldCost == 0 {
		return fmt.Errorf(ErrFmtRecipeWithoutGold, ErrInvalidConfig, slug)
	}
	return nil
}

func validateRequirements(def *Def, slugs map[string]bool) error {
	slug := def.ResolvedSlug()
	seen := make(map[string]bool, len(def.Requires))
	for _, req := range def.Requires {
		if req.Quantity <= 0 {
			return fmt.Errorf(ErrFmtRequirementQuantity, ErrInvalidConfig, slug, req.Quantity, req.Slug)
		}
		if req.Slug == slug {
			return fmt.Errorf(ErrFmtRequirementSelf, ErrInvalidConfig, slug)
		}
		if !slugs[req.Slug] {
			return fmt.Errorf(ErrFmtRequirementUnknown, ErrInvalidConfig, slug, req.Slug)
		}
		if seen[req.Slug] {
			return fmt.Errorf(ErrFmtRequirementDuplicate, ErrInvalidConfig, slug, req.Slug)
		}
		seen[req.Slug] = true
	}
	return nil
}

// detectCycle walks the requirement graph depth-first and reports the first
// cycle as "a -> b -> a"
func detectCycle(config *Config) error {
	const (
		unvisited = iota
		visiting
		done
	)

	requires := make(map[string][]string, len(config.Items))
	order := make([]string, 0, len(config.Items))
	for i := range config.Items {
		def := &config.Items[i]
		slug := def.ResolvedSlug()
		order = append(order, slug)
		for _, r := range def.Requires {
			requires[slug] = append(requires[slug], r.Slug)
		}
	}

	state := make(map[string]int, len(order))
	var stack []string
	var visit func(slug string) error
	visit = func(slug string) error {
		state[slug] = visiting
		stack = append(stack, slug)
		for _, child := range requires[slug] {
			switch state[child] {
			case visiting:
				start := slices.Index(stack, child)
				path := append(slices.Clone(stack[start:]), child)
				return fmt.Errorf(ErrFmtRequirementCycle, ErrRequirementCycle, strings.Join(path, " -> "))
			case unvisited:
				if err := visit(child); err != nil {
					return err
				}
			}
		}
		stack = stack[:len(stack)-1]
		state[slug] = done
		return nil
	}

	for _, slug := range order {
		if state[slug] == unvisited {
			if err := visit(slug); err != nil {
				return err
			}
		}
	}
	return nil
}

// SyncToDatabase syncs the catalog to the database idempotently. Unless force
// is set, an unchanged file (same hash and mod time as the last sync) is
// skipped entirely. Items absent from the file are left in place.
func (l *loader) SyncToDatabase(ctx context.Context, config *Config, repo repository.Equipment, configPath string, force bool) (*SyncResult, error) {
	log := logger.FromContext(ctx)

	fingerprint, err := fingerprintFile(configPath)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCheckFileChangeFailed, err)
	}

	if !force && !hasFileChanged(ctx, repo, fingerprint) {
		log.Info(LogMsgConfigUnchanged, "path", configPath)
		return &SyncResult{Unchanged: true}, nil
	}

	existingItems, existingEdges, err := loadSyncData(ctx, repo)
	if err != nil {
		return nil, err
	}

	result := &SyncResult{}
	var writes []domain.Equipment
	requirements := make(map[string][]domain.RequiredItem)

	for i := range config.Items {
		def := &config.Items[i]
		item := def.toDomain()
		required := def.requiredItems()

		existing, ok := existingItems[item.Slug]
		switch {
		case !ok:
			result.Inserted++
			log.Info(LogMsgInsertedItem, "slug", item.Slug)
		case needsUpdate(existing, item) || !slices.Equal(existingEdges[item.Slug], required):
			result.Updated++
			log.Info(LogMsgUpdatedItem, "slug", item.Slug)
		default:
			result.Skipped++
			continue
		}

		writes = append(writes, item)
		requirements[item.Slug] = required
	}

	if len(writes) > 0 {
		edges, err := repo.SyncEquipment(ctx, writes, requirements)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgWriteCatalogFailed, err)
		}
		result.EdgesWritten = edges
	}

	if err := repo.UpsertSyncMetadata(ctx, &domain.SyncMetadata{
		ConfigName:   ConfigFileName,
		LastSyncTime: time.Now(),
		FileHash:     fingerprint.hash,
		FileModTime:  fingerprint.modTime,
	}); err != nil {
		log.Warn(LogMsgUpdateMetadataFailed, "error", err)
	}

	log.Info(LogMsgSyncCompleted,
		"inserted", result.Inserted,
		"updated", result.Updated,
		"skipped", result.Skipped,
		"edges_written", result.EdgesWritten)

	return result, nil
}

func loadSyncData(ctx context.Context, repo repository.Equipment) (map[string]domain.Equipment, map[string][]domain.RequiredItem, error) {
	items, err := repo.GetAllEquipment(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf(ErrMsgGetExistingItemsFailed, err)
	}
	bySlug := make(map[string]domain.Equipment, len(items))
	for _, it := range items {
		bySlug[it.Slug] = it
	}

	edges, err := repo.GetAllRequirements(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf(ErrMsgGetExistingEdgesFailed, err)
	}
	byParent := make(map[string][]domain.RequiredItem)
	for _, e := range edges {
		byParent[e.ParentSlug] = append(byParent[e.ParentSlug], domain.RequiredItem{RequiredSlug: e.ChildSlug, Quantity: e.Quantity})
	}
	return bySlug, byParent, nil
}

func needsUpdate(existing, item domain.Equipment) bool {
	return existing.Name != item.Name ||
		existing.Description != item.Description ||
		existing.Rarity != item.Rarity ||
		existing.Slot != item.Slot ||
		existing.Tier != item.Tier ||
		existing.CraftGoldCost != item.CraftGoldCost ||
		existing.SellValue != item.SellValue
}

type fileFingerprint struct {
	hash    string
	modTime time.Time
}

func fingerprintFile(configPath string) (fileFingerprint, error) {
	fileInfo, err := os.Stat(configPath)
	if err != nil {
		return fileFingerprint{}, fmt.Errorf(ErrMsgStatConfigFileFailed, err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return fileFingerprint{}, fmt.Errorf(ErrMsgReadForHashFailed, err)
	}

	hash := sha256.Sum256(data)
	return fileFingerprint{hash: hex.EncodeToString(hash[:]), modTime: fileInfo.ModTime().Truncate(time.Microsecond)}, nil
}

// hasFileChanged compares the file against the last recorded sync. Missing
// or unreadable metadata counts as changed.
func hasFileChanged(ctx context.Context, repo repository.SyncMetadata, fp fileFingerprint) bool {
	syncMeta, err := repo.GetSyncMetadata(ctx, ConfigFileName)
	if err != nil {
		return true
	}
	return syncMeta.FileHash != fp.hash || !syncMeta.FileModTime.Equal(fp.modTime)
}
