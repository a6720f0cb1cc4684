package item

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/tesmond/QuarterBot_Go/internal/domain"
	"github.com/tesmond/QuarterBot_Go/internal/logger"
	"github.com/tesmond/QuarterBot_Go/internal/repository"
)

// Sentinel errors for the catalog loader
var (
	ErrDuplicateID   = errors.New("duplicate item id")
	ErrDuplicateName = errors.New("duplicate item name")
	ErrInvalidConfig = errors.New("invalid catalog configuration")
)

// Config represents the JSON catalog definition file
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`
	Items       []Def  `json:"items" validate:"required,min=1,dive"`
}

// Def represents a single item definition in the JSON
type Def struct {
	ID          int    `json:"id" validate:"required,gt=0"`
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
	Category    string `json:"category" validate:"required,max=50"`
	Image       string `json:"image" validate:"omitempty,url"`
	Price       int    `json:"price" validate:"gte=0"`
	Rarity      int    `json:"rarity" validate:"gte=0,lte=4"`
}

// Loader handles loading and validating the item catalog
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
	SyncToDatabase(ctx context.Context, config *Config, repo repository.Item) (int, error)
}

type itemLoader struct {
	validate *validator.Validate
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &itemLoader{
		validate: validator.New(),
	}
}

// Load reads and parses an item catalog JSON file
func (l *itemLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}
	return &config, nil
}

// Validate checks field constraints and catalog-wide uniqueness
func (l *itemLoader) Validate(config *Config) error {
	if err := l.validate.Struct(config); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	ids := make(map[int]bool, len(config.Items))
	names := make(map[string]bool, len(config.Items))
	for _, def := range config.Items {
		if ids[def.ID] {
			return fmt.Errorf("%w: %d", ErrDuplicateID, def.ID)
		}
		if names[def.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateName, def.Name)
		}
		ids[def.ID] = true
		names[def.Name] = true
	}
	return nil
}

// SyncToDatabase validates the config and upserts all definitions
func (l *itemLoader) SyncToDatabase(ctx context.Context, config *Config, repo repository.Item) (int, error) {
	log := logger.FromContext(ctx)

	if err := l.Validate(config); err != nil {
		return 0, err
	}

	items := make([]domain.Item, 0, len(config.Items))
	for _, def := range config.Items {
		items = append(items, domain.Item{
			ID:          def.ID,
			Name:        def.Name,
			Description: def.Description,
			Category:    def.Category,
			Image:       def.Image,
			Price:       def.Price,
			Rarity:      def.Rarity,
		})
	}

	written, err := repo.UpsertItems(ctx, items)
	if err != nil {
		return 0, fmt.Errorf("failed to sync catalog: %w", err)
	}

	log.Info(LogMsgCatalogSynced, "items", written, "version", config.Version)
	return written, nil
}
