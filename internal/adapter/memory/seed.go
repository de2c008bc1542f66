package memory

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/itemshelf-backend/internal/domain"
)

//go:embed default_seed.yaml
var defaultSeed []byte

// Seed is the initial dataset of a Store.
// Collection members refer to item ids as they are assigned while seeding,
// starting at 1 in the order the items are listed.
type Seed struct {
	Items       []SeedItem       `yaml:"items"`
	Collections []SeedCollection `yaml:"collections"`
}

// SeedItem is one item of a Seed.
type SeedItem struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// SeedCollection is one collection of a Seed.
type SeedCollection struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Items       []int  `yaml:"items"`
}

// DefaultSeed returns the built-in dataset: two items and one collection holding both.
func DefaultSeed() (*Seed, error) {
	return decodeSeed(defaultSeed)
}

// LoadSeed reads a Seed from a YAML file. An empty path returns the default seed.
func LoadSeed(path string) (*Seed, error) {
	if path == "" {
		return DefaultSeed()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: read %s: %w", path, err)
	}
	seed, err := decodeSeed(data)
	if err != nil {
		return nil, fmt.Errorf("seed: %s: %w", path, err)
	}
	return seed, nil
}

func decodeSeed(data []byte) (*Seed, error) {
	var seed Seed
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&seed); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := seed.Validate(); err != nil {
		return nil, err
	}
	return &seed, nil
}

// Validate checks the same presence rules the API enforces, and that
// collection members refer to seeded items without duplicates.
func (s *Seed) Validate() error {
	var errs []domain.FieldError

	for i, it := range s.Items {
		if it.Name == "" {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("items[%d].name", i), Message: "required"})
		}
		if it.Description == "" {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("items[%d].description", i), Message: "required"})
		}
	}

	for i, c := range s.Collections {
		if c.Name == "" {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("collections[%d].name", i), Message: "required"})
		}
		seen := make(map[int]struct{}, len(c.Items))
		for _, id := range c.Items {
			if id < 1 || id > len(s.Items) {
				errs = append(errs, domain.FieldError{
					Field:   fmt.Sprintf("collections[%d].items", i),
					Message: fmt.Sprintf("unknown item %d", id),
				})
			}
			if _, dup := seen[id]; dup {
				errs = append(errs, domain.FieldError{
					Field:   fmt.Sprintf("collections[%d].items", i),
					Message: fmt.Sprintf("duplicate item %d", id),
				})
			}
			seen[id] = struct{}{}
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Load validates the seed and inserts it into an empty store through the
// repositories, so seeded records get ids and timestamps the same way
// API-created ones do.
func (s *Store) Load(ctx context.Context, seed *Seed) error {
	if err := seed.Validate(); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	return NewTxManager(s).RunInTx(ctx, func(txCtx context.Context) error {
		if len(s.items) > 0 || len(s.collections) > 0 {
			return fmt.Errorf("seed: store is not empty")
		}

		items := NewItemRepo(s)
		ids := make([]int, 0, len(seed.Items))
		for _, it := range seed.Items {
			created, err := items.Create(txCtx, &domain.Item{
				Name:        it.Name,
				Description: it.Description,
			})
			if err != nil {
				return fmt.Errorf("seed item: %w", err)
			}
			ids = append(ids, created.ID)
		}

		collections := NewCollectionRepo(s)
		for _, c := range seed.Collections {
			members := make([]int, 0, len(c.Items))
			for _, pos := range c.Items {
				members = append(members, ids[pos-1])
			}
			if _, err := collections.Create(txCtx, &domain.Collection{
				Name:        c.Name,
				Description: c.Description,
				ItemIDs:     members,
			}); err != nil {
				return fmt.Errorf("seed collection: %w", err)
			}
		}

		return nil
	})
}
