package storage

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Tiliavir/dietbook/internal/catalog"
	"github.com/Tiliavir/dietbook/internal/model"
)

// catalogFields is the field count of a food database record:
// store|name|calorie|carbohydrate|protein|fat
const catalogFields = 6

// CatalogStore reads the food database. It is never written.
type CatalogStore struct {
	path string
}

// NewCatalogStore returns a store for the food database at path.
func NewCatalogStore(path string) *CatalogStore {
	return &CatalogStore{path: path}
}

// Path returns the file the store reads.
func (s *CatalogStore) Path() string { return s.path }

// Load reads the food database, keeping stores in order of first appearance.
// Missing and corrupt files are reported like the other stores, but a
// corrupt file is left in place.
func (s *CatalogStore) Load() (*catalog.Catalog, error) {
	records, err := readRecords(s.path, catalogFields)
	if err != nil {
		return nil, err
	}
	type item struct {
		store string
		food  model.Food
	}
	items, err := decodeRecords(s.path, records, func(fields []string) (item, error) {
		if fields[0] == "" {
			return item{}, errors.New("store name must not be empty")
		}
		food, err := decodeFood(fields[1:])
		return item{store: fields[0], food: food}, err
	})
	if err != nil {
		return nil, err
	}

	c := catalog.New()
	for _, it := range items {
		c.Add(it.store, it.food)
	}
	return c, nil
}

// decodeFood decodes name|calorie|carbohydrate|protein|fat.
func decodeFood(fields []string) (model.Food, error) {
	macros := make([]decimal.Decimal, 4)
	for i := range macros {
		v, err := decimal.NewFromString(fields[i+1])
		if err != nil {
			return model.Food{}, fmt.Errorf("parsing macro %q: %w", fields[i+1], err)
		}
		macros[i] = v
	}
	return model.NewFood(fields[0], macros[0], macros[1], macros[2], macros[3])
}
