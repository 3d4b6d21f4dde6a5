// Package catalog is the read-only food database: foods grouped by the store
// that sells them. Foods are values, so a food taken from the catalog can be
// scaled or logged without changing the catalog.
package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Tiliavir/dietbook/internal/apperror"
	"github.com/Tiliavir/dietbook/internal/model"
)

// Store is a named group of foods. The name is used to narrow lookups.
type Store struct {
	Name  string
	Foods []model.Food
}

func (s Store) clone() Store {
	return Store{Name: s.Name, Foods: slices.Clone(s.Foods)}
}

// Catalog holds stores in the order they were added.
type Catalog struct {
	stores []Store
}

// New builds a catalog from stores. The stores are copied.
func New(stores ...Store) *Catalog {
	c := &Catalog{}
	for _, s := range stores {
		c.stores = append(c.stores, s.clone())
	}
	return c
}

// Add appends food to the store called store, creating the store if needed.
// It is meant for building a catalog while loading it.
func (c *Catalog) Add(store string, food model.Food) {
	for i := range c.stores {
		if strings.EqualFold(c.stores[i].Name, store) {
			c.stores[i].Foods = append(c.stores[i].Foods, food)
			return
		}
	}
	c.stores = append(c.stores, Store{Name: store, Foods: []model.Food{food}})
}

// Stores returns a copy of every store.
func (c *Catalog) Stores() []Store {
	out := make([]Store, len(c.stores))
	for i, s := range c.stores {
		out[i] = s.clone()
	}
	return out
}

// Size returns the number of foods across all stores.
func (c *Catalog) Size() int {
	n := 0
	for _, s := range c.stores {
		n += len(s.Foods)
	}
	return n
}

// Store returns a copy of the store called name, ignoring case.
func (c *Catalog) Store(name string) (Store, error) {
	for _, s := range c.stores {
		if strings.EqualFold(s.Name, name) {
			return s.clone(), nil
		}
	}
	return Store{}, apperror.UnknownFood(fmt.Sprintf("there is no store called %q in the food database", name))
}

// Find returns the first food called name, ignoring case. A non-empty store
// restricts the search to that store.
func (c *Catalog) Find(name, store string) (model.Food, error) {
	stores := c.stores
	if store != "" {
		s, err := c.Store(store)
		if err != nil {
			return model.Food{}, err
		}
		stores = []Store{s}
	}
	for _, s := range stores {
		for _, f := range s.Foods {
			if strings.EqualFold(f.Name(), name) {
				return f, nil
			}
		}
	}
	if store != "" {
		return model.Food{}, apperror.UnknownFood(fmt.Sprintf("%q is not sold at %s", name, store))
	}
	return model.Food{}, apperror.UnknownFood(fmt.Sprintf("%q is not in the food database, give its calories with -k", name))
}
