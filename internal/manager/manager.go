// Package manager holds the state of one dietbook session: the food log,
// the user profile, the food database and the stores they are read from.
package manager

import (
	"errors"
	"log/slog"
	"time"

	"github.com/Tiliavir/dietbook/internal/apperror"
	"github.com/Tiliavir/dietbook/internal/catalog"
	"github.com/Tiliavir/dietbook/internal/foodlist"
	"github.com/Tiliavir/dietbook/internal/model"
	"github.com/Tiliavir/dietbook/internal/storage"
	"github.com/Tiliavir/dietbook/internal/timecalc"
	"github.com/Tiliavir/dietbook/internal/ui"
)

// Status tells whether Load found any persisted state.
type Status int

const (
	FreshStart Status = iota
	Restored
)

func (s Status) String() string {
	if s == Restored {
		return "restored"
	}
	return "fresh start"
}

// FoodStore persists the food log.
type FoodStore interface {
	Load() ([]model.Entry, error)
	Save(entries []model.Entry) error
	Path() string
}

// ProfileStore persists the user profile.
type ProfileStore interface {
	Load() (model.Person, error)
	Save(p model.Person) error
	Path() string
}

// CatalogStore reads the food database.
type CatalogStore interface {
	Load() (*catalog.Catalog, error)
	Path() string
}

// Manager owns the food log, the profile and the food database for the
// lifetime of a session.
type Manager struct {
	Foods   *foodlist.FoodList
	Person  model.Person
	Catalog *catalog.Catalog

	foodStore    FoodStore
	profileStore ProfileStore
	catalogStore CatalogStore
	logger       *slog.Logger

	// Now returns the time used for entries logged without a date.
	Now func() time.Time
}

// New returns a Manager with an empty food log, the default profile and the
// built-in food database. Nothing is read until Load.
func New(foods FoodStore, profile ProfileStore, cat CatalogStore, logger *slog.Logger) *Manager {
	return &Manager{
		Foods:        foodlist.New(),
		Person:       model.DefaultPerson(),
		Catalog:      catalog.Default(),
		foodStore:    foods,
		profileStore: profile,
		catalogStore: cat,
		logger:       logger,
		Now:          timecalc.Now,
	}
}

// NewFromPaths builds a Manager backed by the file stores at the given paths.
func NewFromPaths(foodPath, profilePath, catalogPath string, logger *slog.Logger) *Manager {
	return New(storage.NewFoodLogStore(foodPath), storage.NewProfileStore(profilePath),
		storage.NewCatalogStore(catalogPath), logger)
}

// Load restores the profile, the food log and the food database. A missing
// profile or food log leaves that part empty and is announced on out. A
// corrupt file also leaves that part empty and is reported in the returned
// error; the status is still meaningful in that case. The food database only
// replaces the built-in one when its file loads, and does not affect the
// status.
func (m *Manager) Load(out ui.Sink) (Status, error) {
	status := FreshStart
	var errs []error

	person, err := m.profileStore.Load()
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		m.logger.Info("profile not found, starting with an empty profile", slog.String("path", m.profileStore.Path()))
		out.Print("No profile found in " + m.profileStore.Path() + ", creating a new one...")
	case err != nil:
		m.logger.Warn("could not load profile", slog.String("path", m.profileStore.Path()), slog.String("error", err.Error()))
		errs = append(errs, err)
	default:
		m.Person = person
		status = Restored
	}

	entries, err := m.foodStore.Load()
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		m.logger.Info("food log not found, starting with an empty food list", slog.String("path", m.foodStore.Path()))
		out.Print("No food list found in " + m.foodStore.Path() + ", creating a new one...")
	case err != nil:
		m.logger.Warn("could not load food log", slog.String("path", m.foodStore.Path()), slog.String("error", err.Error()))
		errs = append(errs, err)
	default:
		m.Foods = foodlist.FromEntries(entries)
		m.logger.Debug("food log restored", slog.Int("entries", len(entries)))
		status = Restored
	}

	cat, err := m.catalogStore.Load()
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		m.logger.Info("food database not found, using the built-in one", slog.String("path", m.catalogStore.Path()))
	case err != nil:
		m.logger.Warn("could not load food database", slog.String("path", m.catalogStore.Path()), slog.String("error", err.Error()))
		errs = append(errs, err)
	default:
		m.Catalog = cat
		m.logger.Debug("food database loaded", slog.Int("foods", cat.Size()))
	}

	return status, errors.Join(errs...)
}

// Save writes the profile and the food log.
func (m *Manager) Save() error {
	if err := m.profileStore.Save(m.Person); err != nil {
		return err
	}
	if err := m.foodStore.Save(m.Foods.Entries()); err != nil {
		return err
	}
	m.logger.Debug("state saved", slog.Int("entries", m.Foods.Size()))
	return nil
}
