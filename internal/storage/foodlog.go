package storage

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Tiliavir/dietbook/internal/model"
)

// foodLogFields is the field count of a food log record:
// name|calorie|carbohydrate|protein|fat|portion|datetime
const foodLogFields = 7

// FoodLogStore persists food entries to one file. An empty datetime field
// marks a plain entry.
type FoodLogStore struct {
	path string
}

// NewFoodLogStore returns a store for the food log at path.
func NewFoodLogStore(path string) *FoodLogStore {
	return &FoodLogStore{path: path}
}

// Path returns the file the store reads and writes.
func (s *FoodLogStore) Path() string { return s.path }

// Load reads all entries. It returns an apperror.ErrNotFound error if the
// file does not exist and an apperror.ErrCorruptRecord error if any line
// cannot be decoded; no entries are returned in either case. A corrupt file
// is moved aside to Path()+".corrupt".
func (s *FoodLogStore) Load() ([]model.Entry, error) {
	records, err := readRecords(s.path, foodLogFields)
	if err != nil {
		return nil, backupCorrupt(s.path, err)
	}
	entries, err := decodeRecords(s.path, records, decodeEntry)
	if err != nil {
		return nil, backupCorrupt(s.path, err)
	}
	return entries, nil
}

// Save replaces the file with entries, one per line.
func (s *FoodLogStore) Save(entries []model.Entry) error {
	records := make([][]string, 0, len(entries))
	for _, e := range entries {
		records = append(records, encodeEntry(e))
	}
	return writeRecords(s.path, records)
}

func encodeEntry(e model.Entry) []string {
	f := e.Food()
	at := ""
	if d, ok := e.(model.DatedEntry); ok {
		at = d.DateTime().Format(model.DateTimeLayout)
	}
	return []string{
		f.Name(),
		f.Calorie().String(),
		f.Carbohydrate().String(),
		f.Protein().String(),
		f.Fat().String(),
		strconv.Itoa(e.PortionSize()),
		at,
	}
}

func decodeEntry(record []string) (model.Entry, error) {
	food, err := decodeFood(record[:5])
	if err != nil {
		return nil, err
	}

	portion, err := strconv.Atoi(record[5])
	if err != nil {
		return nil, fmt.Errorf("parsing portion %q: %w", record[5], err)
	}

	if record[6] == "" {
		return model.NewPlainEntry(food, portion)
	}
	at, err := time.ParseInLocation(model.DateTimeLayout, record[6], time.Local)
	if err != nil {
		return nil, fmt.Errorf("parsing date %q: %w", record[6], err)
	}
	return model.NewDatedEntry(food, portion, at)
}
