package storage

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Tiliavir/dietbook/internal/apperror"
	"github.com/Tiliavir/dietbook/internal/model"
)

// profileFields is the field count of the profile record:
// name|gender|age|height|originalWeight|currentWeight|targetWeight|fitnessLevel
const profileFields = 8

// ProfileStore persists the user profile as a single record.
type ProfileStore struct {
	path string
}

// NewProfileStore returns a store for the profile at path.
func NewProfileStore(path string) *ProfileStore {
	return &ProfileStore{path: path}
}

// Path returns the file the store reads and writes.
func (s *ProfileStore) Path() string { return s.path }

// Load reads the profile. A fitness level outside 1..5 is a corrupt record.
// A corrupt file is moved aside to Path()+".corrupt".
func (s *ProfileStore) Load() (model.Person, error) {
	records, err := readRecords(s.path, profileFields)
	if err != nil {
		return model.Person{}, backupCorrupt(s.path, err)
	}
	if len(records) != 1 {
		err := apperror.CorruptRecord(s.path, 1, fmt.Errorf("expected 1 profile record, got %d", len(records)))
		return model.Person{}, backupCorrupt(s.path, err)
	}
	people, err := decodeRecords(s.path, records, decodePerson)
	if err != nil {
		return model.Person{}, backupCorrupt(s.path, err)
	}
	return people[0], nil
}

// Save replaces the file with p.
func (s *ProfileStore) Save(p model.Person) error {
	return writeRecords(s.path, [][]string{encodePerson(p)})
}

func encodePerson(p model.Person) []string {
	return []string{
		p.Name,
		p.Gender.String(),
		strconv.Itoa(p.Age),
		strconv.Itoa(p.Height),
		strconv.Itoa(p.OriginalWeight),
		strconv.Itoa(p.CurrentWeight),
		strconv.Itoa(p.TargetWeight),
		strconv.Itoa(p.FitnessLevel.Int()),
	}
}

func decodePerson(record []string) (model.Person, error) {
	names := []string{"age", "height", "original weight", "current weight", "target weight", "fitness level"}
	ints := make([]int, len(names))
	for i, name := range names {
		v, err := strconv.Atoi(record[i+2])
		if err != nil {
			return model.Person{}, fmt.Errorf("parsing %s %q: %w", name, record[i+2], err)
		}
		ints[i] = v
	}
	level, ok := model.FitnessLevelFromInt(ints[5])
	if !ok {
		return model.Person{}, errors.New("fitness level must be between 1 and 5, got " + record[7])
	}
	return model.Person{
		Name:           record[0],
		Gender:         model.ParseGender(record[1]),
		Age:            ints[0],
		Height:         ints[1],
		OriginalWeight: ints[2],
		CurrentWeight:  ints[3],
		TargetWeight:   ints[4],
		FitnessLevel:   level,
	}, nil
}
