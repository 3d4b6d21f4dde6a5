package apperror

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorsIs(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
	}{
		{"NotFound wraps ErrNotFound", NotFound("FoodList.txt"), ErrNotFound, true},
		{"NotFound matches fs.ErrNotExist", NotFound("FoodList.txt"), fs.ErrNotExist, true},
		{"InvalidEntry wraps ErrInvalidEntry", InvalidEntry("portion", "bad portion"), ErrInvalidEntry, true},
		{"IndexOutOfRange wraps ErrIndexOutOfRange", IndexOutOfRange(5, 3), ErrIndexOutOfRange, true},
		{"CorruptRecord wraps ErrCorruptRecord", CorruptRecord("f", 1, errors.New("x")), ErrCorruptRecord, true},
		{"InvalidRange wraps ErrInvalidRange", InvalidRange("bad"), ErrInvalidRange, true},
		{"UndatedEntry wraps ErrUndatedEntry", UndatedEntry(2), ErrUndatedEntry, true},
		{"UnknownFood wraps ErrUnknownFood", UnknownFood("no such food"), ErrUnknownFood, true},
		{"InvalidInput does NOT match ErrNotFound", InvalidInput("huh"), ErrNotFound, false},
		{"IndexOutOfRange does NOT match ErrInvalidEntry", IndexOutOfRange(0, 0), ErrInvalidEntry, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMatch, errors.Is(tt.err, tt.target))
		})
	}
}

func TestCorruptRecordKeepsCause(t *testing.T) {
	cause := errors.New("expected 7 fields, got 3")
	err := CorruptRecord("FoodList.txt", 4, cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "corrupt record in FoodList.txt line 4: expected 7 fields, got 3", err.Error())
}

func TestCorruptRecordMatchesCauseSentinel(t *testing.T) {
	err := CorruptRecord("FoodList.txt", 2, InvalidEntry("calorie", "calorie must not be negative"))

	assert.ErrorIs(t, err, ErrCorruptRecord)
	assert.ErrorIs(t, err, ErrInvalidEntry)
	assert.NotErrorIs(t, err, ErrInvalidInput)
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name        string
		err         *AppError
		wantMessage string
	}{
		{"NotFound names the file", NotFound("UserInfo.txt"), "file UserInfo.txt not found"},
		{"IndexOutOfRange names index and size", IndexOutOfRange(5, 3), "index 5 is out of range, the list has 3 entries"},
		{"InvalidEntry uses custom message", InvalidEntry("portion", "portion must be at least 1"), "portion must be at least 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMessage, tt.err.Error())
		})
	}
}

func TestInvalidEntryField(t *testing.T) {
	err := InvalidEntry("calorie", "calorie must not be negative")
	assert.Equal(t, "calorie", err.Field)
}
