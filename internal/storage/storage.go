// Package storage persists the food log and the user profile as
// line-oriented, '|'-delimited text files.
package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Tiliavir/dietbook/internal/apperror"
)

// fieldSeparator delimits the fields of one record.
const fieldSeparator = '|'

// record is one decoded line of a data file.
type record struct {
	line   int
	fields []string
}

// readRecords reads every record of the file at path. Each record must have
// exactly fields fields.
func readRecords(path string, fields int) ([]record, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, apperror.NotFound(path)
	}
	if err != nil {
		return nil, fmt.Errorf("storage error reading %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = fieldSeparator
	r.FieldsPerRecord = -1

	var records []record
	for {
		fs, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, apperror.CorruptRecord(path, perr.Line, perr.Err)
			}
			return nil, fmt.Errorf("storage error reading %s: %w", path, err)
		}
		line, _ := r.FieldPos(0)
		if len(fs) != fields {
			return nil, apperror.CorruptRecord(path, line, fmt.Errorf("expected %d fields, got %d", fields, len(fs)))
		}
		records = append(records, record{line: line, fields: fs})
	}
	return records, nil
}

// decodeRecords decodes every record, reporting the first failure with the
// record's line number.
func decodeRecords[T any](path string, records []record, decode func(fields []string) (T, error)) ([]T, error) {
	out := make([]T, 0, len(records))
	for _, rec := range records {
		v, err := decode(rec.fields)
		if err != nil {
			return nil, apperror.CorruptRecord(path, rec.line, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// backupCorrupt moves a file that failed to decode to path+".corrupt", so a
// later save starts from an empty file instead of overwriting the user's data.
// Errors other than corrupt records are returned unchanged.
func backupCorrupt(path string, err error) error {
	if !errors.Is(err, apperror.ErrCorruptRecord) {
		return err
	}
	backupPath := path + ".corrupt"
	if rerr := os.Rename(path, backupPath); rerr != nil {
		return fmt.Errorf("%w (backup to %s failed: %v)", err, backupPath, rerr)
	}
	return fmt.Errorf("%w (backed up to %s)", err, backupPath)
}

// writeRecords atomically replaces the file at path with records.
func writeRecords(path string, records [][]string) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("storage error creating directories: %w", err)
		}
	}

	// Atomic write: write to temp file then rename.
	tmpPath := path + ".tmp"
	f, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("storage error closing temp file: %w", cerr)
		}
		if err != nil {
			_ = os.Remove(tmpPath)
			return
		}
		if rerr := os.Rename(tmpPath, path); rerr != nil {
			_ = os.Remove(tmpPath)
			err = fmt.Errorf("storage error renaming temp file: %w", rerr)
		}
	}()

	w := csv.NewWriter(f)
	w.Comma = fieldSeparator
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("storage error writing %s: %w", path, err)
	}
	return nil
}
