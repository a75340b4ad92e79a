package utils

import (
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
)

// GenerationRecord is one row of the per-generation stats CSV
type GenerationRecord struct {
	Generation int     `csv:"generation"`
	Population int     `csv:"population"`
	Density    float64 `csv:"density_pct"`
	Period     int     `csv:"cycle_period"`
	StepMicros int64   `csv:"step_us"`
}

// StatsWriter appends GenerationRecords to a CSV stream, header first.
// A nil *StatsWriter discards everything.
type StatsWriter struct {
	w             io.Writer
	closer        io.Closer
	headerWritten bool
}

// NewStatsWriter writes CSV rows to w
func NewStatsWriter(w io.Writer) *StatsWriter {
	return &StatsWriter{w: w}
}

// CreateStatsFile creates (or truncates) path and returns a writer for it.
// Returns nil if path is empty (output disabled).
func CreateStatsFile(path string) (*StatsWriter, error) {
	if path == "" {
		return nil, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrapf(err, "[CreateStatsFile] failed to create directory: %+v", dir)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[CreateStatsFile] failed to create file: %+v", path)
	}
	return &StatsWriter{w: f, closer: f}, nil
}

// Write appends one record
func (sw *StatsWriter) Write(rec GenerationRecord) error {
	if sw == nil {
		return nil
	}
	records := []GenerationRecord{rec}
	var err error
	if !sw.headerWritten {
		err = gocsv.Marshal(records, sw.w)
		sw.headerWritten = true
	} else {
		err = gocsv.MarshalWithoutHeaders(records, sw.w)
	}
	return errors.Wrap(err, "[StatsWriter.Write] failed to write record")
}

// Close closes the underlying file, if the writer owns one
func (sw *StatsWriter) Close() error {
	if sw == nil || sw.closer == nil {
		return nil
	}
	return sw.closer.Close()
}

// ReadStats parses a stats CSV written by StatsWriter
func ReadStats(r io.Reader) ([]GenerationRecord, error) {
	var records []GenerationRecord
	if err := gocsv.Unmarshal(r, &records); err != nil {
		return nil, errors.Wrap(err, "[ReadStats] failed to parse stats")
	}
	return records, nil
}
