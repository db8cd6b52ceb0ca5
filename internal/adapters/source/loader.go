// Package source reads the athlete, medallist and medals tables from CSV
// files, and map feature names from GeoJSON.
package source

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/pkg/logger"
	"github.com/okian/podium/pkg/metrics"
)

// Loader reads PersonRecord tables.
type Loader struct {
	columnAliases map[string]string
	logger        logger.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithColumnAliases maps extra canonical header names onto the known
// columns, e.g. "country_full" -> "country_long". Keys are canonicalised.
func WithColumnAliases(aliases map[string]string) Option {
	return func(l *Loader) {
		for from, to := range aliases {
			l.columnAliases[CanonicalHeader(from)] = CanonicalHeader(to)
		}
	}
}

// WithLogger sets the loader's logger.
func WithLogger(lg logger.Logger) Option {
	return func(l *Loader) {
		if lg != nil {
			l.logger = lg
		}
	}
}

// NewLoader creates a Loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		columnAliases: map[string]string{
			"athlete":      ColName,
			"athlete_name": ColName,
			"full_name":    ColName,
			"noc":          ColCountry,
			"sport":        ColDiscipline,
			"medal":        ColMedalType,
		},
		logger: logger.Get().Named("source"),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadFile reads the table stored at path.
func (l *Loader) LoadFile(ctx context.Context, table model.TableName, path string) ([]model.PersonRecord, error) {
	start := time.Now()
	f, err := os.Open(path)
	if err != nil {
		metrics.RecordSourceLoadError(string(table))
		return nil, fmt.Errorf("%w: %s: %w", ErrOpen, table, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			l.logger.Warn(ctx, "failed to close table", logger.String("path", path), logger.Error(cerr))
		}
	}()

	records, err := l.Load(ctx, table, f)
	if err != nil {
		return nil, err
	}
	took := time.Since(start)
	metrics.RecordSourceLoadLatency(string(table), float64(took.Microseconds())/1000)
	l.logger.Debug(ctx, "table loaded",
		logger.String("table", string(table)),
		logger.String("path", path),
		logger.Int("rows", len(records)),
		logger.Duration("took", took))
	return records, nil
}

// Load reads a CSV table with a header row from r. Malformed rows are
// skipped; a missing or unreadable header fails the load. ctx is checked
// between rows.
func (l *Loader) Load(ctx context.Context, table model.TableName, r io.Reader) ([]model.PersonRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		metrics.RecordSourceLoadError(string(table))
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s: empty file", ErrHeader, table)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrHeader, table, err)
	}
	cols := newColumns(header, l.columnAliases)
	if _, ok := cols[ColName]; !ok {
		metrics.RecordSourceLoadError(string(table))
		return nil, fmt.Errorf("%w: %s: no %q column", ErrHeader, table, ColName)
	}

	records := make([]model.PersonRecord, 0)
	skipped := 0
	for {
		if err := ctx.Err(); err != nil {
			metrics.RecordSourceLoadError(string(table))
			return nil, fmt.Errorf("load %s: %w", table, err)
		}
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			skipped++
			continue
		}
		if err != nil {
			metrics.RecordSourceLoadError(string(table))
			return nil, fmt.Errorf("load %s: %w", table, err)
		}
		records = append(records, model.PersonRecord{
			Name:        cols.get(rec, ColName),
			Country:     cols.get(rec, ColCountry),
			CountryLong: cols.get(rec, ColCountryLong),
			Discipline:  cols.get(rec, ColDiscipline),
			MedalType:   cols.get(rec, ColMedalType),
		})
	}

	metrics.RecordSourceRows(string(table), len(records))
	if skipped > 0 {
		metrics.RecordSourceRowsSkipped(string(table), skipped)
		l.logger.Warn(ctx, "skipped malformed rows", logger.String("table", string(table)), logger.Int("skipped", skipped))
	}
	return records, nil
}
