// Package fixtures generates synthetic athlete, medallist and medal tables.
package fixtures

import (
	"context"
	"encoding/csv"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/pkg/logger"
)

// File permission constants.
const (
	directoryPermission = 0o750
	filePermission      = 0o600
)

// maxMedalsPerAthlete bounds the medal rows of one medallist.
const maxMedalsPerAthlete = 3

// athleteNamespace seeds the deterministic athlete codes.
var athleteNamespace = uuid.MustParse("6f1c8f3e-2b0a-4d8e-9a57-1f0f3c9d2e41")

// Athlete is one generated person.
type Athlete struct {
	Code        string
	Given       string
	Family      string
	Country     string
	CountryLong string
	Discipline  string
}

// Name is the roster spelling, "Given Family".
func (a Athlete) Name() string { return a.Given + " " + a.Family }

// MedalName is the medals table spelling, "FAMILY Given".
func (a Athlete) MedalName() string { return strings.ToUpper(a.Family) + " " + a.Given }

// Medal is one generated medal row.
type Medal struct {
	Athlete    Athlete
	Discipline string
	MedalType  string
}

// Set is one generated dataset.
type Set struct {
	Athletes   []Athlete
	Medallists []Athlete
	Medals     []Medal
}

// Generate builds a dataset. The same Config always yields the same Set.
func Generate(cfg Config) (Set, error) {
	if cfg.MedalRate == 0 {
		cfg.MedalRate = DefaultMedalRate
	}
	if err := cfg.Validate(); err != nil {
		return Set{}, err
	}
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))

	// Draw distinct names without replacement from the name grid.
	picks := rng.Perm(MaxAthletes())[:cfg.Athletes]

	set := Set{Athletes: make([]Athlete, 0, cfg.Athletes)}
	for i, p := range picks {
		n := nations[rng.IntN(len(nations))]
		a := Athlete{
			Code:        uuid.NewSHA1(athleteNamespace, []byte(strconv.FormatUint(cfg.Seed, 10)+"/"+strconv.Itoa(i))).String(),
			Given:       givenNames[p%len(givenNames)],
			Family:      familyNames[p/len(givenNames)],
			Country:     n.code,
			CountryLong: n.long,
			Discipline:  disciplines[rng.IntN(len(disciplines))],
		}
		set.Athletes = append(set.Athletes, a)

		if rng.Float64() >= cfg.MedalRate {
			continue
		}
		set.Medallists = append(set.Medallists, a)
		for range 1 + rng.IntN(maxMedalsPerAthlete) {
			set.Medals = append(set.Medals, Medal{
				Athlete:    a,
				Discipline: a.Discipline,
				MedalType:  medalTypes[rng.IntN(len(medalTypes))],
			})
		}
	}
	return set, nil
}

// Paths are the files written by Write.
type Paths struct {
	Athletes   string
	Medallists string
	Medals     string
}

// Write generates a dataset and writes it as three CSV files under
// cfg.OutDir.
func Write(ctx context.Context, cfg Config) (Paths, Set, error) {
	set, err := Generate(cfg)
	if err != nil {
		return Paths{}, Set{}, err
	}
	if err := os.MkdirAll(cfg.OutDir, directoryPermission); err != nil {
		return Paths{}, Set{}, fmt.Errorf("%w: %w", ErrWrite, err)
	}

	paths := Paths{
		Athletes:   filepath.Join(cfg.OutDir, string(model.TableAthletes)+".csv"),
		Medallists: filepath.Join(cfg.OutDir, string(model.TableMedallists)+".csv"),
		Medals:     filepath.Join(cfg.OutDir, string(model.TableMedals)+".csv"),
	}

	rosterHeader := []string{"code", "name", "country", "country_long", "discipline"}
	rosterRow := func(a Athlete) []string {
		return []string{a.Code, a.Name(), a.Country, a.CountryLong, a.Discipline}
	}
	if err := writeCSV(paths.Athletes, rosterHeader, set.Athletes, rosterRow); err != nil {
		return Paths{}, Set{}, err
	}
	if err := writeCSV(paths.Medallists, rosterHeader, set.Medallists, rosterRow); err != nil {
		return Paths{}, Set{}, err
	}
	medalHeader := []string{"name", "discipline", "medal_type"}
	medalRow := func(m Medal) []string {
		return []string{m.Athlete.MedalName(), m.Discipline, m.MedalType}
	}
	if err := writeCSV(paths.Medals, medalHeader, set.Medals, medalRow); err != nil {
		return Paths{}, Set{}, err
	}

	logger.Get().Info(ctx, "fixtures written",
		logger.String("dir", cfg.OutDir),
		logger.Int("athletes", len(set.Athletes)),
		logger.Int("medallists", len(set.Medallists)),
		logger.Int("medals", len(set.Medals)))
	return paths, set, nil
}

func writeCSV[T any](path string, header []string, rows []T, row func(T) []string) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePermission)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrWrite, cerr)
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	for _, r := range rows {
		if err := w.Write(row(r)); err != nil {
			return fmt.Errorf("%w: %w", ErrWrite, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}
