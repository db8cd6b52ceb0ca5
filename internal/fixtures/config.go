package fixtures

import "errors"

// Defaults for generated tables.
const (
	DefaultAthletes  = 500
	DefaultMedalRate = 0.3
)

// Sentinel errors.
var (
	ErrInvalidConfig = errors.New("invalid fixtures config")
	ErrWrite         = errors.New("write fixtures failed")
)

// Config holds the generator settings.
type Config struct {
	OutDir    string  // directory the CSV files are written to
	Athletes  int     // number of distinct athletes
	Seed      uint64  // same seed, same tables
	MedalRate float64 // share of athletes that win at least one medal
}

// Validate checks the generator settings.
func (c Config) Validate() error {
	switch {
	case c.Athletes < 1:
		return errors.Join(ErrInvalidConfig, errors.New("athletes must be >= 1"))
	case c.Athletes > MaxAthletes():
		return errors.Join(ErrInvalidConfig, errors.New("athletes exceeds the name pool"))
	case c.MedalRate < 0 || c.MedalRate > 1:
		return errors.Join(ErrInvalidConfig, errors.New("medal rate must be within [0,1]"))
	}
	return nil
}
