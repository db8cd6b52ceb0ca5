// Package config defines service configuration structures and loading hooks.
//
// Conventions:
//   - New(ctx) returns a Config holding every default.
//   - Load(ctx) layers an optional YAML file and PODIUM_* env vars on top.
//   - Validate reports problems wrapped in ErrInvalidConfig.
package config

import (
	"context"
	"fmt"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// Input tables.
	AthletesPath   string `koanf:"athletes_path"`
	MedallistsPath string `koanf:"medallists_path"`
	MedalsPath     string `koanf:"medals_path"`

	// FeaturesPath optionally points to a GeoJSON FeatureCollection whose
	// feature names drive the choropleth "no data" list.
	FeaturesPath        string `koanf:"features_path"`
	FeatureNameProperty string `koanf:"feature_name_property"`

	// Name order per table: true when names are stored "Last First".
	AthletesReversed   bool `koanf:"athletes_reversed"`
	MedallistsReversed bool `koanf:"medallists_reversed"`
	MedalsReversed     bool `koanf:"medals_reversed"`

	// Top-K sizes.
	FlowTopCountries      int `koanf:"flow_top_countries"`
	FlowTopDisciplines    int `koanf:"flow_top_disciplines"`
	HeatmapTopCountries   int `koanf:"heatmap_top_countries"`
	HeatmapTopDisciplines int `koanf:"heatmap_top_disciplines"`

	// RefreshQueueSize bounds the background refresh queue.
	RefreshQueueSize int `koanf:"refresh_queue_size"`

	// RefreshWorkers sets the number of refresh workers. One keeps view
	// computations sequential.
	RefreshWorkers int `koanf:"refresh_workers"`

	// PendingRefreshLimit caps the pending-refresh set.
	PendingRefreshLimit int `koanf:"pending_refresh_limit"`

	// CountryAliases extend or override the built-in country alias table.
	CountryAliases map[string]string `koanf:"country_aliases"`

	// ColumnAliases map extra CSV header names onto the known columns.
	ColumnAliases map[string]string `koanf:"column_aliases"`
}

// New creates a Config holding the defaults. Context is accepted first to
// satisfy the project-wide convention and is currently unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:              "info",
		LogFormat:             "text",
		Addr:                  ":9080",
		AthletesPath:          "data/athletes.csv",
		MedallistsPath:        "data/medallists.csv",
		MedalsPath:            "data/medals.csv",
		FeatureNameProperty:   "name",
		MedalsReversed:        true,
		FlowTopCountries:      8,
		FlowTopDisciplines:    8,
		HeatmapTopCountries:   15,
		HeatmapTopDisciplines: 15,
		RefreshQueueSize:      16,
		RefreshWorkers:        1,
		PendingRefreshLimit:   64,
		CountryAliases:        map[string]string{},
		ColumnAliases:         map[string]string{},
	}
}

// Validate checks the values Load cannot coerce.
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.AthletesPath == "" || c.MedallistsPath == "" || c.MedalsPath == "":
		return fmt.Errorf("%w: table paths must not be empty", ErrInvalidConfig)
	case c.FlowTopCountries < 1 || c.FlowTopDisciplines < 1:
		return fmt.Errorf("%w: flow top-k must be at least 1", ErrInvalidConfig)
	case c.HeatmapTopCountries < 1 || c.HeatmapTopDisciplines < 1:
		return fmt.Errorf("%w: heatmap top-k must be at least 1", ErrInvalidConfig)
	case c.RefreshQueueSize < 1 || c.RefreshWorkers < 1 || c.PendingRefreshLimit < 1:
		return fmt.Errorf("%w: refresh sizes must be at least 1", ErrInvalidConfig)
	case c.LogFormat != "text" && c.LogFormat != "json":
		return fmt.Errorf("%w: log_format must be text or json", ErrInvalidConfig)
	}
	return nil
}
