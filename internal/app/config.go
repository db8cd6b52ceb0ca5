package service

import (
	"github.com/okian/podium/internal/config"
	"github.com/okian/podium/internal/domain/country"
	"github.com/okian/podium/internal/domain/view"
)

// ConfigOptions translates a loaded Config into Service options.
func ConfigOptions(cfg *config.Config) []Option {
	return []Option{
		WithTablePaths(cfg.AthletesPath, cfg.MedallistsPath, cfg.MedalsPath),
		WithFeatures(cfg.FeaturesPath, cfg.FeatureNameProperty),
		WithColumnAliases(cfg.ColumnAliases),
		WithViewOptions(view.Options{
			Aliaser:               country.New(cfg.CountryAliases),
			AthletesReversed:      cfg.AthletesReversed,
			MedallistsReversed:    cfg.MedallistsReversed,
			MedalsReversed:        cfg.MedalsReversed,
			FlowTopCountries:      cfg.FlowTopCountries,
			FlowTopDisciplines:    cfg.FlowTopDisciplines,
			HeatmapTopCountries:   cfg.HeatmapTopCountries,
			HeatmapTopDisciplines: cfg.HeatmapTopDisciplines,
		}),
		WithWorkerCount(cfg.RefreshWorkers),
		WithQueueSize(cfg.RefreshQueueSize),
		WithPendingLimit(cfg.PendingRefreshLimit),
	}
}
