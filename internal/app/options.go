package service

import (
	"github.com/okian/podium/internal/domain/view"
	"github.com/okian/podium/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithTablePaths sets the CSV files of the three input tables.
func WithTablePaths(athletes, medallists, medals string) Option {
	return func(s *Service) {
		if athletes != "" {
			s.athletesPath = athletes
		}
		if medallists != "" {
			s.medallistsPath = medallists
		}
		if medals != "" {
			s.medalsPath = medals
		}
	}
}

// WithFeatures sets the GeoJSON file whose feature names feed the
// choropleth, and the property holding each name.
func WithFeatures(path, property string) Option {
	return func(s *Service) {
		s.featuresPath = path
		if property != "" {
			s.featureProperty = property
		}
	}
}

// WithViewOptions sets the pipeline options. When WithFeatures names a file,
// its feature names replace opts.Features on every choropleth compute.
func WithViewOptions(opts view.Options) Option {
	return func(s *Service) {
		s.viewOpts = opts
	}
}

// WithColumnAliases maps extra CSV header names onto the known columns.
func WithColumnAliases(aliases map[string]string) Option {
	return func(s *Service) {
		s.columnAliases = aliases
	}
}

// WithWorkerCount sets the number of refresh workers.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithQueueSize sets the capacity of the refresh queue.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithPendingLimit caps the number of distinct pending refreshes tracked.
func WithPendingLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.pendingLimit = limit
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}
