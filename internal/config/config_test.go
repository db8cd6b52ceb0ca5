package config_test

import (
	"context"
	"errors"
	"testing"

	"github.com/okian/podium/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New(context.Background())

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.LogFormat, convey.ShouldEqual, "text")
			convey.So(cfg.FlowTopCountries, convey.ShouldEqual, 8)
			convey.So(cfg.FlowTopDisciplines, convey.ShouldEqual, 8)
			convey.So(cfg.HeatmapTopCountries, convey.ShouldEqual, 15)
			convey.So(cfg.HeatmapTopDisciplines, convey.ShouldEqual, 15)
			convey.So(cfg.RefreshWorkers, convey.ShouldEqual, 1)
			convey.So(cfg.MedalsReversed, convey.ShouldBeTrue)
			convey.So(cfg.AthletesReversed, convey.ShouldBeFalse)
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	convey.Convey("Given invalid configs", t, func() {
		cases := []struct {
			name   string
			mutate func(*config.Config)
		}{
			{"empty addr", func(c *config.Config) { c.Addr = "" }},
			{"empty table path", func(c *config.Config) { c.MedalsPath = "" }},
			{"zero flow top", func(c *config.Config) { c.FlowTopDisciplines = 0 }},
			{"zero heatmap top", func(c *config.Config) { c.HeatmapTopCountries = 0 }},
			{"zero workers", func(c *config.Config) { c.RefreshWorkers = 0 }},
			{"bad log format", func(c *config.Config) { c.LogFormat = "xml" }},
		}
		for _, tc := range cases {
			convey.Convey("Then "+tc.name+" is rejected", func() {
				cfg := config.New(context.Background())
				tc.mutate(cfg)
				err := cfg.Validate()
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		}
	})
}
