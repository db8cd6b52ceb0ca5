package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"

	app "github.com/okian/podium/internal/app"
	"github.com/okian/podium/internal/config"
	"github.com/okian/podium/internal/fixtures"
	"github.com/okian/podium/pkg/logger"
	"github.com/okian/podium/pkg/metrics"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			t.Setenv("PODIUM_ADDR", ":8080")
			t.Setenv("PODIUM_REFRESH_QUEUE_SIZE", "100")
			t.Setenv("PODIUM_REFRESH_WORKERS", "2")

			convey.Convey("Then configuration should be loadable", func() {
				cfg, err := config.Load(context.Background())
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.RefreshQueueSize, convey.ShouldEqual, 100)
				convey.So(cfg.RefreshWorkers, convey.ShouldEqual, 2)
			})
		})

		convey.Convey("When applying logging settings", func() {
			cfg := config.New(context.Background())
			cfg.LogFormat = "yaml"
			cfg.LogLevel = "loud"

			convey.Convey("Then invalid values fall back without panicking", func() {
				convey.So(func() { applyLogging(context.Background(), cfg) }, convey.ShouldNotPanic)
			})
		})

		convey.Convey("When testing metrics initialization", func() {
			convey.Convey("Then metrics manager should be creatable", func() {
				convey.So(metrics.NewManager(), convey.ShouldNotBeNil)
			})
		})
	})
}

func TestMainApplicationComponents(t *testing.T) {
	convey.Convey("Given main application components", t, func() {
		convey.Convey("When testing system metrics updater", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
			defer cancel()

			convey.So(func() { startSystemMetricsUpdater(ctx) }, convey.ShouldNotPanic)
		})

		convey.Convey("When testing service metrics updater", func() {
			svc := app.New()
			ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
			defer cancel()

			convey.So(func() { startServiceMetricsUpdater(ctx, svc) }, convey.ShouldNotPanic)
		})

		convey.Convey("When testing metrics updates", func() {
			convey.So(updateSystemMetrics, convey.ShouldNotPanic)
			convey.So(func() { updateServiceMetrics(app.New()) }, convey.ShouldNotPanic)
		})
	})
}

func TestMainApplicationIntegration(t *testing.T) {
	convey.Convey("Given a service over generated fixtures", t, func() {
		ctx := context.Background()
		dir := t.TempDir()
		paths, _, err := fixtures.Write(ctx, fixtures.Config{OutDir: dir, Athletes: 60, Seed: 3})
		convey.So(err, convey.ShouldBeNil)

		cfg := config.New(ctx)
		cfg.AthletesPath = paths.Athletes
		cfg.MedallistsPath = paths.Medallists
		cfg.MedalsPath = paths.Medals

		svc := app.New(app.ConfigOptions(cfg)...)
		convey.So(svc.Start(ctx), convey.ShouldBeNil)
		defer svc.Stop()

		handler := newHandler(ctx, svc)

		convey.Convey("Then every view is served with a request ID", func() {
			for _, kind := range []string{"flow", "heatmap", "choropleth"} {
				w := httptest.NewRecorder()
				handler.ServeHTTP(w, httptest.NewRequest("GET", "/views/"+kind, nil))
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
				convey.So(w.Header().Get("ETag"), convey.ShouldNotBeEmpty)
				convey.So(w.Header().Get("X-Request-ID"), convey.ShouldNotBeEmpty)
			}
		})

		convey.Convey("And docs and landing page are routed", func() {
			for _, path := range []string{"/", "/api-docs", "/openapi.yaml", "/stats", "/healthz"} {
				w := httptest.NewRecorder()
				handler.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
			}
		})

		convey.Convey("And a malformed features file fails only the choropleth", func() {
			cfg.FeaturesPath = filepath.Join(dir, "world.geojson")
			convey.So(os.WriteFile(cfg.FeaturesPath, []byte("{not json"), 0o600), convey.ShouldBeNil)
			broken := app.New(app.ConfigOptions(cfg)...)
			convey.So(broken.Start(ctx), convey.ShouldBeNil)
			defer broken.Stop()
			h := newHandler(ctx, broken)

			for _, kind := range []string{"flow", "heatmap"} {
				w := httptest.NewRecorder()
				h.ServeHTTP(w, httptest.NewRequest("GET", "/views/"+kind, nil))
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
			}

			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest("GET", "/views/choropleth", nil))
			convey.So(w.Code, convey.ShouldEqual, http.StatusBadGateway)
			convey.So(w.Body.String(), convey.ShouldContainSubstring, "load_failed")
		})

		convey.Convey("And a missing table fails only its view", func() {
			cfg.MedallistsPath = filepath.Join(dir, "missing.csv")
			broken := app.New(app.ConfigOptions(cfg)...)
			convey.So(broken.Start(ctx), convey.ShouldBeNil)
			defer broken.Stop()
			h := newHandler(ctx, broken)

			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest("GET", "/views/flow", nil))
			convey.So(w.Code, convey.ShouldEqual, http.StatusBadGateway)

			w = httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest("GET", "/views/heatmap", nil))
			convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
		})
	})
}

func TestMainApplicationErrorHandling(t *testing.T) {
	convey.Convey("Given an invalid configuration", t, func() {
		t.Setenv("PODIUM_ADDR", "")

		convey.Convey("Then configuration loading should fail", func() {
			cfg, err := config.Load(context.Background())
			convey.So(err, convey.ShouldNotBeNil)
			convey.So(cfg, convey.ShouldBeNil)
		})

		convey.Convey("And run should report it", func() {
			convey.So(run(context.Background()), convey.ShouldNotBeNil)
		})
	})
}
