package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/okian/podium/internal/domain/types"
)

// execute runs the root command with args and returns stdout.
func execute(args ...string) (string, error) {
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestFixturesCommand(t *testing.T) {
	convey.Convey("Given the fixtures command", t, func() {
		dir := t.TempDir()

		convey.Convey("When generating tables", func() {
			out, err := execute("fixtures", "--out", dir, "--athletes", "40", "--seed", "9")

			convey.Convey("Then the three CSV files are written and listed", func() {
				convey.So(err, convey.ShouldBeNil)
				for _, name := range []string{"athletes.csv", "medallists.csv", "medals.csv"} {
					path := filepath.Join(dir, name)
					convey.So(out, convey.ShouldContainSubstring, path)
					_, statErr := os.Stat(path)
					convey.So(statErr, convey.ShouldBeNil)
				}
			})
		})

		convey.Convey("When the athlete count is invalid", func() {
			_, err := execute("fixtures", "--out", dir, "--athletes", "0")

			convey.Convey("Then the command fails", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})
	})
}

func TestExportCommand(t *testing.T) {
	convey.Convey("Given generated tables", t, func() {
		data := t.TempDir()
		_, err := execute("fixtures", "--out", data, "--athletes", "80", "--seed", "5")
		convey.So(err, convey.ShouldBeNil)

		out := t.TempDir()
		tableFlags := []string{
			"--athletes", filepath.Join(data, "athletes.csv"),
			"--medallists", filepath.Join(data, "medallists.csv"),
			"--medals", filepath.Join(data, "medals.csv"),
			"--out", out,
		}

		convey.Convey("When exporting every view", func() {
			stdout, err := execute(append([]string{"export"}, tableFlags...)...)

			convey.Convey("Then one JSON file per view is written", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(strings.Count(stdout, "\n"), convey.ShouldEqual, 3)

				body, readErr := os.ReadFile(filepath.Join(out, "choropleth.json"))
				convey.So(readErr, convey.ShouldBeNil)
				var choropleth types.ChoroplethView
				convey.So(json.Unmarshal(body, &choropleth), convey.ShouldBeNil)
				convey.So(choropleth.Counts, convey.ShouldNotBeEmpty)
			})
		})

		convey.Convey("When exporting one view", func() {
			_, err := execute(append([]string{"export", "--view", "heatmap"}, tableFlags...)...)

			convey.Convey("Then only that file is written", func() {
				convey.So(err, convey.ShouldBeNil)
				entries, _ := os.ReadDir(out)
				convey.So(entries, convey.ShouldHaveLength, 1)
				convey.So(entries[0].Name(), convey.ShouldEqual, "heatmap.json")
			})
		})

		convey.Convey("When the view name is unknown", func() {
			_, err := execute(append([]string{"export", "--view", "sankey"}, tableFlags...)...)

			convey.Convey("Then the command fails", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When the features file is malformed", func() {
			features := filepath.Join(data, "world.geojson")
			convey.So(os.WriteFile(features, []byte("{not json"), 0o600), convey.ShouldBeNil)
			flags := append([]string{"export", "--view", "flow", "--features", features}, tableFlags...)
			_, err := execute(flags...)

			convey.Convey("Then views that do not use it still export", func() {
				convey.So(err, convey.ShouldBeNil)
				_, flowErr := os.Stat(filepath.Join(out, "flow.json"))
				convey.So(flowErr, convey.ShouldBeNil)
			})
		})

		convey.Convey("When one table is missing", func() {
			flags := append([]string{"export"}, tableFlags...)
			// The last --medallists wins.
			flags = append(flags, "--medallists", filepath.Join(data, "nope.csv"))
			_, err := execute(flags...)

			convey.Convey("Then the other views are still written", func() {
				convey.So(err, convey.ShouldNotBeNil)
				_, heatErr := os.Stat(filepath.Join(out, "heatmap.json"))
				convey.So(heatErr, convey.ShouldBeNil)
				_, flowErr := os.Stat(filepath.Join(out, "flow.json"))
				convey.So(os.IsNotExist(flowErr), convey.ShouldBeTrue)
			})
		})
	})
}

func TestExportKinds(t *testing.T) {
	convey.Convey("Given the view flag resolver", t, func() {
		all, err := exportKinds("all")
		convey.So(err, convey.ShouldBeNil)
		convey.So(all, convey.ShouldHaveLength, 3)

		one, err := exportKinds("flow")
		convey.So(err, convey.ShouldBeNil)
		convey.So(one, convey.ShouldHaveLength, 1)
	})
}
