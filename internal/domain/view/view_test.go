package view_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/okian/podium/internal/domain/country"
	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/types"
	"github.com/okian/podium/internal/domain/view"
	. "github.com/smartystreets/goconvey/convey"
)

func roster() []model.PersonRecord {
	return []model.PersonRecord{
		{Name: "Jane Doe", Country: "USA"},
		{Name: "John Roe", Country: "FRA", CountryLong: "France"},
		{Name: "Ana Lima", Country: "Brazil"},
		{Name: "Nobody Here"},
	}
}

func medals() []model.PersonRecord {
	return []model.PersonRecord{
		{Name: "Doe Jane", Discipline: "Fencing", MedalType: "Gold Medal"},
		{Name: "Doe Jane", Discipline: "Fencing", MedalType: "Silver Medal"},
		{Name: "Doe Jane", Discipline: "Judo", MedalType: "Gold Medal"},
		{Name: "Roe John", Discipline: "Fencing", MedalType: "Bronze Medal"},
		{Name: "Lima Ana", Discipline: "Judo"},
		{Name: "Lima Ana"},
		{Name: "Here Nobody", Discipline: "Judo", MedalType: "Gold Medal"},
		{Name: "Ghost Rider", Discipline: "Rowing", MedalType: "Gold Medal"},
	}
}

func TestParseKind(t *testing.T) {
	Convey("Given view names", t, func() {
		k, err := view.ParseKind("heatmap")
		So(err, ShouldBeNil)
		So(k, ShouldEqual, view.KindHeatmap)

		_, err = view.ParseKind("pie")
		So(errors.Is(err, view.ErrUnknownKind), ShouldBeTrue)
	})

	Convey("Given each kind", t, func() {
		r, m := view.KindFlow.Tables()
		So(r, ShouldEqual, model.TableMedallists)
		So(m, ShouldEqual, model.TableMedals)
		r, _ = view.KindChoropleth.Tables()
		So(r, ShouldEqual, model.TableAthletes)
	})
}

func TestFlow(t *testing.T) {
	Convey("Given a medallist roster and a medals table", t, func() {
		opts := view.DefaultOptions()

		Convey("When the flow view is computed", func() {
			got := view.Flow(roster(), medals(), opts)

			Convey("Then edges chain country to discipline to medal", func() {
				So(got.Countries, ShouldResemble, []string{"United States of America", "France"})
				So(got.Disciplines, ShouldResemble, []string{"Fencing", "Judo"})
				So(got.Edges, ShouldResemble, []types.Edge{
					{Source: "United States of America", Target: "Fencing", Weight: 2},
					{Source: "United States of America", Target: "Judo", Weight: 1},
					{Source: "France", Target: "Fencing", Weight: 1},
					{Source: "Fencing", Target: "Gold Medal", Weight: 1},
					{Source: "Fencing", Target: "Silver Medal", Weight: 1},
					{Source: "Fencing", Target: "Bronze Medal", Weight: 1},
					{Source: "Judo", Target: "Gold Medal", Weight: 1},
				})
			})
		})

		Convey("When both dimensions are narrowed to one", func() {
			opts.FlowTopCountries = 1
			opts.FlowTopDisciplines = 1
			got := view.Flow(roster(), medals(), opts)

			Convey("Then only records in both top sets remain", func() {
				So(got.Edges, ShouldResemble, []types.Edge{
					{Source: "United States of America", Target: "Fencing", Weight: 2},
					{Source: "Fencing", Target: "Gold Medal", Weight: 1},
					{Source: "Fencing", Target: "Silver Medal", Weight: 1},
				})
			})
		})
	})
}

func TestHeatmap(t *testing.T) {
	Convey("Given an athlete roster and a medals table", t, func() {
		opts := view.DefaultOptions()
		got := view.Heatmap(roster(), medals(), opts)

		Convey("Then rows and cols follow top-K order", func() {
			So(got.Rows, ShouldResemble, []string{"United States of America", "France", "Brazil"})
			So(got.Cols, ShouldResemble, []string{"Fencing", "Judo"})
		})

		Convey("Then cells hold the pair counts", func() {
			So(got.Cells, ShouldResemble, []types.Cell{
				{Row: "United States of America", Col: "Fencing", Value: 2},
				{Row: "United States of America", Col: "Judo", Value: 1},
				{Row: "France", Col: "Fencing", Value: 1},
				{Row: "Brazil", Col: "Judo", Value: 1},
			})
		})
	})

	Convey("Given a conjunctive top-K of one", t, func() {
		opts := view.DefaultOptions()
		opts.HeatmapTopCountries = 1
		opts.HeatmapTopDisciplines = 1
		rows := []model.PersonRecord{
			{Name: "A One", Country: "X"},
			{Name: "B Two", Country: "Y"},
		}
		med := []model.PersonRecord{
			{Name: "One A", Discipline: "P"},
			{Name: "One A", Discipline: "P"},
			{Name: "One A", Discipline: "Q"},
			{Name: "Two B", Discipline: "P"},
		}
		got := view.Heatmap(rows, med, opts)

		Convey("Then a record must pass both filters", func() {
			So(got.Cells, ShouldResemble, []types.Cell{{Row: "X", Col: "P", Value: 2}})
		})
	})
}

func TestChoropleth(t *testing.T) {
	Convey("Given an athlete roster and a medals table", t, func() {
		opts := view.DefaultOptions()

		Convey("When no features are supplied", func() {
			got := view.Choropleth(roster(), medals(), opts)

			Convey("Then every matched country is counted", func() {
				So(got.Counts, ShouldResemble, map[string]int{
					"United States of America": 3,
					"France":                   1,
					"Brazil":                   2,
				})
				So(got.Features, ShouldBeNil)
			})
		})

		Convey("When features are supplied", func() {
			opts.Features = []string{"France", "Germany", "United States of America"}
			got := view.Choropleth(roster(), medals(), opts)

			Convey("Then features without data are flagged, not dropped", func() {
				So(got.Features, ShouldResemble, []types.FeatureValue{
					{Name: "France", Value: 1, HasData: true},
					{Name: "Germany", Value: 0, HasData: false},
					{Name: "United States of America", Value: 3, HasData: true},
				})
			})

			Convey("And counts keep countries with no feature", func() {
				So(got.Counts, ShouldContainKey, "Brazil")
			})
		})

		Convey("When extra aliases are configured", func() {
			opts.Aliaser = country.New(map[string]string{"Brazil": "Brasil"})
			got := view.Choropleth(roster(), medals(), opts)
			So(got.Counts, ShouldContainKey, "Brasil")
		})
	})
}

func TestCompute(t *testing.T) {
	Convey("Given the same tables twice", t, func() {
		tables := model.Tables{Athletes: roster(), Medallists: roster(), Medals: medals()}
		opts := view.DefaultOptions()

		for _, k := range view.Kinds {
			Convey(fmt.Sprintf("Then %s is idempotent", k), func() {
				a, err := view.Compute(k, tables, opts)
				So(err, ShouldBeNil)
				b, err := view.Compute(k, tables, opts)
				So(err, ShouldBeNil)
				So(a, ShouldResemble, b)
			})
		}
	})

	Convey("Given empty tables", t, func() {
		opts := view.DefaultOptions()
		opts.Features = []string{"France"}

		Convey("Then every view is empty but non-nil", func() {
			flow, err := view.Compute(view.KindFlow, model.Tables{}, opts)
			So(err, ShouldBeNil)
			So(flow.(types.FlowView).Edges, ShouldNotBeNil)
			So(flow.(types.FlowView).Edges, ShouldBeEmpty)
			So(flow.(types.FlowView).Countries, ShouldBeEmpty)

			heat, _ := view.Compute(view.KindHeatmap, model.Tables{}, opts)
			So(heat.(types.HeatmapView).Cells, ShouldNotBeNil)
			So(heat.(types.HeatmapView).Rows, ShouldBeEmpty)

			choro, _ := view.Compute(view.KindChoropleth, model.Tables{}, opts)
			So(choro.(types.ChoroplethView).Counts, ShouldNotBeNil)
			So(choro.(types.ChoroplethView).Counts, ShouldBeEmpty)
			So(choro.(types.ChoroplethView).Features, ShouldResemble, []types.FeatureValue{{Name: "France"}})
		})
	})

	Convey("Given an unknown kind", t, func() {
		_, err := view.Compute(view.Kind("pie"), model.Tables{}, view.DefaultOptions())
		So(errors.Is(err, view.ErrUnknownKind), ShouldBeTrue)
	})
}
