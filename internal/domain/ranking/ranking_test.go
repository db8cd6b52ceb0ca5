package ranking_test

import (
	"testing"

	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/ranking"
	"github.com/okian/podium/internal/domain/tally"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTopK(t *testing.T) {
	Convey("Given tied and untied entries", t, func() {
		entries := []tally.Entry{{Key: "a", Count: 3}, {Key: "b", Count: 5}, {Key: "c", Count: 3}}

		Convey("When k is 2", func() {
			got := ranking.TopK(entries, 2)
			Convey("Then the largest come first and ties keep input order", func() {
				So(got, ShouldResemble, []string{"b", "a"})
			})
			Convey("And the input is untouched", func() {
				So(entries, ShouldResemble, []tally.Entry{{Key: "a", Count: 3}, {Key: "b", Count: 5}, {Key: "c", Count: 3}})
			})
		})

		Convey("When k exceeds the input", func() {
			So(ranking.TopK(entries, 10), ShouldResemble, []string{"b", "a", "c"})
		})

		Convey("When k is not positive", func() {
			So(ranking.TopK(entries, 0), ShouldBeEmpty)
			So(ranking.TopK(entries, -1), ShouldNotBeNil)
		})
	})

	Convey("Given no entries", t, func() {
		got := ranking.TopK(nil, 3)
		So(got, ShouldNotBeNil)
		So(got, ShouldBeEmpty)
	})
}

func TestBoth(t *testing.T) {
	Convey("Given top sets for two dimensions", t, func() {
		countries := ranking.NewSet([]string{"X"})
		disciplines := ranking.NewSet([]string{"A"})
		records := []model.JoinedRecord{
			{Country: "X", Discipline: "A"},
			{Country: "X", Discipline: "B"},
			{Country: "Y", Discipline: "A"},
		}

		Convey("Then only records in both sets survive", func() {
			got := ranking.Both(records,
				func(r model.JoinedRecord) string { return r.Country }, countries,
				func(r model.JoinedRecord) string { return r.Discipline }, disciplines)
			So(got, ShouldResemble, []model.JoinedRecord{{Country: "X", Discipline: "A"}})
		})
	})
}
