package chart_test

import (
	"testing"
	"time"

	"github.com/irosadie/fifa-ranking/internal/domain/align"
	"github.com/irosadie/fifa-ranking/internal/domain/chart"
	"github.com/irosadie/fifa-ranking/internal/domain/datekey"
	"github.com/irosadie/fifa-ranking/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestBuild(t *testing.T) {
	Convey("Given an ascending axis for USA and BRA", t, func() {
		history := model.History{
			"USA": {
				{CountryCode: "USA", Rank: 5, PublishedAt: day("2024-01-01")},
				{CountryCode: "USA", Rank: 3, PublishedAt: day("2024-06-01")},
			},
			"BRA": {
				{CountryCode: "BRA", Rank: 1, PublishedAt: day("2024-06-01")},
			},
		}
		axis := align.Align(history, align.Ascending)
		names := map[string]string{"USA": "United States"}

		data := chart.Build(axis, []string{"USA", "BRA"}, names)

		Convey("Labels are the ascending axis", func() {
			So(data.Labels, ShouldResemble, []datekey.Key{"2024-01-01", "2024-06-01"})
		})

		Convey("Series follow selection order", func() {
			So(data.Series, ShouldHaveLength, 2)
			So(data.Series[0].Code, ShouldEqual, "USA")
			So(data.Series[1].Code, ShouldEqual, "BRA")
		})

		Convey("Known names join the label, unknown fall back to the code", func() {
			So(data.Series[0].Label, ShouldEqual, "United States (USA)")
			So(data.Series[1].Label, ShouldEqual, "BRA")
		})

		Convey("Missing observations are gaps, never zeros", func() {
			usa := data.Series[0].Values
			So(*usa[0], ShouldEqual, 5)
			So(*usa[1], ShouldEqual, 3)

			bra := data.Series[1].Values
			So(bra[0], ShouldBeNil)
			So(*bra[1], ShouldEqual, 1)
		})

		Convey("Building twice yields identical data", func() {
			again := chart.Build(axis, []string{"USA", "BRA"}, names)
			So(again, ShouldResemble, data)
		})
	})

	Convey("Given an empty selection", t, func() {
		data := chart.Build(align.Align(model.History{}, align.Ascending), nil, nil)
		So(data.Labels, ShouldBeEmpty)
		So(data.Series, ShouldBeEmpty)
	})
}

func TestColorAt(t *testing.T) {
	Convey("Color assignment is deterministic", t, func() {
		for i := 0; i < 3*chart.PaletteSize(); i++ {
			So(chart.ColorAt(i), ShouldEqual, chart.ColorAt(i))
		}
	})

	Convey("Adjacent selections get distinct colors", t, func() {
		So(chart.ColorAt(0), ShouldNotEqual, chart.ColorAt(1))
	})

	Convey("Wrapping past the palette still derives distinct, stable colors", t, func() {
		n := chart.PaletteSize()
		So(chart.ColorAt(n), ShouldNotEqual, chart.ColorAt(0))
		So(chart.ColorAt(n), ShouldStartWith, chart.ColorAt(0))
	})
}
