package datekey_test

import (
	"testing"
	"time"

	"github.com/irosadie/fifa-ranking/internal/domain/datekey"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFromTime(t *testing.T) {
	Convey("Given timestamps on the same UTC day", t, func() {
		morning := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
		evening := time.Date(2024, 6, 1, 23, 59, 59, 0, time.UTC)

		Convey("They normalize to the same key", func() {
			So(datekey.FromTime(morning), ShouldEqual, datekey.FromTime(evening))
			So(datekey.FromTime(morning), ShouldEqual, datekey.Key("2024-06-01"))
		})
	})

	Convey("Given timestamps in non-UTC zones", t, func() {
		// 23:30 UTC-3 is already the next UTC day.
		zone := time.FixedZone("BRT", -3*3600)
		local := time.Date(2024, 5, 31, 23, 30, 0, 0, zone)

		Convey("Normalization happens in UTC", func() {
			So(datekey.FromTime(local), ShouldEqual, datekey.Key("2024-06-01"))
		})
	})

	Convey("Key order matches chronological order", t, func() {
		a := datekey.FromTime(time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC))
		b := datekey.FromTime(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
		So(a.Before(b), ShouldBeTrue)
		So(b.Before(a), ShouldBeFalse)
	})
}

func TestKeyRoundTrip(t *testing.T) {
	Convey("A key parses back to midnight UTC", t, func() {
		k := datekey.Key("2024-06-01")
		So(k.Valid(), ShouldBeTrue)

		parsed, err := k.Time()
		So(err, ShouldBeNil)
		So(parsed, ShouldEqual, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
		So(datekey.FromTime(parsed), ShouldEqual, k)
	})

	Convey("Malformed keys are invalid", t, func() {
		So(datekey.Key("01/06/2024").Valid(), ShouldBeFalse)
		So(datekey.Key("").Valid(), ShouldBeFalse)
	})
}
