package logger

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLogger(t *testing.T) {
	Convey("Given an initialized global logger", t, func() {
		So(Init(), ShouldBeNil)

		Convey("Get returns a usable logger", func() {
			l := Get()
			So(l, ShouldNotBeNil)
			// Should not panic.
			l.Info(context.Background(), "hello", String("k", "v"), Int("n", 1))
		})

		Convey("Named returns a scoped logger", func() {
			l := Named("fetch")
			So(l, ShouldNotBeNil)
			l.Debug(context.Background(), "scoped")
		})

		Convey("SetLevelString accepts known levels", func() {
			So(SetLevelString("debug"), ShouldBeNil)
			So(SetLevelString("INFO"), ShouldBeNil)
			So(SetLevelString("warning"), ShouldBeNil)
			So(SetLevelString("error"), ShouldBeNil)
			So(SetLevelString(""), ShouldBeNil)
		})

		Convey("SetLevelString rejects unknown levels", func() {
			So(SetLevelString("loud"), ShouldNotBeNil)
		})
	})
}

func TestFieldConstructors(t *testing.T) {
	Convey("Field constructors carry key and value", t, func() {
		So(String("a", "b"), ShouldResemble, Field{Key: "a", Value: "b"})
		So(Int("n", 3).Value, ShouldEqual, 3)
		So(Float64("f", 1.5).Value, ShouldEqual, 1.5)
		So(Bool("ok", true).Value, ShouldEqual, true)
		So(Error(nil).Key, ShouldEqual, "error")
	})
}
