package logger

import (
	"bytes"
	"context"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLogger(t *testing.T) {
	Convey("Given a logger writing to a buffer", t, func() {
		So(SetLevelString("info"), ShouldBeNil)
		var buf bytes.Buffer
		log := New(&buf).Named("store")
		ctx := context.Background()

		Convey("Records carry the message, fields and component", func() {
			log.Info(ctx, "athlete registered", String("public_id", "ATH-123456"), Int("attempt", 2), Error(errors.New("boom")))
			out := buf.String()
			So(out, ShouldContainSubstring, `msg="athlete registered"`)
			So(out, ShouldContainSubstring, "public_id=ATH-123456")
			So(out, ShouldContainSubstring, "attempt=2")
			So(out, ShouldContainSubstring, "error=boom")
			So(out, ShouldContainSubstring, "component=store")
		})

		Convey("Debug is filtered at info level", func() {
			log.Debug(ctx, "hidden")
			So(buf.String(), ShouldBeEmpty)

			So(SetLevelString("DEBUG"), ShouldBeNil)
			log.Debug(ctx, "shown")
			So(buf.String(), ShouldContainSubstring, "shown")
		})

		Convey("The level can be raised to error", func() {
			So(SetLevelString("error"), ShouldBeNil)
			log.Warn(ctx, "quiet")
			So(buf.String(), ShouldBeEmpty)
			log.Error(ctx, "loud")
			So(buf.String(), ShouldContainSubstring, "loud")
		})

		Convey("Unknown levels are rejected", func() {
			So(SetLevelString("verbose"), ShouldNotBeNil)
		})

		Reset(func() { SetLevelString("info") })
	})

	Convey("Get panics until Init runs", t, func() {
		saved := global
		global = nil
		So(func() { Get() }, ShouldPanic)
		So(Init(), ShouldBeNil)
		So(Get(), ShouldNotBeNil)
		global = saved
	})
}
