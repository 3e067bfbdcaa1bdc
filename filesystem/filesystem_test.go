package filesystem

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestMove(t *testing.T) {
	Convey("Given a file in the in-memory backend", t, func() {
		SetMemMapFs()
		So(API().WriteFile("/tmp/part", []byte("payload"), 0o644), ShouldBeNil)

		Convey("Move places it at the destination", func() {
			So(API().MkdirAll("/out", 0o755), ShouldBeNil)
			So(Move("/tmp/part", "/out/final"), ShouldBeNil)

			data, err := API().ReadFile("/out/final")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "payload")

			exists, err := API().Exists("/tmp/part")
			So(err, ShouldBeNil)
			So(exists, ShouldBeFalse)
		})

		Convey("Move reports a missing source", func() {
			So(Move("/tmp/nothing", "/out/x"), ShouldNotBeNil)
		})
	})
}
