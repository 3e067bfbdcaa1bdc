package util

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tubefetch/tubefetch/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSanitizeFilename(t *testing.T) {
	Convey("SanitizeFilename", t, func() {
		Convey("Should replace invalid chars", func() {
			So(SanitizeFilename("file:name?.txt"), ShouldEqual, "file_name_.txt")
		})
		Convey("Should collapse underscores", func() {
			So(SanitizeFilename("file__name.txt"), ShouldEqual, "file_name.txt")
		})
		Convey("Should trim separators", func() {
			So(SanitizeFilename("-file-name-"), ShouldEqual, "file-name")
		})
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "file", "files"), ShouldEqual, "1 file")
		So(Quantify(2, "file", "files"), ShouldEqual, "2 files")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("hello"), ShouldEqual, "Hello")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
	})
}


func TestDelete(t *testing.T) {
	Convey("Delete", t, func() {
		fs := filesystem.API()
		So(fs.WriteFile("/tmp/tf/a/b.txt", []byte("x"), 0o644), ShouldBeNil)

		So(Delete("/tmp/tf/a/b.txt"), ShouldBeNil)
		exists, _ := fs.Exists("/tmp/tf/a/b.txt")
		So(exists, ShouldBeFalse)

		So(Delete("/tmp/tf"), ShouldBeNil)
		exists, _ = fs.DirExists("/tmp/tf")
		So(exists, ShouldBeFalse)

		So(Delete("/tmp/tf"), ShouldNotBeNil)
	})
}
