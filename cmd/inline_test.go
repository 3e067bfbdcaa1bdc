package cmd

import (
	"fmt"
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tubefetch/tubefetch/filesystem"
)

func TestOpenOutput(t *testing.T) {
	Convey("Given no output path", t, func() {
		w, closeOutput, err := openOutput("")
		So(err, ShouldBeNil)
		So(w, ShouldEqual, os.Stdout)
		So(closeOutput(), ShouldBeNil)
	})

	Convey("Given an output path", t, func() {
		filesystem.SetMemMapFs()
		defer filesystem.SetOsFs()

		w, closeOutput, err := openOutput("urls.txt")
		So(err, ShouldBeNil)

		_, err = fmt.Fprintln(w, "https://r1.example/videoplayback?itag=140")
		So(err, ShouldBeNil)

		Convey("Closing it keeps what was written", func() {
			So(closeOutput(), ShouldBeNil)

			data, err := filesystem.API().ReadFile("urls.txt")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "https://r1.example/videoplayback?itag=140\n")
		})
	})
}
