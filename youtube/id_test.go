package youtube

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseID(t *testing.T) {
	Convey("ParseID", t, func() {
		So(ParseID("dQw4w9WgXcQ"), ShouldEqual, "dQw4w9WgXcQ")
		So(ParseID("  dQw4w9WgXcQ\n"), ShouldEqual, "dQw4w9WgXcQ")
		So(ParseID("https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s"), ShouldEqual, "dQw4w9WgXcQ")
		So(ParseID("https://m.youtube.com/watch?feature=share&v=dQw4w9WgXcQ"), ShouldEqual, "dQw4w9WgXcQ")
		So(ParseID("https://youtu.be/dQw4w9WgXcQ"), ShouldEqual, "dQw4w9WgXcQ")
		So(ParseID("https://www.youtube.com/shorts/abc123/"), ShouldEqual, "abc123")
		So(ParseID("https://example.com/page"), ShouldEqual, "https://example.com/page")
	})
}
