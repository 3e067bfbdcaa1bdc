package youtube

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnescape(t *testing.T) {
	Convey("Unescape", t, func() {
		Convey("Single escaped quotes become plain", func() {
			So(Unescape(`{\"a\":\"b\"}`), ShouldEqual, `{"a":"b"}`)
		})

		Convey("Double escaped quotes become plain", func() {
			So(Unescape(`{\\"a\\":1}`), ShouldEqual, `{"a":1}`)
		})

		Convey("A quote escaped inside an embedded string stays escaped once", func() {
			So(Unescape(`\"a\\\"b\"`), ShouldEqual, `"a\"b"`)
		})

		Convey("Escaped ampersands are decoded", func() {
			So(Unescape(`\"u\":\"x?a=1`+escapedAmp+`b=2\"`), ShouldEqual, `"u":"x?a=1&b=2"`)
		})

		Convey("Other escapes are left alone", func() {
			So(Unescape(`\"line\nbreak\/é\"`), ShouldEqual, `"line\nbreak\/é"`)
		})

		Convey("Clean JSON is unchanged", func() {
			clean := `{"formats":[{"itag":18,"url":"https://x.example/?a=1&b=2"}],"n":null}`
			So(Unescape(clean), ShouldEqual, clean)
			So(Unescape(Unescape(clean)), ShouldEqual, clean)
		})
	})
}
