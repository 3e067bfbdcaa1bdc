package youtube

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLocate(t *testing.T) {
	Convey("Given a watch page", t, func() {
		page := watchPage(player(progressive18, audio140))

		Convey("Both fragments are found", func() {
			f, err := Locate(page)
			So(err, ShouldBeNil)
			So(f.HasDetails, ShouldBeTrue)
			So(f.Details, ShouldStartWith, `{\"videoId\":\"abc\"`)
			So(f.Details, ShouldEndWith, `\"author\":\"Someone\"}`)
			So(f.Formats, ShouldStartWith, `{\"formats\":[`)
			So(f.Formats, ShouldEndWith, `}]}`)
			So(f.Formats, ShouldNotContainSubstring, "expiresInSeconds")
		})
	})

	Convey("Given a page without details", t, func() {
		page := `<script>"{\"streamingData\":{\"formats\":[{\"itag\":18}],\"adaptiveFormats\":[{\"itag\":140}]}}"</script>`

		f, err := Locate(page)
		So(err, ShouldBeNil)
		So(f.HasDetails, ShouldBeFalse)
		So(f.Details, ShouldBeEmpty)
		So(f.Formats, ShouldEqual, `{\"formats\":[{\"itag\":18}],\"adaptiveFormats\":[{\"itag\":140}]}`)
	})

	Convey("Given details without the annotations marker", t, func() {
		page := `\"videoDetails\":{\"videoId\":\"abc\"}},\"formats\":[{\"itag\":1}]}`

		f, err := Locate(page)
		So(err, ShouldBeNil)
		So(f.HasDetails, ShouldBeFalse)
	})

	Convey("Given a page without the formats marker", t, func() {
		Convey("An escaped error status means the video is unavailable", func() {
			_, err := Locate(`\"playabilityStatus\":{\"status\":\"ERROR\",\"reason\":\"Video unavailable\"}`)
			So(errors.Is(err, ErrVideoUnavailable), ShouldBeTrue)
			So(errors.Is(err, ErrBadPage), ShouldBeFalse)
		})

		Convey("A raw error status means the video is unavailable", func() {
			_, err := Locate(`{"playabilityStatus":{"status":"ERROR"}}`)
			So(IsUnavailable(err), ShouldBeTrue)
		})

		Convey("Anything else is a bad page", func() {
			_, err := Locate(`<html>consent required</html>`)
			So(IsBadPage(err), ShouldBeTrue)
			So(IsUnavailable(err), ShouldBeFalse)
		})
	})

	Convey("Given a formats fragment that never closes", t, func() {
		_, err := Locate(`\"formats\":[{\"itag\":18}`)
		So(IsBadPage(err), ShouldBeTrue)

		var ee *ExtractionError
		So(errors.As(err, &ee), ShouldBeTrue)
		So(ee.VideoID, ShouldBeEmpty)
		So(err.Error(), ShouldEqual, "could not parse web page: formats fragment is not terminated")
	})
}
