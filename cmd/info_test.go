package cmd

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tubefetch/tubefetch/jsonvalue"
	"github.com/tubefetch/tubefetch/youtube"
)

func TestHumanize(t *testing.T) {
	Convey("humanize", t, func() {
		So(humanize(0), ShouldEqual, "-")
		So(humanize(999), ShouldEqual, "999 ")
		So(humanize(128000), ShouldEqual, "128.0 k")
		So(humanize(3433514), ShouldEqual, "3.4 M")
	})
}

func TestRawDocument(t *testing.T) {
	Convey("Given an extracted video", t, func() {
		audio, err := youtube.NewAudioFormat(jsonvalue.MustParse(
			`{"itag":140,"url":"https://r1.example/a","mimeType":"audio/mp4","audioSampleRate":"44100","xtags":"drc"}`,
		))
		So(err, ShouldBeNil)

		video := &youtube.Video{
			Details: youtube.NewVideoDetails("abc", jsonvalue.MustParse(`{"videoId":"abc","title":"X","averageRating":4.5}`)),
			Formats: youtube.Formats{audio},
		}

		Convey("The page's own fields are kept", func() {
			doc, err := rawDocument(video)
			So(err, ShouldBeNil)
			So(doc["videoId"], ShouldEqual, "abc")

			details := doc["videoDetails"].(map[string]any)
			So(details["title"], ShouldEqual, "X")
			So(details["averageRating"], ShouldEqual, 4.5)

			formats := doc["formats"].([]any)
			So(formats, ShouldHaveLength, 1)
			entry := formats[0].(map[string]any)
			So(entry["xtags"], ShouldEqual, "drc")
			So(entry["audioSampleRate"], ShouldEqual, "44100")
		})

		Convey("Identifier-only details decode as null", func() {
			video.Details = youtube.NewVideoDetails("abc", jsonvalue.Value{})
			doc, err := rawDocument(video)
			So(err, ShouldBeNil)
			So(doc["videoDetails"], ShouldBeNil)
		})
	})
}
