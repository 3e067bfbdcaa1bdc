package youtube

import (
	"context"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestWatchURL(t *testing.T) {
	Convey("WatchURL", t, func() {
		So(WatchURL("www.youtube.com", "abc"), ShouldEqual, "https://www.youtube.com/watch?v=abc")
		So(WatchURL("", "a&b"), ShouldEqual, "https://www.youtube.com/watch?v=a%26b")
	})
}

func TestClient(t *testing.T) {
	Convey("Given a client over a stub fetcher", t, func() {
		var requested string
		page := watchPage(player(progressive18, audio140))
		client := NewClient(FetcherFunc(func(_ context.Context, url string) (string, error) {
			requested = url
			return page, nil
		}), "m.example")

		Convey("GetVideo fetches the watch page and extracts it", func() {
			video, err := client.GetVideo(context.Background(), "abc")
			So(err, ShouldBeNil)
			So(requested, ShouldEqual, "https://m.example/watch?v=abc")
			So(video.Details.Title(), ShouldEqual, "X")
			So(video.Formats, ShouldHaveLength, 2)
		})

		Convey("An empty id is refused before fetching", func() {
			_, err := client.GetVideo(context.Background(), "")
			So(err, ShouldNotBeNil)
			So(requested, ShouldBeEmpty)
		})
	})

	Convey("Fetch errors are returned unchanged", t, func() {
		fetchErr := errors.New("connection reset")
		client := NewClient(FetcherFunc(func(context.Context, string) (string, error) {
			return "", fetchErr
		}), "")

		_, err := client.GetVideo(context.Background(), "abc")
		So(err, ShouldEqual, fetchErr)
	})

	Convey("Extraction options are applied", t, func() {
		page := watchPage(player(`{"mimeType":"video/mp4","url":"u"}`, audio140))
		var defects []Defect
		client := NewClient(FetcherFunc(func(context.Context, string) (string, error) {
			return page, nil
		}), "", WithDefectHandler(func(d Defect) { defects = append(defects, d) }))

		video, err := client.GetVideo(context.Background(), "abc")
		So(err, ShouldBeNil)
		So(video.Formats, ShouldHaveLength, 1)
		So(defects, ShouldHaveLength, 1)
	})
}
