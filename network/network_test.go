package network

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFetchPage(t *testing.T) {
	Convey("Given a page server", t, func() {
		var userAgent string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userAgent = r.Header.Get("User-Agent")
			switch r.URL.Path {
			case "/watch":
				fmt.Fprint(w, "<html>"+r.URL.Query().Get("v")+"</html>")
			default:
				http.NotFound(w, r)
			}
		}))
		defer server.Close()

		fetcher := &Fetcher{Client: NewClient(Options{Timeout: 5 * time.Second}), UserAgent: "test-agent"}

		Convey("The body is returned", func() {
			page, err := fetcher.FetchPage(context.Background(), server.URL+"/watch?v=abc")
			So(err, ShouldBeNil)
			So(page, ShouldEqual, "<html>abc</html>")
			So(userAgent, ShouldEqual, "test-agent")
		})

		Convey("A non-2xx status is a transport error", func() {
			_, err := fetcher.FetchPage(context.Background(), server.URL+"/missing")
			So(IsTransport(err), ShouldBeTrue)

			var e *Error
			So(errors.As(err, &e), ShouldBeTrue)
			So(e.Op, ShouldEqual, "status")
			So(e.StatusCode, ShouldEqual, http.StatusNotFound)
		})

		Convey("A cancelled context is a transport error", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			_, err := fetcher.FetchPage(ctx, server.URL+"/watch?v=abc")
			So(IsTransport(err), ShouldBeTrue)
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
		})

		Convey("The fingerprint client serves plain http through the tuned transport", func() {
			fetcher.Client = NewClient(Options{Fingerprint: true})
			page, err := fetcher.FetchPage(context.Background(), server.URL+"/watch?v=xyz")
			So(err, ShouldBeNil)
			So(page, ShouldEqual, "<html>xyz</html>")
		})

		Convey("The default user agent is sent when none is set", func() {
			fetcher.UserAgent = ""
			_, err := fetcher.FetchPage(context.Background(), server.URL+"/watch?v=abc")
			So(err, ShouldBeNil)
			So(userAgent, ShouldNotBeEmpty)
		})
	})

	Convey("A malformed url fails to build the request", t, func() {
		_, err := (&Fetcher{}).FetchPage(context.Background(), "://nope")

		var e *Error
		So(errors.As(err, &e), ShouldBeTrue)
		So(e.Op, ShouldEqual, "request")
	})

	Convey("Other errors are not transport errors", t, func() {
		So(IsTransport(errors.New("x")), ShouldBeFalse)
		So(IsTransport(nil), ShouldBeFalse)
	})
}

func TestNewClient(t *testing.T) {
	Convey("NewClient", t, func() {
		So(NewClient(Options{}).Timeout, ShouldEqual, time.Minute)
		So(NewClient(Options{Timeout: time.Second}).Timeout, ShouldEqual, time.Second)

		_, ok := NewClient(Options{Fingerprint: true}).Transport.(*fingerprintTransport)
		So(ok, ShouldBeTrue)
	})
}
