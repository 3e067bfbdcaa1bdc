package jsonvalue

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

const sample = `{
	"title": "Café \"live\"",
	"lengthSeconds": "212",
	"viewCount": 1045,
	"rating": 4.5,
	"isLive": false,
	"keywords": ["a", "b"],
	"thumbnail": {"thumbnails": [{"url": "t0", "width": 120}]},
	"nothing": null
}`

func TestParse(t *testing.T) {
	Convey("Parse", t, func() {
		Convey("accepts a valid document", func() {
			v, err := Parse(sample)
			So(err, ShouldBeNil)
			So(v.Kind(), ShouldEqual, Object)
		})

		Convey("accepts scalars at the root", func() {
			v, err := Parse(` 42 `)
			So(err, ShouldBeNil)
			So(v.Kind(), ShouldEqual, Number)
		})

		Convey("rejects malformed text", func() {
			for _, text := range []string{``, `{`, `{"a":1}]}`, `{"a":}`, `{a:1}`} {
				_, err := Parse(text)
				So(errors.Is(err, ErrInvalid), ShouldBeTrue)
			}
		})
	})
}

func TestAccessors(t *testing.T) {
	Convey("Given a parsed object", t, func() {
		v := MustParse(sample)

		Convey("Str decodes escapes", func() {
			title, err := v.Str("title")
			So(err, ShouldBeNil)
			So(title, ShouldEqual, `Café "live"`)
		})

		Convey("Integer accepts numbers and numeric strings", func() {
			n, err := v.Integer("lengthSeconds")
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 212)

			n, err = v.Integer("viewCount")
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 1045)
		})

		Convey("Int is strict about strings", func() {
			_, err := v.Int("lengthSeconds")
			So(errors.Is(err, ErrType), ShouldBeTrue)
		})

		Convey("Int rejects fractions", func() {
			_, err := v.Int("rating")
			So(errors.Is(err, ErrType), ShouldBeTrue)

			f, err := v.Float("rating")
			So(err, ShouldBeNil)
			So(f, ShouldEqual, 4.5)
		})

		Convey("Bool", func() {
			live, err := v.Bool("isLive")
			So(err, ShouldBeNil)
			So(live, ShouldBeFalse)
		})

		Convey("Nested paths and array indexes", func() {
			url, err := v.Str("thumbnail", "thumbnails", "[0]", "url")
			So(err, ShouldBeNil)
			So(url, ShouldEqual, "t0")
		})

		Convey("Array returns the elements in order", func() {
			items, err := v.Array("keywords")
			So(err, ShouldBeNil)
			So(items, ShouldHaveLength, 2)
			second, err := items[1].Str()
			So(err, ShouldBeNil)
			So(second, ShouldEqual, "b")
		})

		Convey("Missing fields fail with ErrMissing", func() {
			_, err := v.Str("author")
			So(errors.Is(err, ErrMissing), ShouldBeTrue)

			var fe *FieldError
			So(errors.As(err, &fe), ShouldBeTrue)
			So(fe.Path, ShouldResemble, []string{"author"})
			So(v.Has("author"), ShouldBeFalse)
		})

		Convey("Wrong types fail with ErrType", func() {
			_, err := v.Array("title")
			So(errors.Is(err, ErrType), ShouldBeTrue)
			So(err.Error(), ShouldEqual, "field title: want array, got string")
		})

		Convey("Null is present but not a string", func() {
			So(v.Has("nothing"), ShouldBeTrue)
			So(v.OptStr("nothing").IsPresent(), ShouldBeFalse)
		})

		Convey("Optional accessors", func() {
			So(v.OptStr("title").MustGet(), ShouldEqual, `Café "live"`)
			So(v.OptInteger("missing").IsAbsent(), ShouldBeTrue)
			So(v.OptBool("isLive").OrElse(true), ShouldBeFalse)
		})

		Convey("Keys keeps document order", func() {
			So(v.Keys(), ShouldResemble, []string{
				"title", "lengthSeconds", "viewCount", "rating", "isLive", "keywords", "thumbnail", "nothing",
			})
		})

		Convey("Interface decodes generic values", func() {
			out, err := v.Interface()
			So(err, ShouldBeNil)
			m, ok := out.(map[string]any)
			So(ok, ShouldBeTrue)
			So(m["viewCount"], ShouldEqual, float64(1045))
		})

		Convey("MarshalJSON round-trips raw strings", func() {
			title, err := v.Get("title")
			So(err, ShouldBeNil)
			raw, err := title.MarshalJSON()
			So(err, ShouldBeNil)
			So(string(raw), ShouldEqual, `"Café \"live\""`)
		})
	})

	Convey("Given the zero Value", t, func() {
		var v Value

		So(v.IsMissing(), ShouldBeTrue)
		So(v.Keys(), ShouldBeNil)

		_, err := v.Str("title")
		So(errors.Is(err, ErrMissing), ShouldBeTrue)

		raw, err := v.MarshalJSON()
		So(err, ShouldBeNil)
		So(string(raw), ShouldEqual, "null")
	})
}
