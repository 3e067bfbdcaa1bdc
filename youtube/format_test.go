package youtube

import (
	"errors"
	"testing"

	"github.com/segmentio/encoding/json"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/tubefetch/tubefetch/jsonvalue"
)

func TestNewFormat(t *testing.T) {
	Convey("Given a progressive entry", t, func() {
		f, err := NewAudioVideoFormat(jsonvalue.MustParse(progressive18))
		So(err, ShouldBeNil)

		Convey("Common attributes are read", func() {
			So(f.Itag(), ShouldEqual, 18)
			So(f.URL(), ShouldEqual, "https://r1.example/videoplayback?id=1&itag=18")
			So(f.Ciphered(), ShouldBeFalse)
			So(f.Bitrate(), ShouldEqual, 503000)
			So(f.Kind(), ShouldEqual, KindAudioVideo)
		})

		Convey("The mime type is split into extension and codecs", func() {
			So(f.Extension(), ShouldEqual, "mp4")
			So(f.Codecs(), ShouldResemble, []string{"avc1.42001E", "mp4a.40.2"})
		})

		Convey("Both audio and video attributes are read", func() {
			So(f.AudioSampleRate(), ShouldEqual, 44100)
			So(f.AudioChannels(), ShouldEqual, 2)
			So(f.Width(), ShouldEqual, 640)
			So(f.Height(), ShouldEqual, 360)
			So(f.QualityLabel(), ShouldEqual, "360p")
		})

		Convey("Raw keeps the original entry", func() {
			So(f.Raw().Has("qualityLabel"), ShouldBeTrue)
		})
	})

	Convey("Given an adaptive audio entry", t, func() {
		f, err := NewAudioFormat(jsonvalue.MustParse(audio140))
		So(err, ShouldBeNil)
		So(f.ContentLength(), ShouldEqual, 3433514)
		So(f.AudioQuality(), ShouldEqual, "AUDIO_QUALITY_MEDIUM")
		So(f.Extension(), ShouldEqual, "mp4")

		var format Format = f
		_, isVideo := format.(VideoAttributes)
		So(isVideo, ShouldBeFalse)
	})

	Convey("Given a ciphered video entry", t, func() {
		f, err := NewVideoFormat(jsonvalue.MustParse(video137))
		So(err, ShouldBeNil)
		So(f.Ciphered(), ShouldBeTrue)
		So(f.URL(), ShouldBeEmpty)
		So(f.SignatureCipher(), ShouldStartWith, "s=AbC&sp=sig")
		So(f.FPS(), ShouldEqual, 30)
	})

	Convey("The legacy cipher key is accepted", t, func() {
		f, err := NewVideoFormat(jsonvalue.MustParse(`{"itag":22,"cipher":"s=1","mimeType":"video/mp4"}`))
		So(err, ShouldBeNil)
		So(f.SignatureCipher(), ShouldEqual, "s=1")
	})

	Convey("Optional attributes default to zero", t, func() {
		f, err := NewVideoFormat(jsonvalue.MustParse(`{"itag":160,"url":"u","mimeType":"video/webm"}`))
		So(err, ShouldBeNil)
		So(f.Width(), ShouldEqual, 0)
		So(f.Bitrate(), ShouldEqual, 0)
		So(f.Codecs(), ShouldBeNil)
		So(f.Extension(), ShouldEqual, "webm")
	})

	Convey("Required fields fail construction", t, func() {
		for _, entry := range []string{
			`{"url":"u","mimeType":"audio/mp4"}`,
			`{"itag":"140","url":"u","mimeType":"audio/mp4"}`,
			`{"itag":140,"url":"u"}`,
			`{"itag":140,"mimeType":"audio/mp4"}`,
			`{"itag":140,"url":"","mimeType":"audio/mp4"}`,
			`{"itag":140,"url":"","signatureCipher":"","cipher":"","mimeType":"audio/mp4"}`,
		} {
			f, err := NewAudioFormat(jsonvalue.MustParse(entry))
			So(f, ShouldBeNil)
			So(err, ShouldNotBeNil)

			var fe *jsonvalue.FieldError
			So(errors.As(err, &fe), ShouldBeTrue)
		}
	})
}

func TestFormats(t *testing.T) {
	Convey("Given one format of each kind", t, func() {
		av, _ := NewAudioVideoFormat(jsonvalue.MustParse(progressive18))
		a, _ := NewAudioFormat(jsonvalue.MustParse(audio140))
		v, _ := NewVideoFormat(jsonvalue.MustParse(video137))
		formats := Formats{av, a, v}

		Convey("Selectors keep source order", func() {
			So(formats.Audio(), ShouldResemble, Formats{a})
			So(formats.Video(), ShouldResemble, Formats{v})
			So(formats.AudioVideo(), ShouldResemble, Formats{av})
			So(formats.WithAudio(), ShouldResemble, Formats{av, a})
			So(formats.WithVideo(), ShouldResemble, Formats{av, v})
			So(formats.OfKind(KindVideo, KindAudio), ShouldResemble, Formats{a, v})
		})

		Convey("Downloadable drops ciphered formats", func() {
			So(formats.Downloadable(), ShouldResemble, Formats{av, a})
		})

		Convey("ByItag finds a format", func() {
			f, ok := formats.ByItag(140)
			So(ok, ShouldBeTrue)
			So(f, ShouldEqual, a)

			_, ok = formats.ByItag(1)
			So(ok, ShouldBeFalse)
		})

		Convey("Formats marshal as flat descriptions", func() {
			raw, err := json.Marshal(formats)
			So(err, ShouldBeNil)

			var out []FormatInfo
			So(json.Unmarshal(raw, &out), ShouldBeNil)
			So(out, ShouldHaveLength, 3)
			So(out[0].Kind, ShouldEqual, "audio+video")
			So(out[0].Width, ShouldEqual, 640)
			So(out[1].AudioChannels, ShouldEqual, 2)
			So(out[1].Width, ShouldEqual, 0)
			So(out[2].SignatureCipher, ShouldNotBeEmpty)
		})
	})
}
