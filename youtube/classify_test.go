package youtube

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tubefetch/tubefetch/jsonvalue"
)

func streamingData(formats, adaptive string) jsonvalue.Value {
	return jsonvalue.MustParse(`{"formats":[` + formats + `],"adaptiveFormats":[` + adaptive + `]}`)
}

func TestClassify(t *testing.T) {
	Convey("Given well-formed entries", t, func() {
		formats, err := Classify(streamingData(progressive18, audio140+","+video137), nil)
		So(err, ShouldBeNil)

		Convey("Progressive entries come first, then adaptive ones", func() {
			So(formats, ShouldHaveLength, 3)
			So(formats[0], ShouldHaveSameTypeAs, &AudioVideoFormat{})
			So(formats[1], ShouldHaveSameTypeAs, &AudioFormat{})
			So(formats[2], ShouldHaveSameTypeAs, &VideoFormat{})
			So(formats[2].Itag(), ShouldEqual, 137)
		})
	})

	Convey("Progressive entries are audio+video whatever their mime type", t, func() {
		formats, err := Classify(streamingData(`{"itag":5,"url":"u","mimeType":"audio/flv"}`, ""), nil)
		So(err, ShouldBeNil)
		So(formats[0].Kind(), ShouldEqual, KindAudioVideo)
	})

	Convey("Given an adaptive entry of an unknown mime type", t, func() {
		var defects []Defect
		formats, err := Classify(
			streamingData(progressive18, `{"itag":600,"url":"u","mimeType":"text/vtt"},`+audio140),
			func(d Defect) { defects = append(defects, d) },
		)
		So(err, ShouldBeNil)

		Convey("It is skipped silently without affecting others", func() {
			So(formats, ShouldHaveLength, 2)
			So(formats[1].Itag(), ShouldEqual, 140)
			So(defects, ShouldBeEmpty)
		})
	})

	Convey("Given entries missing required fields", t, func() {
		var defects []Defect
		formats, err := Classify(
			streamingData(
				`{"url":"u","mimeType":"video/mp4"},`+progressive18,
				audio140+`,{"itag":251,"mimeType":"audio/webm"},{"itag":999,"url":"u"}`,
			),
			func(d Defect) { defects = append(defects, d) },
		)

		Convey("They are dropped without failing the call", func() {
			So(err, ShouldBeNil)
			So(formats, ShouldHaveLength, 2)
			So(formats[0].Itag(), ShouldEqual, 18)
			So(formats[1].Itag(), ShouldEqual, 140)
		})

		Convey("Each one is reported with its position", func() {
			So(defects, ShouldHaveLength, 3)
			So(defects[0].Array, ShouldEqual, "formats")
			So(defects[0].Index, ShouldEqual, 0)
			So(defects[1].Array, ShouldEqual, "adaptiveFormats")
			So(defects[1].Index, ShouldEqual, 1)
			So(defects[2].Index, ShouldEqual, 2)
			So(errors.Is(defects[0], jsonvalue.ErrMissing), ShouldBeTrue)
			So(defects[0].Error(), ShouldEqual, "formats[0]: field itag: missing")
		})
	})

	Convey("Given an entry with an empty url and no cipher", t, func() {
		var defects []Defect
		formats, err := Classify(
			streamingData(`{"itag":18,"url":"","mimeType":"video/mp4"}`, audio140),
			func(d Defect) { defects = append(defects, d) },
		)

		Convey("It is dropped as a defect", func() {
			So(err, ShouldBeNil)
			So(formats, ShouldHaveLength, 1)
			So(formats[0].Itag(), ShouldEqual, 140)
			So(defects, ShouldHaveLength, 1)
			So(defects[0].Array, ShouldEqual, "formats")
			So(errors.Is(defects[0], jsonvalue.ErrMissing), ShouldBeTrue)
		})
	})

	Convey("A missing array is an error", t, func() {
		_, err := Classify(jsonvalue.MustParse(`{"formats":[]}`), nil)
		So(errors.Is(err, jsonvalue.ErrMissing), ShouldBeTrue)

		_, err = Classify(jsonvalue.MustParse(`{"formats":{},"adaptiveFormats":[]}`), nil)
		So(errors.Is(err, jsonvalue.ErrType), ShouldBeTrue)
	})

	Convey("Empty arrays give no formats", t, func() {
		formats, err := Classify(streamingData("", ""), nil)
		So(err, ShouldBeNil)
		So(formats, ShouldBeEmpty)
	})
}
