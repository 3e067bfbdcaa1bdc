package youtube

import (
	"errors"

	"github.com/tubefetch/tubefetch/jsonvalue"
	"github.com/tubefetch/tubefetch/log"
)

type options struct {
	onDefect DefectHandler
}

// Option configures an extraction.
type Option func(*options)

// WithDefectHandler routes dropped format entries to h instead of the log.
func WithDefectHandler(h DefectHandler) Option {
	return func(o *options) {
		o.onDefect = h
	}
}

// ExtractVideo extracts the details and formats of videoID from the text of its watch page.
//
// The returned error is an *ExtractionError of kind ErrVideoUnavailable or
// ErrBadPage. Details are best-effort and never cause a failure.
func ExtractVideo(videoID, page string, opts ...Option) (*Video, error) {
	o := options{onDefect: logDefect(videoID)}
	for _, opt := range opts {
		opt(&o)
	}

	fragments, err := Locate(page)
	if err != nil {
		var ee *ExtractionError
		if errors.As(err, &ee) {
			ee.VideoID = videoID
		}
		return nil, err
	}

	details := extractDetails(videoID, fragments)

	streaming, err := jsonvalue.Parse(Unescape(fragments.Formats))
	if err != nil {
		return nil, badPage(videoID, "formats fragment is not valid json", err)
	}

	formats, err := Classify(streaming, o.onDefect)
	if err != nil {
		return nil, badPage(videoID, "unexpected streaming data", err)
	}

	return &Video{Details: details, Formats: formats}, nil
}

func extractDetails(videoID string, fragments Fragments) *VideoDetails {
	if !fragments.HasDetails {
		log.Debugf("video %s: details marker not found", videoID)
		return NewVideoDetails(videoID, jsonvalue.Value{})
	}

	fields, err := jsonvalue.Parse(Unescape(fragments.Details))
	if err != nil {
		log.Warnf("video %s: ignoring details: %v", videoID, err)
		return NewVideoDetails(videoID, jsonvalue.Value{})
	}

	return NewVideoDetails(videoID, fields)
}

func logDefect(videoID string) DefectHandler {
	return func(d Defect) {
		log.WithFields(log.Fields{
			"video": videoID,
			"array": d.Array,
			"index": d.Index,
		}).Warn(d.Err)
	}
}
