package youtube

import (
	"errors"
	"fmt"
)

var (
	// ErrVideoUnavailable means the page explicitly reports an error status
	// for the video (private, deleted, blocked in the region, ...).
	ErrVideoUnavailable = errors.New("video unavailable")

	// ErrBadPage means the page did not have the expected layout and the
	// extraction markers need updating.
	ErrBadPage = errors.New("could not parse web page")
)

// ExtractionError is returned for every extraction failure. Kind is either
// ErrVideoUnavailable or ErrBadPage; Err is the underlying cause, if any.
type ExtractionError struct {
	VideoID string
	Kind    error
	Reason  string
	Err     error
}

func (e *ExtractionError) Error() string {
	msg := e.Kind.Error()
	if e.VideoID != "" {
		msg = fmt.Sprintf("video %s: %s", e.VideoID, msg)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ExtractionError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func badPage(videoID, reason string, err error) error {
	return &ExtractionError{VideoID: videoID, Kind: ErrBadPage, Reason: reason, Err: err}
}

func unavailable(videoID, reason string) error {
	return &ExtractionError{VideoID: videoID, Kind: ErrVideoUnavailable, Reason: reason}
}

// IsUnavailable reports whether err marks a video the platform refuses to play.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrVideoUnavailable)
}

// IsBadPage reports whether err marks a page layout the extractor does not understand.
func IsBadPage(err error) bool {
	return errors.Is(err, ErrBadPage)
}
