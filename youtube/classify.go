package youtube

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/tubefetch/tubefetch/jsonvalue"
)

const (
	audioMarker = "audio"
	videoMarker = "video"
)

// Defect describes a format entry that was dropped because it could not be built.
type Defect struct {
	Array string
	Index int
	Err   error
}

func (d Defect) Error() string {
	return fmt.Sprintf("%s[%d]: %v", d.Array, d.Index, d.Err)
}

func (d Defect) Unwrap() error { return d.Err }

// DefectHandler receives dropped entries. It never influences the result.
type DefectHandler func(Defect)

// Classify builds the formats listed in a streaming data object: every entry
// of "formats" becomes an AudioVideoFormat, entries of "adaptiveFormats"
// become AudioFormat or VideoFormat depending on their mime type. Entries that
// cannot be built are reported to onDefect and left out; adaptive entries of
// any other mime type are left out silently. A missing array is an error.
func Classify(streaming jsonvalue.Value, onDefect DefectHandler) (Formats, error) {
	progressive, err := streaming.Array("formats")
	if err != nil {
		return nil, err
	}

	adaptive, err := streaming.Array("adaptiveFormats")
	if err != nil {
		return nil, err
	}

	formats := make(Formats, 0, len(progressive)+len(adaptive))
	formats = append(formats, collect("formats", progressive, progressiveFormat, onDefect)...)
	formats = append(formats, collect("adaptiveFormats", adaptive, adaptiveFormat, onDefect)...)
	return formats, nil
}

func collect(array string, entries []jsonvalue.Value, build func(jsonvalue.Value) (Format, error), onDefect DefectHandler) Formats {
	return lo.FilterMap(entries, func(entry jsonvalue.Value, i int) (Format, bool) {
		f, err := build(entry)
		if err != nil {
			if onDefect != nil {
				onDefect(Defect{Array: array, Index: i, Err: err})
			}
			return nil, false
		}
		return f, f != nil
	})
}

func progressiveFormat(entry jsonvalue.Value) (Format, error) {
	f, err := NewAudioVideoFormat(entry)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// adaptiveFormat returns a nil Format for mime types that are neither audio nor video.
func adaptiveFormat(entry jsonvalue.Value) (Format, error) {
	mimeType, err := entry.Str("mimeType")
	if err != nil {
		return nil, err
	}

	switch {
	case strings.Contains(mimeType, audioMarker):
		f, err := NewAudioFormat(entry)
		if err != nil {
			return nil, err
		}
		return f, nil
	case strings.Contains(mimeType, videoMarker):
		f, err := NewVideoFormat(entry)
		if err != nil {
			return nil, err
		}
		return f, nil
	default:
		return nil, nil
	}
}
