package inline

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/tubefetch/tubefetch/youtube"
)

// VideoGetter looks up a video by id.
type VideoGetter interface {
	GetVideo(ctx context.Context, videoID string) (*youtube.Video, error)
}

// FormatsFilter narrows the formats of a video.
type FormatsFilter func(youtube.Formats) youtube.Formats

// Options configures Run.
type Options struct {
	// Out receives the output. Direct URLs go one per line unless Json is set.
	Out    io.Writer
	Client VideoGetter
	// IDs are looked up in order; a failed lookup stops the run.
	IDs  []string
	Json bool
	// FormatsFilter narrows the formats printed for each video. None keeps them all.
	FormatsFilter mo.Option[FormatsFilter]
	// OnVideo is called for every video found, before any output.
	OnVideo func(*youtube.Video)
}

// ParseFormatsFilter parses a formats selector:
// all, audio, video, av, downloadable, best-audio, best-video or an itag number.
func ParseFormatsFilter(description string) (FormatsFilter, error) {
	switch strings.ToLower(strings.TrimSpace(description)) {
	case "all", "":
		return func(fs youtube.Formats) youtube.Formats { return fs }, nil
	case "audio":
		return youtube.Formats.Audio, nil
	case "video":
		return youtube.Formats.Video, nil
	case "av", "audio+video":
		return youtube.Formats.AudioVideo, nil
	case "downloadable":
		return youtube.Formats.Downloadable, nil
	case "best-audio":
		return best(youtube.Formats.WithAudio, func(a, b youtube.Format) bool {
			return a.Bitrate() > b.Bitrate()
		}), nil
	case "best-video":
		return best(youtube.Formats.WithVideo, func(a, b youtube.Format) bool {
			return height(a) > height(b) || height(a) == height(b) && a.Bitrate() > b.Bitrate()
		}), nil
	}

	itag, err := strconv.Atoi(description)
	if err != nil {
		return nil, fmt.Errorf("invalid formats selector: %s", description)
	}

	return func(fs youtube.Formats) youtube.Formats {
		if f, ok := fs.ByItag(itag); ok {
			return youtube.Formats{f}
		}
		return youtube.Formats{}
	}, nil
}

// ParseKindFilter parses a format kind: audio, video or av.
func ParseKindFilter(kind string) (FormatsFilter, error) {
	switch strings.ToLower(kind) {
	case "audio", "video", "av", "audio+video":
		return ParseFormatsFilter(kind)
	default:
		return nil, fmt.Errorf("unknown format kind: %s", kind)
	}
}

// Chain applies filters in order.
func Chain(filters ...FormatsFilter) FormatsFilter {
	return func(fs youtube.Formats) youtube.Formats {
		for _, filter := range filters {
			fs = filter(fs)
		}
		return fs
	}
}

func best(selector FormatsFilter, better func(a, b youtube.Format) bool) FormatsFilter {
	return func(fs youtube.Formats) youtube.Formats {
		candidates := selector(fs.Downloadable())
		if len(candidates) == 0 {
			return youtube.Formats{}
		}
		return youtube.Formats{lo.MaxBy(candidates, better)}
	}
}

func height(f youtube.Format) int {
	if v, ok := f.(youtube.VideoAttributes); ok {
		return v.Height()
	}
	return 0
}
