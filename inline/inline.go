// Package inline implements the non-interactive, scriptable output mode.
package inline

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/tubefetch/tubefetch/log"
	"github.com/tubefetch/tubefetch/youtube"
)

// Run looks up every id and prints the direct URLs of the selected formats,
// or a single JSON Output when options.Json is set. Ciphered formats have no
// direct URL and are left out of the plain listing.
func Run(ctx context.Context, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	videos := make([]*youtube.Video, 0, len(options.IDs))
	for _, id := range options.IDs {
		video, err := options.Client.GetVideo(ctx, id)
		if err != nil {
			return fmt.Errorf("video %s: %w", id, err)
		}

		if options.OnVideo != nil {
			options.OnVideo(video)
		}

		if options.FormatsFilter.IsPresent() {
			video.Formats = options.FormatsFilter.MustGet()(video.Formats)
		}

		videos = append(videos, video)
	}

	if options.Json {
		return writeJson(options.Out, videos, options.IDs)
	}

	for _, video := range videos {
		for _, f := range video.Formats {
			if f.Ciphered() {
				log.Infof("video %s: skipping ciphered itag %d", video.Details.ID(), f.Itag())
				continue
			}
			fmt.Fprintln(options.Out, f.URL())
		}
	}

	return nil
}

func writeJson(out io.Writer, videos []*youtube.Video, ids []string) error {
	data, err := asJson(videos, ids)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
