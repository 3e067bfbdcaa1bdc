package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tubefetch/tubefetch/history"
	"github.com/tubefetch/tubefetch/key"
	"github.com/tubefetch/tubefetch/log"
	"github.com/tubefetch/tubefetch/network"
	"github.com/tubefetch/tubefetch/query"
	"github.com/tubefetch/tubefetch/youtube"
)

func newClient() *youtube.Client {
	fetcher := &network.Fetcher{
		Client: network.NewClient(network.Options{
			Fingerprint: viper.GetBool(key.NetworkFingerprint),
			Timeout:     time.Duration(viper.GetInt(key.NetworkTimeoutSeconds)) * time.Second,
		}),
		UserAgent: viper.GetString(key.FetchUserAgent),
	}

	return youtube.NewClient(fetcher, viper.GetString(key.FetchHost))
}

// remember stores a looked up video in the history and the suggestions.
func remember(video *youtube.Video) {
	if err := query.Remember(video.Details.ID(), video.Details.Title(), 1); err != nil {
		log.Warn(err)
	}

	if !viper.GetBool(key.HistorySave) {
		return
	}

	if err := history.Save(video); err != nil {
		log.Warn(err)
	}
}

// lookup fetches a video and remembers it.
func lookup(ctx context.Context, client *youtube.Client, input string) (*youtube.Video, error) {
	id := youtube.ParseID(input)
	log.Infof("looking up %s", id)

	video, err := client.GetVideo(ctx, id)
	if err != nil {
		return nil, describeErr(id, err)
	}

	remember(video)
	return video, nil
}

func describeErr(id string, err error) error {
	switch {
	case youtube.IsUnavailable(err):
		return fmt.Errorf("video %s is unavailable (private, removed or blocked)", id)
	case youtube.IsBadPage(err):
		return fmt.Errorf("could not understand the watch page of %s, the page layout may have changed: %w", id, err)
	case network.IsTransport(err):
		var ne *network.Error
		if errors.As(err, &ne) && ne.StatusCode != 0 {
			return fmt.Errorf("fetching %s failed with status %d", id, ne.StatusCode)
		}
		return err
	default:
		return err
	}
}

func completionVideoIDs(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
}
