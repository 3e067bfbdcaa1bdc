// Package history keeps track of the videos that were looked up.
package history

import (
	"strings"
	"time"

	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/tubefetch/tubefetch/filesystem"
	"github.com/tubefetch/tubefetch/where"
	"github.com/tubefetch/tubefetch/youtube"
	"golang.org/x/exp/slices"
)

var cacher = gache.New[map[string]*SavedVideo](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns every saved lookup, keyed by video id.
func Get() (map[string]*SavedVideo, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*SavedVideo), nil
	}
	return cached, nil
}

// List returns saved lookups, most recent first.
func List() ([]*SavedVideo, error) {
	saved, err := Get()
	if err != nil {
		return nil, err
	}

	videos := lo.Values(saved)
	slices.SortStableFunc(videos, func(a, b *SavedVideo) int {
		if c := b.LookedUpAt.Compare(a.LookedUpAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return videos, nil
}

// Save records a lookup of video, replacing an earlier one of the same id.
func Save(video *youtube.Video) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	record := newSavedVideo(video, time.Now())
	if existing, ok := saved[record.ID]; ok {
		record.Lookups = existing.Lookups + 1
	}
	saved[record.ID] = record

	return cacher.Set(saved)
}

// Remove deletes the record of a video id.
func Remove(id string) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, id)
	return cacher.Set(saved)
}

// Clear deletes every record.
func Clear() error {
	return cacher.Set(make(map[string]*SavedVideo))
}
