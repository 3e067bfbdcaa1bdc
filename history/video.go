package history

import (
	"fmt"
	"time"

	"github.com/tubefetch/tubefetch/youtube"
)

// SavedVideo is a lookup preserved in the history.
type SavedVideo struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Author     string    `json:"author"`
	Formats    int       `json:"formats"`
	Lookups    int       `json:"lookups"`
	LookedUpAt time.Time `json:"looked_up_at"`
}

func (s *SavedVideo) String() string {
	if s.Title == "" {
		return s.ID
	}
	return fmt.Sprintf("%s (%s)", s.Title, s.ID)
}

func newSavedVideo(video *youtube.Video, at time.Time) *SavedVideo {
	return &SavedVideo{
		ID:         video.Details.ID(),
		Title:      video.Details.Title(),
		Author:     video.Details.Author(),
		Formats:    len(video.Formats),
		Lookups:    1,
		LookedUpAt: at,
	}
}
