package inline

import (
	"github.com/samber/lo"
	"github.com/segmentio/encoding/json"
	"github.com/tubefetch/tubefetch/youtube"
)

// Video is the JSON shape of one looked up video.
type Video struct {
	ID            string               `json:"id"`
	Title         string               `json:"title,omitempty"`
	Author        string               `json:"author,omitempty"`
	ChannelID     string               `json:"channelId,omitempty"`
	LengthSeconds int                  `json:"lengthSeconds,omitempty"`
	ViewCount     int64                `json:"viewCount,omitempty"`
	IsLive        bool                 `json:"isLive"`
	Keywords      []string             `json:"keywords,omitempty"`
	Thumbnails    []youtube.Thumbnail  `json:"thumbnails,omitempty"`
	Formats       []youtube.FormatInfo `json:"formats"`
}

// Output is the JSON document written by Run: the requested ids and one Video per id.
type Output struct {
	IDs    []string `json:"ids"`
	Result []*Video `json:"result"`
}

func newVideo(v *youtube.Video) *Video {
	d := v.Details
	return &Video{
		ID:            d.ID(),
		Title:         d.Title(),
		Author:        d.Author(),
		ChannelID:     d.ChannelID(),
		LengthSeconds: d.LengthSeconds(),
		ViewCount:     d.ViewCount(),
		IsLive:        d.IsLive(),
		Keywords:      d.Keywords(),
		Thumbnails:    d.Thumbnails(),
		Formats:       lo.Map(v.Formats, func(f youtube.Format, _ int) youtube.FormatInfo { return youtube.Describe(f) }),
	}
}

func asJson(videos []*youtube.Video, ids []string) ([]byte, error) {
	return json.Marshal(&Output{
		IDs:    ids,
		Result: lo.Map(videos, func(v *youtube.Video, _ int) *Video { return newVideo(v) }),
	})
}
