package youtube

import (
	"github.com/samber/lo"
	"github.com/segmentio/encoding/json"
	"github.com/tubefetch/tubefetch/jsonvalue"
)

// VideoDetails is the identifier of a video plus whatever fields the page's
// details object carried. Fields are platform-controlled, so accessors fall
// back to zero values and Field exposes everything else.
type VideoDetails struct {
	id     string
	fields jsonvalue.Value
}

// Thumbnail is one preview image of a video.
type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// NewVideoDetails pairs id with a details object. Anything but an object is ignored.
func NewVideoDetails(id string, fields jsonvalue.Value) *VideoDetails {
	if fields.Kind() != jsonvalue.Object {
		fields = jsonvalue.Value{}
	}
	return &VideoDetails{id: id, fields: fields}
}

// ID is the identifier the video was requested with. It is always set.
func (d *VideoDetails) ID() string { return d.id }

// Title is the video title.
func (d *VideoDetails) Title() string { return d.fields.OptStr("title").OrEmpty() }

// Author is the display name of the uploading channel.
func (d *VideoDetails) Author() string { return d.fields.OptStr("author").OrEmpty() }

// ChannelID identifies the uploading channel.
func (d *VideoDetails) ChannelID() string { return d.fields.OptStr("channelId").OrEmpty() }

// ShortDescription is the description text, possibly truncated by the platform.
func (d *VideoDetails) ShortDescription() string {
	return d.fields.OptStr("shortDescription").OrEmpty()
}

// LengthSeconds is the duration of the video. Zero for live streams.
func (d *VideoDetails) LengthSeconds() int {
	return int(d.fields.OptInteger("lengthSeconds").OrEmpty())
}

// ViewCount is the number of views when the page was served.
func (d *VideoDetails) ViewCount() int64 { return d.fields.OptInteger("viewCount").OrEmpty() }

// IsLive reports whether the video is live content.
func (d *VideoDetails) IsLive() bool { return d.fields.OptBool("isLiveContent").OrEmpty() }

// AverageRating is the average user rating, zero when the page omits it.
func (d *VideoDetails) AverageRating() float64 {
	rating, err := d.fields.Float("averageRating")
	if err != nil {
		return 0
	}
	return rating
}

// IdentifierOnly reports whether the page yielded no details beyond the id.
func (d *VideoDetails) IdentifierOnly() bool { return d.fields.IsMissing() }

// Raw returns the details object as found in the page. Missing when IdentifierOnly.
func (d *VideoDetails) Raw() jsonvalue.Value { return d.fields }

// Keywords returns the string keywords, skipping non-string entries.
func (d *VideoDetails) Keywords() []string {
	items, err := d.fields.Array("keywords")
	if err != nil {
		return nil
	}
	return lo.FilterMap(items, func(v jsonvalue.Value, _ int) (string, bool) {
		s, err := v.Str()
		return s, err == nil
	})
}

// Thumbnails returns the preview images, skipping entries without a URL.
func (d *VideoDetails) Thumbnails() []Thumbnail {
	items, err := d.fields.Array("thumbnail", "thumbnails")
	if err != nil {
		return nil
	}
	return lo.FilterMap(items, func(v jsonvalue.Value, _ int) (Thumbnail, bool) {
		url, err := v.Str("url")
		if err != nil {
			return Thumbnail{}, false
		}
		return Thumbnail{
			URL:    url,
			Width:  int(v.OptInteger("width").OrEmpty()),
			Height: int(v.OptInteger("height").OrEmpty()),
		}, true
	})
}

// Field returns the raw value at path inside the details object.
func (d *VideoDetails) Field(path ...string) (jsonvalue.Value, error) {
	return d.fields.Get(path...)
}

// Has reports whether the details object has a value at path.
func (d *VideoDetails) Has(path ...string) bool {
	return d.fields.Has(path...)
}

// Keys returns the top-level keys found in the details object.
func (d *VideoDetails) Keys() []string {
	return d.fields.Keys()
}

// MarshalJSON emits the id next to the details object as found in the page.
func (d *VideoDetails) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID     string          `json:"id"`
		Fields jsonvalue.Value `json:"fields"`
	}{d.id, d.fields})
}
