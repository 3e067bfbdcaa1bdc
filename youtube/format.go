package youtube

import (
	"mime"
	"strings"

	"github.com/samber/lo"
	"github.com/segmentio/encoding/json"
	"github.com/tubefetch/tubefetch/jsonvalue"
)

// Kind tells which streams a format carries.
type Kind int

const (
	KindAudio Kind = iota + 1
	KindVideo
	KindAudioVideo
)

func (k Kind) String() string {
	switch k {
	case KindAudio:
		return "audio"
	case KindVideo:
		return "video"
	case KindAudioVideo:
		return "audio+video"
	default:
		return "unknown"
	}
}

// Format is one downloadable stream of a video.
type Format interface {
	Itag() int
	// URL is empty for formats that only carry a signature cipher.
	URL() string
	SignatureCipher() string
	Ciphered() bool
	MimeType() string
	Extension() string
	Codecs() []string
	Bitrate() int
	ContentLength() int64
	Kind() Kind
	// Raw is the format entry exactly as found in the page.
	Raw() jsonvalue.Value
}

// AudioAttributes is implemented by formats carrying an audio stream.
type AudioAttributes interface {
	AudioSampleRate() int
	AudioChannels() int
	AudioQuality() string
}

// VideoAttributes is implemented by formats carrying a video stream.
type VideoAttributes interface {
	Width() int
	Height() int
	FPS() int
	QualityLabel() string
}

type common struct {
	itag          int
	url           string
	cipher        string
	mimeType      string
	bitrate       int
	contentLength int64
	raw           jsonvalue.Value
}

func newCommon(v jsonvalue.Value) (common, error) {
	itag, err := v.Int("itag")
	if err != nil {
		return common{}, err
	}

	mimeType, err := v.Str("mimeType")
	if err != nil {
		return common{}, err
	}

	// An empty payload is as good as none.
	url := v.OptStr("url").OrEmpty()
	cipher := v.OptStr("signatureCipher").OrEmpty()
	if lo.IsEmpty(cipher) {
		cipher = v.OptStr("cipher").OrEmpty()
	}
	if lo.IsEmpty(url) && lo.IsEmpty(cipher) {
		return common{}, &jsonvalue.FieldError{Path: []string{"url"}, Err: jsonvalue.ErrMissing}
	}

	return common{
		itag:          int(itag),
		url:           url,
		cipher:        cipher,
		mimeType:      mimeType,
		bitrate:       int(v.OptInteger("bitrate").OrEmpty()),
		contentLength: v.OptInteger("contentLength").OrEmpty(),
		raw:           v,
	}, nil
}

func (c *common) Itag() int               { return c.itag }
func (c *common) URL() string             { return c.url }
func (c *common) SignatureCipher() string { return c.cipher }
func (c *common) Ciphered() bool          { return c.url == "" }
func (c *common) MimeType() string        { return c.mimeType }
func (c *common) Bitrate() int            { return c.bitrate }
func (c *common) ContentLength() int64    { return c.contentLength }
func (c *common) Raw() jsonvalue.Value    { return c.raw }

// Extension returns the subtype of the mime type, e.g. "mp4" for `video/mp4; codecs="avc1"`.
func (c *common) Extension() string {
	media, _, err := mime.ParseMediaType(c.mimeType)
	if err != nil {
		media, _, _ = strings.Cut(c.mimeType, ";")
	}
	_, sub, _ := strings.Cut(strings.TrimSpace(media), "/")
	return sub
}

// Codecs returns the codecs parameter of the mime type, split on commas.
func (c *common) Codecs() []string {
	_, params, err := mime.ParseMediaType(c.mimeType)
	if err != nil || params["codecs"] == "" {
		return nil
	}
	return lo.Map(strings.Split(params["codecs"], ","), func(s string, _ int) string {
		return strings.TrimSpace(s)
	})
}

type audio struct {
	sampleRate int
	channels   int
	quality    string
}

func newAudio(v jsonvalue.Value) audio {
	return audio{
		sampleRate: int(v.OptInteger("audioSampleRate").OrEmpty()),
		channels:   int(v.OptInteger("audioChannels").OrEmpty()),
		quality:    v.OptStr("audioQuality").OrEmpty(),
	}
}

func (a *audio) AudioSampleRate() int { return a.sampleRate }
func (a *audio) AudioChannels() int   { return a.channels }
func (a *audio) AudioQuality() string { return a.quality }

type video struct {
	width        int
	height       int
	fps          int
	qualityLabel string
}

func newVideo(v jsonvalue.Value) video {
	return video{
		width:        int(v.OptInteger("width").OrEmpty()),
		height:       int(v.OptInteger("height").OrEmpty()),
		fps:          int(v.OptInteger("fps").OrEmpty()),
		qualityLabel: v.OptStr("qualityLabel").OrEmpty(),
	}
}

func (v *video) Width() int           { return v.width }
func (v *video) Height() int          { return v.height }
func (v *video) FPS() int             { return v.fps }
func (v *video) QualityLabel() string { return v.qualityLabel }

// AudioFormat is an adaptive stream with audio only.
type AudioFormat struct {
	common
	audio
}

// NewAudioFormat builds an AudioFormat from a format entry.
func NewAudioFormat(v jsonvalue.Value) (*AudioFormat, error) {
	c, err := newCommon(v)
	if err != nil {
		return nil, err
	}
	return &AudioFormat{common: c, audio: newAudio(v)}, nil
}

// Kind is always KindAudio.
func (*AudioFormat) Kind() Kind { return KindAudio }

// MarshalJSON encodes the format as its FormatInfo.
func (f *AudioFormat) MarshalJSON() ([]byte, error) { return json.Marshal(Describe(f)) }

// VideoFormat is an adaptive stream with video only.
type VideoFormat struct {
	common
	video
}

// NewVideoFormat builds a VideoFormat from a format entry.
func NewVideoFormat(v jsonvalue.Value) (*VideoFormat, error) {
	c, err := newCommon(v)
	if err != nil {
		return nil, err
	}
	return &VideoFormat{common: c, video: newVideo(v)}, nil
}

// Kind is always KindVideo.
func (*VideoFormat) Kind() Kind { return KindVideo }

// MarshalJSON encodes the format as its FormatInfo.
func (f *VideoFormat) MarshalJSON() ([]byte, error) { return json.Marshal(Describe(f)) }

// AudioVideoFormat is a progressive stream with audio and video muxed together.
type AudioVideoFormat struct {
	common
	audio
	video
}

// NewAudioVideoFormat builds an AudioVideoFormat from a format entry.
func NewAudioVideoFormat(v jsonvalue.Value) (*AudioVideoFormat, error) {
	c, err := newCommon(v)
	if err != nil {
		return nil, err
	}
	return &AudioVideoFormat{common: c, audio: newAudio(v), video: newVideo(v)}, nil
}

// Kind is always KindAudioVideo.
func (*AudioVideoFormat) Kind() Kind { return KindAudioVideo }

// MarshalJSON encodes the format as its FormatInfo.
func (f *AudioVideoFormat) MarshalJSON() ([]byte, error) { return json.Marshal(Describe(f)) }

// FormatInfo is the flat, serializable description of a Format.
type FormatInfo struct {
	Itag            int      `json:"itag"`
	Kind            string   `json:"kind"`
	MimeType        string   `json:"mimeType"`
	Extension       string   `json:"extension"`
	Codecs          []string `json:"codecs,omitempty"`
	URL             string   `json:"url,omitempty"`
	SignatureCipher string   `json:"signatureCipher,omitempty"`
	Bitrate         int      `json:"bitrate,omitempty"`
	ContentLength   int64    `json:"contentLength,omitempty"`
	Width           int      `json:"width,omitempty"`
	Height          int      `json:"height,omitempty"`
	FPS             int      `json:"fps,omitempty"`
	QualityLabel    string   `json:"qualityLabel,omitempty"`
	AudioSampleRate int      `json:"audioSampleRate,omitempty"`
	AudioChannels   int      `json:"audioChannels,omitempty"`
	AudioQuality    string   `json:"audioQuality,omitempty"`
}

// Describe flattens f into a FormatInfo.
func Describe(f Format) FormatInfo {
	info := FormatInfo{
		Itag:            f.Itag(),
		Kind:            f.Kind().String(),
		MimeType:        f.MimeType(),
		Extension:       f.Extension(),
		Codecs:          f.Codecs(),
		URL:             f.URL(),
		SignatureCipher: f.SignatureCipher(),
		Bitrate:         f.Bitrate(),
		ContentLength:   f.ContentLength(),
	}

	if a, ok := f.(AudioAttributes); ok {
		info.AudioSampleRate = a.AudioSampleRate()
		info.AudioChannels = a.AudioChannels()
		info.AudioQuality = a.AudioQuality()
	}

	if v, ok := f.(VideoAttributes); ok {
		info.Width = v.Width()
		info.Height = v.Height()
		info.FPS = v.FPS()
		info.QualityLabel = v.QualityLabel()
	}

	return info
}

// Formats is an ordered list of formats. Selectors keep the source order.
type Formats []Format

// OfKind returns the formats of the given kinds.
func (fs Formats) OfKind(kinds ...Kind) Formats {
	return lo.Filter(fs, func(f Format, _ int) bool {
		return lo.Contains(kinds, f.Kind())
	})
}

// Audio returns the audio-only formats.
func (fs Formats) Audio() Formats { return fs.OfKind(KindAudio) }

// Video returns the video-only formats.
func (fs Formats) Video() Formats { return fs.OfKind(KindVideo) }

// AudioVideo returns the progressive formats.
func (fs Formats) AudioVideo() Formats { return fs.OfKind(KindAudioVideo) }

// WithAudio returns formats carrying an audio stream.
func (fs Formats) WithAudio() Formats {
	return fs.OfKind(KindAudio, KindAudioVideo)
}

// WithVideo returns formats carrying a video stream.
func (fs Formats) WithVideo() Formats {
	return fs.OfKind(KindVideo, KindAudioVideo)
}

// Downloadable returns formats exposing a direct URL.
func (fs Formats) Downloadable() Formats {
	return lo.Filter(fs, func(f Format, _ int) bool {
		return !f.Ciphered()
	})
}

// ByItag returns the first format with the given itag.
func (fs Formats) ByItag(itag int) (Format, bool) {
	return lo.Find(fs, func(f Format) bool {
		return f.Itag() == itag
	})
}
