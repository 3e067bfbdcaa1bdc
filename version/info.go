package version

import (
	"runtime"
	"strings"

	"github.com/spf13/viper"
	"github.com/tubefetch/tubefetch/constant"
	"github.com/tubefetch/tubefetch/key"
	"github.com/tubefetch/tubefetch/youtube"
)

// Info describes the running build and the watch pages it can read.
type Info struct {
	App      string   `json:"app"`
	Version  string   `json:"version"`
	Revision string   `json:"revision"`
	BuiltAt  string   `json:"builtAt"`
	BuiltBy  string   `json:"builtBy"`
	Platform string   `json:"platform"`
	Host     string   `json:"host"`
	Layout   string   `json:"pageLayout"`
	Markers  []string `json:"markers"`
}

// Current returns the Info of this build. Host is the configured watch page host.
func Current() Info {
	host := viper.GetString(key.FetchHost)
	if host == "" {
		host = constant.Host
	}

	return Info{
		App:      constant.App,
		Version:  constant.Version,
		Revision: constant.Revision,
		BuiltAt:  strings.TrimSpace(constant.BuiltAt),
		BuiltBy:  constant.BuiltBy,
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
		Host:     host,
		Layout:   youtube.Layout,
		Markers:  youtube.Markers(),
	}
}
