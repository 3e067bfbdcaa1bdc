// Package youtube extracts video details and stream formats from the escaped
// JSON embedded in a watch page.
package youtube

import "fmt"

// Video is the result of one extraction.
type Video struct {
	Details *VideoDetails `json:"details"`
	// Formats lists progressive formats first, then adaptive ones, each in page order.
	Formats Formats `json:"formats"`
}

// String returns "title (id)", or the id alone for untitled videos.
func (v *Video) String() string {
	if title := v.Details.Title(); title != "" {
		return fmt.Sprintf("%s (%s)", title, v.Details.ID())
	}
	return v.Details.ID()
}
