package youtube

import "strings"

// Markers delimiting the escaped JSON embedded in a watch page.
const (
	detailsMarker     = `\"videoDetails\":`
	annotationsMarker = `,\"annotations\"`
	formatsMarker     = `\"formats\"`
	formatsEnd        = `}]}`
)

// Layout names the watch page layout Locate reads: the player response
// embedded in a script as an escaped JSON string.
const Layout = "player_response/escaped-v1"

// Markers returns the literal markers Locate cuts fragments at, in search order.
func Markers() []string {
	return []string{detailsMarker, annotationsMarker, formatsMarker, formatsEnd}
}

// errorStatusMarkers signal a playability error, raw and escaped.
var errorStatusMarkers = []string{
	`"status":"ERROR"`,
	`\"status\":\"ERROR\"`,
}

// Fragments holds the still-escaped JSON text cut out of a watch page.
type Fragments struct {
	// Details is the video details object, empty when HasDetails is false.
	Details    string
	HasDetails bool

	// Formats is a complete object holding the formats and adaptiveFormats arrays.
	Formats string
}

// Locate cuts the details and formats fragments out of page.
//
// Details are best-effort: a missing marker leaves them empty. A missing
// formats marker is an *ExtractionError of kind ErrVideoUnavailable when the
// page carries an error status and ErrBadPage otherwise.
func Locate(page string) (Fragments, error) {
	var f Fragments

	if begin := strings.Index(page, detailsMarker); begin != -1 {
		begin += len(detailsMarker)
		if end := strings.Index(page[begin:], annotationsMarker); end != -1 {
			f.Details = page[begin : begin+end]
			f.HasDetails = true
		}
	}

	begin := strings.Index(page, formatsMarker)
	if begin == -1 {
		for _, m := range errorStatusMarkers {
			if strings.Contains(page, m) {
				return Fragments{}, unavailable("", "page reports an error status")
			}
		}
		return Fragments{}, badPage("", "formats marker not found", nil)
	}

	end := strings.Index(page[begin:], formatsEnd)
	if end == -1 {
		return Fragments{}, badPage("", "formats fragment is not terminated", nil)
	}

	// The marker sits right after the opening brace of the streaming data object.
	f.Formats = "{" + page[begin:begin+end+len(formatsEnd)]
	return f, nil
}
