package youtube

import (
	"regexp"
	"strings"
)

var escapedQuote = regexp.MustCompile(`\\{1,2}"`)

// Unescape turns a fragment embedded as a JSON string literal back into
// parsable JSON. Quotes escaped once or twice become plain quotes, and the
// \u0026 escape used inside URLs becomes '&'. Nothing else is decoded.
func Unescape(fragment string) string {
	s := escapedQuote.ReplaceAllLiteralString(fragment, `"`)
	return strings.ReplaceAll(s, `\u0026`, "&")
}
