// Package feedtext cleans up free-text fields coming from the upstream
// inventory feed. Field values arrive with HTML character entities still
// encoded, and rich-text fields additionally carry presentational wrapper
// markup that the site never renders.
package feedtext

import (
	"regexp"
	"strconv"
	"strings"
)

// namedEntities is the fixed set the feed is known to emit. Anything else
// passes through untouched.
var namedEntities = map[string]string{
	"&amp;":  "&",
	"&lt;":   "<",
	"&gt;":   ">",
	"&quot;": `"`,
	"&#39;":  "'",
}

var (
	entityPattern = regexp.MustCompile(`&[#\w]+;`)
	// opening or closing p, div and h2 tags, with any attributes
	wrapperTagPattern = regexp.MustCompile(`(?i)</?(?:p|div|h2)\b[^>]*>`)
)

// Decode replaces named and numeric character entities with their literal
// characters. Numeric entities may be decimal (&#1040;) or hexadecimal
// (&#x410;). Unrecognized named entities are left as-is rather than failing.
func Decode(text string) string {
	if text == "" {
		return ""
	}

	return entityPattern.ReplaceAllStringFunc(text, func(match string) string {
		switch {
		case strings.HasPrefix(match, "&#x"), strings.HasPrefix(match, "&#X"):
			code, err := strconv.ParseInt(match[3:len(match)-1], 16, 32)
			if err != nil {
				return match
			}

			return string(rune(code))
		case strings.HasPrefix(match, "&#"):
			code, err := strconv.ParseInt(match[2:len(match)-1], 10, 32)
			if err != nil {
				return match
			}

			return string(rune(code))
		default:
			if literal, ok := namedEntities[match]; ok {
				return literal
			}

			return match
		}
	})
}

// DecodeRich decodes entities and then strips p, div and h2 wrapper tags,
// preserving their inner text. The feed wraps detail-record prose in
// fragments like <div style='...'><h2>...</h2></div>; tags outside this
// set are left untouched, this is not a general HTML sanitizer.
func DecodeRich(text string) string {
	if text == "" {
		return ""
	}

	return wrapperTagPattern.ReplaceAllString(Decode(text), "")
}
