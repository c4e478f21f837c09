package resolver

import (
	"strconv"
	"strings"

	"github.com/codingsince1985/geo-golang"
)

const (
	googleMapsURL       = "https://www.google.com/maps"
	googleMapsSearchURL = "https://www.google.com/maps/search/"
)

// CoordinatesURL points Google Maps at an exact location. Numbers are always
// rendered dot-decimal, without exponent.
func CoordinatesURL(loc geo.Location) string {
	return googleMapsURL + "?q=" + formatDegrees(loc.Lat) + "," + formatDegrees(loc.Lng)
}

// SearchURL builds a Google Maps text search for the given query.
func SearchURL(query string) string {
	return googleMapsSearchURL + quote(query)
}

// formatDegrees renders whole numbers with a trailing ".0" so 127 becomes
// "127.0" in the q parameter.
func formatDegrees(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}

// unquote decodes every valid %XX escape in s. Malformed escapes are copied
// through, '+' is kept as is, and each run of bytes that is not valid UTF-8
// becomes U+FFFD.
func unquote(s string) string {
	if !strings.Contains(s, "%") {
		return strings.ToValidUTF8(s, "\uFFFD")
	}

	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			b = append(b, unhex(s[i+1])<<4|unhex(s[i+2]))
			i += 2
			continue
		}

		b = append(b, s[i])
	}

	return strings.ToValidUTF8(string(b), "\uFFFD")
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

const upperhex = "0123456789ABCDEF"

// quote percent-encodes every byte except ASCII letters, digits, "_.-~" and
// "/". url.PathEscape leaves ":@&=+$," alone and escapes "/", which is not
// what Google expects in a search path.
func quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) || c == '/' {
			sb.WriteByte(c)
			continue
		}

		sb.WriteByte('%')
		sb.WriteByte(upperhex[c>>4])
		sb.WriteByte(upperhex[c&15])
	}

	return sb.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '_', c == '.', c == '~':
		return true
	}

	return false
}
