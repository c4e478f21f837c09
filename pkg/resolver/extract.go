package resolver

import (
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/codingsince1985/geo-golang"
)

var (
	rePlaceID = regexp.MustCompile(`/place/(\d+)`)
	reAt      = regexp.MustCompile(`@(-?\d+\.\d+),(-?\d+\.\d+)`)
)

// CoordinatesFromQuery reads the lat and lng query parameters of u. Only the
// text between '?' and '#' is considered, so it also works on custom schemes
// such as nmap://.
func CoordinatesFromQuery(u string) (geo.Location, bool) {
	_, rawQuery, found := strings.Cut(u, "?")
	if !found {
		return geo.Location{}, false
	}

	rawQuery, _, _ = strings.Cut(rawQuery, "#")

	// ParseQuery keeps whatever pairs it could decode even when it errors.
	params, _ := url.ParseQuery(rawQuery)
	if !params.Has("lat") || !params.Has("lng") {
		return geo.Location{}, false
	}

	return parsePair(params.Get("lat"), params.Get("lng"))
}

// PlaceID extracts the numeric ID following /place/ in u.
func PlaceID(u string) (string, bool) {
	m := rePlaceID.FindStringSubmatch(u)
	if len(m) != 2 {
		return "", false
	}

	return m[1], true
}

// EmbeddedCoordinates finds the @lat,lng map center used by map viewer URLs.
func EmbeddedCoordinates(u string) (geo.Location, bool) {
	m := reAt.FindStringSubmatch(u)
	if len(m) != 3 {
		return geo.Location{}, false
	}

	return parsePair(m[1], m[2])
}

func parsePair(lat, lng string) (geo.Location, bool) {
	la, ok := parseDegrees(lat)
	if !ok {
		return geo.Location{}, false
	}

	lo, ok := parseDegrees(lng)
	if !ok {
		return geo.Location{}, false
	}

	return geo.Location{Lat: la, Lng: lo}, true
}

func parseDegrees(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	return f, true
}
