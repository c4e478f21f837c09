// Package resolver turns a Naver Map reference (naver.me short link, map URL,
// place URL or plain text) into a Google Maps location.
//
// Resolution runs a fixed chain of extraction stages against the input, each
// one handling a different URL shape. The first stage that produces
// coordinates wins; when none does, the input becomes a Google Maps text
// search, which always succeeds.
package resolver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/codingsince1985/geo-golang"

	"github.com/manzanit0/naver2google/pkg/naver"
)

const ShortLinkMarker = "naver.me/"

var (
	ErrEmptyInput          = errors.New("empty input")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// Location is the outcome of a resolution. Coordinates is nil when the input
// could only be turned into a text search. TargetURL is always set.
type Location struct {
	Coordinates *geo.Location
	Name        string
	TargetURL   string
}

func (l Location) MarshalJSON() ([]byte, error) {
	v := struct {
		Lat       *float64 `json:"lat"`
		Lng       *float64 `json:"lng"`
		Name      string   `json:"name"`
		GoogleURL string   `json:"google_url"`
	}{Name: l.Name, GoogleURL: l.TargetURL}

	if l.Coordinates != nil {
		v.Lat = &l.Coordinates.Lat
		v.Lng = &l.Coordinates.Lng
	}

	return json.Marshal(v)
}

func newCoordinatesLocation(loc geo.Location, name string) *Location {
	return &Location{Coordinates: &loc, Name: name, TargetURL: CoordinatesURL(loc)}
}

// stage inspects a URL and reports whether it could extract a location.
type stage struct {
	name string
	fn   func(ctx context.Context, u string) (*Location, bool)
}

type Resolver struct {
	naver naver.Client
}

func New(c naver.Client) *Resolver {
	return &Resolver{naver: c}
}

// Resolve converts input into a Google Maps location. It only fails on blank
// input, or when a short link could not be expanded and nothing else in the
// unexpanded link is usable.
func (r *Resolver) Resolve(ctx context.Context, input string) (*Location, error) {
	u := strings.TrimSpace(input)
	if u == "" {
		return nil, ErrEmptyInput
	}

	var expandErr error
	if IsShortLink(u) {
		expanded, err := r.naver.FollowShortLink(ctx, u)
		if err != nil {
			slog.WarnContext(ctx, "unable to expand short link", "url", u, "error", err.Error())
			expandErr = err
		} else {
			slog.InfoContext(ctx, "expanded short link", "url", u, "expanded", expanded)
			u = expanded
		}
	}

	stages := []stage{
		{name: "query_params", fn: r.fromQueryParams},
		{name: "place_id", fn: r.fromPlaceID},
		{name: "embedded_coordinates", fn: fromEmbeddedCoordinates},
	}

	for _, s := range stages {
		if loc, ok := s.fn(ctx, u); ok {
			slog.InfoContext(ctx, "resolved location", "stage", s.name, "url", u, "target_url", loc.TargetURL)
			return loc, nil
		}
	}

	if expandErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, expandErr)
	}

	loc := fromSearchQuery(u)
	slog.InfoContext(ctx, "resolved location", "stage", "search", "url", u, "target_url", loc.TargetURL)

	return loc, nil
}

func IsShortLink(u string) bool {
	return strings.Contains(u, ShortLinkMarker)
}

// lookupPlace is the best-effort place summary call shared by the query
// params and place ID stages.
func (r *Resolver) lookupPlace(ctx context.Context, placeID string) (*naver.Place, bool) {
	p, err := r.naver.PlaceSummary(ctx, placeID)
	if err != nil {
		slog.WarnContext(ctx, "place lookup failed", "place_id", placeID, "error", err.Error())
		return nil, false
	}

	return p, true
}

func (r *Resolver) fromQueryParams(ctx context.Context, u string) (*Location, bool) {
	coords, ok := CoordinatesFromQuery(u)
	if !ok {
		return nil, false
	}

	var name string
	if placeID, ok := PlaceID(u); ok {
		if p, ok := r.lookupPlace(ctx, placeID); ok {
			name = p.Name
		}
	}

	return newCoordinatesLocation(coords, name), true
}

func (r *Resolver) fromPlaceID(ctx context.Context, u string) (*Location, bool) {
	placeID, ok := PlaceID(u)
	if !ok {
		return nil, false
	}

	p, ok := r.lookupPlace(ctx, placeID)
	if !ok {
		return nil, false
	}

	return newCoordinatesLocation(p.Coordinates, p.Name), true
}

func fromEmbeddedCoordinates(_ context.Context, u string) (*Location, bool) {
	coords, ok := EmbeddedCoordinates(u)
	if !ok {
		return nil, false
	}

	return newCoordinatesLocation(coords, ""), true
}

func fromSearchQuery(u string) *Location {
	query := unquote(u)
	return &Location{Name: query, TargetURL: SearchURL(query)}
}
