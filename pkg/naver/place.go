package naver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/codingsince1985/geo-golang"
)

// PlaceSummary fetches the summary of a place by its numeric ID. Both
// coordinates are required; the name is optional.
func (c *client) PlaceSummary(ctx context.Context, placeID string) (*Place, error) {
	endpoint := fmt.Sprintf("%s/%s", strings.TrimSuffix(c.placeAPI, "/"), url.PathEscape(placeID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create place summary request: %w", err)
	}

	setBrowserHeaders(req)

	res, err := c.h.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: place summary request: %s", ErrLookupUnavailable, err.Error())
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read place summary body: %s", ErrLookupUnavailable, err.Error())
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected response: (%d) %s", ErrLookupUnavailable, res.StatusCode, string(data))
	}

	var d PlaceSummaryResponse
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("%w: unmarshal place summary: %s", ErrLookupUnavailable, err.Error())
	}

	detail := d.Data.PlaceDetail
	if detail.Coordinate.Latitude == nil || detail.Coordinate.Longitude == nil {
		return nil, fmt.Errorf("%w: place %s has no coordinates", ErrLookupUnavailable, placeID)
	}

	return &Place{
		Coordinates: geo.Location{
			Lat: float64(*detail.Coordinate.Latitude),
			Lng: float64(*detail.Coordinate.Longitude),
		},
		Name: detail.Name,
	}, nil
}

type PlaceSummaryResponse struct {
	Data struct {
		PlaceDetail PlaceDetail `json:"placeDetail"`
	} `json:"data"`
}

type PlaceDetail struct {
	Name       string `json:"name"`
	Coordinate struct {
		Latitude  *Degrees `json:"latitude"`
		Longitude *Degrees `json:"longitude"`
	} `json:"coordinate"`
}

// Degrees accepts both JSON numbers and numeric strings, since the summary API
// has been seen returning either.
type Degrees float64

func (d *Degrees) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return fmt.Errorf("null coordinate")
	}

	s := string(b)
	if len(b) > 1 && b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("invalid coordinate %s: %w", string(b), err)
	}

	*d = Degrees(f)
	return nil
}
