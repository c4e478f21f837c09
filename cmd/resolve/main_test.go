package main

import (
	"bytes"
	"testing"

	"github.com/codingsince1985/geo-golang"
	"github.com/stretchr/testify/assert"

	"github.com/manzanit0/naver2google/pkg/resolver"
)

func TestRender(t *testing.T) {
	testCases := []struct {
		desc    string
		loc     *resolver.Location
		want    []string
		notWant []string
	}{
		{
			desc: "when coordinates are known, they are printed",
			loc: &resolver.Location{
				Coordinates: &geo.Location{Lat: 37.5, Lng: 127.25},
				Name:        "Cafe X",
				TargetURL:   "https://www.google.com/maps?q=37.5,127.25",
			},
			want: []string{"Cafe X", "37.5", "127.25", "https://www.google.com/maps?q=37.5,127.25"},
		},
		{
			desc: "when the result is a text search, coordinates are dashes",
			loc: &resolver.Location{
				Name:      "Myeongdong",
				TargetURL: "https://www.google.com/maps/search/Myeongdong",
			},
			want:    []string{"Myeongdong", "https://www.google.com/maps/search/Myeongdong"},
			notWant: []string{"37.5"},
		},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			var buf bytes.Buffer
			render(&buf, "input", tC.loc)

			out := buf.String()
			assert.Contains(t, out, "FIELD")
			assert.Contains(t, out, "Google Maps")
			for _, s := range tC.want {
				assert.Contains(t, out, s)
			}
			for _, s := range tC.notWant {
				assert.NotContains(t, out, s)
			}
		})
	}
}
