package resolver

import (
	"testing"

	"github.com/codingsince1985/geo-golang"
	"github.com/stretchr/testify/assert"
)

func TestPlaceID(t *testing.T) {
	testCases := []struct {
		desc   string
		url    string
		want   string
		wantOk bool
	}{
		{desc: "entry place url", url: "https://map.naver.com/p/entry/place/1234567", want: "1234567", wantOk: true},
		{desc: "place url with query", url: "https://map.naver.com/p/place/42?c=15.00", want: "42", wantOk: true},
		{desc: "mobile place url", url: "https://m.place.naver.com/place/31337/home", want: "31337", wantOk: true},
		{desc: "non numeric id", url: "https://map.naver.com/p/place/abc", wantOk: false},
		{desc: "no place segment", url: "https://map.naver.com/v5/search/cafe", wantOk: false},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			got, ok := PlaceID(tC.url)

			assert.Equal(t, tC.wantOk, ok)
			assert.Equal(t, tC.want, got)
		})
	}
}

func TestCoordinatesFromQuery(t *testing.T) {
	testCases := []struct {
		desc   string
		url    string
		want   geo.Location
		wantOk bool
	}{
		{desc: "both params", url: "https://map.naver.com/?lat=37.5&lng=127.1", want: geo.Location{Lat: 37.5, Lng: 127.1}, wantOk: true},
		{desc: "integer params", url: "https://map.naver.com/?lng=127&lat=37", want: geo.Location{Lat: 37, Lng: 127}, wantOk: true},
		{desc: "fragment is ignored", url: "https://map.naver.com/?lat=37.5&lng=127.1#lat=1", want: geo.Location{Lat: 37.5, Lng: 127.1}, wantOk: true},
		{desc: "lat or lng after a fragment do not count", url: "https://map.naver.com/?lat=37.5#lng=127.1", wantOk: false},
		{desc: "no query", url: "https://map.naver.com/lat=37.5&lng=127.1", wantOk: false},
		{desc: "empty lat", url: "https://map.naver.com/?lat=&lng=127.1", wantOk: false},
		{desc: "not a number", url: "https://map.naver.com/?lat=abc&lng=127.1", wantOk: false},
		{desc: "infinity is rejected", url: "https://map.naver.com/?lat=Inf&lng=127.1", wantOk: false},
		{desc: "nan is rejected", url: "https://map.naver.com/?lat=37&lng=NaN", wantOk: false},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			got, ok := CoordinatesFromQuery(tC.url)

			assert.Equal(t, tC.wantOk, ok)
			assert.Equal(t, tC.want, got)
		})
	}
}

func TestEmbeddedCoordinates(t *testing.T) {
	testCases := []struct {
		desc   string
		url    string
		want   geo.Location
		wantOk bool
	}{
		{desc: "map viewer center", url: "https://map.naver.com/v5/@37.123,127.456,15z", want: geo.Location{Lat: 37.123, Lng: 127.456}, wantOk: true},
		{desc: "negative values", url: "/@-12.5,-45.25", want: geo.Location{Lat: -12.5, Lng: -45.25}, wantOk: true},
		{desc: "integers are not enough", url: "https://map.naver.com/v5/@37,127", wantOk: false},
		{desc: "no at sign", url: "https://map.naver.com/v5/37.123,127.456", wantOk: false},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			got, ok := EmbeddedCoordinates(tC.url)

			assert.Equal(t, tC.wantOk, ok)
			assert.Equal(t, tC.want, got)
		})
	}
}

func TestQuote(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{in: "abcXYZ019-_.~", want: "abcXYZ019-_.~"},
		{in: "a b", want: "a%20b"},
		{in: "https://naver.me/x", want: "https%3A//naver.me/x"},
		{in: "a+b&c=d@e", want: "a%2Bb%26c%3Dd%40e"},
		{in: "역", want: "%EC%97%AD"},
	}

	for _, tC := range testCases {
		assert.Equal(t, tC.want, quote(tC.in))
	}
}

func TestUnquote(t *testing.T) {
	testCases := []struct {
		desc string
		in   string
		want string
	}{
		{desc: "utf-8 escapes", in: "%EC%84%9C%EC%9A%B8%EC%97%AD", want: "서울역"},
		{desc: "plus is not a space", in: "a+b%20c", want: "a+b c"},
		{desc: "trailing percent", in: "100%", want: "100%"},
		{desc: "truncated escape", in: "abc%2", want: "abc%2"},
		{desc: "valid escapes around a bad one are decoded", in: "100% 맛집 %EC%84%9C%EC%9A%B8", want: "100% 맛집 서울"},
		{desc: "non hex escape is kept", in: "%zz%41", want: "%zzA"},
		{desc: "lowercase hex", in: "%ec%97%ad", want: "역"},
		{desc: "invalid utf-8 becomes the replacement character", in: "%FF cafe", want: "\uFFFD cafe"},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			assert.Equal(t, tC.want, unquote(tC.in))
		})
	}
}

func TestCoordinatesURL(t *testing.T) {
	assert.Equal(t, "https://www.google.com/maps?q=37.5,127.0", CoordinatesURL(geo.Location{Lat: 37.5, Lng: 127}))
	assert.Equal(t, "https://www.google.com/maps?q=0.000001,-0.5", CoordinatesURL(geo.Location{Lat: 0.000001, Lng: -0.5}))
	assert.Equal(t, "https://www.google.com/maps?q=-33.0,0.0", CoordinatesURL(geo.Location{Lat: -33, Lng: 0}))
}
