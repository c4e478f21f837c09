package naver

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"

	"golang.org/x/net/publicsuffix"
)

// FollowShortLink issues a HEAD request against a naver.me link, follows every
// redirect and returns the URL of the last hop. Each call gets its own cookie
// jar so nothing leaks between conversions.
func (c *client) FollowShortLink(ctx context.Context, shortURL string) (string, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return "", fmt.Errorf("create cookie jar: %w", err)
	}

	h := *c.h
	h.Jar = jar
	h.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		if len(via) >= MaxRedirects {
			return fmt.Errorf("stopped after %d redirects", MaxRedirects)
		}

		for key, val := range via[0].Header {
			req.Header[key] = val
		}

		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, shortURL, nil)
	if err != nil {
		return "", fmt.Errorf("create short link request: %w", err)
	}

	setBrowserHeaders(req)

	res, err := h.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: follow short link: %s", ErrLookupUnavailable, err.Error())
	}
	defer res.Body.Close()

	if res.Request == nil || res.Request.URL == nil {
		return "", fmt.Errorf("%w: unable to determine final url of %s", ErrLookupUnavailable, shortURL)
	}

	return res.Request.URL.String(), nil
}
