package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ErrUpstream is returned for any transport or provider failure. The
// handler turns it into one generic message; upstream error detail only
// reaches the server logs.
var ErrUpstream = errors.New("suggestion provider request failed")

// SuggestionClient proxies free-text queries to the external location
// suggestion provider. It is a deliberate pass-through: no caching, no
// retries, no reshaping of the provider's JSON.
type SuggestionClient struct {
	BaseURL string
	HTTP    *http.Client
}

func NewSuggestionClient(baseURL string) *SuggestionClient {
	return &SuggestionClient{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Fetch sends the percent-encoded input to the provider and returns the
// response body verbatim.
func (s *SuggestionClient) Fetch(ctx context.Context, input string) ([]byte, error) {
	u := s.BaseURL + "?input=" + url.QueryEscape(input)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	resp, err := s.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}
	return body, nil
}
