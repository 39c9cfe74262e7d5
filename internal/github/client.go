package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultApiUrl = "https://api.github.com"

// FetchError is returned by FetchGists for any failure reaching the upstream
// API: a non-200 status, a transport error or an undecodable body.
type FetchError struct {
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return "cannot fetch gists: " + e.Err.Error()
	}
	return fmt.Sprintf("bad http status (%d)", e.StatusCode)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

type Client struct {
	UserAgent string

	apiUrl string
	client *http.Client
}

func NewClient(apiUrl string, timeout time.Duration) *Client {
	if apiUrl == "" {
		apiUrl = DefaultApiUrl
	}

	return &Client{
		UserAgent: "gistindex",
		apiUrl:    strings.TrimSuffix(apiUrl, "/"),
		client:    &http.Client{Timeout: timeout},
	}
}

// GistsURL returns the gist listing endpoint of user.
func (c *Client) GistsURL(user string) string {
	return c.apiUrl + "/users/" + url.PathEscape(user) + "/gists"
}

// FetchGists lists the public gists of user. Each call is a fresh round trip
// to the API.
func (c *Client) FetchGists(ctx context.Context, user string) ([]Gist, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.GistsURL(user), nil)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", c.UserAgent)

	res, err := c.client.Do(req)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, res.Body)
		return nil, &FetchError{StatusCode: res.StatusCode}
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &FetchError{StatusCode: res.StatusCode, Err: err}
	}

	var gists []Gist
	if err = json.Unmarshal(body, &gists); err != nil {
		return nil, &FetchError{StatusCode: res.StatusCode, Err: err}
	}

	return gists, nil
}
