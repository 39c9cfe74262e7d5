package gist

import (
	"context"
	"strings"

	"github.com/thomiceli/gistindex/internal/github"
)

const DefaultGistUrl = "https://gist.github.com"

const (
	Odd  = "odd"
	Even = "even"
)

// Fetcher lists the gists of a user from the upstream API.
type Fetcher interface {
	FetchGists(ctx context.Context, user string) ([]github.Gist, error)
}

type File struct {
	Filename string
	RawURL   string
	Size     int64
}

// Gist is the display form of a gist record, one table row.
type Gist struct {
	ID          string
	URL         string
	Files       []File
	Description *string
	CreatedAt   string
	Parity      string
}

func (g Gist) DescriptionText() string {
	if g.Description == nil {
		return ""
	}
	return *g.Description
}

// Simplify reduces a gist record to the fields shown in the index. The
// creation date keeps the first 10 characters of the timestamp, which is the
// date part of the ISO 8601 strings returned by the API.
func Simplify(record github.Gist, gistUrl string) Gist {
	if gistUrl == "" {
		gistUrl = DefaultGistUrl
	}

	files := make([]File, 0, len(record.Files))
	for _, f := range record.Files {
		files = append(files, File{
			Filename: f.Filename,
			RawURL:   f.RawURL,
			Size:     f.Size,
		})
	}

	createdAt := record.CreatedAt
	if r := []rune(createdAt); len(r) > 10 {
		createdAt = string(r[:10])
	}

	return Gist{
		ID:          record.ID,
		URL:         strings.TrimSuffix(gistUrl, "/") + "/" + record.ID,
		Files:       files,
		Description: record.Description,
		CreatedAt:   createdAt,
	}
}

// Convert simplifies every record, keeping their order, and tags the rows
// odd, even, odd... starting with the first one.
func Convert(records []github.Gist, gistUrl string) []Gist {
	gists := make([]Gist, 0, len(records))
	for i, record := range records {
		g := Simplify(record, gistUrl)
		g.Parity = Parity(i + 1)
		gists = append(gists, g)
	}
	return gists
}

// Parity returns the row tag of the 1-based position.
func Parity(position int) string {
	if position%2 == 0 {
		return Even
	}
	return Odd
}
