package github

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Gist is a gist record as listed by the GitHub API. Fields the index does
// not display are left out and ignored by the decoder.
type Gist struct {
	ID          string  `json:"id"`
	HTMLURL     string  `json:"html_url"`
	Public      bool    `json:"public"`
	Description *string `json:"description"`
	CreatedAt   string  `json:"created_at"`
	Files       Files   `json:"files"`
}

type File struct {
	Filename string `json:"filename"`
	RawURL   string `json:"raw_url"`
	Type     string `json:"type"`
	Language string `json:"language"`
	Size     int64  `json:"size"`
}

// Files holds the files of a gist in the order the API listed them.
type Files []File

func (f *Files) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*f = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("gist files: expected an object, got %v", tok)
	}

	files := Files{}
	for dec.More() {
		key, err := dec.Token()
		if err != nil {
			return err
		}

		var file File
		if err = dec.Decode(&file); err != nil {
			return err
		}
		if file.Filename == "" {
			file.Filename, _ = key.(string)
		}
		files = append(files, file)
	}

	// closing brace
	if _, err = dec.Token(); err != nil {
		return err
	}

	*f = files
	return nil
}
