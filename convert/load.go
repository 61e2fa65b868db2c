package convert

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// LoadError reports an input document that could not be read or parsed.
// No output is produced when Load fails.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string { return fmt.Sprintf("loading %s: %v", e.Path, e.Err) }
func (e *LoadError) Unwrap() error { return e.Err }

// ErrEmptyData reports a well-formed response with nothing to export:
// the data object is absent, the record list is absent, or it is empty.
var ErrEmptyData = errors.New("response contains no records")

// Load reads and decodes an API response document from path. Unknown
// extra fields anywhere in the document are ignored.
func Load(path string) (*ApiResponse, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	var resp ApiResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	if resp.Data == nil || len(resp.Data.Records) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyData)
	}
	return &resp, nil
}
