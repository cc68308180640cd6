package assets

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("asset not found")
	ErrUnsupportedFormat = errors.New("unsupported asset format")
	ErrDecode            = errors.New("asset decode failed")
)

// LoadError ties a failure to the asset path that produced it.
type LoadError struct {
	Path string
	Kind error
	Err  error
}

func (e *LoadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Path, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Path, e.Kind, e.Err)
}

// Unwrap exposes both the sentinel and the underlying cause to errors.Is.
func (e *LoadError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func loadError(path string, kind, err error) error {
	return &LoadError{Path: path, Kind: kind, Err: err}
}
