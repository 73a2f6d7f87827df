// Package content loads input files and reduces them to plain text.
package content

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/verte-zerg/readometer/internal/model"
)

var (
	// ErrMissingPath is returned when no file path was supplied.
	ErrMissingPath = errors.New("please provide the path to a file as an argument")
	// ErrFileRead is returned when the file cannot be read as text.
	ErrFileRead = errors.New("couldn't read from file")
	// ErrUnsupportedFileType is returned for extensions outside the known set.
	ErrUnsupportedFileType = errors.New("unsupported file type")
	// ErrMarkupTransform is returned when the markdown stripper cannot be built.
	ErrMarkupTransform = errors.New("failed to read markdown file")
)

var extensions = map[string]model.FileKind{
	".txt": model.PlainText,
	".md":  model.Markdown,
}

// ResolveFileKind infers the file kind from the path extension.
func ResolveFileKind(path string) (model.FileKind, error) {
	kind, ok := extensions[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return 0, fmt.Errorf("%w '%s'", ErrUnsupportedFileType, path)
	}
	return kind, nil
}

// Load reads the file at path and returns its plain text.
func Load(path string) (string, error) {
	_, text, err := LoadReference(path)
	return text, err
}

// LoadReference reads the file at path and returns the resolved reference
// together with its plain text. Markdown is stripped of markup.
func LoadReference(path string) (model.FileReference, string, error) {
	if strings.TrimSpace(path) == "" {
		return model.FileReference{}, "", ErrMissingPath
	}

	raw, err := readText(path)
	if err != nil {
		return model.FileReference{}, "", err
	}

	kind, err := ResolveFileKind(path)
	if err != nil {
		return model.FileReference{}, "", err
	}
	ref := model.FileReference{Path: path, Kind: kind}

	switch kind {
	case model.Markdown:
		stripper, err := NewStripper()
		if err != nil {
			return model.FileReference{}, "", fmt.Errorf("%w '%s': %w", ErrMarkupTransform, path, err)
		}
		return ref, stripper.Strip(raw), nil
	default:
		return ref, raw, nil
	}
}

func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w '%s': %w", ErrFileRead, path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w '%s': invalid UTF-8", ErrFileRead, path)
	}
	return string(data), nil
}
