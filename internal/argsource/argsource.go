// Package argsource decodes resolver argument lists from JSON and YAML
// documents. A document holding a sequence is the argument list itself;
// any other document is a single argument.
package argsource

import (
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/vangoframework/clsx/pkg/clsx"
)

// ErrInvalid is returned for documents that cannot be decoded.
var ErrInvalid = errors.New("invalid argument document")

// ErrFormat is returned for unknown formats and content types.
var ErrFormat = errors.New("unsupported format")

// Format names a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" and "yml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrFormat, s)
}

// FormatFromPath infers the format from a file extension, defaulting to
// JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// FormatFromContentType maps a request content type to a format. An empty
// content type means JSON.
func FormatFromContentType(contentType string) (Format, error) {
	if contentType == "" {
		return FormatJSON, nil
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFormat, err)
	}
	switch mediaType {
	case "application/json", "text/json":
		return FormatJSON, nil
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %s", ErrFormat, mediaType)
}

// Decode decodes data in the given format.
func Decode(data []byte, format Format) ([]clsx.Arg, error) {
	switch format {
	case FormatJSON:
		return DecodeJSON(data)
	case FormatYAML:
		return DecodeYAML(data)
	}
	return nil, fmt.Errorf("%w: %q", ErrFormat, format)
}
