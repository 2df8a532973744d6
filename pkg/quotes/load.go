package quotes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Snider/quotes/pkg/compress"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a quote collection document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	defaultQuotes    []Quote
	defaultQuotesErr error
	defaultOnce      sync.Once
)

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format %q (want json or yaml)", name)
	}
}

// FormatFromPath guesses the format of a collection file from its extension,
// ignoring a trailing .gz or .xz. Anything not YAML is treated as JSON.
func FormatFromPath(path string) Format {
	name := strings.ToLower(filepath.Base(path))
	name = strings.TrimSuffix(strings.TrimSuffix(name, ".gz"), ".xz")
	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Default returns a Store over the built-in collection. The embedded document
// is decoded once per process.
func Default(opts ...Option) (*Store, error) {
	defaultOnce.Do(func() {
		defaultQuotes, defaultQuotesErr = Decode(defaultCollection, FormatJSON)
	})
	if defaultQuotesErr != nil {
		return nil, fmt.Errorf("failed to load built-in quotes: %w", defaultQuotesErr)
	}
	return NewStore(defaultQuotes, opts...)
}

// LoadFile reads a JSON or YAML collection, optionally gzip or xz compressed,
// and returns a Store over it.
func LoadFile(path string, opts ...Option) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read quote file: %w", err)
	}

	qs, err := Decode(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return NewStore(qs, opts...)
}

// Decode decompresses data if needed and unmarshals a collection document.
// The quotes are returned unvalidated; NewStore enforces the invariants.
func Decode(data []byte, format Format) ([]Quote, error) {
	raw, err := compress.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress quotes: %w", err)
	}

	var c collection
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(raw, &c)
	case FormatJSON:
		err = json.Unmarshal(raw, &c)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal quotes: %w", err)
	}
	return c.Quotes, nil
}

// Encode marshals qs as a collection document and compresses it with the
// given compression ("gz", "xz", or anything else for none).
func Encode(qs []Quote, format Format, compression string) ([]byte, error) {
	c := collection{Quotes: qs}

	var (
		raw []byte
		err error
	)
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err = enc.Encode(c); err == nil {
			err = enc.Close()
		}
		raw = buf.Bytes()
	case FormatJSON:
		raw, err = json.MarshalIndent(c, "", "  ")
		if err == nil {
			raw = append(raw, '\n')
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to marshal quotes: %w", err)
	}

	out, err := compress.Compress(raw, compression)
	if err != nil {
		return nil, fmt.Errorf("failed to compress quotes: %w", err)
	}
	return out, nil
}
