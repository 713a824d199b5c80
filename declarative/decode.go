package declarative

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/napalu/argmatch"
	"github.com/napalu/argmatch/errs"
	"gopkg.in/yaml.v3"
)

// Format identifies a document encoding
type Format int

const (
	YAML Format = iota + 1
	TOML
)

func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	}
	return "unknown"
}

// FormatFromPath picks the format from a file extension
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return 0, &DocumentError{Err: errs.ErrUnsupportedFormat.WithArgs(ext)}
}

// Load decodes a document without converting it. Unknown fields are rejected.
func Load(r io.Reader, format Format) (*Document, error) {
	doc := &Document{}
	switch format {
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, &DocumentError{Err: errs.ErrDecodeDocument.WithArgs(format).Wrap(err)}
		}
	case TOML:
		md, err := toml.NewDecoder(r).Decode(doc)
		if err != nil {
			return nil, &DocumentError{Err: errs.ErrDecodeDocument.WithArgs(format).Wrap(err)}
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			key := undecoded[0].String()
			return nil, &DocumentError{Path: key, Err: errs.ErrUnknownField.WithArgs(key)}
		}
	default:
		return nil, &DocumentError{Err: errs.ErrUnsupportedFormat.WithArgs(format)}
	}

	return doc, nil
}

// Decode reads a document and converts it into a command definition
func Decode(r io.Reader, format Format) (*argmatch.Command, error) {
	doc, err := Load(r, format)
	if err != nil {
		return nil, err
	}
	return doc.Command()
}

// FromYAML converts a YAML document
func FromYAML(data []byte) (*argmatch.Command, error) {
	return Decode(bytes.NewReader(data), YAML)
}

// FromTOML converts a TOML document
func FromTOML(data []byte) (*argmatch.Command, error) {
	return Decode(bytes.NewReader(data), TOML)
}

// FromFile reads path, choosing the decoder by extension
func FromFile(path string) (*argmatch.Command, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f, format)
}
