package state

import (
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/markup/internal/errors"
)

// Format is a serialization format.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat returns the format named s. "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return "", errors.New(errors.CodeUnknownFormat).
		WithDetailf("unknown state format %q", s).
		WithSuggestion("Use json or yaml")
}

// FormatFor guesses the format from a file extension, falling back to def.
func FormatFor(path string, def Format) Format {
	if f, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), ".")); err == nil {
		return f
	}
	return def
}

// Encode writes v to w. JSON is indented by two spaces.
func Encode(w io.Writer, f Format, v any) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return errors.New(errors.CodeUnknownFormat).WithDetailf("unknown state format %q", f)
}

// Marshal returns the encoding of v.
func Marshal(f Format, v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, f, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads exactly one value from r into v. Unknown fields, trailing
// documents and empty input are errors.
func Decode(r io.Reader, f Format, v any) error {
	var err error
	switch f {
	case JSON:
		err = decodeJSON(r, v)
	case YAML:
		err = decodeYAML(r, v)
	default:
		return errors.New(errors.CodeUnknownFormat).WithDetailf("unknown state format %q", f)
	}
	if err != nil {
		return errors.New(errors.CodeDeserialization).
			WithDetailf("decode %s", f).
			Wrap(err)
	}
	return nil
}

// Unmarshal decodes data into v.
func Unmarshal(f Format, data []byte, v any) error {
	return Decode(bytes.NewReader(data), f, v)
}

func decodeJSON(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if err == io.EOF {
			return errEmpty
		}
		return err
	}
	if dec.More() {
		return errTrailing
	}
	return nil
}

func decodeYAML(r io.Reader, v any) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		if err == io.EOF {
			return errEmpty
		}
		return err
	}
	var extra any
	if err := dec.Decode(&extra); err != io.EOF {
		return errTrailing
	}
	return nil
}

var (
	errEmpty    = errors.Newf(errors.CategorySerialization, "no document")
	errTrailing = errors.Newf(errors.CategorySerialization, "multiple documents are not supported")
)
