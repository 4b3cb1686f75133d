package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"path"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies the serialization of a content document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor picks the decoder for a document from its media type, falling
// back to the file extension of name. JSON is the default.
func FormatFor(name, contentType string) Format {
	if contentType != "" {
		if mt, _, err := mime.ParseMediaType(contentType); err == nil {
			switch {
			case strings.HasSuffix(mt, "yaml"):
				return FormatYAML
			case strings.HasSuffix(mt, "json"):
				return FormatJSON
			}
		}
	}
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// Decode parses a whole content document from r.
func Decode(r io.Reader, format Format) (*SiteContent, error) {
	var doc SiteContent
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		if err := dec.Decode(&doc); err != nil && err != io.EOF {
			return nil, fmt.Errorf("decoding yaml content: %w", err)
		}
	default:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("decoding json content: %w", err)
		}
	}
	return &doc, nil
}

// Year is a publication or award year. Documents write it either as a
// number (2024) or as a string ("Before 2021"); both decode to the text form.
type Year string

// UnmarshalJSON accepts numbers and strings.
func (y *Year) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*y = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*y = Year(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("year must be a number or string: %w", err)
	}
	*y = numericYear(f)
	return nil
}

// numericYear formats a numeric year in its shortest form, so 2024.0 and
// 2024 share a label.
func numericYear(f float64) Year {
	if f == 0 {
		f = 0 // normalizes -0
	}
	return Year(strconv.FormatFloat(f, 'f', -1, 64))
}

// UnmarshalYAML accepts any scalar.
func (y *Year) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("year must be a scalar, got kind %v", node.Kind)
	}
	switch node.Tag {
	case "!!null":
		*y = ""
		return nil
	case "!!int", "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return fmt.Errorf("year: %w", err)
		}
		*y = numericYear(f)
		return nil
	}
	*y = Year(node.Value)
	return nil
}
