// Package loader reads context values for the renderer from JSON
// or YAML documents. The engine itself never parses data; this
// package produces the decoder shapes it consumes (nil, bool,
// json.Number, string, []interface{}, map[string]interface{}).
package loader

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

// FromJSON decodes a single JSON document into a context value.
// Numbers are kept as json.Number so they render with their source
// text.
func FromJSON(r io.Reader) (interface{}, error) {
	const errCtx = "loading json context"

	dec := json.NewDecoder(r)
	dec.UseNumber()

	var v interface{}

	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	return v, nil
}

// FromYAML decodes a single YAML document into a context value.
// Mappings decode with string keys, so the result resolves in the
// renderer exactly like a JSON object.
func FromYAML(r io.Reader) (interface{}, error) {
	const errCtx = "loading yaml context"

	var v interface{}

	if err := yaml.NewDecoder(r).Decode(&v); err != nil {
		if err == io.EOF {
			// An empty document is a null context.
			return nil, nil
		}

		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	return v, nil
}

// FromFile loads a context value from path, choosing the format by
// extension: ".yaml" and ".yml" decode as YAML, anything else as
// JSON.
func FromFile(path string) (interface{}, error) {
	const errCtx = "loading context file"

	content, err := os.ReadFile(path) //nolint:gosec // paths from CLI flags
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	var v interface{}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		v, err = FromYAML(bytes.NewReader(content))
	default:
		v, err = FromJSON(bytes.NewReader(content))
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", errCtx, path, err)
	}

	return v, nil
}
