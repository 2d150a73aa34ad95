// Package manifest reads Cargo manifests and extracts their declared
// feature flags.
package manifest

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ParseError reports a manifest that is not well-formed TOML.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SchemaError reports a well-formed manifest whose [features] table is
// missing or has the wrong shape.
type SchemaError struct {
	Path   string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

// IsSchemaError checks if an error is a SchemaError.
// Uses errors.As to properly handle wrapped errors.
func IsSchemaError(err error) bool {
	var se *SchemaError
	return errors.As(err, &se)
}

// Manifest is a loaded Cargo manifest, reduced to what matrix generation
// needs: the ordered list of declared feature names.
type Manifest struct {
	// Path is the manifest location, used in error messages.
	Path string

	features []string
}

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return Parse(path, data)
}

// Parse parses manifest data. The feature list keeps the manifest's
// declaration order, matching how Cargo itself reports features. The
// implicit "default" feature is excluded; every build in the matrix is
// run with --no-default-features, so "default" never names a real
// configuration of its own.
func Parse(path string, data []byte) (*Manifest, error) {
	var doc map[string]toml.Primitive
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	prim, ok := doc["features"]
	if !ok {
		return nil, &SchemaError{Path: path, Reason: "manifest has no [features] table"}
	}

	// Feature values are dependency lists, but their contents don't
	// matter here. Decoding into a table of primitives only checks that
	// [features] is a table at all.
	var table map[string]toml.Primitive
	if err := md.PrimitiveDecode(prim, &table); err != nil {
		return nil, &SchemaError{Path: path, Reason: "\"features\" is not a table"}
	}

	// md.Keys reports every defined key in document order. Direct
	// children of [features] are exactly the two-part keys rooted there.
	features := make([]string, 0, len(table))
	for _, key := range md.Keys() {
		if len(key) != 2 || key[0] != "features" {
			continue
		}
		if name := key[1]; name != "default" {
			features = append(features, name)
		}
	}

	return &Manifest{Path: path, features: features}, nil
}

// Features returns the declared feature names in manifest order,
// without the implicit "default" feature.
func (m *Manifest) Features() []string {
	return m.features
}
