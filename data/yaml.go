package data

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// FromYAML decodes a YAML (or JSON) document into a Value.  Scalars that are
// not booleans become Strings; null becomes Undefined.
func FromYAML(r io.Reader) (Value, error) {
	var doc interface{}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return Map{}, nil
		}
		return nil, fmt.Errorf("decoding data: %w", err)
	}
	return New(doc), nil
}
