package route

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrDecode is returned when a route file cannot be decoded.
var ErrDecode = errors.New("route: failed to decode route file")

// LoadFile reads a YAML or JSON list of routes.
func LoadFile(path string) ([]Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("route: read %s: %w", path, err)
	}
	return Decode(data)
}

// Decode parses a YAML or JSON document holding a list of routes.
// JSON is decoded through the YAML parser.
func Decode(data []byte) ([]Node, error) {
	var nodes []Node
	if err := yaml.Unmarshal(data, &nodes); err != nil {
		return nil, errors.Join(ErrDecode, err)
	}
	return nodes, nil
}
