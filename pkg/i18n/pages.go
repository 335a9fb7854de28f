package i18n

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// PathOverride is a per-locale entry of a page configuration:
// either a custom path or false to disable the locale for the page.
type PathOverride struct {
	Path     string
	Disabled bool
}

// UnmarshalYAML accepts a path string or false.
func (p *PathOverride) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: page locale entry must be a path or false", ErrInvalidFile)
	}
	if node.ShortTag() == "!!bool" {
		var enabled bool
		if err := node.Decode(&enabled); err != nil {
			return err
		}
		if enabled {
			return fmt.Errorf("%w: page locale entry cannot be true", ErrInvalidFile)
		}
		*p = PathOverride{Disabled: true}
		return nil
	}
	*p = PathOverride{Path: node.Value}
	return nil
}

// MarshalYAML mirrors UnmarshalYAML.
func (p PathOverride) MarshalYAML() (any, error) {
	if p.Disabled {
		return false, nil
	}
	return p.Path, nil
}

// PageConfig holds the locale options of one page, keyed by locale code.
// A disabled page is excluded from localization altogether.
type PageConfig struct {
	Disabled bool
	Locales  map[string]PathOverride
}

// UnmarshalYAML accepts false or a mapping of locale code to PathOverride.
func (p *PageConfig) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var enabled bool
		if err := node.Decode(&enabled); err != nil {
			return fmt.Errorf("%w: page entry must be a mapping or false", ErrInvalidFile)
		}
		*p = PageConfig{Disabled: !enabled}
		return nil
	}

	locales := make(map[string]PathOverride)
	if err := node.Decode(&locales); err != nil {
		return err
	}
	*p = PageConfig{Locales: locales}
	return nil
}

// MarshalYAML mirrors UnmarshalYAML.
func (p PageConfig) MarshalYAML() (any, error) {
	if p.Disabled {
		return false, nil
	}
	return p.Locales, nil
}
