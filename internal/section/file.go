package section

import (
	"fmt"

	"github.com/alexiusacademia/gosdm/internal/structure"
)

// LoadFromFile loads a section definition from a JSON or YAML file
func LoadFromFile(path string) (*Section, error) {
	var s Section
	if err := structure.DecodeFile(path, &s); err != nil {
		return nil, fmt.Errorf("reading section: %w", err)
	}
	if err := structure.CheckTags(&s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}
