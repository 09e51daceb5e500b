package frame

import (
	"fmt"

	"github.com/alexiusacademia/gosdm/internal/structure"
)

// LoadFromFile reads a frame request from a JSON or YAML file. The request
// is validated by Analyze.
func LoadFromFile(path string) (*Request, error) {
	var req Request
	if err := structure.DecodeFile(path, &req); err != nil {
		return nil, fmt.Errorf("reading frame request: %w", err)
	}
	return &req, nil
}
