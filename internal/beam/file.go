package beam

import (
	"fmt"

	"github.com/alexiusacademia/gosdm/internal/structure"
)

// LoadFromFile reads a beam request from a JSON or YAML file. The request
// is validated by Analyze.
func LoadFromFile(path string) (*Request, error) {
	var req Request
	if err := structure.DecodeFile(path, &req); err != nil {
		return nil, fmt.Errorf("reading beam request: %w", err)
	}
	return &req, nil
}
