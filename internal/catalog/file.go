package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"region-catalog-go/pkg/model"
)

// LoadFile reads the generated region dataset (a JSON array of region
// records, produced by the external data build step) and builds the catalog.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read region dataset: %w", err)
	}
	var regions []model.Region
	if err := json.Unmarshal(data, &regions); err != nil {
		return nil, fmt.Errorf("parse region dataset %s: %w", path, err)
	}
	if len(regions) == 0 {
		return nil, fmt.Errorf("region dataset %s is empty", path)
	}
	return New(regions)
}
