package source

import (
	"fmt"
	"os"

	"github.com/paulmach/orb/geojson"
)

// DefaultFeatureNameProperty is the GeoJSON property holding a feature's
// country name.
const DefaultFeatureNameProperty = "name"

// LoadFeatures reads a GeoJSON FeatureCollection from path and returns the
// value of property for each feature, in file order. Features without the
// property are skipped.
func LoadFeatures(path, property string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	return ParseFeatures(data, property)
}

// ParseFeatures is LoadFeatures over an in-memory document.
func ParseFeatures(data []byte, property string) ([]string, error) {
	if property == "" {
		property = DefaultFeatureNameProperty
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFeatures, err)
	}
	names := make([]string, 0, len(fc.Features))
	for _, f := range fc.Features {
		if name := f.Properties.MustString(property, ""); name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}
