package view

import (
	"fmt"

	"github.com/okian/podium/internal/domain/model"
)

// Compute runs the pipeline of kind over tables. It is pure: equal inputs
// give equal outputs.
func Compute(kind Kind, tables model.Tables, opts Options) (any, error) {
	switch kind {
	case KindFlow:
		return Flow(tables.Medallists, tables.Medals, opts), nil
	case KindHeatmap:
		return Heatmap(tables.Athletes, tables.Medals, opts), nil
	case KindChoropleth:
		return Choropleth(tables.Athletes, tables.Medals, opts), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
	}
}
