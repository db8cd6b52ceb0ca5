// Package types contains the shaped view records handed to the rendering layer.
package types

// Edge is one weighted link of the flow diagram.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Weight int    `json:"weight"`
}

// Cell is one heatmap cell.
type Cell struct {
	Row   string `json:"row"`
	Col   string `json:"col"`
	Value int    `json:"value"`
}

// FeatureValue is one map feature of the choropleth. HasData is false for
// features with no matched country; the renderer paints those as "no data".
type FeatureValue struct {
	Name    string `json:"name"`
	Value   int    `json:"value"`
	HasData bool   `json:"has_data"`
}

// FlowView is the flow diagram payload: country->discipline edges followed by
// discipline->medal edges.
type FlowView struct {
	Countries   []string `json:"countries"`
	Disciplines []string `json:"disciplines"`
	Edges       []Edge   `json:"edges"`
}

// HeatmapView is the heatmap payload. Rows and Cols are in top-K order.
type HeatmapView struct {
	Rows  []string `json:"rows"`
	Cols  []string `json:"cols"`
	Cells []Cell   `json:"cells"`
}

// ChoroplethView is the choropleth payload. Counts holds every country with
// at least one matched record; Features is only populated when map features
// were supplied.
type ChoroplethView struct {
	Counts   map[string]int `json:"counts"`
	Features []FeatureValue `json:"features,omitempty"`
}
