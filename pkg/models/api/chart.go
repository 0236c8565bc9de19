package api

// ChartSpec is the payload handed to the charting collaborator. The page
// forwards Data and Layout to the chart library's draw-or-replace call keyed
// by ContainerID, so re-submitting replaces the previous chart instead of
// stacking a new one.
type ChartSpec struct {
	ContainerID string      `json:"container_id"`
	Data        []PieTrace  `json:"data"`
	Layout      ChartLayout `json:"layout"`
}

type PieTrace struct {
	Type      string    `json:"type"`
	Labels    []string  `json:"labels"`
	Values    []float64 `json:"values"`
	Marker    PieMarker `json:"marker"`
	TextInfo  string    `json:"textinfo"`
	HoverInfo string    `json:"hoverinfo"`
}

type PieMarker struct {
	Colors []string `json:"colors"`
}

type ChartLayout struct {
	Title      string      `json:"title"`
	Height     int         `json:"height"`
	Margin     ChartMargin `json:"margin"`
	ShowLegend bool        `json:"showlegend"`
	Legend     ChartLegend `json:"legend"`
}

type ChartMargin struct {
	Top    int `json:"t"`
	Bottom int `json:"b"`
	Left   int `json:"l"`
	Right  int `json:"r"`
}

type ChartLegend struct {
	Orientation string  `json:"orientation"`
	Y           float64 `json:"y"`
}
