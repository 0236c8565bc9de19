package render

import (
	"github.com/fin-tools/plan-advisor/pkg/models/api"
	"github.com/fin-tools/plan-advisor/pkg/view"
)

// Fixed label order and slice colors. The legend and the test expectations
// depend on this order.
var (
	allocationLabels = []string{"Stocks", "Mutual Funds", "Bonds", "Cash"}
	allocationColors = []string{"#2E86C1", "#28B463", "#F1C40F", "#95A5A6"}
)

// BuildAllocationChart turns allocation fractions into the pie chart spec
// handed to the charting collaborator. Fractions arrive in [0,1] and are
// expressed as percentages here.
func BuildAllocationChart(alloc api.AssetAllocation) api.ChartSpec {
	values := []float64{
		alloc.Stocks.Percentage * 100,
		alloc.MutualFunds.Percentage * 100,
		alloc.Bonds.Percentage * 100,
		alloc.Cash.Percentage * 100,
	}
	return api.ChartSpec{
		ContainerID: view.ElemChart,
		Data: []api.PieTrace{{
			Type:      "pie",
			Labels:    append([]string(nil), allocationLabels...),
			Values:    values,
			Marker:    api.PieMarker{Colors: append([]string(nil), allocationColors...)},
			TextInfo:  "label+percent",
			HoverInfo: "label+value+percent",
		}},
		Layout: api.ChartLayout{
			Title:      "Recommended Asset Allocation",
			Height:     400,
			Margin:     api.ChartMargin{Top: 40, Bottom: 80, Left: 20, Right: 20},
			ShowLegend: true,
			Legend:     api.ChartLegend{Orientation: "h", Y: -0.2},
		},
	}
}
