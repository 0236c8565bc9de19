package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fin-tools/plan-advisor/pkg/models/api"
)

func TestFormatThousands(t *testing.T) {
	tests := []struct {
		in  int64
		out string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1,000"},
		{123456, "123,456"},
		{1234567, "1,234,567"},
		{1000000000, "1,000,000,000"},
		{-1234567, "-1,234,567"},
	}

	for _, tt := range tests {
		t.Run(tt.out, func(t *testing.T) {
			assert.Equal(t, tt.out, FormatThousands(tt.in))
		})
	}
}

func TestSummaryHTML(t *testing.T) {
	advice := api.Advice{TimePeriod: 5, TotalExpectedValue: 1234566.7}

	out, err := SummaryHTML(advice, "₹")
	require.NoError(t, err)

	assert.Contains(t, out, "5")
	assert.Contains(t, out, "years")
	assert.Contains(t, out, "₹1,234,567", "value rounded then grouped")
	assert.Contains(t, out, `class="alert alert-success"`)
}

func TestSummaryHTMLSingularYear(t *testing.T) {
	out, err := SummaryHTML(api.Advice{TimePeriod: 1, TotalExpectedValue: 100}, "$")
	require.NoError(t, err)
	assert.Contains(t, out, "year")
	assert.NotContains(t, out, "years")
}

func TestRecommendationHTML(t *testing.T) {
	strategy := api.Narrative{Sections: []api.NarrativeSection{
		{Name: "overview", Text: "x"},
		{Name: "growth", Text: "a\nb"},
		{Name: "risk", Text: "c"},
	}}

	out, err := RecommendationHTML(strategy)
	require.NoError(t, err)

	assert.NotContains(t, out, "x", "overview is never rendered")
	assert.Contains(t, out, "a<br>b")
	assert.Contains(t, out, "c")
	assert.Less(t, strings.Index(out, "a<br>b"), strings.Index(out, "c"), "section order preserved")
}

func TestRecommendationHTMLEscapesMarkup(t *testing.T) {
	strategy := api.Narrative{Sections: []api.NarrativeSection{
		{Name: "growth", Text: "<script>alert(1)</script>"},
	}}

	out, err := RecommendationHTML(strategy)
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}
