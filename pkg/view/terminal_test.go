package view

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fin-tools/plan-advisor/pkg/models/api"
)

func TestHTMLToText(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   string
	}{
		{
			name:   "line breaks restored",
			markup: `<div><p>a<br>b</p></div>`,
			want:   "a\nb",
		},
		{
			name:   "entities unescaped",
			markup: `value is &lt;100&gt; &amp; rising`,
			want:   "value is <100> & rising",
		},
		{
			name:   "plain text untouched",
			markup: "hello",
			want:   "hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, htmlToText(tt.markup))
		})
	}
}

func TestTerminalChartAndAlerts(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf)

	term.DrawChart(api.ChartSpec{
		Layout: api.ChartLayout{Title: "Recommended Asset Allocation"},
		Data: []api.PieTrace{{
			Labels: []string{"Stocks", "Cash"},
			Values: []float64{90, 10},
		}},
	})

	out := buf.String()
	assert.Contains(t, out, "Recommended Asset Allocation")
	assert.Contains(t, out, "Stocks")
	assert.Contains(t, out, "90.0%")
	assert.False(t, term.Failed())

	term.ShowAlert("something broke")
	assert.True(t, term.Failed())
	assert.Contains(t, buf.String(), "something broke")
}
