package render

import (
	"fmt"
	"html/template"
	"math"
	"strings"

	"github.com/fin-tools/plan-advisor/pkg/models/api"
)

// overviewSection is returned by the service but never rendered.
const overviewSection = "overview"

var summaryTmpl = template.Must(template.New("summary").Parse(
	`<div class="alert alert-success">Over <strong>{{.Years}}</strong> {{.YearsNoun}}, ` +
		`your projected portfolio value is <strong>{{.Currency}}{{.Total}}</strong>.</div>`))

var sectionTmpl = template.Must(template.New("section").Parse(
	`<div class="recommendation-block"><p>{{.Body}}</p></div>`))

// FormatThousands groups an integer's digits in threes from the right, so
// 1234567 becomes "1,234,567". Values are rounded to integers upstream.
func FormatThousands(n int64) string {
	digits := fmt.Sprintf("%d", n)
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)
	return sign + strings.Join(groups, ",")
}

// SummaryHTML renders the fixed-style notice with the advice's horizon and
// total expected value, rounded to the nearest whole unit.
func SummaryHTML(advice api.Advice, currency string) (string, error) {
	noun := "years"
	if advice.TimePeriod == 1 {
		noun = "year"
	}
	var b strings.Builder
	err := summaryTmpl.Execute(&b, struct {
		Years     int
		YearsNoun string
		Currency  string
		Total     string
	}{
		Years:     advice.TimePeriod,
		YearsNoun: noun,
		Currency:  currency,
		Total:     FormatThousands(int64(math.Round(advice.TotalExpectedValue))),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render summary: %w", err)
	}
	return b.String(), nil
}

// RecommendationHTML renders every narrative section except the overview as
// one block, in document order, with embedded newlines turned into line
// breaks.
func RecommendationHTML(strategy api.Narrative) (string, error) {
	var b strings.Builder
	for _, section := range strategy.Sections {
		if section.Name == overviewSection {
			continue
		}
		err := sectionTmpl.Execute(&b, struct{ Body template.HTML }{Body: breakLines(section.Text)})
		if err != nil {
			return "", fmt.Errorf("failed to render section %q: %w", section.Name, err)
		}
	}
	return b.String(), nil
}

// breakLines escapes the free text first, then converts newlines, so only
// the line breaks survive as markup.
func breakLines(text string) template.HTML {
	escaped := template.HTMLEscapeString(text)
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}
