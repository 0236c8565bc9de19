package view

import (
	"fmt"
	"html"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/fin-tools/plan-advisor/pkg/models/api"
)

// Terminal renders the same surface operations as the web view into plain
// text, so the submission lifecycle can run headless from the CLI.
type Terminal struct {
	writer io.Writer
	alerts int
}

func NewTerminal(writer io.Writer) *Terminal {
	if writer == nil {
		writer = os.Stdout
	}
	return &Terminal{writer: writer}
}

// Control state changes have no terminal equivalent.
func (t *Terminal) SetControlEnabled(string, bool) {}
func (t *Terminal) SetControlLabel(string, string) {}
func (t *Terminal) SetFieldVisible(string, bool)   {}
func (t *Terminal) RevealResults(string)           {}

func (t *Terminal) ShowAlert(message string) {
	t.alerts++
	fmt.Fprintf(t.writer, "error: %s\n", message)
}

func (t *Terminal) SetHTML(id string, markup string) {
	fmt.Fprintln(t.writer, htmlToText(markup))
}

func (t *Terminal) DrawChart(spec api.ChartSpec) {
	tmpl := `
{{.Title}}
{{range .Slices}}  {{printf "%-14s" .Label}} {{printf "%5.1f" .Value}}%
{{end}}`
	type slice struct {
		Label string
		Value float64
	}
	data := struct {
		Title  string
		Slices []slice
	}{}
	if len(spec.Data) > 0 {
		data.Title = spec.Layout.Title
		trace := spec.Data[0]
		for i, label := range trace.Labels {
			if i < len(trace.Values) {
				data.Slices = append(data.Slices, slice{Label: label, Value: trace.Values[i]})
			}
		}
	}
	t.mustRender(tmpl, data)
}

// Failed reports whether any alert was shown during the cycle.
func (t *Terminal) Failed() bool {
	return t.alerts > 0
}

func (t *Terminal) mustRender(text string, data any) {
	tm := template.Must(template.New("chart").Parse(text))
	if err := tm.Execute(t.writer, data); err != nil {
		fmt.Fprintf(t.writer, "render failed: %v\n", err)
	}
}

// htmlToText flattens the renderer's markup for terminal output: <br> back
// to newlines, every other tag dropped, entities unescaped.
func htmlToText(markup string) string {
	s := strings.ReplaceAll(markup, "<br>", "\n")
	s = strings.ReplaceAll(s, "<br/>", "\n")
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(html.UnescapeString(b.String()))
}
