package view

import "github.com/fin-tools/plan-advisor/pkg/models/api"

type PatchOp string

const (
	OpSetEnabled PatchOp = "set_enabled"
	OpSetLabel   PatchOp = "set_label"
	OpSetVisible PatchOp = "set_visible"
	OpSetHTML    PatchOp = "set_html"
	OpDrawChart  PatchOp = "draw_chart"
	OpAlert      PatchOp = "alert"
	OpReveal     PatchOp = "reveal"
)

// Patch is one DOM mutation. The page script applies patches strictly in
// slice order. Reveal covers the whole results transition: un-hide at
// opacity 0, fade to 1 after a short delay, then smooth-scroll the target's
// top edge to the viewport.
type Patch struct {
	Op      PatchOp        `json:"op"`
	Target  string         `json:"target,omitempty"`
	Enabled *bool          `json:"enabled,omitempty"`
	Visible *bool          `json:"visible,omitempty"`
	Label   string         `json:"label,omitempty"`
	HTML    string         `json:"html,omitempty"`
	Message string         `json:"message,omitempty"`
	Chart   *api.ChartSpec `json:"chart,omitempty"`
}

// PatchRecorder is the web Surface: it records mutations for one submission
// cycle so the handler can return them as an ordered patch list.
type PatchRecorder struct {
	patches []Patch
}

func NewPatchRecorder() *PatchRecorder {
	return &PatchRecorder{}
}

func (r *PatchRecorder) SetControlEnabled(id string, enabled bool) {
	v := enabled
	r.patches = append(r.patches, Patch{Op: OpSetEnabled, Target: id, Enabled: &v})
}

func (r *PatchRecorder) SetControlLabel(id string, label string) {
	r.patches = append(r.patches, Patch{Op: OpSetLabel, Target: id, Label: label})
}

func (r *PatchRecorder) SetFieldVisible(id string, visible bool) {
	v := visible
	r.patches = append(r.patches, Patch{Op: OpSetVisible, Target: id, Visible: &v})
}

func (r *PatchRecorder) SetHTML(id string, html string) {
	r.patches = append(r.patches, Patch{Op: OpSetHTML, Target: id, HTML: html})
}

func (r *PatchRecorder) DrawChart(spec api.ChartSpec) {
	r.patches = append(r.patches, Patch{Op: OpDrawChart, Target: spec.ContainerID, Chart: &spec})
}

func (r *PatchRecorder) ShowAlert(message string) {
	r.patches = append(r.patches, Patch{Op: OpAlert, Message: message})
}

func (r *PatchRecorder) RevealResults(id string) {
	r.patches = append(r.patches, Patch{Op: OpReveal, Target: id})
}

func (r *PatchRecorder) Patches() []Patch {
	return r.patches
}

// Alerts returns the recorded alert messages in order.
func (r *PatchRecorder) Alerts() []string {
	var out []string
	for _, p := range r.patches {
		if p.Op == OpAlert {
			out = append(out, p.Message)
		}
	}
	return out
}
