// Package overlay owns the hint-mode session state: the label set, the
// typed selector, the per-draw offset cache, and the resolved mouse
// action. It is driven by an external window object through HandleKey
// and Render; it creates no windows and dispatches no events itself.
package overlay

import (
	"github.com/kobzarvs/hinto/internal/config"
	"github.com/kobzarvs/hinto/internal/element"
	"github.com/kobzarvs/hinto/internal/hint"
	"github.com/kobzarvs/hinto/internal/logger"
)

// TextMetrics is what a renderer reports for a label string, enough to
// size and center the box.
type TextMetrics struct {
	Bearing float64
	Width   float64
	Height  float64
}

// Renderer paints labels. The matched prefix and unmatched suffix are
// passed as separate runs so the renderer can color them differently.
type Renderer interface {
	Measure(text string) TextMetrics
	DrawLabel(box hint.Rect, matched, unmatched string)
}

// Overlay is the per-session state object. Single-threaded by
// contract: the window system delivers one key event or redraw at a
// time on one goroutine.
type Overlay struct {
	cfg     config.Config
	machine *hint.Machine
	bounds  element.Size

	// offsets maps each label to the vector from its element anchor to
	// the drawn box center, captured by the most recent Render pass.
	// Resolution reads exactly this pass, never a stale one.
	offsets map[string]element.Point
}

// New filters, labels and prepares the candidate set. Returns
// hint.ErrNoTargets when nothing is labelable; the caller should treat
// that as an immediate cancel and never enter the key loop.
func New(cfg config.Config, cands []element.Candidate, bounds element.Size) (*Overlay, error) {
	opts, err := cfg.Hints.SelectionOptions(bounds)
	if err != nil {
		return nil, err
	}
	m, err := hint.NewMachine(opts, cands)
	if err != nil {
		return nil, err
	}
	logger.Debug("overlay ready",
		"candidates", len(cands),
		"labels", len(m.Live()),
		"bounds_w", bounds.Width,
		"bounds_h", bounds.Height)
	return &Overlay{cfg: cfg, machine: m, bounds: bounds}, nil
}

// Labels returns the live label set in assignment order.
func (o *Overlay) Labels() []hint.Label {
	return o.machine.Live()
}

// HandleKey feeds one key event through the selection machine and, on
// a unique match, resolves the final mouse action from the offset
// captured at the last draw.
func (o *Overlay) HandleKey(ev hint.KeyEvent) hint.Transition {
	tr := o.machine.HandleKey(ev)
	if tr.Phase != hint.PhaseResolved || tr.Match == nil {
		return tr
	}
	off, ok := o.offsets[tr.Match.Text]
	if !ok {
		// Resolution before any draw: aim at the element anchor.
		logger.Warn("no drawn offset for label", "label", tr.Match.Text)
	}
	action := hint.Resolve(tr.Match.Cand.El, off, o.machine.Pending())
	tr.Action = &action
	logger.Info("resolved",
		"label", tr.Match.Text,
		"kind", action.Kind.String(),
		"x", action.X,
		"y", action.Y,
		"button", action.Button.String(),
		"repeat", action.Repeat)
	return tr
}

// Render lays out and paints the live label set in insertion order,
// splitting each label into matched/unmatched runs against the current
// selector, and replaces the offset cache with this pass's offsets.
func (o *Overlay) Render(r Renderer) {
	pass := hint.NewPass(o.bounds, o.cfg.Hints.PaddingX, o.cfg.Hints.HintHeight)
	prefix := o.machine.Prefix()
	for _, lb := range o.machine.Live() {
		m := r.Measure(lb.Text)
		box := pass.Place(lb.Text, lb.Cand.El, m.Width)
		matched, unmatched := splitPrefix(lb.Text, prefix)
		r.DrawLabel(box, matched, unmatched)
	}
	o.offsets = pass.Offsets()
}

// splitPrefix divides a label into the run matching the typed selector
// and the rest. Labels are stored normalized, so a direct prefix
// comparison is enough.
func splitPrefix(text, prefix string) (matched, unmatched string) {
	if prefix != "" && len(prefix) <= len(text) && text[:len(prefix)] == prefix {
		return text[:len(prefix)], text[len(prefix):]
	}
	return "", text
}
