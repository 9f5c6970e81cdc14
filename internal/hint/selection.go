package hint

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/kobzarvs/hinto/internal/element"
)

// ErrNoTargets means filtering left nothing to label; the overlay
// should never open.
var ErrNoTargets = errors.New("no labelable elements")

// Options configure a selection session.
type Options struct {
	// Alphabet is the ordered label alphabet.
	Alphabet []rune
	// ExitKey cancels the session, case-insensitively. Escape always
	// cancels regardless.
	ExitKey rune
	// HoverMod/GrabMod are modifier masks that turn the resolved action
	// into a hover or grab.
	HoverMod Modifier
	GrabMod  Modifier
	// Uppercase selects the display and matching case for labels.
	Uppercase bool
	// Filter tunes the element filter.
	Filter FilterOptions
	// Bounds is the overlay size in screen units.
	Bounds element.Size
}

// Validate reports the first construction-time problem. A bad
// configuration is fatal, not recoverable mid-session.
func (o *Options) Validate() error {
	if len(o.Alphabet) < 2 {
		return fmt.Errorf("alphabet needs at least 2 symbols, got %d", len(o.Alphabet))
	}
	seen := make(map[rune]struct{}, len(o.Alphabet))
	for i, r := range o.Alphabet {
		if !unicode.IsLetter(r) {
			return fmt.Errorf("alphabet symbol %q is not a letter", r)
		}
		o.Alphabet[i] = o.normalizeRune(r)
		if _, dup := seen[o.Alphabet[i]]; dup {
			return fmt.Errorf("alphabet symbol %q repeats", o.Alphabet[i])
		}
		seen[o.Alphabet[i]] = struct{}{}
	}
	if o.ExitKey == 0 {
		return errors.New("exit key is required")
	}
	if !unicode.IsLetter(o.ExitKey) && !unicode.IsDigit(o.ExitKey) {
		return fmt.Errorf("exit key %q is not alphanumeric", o.ExitKey)
	}
	if o.Bounds.Width <= 0 || o.Bounds.Height <= 0 {
		return fmt.Errorf("overlay bounds %gx%g", o.Bounds.Width, o.Bounds.Height)
	}
	return nil
}

func (o *Options) normalizeRune(r rune) rune {
	if o.Uppercase {
		return unicode.ToUpper(r)
	}
	return unicode.ToLower(r)
}

func (o *Options) normalize(s string) string {
	if o.Uppercase {
		return strings.ToUpper(s)
	}
	return strings.ToLower(s)
}

// Phase is the selection session's lifecycle state.
type Phase int

const (
	// PhaseOpen covers both the initial full label set and any narrowed
	// set still waiting for input.
	PhaseOpen Phase = iota
	// PhaseResolved is terminal: exactly one label matched the full
	// typed prefix.
	PhaseResolved
	// PhaseCancelled is terminal: escape or the exit key.
	PhaseCancelled
)

// Transition is the outcome of feeding one key event to the machine.
type Transition struct {
	Phase  Phase
	Redraw bool
	// Match is the winning label when Phase is PhaseResolved.
	Match *Label
	// Action is filled in by the resolver once the label's drawn offset
	// is known.
	Action *MouseAction
}

// Machine narrows the live label set by typed prefix and detects the
// unique-match terminal state. It owns the selector string and the
// pending action qualifiers; it never blocks and has no goroutines —
// one externally delivered event mutates it at a time.
type Machine struct {
	opts     Options
	original []element.Candidate
	live     []Label
	prefix   string
	pend     Pending
}

// NewMachine filters and labels the candidate set. ErrNoTargets when
// nothing survives the filter.
func NewMachine(opts Options, cands []element.Candidate) (*Machine, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	m := &Machine{opts: opts, original: cands}
	m.live = m.regenerate()
	if len(m.live) == 0 {
		return nil, ErrNoTargets
	}
	return m, nil
}

// regenerate rebuilds the full label set from the original unfiltered
// candidates. Used at construction and on backspace, which restores
// labels eliminated by narrowing.
func (m *Machine) regenerate() []Label {
	filtered := Filter(m.original, m.opts.Bounds, m.opts.Filter)
	return Generate(filtered, m.opts.Alphabet)
}

// Live returns the current label set in assignment order.
func (m *Machine) Live() []Label {
	return m.live
}

// Prefix returns the normalized selector string typed so far.
func (m *Machine) Prefix() string {
	return m.prefix
}

// Pending returns the accumulated action qualifiers.
func (m *Machine) Pending() Pending {
	return m.pend
}

// HandleKey advances the machine by one key event.
func (m *Machine) HandleKey(ev KeyEvent) Transition {
	switch ev.Key {
	case KeyEscape:
		return Transition{Phase: PhaseCancelled}
	case KeyBackspace:
		if m.prefix == "" {
			return Transition{Phase: PhaseOpen}
		}
		m.prefix = m.prefix[:len(m.prefix)-1]
		m.live = m.regenerate()
		return Transition{Phase: PhaseOpen, Redraw: true}
	}

	// The exit key wins over modifier handling: it cancels no matter
	// which modifiers are held.
	r := ev.Rune
	if unicode.ToLower(r) == unicode.ToLower(m.opts.ExitKey) {
		return Transition{Phase: PhaseCancelled}
	}

	if m.opts.HoverMod != ModNone && ev.Mods == m.opts.HoverMod {
		m.pend.kind, m.pend.kindSet = ActionHover, true
	}
	if m.opts.GrabMod != ModNone && ev.Mods == m.opts.GrabMod {
		m.pend.kind, m.pend.kindSet = ActionGrab, true
	}
	// A letter that needed its shifted form selects the secondary
	// button; the letter itself still narrows below.
	if unicode.IsLetter(r) && (unicode.IsUpper(r) || ev.Mods.Has(ModShift)) {
		m.pend.kind, m.pend.kindSet = ActionClick, true
		m.pend.button, m.pend.buttonSet = ButtonRight, true
	}

	tr := Transition{Phase: PhaseOpen}
	switch {
	case unicode.IsLetter(r):
		m.narrow(r)
		tr.Redraw = true
	case unicode.IsDigit(r):
		m.pend.repeat = m.pend.repeat*10 + int(r-'0')
	}

	if match := m.uniqueMatch(); match != nil {
		tr.Phase = PhaseResolved
		tr.Match = match
	}
	return tr
}

// narrow extends the prefix by one character when at least one live
// label still matches; a keystroke that would eliminate every label is
// silently ignored.
func (m *Machine) narrow(r rune) {
	candidate := m.prefix + m.opts.normalize(string(r))
	narrowed := m.live[:0:0]
	for _, lb := range m.live {
		if strings.HasPrefix(m.opts.normalize(lb.Text), candidate) {
			narrowed = append(narrowed, lb)
		}
	}
	if len(narrowed) == 0 {
		return
	}
	m.live = narrowed
	m.prefix = candidate
}

func (m *Machine) uniqueMatch() *Label {
	if len(m.live) != 1 || m.prefix == "" {
		return nil
	}
	if m.opts.normalize(m.live[0].Text) != m.prefix {
		return nil
	}
	return &m.live[0]
}
