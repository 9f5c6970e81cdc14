// Package term binds the overlay core to a tcell screen: it measures
// and paints labels in cell units, frames the underlying elements so
// the demo has something to aim at, and translates tcell key events
// into the core's key type. The terminal session is the keyboard grab;
// tearing the screen down releases it.
package term

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/hinto/internal/config"
	"github.com/kobzarvs/hinto/internal/element"
	"github.com/kobzarvs/hinto/internal/hint"
	"github.com/kobzarvs/hinto/internal/overlay"
)

// Renderer draws hint labels and element frames on a tcell screen.
type Renderer struct {
	screen       tcell.Screen
	labelStyle   tcell.Style
	matchedStyle tcell.Style
	frameStyle   tcell.Style
	elTextStyle  tcell.Style
}

func NewRenderer(s tcell.Screen, theme config.Theme) *Renderer {
	bg := parseColor(theme.HintBackground, tcell.ColorYellow)
	text := parseColor(theme.HintText, tcell.ColorBlack)
	matched := parseColor(theme.HintMatched, tcell.ColorDarkRed)
	frame := parseColor(theme.ElementFrame, tcell.ColorGray)
	elText := parseColor(theme.ElementText, tcell.ColorSilver)
	return &Renderer{
		screen:       s,
		labelStyle:   tcell.StyleDefault.Foreground(text).Background(bg).Bold(true),
		matchedStyle: tcell.StyleDefault.Foreground(matched).Background(bg).Bold(true),
		frameStyle:   tcell.StyleDefault.Foreground(frame),
		elTextStyle:  tcell.StyleDefault.Foreground(elText),
	}
}

// Measure reports cell-unit metrics: one cell per rune, one row high.
func (r *Renderer) Measure(text string) overlay.TextMetrics {
	return overlay.TextMetrics{Width: float64(len([]rune(text))), Height: 1}
}

// DrawLabel paints one label box on a single row, matched prefix in
// the pressed color.
func (r *Renderer) DrawLabel(box hint.Rect, matched, unmatched string) {
	x, y := int(box.X), int(box.Y)
	w := int(box.W)
	text := matched + unmatched
	if w < len([]rune(text)) {
		w = len([]rune(text))
	}
	for i := 0; i < w; i++ {
		r.screen.SetContent(x+i, y, ' ', nil, r.labelStyle)
	}
	tx := x + (w-len([]rune(text)))/2
	for _, ch := range matched {
		r.screen.SetContent(tx, y, ch, nil, r.matchedStyle)
		tx++
	}
	for _, ch := range unmatched {
		r.screen.SetContent(tx, y, ch, nil, r.labelStyle)
		tx++
	}
}

// DrawElements frames each candidate with its name so labels have
// visible targets underneath.
func (r *Renderer) DrawElements(cands []element.Candidate) {
	for _, c := range cands {
		r.drawFrame(c.El)
	}
}

func (r *Renderer) drawFrame(el element.Element) {
	x, y := int(el.Rel.X), int(el.Rel.Y)
	w, h := int(el.Width), int(el.Height)
	if w < 2 || h < 1 {
		return
	}
	right, bottom := x+w-1, y+h-1
	for cx := x + 1; cx < right; cx++ {
		r.screen.SetContent(cx, y, tcell.RuneHLine, nil, r.frameStyle)
		r.screen.SetContent(cx, bottom, tcell.RuneHLine, nil, r.frameStyle)
	}
	for cy := y + 1; cy < bottom; cy++ {
		r.screen.SetContent(x, cy, tcell.RuneVLine, nil, r.frameStyle)
		r.screen.SetContent(right, cy, tcell.RuneVLine, nil, r.frameStyle)
	}
	r.screen.SetContent(x, y, tcell.RuneULCorner, nil, r.frameStyle)
	r.screen.SetContent(right, y, tcell.RuneURCorner, nil, r.frameStyle)
	r.screen.SetContent(x, bottom, tcell.RuneLLCorner, nil, r.frameStyle)
	r.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, r.frameStyle)

	name := el.TrimmedName()
	if name == "" {
		name = el.Role
	}
	maxLen := w - 2
	if maxLen <= 0 || h < 2 {
		return
	}
	runes := []rune(name)
	if len(runes) > maxLen {
		runes = runes[:maxLen]
	}
	tx := x + 1 + (maxLen-len(runes))/2
	ty := y + h/2
	for _, ch := range runes {
		r.screen.SetContent(tx, ty, ch, nil, r.elTextStyle)
		tx++
	}
}

// TranslateKey converts a tcell key event into the core's key type.
// The second result is false for keys the overlay does not consume.
func TranslateKey(ev *tcell.EventKey) (hint.KeyEvent, bool) {
	mods := translateMods(ev.Modifiers())
	switch ev.Key() {
	case tcell.KeyEscape:
		return hint.KeyEvent{Key: hint.KeyEscape}, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return hint.KeyEvent{Key: hint.KeyBackspace}, true
	case tcell.KeyRune:
		return hint.KeyEvent{Key: hint.KeyRune, Rune: ev.Rune(), Mods: mods}, true
	}
	// Ctrl+letter arrives as a control key, not a rune. Tab and Enter
	// share codes with KeyCtrlI/KeyCtrlM and stay unconsumed.
	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ && k != tcell.KeyTab && k != tcell.KeyEnter {
		r := rune('a' + int(k-tcell.KeyCtrlA))
		return hint.KeyEvent{Key: hint.KeyRune, Rune: r, Mods: mods | hint.ModCtrl}, true
	}
	return hint.KeyEvent{}, false
}

func translateMods(m tcell.ModMask) hint.Modifier {
	var out hint.Modifier
	if m&tcell.ModShift != 0 {
		out |= hint.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		out |= hint.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		out |= hint.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		out |= hint.ModMeta
	}
	return out
}

// parseColor resolves "#RRGGBB" or a named color, falling back when the
// value does not parse.
func parseColor(name string, fallback tcell.Color) tcell.Color {
	name = strings.TrimSpace(name)
	if name == "" {
		return fallback
	}
	if strings.HasPrefix(name, "#") && len(name) == 7 {
		r, err1 := strconv.ParseInt(name[1:3], 16, 32)
		g, err2 := strconv.ParseInt(name[3:5], 16, 32)
		b, err3 := strconv.ParseInt(name[5:7], 16, 32)
		if err1 == nil && err2 == nil && err3 == nil {
			return tcell.NewRGBColor(int32(r), int32(g), int32(b))
		}
		return fallback
	}
	name = strings.ToLower(name)
	if name == "default" {
		return tcell.ColorDefault
	}
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return fallback
	}
	return c
}
