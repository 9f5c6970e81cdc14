package hint

import (
	"fmt"

	"github.com/kobzarvs/hinto/internal/element"
)

// ActionKind is what the synthetic pointer should do at the target.
type ActionKind int

const (
	ActionClick ActionKind = iota
	ActionHover
	ActionGrab
)

func (k ActionKind) String() string {
	switch k {
	case ActionClick:
		return "click"
	case ActionHover:
		return "hover"
	case ActionGrab:
		return "grab"
	default:
		return "unknown"
	}
}

// MarshalText lets the action serialize with symbolic kinds.
func (k ActionKind) MarshalText() ([]byte, error) {
	if k < ActionClick || k > ActionGrab {
		return nil, fmt.Errorf("invalid action kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// MouseButton is the pointer button for click actions.
type MouseButton int

const (
	ButtonLeft MouseButton = iota
	ButtonMiddle
	ButtonRight
)

func (b MouseButton) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	default:
		return "unknown"
	}
}

// MarshalText lets the action serialize with symbolic buttons.
func (b MouseButton) MarshalText() ([]byte, error) {
	if b < ButtonLeft || b > ButtonRight {
		return nil, fmt.Errorf("invalid mouse button %d", int(b))
	}
	return []byte(b.String()), nil
}

// MouseAction is the finished record handed to an external dispatcher.
// X/Y are absolute screen coordinates aimed at the element itself.
type MouseAction struct {
	Kind   ActionKind  `json:"kind"`
	X      float64     `json:"x"`
	Y      float64     `json:"y"`
	Button MouseButton `json:"button"`
	Repeat int         `json:"repeat"`
}

// Pending accumulates action qualifiers typed during selection: a
// hover/grab modifier press, a secondary-button override, digit repeat
// counts. Zero values mean "use the defaults at resolution".
type Pending struct {
	kind      ActionKind
	kindSet   bool
	button    MouseButton
	buttonSet bool
	repeat    int
}

// Resolve builds the final action for a matched element. The target is
// the element's absolute position plus the offset to the label box
// center captured during the most recent draw, so the click lands on
// the element even after the label was nudged aside.
func Resolve(el element.Element, offset element.Point, pend Pending) MouseAction {
	a := MouseAction{
		Kind:   ActionClick,
		X:      el.Abs.X + offset.X,
		Y:      el.Abs.Y + offset.Y,
		Button: ButtonLeft,
		Repeat: 1,
	}
	if pend.kindSet {
		a.Kind = pend.kind
	}
	if pend.buttonSet {
		a.Button = pend.button
	}
	if pend.repeat > 0 {
		a.Repeat = pend.repeat
	}
	return a
}
