package hint

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/kobzarvs/hinto/internal/element"
)

func TestResolveDefaults(t *testing.T) {
	el := element.Element{
		Abs: element.Point{X: 150, Y: 130},
	}
	a := Resolve(el, element.Point{X: 3, Y: 1.5}, Pending{})
	if a.Kind != ActionClick || a.Button != ButtonLeft || a.Repeat != 1 {
		t.Fatalf("action = %+v, want default click/left/1", a)
	}
	if a.X != 153 || a.Y != 131.5 {
		t.Fatalf("target = (%g, %g), want (153, 131.5)", a.X, a.Y)
	}
}

func TestResolveAppliesPendingQualifiers(t *testing.T) {
	el := element.Element{Abs: element.Point{X: 10, Y: 20}}
	pend := Pending{
		kind: ActionGrab, kindSet: true,
		button: ButtonRight, buttonSet: true,
		repeat: 4,
	}
	a := Resolve(el, element.Point{}, pend)
	if a.Kind != ActionGrab || a.Button != ButtonRight || a.Repeat != 4 {
		t.Fatalf("action = %+v, want grab/right/4", a)
	}
}

func TestMouseActionJSON(t *testing.T) {
	a := MouseAction{Kind: ActionHover, X: 1.5, Y: 2, Button: ButtonRight, Repeat: 3}
	data, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, want := range []string{`"kind":"hover"`, `"button":"right"`, `"repeat":3`} {
		if !strings.Contains(string(data), want) {
			t.Fatalf("json %s missing %s", data, want)
		}
	}
}
