package element

import (
	"strings"
	"testing"
)

func TestParseFixture(t *testing.T) {
	data := []byte(`{
		"origin": {"x": 50, "y": 30},
		"elements": [
			{"key": "ok", "role": "push button", "name": "OK", "width": 30, "height": 20, "x": 100, "y": 100},
			{"role": "link", "name": "Docs", "width": 25, "height": 18, "x": 200, "y": 150}
		]
	}`)
	cands, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(cands) != 2 {
		t.Fatalf("parsed %d elements, want 2", len(cands))
	}
	if cands[0].Key != "ok" {
		t.Fatalf("key = %q, want ok", cands[0].Key)
	}
	if cands[1].Key != "el-1" {
		t.Fatalf("generated key = %q, want el-1", cands[1].Key)
	}
	el := cands[0].El
	if el.Rel.X != 100 || el.Rel.Y != 100 {
		t.Fatalf("rel = %+v, want (100, 100)", el.Rel)
	}
	if el.Abs.X != 150 || el.Abs.Y != 130 {
		t.Fatalf("abs = %+v, want (150, 130)", el.Abs)
	}
}

func TestParseFixtureTranslationIsConstant(t *testing.T) {
	data := []byte(`{
		"origin": {"x": 10, "y": 20},
		"elements": [
			{"key": "a", "width": 30, "height": 20, "x": 0, "y": 0},
			{"key": "b", "width": 30, "height": 20, "x": 500, "y": 400}
		]
	}`)
	cands, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	for _, c := range cands {
		if c.El.Abs.X-c.El.Rel.X != 10 || c.El.Abs.Y-c.El.Rel.Y != 20 {
			t.Fatalf("element %q translation = (%g, %g), want (10, 20)",
				c.Key, c.El.Abs.X-c.El.Rel.X, c.El.Abs.Y-c.El.Rel.Y)
		}
	}
}

func TestParseFixtureDuplicateKey(t *testing.T) {
	data := []byte(`{
		"elements": [
			{"key": "a", "width": 30, "height": 20, "x": 0, "y": 0},
			{"key": "a", "width": 30, "height": 20, "x": 100, "y": 0}
		]
	}`)
	if _, err := Parse(data); err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("err = %v, want duplicate key error", err)
	}
}

func TestParseFixtureNegativeSize(t *testing.T) {
	data := []byte(`{
		"elements": [
			{"key": "a", "width": -1, "height": 20, "x": 0, "y": 0}
		]
	}`)
	if _, err := Parse(data); err == nil {
		t.Fatal("Parse with negative width = nil, want error")
	}
}

func TestParseFixtureBadJSON(t *testing.T) {
	if _, err := Parse([]byte("{")); err == nil {
		t.Fatal("Parse of truncated JSON = nil, want error")
	}
}
