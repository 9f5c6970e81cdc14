package element

import (
	"encoding/json"
	"fmt"
	"os"
)

// Fixture is the on-disk element description consumed by the demo front
// end. The overlay origin fixes the translation between relative and
// absolute coordinates for every element in the file.
type Fixture struct {
	Origin   fixturePoint     `json:"origin"`
	Elements []fixtureElement `json:"elements"`
}

type fixturePoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type fixtureElement struct {
	Key    string  `json:"key"`
	Role   string  `json:"role"`
	Name   string  `json:"name"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// Load reads a fixture file and returns its elements in file order.
func Load(path string) ([]Candidate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes fixture JSON. Keys default to the element index when the
// file omits them; duplicate keys are rejected.
func Parse(data []byte) ([]Candidate, error) {
	var fix Fixture
	if err := json.Unmarshal(data, &fix); err != nil {
		return nil, fmt.Errorf("decode elements: %w", err)
	}
	origin := Point{X: fix.Origin.X, Y: fix.Origin.Y}
	seen := make(map[string]struct{}, len(fix.Elements))
	cands := make([]Candidate, 0, len(fix.Elements))
	for i, fe := range fix.Elements {
		key := fe.Key
		if key == "" {
			key = fmt.Sprintf("el-%d", i)
		}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("duplicate element key %q", key)
		}
		seen[key] = struct{}{}
		rel := Point{X: fe.X, Y: fe.Y}
		el := Element{
			Role:   fe.Role,
			Name:   fe.Name,
			Width:  fe.Width,
			Height: fe.Height,
			Rel:    rel,
			Abs:    rel.Add(origin),
		}
		if err := el.Validate(); err != nil {
			return nil, fmt.Errorf("element %q: %w", key, err)
		}
		cands = append(cands, Candidate{Key: key, El: el})
	}
	return cands, nil
}
