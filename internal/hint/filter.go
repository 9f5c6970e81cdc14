package hint

import (
	"math"
	"strings"

	"github.com/kobzarvs/hinto/internal/element"
)

// Size floors for labeling an element. Elements smaller than the
// default minimum are noise (spacers, icons, 1px handles).
const (
	DefaultMinWidth  = 8.0
	DefaultMinHeight = 8.0

	// legacyMinSize is the looser floor an earlier revision of the
	// filter used for both dimensions.
	legacyMinSize = 5.0

	// namedMinWidth/namedMinHeight admit a non-clickable element when it
	// carries a meaningful name.
	namedMinWidth  = 20.0
	namedMinHeight = 15.0

	// largeMinWidth/largeMinHeight admit any sufficiently large element,
	// which catches sidebars and toolbars with unhelpful roles.
	largeMinWidth  = 40.0
	largeMinHeight = 20.0

	// dedupBucket is the rounding granularity for the spatial
	// deduplication key.
	dedupBucket = 10.0
)

// skipRoles mark elements that are never worth a label.
var skipRoles = []string{
	"separator", "filler", "scroll bar", "status bar",
	"decoration", "frame", "border",
}

// clickRoles mark elements that are likely click targets.
var clickRoles = []string{
	"button", "link", "menu", "tab", "entry", "text", "combo",
	"check", "radio", "toggle", "tool", "item", "cell",
	"option", "choice",
}

// FilterOptions tune the element filter. Zero values fall back to the
// defaults above.
type FilterOptions struct {
	MinWidth  float64
	MinHeight float64
}

func (o FilterOptions) minWidth() float64 {
	if o.MinWidth > 0 {
		return o.MinWidth
	}
	return DefaultMinWidth
}

func (o FilterOptions) minHeight() float64 {
	if o.MinHeight > 0 {
		return o.MinHeight
	}
	return DefaultMinHeight
}

type bucketKey struct {
	x int
	y int
}

// Filter keeps the candidates worth labeling, preserving keys and
// order. An element survives when it is big enough, at least partially
// inside the overlay bounds, not an explicitly decorative role, not a
// spatial duplicate of an already kept element, and either likely
// clickable, named and reasonably sized, or large.
func Filter(cands []element.Candidate, bounds element.Size, opts FilterOptions) []element.Candidate {
	kept := make([]element.Candidate, 0, len(cands))
	seen := make(map[bucketKey]struct{}, len(cands))
	for _, c := range cands {
		el := c.El
		if el.Width < opts.minWidth() || el.Height < opts.minHeight() {
			continue
		}

		x, y := el.Rel.X, el.Rel.Y
		// Elements partially visible still count; the bounds are expanded
		// by the element's own size.
		if x < -el.Width || y < -el.Height || x > bounds.Width+el.Width || y > bounds.Height+el.Height {
			continue
		}

		role := strings.ToLower(el.Role)
		if containsAny(role, skipRoles) {
			continue
		}

		// An unknown role defaults to clickable so custom widgets are not
		// silently dropped.
		clickable := role == "" || containsAny(role, clickRoles)

		key := bucketKey{
			x: int(math.Round(x / dedupBucket)),
			y: int(math.Round(y / dedupBucket)),
		}
		if _, dup := seen[key]; dup {
			continue
		}

		named := el.TrimmedName() != "" && el.Width > namedMinWidth && el.Height > namedMinHeight
		large := el.Width > largeMinWidth && el.Height > largeMinHeight
		if clickable || named || large {
			seen[key] = struct{}{}
			kept = append(kept, c)
		}
	}
	return kept
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
