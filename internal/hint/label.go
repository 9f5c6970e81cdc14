package hint

import (
	"github.com/kobzarvs/hinto/internal/element"
)

// DefaultAlphabet is the label alphabet: keys reachable without moving
// the hands, not alphabetical.
const DefaultAlphabet = "SADFJKLEWCMPGH"

// Label binds a generated label string to the candidate it selects.
type Label struct {
	Text string
	Cand element.Candidate
}

// Generate assigns labels to candidates in order. All labels share the
// minimal length L with len(alphabet)^L >= len(cands), so the label
// space is prefix-free: no label can be a prefix of another. Labels are
// enumerated odometer-style in alphabet order, which matches a
// depth-first traversal of fixed-length strings.
func Generate(cands []element.Candidate, alphabet []rune) []Label {
	n := len(cands)
	if n == 0 || len(alphabet) == 0 {
		return nil
	}

	length := 1
	for span := len(alphabet); span < n; span *= len(alphabet) {
		length++
	}

	labels := make([]Label, n)
	digits := make([]int, length)
	buf := make([]rune, length)
	for i := 0; i < n; i++ {
		for j, d := range digits {
			buf[j] = alphabet[d]
		}
		labels[i] = Label{Text: string(buf), Cand: cands[i]}

		// Increment the least significant digit, carrying left.
		for j := length - 1; j >= 0; j-- {
			digits[j]++
			if digits[j] < len(alphabet) {
				break
			}
			digits[j] = 0
		}
	}
	return labels
}
