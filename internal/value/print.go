package value

import (
	"sort"
	"strconv"
	"strings"

	"github.com/maruel/natural"
)

// String renders a Float using Go's shortest round-trip decimal form, the
// same contract `strconv.FormatFloat(f, 'g', -1, 64)` gives — this is what
// lets `(+ 1 2/3 0.5)` print as `2.1666666666666665` in spec.md §8 scenario 1.
func (f *Float) String() string {
	return strconv.FormatFloat(f.V, 'g', -1, 64)
}

// String renders a non-empty list as "(elt1 elt2 …)" and the empty list as
// "NULL" (spec.md §6).
func (l *List) String() string {
	if len(l.Elements) == 0 {
		return "NULL"
	}
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// String renders a Map as "(MAP\n   (key val)\n   …\n)" with keys sorted in
// natural order (spec.md §6), using the same library the teacher's retrieval
// pack pulls in for human-friendly identifier ordering.
func (m *Map) String() string {
	keys := make([]string, 0, len(m.Entries))
	for k := range m.Entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return natural.Less(keys[i], keys[j]) })

	var sb strings.Builder
	sb.WriteString("(MAP")
	for _, k := range keys {
		sb.WriteString("\n   (")
		sb.WriteString(k)
		sb.WriteString(" ")
		sb.WriteString(m.Entries[k].String())
		sb.WriteString(")")
	}
	sb.WriteString("\n)")
	return sb.String()
}

