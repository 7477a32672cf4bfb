package value

import (
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var upper = cases.Upper(language.Und)

// symtab interns Symbol values by upper-cased name, so that two reads of
// the same name return the identical *Symbol instance, matching spec.md
// §3.1's "interned-by-name" wording. (`is?` and `=` still compare symbols
// by name, not by instance.) Unicode-aware uppercasing (rather than a byte-wise ASCII
// toUpper) is delegated to golang.org/x/text, since symbol names are not
// restricted to ASCII.
type symtab struct {
	mu      sync.Mutex
	symbols map[string]*Symbol
}

var globalSymbols = &symtab{symbols: make(map[string]*Symbol)}

// Intern returns the canonical upper-cased Symbol for name, creating it on
// first use. This is what the reader calls for every SYMBOL token
// (spec.md §4.2's case rule).
func Intern(name string) *Symbol {
	folded := upper.String(name)
	globalSymbols.mu.Lock()
	defer globalSymbols.mu.Unlock()
	if s, ok := globalSymbols.symbols[folded]; ok {
		return s
	}
	s := &Symbol{Name: folded}
	globalSymbols.symbols[folded] = s
	return s
}
