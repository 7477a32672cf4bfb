package builtins

import (
	"sort"
	"strings"

	"github.com/rprovost11-sketch/Lyps/internal/value"
)

// Category groups primitives the way spec.md §4.4 groups them.
type Category string

const (
	CategoryDefinition Category = "definition"
	CategoryControl    Category = "control"
	CategoryListMap    Category = "list-map"
	CategoryArithmetic Category = "arithmetic"
	CategoryPredicate  Category = "predicate"
	CategoryRelational Category = "relational"
	CategoryLogical    Category = "logical"
	CategoryConversion Category = "conversion"
	CategoryIO         Category = "io"
)

// Entry holds one primitive's full record: its canonical uppercase name,
// its usage string (surfaced in RuntimeFuncError), its implementation, the
// evaluation-order flag, and its category.
type Entry struct {
	Name       string
	Usage      string
	Fn         BuiltinFunc
	StdEvalOrd bool
	Category   Category
}

// Registry is the static primitive table, constructed once and reinstated
// on every reboot (spec.md §9 "Primitive registry").
type Registry struct {
	entries    map[string]*Entry
	categories map[Category][]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries:    make(map[string]*Entry),
		categories: make(map[Category][]string),
	}
}

// Register adds a primitive to r. The name is upper-cased to match
// value.Intern's case folding: the reader always produces upper-case
// symbols, so a primitive must be keyed the same way to be found by
// ordinary symbol lookup. Re-registering a name replaces it without
// duplicating its category listing.
func (r *Registry) Register(e Entry) {
	e.Name = strings.ToUpper(e.Name)
	if _, exists := r.entries[e.Name]; !exists {
		r.categories[e.Category] = append(r.categories[e.Category], e.Name)
	}
	r.entries[e.Name] = &e
}

// Lookup returns the registered entry for name, if any.
func (r *Registry) Lookup(name string) (*Entry, bool) {
	e, ok := r.entries[name]
	return e, ok
}

// Names returns every registered primitive name, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for n := range r.entries {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Primitives returns a value.Primitive for every registered entry, ready to
// install into a fresh global environment (spec.md §9 "reinstated on
// reboot").
func (r *Registry) Primitives() map[string]*value.Primitive {
	out := make(map[string]*value.Primitive, len(r.entries))
	for name, e := range r.entries {
		out[name] = &value.Primitive{
			Name:       e.Name,
			Usage:      e.Usage,
			Fn:         adapt(e.Fn),
			StdEvalOrd: e.StdEvalOrd,
		}
	}
	return out
}

// DefaultRegistry is the factory primitive table (spec.md §9), populated on
// package initialization exactly once and never mutated afterward —
// Reboot() installs a fresh value.Primitive for each entry into the global
// frame rather than mutating this table.
var DefaultRegistry = buildDefaultRegistry()

func buildDefaultRegistry() *Registry {
	r := NewRegistry()
	registerDefinitionFunctions(r)
	registerControlFunctions(r)
	registerListMapFunctions(r)
	registerArithmeticFunctions(r)
	registerPredicateFunctions(r)
	registerRelationalFunctions(r)
	registerLogicalFunctions(r)
	registerConversionFunctions(r)
	registerIOFunctions(r)
	return r
}
