package builtins

import (
	"github.com/rprovost11-sketch/Lyps/internal/runtime"
	"github.com/rprovost11-sketch/Lyps/internal/value"
)

func registerListMapFunctions(r *Registry) {
	r.Register(Entry{Name: "list", Usage: "(list v1 v2 ...)", Category: CategoryListMap, StdEvalOrd: true, Fn: builtinList})
	r.Register(Entry{Name: "cons", Usage: "(cons v lst)", Category: CategoryListMap, StdEvalOrd: true, Fn: builtinCons})
	r.Register(Entry{Name: "first", Usage: "(first lst)", Category: CategoryListMap, StdEvalOrd: true, Fn: builtinFirst})
	r.Register(Entry{Name: "rest", Usage: "(rest lst)", Category: CategoryListMap, StdEvalOrd: true, Fn: builtinRest})
	r.Register(Entry{Name: "length", Usage: "(length lst)", Category: CategoryListMap, StdEvalOrd: true, Fn: builtinLength})
	r.Register(Entry{Name: "nth", Usage: "(nth lst i)", Category: CategoryListMap, StdEvalOrd: true, Fn: builtinNth})
	r.Register(Entry{Name: "append", Usage: "(append lst1 lst2 ...)", Category: CategoryListMap, StdEvalOrd: true, Fn: builtinAppend})
	r.Register(Entry{Name: "reverse", Usage: "(reverse lst)", Category: CategoryListMap, StdEvalOrd: true, Fn: builtinReverse})

	r.Register(Entry{Name: "mapGet", Usage: "(mapGet m key)", Category: CategoryListMap, StdEvalOrd: true, Fn: builtinMapGet})
	r.Register(Entry{Name: "mapSet!", Usage: "(mapSet! m key v)", Category: CategoryListMap, StdEvalOrd: true, Fn: builtinMapSet})
	r.Register(Entry{Name: "mapKeys", Usage: "(mapKeys m)", Category: CategoryListMap, StdEvalOrd: true, Fn: builtinMapKeys})
	r.Register(Entry{Name: "mapHasKey?", Usage: "(mapHasKey? m key)", Category: CategoryListMap, StdEvalOrd: true, Fn: builtinMapHasKey})

	// spec.md §4.4's canonical List/Map names: push!/pop!/at/atSet!/join/
	// hasValue?/update!/hasKey? — kept alongside the longer-form mapXxx
	// names above rather than replacing them, since callers of either
	// spelling should keep working.
	r.Register(Entry{Name: "push!", Usage: "(push! lst v)", Category: CategoryListMap, StdEvalOrd: true, Fn: builtinPush})
	r.Register(Entry{Name: "pop!", Usage: "(pop! lst)", Category: CategoryListMap, StdEvalOrd: true, Fn: builtinPop})
	r.Register(Entry{Name: "at", Usage: "(at coll key)", Category: CategoryListMap, StdEvalOrd: true, Fn: builtinAt})
	r.Register(Entry{Name: "atSet!", Usage: "(atSet! lst i v)", Category: CategoryListMap, StdEvalOrd: true, Fn: builtinAtSet})
	r.Register(Entry{Name: "join", Usage: "(join lst1 lst2 ...)", Category: CategoryListMap, StdEvalOrd: true, Fn: builtinAppend})
	// hasValue? is registered once, by registerPredicateFunctions.
	r.Register(Entry{Name: "update!", Usage: "(update! m key v)", Category: CategoryListMap, StdEvalOrd: true, Fn: builtinMapSet})
	r.Register(Entry{Name: "hasKey?", Usage: "(hasKey? m key)", Category: CategoryListMap, StdEvalOrd: true, Fn: builtinMapHasKey})
}

// builtinPush mutates args[0] in place by appending v to its end (spec.md
// §4.4 "push! (mutates first arg)"). Lists share their backing *List
// pointer across every binding, so reassigning Elements here is visible to
// every other holder of the same list — except the NULL singleton, which
// cannot be grown in place without corrupting the language's one shared
// empty-list value; callers wanting to grow NULL must rebind the result of
// `list` or `cons` instead.
func builtinPush(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	const usage = "(push! lst v)"
	if len(args) != 2 {
		return nil, runtime.NewRuntimeFuncError("push!", usage, "requires exactly 2 arguments")
	}
	lst, ok := args[0].(*value.List)
	if !ok {
		return nil, runtime.NewRuntimeFuncError("push!", usage, "expected a list, got %s", args[0].Kind())
	}
	if lst == value.Null {
		return nil, runtime.NewRuntimeFuncError("push!", usage, "cannot push onto NULL in place; use (cons v NULL) instead")
	}
	lst.Elements = append(lst.Elements, args[1])
	return lst, nil
}

// builtinPop mutates args[0] in place, removing and returning its last
// element (spec.md §4.4 "pop!").
func builtinPop(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	const usage = "(pop! lst)"
	if len(args) != 1 {
		return nil, runtime.NewRuntimeFuncError("pop!", usage, "requires exactly 1 argument")
	}
	lst, ok := args[0].(*value.List)
	if !ok || len(lst.Elements) == 0 {
		return nil, runtime.NewRuntimeFuncError("pop!", usage, "cannot pop from NULL")
	}
	last := lst.Elements[len(lst.Elements)-1]
	lst.Elements = lst.Elements[:len(lst.Elements)-1]
	return last, nil
}

// builtinAt implements `at`: indexed lookup on a list, or key lookup on a
// map, unified under one name (spec.md §4.4).
func builtinAt(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	const usage = "(at coll key)"
	if len(args) != 2 {
		return nil, runtime.NewRuntimeFuncError("at", usage, "requires exactly 2 arguments")
	}
	switch args[0].(type) {
	case *value.Map:
		return builtinMapGet(ctx, env, args)
	default:
		return builtinNth(ctx, env, args)
	}
}

// builtinAtSet mutates a list in place at an integer index (spec.md §4.4
// "atSet!"). Map key assignment is `update!`, which aliases mapSet!.
func builtinAtSet(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	const usage = "(atSet! lst i v)"
	if len(args) != 3 {
		return nil, runtime.NewRuntimeFuncError("atSet!", usage, "requires exactly 3 arguments")
	}
	lst, ok := args[0].(*value.List)
	if !ok {
		return nil, runtime.NewRuntimeFuncError("atSet!", usage, "cannot index-assign into NULL")
	}
	idx, ok := args[1].(*value.Integer)
	if !ok {
		return nil, runtime.NewRuntimeFuncError("atSet!", usage, "index must be an integer, got %s", args[1].Kind())
	}
	i := idx.V.Int64()
	if i < 0 || i >= int64(len(lst.Elements)) {
		return nil, runtime.NewRuntimeFuncError("atSet!", usage, "index %d out of range (length %d)", i, len(lst.Elements))
	}
	lst.Elements[i] = args[2]
	return lst, nil
}


// keyName coerces a map key form to its string key (spec.md §4.4 "map
// (constructor; keys may be int/float/string/symbol, coerced to string)").
func keyName(v value.Value) (string, bool) {
	switch k := v.(type) {
	case *value.Symbol:
		return k.Name, true
	case *value.String:
		return k.V, true
	case *value.Integer:
		return k.String(), true
	case *value.Float:
		return k.String(), true
	default:
		return "", false
	}
}

func asList(v value.Value) ([]value.Value, bool) {
	if value.IsNull(v) {
		return nil, true
	}
	l, ok := v.(*value.List)
	if !ok {
		return nil, false
	}
	return l.Elements, true
}

func builtinList(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	return value.NewList(args...), nil
}

func builtinCons(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	const usage = "(cons v lst)"
	if len(args) != 2 {
		return nil, runtime.NewRuntimeFuncError("cons", usage, "requires exactly 2 arguments")
	}
	rest, ok := asList(args[1])
	if !ok {
		return nil, runtime.NewRuntimeFuncError("cons", usage, "second argument must be a list, got %s", args[1].Kind())
	}
	elems := make([]value.Value, 0, len(rest)+1)
	elems = append(elems, args[0])
	elems = append(elems, rest...)
	return value.NewList(elems...), nil
}

func builtinFirst(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	const usage = "(first lst)"
	if len(args) != 1 {
		return nil, runtime.NewRuntimeFuncError("first", usage, "requires exactly 1 argument")
	}
	elems, ok := asList(args[0])
	if !ok {
		return nil, runtime.NewRuntimeFuncError("first", usage, "expected a list, got %s", args[0].Kind())
	}
	if len(elems) == 0 {
		return nil, runtime.NewRuntimeFuncError("first", usage, "cannot take first of NULL")
	}
	return elems[0], nil
}

func builtinRest(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	const usage = "(rest lst)"
	if len(args) != 1 {
		return nil, runtime.NewRuntimeFuncError("rest", usage, "requires exactly 1 argument")
	}
	elems, ok := asList(args[0])
	if !ok {
		return nil, runtime.NewRuntimeFuncError("rest", usage, "expected a list, got %s", args[0].Kind())
	}
	if len(elems) == 0 {
		return nil, runtime.NewRuntimeFuncError("rest", usage, "cannot take rest of NULL")
	}
	return value.NewList(elems[1:]...), nil
}

func builtinLength(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	const usage = "(length lst)"
	if len(args) != 1 {
		return nil, runtime.NewRuntimeFuncError("length", usage, "requires exactly 1 argument")
	}
	switch v := args[0].(type) {
	case *value.Map:
		return value.NewInteger(int64(len(v.Entries))), nil
	default:
		elems, ok := asList(args[0])
		if !ok {
			return nil, runtime.NewRuntimeFuncError("length", usage, "expected a list or map, got %s", args[0].Kind())
		}
		return value.NewInteger(int64(len(elems))), nil
	}
}

func builtinNth(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	const usage = "(nth lst i)"
	if len(args) != 2 {
		return nil, runtime.NewRuntimeFuncError("nth", usage, "requires exactly 2 arguments")
	}
	elems, ok := asList(args[0])
	if !ok {
		return nil, runtime.NewRuntimeFuncError("nth", usage, "expected a list, got %s", args[0].Kind())
	}
	idx, ok := args[1].(*value.Integer)
	if !ok {
		return nil, runtime.NewRuntimeFuncError("nth", usage, "index must be an integer, got %s", args[1].Kind())
	}
	i := idx.V.Int64()
	if i < 0 || i >= int64(len(elems)) {
		return nil, runtime.NewRuntimeFuncError("nth", usage, "index %d out of range (length %d)", i, len(elems))
	}
	return elems[i], nil
}

func builtinAppend(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	var out []value.Value
	for _, a := range args {
		elems, ok := asList(a)
		if !ok {
			return nil, runtime.NewRuntimeFuncError("append", "(append lst1 lst2 ...)", "expected a list, got %s", a.Kind())
		}
		out = append(out, elems...)
	}
	return value.NewList(out...), nil
}

func builtinReverse(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	const usage = "(reverse lst)"
	if len(args) != 1 {
		return nil, runtime.NewRuntimeFuncError("reverse", usage, "requires exactly 1 argument")
	}
	elems, ok := asList(args[0])
	if !ok {
		return nil, runtime.NewRuntimeFuncError("reverse", usage, "expected a list, got %s", args[0].Kind())
	}
	out := make([]value.Value, len(elems))
	for i, e := range elems {
		out[len(elems)-1-i] = e
	}
	return value.NewList(out...), nil
}

func builtinMapGet(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	const usage = "(mapGet m key)"
	if len(args) != 2 {
		return nil, runtime.NewRuntimeFuncError("mapGet", usage, "requires exactly 2 arguments")
	}
	m, ok := args[0].(*value.Map)
	if !ok {
		return nil, runtime.NewRuntimeFuncError("mapGet", usage, "expected a map, got %s", args[0].Kind())
	}
	key, ok := keyName(args[1])
	if !ok {
		return nil, runtime.NewRuntimeFuncError("mapGet", usage, "key must be an int/float/string/symbol, got %s", args[1].Kind())
	}
	v, ok := m.Entries[key]
	if !ok {
		return value.Null, nil
	}
	return v, nil
}

func builtinMapSet(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	const usage = "(mapSet! m key v)"
	if len(args) != 3 {
		return nil, runtime.NewRuntimeFuncError("mapSet!", usage, "requires exactly 3 arguments")
	}
	m, ok := args[0].(*value.Map)
	if !ok {
		return nil, runtime.NewRuntimeFuncError("mapSet!", usage, "expected a map, got %s", args[0].Kind())
	}
	key, ok := keyName(args[1])
	if !ok {
		return nil, runtime.NewRuntimeFuncError("mapSet!", usage, "key must be an int/float/string/symbol, got %s", args[1].Kind())
	}
	m.Entries[key] = args[2]
	return m, nil
}

func builtinMapKeys(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	const usage = "(mapKeys m)"
	if len(args) != 1 {
		return nil, runtime.NewRuntimeFuncError("mapKeys", usage, "requires exactly 1 argument")
	}
	m, ok := args[0].(*value.Map)
	if !ok {
		return nil, runtime.NewRuntimeFuncError("mapKeys", usage, "expected a map, got %s", args[0].Kind())
	}
	keys := make([]value.Value, 0, len(m.Entries))
	for k := range m.Entries {
		keys = append(keys, value.Intern(k))
	}
	return value.NewList(keys...), nil
}

func builtinMapHasKey(ctx Context, env *runtime.Environment, args []value.Value) (value.Value, error) {
	const usage = "(mapHasKey? m key)"
	if len(args) != 2 {
		return nil, runtime.NewRuntimeFuncError("mapHasKey?", usage, "requires exactly 2 arguments")
	}
	m, ok := args[0].(*value.Map)
	if !ok {
		return nil, runtime.NewRuntimeFuncError("mapHasKey?", usage, "expected a map, got %s", args[0].Kind())
	}
	key, ok := keyName(args[1])
	if !ok {
		return nil, runtime.NewRuntimeFuncError("mapHasKey?", usage, "key must be an int/float/string/symbol, got %s", args[1].Kind())
	}
	_, has := m.Entries[key]
	return value.BoolValue(has), nil
}
