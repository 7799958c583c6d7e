package responsive

import (
	"reflect"

	"respcss/breakpoints"
)

// Values is an explicit responsive object: breakpoint name to value. Unlike
// plain maps it is never mistaken for a bare value, even when none of its
// keys is a known breakpoint.
type Values map[string]any

type literal struct {
	v any
}

// Literal marks v as a bare value. Use it for map values whose keys happen to
// collide with breakpoint names.
func Literal(v any) any {
	return literal{v: v}
}

// normalized always holds an entry for breakpoints.Default. Base aliases
// (zero-width breakpoints) are folded into that entry.
type normalized map[string]any

// normalize turns raw input into a sparse per-breakpoint mapping. Any map with
// string keys is a responsive object when at least one of its keys is a known
// breakpoint name or "default", everything else is a bare value.
func (g *Generator) normalize(in, fallback any) normalized {
	switch v := in.(type) {
	case nil:
		return normalized{breakpoints.Default: fallback}
	case literal:
		if v.v == nil {
			return normalized{breakpoints.Default: fallback}
		}
		return normalized{breakpoints.Default: v.v}
	case Values:
		return g.fromEntries(v, fallback)
	case map[string]any:
		if v == nil {
			return normalized{breakpoints.Default: fallback}
		}
		if !g.recognized(v) {
			return normalized{breakpoints.Default: in}
		}
		return g.fromEntries(v, fallback)
	}

	rv := reflect.ValueOf(in)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return normalized{breakpoints.Default: in}
	}
	if rv.IsNil() {
		return normalized{breakpoints.Default: fallback}
	}
	entries := make(map[string]any, rv.Len())
	for it := rv.MapRange(); it.Next(); {
		entries[it.Key().String()] = it.Value().Interface()
	}
	if !g.recognized(entries) {
		return normalized{breakpoints.Default: in}
	}
	return g.fromEntries(entries, fallback)
}

func (g *Generator) recognized(entries map[string]any) bool {
	for key := range entries {
		if g.bps.Has(key) {
			return true
		}
	}
	return false
}

// fromEntries copies known breakpoint entries. Walking in ascending order
// lets the last base alias override "default", the same way a later
// unguarded declaration wins in the cascade.
func (g *Generator) fromEntries(entries map[string]any, fallback any) normalized {
	out := make(normalized, len(entries)+1)
	base := fallback
	for _, name := range g.order {
		v, ok := entries[name]
		if !ok {
			continue
		}
		if g.bps.IsBase(name) {
			base = v
			continue
		}
		out[name] = v
	}
	out[breakpoints.Default] = base
	return out
}

// resolve returns the value in effect at the named breakpoint: the explicit
// entry or the one defined at the nearest smaller breakpoint.
func (g *Generator) resolve(name string, n normalized) any {
	for i := g.index[name]; i >= 0; i-- {
		if v, ok := n[g.order[i]]; ok {
			return v
		}
	}
	// this should never happen, normalize always sets default
	panic("responsive: normalized value has no default entry")
}
