// Package responsive assembles CSS from values which may change at breakpoints.
//
// A responsive input is either a bare value or a map from breakpoint names to
// values. For one or more such inputs the Generator finds every breakpoint at
// which any input is explicitly defined, resolves all inputs there (falling
// back to the nearest smaller defined breakpoint) and hands the values to a
// combining function. Non-empty results above the base breakpoint are wrapped
// into min-width media queries:
//
//	gen, _ := responsive.New(breakpoints.Map{"m": 768}, nil)
//	gen.Prop(map[string]string{"m": "row"}, "column", func(v any) string {
//		return fmt.Sprintf("flex-direction: %v;", v)
//	})
//	// flex-direction: column; @media (min-width: 768px) { flex-direction: row; }
package responsive

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"respcss/breakpoints"
)

// ErrArity is returned when inputs and defaults do not pair up.
var ErrArity = errors.New("inputs and defaults must have the same non-zero length")

// CombineFunc turns values resolved at one breakpoint into a CSS fragment.
// Empty fragment means nothing is emitted for the breakpoint.
type CombineFunc func(values ...any) (string, error)

// Block is a single emitted fragment.
type Block struct {
	Breakpoint string
	Query      string // empty for base breakpoint
	Fragment   string
}

// String returns the fragment, wrapped in its media query when guarded.
func (b Block) String() string {
	if b.Query == "" {
		return b.Fragment
	}
	return b.Query + " { " + b.Fragment + " }"
}

// Join renders blocks separated by a single space.
func Join(blocks []Block) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		parts = append(parts, b.String())
	}
	return strings.Join(parts, " ")
}

// Generator is bound to a breakpoint set. It is immutable and safe for
// concurrent use.
type Generator struct {
	log   *zap.Logger
	bps   breakpoints.Map
	order []string
	index map[string]int
}

// New validates breakpoints and creates generator bound to them.
func New(bps breakpoints.Map, log *zap.Logger) (*Generator, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := bps.Validate(); err != nil {
		return nil, fmt.Errorf("invalid breakpoints: %w", err)
	}

	g := &Generator{
		log: log.Named("responsive"),
		bps: bps.WithDefault(),
	}
	g.order = g.bps.Order()
	g.index = make(map[string]int, len(g.order))
	for i, name := range g.order {
		g.index[name] = i
	}
	g.log.Debug("Breakpoints configured", zap.Strings("order", g.order))
	return g, nil
}

// Breakpoints returns a copy of the breakpoint set, default included.
func (g *Generator) Breakpoints() breakpoints.Map {
	return g.bps.WithDefault()
}

// Order returns breakpoint names in ascending order.
func (g *Generator) Order() []string {
	return append([]string(nil), g.order...)
}

// Blocks evaluates fn once per breakpoint explicitly defined by any of the
// inputs, in ascending order, and returns non-empty results. Errors from fn
// are returned as is, wrapped with the breakpoint name.
func (g *Generator) Blocks(inputs, defaults []any, fn CombineFunc) ([]Block, error) {
	if len(inputs) == 0 || len(inputs) != len(defaults) {
		return nil, fmt.Errorf("%w: %d inputs, %d defaults", ErrArity, len(inputs), len(defaults))
	}

	props := make([]normalized, len(inputs))
	defined := make(map[string]struct{})
	for i, in := range inputs {
		props[i] = g.normalize(in, defaults[i])
		for name := range props[i] {
			defined[name] = struct{}{}
		}
	}

	var blocks []Block
	for _, name := range g.order {
		if _, ok := defined[name]; !ok {
			continue
		}
		values := make([]any, len(props))
		for i, p := range props {
			values[i] = g.resolve(name, p)
		}
		fragment, err := fn(values...)
		if err != nil {
			return nil, fmt.Errorf("breakpoint %s: %w", name, err)
		}
		if fragment == "" {
			continue
		}
		b := Block{Breakpoint: name, Fragment: fragment}
		if !g.bps.IsBase(name) {
			b.Query = g.bps.MediaQuery(name)
		}
		blocks = append(blocks, b)
	}

	g.log.Debug("Assembled responsive rule",
		zap.Int("inputs", len(inputs)),
		zap.Int("breakpoints", len(defined)),
		zap.Int("blocks", len(blocks)))
	return blocks, nil
}

// Props is the multi-input form of Prop. fn receives resolved values in the
// order of inputs. It panics when inputs and defaults do not pair up.
func (g *Generator) Props(inputs, defaults []any, fn func(values ...any) string) string {
	blocks, err := g.Blocks(inputs, defaults, func(values ...any) (string, error) {
		return fn(values...), nil
	})
	if err != nil {
		panic(err)
	}
	return Join(blocks)
}

// Prop assembles CSS for a single responsive input. Nil input means def.
func (g *Generator) Prop(input, def any, fn func(value any) string) string {
	return g.Props([]any{input}, []any{def}, func(values ...any) string {
		return fn(values[0])
	})
}
