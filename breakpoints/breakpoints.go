// Package breakpoints defines named viewport widths and their ordering.
package breakpoints

import (
	"errors"
	"fmt"
	"slices"

	"github.com/maruel/natural"
)

// Default is the implicit zero-width breakpoint every map is extended with.
const Default = "default"

var (
	ErrNegativeWidth = errors.New("breakpoint width must not be negative")
	ErrDefaultWidth  = errors.New("default breakpoint width must be zero")
)

// Map maps breakpoint names to minimal viewport width in pixels.
type Map map[string]int

// Validate reports all problems found in the map.
func (m Map) Validate() error {
	var errs []error
	for _, name := range m.names() {
		w := m[name]
		switch {
		case name == Default && w != 0:
			errs = append(errs, fmt.Errorf("%w: got %d", ErrDefaultWidth, w))
		case w < 0:
			errs = append(errs, fmt.Errorf("%w: %q is %d", ErrNegativeWidth, name, w))
		}
	}
	return errors.Join(errs...)
}

// WithDefault returns a copy of the map which always has the Default entry.
func (m Map) WithDefault() Map {
	out := make(Map, len(m)+1)
	for name, w := range m {
		out[name] = w
	}
	out[Default] = 0
	return out
}

// Order returns breakpoint names ascending by width with Default first.
// Names of equal width keep natural string order.
func (m Map) Order() []string {
	names := m.WithDefault().names()
	// names are already in natural order, stable sort keeps it for ties
	slices.SortStableFunc(names, func(a, b string) int {
		switch {
		case a == Default:
			return -1
		case b == Default:
			return 1
		}
		return m[a] - m[b]
	})
	return names
}

// IsBase reports whether name needs no media query guard.
func (m Map) IsBase(name string) bool {
	if name == Default {
		return true
	}
	w, ok := m[name]
	return ok && w == 0
}

// Has reports whether name is a known breakpoint, Default included.
func (m Map) Has(name string) bool {
	if name == Default {
		return true
	}
	_, ok := m[name]
	return ok
}

// MediaQuery returns min-width media query for the breakpoint.
func (m Map) MediaQuery(name string) string {
	return fmt.Sprintf("@media (min-width: %dpx)", m[name])
}

// MediaQueryFunc binds m and returns media query generator.
func MediaQueryFunc(m Map) func(string) string {
	return m.MediaQuery
}

// names returns map keys in natural order, so map iteration never leaks out.
func (m Map) names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b string) int {
		if natural.Less(a, b) {
			return -1
		}
		if natural.Less(b, a) {
			return 1
		}
		return 0
	})
	return names
}
