package responsive_test

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"respcss/breakpoints"
	"respcss/responsive"
)

var (
	sizes = breakpoints.Map{
		"default": 0,
		"small":   100,
		"medium":  500,
		"large":   600,
	}
	site = breakpoints.Map{
		"xs": 0,
		"s":  321,
		"m":  768,
		"l":  1024,
		"xl": 1280,
	}
)

func newGenerator(t *testing.T, bps breakpoints.Map) *responsive.Generator {
	t.Helper()
	g, err := responsive.New(bps, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return g
}

// recorder captures every combine call and emits nothing.
type recorder struct {
	calls [][]any
}

func (r *recorder) combine(values ...any) string {
	r.calls = append(r.calls, values)
	return ""
}

func (r *recorder) expect(t *testing.T, want ...[]any) {
	t.Helper()
	if len(r.calls) != len(want) {
		t.Fatalf("combine called %d times, want %d: %v", len(r.calls), len(want), r.calls)
	}
	for i := range want {
		if !reflect.DeepEqual(r.calls[i], want[i]) {
			t.Errorf("call %d = %#v, want %#v", i, r.calls[i], want[i])
		}
	}
}

func call(values ...any) []any {
	return values
}

func TestProp_CallbackValues(t *testing.T) {
	g := newGenerator(t, sizes)

	tests := []struct {
		name  string
		input any
		def   any
		want  [][]any
	}{
		{
			name:  "nil input uses default",
			input: nil,
			def:   "default",
			want:  [][]any{call("default")},
		},
		{
			name:  "bare value",
			input: "value",
			def:   "default",
			want:  [][]any{call("value")},
		},
		{
			name:  "only default defined",
			input: map[string]string{"default": "value"},
			def:   "default",
			want:  [][]any{call("value")},
		},
		{
			name:  "non default breakpoint only",
			input: map[string]string{"small": "value"},
			def:   "default",
			want:  [][]any{call("default"), call("value")},
		},
		{
			name:  "explicit values type",
			input: responsive.Values{"medium": 5},
			def:   1,
			want:  [][]any{call(1), call(5)},
		},
		{
			name:  "values type without known keys",
			input: responsive.Values{"huge": 5},
			def:   1,
			want:  [][]any{call(1)},
		},
		{
			name:  "unknown keys are ignored",
			input: map[string]any{"large": "l", "huge": "h"},
			def:   "d",
			want:  [][]any{call("d"), call("l")},
		},
		{
			name:  "explicit nil entry is kept",
			input: map[string]any{"default": nil, "large": "l"},
			def:   "d",
			want:  [][]any{call(nil), call("l")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r recorder
			g.Prop(tt.input, tt.def, func(v any) string { return r.combine(v) })
			r.expect(t, tt.want...)
		})
	}
}

func TestProp_EmptyResult(t *testing.T) {
	g := newGenerator(t, sizes)

	if got := g.Prop(nil, nil, func(any) string { return "" }); got != "" {
		t.Errorf("Prop() = %q, want empty", got)
	}

	got := g.Props(
		[]any{map[string]int{"small": 1, "medium": 2}, map[string]int{"large": 3}},
		[]any{0, 0},
		func(...any) string { return "" },
	)
	if got != "" {
		t.Errorf("Props() = %q, want empty", got)
	}
}

func TestProp_DropsEmptyBreakpoints(t *testing.T) {
	g := newGenerator(t, sizes)

	got := g.Prop(map[string]any{"small": "a", "medium": nil, "large": "c"}, nil, func(v any) string {
		if v == nil {
			return ""
		}
		return fmt.Sprintf("x: %v;", v)
	})
	want := "@media (min-width: 100px) { x: a; } @media (min-width: 600px) { x: c; }"
	if got != want {
		t.Errorf("Prop() = %q, want %q", got, want)
	}
}

func TestProp_MediaQueries(t *testing.T) {
	g := newGenerator(t, sizes)

	got := g.Prop(map[string]string{"small": "small", "medium": "medium", "large": "large"}, "default",
		func(v any) string { return v.(string) })

	want := "default @media (min-width: 100px) { small } @media (min-width: 500px) { medium } @media (min-width: 600px) { large }"
	if got != want {
		t.Errorf("Prop() = %q, want %q", got, want)
	}
}

func TestProps_MediaQueries(t *testing.T) {
	g := newGenerator(t, sizes)

	got := g.Props(
		[]any{
			map[string]string{"small": "first_small", "medium": "first_medium", "large": "first_large"},
			map[string]string{"small": "second_small", "medium": "second_medium", "large": "second_large"},
		},
		[]any{"first_default", "second_default"},
		func(v ...any) string { return fmt.Sprintf("%v | %v", v[0], v[1]) },
	)

	for _, part := range []string{
		"first_default | second_default",
		"@media (min-width: 100px) { first_small | second_small }",
		"@media (min-width: 500px) { first_medium | second_medium }",
		"@media (min-width: 600px) { first_large | second_large }",
	} {
		if !strings.Contains(got, part) {
			t.Errorf("Props() = %q, missing %q", got, part)
		}
	}
}

func TestProps_CrossInputUnion(t *testing.T) {
	g := newGenerator(t, site)

	got := g.Props(
		[]any{map[string]string{"l": "medium"}, map[string]string{"xs": "column", "xl": "row"}},
		[]any{"small", "default"},
		func(v ...any) string { return fmt.Sprintf("%v: %v;", v[1], v[0]) },
	)

	want := "column: small; @media (min-width: 1024px) { column: medium; } @media (min-width: 1280px) { row: medium; }"
	if got != want {
		t.Errorf("Props() =\n%q\nwant\n%q", got, want)
	}
}

func TestProps_CallbackValues(t *testing.T) {
	g := newGenerator(t, sizes)

	tests := []struct {
		name     string
		inputs   []any
		defaults []any
		want     [][]any
	}{
		{
			name:     "bare values",
			inputs:   []any{"value", "some"},
			defaults: []any{"default", "none"},
			want:     [][]any{call("value", "some")},
		},
		{
			name: "four inputs",
			inputs: []any{
				map[string]string{"small": "first_small"},
				map[string]string{"small": "second_small", "large": "second_large"},
				true,
				map[string]string{"small": "fourth_small", "medium": "fourth_medium"},
			},
			defaults: []any{"first_default", "second_default", false, "fourth_default"},
			want: [][]any{
				call("first_default", "second_default", true, "fourth_default"),
				call("first_small", "second_small", true, "fourth_small"),
				call("first_small", "second_small", true, "fourth_medium"),
				call("first_small", "second_large", true, "fourth_medium"),
			},
		},
		{
			name: "first input has more breakpoints",
			inputs: []any{
				map[string]string{"small": "first_small", "medium": "first_medium", "large": "first_large"},
				map[string]string{"small": "second_small", "large": "second_large"},
			},
			defaults: []any{"first_default", "second_default"},
			want: [][]any{
				call("first_default", "second_default"),
				call("first_small", "second_small"),
				call("first_medium", "second_small"),
				call("first_large", "second_large"),
			},
		},
		{
			name: "subsequent input has more breakpoints",
			inputs: []any{
				map[string]string{"medium": "first_medium"},
				map[string]string{"large": "second_large", "small": "second_small"},
			},
			defaults: []any{"first_default", "second_default"},
			want: [][]any{
				call("first_default", "second_default"),
				call("first_default", "second_small"),
				call("first_medium", "second_small"),
				call("first_medium", "second_large"),
			},
		},
		{
			name:     "subsequent input undefined",
			inputs:   []any{map[string]string{"large": "first_large"}, nil},
			defaults: []any{"first_default", nil},
			want: [][]any{
				call("first_default", nil),
				call("first_large", nil),
			},
		},
		{
			name:     "all inputs undefined",
			inputs:   []any{nil, nil},
			defaults: []any{"first_default", nil},
			want:     [][]any{call("first_default", nil)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r recorder
			g.Props(tt.inputs, tt.defaults, r.combine)
			r.expect(t, tt.want...)
		})
	}
}

type size struct {
	Width, Height int
}

func TestProp_ObjectValues(t *testing.T) {
	g := newGenerator(t, sizes)

	t.Run("struct value", func(t *testing.T) {
		var r recorder
		g.Prop(size{1, 2}, nil, func(v any) string { return r.combine(v) })
		r.expect(t, call(size{1, 2}))
	})

	t.Run("map value without breakpoint keys", func(t *testing.T) {
		var r recorder
		value := map[string]int{"width": 1, "height": 2}
		g.Prop(value, nil, func(v any) string { return r.combine(v) })
		r.expect(t, call(value))
	})

	t.Run("responsive object of objects", func(t *testing.T) {
		var r recorder
		g.Prop(map[string]size{"medium": {3, 4}}, size{1, 2}, func(v any) string { return r.combine(v) })
		r.expect(t, call(size{1, 2}), call(size{3, 4}))
	})

	t.Run("map value colliding with breakpoint name", func(t *testing.T) {
		var r recorder
		g.Prop(map[string]int{"small": 1, "width": 2}, 0, func(v any) string { return r.combine(v) })
		r.expect(t, call(0), call(1))
	})

	t.Run("literal skips detection", func(t *testing.T) {
		var r recorder
		value := map[string]int{"small": 1, "width": 2}
		g.Prop(responsive.Literal(value), nil, func(v any) string { return r.combine(v) })
		r.expect(t, call(value))
	})

	t.Run("literal nil uses default", func(t *testing.T) {
		var r recorder
		g.Prop(responsive.Literal(nil), "d", func(v any) string { return r.combine(v) })
		r.expect(t, call("d"))
	})
}

func TestProp_BaseAliases(t *testing.T) {
	g := newGenerator(t, site)

	t.Run("zero width breakpoint is base", func(t *testing.T) {
		var r recorder
		got := g.Prop(map[string]string{"xs": "column"}, "row", func(v any) string {
			r.combine(v)
			return fmt.Sprint(v)
		})
		r.expect(t, call("column"))
		if got != "column" {
			t.Errorf("Prop() = %q, want %q", got, "column")
		}
	})

	t.Run("alias wins over default", func(t *testing.T) {
		var r recorder
		g.Prop(map[string]string{"default": "a", "xs": "b", "m": "c"}, "z", func(v any) string { return r.combine(v) })
		r.expect(t, call("b"), call("c"))
	})
}

func TestProp_Coverage(t *testing.T) {
	g := newGenerator(t, site)

	got := g.Prop(map[string]int{"s": 1, "m": 2, "xl": 3}, 0, func(v any) string {
		return fmt.Sprintf("order: %v;", v)
	})
	want := "order: 0; @media (min-width: 321px) { order: 1; } @media (min-width: 768px) { order: 2; } @media (min-width: 1280px) { order: 3; }"
	if got != want {
		t.Errorf("Prop() = %q, want %q", got, want)
	}
}

func TestBlocks(t *testing.T) {
	g := newGenerator(t, site)

	blocks, err := g.Blocks(
		[]any{map[string]string{"m": "2rem"}},
		[]any{"1rem"},
		func(v ...any) (string, error) { return fmt.Sprintf("gap: %v;", v[0]), nil },
	)
	if err != nil {
		t.Fatalf("Blocks() error = %v", err)
	}

	want := []responsive.Block{
		{Breakpoint: "default", Fragment: "gap: 1rem;"},
		{Breakpoint: "m", Query: "@media (min-width: 768px)", Fragment: "gap: 2rem;"},
	}
	if !reflect.DeepEqual(blocks, want) {
		t.Errorf("Blocks() = %#v, want %#v", blocks, want)
	}
}

func TestBlocks_Errors(t *testing.T) {
	g := newGenerator(t, site)

	t.Run("arity mismatch", func(t *testing.T) {
		_, err := g.Blocks([]any{1, 2}, []any{1}, func(...any) (string, error) { return "", nil })
		if !errors.Is(err, responsive.ErrArity) {
			t.Errorf("expected ErrArity, got %v", err)
		}
	})

	t.Run("no inputs", func(t *testing.T) {
		_, err := g.Blocks(nil, nil, func(...any) (string, error) { return "", nil })
		if !errors.Is(err, responsive.ErrArity) {
			t.Errorf("expected ErrArity, got %v", err)
		}
	})

	t.Run("combine error is propagated", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := g.Blocks([]any{map[string]int{"l": 1}}, []any{0}, func(v ...any) (string, error) {
			if v[0] == 1 {
				return "", boom
			}
			return "x", nil
		})
		if !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
		if !strings.Contains(err.Error(), "breakpoint l") {
			t.Errorf("error %q does not name breakpoint", err)
		}
	})

	t.Run("props panics on arity mismatch", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("expected panic")
			}
		}()
		g.Props([]any{1}, []any{1, 2}, func(...any) string { return "" })
	})
}

func TestNew_InvalidBreakpoints(t *testing.T) {
	_, err := responsive.New(breakpoints.Map{"m": -5}, nil)
	if !errors.Is(err, breakpoints.ErrNegativeWidth) {
		t.Errorf("expected ErrNegativeWidth, got %v", err)
	}
}

func TestGenerator_Order(t *testing.T) {
	g := newGenerator(t, site)
	want := []string{"default", "xs", "s", "m", "l", "xl"}
	if got := g.Order(); !reflect.DeepEqual(got, want) {
		t.Errorf("Order() = %v, want %v", got, want)
	}
	if _, ok := g.Breakpoints()["default"]; !ok {
		t.Error("Breakpoints() must include default")
	}
}
