package responsive

import "fmt"

// Prop1 is Prop with statically typed value. Input may be a bare A, a map
// from breakpoint names to A, Values or nil.
func Prop1[A any](g *Generator, a any, da A, fn func(A) string) string {
	return g.Props([]any{a}, []any{da}, func(v ...any) string {
		return fn(as[A](v[0]))
	})
}

// Prop2 combines two independently responsive inputs.
func Prop2[A, B any](g *Generator, a, b any, da A, db B, fn func(A, B) string) string {
	return g.Props([]any{a, b}, []any{da, db}, func(v ...any) string {
		return fn(as[A](v[0]), as[B](v[1]))
	})
}

// Prop3 combines three independently responsive inputs.
func Prop3[A, B, C any](g *Generator, a, b, c any, da A, db B, dc C, fn func(A, B, C) string) string {
	return g.Props([]any{a, b, c}, []any{da, db, dc}, func(v ...any) string {
		return fn(as[A](v[0]), as[B](v[1]), as[C](v[2]))
	})
}

// as converts resolved value, nil becomes zero value. Values of other types
// are caller bugs.
func as[T any](v any) T {
	var zero T
	if v == nil {
		return zero
	}
	t, ok := v.(T)
	if !ok {
		panic(fmt.Sprintf("responsive: value %v of type %T, expected %T", v, v, zero))
	}
	return t
}
