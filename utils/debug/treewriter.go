// Package debug formats internal structures as indented text trees for
// troubleshooting output.
package debug

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/maruel/natural"
)

type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w: &strings.Builder{},
	}
}

func (tw TreeWriter) String() string {
	return tw.w.String()
}

func (tw TreeWriter) indent(depth int) {
	for range depth {
		tw.w.WriteString("  ")
	}
}

func (tw TreeWriter) Line(depth int, format string, args ...any) {
	tw.indent(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

func (tw TreeWriter) TextBlock(depth int, label, value string) {
	tw.indent(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(encodeText(value))
	tw.w.WriteByte('\n')
}

// Value writes labeled value. Maps are expanded one key per line in natural
// key order, strings are quoted and nil is written as <nil>.
func (tw TreeWriter) Value(depth int, label string, value any) {
	if value == nil {
		tw.Line(depth, "%s: <nil>", label)
		return
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.String:
		tw.TextBlock(depth, label, v.String())
	case reflect.Map:
		tw.Line(depth, "%s: map[%d]", label, v.Len())
		keys := make([]string, 0, v.Len())
		byName := make(map[string]reflect.Value, v.Len())
		for _, k := range v.MapKeys() {
			name := fmt.Sprint(k.Interface())
			keys = append(keys, name)
			byName[name] = k
		}
		sort.Sort(natural.StringSlice(keys))
		for _, name := range keys {
			tw.Value(depth+1, name, v.MapIndex(byName[name]).Interface())
		}
	default:
		tw.Line(depth, "%s: %v", label, value)
	}
}

func encodeText(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.Quote(raw)
}
