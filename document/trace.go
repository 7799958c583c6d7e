package document

import (
	"strings"

	"respcss/responsive"
	"respcss/utils/debug"
)

type traceStep struct {
	values   []any
	fragment string
}

// Trace returns readable tree of values every rule resolves to at each
// breakpoint it produces output for. It exists solely for troubleshooting.
func (r *Renderer) Trace(doc *Document) string {
	tw := debug.NewTreeWriter()
	tw.Line(0, "Breakpoints: %s", strings.Join(r.gen.Order(), " < "))

	for i := range doc.Rules {
		rule := &doc.Rules[i]
		tw.Line(0, "Rule[%d] %s", i, rule.SelectorFor())

		combine, err := combinerFor(rule)
		if err != nil {
			tw.Line(1, "Error: %v", err)
			continue
		}

		var steps []traceStep
		inputs, defaults := ruleInputs(rule)
		blocks, err := r.gen.Blocks(inputs, defaults, func(values ...any) (string, error) {
			s, err := combine(values...)
			if err == nil && s != "" {
				steps = append(steps, traceStep{values: append([]any(nil), values...), fragment: s})
			}
			return s, err
		})
		if err != nil {
			tw.Line(1, "Error: %v", err)
			continue
		}
		if len(blocks) == 0 {
			tw.Line(1, "No output")
			continue
		}
		for j, blk := range blocks {
			traceBlock(tw, rule, blk, steps[j])
		}
	}
	return tw.String()
}

func traceBlock(tw *debug.TreeWriter, rule *Rule, blk responsive.Block, step traceStep) {
	if blk.Query == "" {
		tw.Line(1, "%s (base)", blk.Breakpoint)
	} else {
		tw.Line(1, "%s %s", blk.Breakpoint, blk.Query)
	}
	for k, v := range step.values {
		tw.Value(2, rule.Props[k].Name, v)
	}
	tw.TextBlock(2, "fragment", step.fragment)
}
