package document

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"respcss/css"
	"respcss/responsive"
)

// Renderer turns documents into stylesheets.
type Renderer struct {
	log    *zap.Logger
	gen    *responsive.Generator
	layout css.Layout
}

// NewRenderer creates renderer using gen for responsive assembly.
func NewRenderer(gen *responsive.Generator, layout css.Layout, log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Renderer{log: log.Named("renderer"), gen: gen, layout: layout}
}

// Render builds stylesheet from all rules of the document. Errors of
// individual rules are collected and reported together.
func (r *Renderer) Render(doc *Document) (*css.Stylesheet, error) {
	b := css.NewBuilder(r.gen.Order(), r.layout, r.log)

	var errs error
	for i := range doc.Rules {
		rule := &doc.Rules[i]
		selector := rule.SelectorFor()

		blocks, err := r.renderRule(rule)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("rule %d (%s): %w", i, selector, err))
			continue
		}
		r.log.Debug("Rule rendered", zap.String("selector", selector), zap.Int("blocks", len(blocks)))
		b.Add(selector, blocks)
	}
	if errs != nil {
		return nil, errs
	}
	return b.Stylesheet(), nil
}

func (r *Renderer) renderRule(rule *Rule) ([]responsive.Block, error) {
	combine, err := combinerFor(rule)
	if err != nil {
		return nil, err
	}
	inputs, defaults := ruleInputs(rule)
	return r.gen.Blocks(inputs, defaults, combine)
}

func ruleInputs(rule *Rule) (inputs, defaults []any) {
	inputs = make([]any, len(rule.Props))
	defaults = make([]any, len(rule.Props))
	for i, p := range rule.Props {
		inputs[i], defaults[i] = p.Value, p.Default
	}
	return inputs, defaults
}

// combinerFor returns template based combiner or, for rules without template,
// one producing "name: value;" declaration per defined prop.
func combinerFor(rule *Rule) (responsive.CombineFunc, error) {
	if rule.Template == "" {
		return func(values ...any) (string, error) {
			decls := make([]string, 0, len(values))
			for i, v := range values {
				if v == nil {
					continue
				}
				decls = append(decls, fmt.Sprintf("%s: %v;", rule.Props[i].Name, v))
			}
			return strings.Join(decls, " "), nil
		}, nil
	}

	tmpl, err := template.New(rule.SelectorFor()).Funcs(sprig.FuncMap()).Parse(rule.Template)
	if err != nil {
		return nil, fmt.Errorf("unable to parse template: %w", err)
	}
	return func(values ...any) (string, error) {
		data := make(map[string]any, len(values))
		for i, v := range values {
			if v == nil {
				// absent props print as nothing, never as "<no value>"
				v = ""
			}
			data[rule.Props[i].Name] = v
		}
		buf := new(bytes.Buffer)
		if err := tmpl.Execute(buf, data); err != nil {
			return "", err
		}
		return strings.TrimSpace(buf.String()), nil
	}, nil
}
