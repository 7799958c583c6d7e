// Package document reads YAML rule documents. Every rule names a selector, a
// set of responsive props and, optionally, a template combining resolved prop
// values into CSS declarations. Props without value print as empty strings
// in templates, use "with" to skip their declarations:
//
//	rules:
//	  - name: stack
//	    template: 'flex-direction: {{ .direction }};{{ with .gap }} gap: {{ . }};{{ end }}'
//	    props:
//	      - name: direction
//	        value: {xs: column, xl: row}
//	      - name: gap
//	        value: {l: 2rem}
package document

import (
	"bytes"
	"fmt"
	"os"

	"github.com/gosimple/slug"
	"github.com/rupor-github/gencfg"
	yaml "gopkg.in/yaml.v3"
)

type (
	// Prop is a single responsive input. Value may be a scalar, a mapping from
	// breakpoint names to values or any other mapping, which is passed along
	// as a bare value unless one of its keys is a breakpoint name.
	Prop struct {
		Name    string `yaml:"name" validate:"required"`
		Value   any    `yaml:"value,omitempty"`
		Default any    `yaml:"default,omitempty"`
	}

	Rule struct {
		Name     string `yaml:"name,omitempty" validate:"required_without=Selector"`
		Selector string `yaml:"selector,omitempty"`
		Template string `yaml:"template,omitempty"`
		Props    []Prop `yaml:"props" validate:"required,min=1,unique=Name,dive"`
	}

	Document struct {
		Rules []Rule `yaml:"rules" validate:"dive"`
	}
)

// SelectorFor returns explicit selector or class selector derived from the
// rule name.
func (r *Rule) SelectorFor() string {
	if r.Selector != "" {
		return r.Selector
	}
	return "." + slug.Make(r.Name)
}

// Parse decodes and validates rule document.
func Parse(data []byte) (*Document, error) {
	// We want to use only fields we defined
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	doc := &Document{}
	if err := dec.Decode(doc); err != nil {
		return nil, fmt.Errorf("failed to decode rules document: %w", err)
	}
	if err := gencfg.Validate(doc); err != nil {
		return nil, fmt.Errorf("invalid rules document: %w", err)
	}
	return doc, nil
}

// Load reads rule document from file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules document: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
