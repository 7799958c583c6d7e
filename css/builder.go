package css

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"respcss/responsive"
)

// Layout selects how guarded fragments are placed in the stylesheet.
type Layout int

const (
	// LayoutNested keeps media queries inside the rule (CSS nesting).
	LayoutNested Layout = iota
	// LayoutHoisted moves media queries to top-level blocks, one per
	// breakpoint, after all unguarded rules.
	LayoutHoisted
)

func (l Layout) String() string {
	switch l {
	case LayoutNested:
		return "nested"
	case LayoutHoisted:
		return "hoisted"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// ParseLayout converts layout name to Layout.
func ParseLayout(name string) (Layout, error) {
	switch name {
	case "nested":
		return LayoutNested, nil
	case "hoisted":
		return LayoutHoisted, nil
	}
	return 0, fmt.Errorf("unknown stylesheet layout %q", name)
}

// Builder collects assembled responsive blocks into a stylesheet.
// NOTE: not to be used concurrently.
type Builder struct {
	log    *zap.Logger
	layout Layout
	order  []string
	rules  []Rule
	media  map[string]*MediaBlock
}

// NewBuilder creates builder for breakpoints in the given ascending order.
func NewBuilder(order []string, layout Layout, log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{
		log:    log.Named("css-builder"),
		layout: layout,
		order:  slices.Clone(order),
		media:  make(map[string]*MediaBlock),
	}
}

// Add places blocks produced for selector. Nothing is added for empty blocks.
func (b *Builder) Add(selector string, blocks []responsive.Block) {
	if len(blocks) == 0 {
		b.log.Debug("Skipping empty rule", zap.String("selector", selector))
		return
	}

	if b.layout == LayoutNested {
		b.rules = append(b.rules, Rule{Selector: selector, Body: responsive.Join(blocks)})
		return
	}

	for _, blk := range blocks {
		if blk.Query == "" {
			b.rules = append(b.rules, Rule{Selector: selector, Body: blk.Fragment})
			continue
		}
		mb, ok := b.media[blk.Breakpoint]
		if !ok {
			mb = &MediaBlock{Query: blk.Query, Breakpoint: blk.Breakpoint}
			b.media[blk.Breakpoint] = mb
		}
		mb.Rules = append(mb.Rules, Rule{Selector: selector, Body: blk.Fragment})
	}
}

// Stylesheet returns everything added so far. Unguarded rules come first,
// media blocks follow in ascending breakpoint order.
func (b *Builder) Stylesheet() *Stylesheet {
	sheet := &Stylesheet{Items: make([]StylesheetItem, 0, len(b.rules)+len(b.media))}
	for i := range b.rules {
		rule := b.rules[i]
		sheet.Items = append(sheet.Items, StylesheetItem{Rule: &rule})
	}
	for _, name := range b.order {
		if mb, ok := b.media[name]; ok {
			sheet.Items = append(sheet.Items, StylesheetItem{MediaBlock: mb})
		}
	}
	b.log.Debug("Stylesheet built", zap.Stringer("layout", b.layout), zap.Int("items", len(sheet.Items)))
	return sheet
}
