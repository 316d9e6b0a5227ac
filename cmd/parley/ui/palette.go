package ui

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"parley/internal/options"
)

// Palette is the command palette widget: a typeahead-filtered selection list
// rendered as an overlay. Filtering rebuilds the backing option index from
// scratch (the index itself is immutable); the cursor then navigates the
// index's adjacency links without rescanning the list.
type Palette struct {
	styles     Styles
	title      string
	candidates []options.Option
	query      string
	index      *options.Index
	cursor     *options.IndexedOption
	maxVisible int
}

// NewPalette creates a palette showing at most maxVisible rows.
func NewPalette(styles Styles, title string, maxVisible int) *Palette {
	if maxVisible <= 0 {
		maxVisible = 10
	}
	p := &Palette{styles: styles, title: title, maxVisible: maxVisible}
	p.rebuild()
	return p
}

// SetCandidates replaces the candidate set, reapplying the current query.
func (p *Palette) SetCandidates(opts []options.Option) {
	p.candidates = opts
	p.rebuild()
}

// SetQuery updates the typeahead filter.
func (p *Palette) SetQuery(q string) {
	if p.query == q {
		return
	}
	p.query = q
	p.rebuild()
}

// Query returns the current typeahead filter.
func (p *Palette) Query() string {
	return p.query
}

// paletteSource adapts the candidate slice for fuzzy matching on labels.
type paletteSource []options.Option

func (s paletteSource) String(i int) string { return s[i].Label + " " + s[i].Value }
func (s paletteSource) Len() int            { return len(s) }

// rebuild constructs a fresh index from the filtered candidates and resets
// the cursor to the entry point.
func (p *Palette) rebuild() {
	filtered := p.candidates
	if p.query != "" {
		matches := fuzzy.FindFrom(p.query, paletteSource(p.candidates))
		filtered = make([]options.Option, 0, len(matches))
		for _, m := range matches {
			filtered = append(filtered, p.candidates[m.Index])
		}
	}
	p.index = options.NewIndex(filtered)
	p.cursor = p.index.First()
}

// MoveUp moves the cursor to the previous option, if any.
func (p *Palette) MoveUp() {
	if p.cursor != nil && p.cursor.Previous != nil {
		p.cursor = p.cursor.Previous
	}
}

// MoveDown moves the cursor to the next option, if any.
func (p *Palette) MoveDown() {
	if p.cursor != nil && p.cursor.Next != nil {
		p.cursor = p.cursor.Next
	}
}

// Cursor returns the highlighted option, or nil when the list is empty.
func (p *Palette) Cursor() *options.IndexedOption {
	return p.cursor
}

// Selected returns the option a confirm keypress should dispatch: the cursor,
// unless the list is empty or the cursor is still loading.
func (p *Palette) Selected() *options.IndexedOption {
	if p.cursor == nil || p.cursor.IsLoading {
		return nil
	}
	return p.cursor
}

// Len returns the number of options after filtering.
func (p *Palette) Len() int {
	return p.index.Len()
}

// Get looks up a filtered option by value.
func (p *Palette) Get(value string) (*options.IndexedOption, bool) {
	return p.index.Get(value)
}

// View renders the palette panel. The visible window slides with the cursor.
func (p *Palette) View() string {
	var sb strings.Builder

	title := p.title
	if p.query != "" {
		title += "  /" + p.query
	}
	sb.WriteString(p.styles.PaletteTitle.Render(title))
	sb.WriteString("\n")

	first := p.index.First()
	if first == nil {
		sb.WriteString(p.styles.PaletteEmpty.Render("no matches"))
		return p.styles.PaletteBox.Render(sb.String())
	}

	start := 0
	if p.cursor != nil && p.cursor.Index >= p.maxVisible {
		start = p.cursor.Index - p.maxVisible + 1
	}

	shown := 0
	for node := first; node != nil && shown < p.maxVisible; node = node.Next {
		if node.Index < start {
			continue
		}
		sb.WriteString(p.renderRow(node))
		shown++
		if node.Next != nil && shown < p.maxVisible {
			sb.WriteString("\n")
		}
	}

	return p.styles.PaletteBox.Render(sb.String())
}

func (p *Palette) renderRow(node *options.IndexedOption) string {
	switch {
	case node.IsLoading:
		return p.styles.PaletteLoading.Render("… " + node.Label)
	case p.cursor != nil && node == p.cursor:
		return p.styles.PaletteSelected.Render("▸ " + node.Label)
	default:
		return p.styles.PaletteItem.Render(node.Label)
	}
}
