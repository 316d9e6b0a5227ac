// Package options provides the ordered option index backing parley's
// selection lists and command palette. It gives O(1) lookup by value plus
// O(1) previous/next navigation so a cursor can move through a typeahead
// list without rescanning it.
package options

// Option is a single selectable entry in a selection list.
type Option struct {
	Label     string // Text shown to the user
	Value     string // Unique key identifying the option
	IsLoading bool   // Render a loading marker instead of selecting
}

// IndexedOption augments an Option with its zero-based position and
// adjacency links established at construction time.
type IndexedOption struct {
	Option
	Previous *IndexedOption // nil for the first option
	Next     *IndexedOption // nil for the last option
	Index    int
}

// Index is an ordered, keyed collection of options. It is built once from an
// option slice and read-only afterward; call sites construct a fresh Index
// whenever the candidate set changes.
type Index struct {
	byValue map[string]*IndexedOption
	values  []string // unique values in first-seen order
	first   *IndexedOption
}

// NewIndex builds an Index from opts in a single pass, back-patching each
// node's Next link as its successor is produced.
//
// Duplicate values overwrite the earlier map entry, matching plain map
// construction. The earlier node stays linked into the Previous/Next chain
// even though it is no longer reachable by Get; chain traversal therefore
// always visits len(opts) nodes while Len reports unique values.
func NewIndex(opts []Option) *Index {
	idx := &Index{byValue: make(map[string]*IndexedOption, len(opts))}

	var prev *IndexedOption
	for i, opt := range opts {
		node := &IndexedOption{Option: opt, Previous: prev, Index: i}
		if prev != nil {
			prev.Next = node
		} else {
			idx.first = node
		}
		if _, seen := idx.byValue[opt.Value]; !seen {
			idx.values = append(idx.values, opt.Value)
		}
		idx.byValue[opt.Value] = node
		prev = node
	}

	return idx
}

// Get returns the indexed option for value, or false if absent.
func (idx *Index) Get(value string) (*IndexedOption, bool) {
	node, ok := idx.byValue[value]
	return node, ok
}

// First returns the entry point for forward traversal: the indexed option
// built from the first input element, or nil for an empty index.
func (idx *Index) First() *IndexedOption {
	return idx.first
}

// Len returns the number of distinct values in the index.
func (idx *Index) Len() int {
	return len(idx.byValue)
}

// All returns the indexed options keyed by each distinct value, in
// first-seen order.
func (idx *Index) All() []*IndexedOption {
	out := make([]*IndexedOption, 0, len(idx.values))
	for _, v := range idx.values {
		out = append(out, idx.byValue[v])
	}
	return out
}
