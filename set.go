// SPDX-License-Identifier: GPL-3.0-or-later

package dnslabel

import "github.com/google/btree"

// labelSetDegree is the B-tree degree used by [LabelSet].
const labelSetDegree = 8

// LabelSet is an ordered set of labels ignoring ASCII case.
//
// Labels are kept in [Label.Compare] order. When adding a label that is
// already present with different case, the first spelling wins.
//
// A LabelSet is not safe for concurrent mutation.
type LabelSet struct {
	tree *btree.BTreeG[OwnedLabel]
}

// NewLabelSet returns an empty [*LabelSet].
func NewLabelSet() *LabelSet {
	return &LabelSet{tree: btree.NewG[OwnedLabel](labelSetDegree, labelSetLess)}
}

func labelSetLess(a, b OwnedLabel) bool {
	return a.Compare(b) < 0
}

// Add adds a copy of l and returns whether it was not already present.
func (s *LabelSet) Add(l Label) bool {
	owned := l.Owned()
	if s.tree.Has(owned) {
		return false
	}
	s.tree.ReplaceOrInsert(owned)
	return true
}

// Has returns whether the set contains l.
func (s *LabelSet) Has(l Label) bool {
	return s.tree.Has(l.Owned())
}

// Remove removes l and returns whether it was present.
func (s *LabelSet) Remove(l Label) bool {
	_, found := s.tree.Delete(l.Owned())
	return found
}

// Len returns the number of labels in the set.
func (s *LabelSet) Len() int {
	return s.tree.Len()
}

// Ascend calls fn for each label in order until fn returns false.
func (s *LabelSet) Ascend(fn func(OwnedLabel) bool) {
	s.tree.Ascend(fn)
}

// Labels returns the labels in order.
func (s *LabelSet) Labels() []OwnedLabel {
	out := make([]OwnedLabel, 0, s.tree.Len())
	s.tree.Ascend(func(o OwnedLabel) bool {
		out = append(out, o)
		return true
	})
	return out
}
