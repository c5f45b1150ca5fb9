package reconcile

import (
	"sort"

	"github.com/lumen-ui/lumen/pkg/dom"
)

// Diff compares two trees and returns the patches needed to transform
// prev into next. Attribute comparison happens on the post-reconciliation
// attribute sets, so a prop whose next value is suppressed (nil, NaN,
// false flag, all-nil style map) yields a RemoveAttr patch rather than a
// stale attribute.
func Diff(prev, next *dom.VNode) []Patch {
	var patches []Patch
	diffNodes(prev, next, nil, dom.NamespaceHTML, &patches)
	return patches
}

func diffNodes(prev, next *dom.VNode, path []int, ns dom.Namespace, patches *[]Patch) {
	if prev == nil && next == nil {
		return
	}

	if prev == nil {
		*patches = append(*patches, Patch{Op: OpInsert, Path: pathCopy(path), Node: next})
		return
	}
	if next == nil {
		*patches = append(*patches, Patch{Op: OpRemove, Path: pathCopy(path)})
		return
	}

	if prev.Kind != next.Kind {
		*patches = append(*patches, Patch{Op: OpReplace, Path: pathCopy(path), Node: next})
		return
	}

	switch prev.Kind {
	case dom.KindText, dom.KindRaw:
		if prev.Text != next.Text {
			*patches = append(*patches, Patch{Op: OpSetText, Path: pathCopy(path), Value: next.Text})
		}

	case dom.KindElement:
		diffElement(prev, next, path, ns, patches)

	case dom.KindFragment:
		diffChildren(prev, next, path, ns, patches)

	case dom.KindComponent:
		if prev.Comp != nil && next.Comp != nil {
			diffNodes(prev.Comp.Render(), next.Comp.Render(), path, ns, patches)
		}
	}
}

func diffElement(prev, next *dom.VNode, path []int, ns dom.Namespace, patches *[]Patch) {
	// A changed tag or key replaces the node wholesale.
	if prev.Tag != next.Tag || prev.Key != next.Key {
		*patches = append(*patches, Patch{Op: OpReplace, Path: pathCopy(path), Node: next})
		return
	}

	self := dom.ElementNamespace(ns, next.Tag)
	diffAttrs(prev, next, path, self, patches)
	diffChildren(prev, next, path, dom.ContentNamespace(self, next.Tag), patches)
}

func diffAttrs(prev, next *dom.VNode, path []int, ns dom.Namespace, patches *[]Patch) {
	prevAttrs := EffectiveAttrs(prev, ns, nil)
	nextAttrs := EffectiveAttrs(next, ns, nil)

	names := make([]string, 0, len(prevAttrs)+len(nextAttrs))
	for name := range prevAttrs {
		names = append(names, name)
	}
	for name := range nextAttrs {
		if _, seen := prevAttrs[name]; !seen {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		prevVal, inPrev := prevAttrs[name]
		nextVal, inNext := nextAttrs[name]

		switch {
		case !inNext:
			*patches = append(*patches, Patch{Op: OpRemoveAttr, Path: pathCopy(path), Key: name})
		case !inPrev || prevVal != nextVal:
			*patches = append(*patches, Patch{Op: OpSetAttr, Path: pathCopy(path), Key: name, Value: nextVal})
		}
	}
}

func diffChildren(prev, next *dom.VNode, path []int, ns dom.Namespace, patches *[]Patch) {
	maxLen := len(prev.Children)
	if len(next.Children) > maxLen {
		maxLen = len(next.Children)
	}

	for i := 0; i < maxLen; i++ {
		var prevChild, nextChild *dom.VNode
		if i < len(prev.Children) {
			prevChild = prev.Children[i]
		}
		if i < len(next.Children) {
			nextChild = next.Children[i]
		}
		diffNodes(prevChild, nextChild, append(path, i), ns, patches)
	}
}

func pathCopy(path []int) []int {
	if path == nil {
		return []int{}
	}
	out := make([]int, len(path))
	copy(out, path)
	return out
}
