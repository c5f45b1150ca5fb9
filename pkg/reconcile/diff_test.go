package reconcile

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lumen-ui/lumen/pkg/dom"
)

func TestEffectiveAttrs(t *testing.T) {
	node := dom.Input(
		dom.Type("checkbox"),
		dom.Checked(),
		dom.Prop("key", "row-1"),
		dom.Prop("onchange", func() {}),
		dom.Size(0),
	)

	got := EffectiveAttrs(node, dom.NamespaceHTML, nil)
	want := map[string]string{
		"type":    "checkbox",
		"checked": "",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("EffectiveAttrs mismatch (-want +got):\n%s", diff)
	}
}

func TestEffectiveAttrsNilCases(t *testing.T) {
	if got := EffectiveAttrs(nil, dom.NamespaceHTML, nil); got != nil {
		t.Errorf("nil node should have nil attrs, got %v", got)
	}
	if got := EffectiveAttrs(dom.Text("x"), dom.NamespaceHTML, nil); got != nil {
		t.Errorf("text node should have nil attrs, got %v", got)
	}
}

func TestDiffSetAndRemoveAttr(t *testing.T) {
	prev := dom.Div(dom.Class("old"), dom.ID("main"))
	next := dom.Div(dom.Class("new"))

	got := Diff(prev, next)
	want := []Patch{
		{Op: OpSetAttr, Path: []int{}, Key: "class", Value: "new"},
		{Op: OpRemoveAttr, Path: []int{}, Key: "id"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Diff mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffSuppressedValueRemovesAttr(t *testing.T) {
	// Omission must be idempotent: a value that becomes suppressed can
	// never leave the previously rendered attribute behind.
	tests := []struct {
		name string
		prev *dom.VNode
		next *dom.VNode
		attr string
	}{
		{
			name: "boolean flag turns false",
			prev: dom.Input(dom.Prop("disabled", true)),
			next: dom.Input(dom.Prop("disabled", false)),
			attr: "disabled",
		},
		{
			name: "positive numeric turns zero",
			prev: dom.Input(dom.Size(4)),
			next: dom.Input(dom.Size(0)),
			attr: "size",
		},
		{
			name: "value turns nil",
			prev: dom.Div(dom.Prop("title", "hi")),
			next: dom.Div(dom.Prop("title", nil)),
			attr: "title",
		},
		{
			name: "style declarations all nil",
			prev: dom.Div(dom.StyleMap(map[string]any{"color": "red"})),
			next: dom.Div(dom.StyleMap(map[string]any{"color": nil})),
			attr: "style",
		},
		{
			name: "value becomes a function",
			prev: dom.Div(dom.Prop("title", "hi")),
			next: dom.Div(dom.Prop("title", func() {})),
			attr: "title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Diff(tt.prev, tt.next)
			want := []Patch{{Op: OpRemoveAttr, Path: []int{}, Key: tt.attr}}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Diff mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDiffNoChanges(t *testing.T) {
	build := func() *dom.VNode {
		return dom.Div(dom.Class("card"),
			dom.Span("hello"),
			dom.Input(dom.Type("text")),
		)
	}
	if patches := Diff(build(), build()); len(patches) != 0 {
		t.Errorf("identical trees should produce no patches, got %v", patches)
	}
}

func TestDiffText(t *testing.T) {
	prev := dom.Div(dom.Span("old"))
	next := dom.Div(dom.Span("new"))

	got := Diff(prev, next)
	want := []Patch{{Op: OpSetText, Path: []int{0, 0}, Value: "new"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Diff mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffReplaceOnTagChange(t *testing.T) {
	prev := dom.Div(dom.Span())
	next := dom.Div(dom.P())

	got := Diff(prev, next)
	if len(got) != 1 || got[0].Op != OpReplace {
		t.Fatalf("expected one replace patch, got %v", got)
	}
	if got[0].Node == nil || got[0].Node.Tag != "p" {
		t.Errorf("replace patch should carry the new node")
	}
}

func TestDiffKeyChangeReplaces(t *testing.T) {
	prev := dom.Div(dom.Key("a"))
	next := dom.Div(dom.Key("b"))

	got := Diff(prev, next)
	if len(got) != 1 || got[0].Op != OpReplace {
		t.Fatalf("expected replace on key change, got %v", got)
	}
}

func TestDiffInsertAndRemoveChildren(t *testing.T) {
	prev := dom.Ul(dom.Li("one"))
	next := dom.Ul(dom.Li("one"), dom.Li("two"))

	got := Diff(prev, next)
	if len(got) != 1 || got[0].Op != OpInsert {
		t.Fatalf("expected one insert patch, got %v", got)
	}
	if diff := cmp.Diff([]int{1}, got[0].Path); diff != "" {
		t.Errorf("insert path mismatch: %s", diff)
	}

	got = Diff(next, prev)
	if len(got) != 1 || got[0].Op != OpRemove {
		t.Fatalf("expected one remove patch, got %v", got)
	}
}

func TestDiffSVGAttrsUseForeignCasing(t *testing.T) {
	prev := dom.Svg(dom.ViewBox("0 0 10 10"))
	next := dom.Svg(dom.ViewBox("0 0 20 20"))

	got := Diff(prev, next)
	want := []Patch{{Op: OpSetAttr, Path: []int{}, Key: "viewBox", Value: "0 0 20 20"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Diff mismatch (-want +got):\n%s", diff)
	}
}
