package reconcile

import (
	"math"
	"strings"
	"testing"

	"github.com/lumen-ui/lumen/pkg/dom"
)

func resolve(t *testing.T, name string, value any, tag string, ns dom.Namespace) (Attribute, bool) {
	t.Helper()
	return Resolve(name, value, tag, ns, nil)
}

func TestBooleanFlagAttributes(t *testing.T) {
	tests := []struct {
		name      string
		value     any
		wantOK    bool
		wantValue string
	}{
		{"true renders empty", true, true, ""},
		{"false suppressed", false, false, ""},
		{"nil suppressed", nil, false, ""},
		{"string passes verbatim", "yes please", true, "yes please"},
		{"number passes verbatim", 7, true, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, ok := resolve(t, "disabled", tt.value, "input", dom.NamespaceHTML)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if a.Name != "disabled" {
				t.Errorf("Name = %q, want %q", a.Name, "disabled")
			}
			if a.Value != tt.wantValue {
				t.Errorf("Value = %q, want %q", a.Value, tt.wantValue)
			}
		})
	}
}

func TestOverloadedBooleanDownload(t *testing.T) {
	tests := []struct {
		name      string
		value     any
		wantOK    bool
		wantValue string
	}{
		{"true is bare flag", true, true, ""},
		{"false suppressed", false, false, ""},
		{"filename verbatim", "report.pdf", true, "report.pdf"},
		{"empty string kept", "", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, ok := resolve(t, "download", tt.value, "a", dom.NamespaceHTML)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && a.Value != tt.wantValue {
				t.Errorf("Value = %q, want %q", a.Value, tt.wantValue)
			}
		})
	}
}

func TestPositiveNumericAttributes(t *testing.T) {
	tests := []struct {
		name      string
		value     any
		wantOK    bool
		wantValue string
	}{
		{"zero suppressed", 0, false, ""},
		{"negative suppressed", -3, false, ""},
		{"two renders", 2, true, "2"},
		{"float renders", 2.5, true, "2.5"},
		{"NaN suppressed", math.NaN(), false, ""},
		{"string passes through", "4", true, "4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, ok := resolve(t, "size", tt.value, "input", dom.NamespaceHTML)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && a.Value != tt.wantValue {
				t.Errorf("Value = %q, want %q", a.Value, tt.wantValue)
			}
		})
	}
}

func TestNumericAttributes(t *testing.T) {
	a, ok := resolve(t, "tabindex", -1, "div", dom.NamespaceHTML)
	if !ok {
		t.Fatal("tabindex -1 should render")
	}
	if a.Value != "-1" {
		t.Errorf("Value = %q, want %q", a.Value, "-1")
	}

	if _, ok := resolve(t, "colspan", math.NaN(), "td", dom.NamespaceHTML); ok {
		t.Error("NaN colspan should be suppressed")
	}
}

func TestReservedPropsNeverEmit(t *testing.T) {
	reserved := []string{"key", "children", "ref", "dangerouslySetInnerHTML", "suppressHydrationWarning"}
	values := []any{"x", true, 1, map[string]any{"a": "b"}}

	for _, name := range reserved {
		for _, value := range values {
			if _, ok := resolve(t, name, value, "div", dom.NamespaceHTML); ok {
				t.Errorf("reserved prop %q with value %v should never emit", name, value)
			}
		}
	}
}

func TestInvalidValueKindsAreOmitted(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"func", func() {}},
		{"func with args", func(int) string { return "" }},
		{"channel", make(chan int)},
		{"nil", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := resolve(t, "title", tt.value, "div", dom.NamespaceHTML); ok {
				t.Errorf("%s value should be suppressed", tt.name)
			}
		})
	}
}

func TestEventHandlersNeverSerialize(t *testing.T) {
	if _, ok := resolve(t, "onclick", func() {}, "button", dom.NamespaceHTML); ok {
		t.Error("onclick handler should not serialize")
	}
	if _, ok := resolve(t, "onClick", func() {}, "button", dom.NamespaceHTML); ok {
		t.Error("onClick handler should not serialize")
	}
	// A string-valued on* prop is ordinary attribute content.
	a, ok := resolve(t, "onclick", "doThing()", "button", dom.NamespaceHTML)
	if !ok {
		t.Fatal("string onclick should render as attribute")
	}
	if a.Value != "doThing()" {
		t.Errorf("Value = %q", a.Value)
	}
}

func TestAliases(t *testing.T) {
	tests := []struct {
		prop string
		want string
	}{
		{"className", "class"},
		{"htmlFor", "for"},
	}

	for _, tt := range tests {
		a, ok := resolve(t, tt.prop, "x", "div", dom.NamespaceHTML)
		if !ok {
			t.Fatalf("%s should render", tt.prop)
		}
		if a.Name != tt.want {
			t.Errorf("Name = %q, want %q", a.Name, tt.want)
		}
	}
}

func TestUnknownAttributeCasing(t *testing.T) {
	// Standard elements lowercase unknown names.
	a, ok := resolve(t, "dataFoo", "1", "div", dom.NamespaceHTML)
	if !ok {
		t.Fatal("unknown attribute should render")
	}
	if a.Name != "datafoo" {
		t.Errorf("Name = %q, want %q", a.Name, "datafoo")
	}

	// Custom elements preserve the author's casing.
	a, ok = resolve(t, "fancyAttr", "1", "my-widget", dom.NamespaceHTML)
	if !ok {
		t.Fatal("custom element attribute should render")
	}
	if a.Name != "fancyAttr" {
		t.Errorf("Name = %q, want %q", a.Name, "fancyAttr")
	}
}

func TestDataAttributesPassThrough(t *testing.T) {
	a, ok := resolve(t, "data-id", "123", "div", dom.NamespaceHTML)
	if !ok {
		t.Fatal("data-id should render")
	}
	if a.Name != "data-id" || a.Value != "123" {
		t.Errorf("got %q=%q", a.Name, a.Value)
	}
}

func TestSVGCasingWarnsButEmitsLiterally(t *testing.T) {
	var warnings Collector

	a, ok := Resolve("viewbox", "0 0 10 10", "svg", dom.NamespaceSVG, &warnings)
	if !ok {
		t.Fatal("badly-cased viewbox should still render")
	}
	if a.Name != "viewbox" {
		t.Errorf("Name = %q, want literal %q", a.Name, "viewbox")
	}
	if len(warnings.Warnings) != 1 {
		t.Fatalf("warnings = %d, want 1", len(warnings.Warnings))
	}
	if !strings.Contains(warnings.Warnings[0], "viewBox") {
		t.Errorf("warning should suggest viewBox, got %q", warnings.Warnings[0])
	}

	// Canonical casing renders silently.
	warnings.Reset()
	a, ok = Resolve("viewBox", "0 0 10 10", "svg", dom.NamespaceSVG, &warnings)
	if !ok || a.Name != "viewBox" {
		t.Fatalf("canonical viewBox should render, got %q ok=%v", a.Name, ok)
	}
	if len(warnings.Warnings) != 0 {
		t.Errorf("canonical casing should not warn: %v", warnings.Warnings)
	}
}

func TestMathMLCasing(t *testing.T) {
	var warnings Collector

	a, ok := Resolve("definitionurl", "#def", "math", dom.NamespaceMathML, &warnings)
	if !ok || a.Name != "definitionurl" {
		t.Fatalf("got %q ok=%v", a.Name, ok)
	}
	if len(warnings.Warnings) != 1 {
		t.Errorf("warnings = %d, want 1", len(warnings.Warnings))
	}
}

func TestStylePropResolution(t *testing.T) {
	a, ok := resolve(t, "style", map[string]any{"color": "red"}, "div", dom.NamespaceHTML)
	if !ok {
		t.Fatal("style map should render")
	}
	if a.Name != "style" || a.Value != "color: red" {
		t.Errorf("got %q=%q", a.Name, a.Value)
	}

	// Every declaration omitted: no style attribute at all.
	if _, ok := resolve(t, "style", map[string]any{"color": nil, "width": nil}, "div", dom.NamespaceHTML); ok {
		t.Error("all-nil style map should suppress the style attribute")
	}

	// Literal CSS strings pass through.
	a, ok = resolve(t, "style", "color: blue", "div", dom.NamespaceHTML)
	if !ok || a.Value != "color: blue" {
		t.Errorf("got %q ok=%v", a.Value, ok)
	}
}

func TestInternalPropsSuppressed(t *testing.T) {
	if _, ok := resolve(t, "_internal", "x", "div", dom.NamespaceHTML); ok {
		t.Error("underscore-prefixed props should never emit")
	}
}

func TestRuleKindString(t *testing.T) {
	kinds := map[RuleKind]string{
		RuleString:            "String",
		RuleBooleanFlag:       "BooleanFlag",
		RuleOverloadedBoolean: "OverloadedBoolean",
		RulePositiveNumeric:   "PositiveNumeric",
		RuleNumeric:           "Numeric",
		RuleStyle:             "Style",
		RuleReserved:          "Reserved",
	}
	for kind, want := range kinds {
		if got := kind.String(); got != want {
			t.Errorf("RuleKind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}
