package reconcile

import (
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/lumen-ui/lumen/pkg/dom"
)

// RuleKind classifies how a prop value is coerced into an attribute value.
type RuleKind uint8

const (
	// RuleString emits the stringified value verbatim. The default for
	// unknown props.
	RuleString RuleKind = iota

	// RuleBooleanFlag emits the attribute with an empty value when true
	// and suppresses it when false.
	RuleBooleanFlag

	// RuleOverloadedBoolean behaves like RuleBooleanFlag for bool values
	// but passes any other value through as a string (e.g. download).
	RuleOverloadedBoolean

	// RulePositiveNumeric suppresses zero and negative numbers.
	RulePositiveNumeric

	// RuleNumeric emits any finite number as its decimal form.
	RuleNumeric

	// RuleStyle serializes a declaration map to CSS text.
	RuleStyle

	// RuleReserved is never emitted regardless of value.
	RuleReserved
)

// String returns the string representation of the RuleKind.
func (k RuleKind) String() string {
	switch k {
	case RuleBooleanFlag:
		return "BooleanFlag"
	case RuleOverloadedBoolean:
		return "OverloadedBoolean"
	case RulePositiveNumeric:
		return "PositiveNumeric"
	case RuleNumeric:
		return "Numeric"
	case RuleStyle:
		return "Style"
	case RuleReserved:
		return "Reserved"
	default:
		return "String"
	}
}

// Rule is a single reconciliation table entry.
type Rule struct {
	Kind RuleKind

	// Name is the canonical attribute name to emit. Empty means the prop
	// name itself (lowercased on standard elements).
	Name string
}

// rules is the reconciliation table, keyed by lowercased prop name.
// Boolean flag entries mirror the HTML boolean attribute list.
var rules = map[string]Rule{
	// Internal/reserved names. Never attributes, under any value.
	"key":                      {Kind: RuleReserved},
	"children":                 {Kind: RuleReserved},
	"ref":                      {Kind: RuleReserved},
	"dangerouslysetinnerhtml":  {Kind: RuleReserved},
	"suppresshydrationwarning": {Kind: RuleReserved},

	// Aliases kept for familiarity with other renderers.
	"classname": {Kind: RuleString, Name: "class"},
	"htmlfor":   {Kind: RuleString, Name: "for"},

	// Boolean flags.
	"allowfullscreen": {Kind: RuleBooleanFlag},
	"async":           {Kind: RuleBooleanFlag},
	"autofocus":       {Kind: RuleBooleanFlag},
	"autoplay":        {Kind: RuleBooleanFlag},
	"checked":         {Kind: RuleBooleanFlag},
	"controls":        {Kind: RuleBooleanFlag},
	"default":         {Kind: RuleBooleanFlag},
	"defer":           {Kind: RuleBooleanFlag},
	"disabled":        {Kind: RuleBooleanFlag},
	"formnovalidate":  {Kind: RuleBooleanFlag},
	"hidden":          {Kind: RuleBooleanFlag},
	"inert":           {Kind: RuleBooleanFlag},
	"ismap":           {Kind: RuleBooleanFlag},
	"itemscope":       {Kind: RuleBooleanFlag},
	"loop":            {Kind: RuleBooleanFlag},
	"multiple":        {Kind: RuleBooleanFlag},
	"muted":           {Kind: RuleBooleanFlag},
	"nomodule":        {Kind: RuleBooleanFlag},
	"novalidate":      {Kind: RuleBooleanFlag},
	"open":            {Kind: RuleBooleanFlag},
	"playsinline":     {Kind: RuleBooleanFlag},
	"readonly":        {Kind: RuleBooleanFlag},
	"required":        {Kind: RuleBooleanFlag},
	"reversed":        {Kind: RuleBooleanFlag},
	"selected":        {Kind: RuleBooleanFlag},

	// Overloaded boolean: flag when bool, verbatim string otherwise.
	"download": {Kind: RuleOverloadedBoolean},

	// Positive-only numerics. Zero and negative values are suppressed.
	"cols": {Kind: RulePositiveNumeric},
	"rows": {Kind: RulePositiveNumeric},
	"size": {Kind: RulePositiveNumeric},
	"span": {Kind: RulePositiveNumeric},

	// Plain numerics.
	"colspan":   {Kind: RuleNumeric},
	"rowspan":   {Kind: RuleNumeric},
	"maxlength": {Kind: RuleNumeric},
	"minlength": {Kind: RuleNumeric},
	"start":     {Kind: RuleNumeric},
	"tabindex":  {Kind: RuleNumeric},

	// Style declaration maps.
	"style": {Kind: RuleStyle},
}

// Attribute is a resolved attribute ready for serialization. An empty
// Value on a boolean flag means the bare attribute form.
type Attribute struct {
	Name  string
	Value string
}

// Resolve maps a single prop to the attribute that should be emitted for
// an element with the given tag and namespace. ok is false when the
// attribute must be suppressed. Warnings, if any, go to w; pass nil to
// discard them.
func Resolve(name string, value any, tag string, ns dom.Namespace, w Warner) (Attribute, bool) {
	if w == nil {
		w = NopWarner{}
	}
	if name == "" || value == nil {
		return Attribute{}, false
	}

	// Props with a leading underscore are renderer-internal.
	if strings.HasPrefix(name, "_") {
		return Attribute{}, false
	}

	// Event handlers are registered, never serialized.
	if isEventHandler(name, value) {
		return Attribute{}, false
	}

	// Function-like values are invalid as attribute content in any
	// position. Omit, never error.
	if isInvalidValueKind(value) {
		return Attribute{}, false
	}

	lower := strings.ToLower(name)
	rule := rules[lower]

	switch rule.Kind {
	case RuleReserved:
		return Attribute{}, false

	case RuleBooleanFlag:
		return resolveBooleanFlag(attrName(name, lower, rule, tag, ns, w), value)

	case RuleOverloadedBoolean:
		out := attrName(name, lower, rule, tag, ns, w)
		if b, ok := value.(bool); ok {
			if b {
				return Attribute{Name: out, Value: ""}, true
			}
			return Attribute{}, false
		}
		s, ok := coerceString(value)
		if !ok {
			return Attribute{}, false
		}
		return Attribute{Name: out, Value: s}, true

	case RulePositiveNumeric:
		n, ok := coerceFloat(value)
		if ok {
			if n <= 0 || math.IsNaN(n) {
				return Attribute{}, false
			}
			return Attribute{Name: attrName(name, lower, rule, tag, ns, w), Value: formatFloat(n)}, true
		}
		// Non-numeric values pass through like unknown attribute content.
		s, ok := coerceString(value)
		if !ok {
			return Attribute{}, false
		}
		return Attribute{Name: attrName(name, lower, rule, tag, ns, w), Value: s}, true

	case RuleNumeric:
		n, ok := coerceFloat(value)
		if ok {
			if math.IsNaN(n) {
				return Attribute{}, false
			}
			return Attribute{Name: attrName(name, lower, rule, tag, ns, w), Value: formatFloat(n)}, true
		}
		s, ok := coerceString(value)
		if !ok {
			return Attribute{}, false
		}
		return Attribute{Name: attrName(name, lower, rule, tag, ns, w), Value: s}, true

	case RuleStyle:
		if decls, ok := styleDecls(value); ok {
			css := SerializeStyle(decls)
			if css == "" {
				// Every declaration was omitted: no style attribute at all.
				return Attribute{}, false
			}
			return Attribute{Name: "style", Value: css}, true
		}
		s, ok := coerceString(value)
		if !ok || s == "" {
			return Attribute{}, false
		}
		return Attribute{Name: "style", Value: s}, true

	default:
		s, ok := coerceString(value)
		if !ok {
			return Attribute{}, false
		}
		return Attribute{Name: attrName(name, lower, rule, tag, ns, w), Value: s}, true
	}
}

// resolveBooleanFlag applies boolean-flag semantics: true is a bare
// attribute, false is absent, anything else is stringified verbatim.
func resolveBooleanFlag(name string, value any) (Attribute, bool) {
	if b, ok := value.(bool); ok {
		if b {
			return Attribute{Name: name, Value: ""}, true
		}
		return Attribute{}, false
	}
	s, ok := coerceString(value)
	if !ok {
		return Attribute{}, false
	}
	return Attribute{Name: name, Value: s}, true
}

// attrName computes the emitted attribute name. Standard HTML elements
// lowercase unknown names; custom elements preserve the author's casing.
// SVG and MathML names are case-sensitive: badly-cased variants of a
// canonical name are emitted literally with a warning, never corrected.
func attrName(name, lower string, rule Rule, tag string, ns dom.Namespace, w Warner) string {
	if rule.Name != "" {
		return rule.Name
	}

	switch ns {
	case dom.NamespaceSVG, dom.NamespaceMathML:
		canonical := canonicalForeignName(lower, ns)
		if canonical != "" && canonical != name {
			w.Warnf("invalid attribute casing %q on <%s>: did you mean %q?", name, tag, canonical)
		}
		return name

	default:
		if dom.IsCustomElement(tag) {
			return name
		}
		return lower
	}
}

// isEventHandler reports whether the prop is an event handler slot.
// The "on" prefix is matched case-insensitively so onClick, ONCLICK, etc.
// are all kept off the wire.
func isEventHandler(name string, value any) bool {
	if len(name) <= 2 || !strings.EqualFold(name[:2], "on") {
		return false
	}
	if value == nil {
		return true
	}
	return reflect.TypeOf(value).Kind() == reflect.Func
}

// isInvalidValueKind reports value kinds that can never serialize to an
// attribute: functions and channels.
func isInvalidValueKind(value any) bool {
	switch reflect.TypeOf(value).Kind() {
	case reflect.Func, reflect.Chan:
		return true
	default:
		return false
	}
}

// coerceString converts supported scalar values to their attribute string.
func coerceString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case bool:
		if v {
			return "true", true
		}
		return "false", true
	case int:
		return strconv.Itoa(v), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float32:
		return coerceFloatString(float64(v))
	case float64:
		return coerceFloatString(v)
	case []byte:
		return string(v), true
	default:
		return "", false
	}
}

func coerceFloatString(f float64) (string, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", false
	}
	return formatFloat(f), true
}

// coerceFloat extracts a numeric value from supported numeric types.
func coerceFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// styleDecls extracts a style declaration map from the prop value.
func styleDecls(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case map[string]any:
		return v, true
	case map[string]string:
		out := make(map[string]any, len(v))
		for k, s := range v {
			out[k] = s
		}
		return out, true
	default:
		return nil, false
	}
}
