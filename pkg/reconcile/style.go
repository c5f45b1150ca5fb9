package reconcile

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// unitlessProps are CSS properties whose numeric values never receive a
// px suffix. Keys are the dash-cased property names.
var unitlessProps = map[string]bool{
	"animation-iteration-count": true,
	"border-image-slice":        true,
	"column-count":              true,
	"fill-opacity":              true,
	"flex":                      true,
	"flex-grow":                 true,
	"flex-shrink":               true,
	"font-weight":               true,
	"grid-column":               true,
	"grid-row":                  true,
	"line-height":               true,
	"opacity":                   true,
	"order":                     true,
	"orphans":                   true,
	"stroke-dasharray":          true,
	"stroke-opacity":            true,
	"tab-size":                  true,
	"widows":                    true,
	"z-index":                   true,
	"zoom":                      true,
}

// SerializeStyle converts a style declaration map to CSS text.
//
// Keys are camelCase property names, dash-cased on output; keys starting
// with "--" are custom properties and pass through unchanged. Numeric
// values get a px suffix unless the property is unitless. Declarations
// whose value is nil, empty, or non-finite are omitted. An empty result
// string means the style attribute itself should be omitted.
//
// Declarations are emitted in sorted property order for deterministic
// output across renders.
func SerializeStyle(decls map[string]any) string {
	if len(decls) == 0 {
		return ""
	}

	keys := make([]string, 0, len(decls))
	for key := range decls {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var buf strings.Builder
	for _, key := range keys {
		prop := cssPropertyName(key)
		value, ok := cssValue(prop, decls[key])
		if !ok {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteString("; ")
		}
		buf.WriteString(prop)
		buf.WriteString(": ")
		buf.WriteString(value)
	}
	return buf.String()
}

// cssPropertyName dash-cases a camelCase property name. Custom properties
// ("--brand-color") pass through untouched. A leading uppercase letter
// marks a vendor prefix and produces a leading dash (WebkitTransform →
// -webkit-transform).
func cssPropertyName(key string) string {
	if strings.HasPrefix(key, "--") {
		return key
	}

	var buf strings.Builder
	buf.Grow(len(key) + 4)
	for _, r := range key {
		if unicode.IsUpper(r) {
			buf.WriteByte('-')
			buf.WriteRune(unicode.ToLower(r))
		} else {
			buf.WriteRune(r)
		}
	}
	return buf.String()
}

// cssValue coerces a declaration value to CSS text. ok is false when the
// declaration must be dropped.
func cssValue(prop string, value any) (string, bool) {
	if value == nil {
		return "", false
	}

	if n, ok := coerceFloat(value); ok {
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return "", false
		}
		s := formatFloat(n)
		if n != 0 && !unitlessProps[prop] && !strings.HasPrefix(prop, "--") {
			s += "px"
		}
		return s, true
	}

	if s, ok := value.(string); ok {
		if s == "" {
			return "", false
		}
		return s, true
	}

	// Bools, funcs, nested maps: not CSS values.
	return "", false
}
