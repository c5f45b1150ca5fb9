package dom

import "strings"

// Namespace identifies the markup namespace an element lives in.
type Namespace uint8

const (
	NamespaceHTML Namespace = iota
	NamespaceSVG
	NamespaceMathML
)

// Namespace URIs as reported by the DOM.
const (
	HTMLNamespaceURI   = "http://www.w3.org/1999/xhtml"
	SVGNamespaceURI    = "http://www.w3.org/2000/svg"
	MathMLNamespaceURI = "http://www.w3.org/1998/Math/MathML"
)

// String returns the string representation of the Namespace.
func (ns Namespace) String() string {
	switch ns {
	case NamespaceSVG:
		return "SVG"
	case NamespaceMathML:
		return "MathML"
	default:
		return "HTML"
	}
}

// URI returns the namespace URI.
func (ns Namespace) URI() string {
	switch ns {
	case NamespaceSVG:
		return SVGNamespaceURI
	case NamespaceMathML:
		return MathMLNamespaceURI
	default:
		return HTMLNamespaceURI
	}
}

// ElementNamespace returns the namespace an element with the given tag
// lives in, given the namespace of its parent's content. An <svg> or
// <math> tag in HTML content enters the corresponding foreign namespace;
// everything else stays where its parent put it.
func ElementNamespace(parent Namespace, tag string) Namespace {
	if parent == NamespaceHTML {
		switch strings.ToLower(tag) {
		case "svg":
			return NamespaceSVG
		case "math":
			return NamespaceMathML
		}
	}
	return parent
}

// ContentNamespace returns the namespace the element's children inherit.
// SVG <foreignObject> and MathML <annotation-xml> re-enter HTML content.
func ContentNamespace(self Namespace, tag string) Namespace {
	switch self {
	case NamespaceSVG:
		if tag == "foreignObject" {
			return NamespaceHTML
		}
	case NamespaceMathML:
		if tag == "annotation-xml" {
			return NamespaceHTML
		}
	}
	return self
}

// IsCustomElement reports whether the tag names a custom element. Custom
// element names contain a hyphen and start with an ASCII lowercase letter.
func IsCustomElement(tag string) bool {
	if tag == "" || tag[0] < 'a' || tag[0] > 'z' {
		return false
	}
	return strings.Contains(tag, "-")
}

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}
