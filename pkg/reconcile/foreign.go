package reconcile

import "github.com/lumen-ui/lumen/pkg/dom"

// svgCanonical maps lowercased SVG attribute names to their canonical
// mixed-case form. SVG attribute names are case-sensitive: a badly-cased
// variant is emitted literally and warned about, never corrected.
var svgCanonical = map[string]string{
	"attributename":       "attributeName",
	"attributetype":       "attributeType",
	"basefrequency":       "baseFrequency",
	"clippathunits":       "clipPathUnits",
	"diffuseconstant":     "diffuseConstant",
	"edgemode":            "edgeMode",
	"gradienttransform":   "gradientTransform",
	"gradientunits":       "gradientUnits",
	"kernelmatrix":        "kernelMatrix",
	"lengthadjust":        "lengthAdjust",
	"markerheight":        "markerHeight",
	"markerunits":         "markerUnits",
	"markerwidth":         "markerWidth",
	"maskcontentunits":    "maskContentUnits",
	"maskunits":           "maskUnits",
	"numoctaves":          "numOctaves",
	"pathlength":          "pathLength",
	"patterncontentunits": "patternContentUnits",
	"patterntransform":    "patternTransform",
	"patternunits":        "patternUnits",
	"preserveaspectratio": "preserveAspectRatio",
	"primitiveunits":      "primitiveUnits",
	"refx":                "refX",
	"refy":                "refY",
	"repeatcount":         "repeatCount",
	"repeatdur":           "repeatDur",
	"spreadmethod":        "spreadMethod",
	"stddeviation":        "stdDeviation",
	"stitchtiles":         "stitchTiles",
	"surfacescale":        "surfaceScale",
	"systemlanguage":      "systemLanguage",
	"tablevalues":         "tableValues",
	"targetx":             "targetX",
	"targety":             "targetY",
	"textlength":          "textLength",
	"viewbox":             "viewBox",
	"zoomandpan":          "zoomAndPan",
}

// mathmlCanonical maps lowercased MathML attribute names to their
// canonical form. MathML attributes are almost all lowercase already.
var mathmlCanonical = map[string]string{
	"definitionurl": "definitionURL",
}

// canonicalForeignName returns the canonical case-sensitive form of an
// SVG or MathML attribute name, or "" when the name has no canonical
// mixed-case form.
func canonicalForeignName(lower string, ns dom.Namespace) string {
	switch ns {
	case dom.NamespaceSVG:
		return svgCanonical[lower]
	case dom.NamespaceMathML:
		return mathmlCanonical[lower]
	default:
		return ""
	}
}
