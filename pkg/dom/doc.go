// Package dom defines the virtual node model rendered by Lumen.
//
// A tree of VNode values describes the markup to produce. Nodes are plain
// data: the reconcile package decides how props become attributes and the
// render package serializes the tree to HTML or SVG/MathML markup.
package dom
