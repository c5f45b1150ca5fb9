// Package render serializes dom trees to markup.
//
// Attribute decisions are delegated to the reconcile package; the
// renderer handles tag structure, namespaces, escaping, and raw content.
// Invalid attribute values degrade to omission; only structurally invalid
// nodes (unknown kinds, nil components) produce errors.
package render
