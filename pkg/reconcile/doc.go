// Package reconcile decides how element props become serialized attributes.
//
// The rules are a declarative table keyed by prop name. Each rule carries a
// kind (boolean flag, positive numeric, style object, ...) plus the
// canonical attribute name to emit. Resolve consults the table and returns
// either an attribute name/value pair or a suppression. Invalid values
// (nil, NaN, functions, channels) always degrade to suppression; they never
// raise an error.
//
// The package also computes effective attribute sets for whole nodes and
// diffs two trees into patches. Because a diff compares post-reconciliation
// attribute sets, a prop whose new value is suppressed always produces a
// RemoveAttr patch — a previously rendered attribute can never go stale.
package reconcile
