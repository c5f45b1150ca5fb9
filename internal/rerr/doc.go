// Package rerr provides structured errors for Lumen. Errors carry a code,
// a category, and an optional fix suggestion so CLI output can point at
// the actual problem instead of a bare message.
package rerr
