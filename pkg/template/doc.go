// Package template implements the named-template renderer used to produce
// review comments, issue bodies, and report sections.
//
// Templates are plain text with {placeholder} tokens. Rendering substitutes
// caller-supplied field values in a single left-to-right pass and fails on
// the first placeholder without a matching field. The built-in table is
// loaded once from the embedded templates directory and never mutated
// afterwards, so render calls are safe from any number of goroutines.
package template
