// Package transform resolves a LayoutSpec against previously entered values
// and produces the ordered element tree renderers lay out.
//
// Transform is a pure function of its inputs: every call allocates fresh
// elements and controllers, never mutates the layout, and is safe to call
// concurrently.
package transform
