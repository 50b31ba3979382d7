// Package template defines the engine contract the HTML renderer depends on.
// The pongo2-backed implementation lives in the gotemplate subpackage.
package template
