// Package catalog holds the static table of optional features.
//
// The table is data, not code: catalog.toml lists every feature with its
// dependencies, manifest scripts, summary hints and file templates, and the
// templates/ tree holds the literal file contents. Both are embedded in the
// binary and parsed once; the resulting features are treated as immutable.
//
// The catalog also carries the "app" bundle, the starter's single-route
// application template written by the init command.
package catalog
