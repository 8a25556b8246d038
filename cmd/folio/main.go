// Package main provides the entry point for the folio CLI.
//
// folio shows a developer portfolio as a single scrolling page in the
// terminal, with a section navigator and a persisted light/dark theme.
//
// Usage:
//
//	folio [--content DIR] [--section ID] [--tech TAG]
//	folio theme [toggle | set light|dark]
//
// See --help for all available options.
package main

// main is the entry point for folio.
func main() {
	Execute()
}
