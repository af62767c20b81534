package opengl

import "strings"

// extensionSet tracks wanted and required extension names against the
// names the platform actually reports.
type extensionSet struct {
	wanted   []string
	required []string
	actual   []string
}

func newExtensionSet(wanted, required, actual []string) *extensionSet {
	return &extensionSet{
		wanted:   wanted,
		required: required,
		actual:   actual,
	}
}

// HasRequired reports whether every required extension is present, and the
// missing ones otherwise.
func (e *extensionSet) HasRequired() (bool, []string) {
	missing := e.missing(e.required)
	return len(missing) == 0, missing
}

// HasWanted is like HasRequired for optional extensions.
func (e *extensionSet) HasWanted() (bool, []string) {
	missing := e.missing(e.wanted)
	return len(missing) == 0, missing
}

// Enabled returns the wanted and required extensions that are present.
func (e *extensionSet) Enabled() []string {
	var names []string
	for _, list := range [][]string{e.required, e.wanted} {
		for _, name := range list {
			if e.has(name) {
				names = append(names, name)
			}
		}
	}
	return names
}

func (e *extensionSet) missing(names []string) []string {
	missing := []string{}
	for _, name := range names {
		if !e.has(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

func (e *extensionSet) has(name string) bool {
	for _, act := range e.actual {
		if act == name {
			return true
		}
	}
	return false
}

// ParseExtensions splits a space separated extension string as returned by
// wglGetExtensionsStringARB.
func ParseExtensions(s string) []string {
	return strings.Fields(s)
}
