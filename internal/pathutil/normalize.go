// Package pathutil rewrites file paths to a canonical separator form.
package pathutil

import (
	"runtime"
	"strings"
)

// Separators describes the path separators of a target platform.
type Separators struct {
	// Canonical is the separator every path is rewritten to.
	Canonical rune
	// Alternate is the platform's alternate separator. Zero means the
	// platform has none and Normalize leaves paths untouched.
	Alternate rune
}

// Unix is the separator set of platforms without an alternate separator.
var Unix = Separators{Canonical: '/'}

// Windows rewrites backslashes to forward slashes.
var Windows = Separators{Canonical: '/', Alternate: '\\'}

// HostSeparators returns the separator set for the running platform.
func HostSeparators() Separators {
	return ForGOOS(runtime.GOOS)
}

// ForGOOS returns the separator set for the named GOOS value.
func ForGOOS(goos string) Separators {
	if goos == "windows" {
		return Windows
	}
	return Unix
}

// HasAlternate reports whether the set defines an alternate separator.
func (s Separators) HasAlternate() bool {
	return s.Alternate != 0 && s.Alternate != s.Canonical
}

// Normalize replaces every occurrence of the alternate separator in path
// with the canonical one. It does not touch the filesystem.
func Normalize(path string, sep Separators) string {
	if !sep.HasAlternate() {
		return path
	}
	return strings.ReplaceAll(path, string(sep.Alternate), string(sep.Canonical))
}
