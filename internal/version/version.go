// internal/version/version.go
package version

// Version is the build's semantic version, overridable at link time with
// -ldflags "-X cat-burrow-defense/internal/version.Version=...".
var Version = "0.3.0"

// Current returns the running build's version without any "v" prefix.
func Current() string {
	return Normalize(Version)
}

// Normalize strips a leading "v" so versions compare as plain dotted
// numbers.
func Normalize(v string) string {
	if len(v) > 0 && (v[0] == 'v' || v[0] == 'V') {
		return v[1:]
	}
	return v
}
