package utils

// Version from source control, set with -ldflags at build time.
var Version string = "unknown"

// HeaderEqual compares two slices for header equality
func HeaderEqual[T any](a, b []T) bool {
	return len(a) == len(b) && (len(a) == 0 || &a[0] == &b[0])
}
