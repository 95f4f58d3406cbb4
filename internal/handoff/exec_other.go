//go:build !unix

package handoff

// Default returns the platform's preferred Handoff. Process replacement is
// not available here, so the target runs as a child.
func Default() Handoff {
	return Spawn{}
}
