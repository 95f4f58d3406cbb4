package archive

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Order compares two archive file names, returning a negative number when a
// sorts before b, zero when they are equal and a positive number otherwise.
// The resolver selects the greatest candidate under the configured Order.
type Order func(a, b string) int

// Supported order identifiers for configuration.
const (
	OrderLexical = "lexical"
	OrderSemver  = "semver"
)

// Lexical orders names byte-wise, independent of locale. For names like
// tabdump-app-v1.9.0 and tabdump-app-v1.10.0 it picks v1.9.0.
func Lexical(a, b string) int {
	return strings.Compare(a, b)
}

// Semver returns an Order that parses the token between prefix and suffix as
// a semantic version. Names whose token does not parse sort before every
// parseable name and are ordered lexically among themselves; equal versions
// fall back to lexical order so the result is deterministic.
func Semver(prefix, suffix string) Order {
	return func(a, b string) int {
		va, errA := versionToken(a, prefix, suffix)
		vb, errB := versionToken(b, prefix, suffix)
		switch {
		case errA != nil && errB != nil:
			return Lexical(a, b)
		case errA != nil:
			return -1
		case errB != nil:
			return 1
		}
		if c := va.Compare(vb); c != 0 {
			return c
		}
		return Lexical(a, b)
	}
}

// OrderByName maps a configured identifier to an Order for archives named
// prefix<version>suffix.
func OrderByName(name, prefix, suffix string) (Order, error) {
	switch name {
	case "", OrderLexical:
		return Lexical, nil
	case OrderSemver:
		return Semver(prefix, suffix), nil
	default:
		return nil, fmt.Errorf("unknown archive order %q: supported orders are %q and %q", name, OrderLexical, OrderSemver)
	}
}

func versionToken(name, prefix, suffix string) (*semver.Version, error) {
	if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, suffix) || len(name) < len(prefix)+len(suffix) {
		return nil, fmt.Errorf("%q does not match %s*%s", name, prefix, suffix)
	}
	return parseSemver(name[len(prefix) : len(name)-len(suffix)])
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
