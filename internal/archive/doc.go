// Package archive locates the prebuilt application archive that the install
// script unpacks into the user's profile.
//
// A distribution directory holds at most one canonical, version-less
// archive and any number of versioned archives matching a fixed glob. The
// canonical archive always wins. Otherwise the versioned candidates are
// ordered by an Order and the greatest is chosen. The default Order is a
// byte-wise comparison of file names, which only tracks release order while
// version tokens are fixed-width; Semver is available for directories that
// mix widths.
package archive
