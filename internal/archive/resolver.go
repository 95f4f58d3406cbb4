package archive

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/bbr88/tabdump/bootstrap/internal/branding"
	"github.com/spf13/afero"
)

// ErrNotFound is returned by Resolve when the directory holds neither a
// canonical nor a versioned archive.
var ErrNotFound = errors.New("prebuilt app archive not found")

// Resolver finds the archive to install inside a distribution directory.
// It only reads the filesystem.
type Resolver struct {
	fs        afero.Fs
	dir       string
	canonical string
	pattern   string
	order     Order
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithOrder sets the Order used to rank versioned candidates.
func WithOrder(o Order) Option {
	return func(r *Resolver) {
		if o != nil {
			r.order = o
		}
	}
}

// WithNames overrides the canonical file name and the versioned glob.
func WithNames(canonical, pattern string) Option {
	return func(r *Resolver) {
		r.canonical = canonical
		r.pattern = pattern
	}
}

// NewResolver creates a Resolver for dir using the branded archive names and
// lexical ordering unless overridden by opts.
func NewResolver(fs afero.Fs, dir string, opts ...Option) *Resolver {
	r := &Resolver{
		fs:        fs,
		dir:       dir,
		canonical: branding.CanonicalArchive(),
		pattern:   branding.VersionedArchivePattern(),
		order:     Lexical,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Dir returns the directory the resolver searches.
func (r *Resolver) Dir() string {
	return r.dir
}

// Resolve returns the path of the archive to install, or ErrNotFound.
func (r *Resolver) Resolve() (string, error) {
	canonical := filepath.Join(r.dir, r.canonical)
	if r.isRegular(canonical) {
		return canonical, nil
	}

	candidates, err := r.Candidates()
	if err != nil {
		return "", err
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("%w under %s", ErrNotFound, r.dir)
	}
	return filepath.Join(r.dir, candidates[len(candidates)-1]), nil
}

// Candidates returns the names of the versioned archives directly inside
// the directory, ascending under the resolver's Order. Subdirectories are
// not searched and only regular files are considered; symlinks are skipped. A missing directory
// yields no candidates.
func (r *Resolver) Candidates() ([]string, error) {
	entries, err := afero.ReadDir(r.fs, r.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading distribution directory %s: %w", r.dir, err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.Mode().IsRegular() {
			continue
		}
		ok, err := filepath.Match(r.pattern, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("matching %q: %w", r.pattern, err)
		}
		if ok {
			names = append(names, entry.Name())
		}
	}

	slices.SortStableFunc(names, r.order)
	return names, nil
}

// isRegular reports whether path is a regular file, not following symlinks,
// so the canonical archive obeys the same rule as directory entries.
func (r *Resolver) isRegular(path string) bool {
	var (
		info os.FileInfo
		err  error
	)
	if l, ok := r.fs.(afero.Lstater); ok {
		info, _, err = l.LstatIfPossible(path)
	} else {
		info, err = r.fs.Stat(path)
	}
	return err == nil && info.Mode().IsRegular()
}
