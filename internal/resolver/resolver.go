package resolver

import (
	"os"
	"path/filepath"
	"strings"
)

// Resolved classifies a request-target against the document root.
type Resolved struct {
	// Path is the normalized absolute filesystem path the target maps to.
	Path string
	// WithinRoot reports whether Path stayed inside the document root
	// after normalization.
	WithinRoot bool
	// Exists reports whether Path is an existing regular file. It is
	// never set for out-of-root paths, so their existence cannot be
	// probed.
	Exists bool
}

// Resolver maps request-targets onto a fixed document root. The root is
// made absolute once at construction and never changes afterwards, which
// keeps the resolver safe for concurrent use.
type Resolver struct {
	root  string
	index string
}

func New(root, index string) (*Resolver, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	return &Resolver{root: abs, index: index}, nil
}

func (r *Resolver) Root() string {
	return r.root
}

// DirectoryLike reports whether the target is treated as referring to a
// directory: either it ends with a slash, or its final segment carries no
// dot. This is a heuristic over the target string, not a filesystem stat,
// and an extensionless regular file is therefore misclassified on purpose
// to keep the redirect behavior stable.
func (r *Resolver) DirectoryLike(target string) bool {
	if strings.HasSuffix(target, "/") {
		return true
	}

	last := target[strings.LastIndexByte(target, '/')+1:]

	return !strings.Contains(last, ".")
}

// Resolve maps the target onto the filesystem. Targets ending with a
// slash get the index file appended before resolution. Normalization
// happens before the containment check; checking the other way around
// would let ".." segments escape the root.
func (r *Resolver) Resolve(target string) Resolved {
	if strings.HasSuffix(target, "/") {
		target += r.index
	}

	// filepath.Join cleans the result, collapsing any "." and ".."
	// segments before containment is judged
	path := filepath.Join(r.root, target[1:])

	resolved := Resolved{
		Path:       path,
		WithinRoot: r.contains(path),
	}

	if !resolved.WithinRoot {
		return resolved
	}

	if info, err := os.Stat(path); err == nil {
		resolved.Exists = info.Mode().IsRegular()
	}

	return resolved
}

func (r *Resolver) contains(path string) bool {
	if path == r.root {
		return true
	}

	return strings.HasPrefix(path, r.root+string(filepath.Separator))
}
