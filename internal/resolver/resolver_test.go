package resolver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newResolver(t *testing.T) (*Resolver, string) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte("<html></html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("hello"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(root, "deep"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "deep", "index.html"), []byte("deep"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "noext"), []byte("x"), 0o644))

	r, err := New(root, "index.html")
	require.NoError(t, err)

	return r, root
}

func TestDirectoryLike(t *testing.T) {
	r, _ := newResolver(t)

	require.True(t, r.DirectoryLike("/"))
	require.True(t, r.DirectoryLike("/deep/"))
	require.True(t, r.DirectoryLike("/deep"))
	// extensionless files are misclassified by the heuristic on purpose
	require.True(t, r.DirectoryLike("/noext"))
	require.False(t, r.DirectoryLike("/a.txt"))
	require.False(t, r.DirectoryLike("/deep/index.html"))
}

func TestResolve(t *testing.T) {
	r, root := newResolver(t)

	t.Run("plain file", func(t *testing.T) {
		resolved := r.Resolve("/a.txt")
		require.True(t, resolved.WithinRoot)
		require.True(t, resolved.Exists)
		require.Equal(t, filepath.Join(root, "a.txt"), resolved.Path)
	})

	t.Run("trailing slash appends index", func(t *testing.T) {
		resolved := r.Resolve("/")
		require.True(t, resolved.WithinRoot)
		require.True(t, resolved.Exists)
		require.Equal(t, filepath.Join(root, "index.html"), resolved.Path)

		resolved = r.Resolve("/deep/")
		require.Equal(t, filepath.Join(root, "deep", "index.html"), resolved.Path)
		require.True(t, resolved.Exists)
	})

	t.Run("missing file", func(t *testing.T) {
		resolved := r.Resolve("/missing.html")
		require.True(t, resolved.WithinRoot)
		require.False(t, resolved.Exists)
	})

	t.Run("directory is not a file", func(t *testing.T) {
		resolved := r.Resolve("/deep")
		require.True(t, resolved.WithinRoot)
		require.False(t, resolved.Exists)
	})

	t.Run("traversal escapes root", func(t *testing.T) {
		for _, target := range []string{
			"/../secret.txt",
			"/../../etc/passwd",
			"/deep/../../../etc/passwd",
		} {
			resolved := r.Resolve(target)
			require.False(t, resolved.WithinRoot, target)
			require.False(t, resolved.Exists, target)
		}
	})

	t.Run("existing out-of-root file is not revealed", func(t *testing.T) {
		outside := filepath.Join(filepath.Dir(root), "outside.txt")
		require.NoError(t, os.WriteFile(outside, []byte("secret"), 0o644))

		resolved := r.Resolve("/../" + filepath.Base(outside))
		require.False(t, resolved.WithinRoot)
		require.False(t, resolved.Exists)
	})

	t.Run("dotted segments inside root stay contained", func(t *testing.T) {
		resolved := r.Resolve("/deep/../a.txt")
		require.True(t, resolved.WithinRoot)
		require.True(t, resolved.Exists)
		require.Equal(t, filepath.Join(root, "a.txt"), resolved.Path)
	})
}
