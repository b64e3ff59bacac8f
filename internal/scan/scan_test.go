package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("x\n"), 0o600))
}

func TestFindMarkdownFiles(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "a.md"))
	touch(t, filepath.Join(root, "b.markdown"))
	touch(t, filepath.Join(root, "ignore.txt"))
	touch(t, filepath.Join(root, "nested", "deep", "c.md"))
	touch(t, filepath.Join(root, "README.MD"))

	got := FindMarkdownFiles([]string{root})

	assert.ElementsMatch(t, []string{
		filepath.Join(root, "a.md"),
		filepath.Join(root, "b.markdown"),
		filepath.Join(root, "nested", "deep", "c.md"),
		filepath.Join(root, "README.MD"),
	}, got)
}

func TestFindMarkdownFilesMissingRoot(t *testing.T) {
	got := FindMarkdownFiles([]string{filepath.Join(t.TempDir(), "does-not-exist")})
	assert.Empty(t, got)
}

func TestFindMarkdownFilesRootOrder(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	touch(t, filepath.Join(first, "one.md"))
	touch(t, filepath.Join(second, "two.md"))

	got := FindMarkdownFiles([]string{first, second})
	require.Len(t, got, 2)
	assert.Equal(t, filepath.Join(first, "one.md"), got[0])
	assert.Equal(t, filepath.Join(second, "two.md"), got[1])

	// Missing roots in the middle are skipped without disturbing order.
	got = FindMarkdownFiles([]string{second, filepath.Join(first, "gone"), first})
	require.Len(t, got, 2)
	assert.Equal(t, filepath.Join(second, "two.md"), got[0])
	assert.Equal(t, filepath.Join(first, "one.md"), got[1])
}

func TestFindMarkdownFilesDeterministic(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "z.md"))
	touch(t, filepath.Join(root, "a.md"))
	touch(t, filepath.Join(root, "m.md"))

	first := FindMarkdownFiles([]string{root})
	second := FindMarkdownFiles([]string{root})
	assert.Equal(t, first, second)
}
