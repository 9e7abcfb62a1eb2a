package layout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanPaths(t *testing.T) {
	p := NewPlan("/tmp/out", "demo")

	assert.Equal(t, filepath.Join("/tmp/out", "demo"), p.Root)
	assert.Equal(t, filepath.Join("/tmp/out", "demo", "includes", "class-demo-loader.php"), p.IncludeFile("loader"))
	assert.Equal(t, filepath.Join("/tmp/out", "demo", "admin", "css", "demo-admin.css"), p.Path("admin/css/demo-admin.css"))
}

func TestEnsureTree(t *testing.T) {
	p := NewPlan(t.TempDir(), "demo")
	require.NoError(t, p.EnsureTree())

	for _, dir := range Subdirectories {
		info, err := os.Stat(p.Path(dir))
		require.NoError(t, err, dir)
		assert.True(t, info.IsDir(), dir)
	}

	// Idempotent.
	assert.NoError(t, p.EnsureTree())
}

func TestWrite(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "nested", "file.php")

	require.NoError(t, Write(path, "<?php\n"))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<?php\n", string(got))

	// Overwrite semantics.
	require.NoError(t, Write(path, "replaced"))
	got, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "replaced", string(got))
}
