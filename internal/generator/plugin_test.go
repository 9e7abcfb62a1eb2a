package generator

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plugsmith/plugsmith-cli/internal/plugin"
)

func generate(t *testing.T, opts Options) (*Result, error) {
	t.Helper()
	return NewPluginGenerator().Generate(context.Background(), opts)
}

func readTree(t *testing.T, root string) map[string]string {
	t.Helper()
	tree := make(map[string]string)
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		tree[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	require.NoError(t, err)
	return tree
}

func TestGenerateMinimal(t *testing.T) {
	out := t.TempDir()
	res, err := generate(t, Options{Plugin: &plugin.Options{Name: "Demo", OutputDir: out}})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(out, "demo"), res.PluginPath)

	tree := readTree(t, res.PluginPath)
	want := []string{
		"demo.php",
		"includes/class-demo-activator.php",
		"includes/class-demo-deactivator.php",
		"includes/class-demo.php",
		"includes/class-demo-loader.php",
		"admin/class-demo-admin.php",
		"public/class-demo-public.php",
		"readme.txt",
		"admin/css/demo-admin.css",
		"admin/js/demo-admin.js",
		"public/css/demo-public.css",
		"public/js/demo-public.js",
	}
	assert.Len(t, tree, len(want), "exactly the fixed files, no composer.json")
	for _, rel := range want {
		assert.Contains(t, tree, rel)
	}

	// Stub assets are empty; languages/ exists but holds nothing.
	assert.Empty(t, tree["admin/css/demo-admin.css"])
	info, err := os.Stat(filepath.Join(res.PluginPath, "languages"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Defaults resolved into the header.
	assert.Contains(t, tree["demo.php"], "Version:           1.0.0")
	assert.Contains(t, tree["demo.php"], "Author:            Plugsmith Authors")
	assert.Contains(t, tree["demo.php"], "Plugin URI:        https://plugsmith.dev/plugins/demo/")
}

func TestGenerateComposerWithUpdateChecker(t *testing.T) {
	res, err := generate(t, Options{Plugin: &plugin.Options{
		Name:          "Demo",
		OutputDir:     t.TempDir(),
		Composer:      true,
		RepositoryURL: "https://github.com/acme/demo",
	}})
	require.NoError(t, err)

	tree := readTree(t, res.PluginPath)
	require.Contains(t, tree, "composer.json")
	assert.Contains(t, tree["composer.json"], `"yahnis-elsts/plugin-update-checker"`)
	assert.Contains(t, tree["demo.php"], "setBranch( 'main' )", "branch defaults to main")
}

func TestGenerateLibraryStub(t *testing.T) {
	res, err := generate(t, Options{Plugin: &plugin.Options{
		Name:      "Demo",
		OutputDir: t.TempDir(),
		Libraries: []string{"cmb2", "not-a-library"},
	}})
	require.NoError(t, err)

	tree := readTree(t, res.PluginPath)
	require.Contains(t, tree, "includes/class-demo-cmb2.php")
	assert.Contains(t, tree["includes/class-demo-cmb2.php"], "class Demo_Cmb2")
	assert.NotContains(t, tree, "includes/class-demo-not-a-library.php", "unknown identifiers are skipped silently")
	assert.Contains(t, tree["includes/class-demo.php"], "class-demo-cmb2.php", "core class includes the library stub")
}

func TestGenerateSettingsSnippet(t *testing.T) {
	res, err := generate(t, Options{Plugin: &plugin.Options{
		Name:      "Demo",
		OutputDir: t.TempDir(),
		Snippets:  []string{"settings"},
		Settings:  &plugin.SettingsConfig{PageTitle: "Demo Settings"},
	}})
	require.NoError(t, err)

	tree := readTree(t, res.PluginPath)
	require.Contains(t, tree, "includes/class-demo-settings.php")
	stub := tree["includes/class-demo-settings.php"]
	assert.Contains(t, stub, "'Demo Settings',")
	assert.Contains(t, stub, "const STORAGE_FORMAT = 'json';", "omitted format defaults to json")
	assert.Contains(t, stub, "'demo-settings',", "omitted menu slug defaults from the plugin slug")
}

func TestGenerateDestinationConflict(t *testing.T) {
	out := t.TempDir()
	opts := Options{Plugin: &plugin.Options{Name: "Demo", OutputDir: out}}

	first, err := generate(t, opts)
	require.NoError(t, err)
	before := readTree(t, first.PluginPath)

	_, err = generate(t, opts)
	var conflict *DestinationConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, first.PluginPath, conflict.Path)

	assert.Equal(t, before, readTree(t, first.PluginPath), "second call performs zero writes")
}

func TestGenerateIntoExistingEmptyDir(t *testing.T) {
	out := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(out, "demo"), 0o755))

	_, err := generate(t, Options{Plugin: &plugin.Options{Name: "Demo", OutputDir: out}})
	assert.NoError(t, err, "an existing but empty destination is not a conflict")
}

func TestGenerateValidation(t *testing.T) {
	tests := []struct {
		name string
		opts *plugin.Options
	}{
		{"missing name", &plugin.Options{OutputDir: "/tmp/out"}},
		{"missing output dir", &plugin.Options{Name: "Demo"}},
		{"all-symbol name", &plugin.Options{Name: "!!!", OutputDir: "/tmp/out"}},
		{"nil options", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.opts != nil {
				tt.opts.OutputDir = filepath.Join(t.TempDir(), "out")
				if tt.name == "missing output dir" {
					tt.opts.OutputDir = ""
				}
				defer func() {
					if tt.opts.OutputDir != "" {
						_, err := os.Stat(tt.opts.OutputDir)
						assert.True(t, os.IsNotExist(err), "validation must precede any filesystem mutation")
					}
				}()
			}
			_, err := generate(t, Options{Plugin: tt.opts})
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestGenerateExplicitSlugWins(t *testing.T) {
	res, err := generate(t, Options{Plugin: &plugin.Options{
		Name:      "Totally Different Name",
		Slug:      "demo",
		OutputDir: t.TempDir(),
	}})
	require.NoError(t, err)
	assert.Equal(t, "demo", filepath.Base(res.PluginPath))
}

func TestGenerateDryRun(t *testing.T) {
	out := t.TempDir()
	var observed []string
	res, err := generate(t, Options{
		Plugin:   &plugin.Options{Name: "Demo", OutputDir: out, Composer: true},
		DryRun:   true,
		Observer: func(rel string) { observed = append(observed, rel) },
	})
	require.NoError(t, err)

	assert.Equal(t, "demo.php", res.Artifacts[0], "entry file first")
	assert.Contains(t, res.Artifacts, "composer.json")
	assert.Empty(t, observed, "dry run writes nothing")

	_, err = os.Stat(filepath.Join(out, "demo"))
	assert.True(t, os.IsNotExist(err))
}

func TestGenerateObserverOrder(t *testing.T) {
	var observed []string
	res, err := generate(t, Options{
		Plugin:   &plugin.Options{Name: "Demo", OutputDir: t.TempDir()},
		Observer: func(rel string) { observed = append(observed, rel) },
	})
	require.NoError(t, err)
	assert.Equal(t, res.Artifacts, observed)
}

func TestRegistry(t *testing.T) {
	gen, err := Get("plugin")
	require.NoError(t, err)
	assert.Equal(t, "plugin", gen.Name())

	_, err = Get("nope")
	assert.Error(t, err)
}
