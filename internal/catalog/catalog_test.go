package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plugsmith/plugsmith-cli/internal/plugin"
)

func demoData() *Data {
	return &Data{
		Name:            "Demo",
		Slug:            "demo",
		Namespace:       "Demo",
		FunctionToken:   "demo",
		ConstantToken:   "DEMO",
		Description:     "A demo plugin.",
		Version:         "1.0.0",
		Author:          "Jane Doe",
		AuthorURI:       "https://example.com/",
		PluginURI:       "https://example.com/plugins/demo/",
		RequiresAtLeast: "6.2",
		TestedUpTo:      "6.6",
		RequiresPHP:     "7.4",
		Branch:          "main",
	}
}

func TestEntryFileHeader(t *testing.T) {
	out, err := New().EntryFile(demoData())
	require.NoError(t, err)

	assert.Contains(t, out, "Plugin Name:       Demo")
	assert.Contains(t, out, "Text Domain:       demo")
	assert.Contains(t, out, "define( 'DEMO_VERSION', '1.0.0' );")
	assert.Contains(t, out, "register_activation_hook( __FILE__, 'activate_demo' );")
	assert.Contains(t, out, "run_demo();")
	assert.NotContains(t, out, "PucFactory", "no update checker without a repository URL")
}

func TestEntryFileUpdateChecker(t *testing.T) {
	d := demoData()
	d.RepositoryURL = "https://github.com/acme/demo"
	d.Branch = "develop"

	out, err := New().EntryFile(d)
	require.NoError(t, err)

	assert.Contains(t, out, "'https://github.com/acme/demo',")
	assert.Contains(t, out, "setBranch( 'develop' )")
}

func TestCoreClassIncludeOrder(t *testing.T) {
	d := demoData()
	d.Libraries = []string{"cmb2", "action-scheduler"}
	d.Snippets = []string{"settings"}

	out, err := New().CoreClass(d)
	require.NoError(t, err)

	cmb2 := strings.Index(out, "class-demo-cmb2.php")
	sched := strings.Index(out, "class-demo-action-scheduler.php")
	settings := strings.Index(out, "class-demo-settings.php")
	loader := strings.Index(out, "class-demo-loader.php")

	require.True(t, cmb2 >= 0 && sched >= 0 && settings >= 0 && loader >= 0)
	assert.Less(t, cmb2, sched, "libraries keep selection order")
	assert.Less(t, sched, settings, "libraries precede snippets")
	assert.Less(t, settings, loader, "add-on includes precede fixed dependency loads")
}

func TestComposer(t *testing.T) {
	d := demoData()
	d.RepositoryURL = "https://github.com/acme/demo"

	out, err := New().Composer(d)
	require.NoError(t, err)

	assert.Contains(t, out, `"require"`)
	assert.Equal(t, 1, strings.Count(out, "yahnis-elsts/plugin-update-checker"))
	assert.NotContains(t, out, "cmb2/cmb2")
}

func TestComposerOmitsEmptyRequire(t *testing.T) {
	out, err := New().Composer(demoData())
	require.NoError(t, err)

	assert.NotContains(t, out, `"require"`)
	assert.Contains(t, out, `"name": "plugsmith/demo"`)
}

func TestComposerLibraryOrder(t *testing.T) {
	d := demoData()
	d.RepositoryURL = "https://github.com/acme/demo"
	d.Libraries = []string{"action-scheduler", "cmb2"}

	out, err := New().Composer(d)
	require.NoError(t, err)

	puc := strings.Index(out, "yahnis-elsts/plugin-update-checker")
	sched := strings.Index(out, "woocommerce/action-scheduler")
	cmb2 := strings.Index(out, "cmb2/cmb2")
	require.True(t, puc >= 0 && sched >= 0 && cmb2 >= 0)
	assert.Less(t, puc, sched)
	assert.Less(t, sched, cmb2, "selection order, not catalog order")
}

func TestLibraryRendering(t *testing.T) {
	out, known, err := New().Library("cmb2", demoData())
	require.NoError(t, err)
	require.True(t, known)

	assert.Contains(t, out, "class Demo_Cmb2")
	assert.Contains(t, out, "'demo_metabox'")
}

func TestLibraryUnknown(t *testing.T) {
	out, known, err := New().Library("nope", demoData())
	require.NoError(t, err)
	assert.False(t, known)
	assert.Empty(t, out)
}

func TestFilterCatalogs(t *testing.T) {
	assert.Equal(t, []string{"cmb2"}, FilterLibraries([]string{"nope", "cmb2", "also-nope"}))
	assert.Equal(t, []string{"shortcode", "settings"}, FilterSnippets([]string{"shortcode", "bogus", "settings"}))
	assert.Nil(t, FilterLibraries(nil))
}

func TestSettingsSnippetDefaults(t *testing.T) {
	out, known, err := New().Snippet("settings", demoData(), nil)
	require.NoError(t, err)
	require.True(t, known)

	assert.Contains(t, out, "const STORAGE_FORMAT = 'json';")
	assert.Contains(t, out, "'demo-settings',")
	assert.Contains(t, out, "'Plugin Settings',")
	assert.Contains(t, out, "'manage_options',")
	assert.Contains(t, out, "'options-general.php',")
}

func TestSettingsSnippetPartialConfig(t *testing.T) {
	cfg := &plugin.SettingsConfig{
		PageTitle: "Demo Options",
		Format:    "YAML!",
	}

	out, known, err := New().Snippet("settings", demoData(), cfg)
	require.NoError(t, err)
	require.True(t, known)

	assert.Contains(t, out, "'Demo Options',")
	assert.Contains(t, out, "const STORAGE_FORMAT = 'yaml';", "format normalized to lowercase alphanumerics")
	assert.Contains(t, out, "'demo-settings',", "absent menu slug defaults from the plugin slug")
}

func TestSettingsSnippetEscaping(t *testing.T) {
	cfg := &plugin.SettingsConfig{
		PageTitle: `O'Brien\'s Settings`,
		Format:    "&&&",
	}

	out, known, err := New().Snippet("settings", demoData(), cfg)
	require.NoError(t, err)
	require.True(t, known)

	assert.Contains(t, out, `'O\'Brien\\\'s Settings',`, "backslash escaped before quote")
	assert.Contains(t, out, "const STORAGE_FORMAT = 'json';", "empty normalized format falls back to json")
}

func TestSnippetUnknown(t *testing.T) {
	out, known, err := New().Snippet("nope", demoData(), nil)
	require.NoError(t, err)
	assert.False(t, known)
	assert.Empty(t, out)
}

func TestCatalogListings(t *testing.T) {
	assert.Equal(t, []string{"cmb2", "carbon-fields", "action-scheduler"}, LibraryIDs())
	assert.Equal(t, []string{"settings", "custom-post-type", "shortcode"}, SnippetIDs())

	for _, id := range LibraryIDs() {
		assert.NotEmpty(t, LibraryDescription(id), id)
	}
	for _, id := range SnippetIDs() {
		assert.NotEmpty(t, SnippetDescription(id), id)
	}
}
