package plugin

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr string
	}{
		{"valid", Options{Name: "Demo", OutputDir: "/tmp/out"}, ""},
		{"missing name", Options{OutputDir: "/tmp/out"}, "plugin name is required"},
		{"missing output dir", Options{Name: "Demo"}, "output directory is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestLoadManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), ManifestFileName)
	manifest := `name: Demo Plugin
description: A demo.
composer: true
repositoryUrl: https://github.com/acme/demo-plugin
libraries:
  - cmb2
snippets:
  - settings
settings:
  pageTitle: Demo Settings
`
	require.NoError(t, os.WriteFile(path, []byte(manifest), 0o644))

	opts, err := LoadManifest(path)
	require.NoError(t, err)

	assert.Equal(t, "Demo Plugin", opts.Name)
	assert.True(t, opts.Composer)
	assert.Equal(t, []string{"cmb2"}, opts.Libraries)
	assert.Equal(t, []string{"settings"}, opts.Snippets)
	require.NotNil(t, opts.Settings)
	assert.Equal(t, "Demo Settings", opts.Settings.PageTitle)
	assert.Empty(t, opts.Settings.Format, "absent fields stay empty until render time")
}

func TestLoadManifestRejectsUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), ManifestFileName)
	require.NoError(t, os.WriteFile(path, []byte("name: Demo\nbogus: 1\n"), 0o644))

	_, err := LoadManifest(path)
	assert.Error(t, err)
}

func TestSaveManifestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ManifestFileName)
	in := &Options{Name: "Demo", Slug: "demo", Libraries: []string{"cmb2"}}
	require.NoError(t, SaveManifest(path, in))

	out, err := LoadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
