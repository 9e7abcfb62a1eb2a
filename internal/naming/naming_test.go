package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple words", "My Cool Plugin!", "my-cool-plugin"},
		{"already a slug", "my-cool-plugin", "my-cool-plugin"},
		{"mixed separators", "WP__Super--Cache", "wp-super-cache"},
		{"leading and trailing junk", "  --Hello World-- ", "hello-world"},
		{"digits survive", "SEO 2 Go", "seo-2-go"},
		{"unicode folds away", "Café Menus", "caf-menus"},
		{"all symbols", "!!!", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	for _, in := range []string{"My Cool Plugin!", "demo", "a-b-c-9"} {
		slug := Slugify(in)
		assert.Equal(t, slug, Slugify(slug), "slugifying a valid slug must be a no-op")
	}
}

func TestNamespace(t *testing.T) {
	assert.Equal(t, "MyCoolPlugin", Namespace("my-cool-plugin"))
	assert.Equal(t, "Demo", Namespace("demo"))
	assert.Equal(t, "Seo2Go", Namespace("seo-2-go"))
	assert.Equal(t, "", Namespace(""))
}

func TestTokens(t *testing.T) {
	assert.Equal(t, "my_cool_plugin", FunctionToken("my-cool-plugin"))
	assert.Equal(t, "MY_COOL_PLUGIN", ConstantToken("my-cool-plugin"))
}
