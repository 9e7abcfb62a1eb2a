package catalog

const readmeTemplate = `=== {{.Name}} ===
Contributors: {{.Author}}
Requires at least: {{.RequiresAtLeast}}
Tested up to: {{.TestedUpTo}}
Requires PHP: {{.RequiresPHP}}
Stable tag: {{.Version}}
License: GPLv2 or later
License URI: http://www.gnu.org/licenses/gpl-2.0.html

{{.Description}}

== Description ==

{{.Description}}

== Installation ==

1. Upload the plugin files to the ` + "`/wp-content/plugins/{{.Slug}}`" + ` directory, or install the plugin through the WordPress plugins screen directly.
2. Activate the plugin through the 'Plugins' screen in WordPress.

== Changelog ==

= {{.Version}} =
* Initial release.
`

// Readme renders the WordPress readme.txt.
func (c *Catalog) Readme(d *Data) (string, error) {
	return c.engine.Render(readmeTemplate, d)
}
