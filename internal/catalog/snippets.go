package catalog

import (
	"strings"

	"github.com/plugsmith/plugsmith-cli/internal/plugin"
)

// Render-time defaults for the settings snippet. They apply whenever the
// corresponding config field is empty; the stored options are never
// backfilled.
const (
	defaultPageTitle  = "Plugin Settings"
	defaultCapability = "manage_options"
	defaultParentMenu = "options-general.php"
	defaultFormat     = "json"
)

type snippetEntry struct {
	title       string
	description string
	render      func(c *Catalog, d *Data, settings *plugin.SettingsConfig) (string, error)
}

// snippetOrder fixes the listing order of the closed snippet catalog.
var snippetOrder = []string{"settings", "custom-post-type", "shortcode"}

var snippetRegistry = map[string]snippetEntry{
	"settings": {
		title:       "Settings page",
		description: "Admin settings page with persisted options",
		render:      renderSettingsSnippet,
	},
	"custom-post-type": {
		title:       "Custom post type",
		description: "Registers a custom post type named after the plugin",
		render: func(c *Catalog, d *Data, _ *plugin.SettingsConfig) (string, error) {
			return c.engine.Render(customPostTypeTemplate, d)
		},
	},
	"shortcode": {
		title:       "Shortcode",
		description: "Registers a [slug] shortcode",
		render: func(c *Catalog, d *Data, _ *plugin.SettingsConfig) (string, error) {
			return c.engine.Render(shortcodeTemplate, d)
		},
	},
}

// SnippetIDs returns the closed snippet catalog, in fixed order.
func SnippetIDs() []string {
	return append([]string(nil), snippetOrder...)
}

// SnippetDescription returns a human-readable label for a known snippet.
func SnippetDescription(id string) string {
	sn, ok := snippetRegistry[id]
	if !ok {
		return ""
	}
	return sn.title + " - " + sn.description
}

// IsSnippet reports whether id names a known snippet.
func IsSnippet(id string) bool {
	_, ok := snippetRegistry[id]
	return ok
}

// FilterSnippets drops unknown identifiers, preserving selection order.
// Unknown entries are skipped silently.
func FilterSnippets(ids []string) []string {
	var out []string
	for _, id := range ids {
		if IsSnippet(id) {
			out = append(out, id)
		}
	}
	return out
}

// Snippet renders the stub file for a known snippet identifier. Only the
// "settings" snippet consults the settings config; a nil config means every
// field takes its default. The second return value reports whether the
// identifier is known.
func (c *Catalog) Snippet(id string, d *Data, settings *plugin.SettingsConfig) (string, bool, error) {
	sn, ok := snippetRegistry[id]
	if !ok {
		return "", false, nil
	}
	out, err := sn.render(c, d, settings)
	return out, true, err
}

// escapePHPString makes a value safe inside a single-quoted PHP literal:
// backslashes first, then single quotes.
func escapePHPString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}

// normalizeFormat reduces the settings storage format to lowercase
// alphanumerics, falling back to "json" when nothing survives.
func normalizeFormat(format string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(format) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return defaultFormat
	}
	return b.String()
}

type settingsData struct {
	*Data
	PageTitle  string
	MenuSlug   string
	Capability string
	ParentMenu string
	Format     string
}

func renderSettingsSnippet(c *Catalog, d *Data, settings *plugin.SettingsConfig) (string, error) {
	if settings == nil {
		settings = &plugin.SettingsConfig{}
	}

	sd := settingsData{
		Data:       d,
		PageTitle:  settings.PageTitle,
		MenuSlug:   settings.MenuSlug,
		Capability: settings.Capability,
		ParentMenu: settings.ParentMenu,
		Format:     normalizeFormat(settings.Format),
	}
	if sd.PageTitle == "" {
		sd.PageTitle = defaultPageTitle
	}
	if sd.MenuSlug == "" {
		sd.MenuSlug = d.Slug + "-settings"
	}
	if sd.Capability == "" {
		sd.Capability = defaultCapability
	}
	if sd.ParentMenu == "" {
		sd.ParentMenu = defaultParentMenu
	}

	sd.PageTitle = escapePHPString(sd.PageTitle)
	sd.MenuSlug = escapePHPString(sd.MenuSlug)
	sd.Capability = escapePHPString(sd.Capability)
	sd.ParentMenu = escapePHPString(sd.ParentMenu)

	return c.engine.Render(settingsTemplate, sd)
}

const settingsTemplate = `<?php
/**
 * Settings page for {{.Name}}.
 *
 * @package {{.Namespace}}
 */
class {{.Namespace}}_Settings {

	const OPTION_KEY = '{{.FunctionToken}}_settings';

	const STORAGE_FORMAT = '{{.Format}}';

	/**
	 * Hooks the settings page into the admin menu.
	 */
	public static function init() {
		add_action( 'admin_menu', array( __CLASS__, 'register_menu' ) );
		add_action( 'admin_init', array( __CLASS__, 'register_settings' ) );
	}

	/**
	 * Add the settings page under its parent menu.
	 */
	public static function register_menu() {
		add_submenu_page(
			'{{.ParentMenu}}',
			'{{.PageTitle}}',
			'{{.PageTitle}}',
			'{{.Capability}}',
			'{{.MenuSlug}}',
			array( __CLASS__, 'render_page' )
		);
	}

	/**
	 * Register the option backing the page.
	 */
	public static function register_settings() {
		register_setting( '{{.MenuSlug}}', self::OPTION_KEY );
	}

	/**
	 * Render the settings form.
	 */
	public static function render_page() {
		if ( ! current_user_can( '{{.Capability}}' ) ) {
			return;
		}
		?>
		<div class="wrap">
			<h1><?php echo esc_html( get_admin_page_title() ); ?></h1>
			<form action="options.php" method="post">
				<?php
				settings_fields( '{{.MenuSlug}}' );
				do_settings_sections( '{{.MenuSlug}}' );
				submit_button();
				?>
			</form>
		</div>
		<?php
	}

}

{{.Namespace}}_Settings::init();
`

const customPostTypeTemplate = `<?php
/**
 * Custom post type for {{.Name}}.
 *
 * @package {{.Namespace}}
 */
class {{.Namespace}}_Custom_Post_Type {

	/**
	 * Hooks post type registration into init.
	 */
	public static function init() {
		add_action( 'init', array( __CLASS__, 'register' ) );
	}

	/**
	 * Register the post type.
	 */
	public static function register() {
		register_post_type(
			'{{.FunctionToken}}',
			array(
				'labels'      => array(
					'name'          => __( '{{.Name}}', '{{.Slug}}' ),
					'singular_name' => __( '{{.Name}}', '{{.Slug}}' ),
				),
				'public'      => true,
				'has_archive' => true,
				'show_in_rest' => true,
				'supports'    => array( 'title', 'editor', 'thumbnail' ),
			)
		);
	}

}

{{.Namespace}}_Custom_Post_Type::init();
`

const shortcodeTemplate = `<?php
/**
 * Shortcode for {{.Name}}.
 *
 * @package {{.Namespace}}
 */
class {{.Namespace}}_Shortcode {

	/**
	 * Hooks the shortcode registration.
	 */
	public static function init() {
		add_shortcode( '{{.FunctionToken}}', array( __CLASS__, 'render' ) );
	}

	/**
	 * Render the shortcode output.
	 *
	 * @param array $atts Shortcode attributes.
	 */
	public static function render( $atts ) {
		$atts = shortcode_atts(
			array(
				'title' => '{{.Name}}',
			),
			$atts,
			'{{.FunctionToken}}'
		);

		return '<div class="{{.Slug}}-shortcode">' . esc_html( $atts['title'] ) . '</div>';
	}

}

{{.Namespace}}_Shortcode::init();
`
