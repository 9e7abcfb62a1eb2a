package catalog

type libraryEntry struct {
	title           string
	description     string
	composerPackage string
	composerVersion string
	template        string
}

// libraryOrder fixes the listing order of the closed library catalog.
var libraryOrder = []string{"cmb2", "carbon-fields", "action-scheduler"}

var libraryRegistry = map[string]libraryEntry{
	"cmb2": {
		title:           "CMB2",
		description:     "Metabox and form toolkit",
		composerPackage: "cmb2/cmb2",
		composerVersion: "^2.10",
		template: `<?php
/**
 * CMB2 integration for {{.Name}}.
 *
 * @package {{.Namespace}}
 */
class {{.Namespace}}_Cmb2 {

	/**
	 * Bootstraps CMB2 and registers the plugin's metaboxes.
	 */
	public static function init() {
		if ( file_exists( plugin_dir_path( dirname( __FILE__ ) ) . 'vendor/cmb2/cmb2/init.php' ) ) {
			require_once plugin_dir_path( dirname( __FILE__ ) ) . 'vendor/cmb2/cmb2/init.php';
		}

		add_action( 'cmb2_admin_init', array( __CLASS__, 'register_metaboxes' ) );
	}

	/**
	 * Register the plugin's metaboxes.
	 */
	public static function register_metaboxes() {
		$cmb = new_cmb2_box(
			array(
				'id'           => '{{.Slug}}_metabox',
				'title'        => __( '{{.Name}}', '{{.Slug}}' ),
				'object_types' => array( 'post' ),
			)
		);

		$cmb->add_field(
			array(
				'name' => __( 'Example Field', '{{.Slug}}' ),
				'id'   => '{{.FunctionToken}}_example',
				'type' => 'text',
			)
		);
	}

}

{{.Namespace}}_Cmb2::init();
`,
	},
	"carbon-fields": {
		title:           "Carbon Fields",
		description:     "Custom fields library",
		composerPackage: "htmlburger/carbon-fields",
		composerVersion: "^3.6",
		template: `<?php
/**
 * Carbon Fields integration for {{.Name}}.
 *
 * @package {{.Namespace}}
 */
class {{.Namespace}}_Carbon_Fields {

	/**
	 * Bootstraps Carbon Fields and registers the plugin's containers.
	 */
	public static function init() {
		add_action( 'after_setup_theme', array( __CLASS__, 'boot' ) );
		add_action( 'carbon_fields_register_fields', array( __CLASS__, 'register_fields' ) );
	}

	public static function boot() {
		\Carbon_Fields\Carbon_Fields::boot();
	}

	/**
	 * Register the plugin's field containers.
	 */
	public static function register_fields() {
		\Carbon_Fields\Container::make( 'post_meta', __( '{{.Name}}', '{{.Slug}}' ) )
			->add_fields(
				array(
					\Carbon_Fields\Field::make( 'text', '{{.FunctionToken}}_example', __( 'Example Field', '{{.Slug}}' ) ),
				)
			);
	}

}

{{.Namespace}}_Carbon_Fields::init();
`,
	},
	"action-scheduler": {
		title:           "Action Scheduler",
		description:     "Background job queue",
		composerPackage: "woocommerce/action-scheduler",
		composerVersion: "^3.7",
		template: `<?php
/**
 * Action Scheduler integration for {{.Name}}.
 *
 * @package {{.Namespace}}
 */
class {{.Namespace}}_Action_Scheduler {

	/**
	 * Bootstraps Action Scheduler and hooks the plugin's recurring job.
	 */
	public static function init() {
		if ( file_exists( plugin_dir_path( dirname( __FILE__ ) ) . 'vendor/woocommerce/action-scheduler/action-scheduler.php' ) ) {
			require_once plugin_dir_path( dirname( __FILE__ ) ) . 'vendor/woocommerce/action-scheduler/action-scheduler.php';
		}

		add_action( 'init', array( __CLASS__, 'schedule' ) );
		add_action( '{{.FunctionToken}}_tick', array( __CLASS__, 'tick' ) );
	}

	/**
	 * Ensure the recurring action is scheduled.
	 */
	public static function schedule() {
		if ( function_exists( 'as_has_scheduled_action' ) && ! as_has_scheduled_action( '{{.FunctionToken}}_tick' ) ) {
			as_schedule_recurring_action( time(), HOUR_IN_SECONDS, '{{.FunctionToken}}_tick', array(), '{{.Slug}}' );
		}
	}

	/**
	 * The recurring job body.
	 */
	public static function tick() {

	}

}

{{.Namespace}}_Action_Scheduler::init();
`,
	},
}

// LibraryIDs returns the closed library catalog, in fixed order.
func LibraryIDs() []string {
	return append([]string(nil), libraryOrder...)
}

// LibraryDescription returns a human-readable label for a known library.
func LibraryDescription(id string) string {
	lib, ok := libraryRegistry[id]
	if !ok {
		return ""
	}
	return lib.title + " - " + lib.description
}

// IsLibrary reports whether id names a known library.
func IsLibrary(id string) bool {
	_, ok := libraryRegistry[id]
	return ok
}

// FilterLibraries drops unknown identifiers, preserving selection order.
// Unknown entries are skipped silently.
func FilterLibraries(ids []string) []string {
	var out []string
	for _, id := range ids {
		if IsLibrary(id) {
			out = append(out, id)
		}
	}
	return out
}

// Library renders the stub file for a known library identifier. The second
// return value reports whether the identifier is known.
func (c *Catalog) Library(id string, d *Data) (string, bool, error) {
	lib, ok := libraryRegistry[id]
	if !ok {
		return "", false, nil
	}
	out, err := c.engine.Render(lib.template, d)
	return out, true, err
}
