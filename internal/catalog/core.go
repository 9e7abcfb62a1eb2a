package catalog

const activatorTemplate = `<?php
/**
 * Fired during plugin activation.
 *
 * @package {{.Namespace}}
 */
class {{.Namespace}}_Activator {

	/**
	 * Runs once when the plugin is activated.
	 */
	public static function activate() {

	}

}
`

const deactivatorTemplate = `<?php
/**
 * Fired during plugin deactivation.
 *
 * @package {{.Namespace}}
 */
class {{.Namespace}}_Deactivator {

	/**
	 * Runs once when the plugin is deactivated.
	 */
	public static function deactivate() {

	}

}
`

const loaderTemplate = `<?php
/**
 * Registers all actions and filters for the plugin.
 *
 * @package {{.Namespace}}
 */
class {{.Namespace}}_Loader {

	/**
	 * The actions registered with WordPress.
	 *
	 * @var array
	 */
	protected $actions;

	/**
	 * The filters registered with WordPress.
	 *
	 * @var array
	 */
	protected $filters;

	public function __construct() {
		$this->actions = array();
		$this->filters = array();
	}

	/**
	 * Add a new action to the collection to be registered with WordPress.
	 */
	public function add_action( $hook, $component, $callback, $priority = 10, $accepted_args = 1 ) {
		$this->actions = $this->add( $this->actions, $hook, $component, $callback, $priority, $accepted_args );
	}

	/**
	 * Add a new filter to the collection to be registered with WordPress.
	 */
	public function add_filter( $hook, $component, $callback, $priority = 10, $accepted_args = 1 ) {
		$this->filters = $this->add( $this->filters, $hook, $component, $callback, $priority, $accepted_args );
	}

	private function add( $hooks, $hook, $component, $callback, $priority, $accepted_args ) {
		$hooks[] = array(
			'hook'          => $hook,
			'component'     => $component,
			'callback'      => $callback,
			'priority'      => $priority,
			'accepted_args' => $accepted_args,
		);

		return $hooks;
	}

	/**
	 * Register the collected filters and actions with WordPress.
	 */
	public function run() {
		foreach ( $this->filters as $hook ) {
			add_filter( $hook['hook'], array( $hook['component'], $hook['callback'] ), $hook['priority'], $hook['accepted_args'] );
		}

		foreach ( $this->actions as $hook ) {
			add_action( $hook['hook'], array( $hook['component'], $hook['callback'] ), $hook['priority'], $hook['accepted_args'] );
		}
	}

}
`

const coreClassTemplate = `<?php
/**
 * The core plugin class.
 *
 * @package {{.Namespace}}
 */
class {{.Namespace}} {

	/**
	 * Maintains and registers all hooks for the plugin.
	 *
	 * @var {{.Namespace}}_Loader
	 */
	protected $loader;

	/**
	 * The unique identifier of this plugin.
	 *
	 * @var string
	 */
	protected $plugin_name;

	/**
	 * The current version of the plugin.
	 *
	 * @var string
	 */
	protected $version;

	public function __construct() {
		if ( defined( '{{.ConstantToken}}_VERSION' ) ) {
			$this->version = {{.ConstantToken}}_VERSION;
		} else {
			$this->version = '{{.Version}}';
		}
		$this->plugin_name = '{{.Slug}}';

		$this->load_dependencies();
		$this->define_admin_hooks();
		$this->define_public_hooks();
	}

	/**
	 * Load the required dependencies for this plugin.
	 */
	private function load_dependencies() {
{{range .Libraries}}		require_once plugin_dir_path( dirname( __FILE__ ) ) . 'includes/class-{{$.Slug}}-{{.}}.php';
{{end}}{{range .Snippets}}		require_once plugin_dir_path( dirname( __FILE__ ) ) . 'includes/class-{{$.Slug}}-{{.}}.php';
{{end}}		require_once plugin_dir_path( dirname( __FILE__ ) ) . 'includes/class-{{.Slug}}-loader.php';
		require_once plugin_dir_path( dirname( __FILE__ ) ) . 'admin/class-{{.Slug}}-admin.php';
		require_once plugin_dir_path( dirname( __FILE__ ) ) . 'public/class-{{.Slug}}-public.php';

		$this->loader = new {{.Namespace}}_Loader();
	}

	/**
	 * Register all hooks related to the admin area.
	 */
	private function define_admin_hooks() {
		$plugin_admin = new {{.Namespace}}_Admin( $this->get_plugin_name(), $this->get_version() );

		$this->loader->add_action( 'admin_enqueue_scripts', $plugin_admin, 'enqueue_styles' );
		$this->loader->add_action( 'admin_enqueue_scripts', $plugin_admin, 'enqueue_scripts' );
	}

	/**
	 * Register all hooks related to the public-facing side.
	 */
	private function define_public_hooks() {
		$plugin_public = new {{.Namespace}}_Public( $this->get_plugin_name(), $this->get_version() );

		$this->loader->add_action( 'wp_enqueue_scripts', $plugin_public, 'enqueue_styles' );
		$this->loader->add_action( 'wp_enqueue_scripts', $plugin_public, 'enqueue_scripts' );
	}

	/**
	 * Run the loader to execute all registered hooks.
	 */
	public function run() {
		$this->loader->run();
	}

	public function get_plugin_name() {
		return $this->plugin_name;
	}

	public function get_loader() {
		return $this->loader;
	}

	public function get_version() {
		return $this->version;
	}

}
`

// Activator renders the activation stub.
func (c *Catalog) Activator(d *Data) (string, error) {
	return c.engine.Render(activatorTemplate, d)
}

// Deactivator renders the deactivation stub.
func (c *Catalog) Deactivator(d *Data) (string, error) {
	return c.engine.Render(deactivatorTemplate, d)
}

// Loader renders the hook loader class.
func (c *Catalog) Loader(d *Data) (string, error) {
	return c.engine.Render(loaderTemplate, d)
}

// CoreClass renders the core plugin class. One include line is emitted per
// selected library and snippet, in selection order, ahead of the fixed
// dependency loads.
func (c *Catalog) CoreClass(d *Data) (string, error) {
	return c.engine.Render(coreClassTemplate, d)
}
