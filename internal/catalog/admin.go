package catalog

const adminTemplate = `<?php
/**
 * The admin-specific functionality of the plugin.
 *
 * @package {{.Namespace}}
 */
class {{.Namespace}}_Admin {

	/**
	 * The ID of this plugin.
	 *
	 * @var string
	 */
	private $plugin_name;

	/**
	 * The version of this plugin.
	 *
	 * @var string
	 */
	private $version;

	public function __construct( $plugin_name, $version ) {
		$this->plugin_name = $plugin_name;
		$this->version     = $version;
	}

	/**
	 * Register the stylesheets for the admin area.
	 */
	public function enqueue_styles() {
		wp_enqueue_style( $this->plugin_name, plugin_dir_url( __FILE__ ) . 'css/{{.Slug}}-admin.css', array(), $this->version, 'all' );
	}

	/**
	 * Register the JavaScript for the admin area.
	 */
	public function enqueue_scripts() {
		wp_enqueue_script( $this->plugin_name, plugin_dir_url( __FILE__ ) . 'js/{{.Slug}}-admin.js', array( 'jquery' ), $this->version, false );
	}

}
`

const publicTemplate = `<?php
/**
 * The public-facing functionality of the plugin.
 *
 * @package {{.Namespace}}
 */
class {{.Namespace}}_Public {

	/**
	 * The ID of this plugin.
	 *
	 * @var string
	 */
	private $plugin_name;

	/**
	 * The version of this plugin.
	 *
	 * @var string
	 */
	private $version;

	public function __construct( $plugin_name, $version ) {
		$this->plugin_name = $plugin_name;
		$this->version     = $version;
	}

	/**
	 * Register the stylesheets for the public-facing side of the site.
	 */
	public function enqueue_styles() {
		wp_enqueue_style( $this->plugin_name, plugin_dir_url( __FILE__ ) . 'css/{{.Slug}}-public.css', array(), $this->version, 'all' );
	}

	/**
	 * Register the JavaScript for the public-facing side of the site.
	 */
	public function enqueue_scripts() {
		wp_enqueue_script( $this->plugin_name, plugin_dir_url( __FILE__ ) . 'js/{{.Slug}}-public.js', array( 'jquery' ), $this->version, false );
	}

}
`

// Admin renders the admin-area stub class.
func (c *Catalog) Admin(d *Data) (string, error) {
	return c.engine.Render(adminTemplate, d)
}

// Public renders the public-facing stub class.
func (c *Catalog) Public(d *Data) (string, error) {
	return c.engine.Render(publicTemplate, d)
}
