package catalog

const entryHeaderTemplate = `<?php
/**
 * The plugin bootstrap file.
 *
 * @package {{.Namespace}}
 *
 * @wordpress-plugin
 * Plugin Name:       {{.Name}}
 * Plugin URI:        {{.PluginURI}}
 * Description:       {{.Description}}
 * Version:           {{.Version}}
 * Requires at least: {{.RequiresAtLeast}}
 * Requires PHP:      {{.RequiresPHP}}
 * Author:            {{.Author}}
 * Author URI:        {{.AuthorURI}}
 * License:           GPL-2.0+
 * License URI:       http://www.gnu.org/licenses/gpl-2.0.txt
 * Text Domain:       {{.Slug}}
 * Domain Path:       /languages
 */

// If this file is called directly, abort.
if ( ! defined( 'WPINC' ) ) {
	die;
}

define( '{{.ConstantToken}}_VERSION', '{{.Version}}' );
`

const entryUpdateCheckerTemplate = `
/**
 * Keep the plugin updatable straight from its repository.
 */
if ( file_exists( plugin_dir_path( __FILE__ ) . 'vendor/autoload.php' ) ) {
	require plugin_dir_path( __FILE__ ) . 'vendor/autoload.php';

	$update_checker_{{.FunctionToken}} = \YahnisElsts\PluginUpdateChecker\v5\PucFactory::buildUpdateChecker(
		'{{.RepositoryURL}}',
		__FILE__,
		'{{.Slug}}'
	);
	$update_checker_{{.FunctionToken}}->setBranch( '{{.Branch}}' );
}
`

const entryBootstrapTemplate = `
/**
 * Runs during plugin activation.
 */
function activate_{{.FunctionToken}}() {
	require_once plugin_dir_path( __FILE__ ) . 'includes/class-{{.Slug}}-activator.php';
	{{.Namespace}}_Activator::activate();
}

/**
 * Runs during plugin deactivation.
 */
function deactivate_{{.FunctionToken}}() {
	require_once plugin_dir_path( __FILE__ ) . 'includes/class-{{.Slug}}-deactivator.php';
	{{.Namespace}}_Deactivator::deactivate();
}

register_activation_hook( __FILE__, 'activate_{{.FunctionToken}}' );
register_deactivation_hook( __FILE__, 'deactivate_{{.FunctionToken}}' );

/**
 * The core plugin class.
 */
require plugin_dir_path( __FILE__ ) . 'includes/class-{{.Slug}}.php';

/**
 * Begins execution of the plugin.
 */
function run_{{.FunctionToken}}() {
	$plugin = new {{.Namespace}}();
	$plugin->run();
}
run_{{.FunctionToken}}();
`

// EntryFile renders the plugin's main file: the header block, an
// update-checker block when a repository URL is configured, and the
// activation/deactivation bootstrap.
func (c *Catalog) EntryFile(d *Data) (string, error) {
	out, err := c.engine.Render(entryHeaderTemplate, d)
	if err != nil {
		return "", err
	}

	if d.RepositoryURL != "" {
		block, err := c.engine.Render(entryUpdateCheckerTemplate, d)
		if err != nil {
			return "", err
		}
		out += block
	}

	bootstrap, err := c.engine.Render(entryBootstrapTemplate, d)
	if err != nil {
		return "", err
	}

	return out + bootstrap, nil
}
