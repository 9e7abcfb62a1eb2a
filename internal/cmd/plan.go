package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/plugsmith/plugsmith-cli/internal/config"
	"github.com/plugsmith/plugsmith-cli/internal/generator"
	"github.com/plugsmith/plugsmith-cli/internal/output"
	"github.com/plugsmith/plugsmith-cli/internal/plugin"
)

// Debounce window for editor save bursts.
const planDebounce = 200 * time.Millisecond

var (
	planManifest string
	planOutput   string
	planWatch    bool
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Preview the files a manifest would generate",
	Long: `Print the artifact list a manifest would produce, without writing
anything.

With --watch, the manifest is re-planned every time it changes, which is
handy while iterating on one in an editor.

Examples:
  plugsmith plan --manifest plugsmith.yaml
  plugsmith plan --manifest plugsmith.yaml --watch`,
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)

	planCmd.Flags().StringVarP(&planManifest, "manifest", "m", plugin.ManifestFileName, "Path to the plugin manifest")
	planCmd.Flags().StringVarP(&planOutput, "output", "o", "", "Directory the plugin folder would be created in (overrides the manifest)")
	planCmd.Flags().BoolVarP(&planWatch, "watch", "w", false, "Re-plan whenever the manifest changes")
}

func runPlan(cmd *cobra.Command, args []string) error {
	if err := printPlan(); err != nil {
		if !planWatch {
			return err
		}
		// In watch mode a broken manifest is a transient state, not a
		// reason to exit.
		output.Error("plan failed", "error", err)
	}

	if !planWatch {
		return nil
	}

	return watchPlan(cmd.Context())
}

func printPlan() error {
	opts, err := plugin.LoadManifest(planManifest)
	if err != nil {
		return err
	}
	if planOutput != "" {
		opts.OutputDir = planOutput
	}

	cfg, err := config.NewLoader().Load("")
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if opts.OutputDir == "" {
		opts.OutputDir = cfg.OutputDir
	}

	gen, err := generator.Get("plugin")
	if err != nil {
		return err
	}

	result, err := gen.Generate(context.Background(), generator.Options{
		Plugin:   opts,
		Defaults: cfg,
		DryRun:   true,
	})
	if err != nil {
		return err
	}

	output.Println(fmt.Sprintf("Would create %s/", result.PluginPath))
	for _, rel := range result.Artifacts {
		output.Println("  " + rel)
	}
	return nil
}

// watchPlan re-runs printPlan whenever the manifest file changes. Events
// are debounced because editors tend to fire several per save.
func watchPlan(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: many editors replace the file
	// on save, which drops a file-level watch.
	manifestDir := filepath.Dir(planManifest)
	manifestName := filepath.Base(planManifest)
	if err := watcher.Add(manifestDir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", manifestDir, err)
	}

	output.Info("watching manifest", "path", planManifest)

	var pending *time.Timer
	replan := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != manifestName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(planDebounce, func() {
				select {
				case replan <- struct{}{}:
				default:
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			output.Warn("watch error", "error", err)

		case <-replan:
			output.Println("")
			if err := printPlan(); err != nil {
				output.Error("plan failed", "error", err)
			}
		}
	}
}
