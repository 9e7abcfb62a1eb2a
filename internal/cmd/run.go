package cmd

import (
	"context"
	"os"

	"github.com/schollz/progressbar/v3"

	"github.com/plugsmith/plugsmith-cli/internal/generator"
)

// runGenerator executes the plugin generator with a progress bar over the
// artifact list. A dry run supplies the artifact count up front; it also
// surfaces validation and destination errors before anything is written.
func runGenerator(ctx context.Context, opts generator.Options) (*generator.Result, error) {
	gen, err := generator.Get("plugin")
	if err != nil {
		return nil, err
	}

	preview := opts
	preview.DryRun = true
	preview.Observer = nil
	planned, err := gen.Generate(ctx, preview)
	if err != nil {
		return nil, err
	}

	bar := progressbar.NewOptions(len(planned.Artifacts),
		progressbar.OptionSetDescription("Writing plugin files"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	opts.Observer = func(string) {
		_ = bar.Add(1)
	}

	result, err := gen.Generate(ctx, opts)
	_ = bar.Finish()
	return result, err
}
