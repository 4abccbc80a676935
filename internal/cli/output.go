package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/vlad/classgen-go/internal/composer"
	"github.com/vlad/classgen-go/internal/config"
	"github.com/vlad/classgen-go/internal/store"
	"github.com/vlad/classgen-go/internal/writer"
)

// outputDir resolves the output directory against the root.
func outputDir(root, flagValue string, c *config.Config) string {
	dir := flagValue
	if dir == "" {
		dir = c.Output.Dir
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(root, dir)
}

// writeFiles writes files below outDir with a progress bar and prints a
// summary. The output cache lives under root.
func writeFiles(ctx context.Context, out io.Writer, root, outDir string, c *config.Config, files []composer.File) error {
	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetWriter(out),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("[cyan]Writing[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(out)
		}),
	)

	opts := []writer.Option{
		writer.WithWorkers(c.Output.Workers),
		writer.WithProgress(func(string, bool) { _ = bar.Add(1) }),
	}

	if c.Output.Cache {
		if err := config.EnsureDir(root); err != nil {
			return fmt.Errorf("failed to create %s directory: %w", config.Dir, err)
		}
		st, err := store.Open(config.CacheDBPath(root))
		if err != nil {
			return fmt.Errorf("failed to open output cache: %w", err)
		}
		defer st.Close()
		opts = append(opts, writer.WithStore(st))
	}

	w := writer.New(outDir, opts...)
	if err := w.WriteAll(ctx, files); err != nil {
		_ = bar.Exit()
		color.New(color.FgRed).Fprintf(out, "Generation failed: %v\n", err)
		return err
	}
	_ = bar.Finish()

	m := w.Metrics()
	color.New(color.FgGreen).Fprintf(out, "Generated %d files (%d bytes)", m.Written, m.Bytes)
	if m.Skipped > 0 {
		color.New(color.FgYellow).Fprintf(out, ", %d unchanged", m.Skipped)
	}
	fmt.Fprintf(out, "\nOutput: %s\n", outDir)
	return nil
}

func printDryRun(out io.Writer, outDir string, files []composer.File) {
	color.New(color.FgCyan).Fprintf(out, "Would generate %d files in %s:\n", len(files), outDir)
	for _, f := range files {
		fmt.Fprintf(out, "  - %s\n", color.YellowString(f.Path))
	}
}
