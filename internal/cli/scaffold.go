package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/vlad/classgen-go/internal/composer"
	"github.com/vlad/classgen-go/internal/parser"
	"github.com/vlad/classgen-go/internal/walker"
)

var (
	scaffoldOut    string
	scaffoldDryRun bool
)

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold [project]",
	Short: "Scaffold C# classes for a Go module",
	Long: `Parse a Go module and generate one C# file per struct and interface,
plus static classes for package level functions, constants and variables.
Files are selected with the scaffold includes and excludes of the config.

Examples:
  classgen scaffold .                  # Scaffold the current module
  classgen scaffold ./svc --out cs     # Write below ./svc/cs`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScaffold,
}

func init() {
	scaffoldCmd.Flags().StringVarP(&scaffoldOut, "out", "o", "", "output directory (default from config)")
	scaffoldCmd.Flags().BoolVar(&scaffoldDryRun, "dry-run", false, "list the files without writing them")
	rootCmd.AddCommand(scaffoldCmd)
}

func runScaffold(cmd *cobra.Command, args []string) error {
	path := GetRootDir()
	if len(args) > 0 {
		path = args[0]
	}
	path, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}

	cfg := GetConfig()
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Parsing %s...\n", path)
	projectInfo, err := parser.New().ParseProject(path)
	if err != nil {
		return fmt.Errorf("failed to parse project: %w", err)
	}

	selected, err := walker.New(cfg.Scaffold.Includes, cfg.Scaffold.Excludes).Walk(path)
	if err != nil {
		return err
	}

	c := composer.New(projectInfo, cfg.ComposerOptions()...)
	var files []composer.File
	for _, goFile := range selected {
		if _, ok := projectInfo[goFile]; !ok {
			continue
		}
		composed, err := c.Compose(goFile)
		if err != nil {
			return err
		}
		files = append(files, composed...)
	}
	sort.SliceStable(files, func(i, j int) bool { return files[i].Path < files[j].Path })

	outDir := outputDir(path, scaffoldOut, cfg)
	if scaffoldDryRun {
		printDryRun(out, outDir, files)
		return nil
	}
	return writeFiles(cmd.Context(), out, path, outDir, cfg, files)
}
