package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/vlad/classgen-go/internal/blueprint"
	"github.com/vlad/classgen-go/internal/composer"
	"github.com/vlad/classgen-go/internal/walker"
)

var (
	renderOut    string
	renderStdout bool
)

var renderCmd = &cobra.Command{
	Use:   "render [blueprint...]",
	Short: "Render C# classes from YAML blueprints",
	Long: `Render every given blueprint file. Without arguments the blueprints
matching the render patterns of the config are rendered.

Examples:
  classgen render user.classgen.yaml   # Render one blueprint
  classgen render --stdout             # Print every configured blueprint`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "output directory (default from config)")
	renderCmd.Flags().BoolVar(&renderStdout, "stdout", false, "print the rendered units instead of writing them")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	root, err := filepath.Abs(GetRootDir())
	if err != nil {
		return fmt.Errorf("invalid root: %w", err)
	}
	out := cmd.OutOrStdout()

	paths := args
	if len(paths) == 0 {
		paths, err = walker.New(cfg.Render.Blueprints, cfg.Render.Excludes).Walk(root)
		if err != nil {
			return err
		}
	}
	if len(paths) == 0 {
		return fmt.Errorf("no blueprints found in %s", root)
	}

	files := make([]composer.File, 0, len(paths))
	for _, path := range paths {
		b, err := blueprint.Load(path)
		if err != nil {
			return err
		}
		f, err := b.File()
		if err != nil {
			return err
		}
		files = append(files, f)
	}

	if renderStdout {
		fmt.Fprint(out, composer.JoinFiles(files))
		return nil
	}
	return writeFiles(cmd.Context(), out, root, outputDir(root, renderOut, cfg), cfg, files)
}
