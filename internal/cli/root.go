package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vlad/classgen-go/internal/config"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
)

var rootCmd = &cobra.Command{
	Use:   "classgen",
	Short: "Generate C# class skeletons from Go code and YAML blueprints",
	Long: `classgen renders C# source units. It scaffolds classes for the
declarations of a Go module and renders hand written YAML blueprints.

Example usage:
  classgen scaffold .                 # Scaffold the module in the current directory
  classgen scaffold --dry-run ./svc   # List what would be generated
  classgen render models/*.yaml       # Render blueprints`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./classgen.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
}

// GetConfig returns the loaded configuration.
func GetConfig() *config.Config {
	return cfg
}

// GetRootDir returns the root directory.
func GetRootDir() string {
	return rootDir
}

