package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/go-ember/ember/cmd/ember/internal/config"
	"github.com/go-ember/ember/pkg/theme"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor [dir]",
	Short: "Validate the project manifest and theme overrides",
	Long: `Reads ember.yaml from the given directory (default ".") and checks
the module path, the engine version constraint, and any referenced
theme override file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	cfg, err := config.LoadOptional(dir)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.App.Name == "" && cfg.App.Module == "" {
		fmt.Fprintln(os.Stdout, "no ember.yaml found, using defaults")
	} else {
		fmt.Fprintf(os.Stdout, "manifest ok: %s\n", cfg.App.Name)
	}

	if cfg.Theme != "" {
		path := filepath.Join(dir, cfg.Theme)
		ov, err := theme.LoadOptional(path)
		if err != nil {
			return err
		}
		th := theme.Default()
		if err := ov.Apply(th); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "theme overrides ok: %s\n", cfg.Theme)
	}
	return nil
}
