package main

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wirefish/Wyrm/internal/compiler"
	"github.com/wirefish/Wyrm/internal/config"
	"github.com/wirefish/Wyrm/internal/observability"
)

var compileCmd = &cobra.Command{
	Use:   "compile <layout-file>",
	Short: "Compile a region layout into definition text",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompile,
}

func init() {
	compileCmd.Flags().StringP("output", "o", "", "output path (default: <input basename>.wyrm)")
	compileCmd.Flags().String("manifest", "", "also write a YAML build manifest to this path")
	rootCmd.AddCommand(compileCmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer logger.Sync()

	job, err := makeJob(cmd, cfg, args[0])
	if err != nil {
		return err
	}
	return compiler.New(logger).Run(job)
}

// makeJob resolves the output and manifest paths for one input file,
// applying the configured output directory to relative paths.
func makeJob(cmd *cobra.Command, cfg config.Config, input string) (compiler.Job, error) {
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return compiler.Job{}, err
	}
	if output == "" {
		base := filepath.Base(input)
		output = strings.TrimSuffix(base, filepath.Ext(base)) + ".wyrm"
	}
	if !filepath.IsAbs(output) && cfg.Compiler.OutputDir != "" {
		output = filepath.Join(cfg.Compiler.OutputDir, output)
	}

	manifest, err := cmd.Flags().GetString("manifest")
	if err != nil {
		return compiler.Job{}, err
	}
	if manifest == "" && cfg.Compiler.Manifest {
		manifest = output + ".manifest.yaml"
	}

	return compiler.Job{InputPath: input, OutputPath: output, ManifestPath: manifest}, nil
}
