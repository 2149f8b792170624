// Package compiler orchestrates a single layout compilation: read the
// source file, parse it into a layout, emit the definition document, and
// write the output (plus an optional build manifest).
package compiler

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/wirefish/Wyrm/internal/layout"
)

// Job names the files of one compilation. ManifestPath may be empty to
// skip the manifest.
type Job struct {
	InputPath    string
	OutputPath   string
	ManifestPath string
}

// Compiler runs layout compilation jobs.
type Compiler struct {
	logger *zap.Logger
}

// New constructs a Compiler.
//
// Precondition: logger must be non-nil.
func New(logger *zap.Logger) *Compiler {
	return &Compiler{logger: logger}
}

// Run compiles job.InputPath and writes the definition document to
// job.OutputPath. The whole document (and the manifest) is rendered in
// memory first; on any failure nothing is written and the error is
// returned.
//
// Postcondition: on success both output files exist and are complete.
func (c *Compiler) Run(job Job) error {
	overall := time.Now()

	f, err := os.Open(job.InputPath)
	if err != nil {
		return fmt.Errorf("opening input %s: %w", job.InputPath, err)
	}
	defer f.Close()

	lay, err := layout.Parse(f)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", job.InputPath, err)
	}
	if lay.Grid != nil {
		c.logger.Info("map parsed",
			zap.Int("cols", lay.Grid.Cols),
			zap.Int("rows", lay.Grid.Rows),
		)
	}

	res, err := layout.Emit(lay)
	if err != nil {
		return fmt.Errorf("emitting definitions for %s: %w", job.InputPath, err)
	}

	var manifestData []byte
	if job.ManifestPath != "" {
		manifest, err := lay.BuildManifest()
		if err != nil {
			return fmt.Errorf("building manifest for %s: %w", job.InputPath, err)
		}
		manifestData, err = yaml.Marshal(manifest)
		if err != nil {
			return fmt.Errorf("serialising manifest for %s: %w", job.InputPath, err)
		}
	}

	if err := os.WriteFile(job.OutputPath, res.Document, 0644); err != nil {
		return fmt.Errorf("writing output to %s: %w", job.OutputPath, err)
	}
	if manifestData != nil {
		if err := os.WriteFile(job.ManifestPath, manifestData, 0644); err != nil {
			return fmt.Errorf("writing manifest to %s: %w", job.ManifestPath, err)
		}
	}

	c.logger.Info("defined locations",
		zap.Int("locations", res.Locations),
		zap.String("output", job.OutputPath),
		zap.Duration("elapsed", time.Since(overall).Round(time.Millisecond)),
	)
	return nil
}
