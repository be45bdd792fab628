// Package orchestrators coordinates the conversion workflow across the domain
// services and the filesystem.
package orchestrators

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ochairo/req2poetry/internal/domain/entities"
	"github.com/ochairo/req2poetry/internal/domain/interfaces"
	"github.com/ochairo/req2poetry/internal/domain/services"
)

// Generated file names, created in the output directory
const (
	ManifestFileName  = "pyproject.toml"
	EnvConfigFileName = "poetry.toml"
)

// ConvertOrchestrator coordinates the requirements-to-manifest conversion:
// read once, classify every line, render both documents, then a single write
// pass. Malformed or unsupported lines never abort the run; they degrade to
// annotated FIXME comments in the manifest.
type ConvertOrchestrator struct {
	logger    interfaces.Logger
	outputDir string
}

// ConvertOrchestratorConfig holds configuration for the orchestrator
type ConvertOrchestratorConfig struct {
	OutputDir string
}

// NewConvertOrchestrator creates a new convert orchestrator
func NewConvertOrchestrator(logger interfaces.Logger, config ConvertOrchestratorConfig) *ConvertOrchestrator {
	outputDir := config.OutputDir
	if outputDir == "" {
		outputDir = "."
	}

	return &ConvertOrchestrator{
		logger:    logger,
		outputDir: outputDir,
	}
}

// ConvertResult contains the result of a conversion
type ConvertResult struct {
	ManifestPath  string
	EnvConfigPath string
	Parsed        int
	Skipped       int
	Complex       int
	Unparseable   int
}

// Flagged returns the number of lines surfaced for manual attention.
func (r *ConvertResult) Flagged() int {
	return r.Complex + r.Unparseable
}

// Convert executes the conversion workflow for one requirements file.
// Errors occur only before any output file is written.
func (o *ConvertOrchestrator) Convert(meta entities.ProjectMeta, requirementsPath string) (*ConvertResult, error) {
	// Step 1: Read the requirements file
	data, err := os.ReadFile(requirementsPath) //nolint:gosec // G304: user-supplied input path
	if err != nil {
		return nil, fmt.Errorf("failed to read requirements file: %w", err)
	}

	// Step 2: Classify every line and collect manifest fragments in input order
	result := &ConvertResult{}
	lines := strings.Split(string(data), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		// Drop the phantom line after a trailing newline
		lines = lines[:len(lines)-1]
	}
	fragments := make([]string, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		c := services.Classify(line)

		switch c.Kind {
		case entities.KindSkip:
			result.Skipped++
			if services.IsFlagLine(line) {
				o.logger.Info("skipping pip flag", interfaces.F("line", strings.TrimSpace(line)))
			}
		case entities.KindComplex:
			result.Complex++
			o.logger.Warn("complex requirement needs manual attention", interfaces.F("line", c.Original))
		case entities.KindUnparseable:
			result.Unparseable++
		case entities.KindParsed:
			result.Parsed++
			o.logger.Debug("parsed requirement",
				interfaces.F("name", c.Name),
				interfaces.F("constraint", c.Constraint))
		}

		if fragment, ok := services.FragmentFor(c); ok {
			fragments = append(fragments, fragment)
		}
	}

	// Step 3: Render both documents before touching the filesystem
	manifest := services.RenderPyproject(meta, fragments)
	envConfig := services.RenderPoetryConfig()

	// Step 4: Single write pass
	if err := os.MkdirAll(o.outputDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	result.EnvConfigPath = filepath.Join(o.outputDir, EnvConfigFileName)
	if err := os.WriteFile(result.EnvConfigPath, []byte(envConfig), 0600); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", EnvConfigFileName, err)
	}

	result.ManifestPath = filepath.Join(o.outputDir, ManifestFileName)
	if err := os.WriteFile(result.ManifestPath, []byte(manifest), 0600); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", ManifestFileName, err)
	}

	return result, nil
}
