package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	orchestrators "github.com/ochairo/req2poetry/internal/domain-orchestrators"
	"github.com/ochairo/req2poetry/internal/domain/entities"
	"github.com/ochairo/req2poetry/internal/domain/interfaces"
	"github.com/ochairo/req2poetry/internal/domain/services"
	"github.com/ochairo/req2poetry/internal/external-adapters/yaml"
)

func main() {
	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "help", "-h", "--help":
			printUsage(os.Stdout)
			return
		}
	}

	fs := flag.NewFlagSet("req2poetry", flag.ExitOnError)
	var (
		outputDir  = fs.String("output-dir", ".", "Directory to write pyproject.toml and poetry.toml into")
		name       = fs.String("name", "", "Project name (default: sanitized current directory name)")
		configPath = fs.String("config", "", "Path to a .req2poetry.yml metadata-override file")
		verbose    = fs.Bool("verbose", false, "Show per-line debug output")
	)

	fs.Usage = func() {
		printUsage(os.Stderr)
	}

	if err := fs.Parse(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	args := fs.Args()
	if len(args) < 1 {
		fs.Usage()
		os.Exit(1)
	}

	requirementsPath := args[0]
	pythonVersion := ""
	if len(args) >= 2 {
		pythonVersion = args[1]
	}

	// Validate the input before anything is written
	if info, err := os.Stat(requirementsPath); err != nil || info.IsDir() {
		fmt.Fprintf(os.Stderr, "Error: requirements file not found: %s\n", requirementsPath)
		os.Exit(1)
	}

	// Assemble project metadata: derived defaults, then config overrides,
	// then explicit command-line arguments
	projectName := *name
	if projectName == "" {
		projectName = deriveProjectName()
	}
	meta := entities.NewProjectMeta(projectName, filepath.Base(requirementsPath))

	if *configPath != "" {
		overrides, err := yaml.NewMetadataParser().ParseFile(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		meta.Apply(overrides)
	}

	if pythonVersion != "" {
		meta.PythonVersion = pythonVersion
	}

	logger := &interfaces.StderrLogger{Verbose: *verbose}
	orchestrator := orchestrators.NewConvertOrchestrator(logger, orchestrators.ConvertOrchestratorConfig{
		OutputDir: *outputDir,
	})

	result, err := orchestrator.Convert(meta, requirementsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printSummary(result, meta)
}

func printUsage(w *os.File) {
	fmt.Fprintln(w, `req2poetry - Convert a pip requirements file to a Poetry project

Usage:
  req2poetry [options] <requirements-file> [python-version]

Arguments:
  requirements-file  Path to the requirements.txt to convert (required)
  python-version     Target python version for the caret constraint (default 3.12)

Options:
  -output-dir string  Directory to write pyproject.toml and poetry.toml into (default ".")
  -name string        Project name (default: sanitized current directory name)
  -config string      Path to a .req2poetry.yml metadata-override file
  -verbose            Show per-line debug output

Examples:
  req2poetry requirements.txt
  req2poetry requirements.txt 3.10
  req2poetry -name my-service -config .req2poetry.yml requirements.txt`)
}

func printSummary(result *orchestrators.ConvertResult, meta entities.ProjectMeta) {
	fmt.Printf("Created %s and %s\n\n", result.ManifestPath, result.EnvConfigPath)
	fmt.Printf("  Project:      %s %s\n", meta.Name, meta.Version)
	fmt.Printf("  Dependencies: %d parsed, %d skipped", result.Parsed, result.Skipped)
	if result.Flagged() > 0 {
		fmt.Printf(", %d flagged with FIXME comments", result.Flagged())
	}
	fmt.Println()

	fmt.Println("\nNext steps:")
	if result.Flagged() > 0 {
		fmt.Printf("  1. Resolve the FIXME entries in %s\n", result.ManifestPath)
		fmt.Println("  2. Run: poetry install")
	} else {
		fmt.Println("  1. Run: poetry install")
	}
}

// deriveProjectName falls back to the sanitized basename of the current
// working directory.
func deriveProjectName() string {
	cwd, err := os.Getwd()
	if err != nil {
		return services.SanitizeProjectName("")
	}
	return services.SanitizeProjectName(filepath.Base(cwd))
}
