// Package generator drives a Java client generation run: it prepares the
// output directory, loads the introspection schema and hands both to the
// Java generator.
package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/andrewkroh/gqljavagen/internal/introspection"
	"github.com/andrewkroh/gqljavagen/internal/javagen"
	"github.com/andrewkroh/gqljavagen/internal/pathutil"
)

// Config holds all configuration for a generator run.
type Config struct {
	SchemaPath        string // JSON introspection result
	LicenseHeaderPath string // prepended to every generated file
	LicenseTemplate   bool   // render the license header with pongo2
	PackageName       string // Java package of the generated classes
	OutputDir         string // created if absent

	ScalarsFile       string // optional YAML file with extra scalar mappings
	NestUnder         string
	IncludeDeprecated bool

	// Separators controls path normalization. The zero value leaves paths
	// untouched.
	Separators pathutil.Separators

	// Logger receives progress output. Defaults to a logger on stdout.
	Logger *log.Logger
}

// Run executes the full code generation pipeline. Errors are returned as
// soon as they occur; files already written are left in place.
func Run(cfg Config) error {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(os.Stdout)
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}
	logger.Info("### WORKDIR: " + wd)

	// 1. Normalize paths.
	schemaPath := pathutil.Normalize(cfg.SchemaPath, cfg.Separators)
	licensePath := pathutil.Normalize(cfg.LicenseHeaderPath, cfg.Separators)
	outputDir := pathutil.Normalize(cfg.OutputDir, cfg.Separators)

	logger.Debug("generate", "schema", absPath(schemaPath),
		"license_header", absPath(licensePath),
		"package", cfg.PackageName,
		"output", absPath(outputDir))

	// 2. Create the output directory.
	if err := EnsureDir(outputDir); err != nil {
		return err
	}

	// 3. Parse the schema.
	schema, err := introspection.Load(schemaPath)
	if err != nil {
		return fmt.Errorf("loading schema: %w", err)
	}

	// 4. Configure the Java generator.
	scalars := DefaultScalars()
	if cfg.ScalarsFile != "" {
		extra, err := LoadScalars(pathutil.Normalize(cfg.ScalarsFile, cfg.Separators))
		if err != nil {
			return fmt.Errorf("loading scalars: %w", err)
		}
		scalars = MergeScalars(scalars, extra)
	}

	gen, err := javagen.New(schema, javagen.Config{
		PackageName:       cfg.PackageName,
		LicenseHeaderFile: licensePath,
		LicenseTemplate:   cfg.LicenseTemplate,
		NestUnder:         cfg.NestUnder,
		CustomScalars:     scalars,
		IncludeDeprecated: cfg.IncludeDeprecated,
	})
	if err != nil {
		return fmt.Errorf("configuring generator: %w", err)
	}

	// 5. Emit one file per type.
	paths, err := gen.SaveGranular(outputDir)
	if err != nil {
		return fmt.Errorf("generating java sources: %w", err)
	}
	for _, p := range paths {
		logger.Debug("wrote", "file", p)
	}
	logger.Info("generated java sources", "files", len(paths), "output", outputDir)
	return nil
}

// EnsureDir creates dir and any missing parents. It succeeds if dir
// already exists.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	return nil
}

// absPath is used for log output only; it falls back to p on error.
func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
