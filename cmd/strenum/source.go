package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"strenum/internal/analyze"
	"strenum/internal/config"
	"strenum/internal/gen"
	"strenum/internal/manifest"
	"strenum/internal/plan"
)

// source is what a front-end produced for one invocation.
type source struct {
	// Package is the package name of the generated file.
	Package  string
	Requests []plan.Request
	// Dir and Filename locate the generated file.
	Dir      string
	Filename string
	// Manifest is set when the enums come from a manifest.
	Manifest *manifest.File
}

// loadSource runs the front-end selected by cfg.
func loadSource(cfg config.Config) (*source, error) {
	var src *source

	if cfg.Manifest != "" {
		f, err := manifest.LoadFile(cfg.Manifest)
		if err != nil {
			return nil, err
		}

		if diags := manifest.Validate(f); diags.HasErrors() {
			return nil, fmt.Errorf("invalid manifest %s: %w", cfg.Manifest, diags.Error())
		}

		dir := filepath.Dir(cfg.Manifest)
		src = &source{
			Package:  f.Package,
			Requests: f.Requests(),
			Dir:      filepath.Join(dir, filepath.Dir(f.Output)),
			Filename: filepath.Base(f.Output),
			Manifest: f,
		}
	} else {
		a := analyze.NewAnalyzer(analyze.Config{Tags: cfg.Tags})

		info, err := a.LoadPackage(cfg.Patterns, cfg.Types...)
		if err != nil {
			return nil, err
		}

		src = &source{
			Package:  info.Name,
			Requests: info.Requests(),
			Dir:      info.Dir,
			Filename: gen.DefaultFilename(cfg.Types),
			Manifest: manifest.FromRequests(info.Name, info.Requests()),
		}
	}

	src.applyOutput(cfg.Output)

	return src, nil
}

// applyOutput overrides the generated file location. A bare file name is
// placed in the default directory; a path is used as given.
func (s *source) applyOutput(output string) {
	if output == "" {
		return
	}

	if !strings.ContainsRune(output, filepath.Separator) && !strings.ContainsRune(output, '/') {
		s.Filename = output
		return
	}

	s.Dir = filepath.Dir(output)
	s.Filename = filepath.Base(output)
}
