package main

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"strenum/internal/manifest"
	"strenum/internal/plan"
)

// analysisReport is the YAML document printed by the analyze command.
type analysisReport struct {
	// Manifest restates the declarations; for Go sources it can seed a
	// manifest file.
	Manifest *manifest.File `yaml:"manifest"`
	Enums    []enumReport   `yaml:"enums"`
}

type enumReport struct {
	Type            string       `yaml:"type"`
	Representations []pairReport `yaml:"representations"`
	ExactOrder      []string     `yaml:"exact_order"`
	PrefixOrder     []string     `yaml:"prefix_order"`
	Longest         string       `yaml:"longest"`
	MaxLen          int          `yaml:"max_len"`
	Diagnostics     []string     `yaml:"diagnostics,omitempty"`
}

type pairReport struct {
	Name string `yaml:"name"`
	Repr string `yaml:"repr"`
}

func buildReport(src *source, p *plan.ResolvedPackagePlan) *analysisReport {
	r := &analysisReport{
		Manifest: src.Manifest,
		Enums:    make([]enumReport, 0, len(p.Enums)),
	}

	for _, e := range p.Enums {
		er := enumReport{
			Type:            e.Type,
			Representations: make([]pairReport, len(e.Variants)),
			ExactOrder:      plan.Names(e.Exact),
			PrefixOrder:     plan.Names(e.Prefix),
			Longest:         e.Longest,
			MaxLen:          e.MaxLen,
		}

		for i, v := range e.Variants {
			er.Representations[i] = pairReport{Name: v.Name, Repr: v.Repr}
		}

		for _, d := range e.Diagnostics.All() {
			er.Diagnostics = append(er.Diagnostics, d.String())
		}

		r.Enums = append(r.Enums, er)
	}

	return r
}

func writeAnalysis(w io.Writer, src *source, p *plan.ResolvedPackagePlan) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(buildReport(src, p)); err != nil {
		return fmt.Errorf("encoding analysis: %w", err)
	}

	return enc.Close()
}
