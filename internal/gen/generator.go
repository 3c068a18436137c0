package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"strings"

	"go.uber.org/zap"

	"strenum/internal/common"
	"strenum/internal/plan"
)

// ErrImportConflict is returned when an enum identifier shadows a package
// imported by the generated file.
var ErrImportConflict = errors.New("identifier conflicts with generated import")

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Command is recorded in the "Code generated" header.
	Command string
	// Filename is the name of the generated file.
	Filename string
	// OutputDir is where unformatted output is dumped when formatting fails.
	OutputDir string
	// TextMarshaling enables MarshalText/UnmarshalText.
	TextMarshaling bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Command:        "strenum",
		Filename:       "strenum.go",
		TextMarshaling: true,
	}
}

// Generator generates Go code from a resolved package plan.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "symbol_strenum.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// fileData holds all data needed for the file template.
type fileData struct {
	Command     string
	PackageName string
	Enums       []enumData
}

// enumData holds the data of one enum for the enum template.
type enumData struct {
	*plan.EnumPlan
	Names localNames
	// Variants are the variant names in declaration order.
	Variants []string
	Text     bool
}

// Generate renders a package plan into one Go file.
// On a formatting failure the unformatted code is returned with the error.
func (g *Generator) Generate(p *plan.ResolvedPackagePlan) (*GeneratedFile, error) {
	data, err := g.buildFileData(p)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort: write unformatted code to a sidecar file to aid debugging.
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, g.config.Filename, buf.Bytes())
		}

		return &GeneratedFile{
			Filename: g.config.Filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	common.Logger().Debug("generated file",
		zap.String("file", g.config.Filename),
		zap.String("package", p.Package),
		zap.Int("enums", len(p.Enums)),
		zap.Int("bytes", len(formatted)))

	return &GeneratedFile{
		Filename: g.config.Filename,
		Content:  formatted,
	}, nil
}

func (g *Generator) buildFileData(p *plan.ResolvedPackagePlan) (*fileData, error) {
	data := &fileData{
		Command:     g.config.Command,
		PackageName: p.Package,
		Enums:       make([]enumData, 0, len(p.Enums)),
	}

	for _, e := range p.Enums {
		variants := make([]string, len(e.Variants))
		for i, v := range e.Variants {
			variants[i] = v.Name
		}

		if err := checkImportConflicts(e.Type, variants); err != nil {
			return nil, err
		}

		data.Enums = append(data.Enums, enumData{
			EnumPlan: e,
			Names:    pickLocalNames(e.Type, append([]string{e.Type}, variants...)),
			Variants: variants,
			Text:     g.config.TextMarshaling,
		})
	}

	return data, nil
}

func checkImportConflicts(typeName string, variants []string) error {
	for _, imp := range importNames {
		if typeName == imp {
			return fmt.Errorf("type %s: %w", typeName, ErrImportConflict)
		}

		for _, v := range variants {
			if v == imp {
				return fmt.Errorf("%s.%s: %w", typeName, v, ErrImportConflict)
			}
		}
	}

	return nil
}

// DefaultFilename returns "<first type>_strenum.go" in lower case.
func DefaultFilename(typeNames []string) string {
	if first, ok := common.First(typeNames); ok {
		return strings.ToLower(first) + "_strenum.go"
	}

	return "strenum.go"
}
