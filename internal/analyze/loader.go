package analyze

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"

	"strenum/internal/common"
	"strenum/internal/mapping"
	"strenum/internal/match"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedCompiledGoFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

// ErrTypeNotFound is returned when a requested type does not exist.
var ErrTypeNotFound = errors.New("type not found")

// ErrNotEnum is returned when a requested type is not an integer type.
var ErrNotEnum = errors.New("not an integer type")

// GeneratedHeaderPrefix starts every file written by strenum. Such files
// are loaded without declarations so that stale output never blocks a
// regeneration.
const GeneratedHeaderPrefix = "// Code generated by \"strenum"

// Config holds options for loading packages.
type Config struct {
	// Dir is the directory patterns are resolved against. Empty means the
	// current directory.
	Dir string
	// Tags are build tags applied while loading.
	Tags []string
}

// Analyzer loads Go packages and extracts enum types.
type Analyzer struct {
	config Config
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(config Config) *Analyzer {
	return &Analyzer{config: config}
}

// LoadPackage loads the package matching patterns and extracts the named
// enum types. Patterns must resolve to exactly one package.
func (a *Analyzer) LoadPackage(patterns []string, typeNames ...string) (*PackageInfo, error) {
	if len(typeNames) == 0 {
		return nil, errors.New("no type names given")
	}

	cfg := &packages.Config{
		Mode:      LoadMode,
		Dir:       a.config.Dir,
		ParseFile: parseFile,
	}

	if len(a.config.Tags) > 0 {
		cfg.BuildFlags = []string{"-tags=" + strings.Join(a.config.Tags, ",")}
	}

	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	if len(pkgs) != 1 {
		return nil, fmt.Errorf("%d packages matching %v, expected exactly one", len(pkgs), patterns)
	}

	pkg := pkgs[0]

	if err := packageErrors(pkg); err != nil {
		return nil, err
	}

	return a.processPackage(pkg, typeNames)
}

// parseFile parses a package file for go/packages. Files previously
// generated by strenum keep only their package clause: they may refer to
// variants that no longer exist, and code elsewhere in the package that
// uses them only produces type errors, which packageErrors tolerates.
func parseFile(fset *token.FileSet, filename string, src []byte) (*ast.File, error) {
	if bytes.HasPrefix(src, []byte(GeneratedHeaderPrefix)) {
		common.Logger().Debug("skipping generated file", zap.String("file", filename))
		return parser.ParseFile(fset, filename, src, parser.PackageClauseOnly)
	}

	return parser.ParseFile(fset, filename, src, parser.AllErrors|parser.ParseComments|parser.SkipObjectResolution)
}

// packageErrors fails on list and parse errors. Type errors are logged
// and tolerated, as enum constants are still typed when unrelated code
// does not check.
func packageErrors(pkg *packages.Package) error {
	var errs []error

	for _, e := range pkg.Errors {
		if e.Kind == packages.TypeError {
			common.Logger().Warn("ignoring type error", zap.String("package", pkg.PkgPath), zap.String("error", e.Error()))
			continue
		}

		errs = append(errs, e)
	}

	if len(errs) > 0 {
		return fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	return nil
}

// processPackage extracts the requested enums from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package, typeNames []string) (*PackageInfo, error) {
	info := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	if len(pkg.GoFiles) > 0 {
		info.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	for _, name := range typeNames {
		typeName, err := lookupEnum(pkg, name)
		if err != nil {
			return nil, err
		}

		enum := &EnumInfo{
			ID:         TypeID{PkgPath: pkg.PkgPath, Name: name},
			Underlying: typeName.Type().Underlying().String(),
			Constants:  collectConstants(pkg, typeName),
		}

		common.Logger().Debug("found enum",
			zap.String("type", enum.ID.String()),
			zap.String("underlying", enum.Underlying),
			zap.Int("constants", len(enum.Constants)))

		info.Enums = append(info.Enums, enum)
	}

	return info, nil
}

// lookupEnum finds a named integer type in the package scope.
func lookupEnum(pkg *packages.Package, name string) (*types.TypeName, error) {
	scope := pkg.Types.Scope()

	typeName, ok := scope.Lookup(name).(*types.TypeName)
	if !ok {
		err := fmt.Errorf("%w: %s in package %s", ErrTypeNotFound, name, pkg.PkgPath)
		if hints := match.Suggest(name, typeNames(scope), match.DefaultMaxSuggestions); len(hints) > 0 {
			err = fmt.Errorf("%w (did you mean %s?)", err, strings.Join(hints, ", "))
		}

		return nil, err
	}

	basic, ok := typeName.Type().Underlying().(*types.Basic)
	if !ok || basic.Info()&types.IsInteger == 0 {
		return nil, fmt.Errorf("%s: %w (underlying type %s)", name, ErrNotEnum, typeName.Type().Underlying())
	}

	return typeName, nil
}

func typeNames(scope *types.Scope) []string {
	var names []string

	for _, n := range scope.Names() {
		if _, ok := scope.Lookup(n).(*types.TypeName); ok {
			names = append(names, n)
		}
	}

	return names
}

// collectConstants returns the package-level constants of exactly the
// given type, ordered by file name and offset.
func collectConstants(pkg *packages.Package, typeName *types.TypeName) []ConstInfo {
	var consts []ConstInfo

	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.CONST {
				continue
			}

			for _, spec := range gd.Specs {
				vs, ok := spec.(*ast.ValueSpec)
				if !ok {
					continue
				}

				lit := specAnnotation(gd, vs)

				for _, ident := range vs.Names {
					if ident.Name == "_" {
						continue
					}

					obj, ok := pkg.TypesInfo.Defs[ident].(*types.Const)
					if !ok || !types.Identical(obj.Type(), typeName.Type()) {
						continue
					}

					consts = append(consts, ConstInfo{
						Name:    ident.Name,
						Value:   obj.Val().ExactString(),
						Literal: lit,
						Pos:     pkg.Fset.Position(ident.Pos()),
					})
				}
			}
		}
	}

	sort.SliceStable(consts, func(i, j int) bool {
		if consts[i].Pos.Filename != consts[j].Pos.Filename {
			return consts[i].Pos.Filename < consts[j].Pos.Filename
		}

		return consts[i].Pos.Offset < consts[j].Pos.Offset
	})

	return consts
}

// specAnnotation reads the annotation of a constant spec from its line
// comment, or from its doc comment when the line comment has none. An
// ungrouped declaration carries its doc comment on the GenDecl.
func specAnnotation(gd *ast.GenDecl, vs *ast.ValueSpec) mapping.Literal {
	groups := []*ast.CommentGroup{vs.Comment, vs.Doc}
	if !gd.Lparen.IsValid() {
		groups = append(groups, gd.Doc)
	}

	for _, group := range groups {
		if group == nil {
			continue
		}

		for _, c := range group.List {
			text, ok := strings.CutPrefix(c.Text, "//")
			if !ok {
				continue
			}

			if expr, found := strings.CutPrefix(strings.TrimSpace(text), AnnotationPrefix); found {
				return ParseAnnotation(strings.TrimSpace(expr))
			}
		}
	}

	return mapping.NoLiteral()
}

// ParseAnnotation classifies annotation text. A Go string literal,
// interpreted or raw, yields its value; anything else is kept as written.
func ParseAnnotation(text string) mapping.Literal {
	expr, err := parser.ParseExpr(text)
	if err != nil {
		return mapping.OtherLiteral(text)
	}

	lit, ok := expr.(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return mapping.OtherLiteral(text)
	}

	v, err := strconv.Unquote(lit.Value)
	if err != nil {
		return mapping.OtherLiteral(text)
	}

	return mapping.StringLiteral(v)
}
