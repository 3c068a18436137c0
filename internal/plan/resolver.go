package plan

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"strenum/internal/common"
	"strenum/internal/mapping"
)

// ErrNoVariants is returned for an enum without any declared variant.
var ErrNoVariants = errors.New("enum has no variants")

// ResolutionConfig holds configuration for the resolution process.
type ResolutionConfig struct {
	// StrictMode promotes every warning to an error.
	StrictMode bool
	// Concurrency bounds how many enums are synthesized at once.
	// Zero means GOMAXPROCS.
	Concurrency int
}

// DefaultConfig returns the default resolution configuration.
func DefaultConfig() ResolutionConfig {
	return ResolutionConfig{
		StrictMode:  false,
		Concurrency: 0,
	}
}

// Resolver turns enum requests into a package plan.
type Resolver struct {
	pkgName  string
	requests []Request
	config   ResolutionConfig
}

// NewResolver creates a new Resolver.
func NewResolver(pkgName string, requests []Request, config ResolutionConfig) *Resolver {
	return &Resolver{
		pkgName:  pkgName,
		requests: requests,
		config:   config,
	}
}

// Resolve normalizes and synthesizes every requested enum.
// Enums are independent and processed concurrently; the plan keeps request
// order. The returned plan carries all diagnostics even when an error is
// returned for strict-mode violations.
func (r *Resolver) Resolve(ctx context.Context) (*ResolvedPackagePlan, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}

	p := &ResolvedPackagePlan{
		Package: r.pkgName,
		Enums:   make([]*EnumPlan, len(r.requests)),
	}

	limit := r.config.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, req := range r.requests {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			p.Enums[i] = resolveOne(req)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("resolving enums: %w", err)
	}

	for _, e := range p.Enums {
		p.Diagnostics.Merge(e.Diagnostics)

		common.Logger().Debug("synthesized enum",
			zap.String("type", e.Type),
			zap.Int("variants", len(e.Variants)),
			zap.Int("max_len", e.MaxLen),
			zap.Strings("prefix_order", Names(e.Prefix)))
	}

	if r.config.StrictMode {
		p.Diagnostics.Promote()
	}

	if err := p.Diagnostics.Error(); err != nil {
		return p, fmt.Errorf("strict mode: %w", err)
	}

	return p, nil
}

func (r *Resolver) validate() error {
	if r.pkgName == "" {
		return errors.New("package name is required")
	}

	seen := make(map[string]struct{}, len(r.requests))

	for _, req := range r.requests {
		if _, ok := seen[req.Type]; ok {
			return fmt.Errorf("enum %s requested more than once", req.Type)
		}

		seen[req.Type] = struct{}{}

		if len(req.Declarations) == 0 {
			return fmt.Errorf("enum %s: %w", req.Type, ErrNoVariants)
		}
	}

	return nil
}

func resolveOne(req Request) *EnumPlan {
	table, diags := mapping.Normalize(req.Type, req.Declarations)

	e := Synthesize(table)
	e.Declare = req.Declare
	e.Underlying = req.Underlying
	e.Doc = req.Doc
	e.Diagnostics = diags

	if e.Declare && e.Underlying == "" {
		e.Underlying = "int"
	}

	return e
}
