package plan

import (
	"slices"

	"strenum/internal/common"
	"strenum/internal/mapping"
)

// Synthesize derives the conversion orders of one enum from its table.
// The result depends only on the table; equal tables give equal plans.
func Synthesize(t *mapping.Table) *EnumPlan {
	longest, maxLen := t.Longest()

	return &EnumPlan{
		Type:     t.Enum,
		Variants: slices.Clone(t.Pairs),
		ToString: toStringArms(t.Pairs),
		Exact:    exactArms(t.Pairs),
		Prefix:   prefixArms(t.Pairs),
		Longest:  longest,
		MaxLen:   maxLen,
	}
}

// toStringArms keeps the first declared name of every constant value.
// Later names with the same value are aliases and share its representation.
func toStringArms(pairs []mapping.Pair) []Arm {
	seen := make(map[string]struct{}, len(pairs))
	arms := make([]Arm, 0, len(pairs))

	for _, p := range pairs {
		if _, ok := seen[p.Value]; ok {
			continue
		}

		seen[p.Value] = struct{}{}
		arms = append(arms, Arm{Name: p.Name, Repr: p.Repr})
	}

	return arms
}

// exactArms lists pairs in declaration order; the earliest of several
// pairs with the same representation wins.
func exactArms(pairs []mapping.Pair) []Arm {
	return dedupeRepr(pairs)
}

// prefixArms lists pairs so that longer representations are tried first.
// The table is reversed and then stably sorted by descending length, so a
// representation that is a prefix of another never shadows it regardless
// of declaration order. Among identical representations the latest
// declared wins.
func prefixArms(pairs []mapping.Pair) []Arm {
	ordered := common.Reversed(pairs)

	slices.SortStableFunc(ordered, func(a, b mapping.Pair) int {
		return len(b.Repr) - len(a.Repr)
	})

	return dedupeRepr(ordered)
}

func dedupeRepr(pairs []mapping.Pair) []Arm {
	seen := make(map[string]struct{}, len(pairs))
	arms := make([]Arm, 0, len(pairs))

	for _, p := range pairs {
		if _, ok := seen[p.Repr]; ok {
			continue
		}

		seen[p.Repr] = struct{}{}
		arms = append(arms, Arm{Name: p.Name, Repr: p.Repr})
	}

	return arms
}

// Names returns the variant names of arms.
func Names(arms []Arm) []string {
	names := make([]string, len(arms))
	for i, a := range arms {
		names[i] = a.Name
	}

	return names
}
