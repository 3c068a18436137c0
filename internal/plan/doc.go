// Package plan derives the generated conversions of an enum from its
// normalized mapping table.
//
// Pipeline:
//  1. A front-end (analyze or manifest) produces declarations per enum.
//  2. mapping.Normalize resolves each declaration to a representation.
//  3. Synthesize orders and deduplicates the pairs for each conversion:
//     - to-string: one arm per distinct constant value
//     - exact match: declaration order, earliest duplicate wins
//     - prefix match: longest representation first, latest duplicate wins
//     - max length: longest representation in bytes
//  4. The resulting plan is rendered by the gen package.
package plan
