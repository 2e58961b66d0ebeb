// Package prettyre builds regular-expression strings from named,
// composable fragments instead of hand-written pattern syntax.
//
// A pattern like `(?:\d){5}(?:(?:-)(?:\d){4})?` becomes
//
//	zip := prettyre.Digit().Repeats(5).
//		Then(prettyre.Just("-").Then(prettyre.Digit().Repeats(4)).Optional())
//	re := zip.MustCompile()
//
// Every fragment carries a compile-time kind tag (a zero-sized type
// parameter), so invalid compositions fail to compile instead of
// producing broken patterns: Lazy accepts only quantified fragments,
// the class set algebra accepts only character classes.
//
// Invariants:
//   - A Fragment is immutable; every combinator returns a new value.
//   - Fragment patterns are self-contained: constructors and
//     quantifiers add non-capturing groups exactly where needed to
//     preserve precedence, so concatenation is plain string splicing.
//   - Only Raw can introduce syntax the engine rejects; all other
//     constructors are escape-safe by construction.
//   - The class set operators ([x&&y], [x--y], [x~~y]) render syntax
//     for engines with character-class set support; Go's regexp does
//     not accept them.
package prettyre
