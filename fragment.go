package prettyre

import (
	"fmt"
	"regexp"
	"strings"
)

// Text tags a fragment holding an escaped literal string.
type Text struct{}

// Chain tags a general, already-composed fragment.
type Chain struct{}

// Quantifier tags the result of a repetition combinator. Quantified
// fragments are greedy by default and are the only fragments Lazy
// accepts.
type Quantifier struct{}

// Standard tags a backslash-escape character class such as \d or \p{L}.
type Standard struct{}

// ASCII tags a POSIX bracket class such as [[:alpha:]].
type ASCII struct{}

// Custom tags a user-defined bracket expression such as [a-f] or [^xyz].
type Custom struct{}

// ClassKind constrains the sub-kind parameter of CharClass.
type ClassKind interface {
	Standard | ASCII | Custom
}

// CharClass tags a fragment matching exactly one character from a set.
// The sub-kind records how the class is spelled, which decides how its
// complement is rendered.
type CharClass[S ClassKind] struct{}

// Kind is the closed set of fragment tags.
type Kind interface {
	Text | Chain | Quantifier | CharClass[Standard] | CharClass[ASCII] | CharClass[Custom]
}

// Fragment is an immutable pattern substring tagged with a kind. The
// tag has no runtime representation; it only selects which combinators
// apply and how they render.
type Fragment[K Kind] struct {
	pat string
}

// Expr is the kind-erased view of a fragment. Every Fragment satisfies
// it; nothing outside this package can, so kind-agnostic combinators
// still reject foreign values.
type Expr interface {
	fmt.Stringer
	pattern() string
}

func frag[K Kind](pat string) Fragment[K] {
	return Fragment[K]{pat: pat}
}

// String renders the accumulated pattern verbatim.
func (f Fragment[K]) String() string { return f.pat }

func (f Fragment[K]) pattern() string { return f.pat }

// Compile hands the accumulated pattern to the regexp engine. It fails
// only when the pattern is not valid regexp syntax, which can happen
// solely through Raw or through custom sets built from characters that
// need escaping inside a bracket expression.
func (f Fragment[K]) Compile() (*regexp.Regexp, error) {
	re, err := regexp.Compile(f.pat)
	if err != nil {
		return nil, fmt.Errorf("compile pattern %q: %w", f.pat, err)
	}
	return re, nil
}

// MustCompile is Compile for call sites that treat an invalid pattern
// as a programming error. It panics with the engine diagnostic.
func (f Fragment[K]) MustCompile() *regexp.Regexp {
	return regexp.MustCompile(f.pat)
}

// Then concatenates two fragments left to right. No grouping is added;
// both operands are already self-contained.
func (f Fragment[K]) Then(next Expr) Fragment[Chain] {
	return frag[Chain](f.pat + next.pattern())
}

// Or is the binary form of OneOf.
func (f Fragment[K]) Or(alt Expr) Fragment[Chain] {
	return frag[Chain](f.pat + "|" + alt.pattern())
}

// AsChain forgets a fragment's kind. Useful when fragments are chosen
// at runtime and the kind cannot be carried in the program's types;
// the result supports everything except the kind-restricted operations
// (Lazy, the class set algebra).
func AsChain(e Expr) Fragment[Chain] {
	return frag[Chain](e.pattern())
}

// OneOf joins at least one alternative with `|`. The result is
// deliberately not grouped: a caller that composes further must first
// apply Capture or a quantifier, which insert their own grouping.
// Panics when called with no alternatives.
func OneOf(options ...Expr) Fragment[Chain] {
	if len(options) == 0 {
		panic("prettyre: OneOf requires at least one alternative")
	}
	var b strings.Builder
	for i, opt := range options {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(opt.pattern())
	}
	return frag[Chain](b.String())
}

// Capture wraps the fragment in a plain capturing group. Capture
// indices are positional, assigned left to right by the engine at
// match time.
func (f Fragment[K]) Capture() Fragment[Chain] {
	return frag[Chain]("(" + f.pat + ")")
}

// CaptureAs wraps the fragment in a named capturing group. The name is
// passed through unvalidated; the engine rejects bad names at compile
// time.
func (f Fragment[K]) CaptureAs(name string) Fragment[Chain] {
	return frag[Chain]("(?P<" + name + ">" + f.pat + ")")
}
