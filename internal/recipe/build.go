package recipe

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"prettyre"
	"prettyre/uniprop"
)

// source is a resolved part source. complement is nil when the kind
// has no defined complement, mirroring the combinators that simply do
// not exist for those kinds.
type source struct {
	base       prettyre.Expr
	complement func() prettyre.Expr
}

var standardClasses = map[string]func() prettyre.Fragment[prettyre.CharClass[prettyre.Standard]]{
	"any":               prettyre.Any,
	"digit":             prettyre.Digit,
	"non-digit":         prettyre.NonDigit,
	"word":              prettyre.Word,
	"non-word":          prettyre.NonWord,
	"whitespace":        prettyre.Whitespace,
	"non-whitespace":    prettyre.NonWhitespace,
	"word-boundary":     prettyre.WordBoundary,
	"non-word-boundary": prettyre.NonWordBoundary,
	"beginning":         prettyre.Beginning,
	"ending":            prettyre.Ending,
	"text-beginning":    prettyre.TextBeginning,
	"text-ending":       prettyre.TextEnding,
	"alphabetic":        prettyre.Alphabetic,
	"lowercase":         prettyre.Lowercase,
	"uppercase":         prettyre.Uppercase,
}

var asciiClasses = map[string]func() prettyre.Fragment[prettyre.CharClass[prettyre.ASCII]]{
	"ascii-alpha":  prettyre.ASCIIAlphabetic,
	"ascii-alnum":  prettyre.ASCIIAlphanumeric,
	"ascii-blank":  prettyre.ASCIIBlank,
	"ascii-cntrl":  prettyre.ASCIIControl,
	"ascii-digit":  prettyre.ASCIIDigit,
	"ascii-graph":  prettyre.ASCIIGraphic,
	"ascii-lower":  prettyre.ASCIILowercase,
	"ascii-print":  prettyre.ASCIIPrintable,
	"ascii-punct":  prettyre.ASCIIPunctuation,
	"ascii-space":  prettyre.ASCIIWhitespace,
	"ascii-upper":  prettyre.ASCIIUppercase,
	"ascii-word":   prettyre.ASCIIWord,
	"ascii-xdigit": prettyre.ASCIIHexDigit,
}

// Build composes the pattern through the prettyre combinators.
func (p *Pattern) Build() (prettyre.Fragment[prettyre.Chain], error) {
	var zero prettyre.Fragment[prettyre.Chain]
	if len(p.Parts) == 0 {
		return zero, ErrNoParts
	}

	var chain prettyre.Fragment[prettyre.Chain]
	for i := range p.Parts {
		e, err := buildPart(&p.Parts[i])
		if err != nil {
			return zero, fmt.Errorf("part %d: %w", i+1, err)
		}
		if i == 0 {
			chain = prettyre.AsChain(e)
			continue
		}
		chain = chain.Then(e)
	}

	if p.Anchored {
		chain = prettyre.TextBeginning().Then(chain).Then(prettyre.TextEnding())
	}
	return chain, nil
}

func buildPart(part *Part) (prettyre.Expr, error) {
	src, err := resolveSource(part)
	if err != nil {
		return nil, err
	}

	base := src.base
	if part.Negate {
		if src.complement == nil {
			return nil, fmt.Errorf("negate is not defined for this source kind")
		}
		base = src.complement()
	}

	e, err := applyRepetition(part, prettyre.AsChain(base))
	if err != nil {
		return nil, err
	}

	if part.Capture != "" && part.Group {
		return nil, fmt.Errorf("capture and group are mutually exclusive")
	}
	if part.Capture != "" {
		return prettyre.AsChain(e).CaptureAs(part.Capture), nil
	}
	if part.Group {
		return prettyre.AsChain(e).Capture(), nil
	}
	return e, nil
}

func resolveSource(part *Part) (source, error) {
	var (
		found []source
		names []string
	)
	add := func(name string, s source) {
		names = append(names, name)
		found = append(found, s)
	}

	if part.Just != "" {
		f := prettyre.Just(part.Just)
		add("just", source{base: f, complement: func() prettyre.Expr { return prettyre.NotText(f) }})
	}
	if part.Raw != "" {
		add("raw", source{base: prettyre.Raw(part.Raw)})
	}
	if part.Class != "" {
		s, err := resolveClass(part.Class)
		if err != nil {
			return source{}, err
		}
		add("class", s)
	}
	if part.Within != "" {
		f := prettyre.Within([]rune(part.Within)...)
		add("within", source{base: f, complement: func() prettyre.Expr { return prettyre.Not(f) }})
	}
	if part.Without != "" {
		f := prettyre.Without([]rune(part.Without)...)
		add("without", source{base: f, complement: func() prettyre.Expr { return prettyre.Not(f) }})
	}
	if part.Range != "" {
		lo, hi, err := parseRange(part.Range)
		if err != nil {
			return source{}, err
		}
		f := prettyre.WithinRange(lo, hi)
		add("range", source{base: f, complement: func() prettyre.Expr { return prettyre.Not(f) }})
	}
	if part.NotRange != "" {
		lo, hi, err := parseRange(part.NotRange)
		if err != nil {
			return source{}, err
		}
		f := prettyre.WithoutRange(lo, hi)
		add("not-range", source{base: f, complement: func() prettyre.Expr { return prettyre.Not(f) }})
	}
	if len(part.OneOf) > 0 {
		options := make([]prettyre.Expr, len(part.OneOf))
		for i, opt := range part.OneOf {
			options[i] = prettyre.Just(opt)
		}
		add("one-of", source{base: prettyre.OneOf(options...)})
	}
	if len(part.Parts) > 0 {
		var chain prettyre.Fragment[prettyre.Chain]
		for i := range part.Parts {
			e, err := buildPart(&part.Parts[i])
			if err != nil {
				return source{}, fmt.Errorf("sub-part %d: %w", i+1, err)
			}
			if i == 0 {
				chain = prettyre.AsChain(e)
				continue
			}
			chain = chain.Then(e)
		}
		add("parts", source{base: chain})
	}

	switch len(found) {
	case 0:
		return source{}, fmt.Errorf("part has no source (expected one of just, raw, class, within, without, range, not-range, one-of, parts)")
	case 1:
		return found[0], nil
	default:
		return source{}, fmt.Errorf("part has multiple sources: %s", strings.Join(names, ", "))
	}
}

func resolveClass(name string) (source, error) {
	if ctor, ok := standardClasses[name]; ok {
		f := ctor()
		return source{base: f, complement: func() prettyre.Expr { return prettyre.Not(f) }}, nil
	}
	if ctor, ok := asciiClasses[name]; ok {
		f := ctor()
		return source{base: f, complement: func() prettyre.Expr { return prettyre.Not(f) }}, nil
	}
	if name == "alphanumeric" {
		// An alternation, not a single class: no complement.
		return source{base: prettyre.Alphanumeric()}, nil
	}
	if sub, ok := strings.CutPrefix(name, "category:"); ok {
		c, ok := uniprop.CategoryByName(sub)
		if !ok {
			return source{}, fmt.Errorf("unknown unicode category %q", sub)
		}
		f := prettyre.InCategory(c)
		return source{base: f, complement: func() prettyre.Expr { return prettyre.Not(f) }}, nil
	}
	if sub, ok := strings.CutPrefix(name, "script:"); ok {
		f := prettyre.InScript(uniprop.Script(sub))
		return source{base: f, complement: func() prettyre.Expr { return prettyre.Not(f) }}, nil
	}
	return source{}, fmt.Errorf("unknown class %q", name)
}

func parseRange(spec string) (lo, hi rune, err error) {
	runes := []rune(spec)
	if len(runes) != 3 || runes[1] != '-' {
		return 0, 0, fmt.Errorf("range %q must have the form \"a-z\"", spec)
	}
	return runes[0], runes[2], nil
}

func applyRepetition(part *Part, f prettyre.Fragment[prettyre.Chain]) (prettyre.Expr, error) {
	set := 0
	for _, on := range []bool{
		part.Repeats != nil, part.AtLeast != nil, len(part.Between) > 0,
		part.Optional, part.ZeroOrMore, part.OneOrMore,
	} {
		if on {
			set++
		}
	}
	if set > 1 {
		return nil, fmt.Errorf("part has multiple repetition modifiers")
	}
	if set == 0 {
		if part.Lazy {
			return nil, fmt.Errorf("lazy requires a repetition modifier")
		}
		return f, nil
	}

	var q prettyre.Fragment[prettyre.Quantifier]
	switch {
	case part.Repeats != nil:
		n, err := repCount(*part.Repeats)
		if err != nil {
			return nil, fmt.Errorf("repeats: %w", err)
		}
		q = f.Repeats(n)
	case part.AtLeast != nil:
		n, err := repCount(*part.AtLeast)
		if err != nil {
			return nil, fmt.Errorf("at-least: %w", err)
		}
		q = f.RepeatsAtLeast(n)
	case len(part.Between) > 0:
		if len(part.Between) != 2 {
			return nil, fmt.Errorf("between must hold exactly two bounds")
		}
		start, err := repCount(part.Between[0])
		if err != nil {
			return nil, fmt.Errorf("between: %w", err)
		}
		end, err := repCount(part.Between[1])
		if err != nil {
			return nil, fmt.Errorf("between: %w", err)
		}
		q = f.RepeatsWithin(start, end)
	case part.Optional:
		q = f.Optional()
	case part.ZeroOrMore:
		q = f.ZeroOrMore()
	case part.OneOrMore:
		q = f.OneOrMore()
	}

	if part.Lazy {
		return prettyre.Lazy(q), nil
	}
	return q, nil
}

func repCount(v int64) (int, error) {
	n, err := safecast.Conv[int](v)
	if err != nil {
		return 0, fmt.Errorf("count %d out of range: %w", v, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("count %d is negative", n)
	}
	return n, nil
}
