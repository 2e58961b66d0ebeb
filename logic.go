package prettyre

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Intersect matches characters in both classes, rendered with the
// class-set intersection operator: [L&&R].
func Intersect[L, R ClassKind](a Fragment[CharClass[L]], b Fragment[CharClass[R]]) Fragment[CharClass[Custom]] {
	return frag[CharClass[Custom]]("[" + a.pat + "&&" + b.pat + "]")
}

// Subtract matches characters in the first class but not the second,
// rendered with the class-set difference operator: [L--R].
func Subtract[L, R ClassKind](a Fragment[CharClass[L]], b Fragment[CharClass[R]]) Fragment[CharClass[Custom]] {
	return frag[CharClass[Custom]]("[" + a.pat + "--" + b.pat + "]")
}

// SymmetricDifference matches characters in exactly one of the two
// classes, rendered with the class-set operator: [L~~R].
func SymmetricDifference[L, R ClassKind](a Fragment[CharClass[L]], b Fragment[CharClass[R]]) Fragment[CharClass[Custom]] {
	return frag[CharClass[Custom]]("[" + a.pat + "~~" + b.pat + "]")
}

var (
	negateToUpper = strings.NewReplacer(`\d`, `\D`, `\p`, `\P`, `\w`, `\W`, `\s`, `\S`, `\b`, `\B`)
	negateToLower = strings.NewReplacer(`\D`, `\d`, `\P`, `\p`, `\W`, `\w`, `\S`, `\s`, `\B`, `\b`)
)

// Not complements a character class. The result keeps the operand's
// sub-kind; how the complement is spelled depends on it:
//
//   - Standard: the escape letter's case is flipped for the five
//     escape families \d \p \w \s \b. Fragments shorter than two
//     characters (the dot, the ^ and $ anchors) pass through
//     unchanged, as does syntax outside those families (\A, \z).
//   - ASCII: the POSIX negation marker is toggled, [[: against [[:^.
//   - Custom: the bracket negation marker is toggled, [ against [^.
//
// The Custom and ASCII toggles are literal substitutions over the
// whole pattern, so a fragment somehow holding several bracket
// expressions would have all of them toggled alike.
func Not[S ClassKind](f Fragment[CharClass[S]]) Fragment[CharClass[S]] {
	var sub S
	switch any(sub).(type) {
	case Standard:
		return frag[CharClass[S]](negateStandard(f.pat))
	case ASCII:
		return frag[CharClass[S]](negateASCII(f.pat))
	default:
		return frag[CharClass[S]](negateCustom(f.pat))
	}
}

func negateStandard(pat string) string {
	if len(pat) < 2 {
		return pat
	}
	r, _ := utf8.DecodeRuneInString(pat[1:])
	if unicode.IsLower(r) {
		return negateToUpper.Replace(pat)
	}
	return negateToLower.Replace(pat)
}

func negateCustom(pat string) string {
	if len(pat) < 2 {
		panic("prettyre: custom class must be at least 2 characters")
	}
	if pat[1] == '^' {
		return strings.ReplaceAll(pat, "[^", "[")
	}
	return strings.ReplaceAll(pat, "[", "[^")
}

func negateASCII(pat string) string {
	if len(pat) < 4 {
		panic("prettyre: ASCII class must start with a 4-character [[: prefix")
	}
	if pat[3] == '^' {
		return strings.ReplaceAll(pat, "[[:^", "[[:")
	}
	return strings.ReplaceAll(pat, "[[:", "[[:^")
}

// NotText complements a literal position by position: each character c
// of the literal becomes the negated single-character class [^c]. The
// result matches strings of the same length differing from the literal
// at every position, not "any string other than the literal".
func NotText(f Fragment[Text]) Fragment[Chain] {
	body := strings.TrimSuffix(strings.TrimPrefix(f.pat, "(?:"), ")")
	var b strings.Builder
	for i := 0; i < len(body); {
		_, size := utf8.DecodeRuneInString(body[i:])
		// Keep QuoteMeta escapes attached to their character so the
		// class body stays valid bracket syntax.
		if body[i] == '\\' && i+size < len(body) {
			_, esc := utf8.DecodeRuneInString(body[i+size:])
			size += esc
		}
		b.WriteString("[^")
		b.WriteString(body[i : i+size])
		b.WriteByte(']')
		i += size
	}
	return frag[Chain](b.String())
}
