package prettyre

import (
	"regexp"

	"prettyre/uniprop"
)

// Just matches the given text and only that text, verbatim. Every
// character with special meaning in pattern syntax is escaped.
func Just(text string) Fragment[Text] {
	return frag[Text]("(?:" + regexp.QuoteMeta(text) + ")")
}

// Raw splices caller-supplied pattern syntax without escaping. The
// caller is responsible for validity; this is the one constructor that
// can make Compile fail.
func Raw(pattern string) Fragment[Chain] {
	return frag[Chain]("(?:" + pattern + ")")
}

// Any matches any character except newline.
func Any() Fragment[CharClass[Standard]] { return frag[CharClass[Standard]](`.`) }

// Digit matches a decimal digit (\d).
func Digit() Fragment[CharClass[Standard]] { return frag[CharClass[Standard]](`\d`) }

// NonDigit matches anything but a decimal digit (\D).
func NonDigit() Fragment[CharClass[Standard]] { return frag[CharClass[Standard]](`\D`) }

// Word matches a word character (\w): alphanumeric or underscore.
func Word() Fragment[CharClass[Standard]] { return frag[CharClass[Standard]](`\w`) }

// NonWord matches anything but a word character (\W).
func NonWord() Fragment[CharClass[Standard]] { return frag[CharClass[Standard]](`\W`) }

// Whitespace matches a whitespace character (\s).
func Whitespace() Fragment[CharClass[Standard]] { return frag[CharClass[Standard]](`\s`) }

// NonWhitespace matches anything but a whitespace character (\S).
func NonWhitespace() Fragment[CharClass[Standard]] { return frag[CharClass[Standard]](`\S`) }

// WordBoundary matches at a word boundary (\b) without consuming input.
func WordBoundary() Fragment[CharClass[Standard]] { return frag[CharClass[Standard]](`\b`) }

// NonWordBoundary matches where there is no word boundary (\B).
func NonWordBoundary() Fragment[CharClass[Standard]] { return frag[CharClass[Standard]](`\B`) }

// Beginning matches at the start of text, or of a line in multi-line
// mode (^).
func Beginning() Fragment[CharClass[Standard]] { return frag[CharClass[Standard]](`^`) }

// Ending matches at the end of text, or of a line in multi-line mode ($).
func Ending() Fragment[CharClass[Standard]] { return frag[CharClass[Standard]](`$`) }

// TextBeginning matches at the start of text regardless of mode (\A).
func TextBeginning() Fragment[CharClass[Standard]] { return frag[CharClass[Standard]](`\A`) }

// TextEnding matches at the end of text regardless of mode (\z).
func TextEnding() Fragment[CharClass[Standard]] { return frag[CharClass[Standard]](`\z`) }

// ASCIIAlphabetic matches a-zA-Z.
func ASCIIAlphabetic() Fragment[CharClass[ASCII]] { return frag[CharClass[ASCII]]("[[:alpha:]]") }

// ASCIIAlphanumeric matches a-zA-Z0-9.
func ASCIIAlphanumeric() Fragment[CharClass[ASCII]] { return frag[CharClass[ASCII]]("[[:alnum:]]") }

// ASCIIBlank matches space or tab.
func ASCIIBlank() Fragment[CharClass[ASCII]] { return frag[CharClass[ASCII]]("[[:blank:]]") }

// ASCIIControl matches an ASCII control character.
func ASCIIControl() Fragment[CharClass[ASCII]] { return frag[CharClass[ASCII]]("[[:cntrl:]]") }

// ASCIIDigit matches 0-9.
func ASCIIDigit() Fragment[CharClass[ASCII]] { return frag[CharClass[ASCII]]("[[:digit:]]") }

// ASCIIGraphic matches a visible ASCII character.
func ASCIIGraphic() Fragment[CharClass[ASCII]] { return frag[CharClass[ASCII]]("[[:graph:]]") }

// ASCIILowercase matches a-z.
func ASCIILowercase() Fragment[CharClass[ASCII]] { return frag[CharClass[ASCII]]("[[:lower:]]") }

// ASCIIPrintable matches a visible ASCII character or space.
func ASCIIPrintable() Fragment[CharClass[ASCII]] { return frag[CharClass[ASCII]]("[[:print:]]") }

// ASCIIPunctuation matches an ASCII punctuation character.
func ASCIIPunctuation() Fragment[CharClass[ASCII]] { return frag[CharClass[ASCII]]("[[:punct:]]") }

// ASCIIWhitespace matches an ASCII whitespace character.
func ASCIIWhitespace() Fragment[CharClass[ASCII]] { return frag[CharClass[ASCII]]("[[:space:]]") }

// ASCIIUppercase matches A-Z.
func ASCIIUppercase() Fragment[CharClass[ASCII]] { return frag[CharClass[ASCII]]("[[:upper:]]") }

// ASCIIWord matches a word character: a-zA-Z0-9 or underscore.
func ASCIIWord() Fragment[CharClass[ASCII]] { return frag[CharClass[ASCII]]("[[:word:]]") }

// ASCIIHexDigit matches 0-9a-fA-F.
func ASCIIHexDigit() Fragment[CharClass[ASCII]] { return frag[CharClass[ASCII]]("[[:xdigit:]]") }

// InCategory matches a character in the given Unicode general
// category, rendered through the uniprop table as a property escape.
func InCategory(c uniprop.Category) Fragment[CharClass[Standard]] {
	return frag[CharClass[Standard]](c.Escape())
}

// InScript matches a character in the given Unicode script.
func InScript(s uniprop.Script) Fragment[CharClass[Standard]] {
	return frag[CharClass[Standard]](s.Escape())
}

// Alphabetic matches a character in the Letter category, in any script.
func Alphabetic() Fragment[CharClass[Standard]] { return InCategory(uniprop.Letter) }

// Alphanumeric matches a character in the Letter or Number category.
// The result is an alternation, not a single class, so it is a Chain.
func Alphanumeric() Fragment[Chain] {
	return OneOf(InCategory(uniprop.Letter), InCategory(uniprop.Number))
}

// Lowercase matches a character in the Lowercase_Letter category.
func Lowercase() Fragment[CharClass[Standard]] { return InCategory(uniprop.LowercaseLetter) }

// Uppercase matches a character in the Uppercase_Letter category.
func Uppercase() Fragment[CharClass[Standard]] { return InCategory(uniprop.UppercaseLetter) }

// Within matches any one of the given characters. Characters are
// inserted in caller order without escaping; callers must not pass
// characters that need escaping inside a bracket expression (']', '^'
// first, a literal '-') unless the resulting syntax stays valid.
func Within(set ...rune) Fragment[CharClass[Custom]] {
	return frag[CharClass[Custom]]("[" + string(set) + "]")
}

// Without matches any character outside the given set. The Within
// escaping caveat applies.
func Without(set ...rune) Fragment[CharClass[Custom]] {
	return frag[CharClass[Custom]]("[^" + string(set) + "]")
}

// WithinRange matches a character in the inclusive range lo-hi.
func WithinRange(lo, hi rune) Fragment[CharClass[Custom]] {
	return frag[CharClass[Custom]]("[" + string(lo) + "-" + string(hi) + "]")
}

// WithoutRange matches a character outside the inclusive range lo-hi.
func WithoutRange(lo, hi rune) Fragment[CharClass[Custom]] {
	return frag[CharClass[Custom]]("[^" + string(lo) + "-" + string(hi) + "]")
}
