package uniprop

import "fmt"

// Category identifies a Unicode general category.
type Category uint8

const (
	// Letter covers all letter sub-categories.
	Letter Category = iota // L
	// LowercaseLetter represents the Ll sub-category.
	LowercaseLetter // Ll
	// UppercaseLetter represents the Lu sub-category.
	UppercaseLetter // Lu
	// TitlecaseLetter represents the Lt sub-category.
	TitlecaseLetter // Lt
	// ModifierLetter represents the Lm sub-category.
	ModifierLetter // Lm
	// OtherLetter represents the Lo sub-category.
	OtherLetter // Lo

	// Mark covers all combining-mark sub-categories.
	Mark // M
	// NonspacingMark represents the Mn sub-category.
	NonspacingMark // Mn
	// SpacingMark represents the Mc sub-category.
	SpacingMark // Mc
	// EnclosingMark represents the Me sub-category.
	EnclosingMark // Me

	// Number covers all numeric sub-categories.
	Number // N
	// DecimalNumber represents the Nd sub-category.
	DecimalNumber // Nd
	// LetterNumber represents the Nl sub-category.
	LetterNumber // Nl
	// OtherNumber represents the No sub-category.
	OtherNumber // No

	// Punctuation covers all punctuation sub-categories.
	Punctuation // P
	// ConnectorPunctuation represents the Pc sub-category.
	ConnectorPunctuation // Pc
	// DashPunctuation represents the Pd sub-category.
	DashPunctuation // Pd
	// OpenPunctuation represents the Ps sub-category.
	OpenPunctuation // Ps
	// ClosePunctuation represents the Pe sub-category.
	ClosePunctuation // Pe
	// InitialPunctuation represents the Pi sub-category.
	InitialPunctuation // Pi
	// FinalPunctuation represents the Pf sub-category.
	FinalPunctuation // Pf
	// OtherPunctuation represents the Po sub-category.
	OtherPunctuation // Po

	// Symbol covers all symbol sub-categories.
	Symbol // S
	// MathSymbol represents the Sm sub-category.
	MathSymbol // Sm
	// CurrencySymbol represents the Sc sub-category.
	CurrencySymbol // Sc
	// ModifierSymbol represents the Sk sub-category.
	ModifierSymbol // Sk
	// OtherSymbol represents the So sub-category.
	OtherSymbol // So

	// Separator covers all separator sub-categories.
	Separator // Z
	// SpaceSeparator represents the Zs sub-category.
	SpaceSeparator // Zs
	// LineSeparator represents the Zl sub-category.
	LineSeparator // Zl
	// ParagraphSeparator represents the Zp sub-category.
	ParagraphSeparator // Zp

	// Other covers all remaining sub-categories.
	Other // C
	// Control represents the Cc sub-category.
	Control // Cc
	// Format represents the Cf sub-category.
	Format // Cf
	// PrivateUse represents the Co sub-category.
	PrivateUse // Co
	// Surrogate represents the Cs sub-category.
	Surrogate // Cs

	categoryCount
)

var categoryAbbrevs = [categoryCount]string{
	Letter:               "L",
	LowercaseLetter:      "Ll",
	UppercaseLetter:      "Lu",
	TitlecaseLetter:      "Lt",
	ModifierLetter:       "Lm",
	OtherLetter:          "Lo",
	Mark:                 "M",
	NonspacingMark:       "Mn",
	SpacingMark:          "Mc",
	EnclosingMark:        "Me",
	Number:               "N",
	DecimalNumber:        "Nd",
	LetterNumber:         "Nl",
	OtherNumber:          "No",
	Punctuation:          "P",
	ConnectorPunctuation: "Pc",
	DashPunctuation:      "Pd",
	OpenPunctuation:      "Ps",
	ClosePunctuation:     "Pe",
	InitialPunctuation:   "Pi",
	FinalPunctuation:     "Pf",
	OtherPunctuation:     "Po",
	Symbol:               "S",
	MathSymbol:           "Sm",
	CurrencySymbol:       "Sc",
	ModifierSymbol:       "Sk",
	OtherSymbol:          "So",
	Separator:            "Z",
	SpaceSeparator:       "Zs",
	LineSeparator:        "Zl",
	ParagraphSeparator:   "Zp",
	Other:                "C",
	Control:              "Cc",
	Format:               "Cf",
	PrivateUse:           "Co",
	Surrogate:            "Cs",
}

var categoryNames = [categoryCount]string{
	Letter:               "Letter",
	LowercaseLetter:      "LowercaseLetter",
	UppercaseLetter:      "UppercaseLetter",
	TitlecaseLetter:      "TitlecaseLetter",
	ModifierLetter:       "ModifierLetter",
	OtherLetter:          "OtherLetter",
	Mark:                 "Mark",
	NonspacingMark:       "NonspacingMark",
	SpacingMark:          "SpacingMark",
	EnclosingMark:        "EnclosingMark",
	Number:               "Number",
	DecimalNumber:        "DecimalNumber",
	LetterNumber:         "LetterNumber",
	OtherNumber:          "OtherNumber",
	Punctuation:          "Punctuation",
	ConnectorPunctuation: "ConnectorPunctuation",
	DashPunctuation:      "DashPunctuation",
	OpenPunctuation:      "OpenPunctuation",
	ClosePunctuation:     "ClosePunctuation",
	InitialPunctuation:   "InitialPunctuation",
	FinalPunctuation:     "FinalPunctuation",
	OtherPunctuation:     "OtherPunctuation",
	Symbol:               "Symbol",
	MathSymbol:           "MathSymbol",
	CurrencySymbol:       "CurrencySymbol",
	ModifierSymbol:       "ModifierSymbol",
	OtherSymbol:          "OtherSymbol",
	Separator:            "Separator",
	SpaceSeparator:       "SpaceSeparator",
	LineSeparator:        "LineSeparator",
	ParagraphSeparator:   "ParagraphSeparator",
	Other:                "Other",
	Control:              "Control",
	Format:               "Format",
	PrivateUse:           "PrivateUse",
	Surrogate:            "Surrogate",
}

// Abbrev returns the category's one- or two-letter engine name.
func (c Category) Abbrev() string {
	if c >= categoryCount {
		panic(fmt.Sprintf("uniprop: invalid category %d", uint8(c)))
	}
	return categoryAbbrevs[c]
}

// Escape renders the category as an engine property escape.
func (c Category) Escape() string {
	return `\p{` + c.Abbrev() + `}`
}

func (c Category) String() string {
	if c >= categoryCount {
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
	return categoryNames[c]
}

var categoriesByName = func() map[string]Category {
	m := make(map[string]Category, 2*int(categoryCount))
	for c := Category(0); c < categoryCount; c++ {
		m[categoryNames[c]] = c
		m[categoryAbbrevs[c]] = c
	}
	return m
}()

// CategoryByName resolves a long name ("LowercaseLetter") or an engine
// abbreviation ("Ll") back to its Category.
func CategoryByName(name string) (Category, bool) {
	c, ok := categoriesByName[name]
	return c, ok
}
