package uniprop

// Script names a Unicode script the engine understands inside \p{...}.
// The value is the engine spelling itself, so the set stays open:
// callers may use any script the engine's tables know.
type Script string

// Scripts commonly reached for. The engine accepts more; any valid
// script name can be used as a Script directly.
const (
	Arabic     Script = "Arabic"
	Armenian   Script = "Armenian"
	Bengali    Script = "Bengali"
	Bopomofo   Script = "Bopomofo"
	Braille    Script = "Braille"
	Cherokee   Script = "Cherokee"
	Cyrillic   Script = "Cyrillic"
	Devanagari Script = "Devanagari"
	Ethiopic   Script = "Ethiopic"
	Georgian   Script = "Georgian"
	Greek      Script = "Greek"
	Gujarati   Script = "Gujarati"
	Gurmukhi   Script = "Gurmukhi"
	Han        Script = "Han"
	Hangul     Script = "Hangul"
	Hebrew     Script = "Hebrew"
	Hiragana   Script = "Hiragana"
	Kannada    Script = "Kannada"
	Katakana   Script = "Katakana"
	Khmer      Script = "Khmer"
	Lao        Script = "Lao"
	Latin      Script = "Latin"
	Malayalam  Script = "Malayalam"
	Mongolian  Script = "Mongolian"
	Myanmar    Script = "Myanmar"
	Ogham      Script = "Ogham"
	Oriya      Script = "Oriya"
	Runic      Script = "Runic"
	Sinhala    Script = "Sinhala"
	Syriac     Script = "Syriac"
	Tamil      Script = "Tamil"
	Telugu     Script = "Telugu"
	Thaana     Script = "Thaana"
	Thai       Script = "Thai"
	Tibetan    Script = "Tibetan"
	Yi         Script = "Yi"
)

// Escape renders the script as an engine property escape.
func (s Script) Escape() string {
	return `\p{` + string(s) + `}`
}

func (s Script) String() string { return string(s) }
