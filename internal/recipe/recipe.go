// Package recipe loads declarative pattern recipes from TOML and
// builds them through the prettyre combinators. It is the dynamic
// surface of the library: where the typed API rejects a bad
// composition at compile time, a recipe reports a descriptive error
// instead.
package recipe

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/unicode/norm"
)

var (
	// ErrPatternSectionMissing indicates that [pattern] is missing in a recipe.
	ErrPatternSectionMissing = errors.New("missing [pattern]")
	// ErrNoParts indicates a recipe whose pattern declares no parts.
	ErrNoParts = errors.New("pattern has no parts")
)

// File is the top-level recipe document.
type File struct {
	Pattern Pattern `toml:"pattern"`
}

// Pattern is a named, ordered composition of parts. Parts are
// concatenated left to right; Anchored wraps the result in \A...\z.
type Pattern struct {
	Name     string `toml:"name"`
	Anchored bool   `toml:"anchored"`
	Parts    []Part `toml:"parts"`
}

// Part describes one fragment. Exactly one source field must be set;
// modifiers apply in a fixed order: negate, repetition, lazy, capture.
type Part struct {
	// Sources.
	Just     string   `toml:"just"`      // escaped literal text
	Raw      string   `toml:"raw"`       // unescaped pattern syntax
	Class    string   `toml:"class"`     // named character class
	Within   string   `toml:"within"`    // set of characters
	Without  string   `toml:"without"`   // negated set of characters
	Range    string   `toml:"range"`     // "a-z"
	NotRange string   `toml:"not-range"` // "a-z", negated
	OneOf    []string `toml:"one-of"`    // alternation of literals
	Parts    []Part   `toml:"parts"`     // grouped sub-parts

	// Modifiers.
	Negate     bool    `toml:"negate"`
	Repeats    *int64  `toml:"repeats"`
	AtLeast    *int64  `toml:"at-least"`
	Between    []int64 `toml:"between"` // [start, end), rendered {start,end}
	Optional   bool    `toml:"optional"`
	ZeroOrMore bool    `toml:"zero-or-more"`
	OneOrMore  bool    `toml:"one-or-more"`
	Lazy       bool    `toml:"lazy"`
	Capture    string  `toml:"capture"` // named capturing group
	Group      bool    `toml:"group"`   // unnamed capturing group
}

// Load reads a recipe file. Literal text is NFC-normalized so recipes
// written in different editors build identical patterns.
func Load(path string) (*Pattern, error) {
	var file File
	meta, err := toml.DecodeFile(path, &file)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("pattern") {
		return nil, fmt.Errorf("%s: %w", path, ErrPatternSectionMissing)
	}
	normalizeParts(file.Pattern.Parts)
	return &file.Pattern, nil
}

func normalizeParts(parts []Part) {
	for i := range parts {
		p := &parts[i]
		p.Just = norm.NFC.String(p.Just)
		p.Within = norm.NFC.String(p.Within)
		p.Without = norm.NFC.String(p.Without)
		for j, opt := range p.OneOf {
			p.OneOf[j] = norm.NFC.String(opt)
		}
		normalizeParts(p.Parts)
	}
}
