package recipe

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func i64(v int64) *int64 { return &v }

func TestLoad_ZipPlus4(t *testing.T) {
	p, err := Load(filepath.Join("testdata", "zip_plus_4.toml"))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if p.Name != "zip-plus-4" {
		t.Errorf("Name = %q, want %q", p.Name, "zip-plus-4")
	}

	f, err := p.Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	want := `(?:\d){5}(?:(?:-)(?:\d){4})?`
	if f.String() != want {
		t.Fatalf("Build() = %q, want %q", f.String(), want)
	}

	re, err := f.Compile()
	if err != nil {
		t.Fatalf("Compile() failed: %v", err)
	}
	for input, matches := range map[string]bool{
		"12345-6789": true,
		"12345":      true,
		"1234":       false,
	} {
		if got := re.MatchString(input); got != matches {
			t.Errorf("MatchString(%q) = %v, want %v", input, got, matches)
		}
	}
}

func TestLoad_DateWithCaptures(t *testing.T) {
	p, err := Load(filepath.Join("testdata", "date.toml"))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	f, err := p.Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	want := `\A(?P<month>(?:\d){2})(?:-)(?P<day>(?:\d){2})\z`
	if f.String() != want {
		t.Fatalf("Build() = %q, want %q", f.String(), want)
	}

	re, err := f.Compile()
	if err != nil {
		t.Fatalf("Compile() failed: %v", err)
	}
	m := re.FindStringSubmatch("08-05")
	if m == nil {
		t.Fatal("anchored date should match \"08-05\"")
	}
	if got := m[re.SubexpIndex("month")]; got != "08" {
		t.Errorf("month = %q, want \"08\"", got)
	}
	if got := m[re.SubexpIndex("day")]; got != "05" {
		t.Errorf("day = %q, want \"05\"", got)
	}
	if re.MatchString("8-5") {
		t.Error("anchored date should not match \"8-5\"")
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join("testdata", "bad_syntax.toml")); err == nil {
		t.Error("Load() should fail on malformed TOML")
	}

	_, err := Load(filepath.Join("testdata", "no_pattern.toml"))
	if !errors.Is(err, ErrPatternSectionMissing) {
		t.Errorf("Load() error = %v, want ErrPatternSectionMissing", err)
	}
}

func TestBuild_Sources(t *testing.T) {
	tests := []struct {
		name     string
		part     Part
		expected string
	}{
		{name: "just", part: Part{Just: "a.c"}, expected: `(?:a\.c)`},
		{name: "raw", part: Part{Raw: `\d+`}, expected: `(?:\d+)`},
		{name: "standard class", part: Part{Class: "whitespace"}, expected: `\s`},
		{name: "ascii class", part: Part{Class: "ascii-xdigit"}, expected: "[[:xdigit:]]"},
		{name: "unicode category long name", part: Part{Class: "category:LowercaseLetter"}, expected: `\p{Ll}`},
		{name: "unicode category abbreviation", part: Part{Class: "category:Nd"}, expected: `\p{Nd}`},
		{name: "unicode script", part: Part{Class: "script:Greek"}, expected: `\p{Greek}`},
		{name: "within", part: Part{Within: "abc"}, expected: "[abc]"},
		{name: "without", part: Part{Without: "abc"}, expected: "[^abc]"},
		{name: "range", part: Part{Range: "a-z"}, expected: "[a-z]"},
		{name: "not-range", part: Part{NotRange: "a-z"}, expected: "[^a-z]"},
		{name: "one-of", part: Part{OneOf: []string{"cat", "dog"}}, expected: "(?:cat)|(?:dog)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Pattern{Parts: []Part{tt.part}}
			f, err := p.Build()
			if err != nil {
				t.Fatalf("Build() failed: %v", err)
			}
			if f.String() != tt.expected {
				t.Errorf("Build() = %q, want %q", f.String(), tt.expected)
			}
		})
	}
}

func TestBuild_Modifiers(t *testing.T) {
	tests := []struct {
		name     string
		part     Part
		expected string
	}{
		{name: "repeats", part: Part{Class: "digit", Repeats: i64(3)}, expected: `(?:\d){3}`},
		{name: "repeats zero", part: Part{Class: "digit", Repeats: i64(0)}, expected: `(?:\d){0}`},
		{name: "at least", part: Part{Class: "digit", AtLeast: i64(2)}, expected: `(?:\d){2,}`},
		{name: "between", part: Part{Just: "f", Between: []int64{3, 5}}, expected: `(?:(?:f)){3,5}`},
		{name: "optional", part: Part{Just: "s", Optional: true}, expected: `(?:(?:s))?`},
		{name: "zero or more", part: Part{Class: "word", ZeroOrMore: true}, expected: `(?:\w)*`},
		{name: "one or more", part: Part{Class: "word", OneOrMore: true}, expected: `(?:\w)+`},
		{name: "lazy", part: Part{Class: "any", AtLeast: i64(1), Lazy: true}, expected: `(?:.){1,}?`},
		{name: "negate standard class", part: Part{Class: "digit", Negate: true}, expected: `\D`},
		{name: "negate ascii class", part: Part{Class: "ascii-alpha", Negate: true}, expected: "[[:^alpha:]]"},
		{name: "negate within", part: Part{Within: "ab", Negate: true}, expected: "[^ab]"},
		{name: "negate literal", part: Part{Just: "ab", Negate: true}, expected: "[^a][^b]"},
		{name: "unnamed group", part: Part{Class: "digit", Repeats: i64(2), Group: true}, expected: `((?:\d){2})`},
		{name: "named capture", part: Part{Class: "digit", Repeats: i64(2), Capture: "n"}, expected: `(?P<n>(?:\d){2})`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Pattern{Parts: []Part{tt.part}}
			f, err := p.Build()
			if err != nil {
				t.Fatalf("Build() failed: %v", err)
			}
			if f.String() != tt.expected {
				t.Errorf("Build() = %q, want %q", f.String(), tt.expected)
			}
		})
	}
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name    string
		pattern Pattern
		wantSub string
	}{
		{
			name:    "no parts",
			pattern: Pattern{},
			wantSub: "no parts",
		},
		{
			name:    "no source",
			pattern: Pattern{Parts: []Part{{Repeats: i64(2)}}},
			wantSub: "no source",
		},
		{
			name:    "multiple sources",
			pattern: Pattern{Parts: []Part{{Just: "a", Class: "digit"}}},
			wantSub: "multiple sources",
		},
		{
			name:    "unknown class",
			pattern: Pattern{Parts: []Part{{Class: "letters"}}},
			wantSub: "unknown class",
		},
		{
			name:    "unknown category",
			pattern: Pattern{Parts: []Part{{Class: "category:Banana"}}},
			wantSub: "unknown unicode category",
		},
		{
			name:    "bad range",
			pattern: Pattern{Parts: []Part{{Range: "az"}}},
			wantSub: "must have the form",
		},
		{
			name:    "negate raw",
			pattern: Pattern{Parts: []Part{{Raw: `\d`, Negate: true}}},
			wantSub: "negate is not defined",
		},
		{
			name:    "negate alternation",
			pattern: Pattern{Parts: []Part{{Class: "alphanumeric", Negate: true}}},
			wantSub: "negate is not defined",
		},
		{
			name:    "lazy without repetition",
			pattern: Pattern{Parts: []Part{{Just: "a", Lazy: true}}},
			wantSub: "lazy requires a repetition modifier",
		},
		{
			name:    "conflicting repetitions",
			pattern: Pattern{Parts: []Part{{Just: "a", Repeats: i64(2), Optional: true}}},
			wantSub: "multiple repetition modifiers",
		},
		{
			name:    "negative count",
			pattern: Pattern{Parts: []Part{{Just: "a", Repeats: i64(-1)}}},
			wantSub: "negative",
		},
		{
			name:    "between with one bound",
			pattern: Pattern{Parts: []Part{{Just: "a", Between: []int64{3}}}},
			wantSub: "exactly two bounds",
		},
		{
			name:    "capture and group together",
			pattern: Pattern{Parts: []Part{{Just: "a", Capture: "x", Group: true}}},
			wantSub: "mutually exclusive",
		},
		{
			name:    "error inside sub-part",
			pattern: Pattern{Parts: []Part{{Parts: []Part{{Class: "nope"}}}}},
			wantSub: "sub-part 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.pattern.Build()
			if err == nil {
				t.Fatal("Build() should fail")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("Build() error = %q, want it to mention %q", err, tt.wantSub)
			}
		})
	}
}

func TestBuild_NestedGrouping(t *testing.T) {
	p := Pattern{Parts: []Part{
		{Class: "digit", Repeats: i64(5)},
		{
			Optional: true,
			Parts: []Part{
				{Just: "-"},
				{Class: "digit", Repeats: i64(4)},
			},
		},
	}}
	f, err := p.Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	want := `(?:\d){5}(?:(?:-)(?:\d){4})?`
	if f.String() != want {
		t.Errorf("Build() = %q, want %q", f.String(), want)
	}
}
