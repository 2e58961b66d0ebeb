package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadAndBuild(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		pattern string
		recName string
	}{
		{
			name:    "zip plus four",
			file:    "zip_plus_4.toml",
			pattern: `(?:\d){5}(?:(?:-)(?:\d){4})?`,
			recName: "zip-plus-4",
		},
		{
			name:    "anchored date with captures",
			file:    "date.toml",
			pattern: `\A(?P<month>(?:\d){2})(?:-)(?P<day>(?:\d){2})\z`,
			recName: "month-day",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, f, err := loadAndBuild(filepath.Join("testdata", tt.file))
			if err != nil {
				t.Fatalf("loadAndBuild() failed: %v", err)
			}
			if name != tt.recName {
				t.Errorf("name = %q, want %q", name, tt.recName)
			}
			if f.String() != tt.pattern {
				t.Errorf("pattern = %q, want %q", f.String(), tt.pattern)
			}
			if _, err := f.Compile(); err != nil {
				t.Errorf("Compile() failed: %v", err)
			}
		})
	}
}

func TestLoadAndBuild_MissingFile(t *testing.T) {
	if _, _, err := loadAndBuild(filepath.Join("testdata", "nope.toml")); err == nil {
		t.Fatal("loadAndBuild() should fail for a missing file")
	}
}

func TestRunRender(t *testing.T) {
	var buf bytes.Buffer
	renderCmd.SetOut(&buf)
	defer renderCmd.SetOut(nil)

	if err := runRender(renderCmd, []string{filepath.Join("testdata", "zip_plus_4.toml")}); err != nil {
		t.Fatalf("runRender() failed: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != `(?:\d){5}(?:(?:-)(?:\d){4})?` {
		t.Errorf("render output = %q", got)
	}
}

func TestRunMatch(t *testing.T) {
	var buf bytes.Buffer
	matchCmd.SetOut(&buf)
	defer matchCmd.SetOut(nil)

	if err := runMatch(matchCmd, []string{filepath.Join("testdata", "zip_plus_4.toml"), "12345-6789", "12345"}); err != nil {
		t.Fatalf("runMatch() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "match") {
		t.Errorf("match output %q should report matches", buf.String())
	}

	buf.Reset()
	if err := runMatch(matchCmd, []string{filepath.Join("testdata", "zip_plus_4.toml"), "none"}); err == nil {
		t.Fatal("runMatch() should fail when a sample does not match")
	}
}

func TestRunCheck(t *testing.T) {
	var buf bytes.Buffer
	checkCmd.SetOut(&buf)
	defer checkCmd.SetOut(nil)
	// Execute normally seeds the context; calling RunE directly does not.
	checkCmd.SetContext(context.Background())

	err := runCheck(checkCmd, []string{
		filepath.Join("testdata", "zip_plus_4.toml"),
		filepath.Join("testdata", "date.toml"),
	})
	if err != nil {
		t.Fatalf("runCheck() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "2 recipe(s) ok") {
		t.Errorf("check output = %q", buf.String())
	}
}
