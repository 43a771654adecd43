package common

import "testing"

func TestValidateNotEmpty(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"valid value", "tests", false},
		{"invalid - empty", "", true},
		{"invalid - whitespace only", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNotEmpty(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNotEmpty() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateExtension(t *testing.T) {
	tests := []struct {
		name    string
		ext     string
		wantErr bool
	}{
		{"valid html", ".html", false},
		{"valid compound", ".html.gz", false},
		{"invalid - no dot", "html", true},
		{"invalid - dot only", ".", true},
		{"invalid - empty", "", true},
		{"invalid - path separator", "./html", true},
		{"invalid - space", ".ht ml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateExtension(tt.ext)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateExtension() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidatePattern(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		input   string
		match   bool
		wantErr bool
	}{
		{"class marker", `class="admonition`, `<div class="admonition note">`, true, false},
		{"case-insensitive flag", `(?i)blockquote-before-admonition`, `Blockquote-Before-Admonition`, true, false},
		{"no match", `<blockquote>`, `<p>`, false, false},
		{"invalid - unbalanced", `class="(admonition`, "", false, true},
		{"invalid - empty", "", "", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re, err := ValidatePattern(tt.pattern)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidatePattern() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got := re.MatchString(tt.input); got != tt.match {
				t.Errorf("pattern %q on %q = %v, want %v", tt.pattern, tt.input, got, tt.match)
			}
		})
	}
}

func TestValidateVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		wantErr bool
	}{
		{"valid full", "0.140.0", false},
		{"valid with v", "v0.140.0", false},
		{"valid major.minor", "1.2", false},
		{"invalid - too many parts", "1.2.3.4", true},
		{"invalid - letters", "0.14a.0", true},
		{"invalid - empty component", "0..1", true},
		{"invalid - empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVersion(tt.version)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateVersion() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateLogLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{"debug", "debug", false},
		{"upper case", "WARN", false},
		{"invalid - trace", "trace", true},
		{"invalid - empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLogLevel(tt.level)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLogLevel() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
