package common

import (
	"fmt"
	"regexp"
	"strings"
)

// ValidateNotEmpty validates that a string is not empty
func ValidateNotEmpty(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("value cannot be empty")
	}
	return nil
}

// ValidateExtension validates a file-name suffix such as ".html"
func ValidateExtension(ext string) error {
	if ext == "" {
		return fmt.Errorf("extension cannot be empty")
	}
	if !strings.HasPrefix(ext, ".") {
		return fmt.Errorf("extension must start with a dot: %s", ext)
	}
	if len(ext) == 1 {
		return fmt.Errorf("extension must have a name after the dot")
	}
	if strings.ContainsAny(ext, `/\ `) {
		return fmt.Errorf("extension contains invalid character: %s", ext)
	}
	return nil
}

// ValidatePattern compiles a user-supplied regular expression. An empty
// pattern is rejected because it matches every file.
func ValidatePattern(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, fmt.Errorf("pattern cannot be empty")
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	return re, nil
}

// ValidateVersion validates a dotted numeric version such as "0.140.0"
func ValidateVersion(version string) error {
	if version == "" {
		return fmt.Errorf("version cannot be empty")
	}

	parts := strings.Split(strings.TrimPrefix(version, "v"), ".")
	if len(parts) > 3 {
		return fmt.Errorf("version has too many components: %s", version)
	}

	for _, part := range parts {
		if part == "" {
			return fmt.Errorf("invalid version (empty component): %s", version)
		}
		for _, c := range part {
			if c < '0' || c > '9' {
				return fmt.Errorf("invalid character in version: %s", version)
			}
		}
	}

	return nil
}

// ValidateLogLevel validates a log level name
func ValidateLogLevel(level string) error {
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("invalid log level (want debug, info, warn or error): %s", level)
	}
}
