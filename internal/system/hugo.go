package system

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// DefaultHugoBinary is the executable looked up on PATH
const DefaultHugoBinary = "hugo"

// MinimumHugoVersion is the oldest Hugo release the theme supports
const MinimumHugoVersion = "0.140.0"

// UnknownVersion is reported when the Hugo version cannot be determined
const UnknownVersion = "unknown"

var hugoVersionPattern = regexp.MustCompile(`v(\d+\.\d+\.\d+)`)

// Hugo drives the hugo static site generator
type Hugo struct {
	runner CommandRunner
	binary string
}

// NewHugo creates a Hugo wrapper. An empty binary uses DefaultHugoBinary.
func NewHugo(runner CommandRunner, binary string) *Hugo {
	if binary == "" {
		binary = DefaultHugoBinary
	}
	return &Hugo{
		runner: runner,
		binary: binary,
	}
}

// Binary returns the executable used for hugo commands
func (h *Hugo) Binary() string {
	return h.binary
}

// IsInstalled reports whether `hugo version` runs successfully
func (h *Hugo) IsInstalled() bool {
	_, err := h.runner.Run(h.binary, "version")
	return err == nil
}

// Version returns the semantic version reported by `hugo version`, or
// UnknownVersion if it cannot be run or parsed
func (h *Hugo) Version() string {
	output, err := h.runner.Run(h.binary, "version")
	if err != nil {
		return UnknownVersion
	}
	return ParseHugoVersion(output)
}

// Build runs `hugo --quiet` in siteDir. A non-empty destination is passed as
// --destination, made absolute so it does not depend on siteDir.
func (h *Hugo) Build(siteDir, destination string) error {
	args := []string{"--quiet"}
	if destination != "" {
		abs, err := filepath.Abs(destination)
		if err != nil {
			return fmt.Errorf("failed to resolve destination %s: %w", destination, err)
		}
		args = append(args, "--destination", abs)
	}

	output, err := h.runner.RunInDir(siteDir, h.binary, args...)
	if err != nil {
		return fmt.Errorf("hugo build failed in %s: %w\nOutput: %s", siteDir, err, strings.TrimSpace(output))
	}
	return nil
}

// ParseHugoVersion extracts the first vX.Y.Z from `hugo version` output
func ParseHugoVersion(output string) string {
	m := hugoVersionPattern.FindStringSubmatch(output)
	if m == nil {
		return UnknownVersion
	}
	return m[1]
}

// CompareVersions compares two dotted numeric versions and returns -1, 0 or 1.
// Missing components count as zero.
func CompareVersions(a, b string) (int, error) {
	pa, err := parseVersionParts(a)
	if err != nil {
		return 0, err
	}
	pb, err := parseVersionParts(b)
	if err != nil {
		return 0, err
	}

	for len(pa) < len(pb) {
		pa = append(pa, 0)
	}
	for len(pb) < len(pa) {
		pb = append(pb, 0)
	}

	for i := range pa {
		switch {
		case pa[i] < pb[i]:
			return -1, nil
		case pa[i] > pb[i]:
			return 1, nil
		}
	}
	return 0, nil
}

func parseVersionParts(v string) ([]int, error) {
	v = strings.TrimPrefix(strings.TrimSpace(v), "v")
	if v == "" {
		return nil, fmt.Errorf("empty version")
	}

	fields := strings.Split(v, ".")
	parts := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid version %q: %w", v, err)
		}
		parts = append(parts, n)
	}
	return parts, nil
}
