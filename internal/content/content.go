// Package content reads the Markdown test cases of the Hugo site and reports
// which admonitions they declare, so rendered output can be compared against
// what the sources ask for.
package content

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// alertMarker matches the first line of an alert blockquote, e.g. "[!NOTE]"
// or "[!warning]+ Title"
var alertMarker = regexp.MustCompile(`^\[!(\w+)\]`)

// Summary holds the admonitions declared across the test cases
type Summary struct {
	// ByType maps lower-cased admonition type to its number of occurrences
	ByType map[string]int
	// Files lists the Markdown files that declared at least one admonition
	Files []string
}

// Total returns the number of admonitions across all types
func (s Summary) Total() int {
	total := 0
	for _, n := range s.ByType {
		total += n
	}
	return total
}

// Types returns the declared admonition types in sorted order
func (s Summary) Types() []string {
	types := make([]string, 0, len(s.ByType))
	for t := range s.ByType {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Inspector parses Markdown sources with goldmark
type Inspector struct {
	markdown goldmark.Markdown
}

// NewInspector creates an Inspector with the default goldmark parser
func NewInspector() *Inspector {
	return &Inspector{
		markdown: goldmark.New(),
	}
}

// CountAdmonitions walks dir for Markdown files and tallies alert blockquotes.
// A missing directory yields an empty Summary. Files that cannot be read are
// skipped.
func (i *Inspector) CountAdmonitions(dir string) (Summary, error) {
	summary := Summary{ByType: make(map[string]int)}

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return summary, nil
	}

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".md") {
			return nil
		}

		source, err := os.ReadFile(path)
		if err != nil {
			return nil
		}

		found := i.Admonitions(source)
		if len(found) == 0 {
			return nil
		}
		for _, t := range found {
			summary.ByType[t]++
		}
		summary.Files = append(summary.Files, path)
		return nil
	})
	if err != nil {
		return Summary{}, fmt.Errorf("failed to walk content directory %s: %w", dir, err)
	}

	return summary, nil
}

// Admonitions returns the lower-cased type of every alert blockquote in
// source, in document order. Nested alerts are included.
func (i *Inspector) Admonitions(source []byte) []string {
	doc := i.markdown.Parser().Parse(text.NewReader(source))

	var types []string
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || n.Kind() != ast.KindBlockquote {
			return ast.WalkContinue, nil
		}
		if t, ok := alertType(n, source); ok {
			types = append(types, t)
		}
		return ast.WalkContinue, nil
	})

	return types
}

// alertType inspects the first line of a blockquote's first paragraph
func alertType(quote ast.Node, source []byte) (string, bool) {
	first := quote.FirstChild()
	if first == nil || first.Kind() != ast.KindParagraph {
		return "", false
	}

	lines := first.Lines()
	if lines.Len() == 0 {
		return "", false
	}

	seg := lines.At(0)
	line := bytes.TrimSpace(seg.Value(source))
	m := alertMarker.FindSubmatch(line)
	if m == nil {
		return "", false
	}
	return strings.ToLower(string(m[1])), true
}
