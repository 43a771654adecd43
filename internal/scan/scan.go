// Package scan inspects a tree of generated markup files. It counts files by
// suffix, finds files whose content matches a pattern, and totals pattern
// occurrences. Every call re-reads the tree from disk and keeps no state.
//
// The scan is best effort: a missing root yields zero results, and files or
// directories that cannot be read are skipped rather than reported.
package scan

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// DefaultMarkupExt is the suffix of files whose content is inspected
const DefaultMarkupExt = ".html"

// FileContent is the outcome of reading one file. A non-nil Err marks the
// file as skipped; Content is empty in that case.
type FileContent struct {
	Path    string
	Content string
	Err     error
}

// Skipped reports whether the file could not be read
func (f FileContent) Skipped() bool {
	return f.Err != nil
}

// Scanner inspects files ending in Ext. The zero value uses DefaultMarkupExt.
type Scanner struct {
	Ext string
}

// New returns a Scanner for the given markup suffix
func New(ext string) Scanner {
	return Scanner{Ext: ext}
}

func (s Scanner) ext() string {
	if s.Ext == "" {
		return DefaultMarkupExt
	}
	return s.Ext
}

// CountFilesWithExtension recursively counts non-directory entries under root
// whose name ends with ext. A missing root counts as 0.
func CountFilesWithExtension(root, ext string) int {
	count := 0
	walk(root, func(path string, entry os.DirEntry) {
		if strings.HasSuffix(entry.Name(), ext) {
			count++
		}
	})
	return count
}

// FindFilesMatching returns the markup files under root whose content matches
// include. A file whose content also matches exclude is left out even when
// include matches. Paths are returned in depth-first order.
func FindFilesMatching(root string, include, exclude *regexp.Regexp) []string {
	return Scanner{}.FindFilesMatching(root, include, exclude)
}

// CountMatches sums the non-overlapping occurrences of pattern across every
// markup file under root that matches it.
func CountMatches(root string, pattern *regexp.Regexp) int {
	return Scanner{}.CountMatches(root, pattern)
}

// FindFilesMatching is the suffix-aware form of the package-level function
func (s Scanner) FindFilesMatching(root string, include, exclude *regexp.Regexp) []string {
	results := []string{}
	ext := s.ext()

	walk(root, func(path string, entry os.DirEntry) {
		if !strings.HasSuffix(entry.Name(), ext) {
			return
		}

		file := readFile(path)
		if file.Skipped() {
			return
		}

		if exclude != nil && exclude.MatchString(file.Content) {
			return
		}
		if include.MatchString(file.Content) {
			results = append(results, path)
		}
	})

	return results
}

// CountMatches is the suffix-aware form of the package-level function
func (s Scanner) CountMatches(root string, pattern *regexp.Regexp) int {
	total := 0
	for _, file := range ReadFiles(s.FindFilesMatching(root, pattern, nil)) {
		if file.Skipped() {
			continue
		}
		total += len(pattern.FindAllStringIndex(file.Content, -1))
	}
	return total
}

// ReadFiles reads each path in order. Failures are recorded per file and do
// not stop the remaining reads.
func ReadFiles(paths []string) []FileContent {
	files := make([]FileContent, 0, len(paths))
	for _, path := range paths {
		files = append(files, readFile(path))
	}
	return files
}

func readFile(path string) FileContent {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileContent{Path: path, Err: err}
	}
	return FileContent{Path: path, Content: string(data)}
}

// walk visits every non-directory entry below dir, recursing into
// subdirectories at the point they are listed. Directories that cannot be
// listed, including a missing root, contribute nothing.
func walk(dir string, visit func(path string, entry os.DirEntry)) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			walk(path, visit)
			continue
		}
		visit(path, entry)
	}
}
