package checks

import (
	"fmt"
	"regexp"

	"github.com/zoro11031/hugo-admonitions/admonition-check/internal/content"
	"github.com/zoro11031/hugo-admonitions/admonition-check/internal/scan"
)

// Check names
const (
	NameHTMLGenerated              = "html-generated"
	NameAdmonitionClasses          = "admonition-classes"
	NameBlockquoteFallback         = "blockquote-fallback"
	NameBlockquoteBeforeAdmonition = "blockquote-before-admonition"
	NameNoErrorText                = "no-error-text"
	NameExpectedAdmonitions        = "expected-admonitions"
)

var (
	admonitionClassPattern     = regexp.MustCompile(`class="admonition`)
	blockquotePattern          = regexp.MustCompile(`<blockquote>`)
	blockquoteTestCasePattern  = regexp.MustCompile(`(?i)blockquote-before-admonition`)
	errorTextPattern           = regexp.MustCompile(`(?i)\berror\b`)
	errorTextExclusionsPattern = regexp.MustCompile(`(?i)DOCTYPE`)
)

// Input locates the trees a suite inspects
type Input struct {
	// BuildDir is the generated site
	BuildDir string
	// ContentDir holds the Markdown test cases; empty skips source checks
	ContentDir string
	// MarkupExt is the generated file suffix; empty means ".html"
	MarkupExt string
}

func (in Input) ext() string {
	if in.MarkupExt == "" {
		return scan.DefaultMarkupExt
	}
	return in.MarkupExt
}

// markupName names the generated files in messages, e.g. "HTML" or ".xml"
func (in Input) markupName() string {
	if ext := in.ext(); ext != scan.DefaultMarkupExt {
		return ext
	}
	return "HTML"
}

// Check is one named assertion
type Check struct {
	Name     string
	Group    Group
	Severity Severity
	Run      func(in Input) Result
}

// Suite is an ordered list of checks
type Suite struct {
	checks    []Check
	inspector *content.Inspector
}

// NewSuite returns the standard admonition checks in reporting order
func NewSuite() *Suite {
	s := &Suite{inspector: content.NewInspector()}
	s.checks = []Check{
		{Name: NameHTMLGenerated, Group: GroupOutput, Severity: Hard, Run: checkHTMLGenerated},
		{Name: NameAdmonitionClasses, Group: GroupOutput, Severity: Soft, Run: checkAdmonitionClasses},
		{Name: NameBlockquoteFallback, Group: GroupOutput, Severity: Informational, Run: checkBlockquoteFallback},
		{Name: NameBlockquoteBeforeAdmonition, Group: GroupTestCases, Severity: Hard, Run: checkBlockquoteBeforeAdmonition},
		{Name: NameNoErrorText, Group: GroupTestCases, Severity: Soft, Run: checkNoErrorText},
		{Name: NameExpectedAdmonitions, Group: GroupTestCases, Severity: Soft, Run: s.checkExpectedAdmonitions},
	}
	return s
}

// Checks returns the checks in order
func (s *Suite) Checks() []Check {
	return s.checks
}

// Run executes every check and returns the report. Results are also passed to
// observe, if non-nil, as they are produced.
func (s *Suite) Run(in Input, observe func(Check, Result)) *Report {
	report := &Report{}
	for _, c := range s.checks {
		result := c.Run(in)
		result.Name = c.Name
		result.Group = c.Group
		result.Severity = c.Severity
		report.Add(result)
		if observe != nil {
			observe(c, result)
		}
	}
	return report
}

func checkHTMLGenerated(in Input) Result {
	n := scan.CountFilesWithExtension(in.BuildDir, in.ext())
	if n == 0 {
		return Result{Status: StatusFail, Message: fmt.Sprintf("No %s files were generated", in.markupName())}
	}
	return Result{Status: StatusPass, Count: n, Message: fmt.Sprintf("Generated %d %s file(s)", n, in.markupName())}
}

func checkAdmonitionClasses(in Input) Result {
	n := scan.New(in.ext()).CountMatches(in.BuildDir, admonitionClassPattern)
	if n == 0 {
		return Result{Status: StatusFail, Message: "No admonition classes found in output"}
	}
	return Result{Status: StatusPass, Count: n, Message: fmt.Sprintf("Found %d admonition(s) in output", n)}
}

// checkBlockquoteFallback reports plain blockquotes, which invalid admonition
// types fall back to
func checkBlockquoteFallback(in Input) Result {
	n := scan.New(in.ext()).CountMatches(in.BuildDir, blockquotePattern)
	if n == 0 {
		return Result{Status: StatusSkipped}
	}
	return Result{Status: StatusPass, Count: n, Message: fmt.Sprintf("Found %d regular blockquote(s) (expected for fallbacks)", n)}
}

func checkBlockquoteBeforeAdmonition(in Input) Result {
	files := scan.New(in.ext()).FindFilesMatching(in.BuildDir, blockquoteTestCasePattern, nil)
	if len(files) == 0 {
		return Result{Status: StatusFail, Message: "Blockquote before admonition test case not found"}
	}
	return Result{Status: StatusPass, Count: len(files), Message: "Blockquote before admonition test case rendered"}
}

// checkNoErrorText looks for error text in pages, ignoring any page that
// carries a doctype
func checkNoErrorText(in Input) Result {
	files := scan.New(in.ext()).FindFilesMatching(in.BuildDir, errorTextPattern, errorTextExclusionsPattern)
	if len(files) > 0 {
		return Result{Status: StatusFail, Count: len(files), Message: "Potential error messages found in HTML"}
	}
	return Result{Status: StatusSkipped}
}

func (s *Suite) checkExpectedAdmonitions(in Input) Result {
	if in.ContentDir == "" {
		return Result{Status: StatusSkipped}
	}

	summary, err := s.inspector.CountAdmonitions(in.ContentDir)
	if err != nil {
		return Result{Status: StatusFail, Message: fmt.Sprintf("Could not read test cases: %v", err)}
	}

	expected := summary.Total()
	if expected == 0 {
		return Result{Status: StatusSkipped}
	}

	// Alerts with an unknown type render as plain blockquotes, so fallbacks
	// count towards the rendered total
	scanner := scan.New(in.ext())
	rendered := scanner.CountMatches(in.BuildDir, admonitionClassPattern) +
		scanner.CountMatches(in.BuildDir, blockquotePattern)
	if rendered < expected {
		return Result{
			Status:  StatusFail,
			Count:   rendered,
			Message: fmt.Sprintf("Test cases declare %d admonition(s) but only %d rendered", expected, rendered),
		}
	}
	return Result{
		Status:  StatusPass,
		Count:   rendered,
		Message: fmt.Sprintf("All %d declared admonition(s) rendered", expected),
	}
}
