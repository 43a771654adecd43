// Package checks holds the assertions made against a Hugo build of the
// admonitions test site. Each check is a pure function of the output tree
// and returns a Result; a Report collects them and derives the pass/fail
// verdict, so no counters are shared between runs.
package checks

// Severity decides how a failed check affects the verdict
type Severity int

const (
	// Hard checks fail the run
	Hard Severity = iota
	// Soft checks only produce warnings
	Soft
	// Informational checks never fail
	Informational
)

// String returns the severity name
func (s Severity) String() string {
	switch s {
	case Hard:
		return "hard"
	case Soft:
		return "soft"
	case Informational:
		return "info"
	default:
		return "unknown"
	}
}

// Status is the outcome of one check
type Status int

const (
	// StatusPass means the expectation held
	StatusPass Status = iota
	// StatusFail means the expectation did not hold
	StatusFail
	// StatusSkipped means there was nothing to report
	StatusSkipped
)

// String returns the status name
func (s Status) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusFail:
		return "fail"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Group names the section a check is reported under
type Group string

const (
	GroupOutput    Group = "output"
	GroupTestCases Group = "test-cases"
)

// Result is the outcome of a single check
type Result struct {
	Name     string
	Group    Group
	Severity Severity
	Status   Status
	Message  string
	// Count is the number the check measured (files, matches, ...)
	Count int
}

// IsError reports whether the result fails the run
func (r Result) IsError() bool {
	return r.Status == StatusFail && r.Severity == Hard
}

// IsWarning reports whether the result is a failed soft check
func (r Result) IsWarning() bool {
	return r.Status == StatusFail && r.Severity == Soft
}

// Report is the ordered list of results from one run
type Report struct {
	Results []Result
}

// Add appends a result
func (r *Report) Add(result Result) {
	r.Results = append(r.Results, result)
}

// Errors returns the number of failed hard checks
func (r *Report) Errors() int {
	n := 0
	for _, res := range r.Results {
		if res.IsError() {
			n++
		}
	}
	return n
}

// Warnings returns the number of failed soft checks
func (r *Report) Warnings() int {
	n := 0
	for _, res := range r.Results {
		if res.IsWarning() {
			n++
		}
	}
	return n
}

// Passed reports whether every hard check held
func (r *Report) Passed() bool {
	return r.Errors() == 0
}

// Find returns the result with the given name
func (r *Report) Find(name string) (Result, bool) {
	for _, res := range r.Results {
		if res.Name == name {
			return res, true
		}
	}
	return Result{}, false
}
