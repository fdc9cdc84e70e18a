package validation

import (
	"fmt"
	"strings"

	"github.com/kbukum/confkit/record"
)

// Issue codes produced outside of struct tags.
const (
	CodeRequired         = "required"
	CodeInvalidType      = "invalid_type"
	CodeUnrecognizedKeys = "unrecognized_keys"
	CodeCustom           = "custom"
)

// Issue is a single validation violation.
type Issue struct {
	Path    []string `json:"path"`
	Code    string   `json:"code"`
	Message string   `json:"message"`
}

// PathString returns the path joined with dots, or "(root)" for an empty path.
func (i Issue) PathString() string {
	if len(i.Path) == 0 {
		return "(root)"
	}
	return strings.Join(i.Path, ".")
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.PathString(), i.Message)
}

// Error is returned when a record fails validation.
type Error struct {
	Issues []Issue `json:"issues"`
}

func (e *Error) Error() string {
	messages := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		messages[i] = issue.String()
	}
	return "validation failed: " + strings.Join(messages, "; ")
}

// Collector collects validation issues.
type Collector struct {
	issues []Issue
}

// NewCollector creates a new Collector.
func NewCollector() *Collector {
	return &Collector{
		issues: make([]Issue, 0),
	}
}

// Add adds an issue.
func (c *Collector) Add(path []string, code, message string) *Collector {
	c.issues = append(c.issues, Issue{
		Path:    append([]string(nil), path...),
		Code:    code,
		Message: message,
	})
	return c
}

// Check adds an issue when condition is false.
func (c *Collector) Check(condition bool, path []string, code, message string) *Collector {
	if !condition {
		c.Add(path, code, message)
	}
	return c
}

// Required adds an issue when r holds no value at path.
func (c *Collector) Required(r record.Record, path []string) *Collector {
	if _, ok := record.Get(r, path); !ok {
		c.Add(path, CodeRequired, "is required")
	}
	return c
}

// HasErrors returns true if there are validation issues.
func (c *Collector) HasErrors() bool {
	return len(c.issues) > 0
}

// Issues returns all collected issues.
func (c *Collector) Issues() []Issue {
	return c.issues
}

// Err returns an *Error if there are issues, nil otherwise.
func (c *Collector) Err() error {
	if !c.HasErrors() {
		return nil
	}
	return &Error{Issues: c.issues}
}
