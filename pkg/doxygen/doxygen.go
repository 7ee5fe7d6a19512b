// Package doxygen provides parsing for doxygen warning and error output.
// Doxygen reports most diagnostics as "file:line: severity: message" lines
// on stderr; messages about the run itself carry no file context and are
// grouped under SentinelFile.
package doxygen

import "sort"

// SentinelFile is the grouping key for diagnostics doxygen reports without
// file context (configuration problems, missing inputs, tool failures).
const SentinelFile = "doxygen"

// Diagnostic is a single doxygen error or warning. Line 0 means the
// message applies to the tool run rather than a source location.
//
// The type is comparable: records with equal line and message are the same
// diagnostic, and the collection collapses them.
type Diagnostic struct {
	Line    int
	Message string
}

// Diagnostics groups unique diagnostics by file name.
type Diagnostics struct {
	byFile map[string]map[Diagnostic]struct{}
}

// NewDiagnostics creates an empty collection.
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{byFile: make(map[string]map[Diagnostic]struct{})}
}

// Add records d under file. It reports whether the record was new; a
// duplicate (same file, line, message) leaves the collection unchanged.
func (c *Diagnostics) Add(file string, d Diagnostic) bool {
	set, ok := c.byFile[file]
	if !ok {
		set = make(map[Diagnostic]struct{})
		c.byFile[file] = set
	}
	if _, dup := set[d]; dup {
		return false
	}
	set[d] = struct{}{}
	return true
}

// Files returns the distinct file names in sorted order.
func (c *Diagnostics) Files() []string {
	files := make([]string, 0, len(c.byFile))
	for f := range c.byFile {
		files = append(files, f)
	}
	sort.Strings(files)
	return files
}

// ForFile returns the unique diagnostics recorded under file, sorted by
// line then message.
func (c *Diagnostics) ForFile(file string) []Diagnostic {
	set := c.byFile[file]
	diags := make([]Diagnostic, 0, len(set))
	for d := range set {
		diags = append(diags, d)
	}
	sort.Slice(diags, func(i, j int) bool {
		if diags[i].Line != diags[j].Line {
			return diags[i].Line < diags[j].Line
		}
		return diags[i].Message < diags[j].Message
	})
	return diags
}

// Count returns the number of unique diagnostics recorded under file.
func (c *Diagnostics) Count(file string) int {
	return len(c.byFile[file])
}

// FileCount returns the number of distinct file names.
func (c *Diagnostics) FileCount() int {
	return len(c.byFile)
}

// Total returns the number of unique diagnostics across all files.
func (c *Diagnostics) Total() int {
	n := 0
	for _, set := range c.byFile {
		n += len(set)
	}
	return n
}

// Empty reports whether the collection holds no diagnostics.
func (c *Diagnostics) Empty() bool {
	return len(c.byFile) == 0
}
