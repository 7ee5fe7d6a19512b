package doxygen

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Patterns for classifying doxygen output lines
var (
	// Matches "src/widget.cpp:42: warning: parameter 'x' is not documented"
	fileDiagRe = regexp.MustCompile(`(.+):(\d+):\s*(error|warning):\s+(.*)`)

	// Matches "error: Doxyfile not found" (tool-level, no file context)
	bareDiagRe = regexp.MustCompile(`^(error|warning):\s+(.*)$`)
)

// Stats counts what the parser saw. Errors and Warnings tally matched
// lines by severity keyword before duplicates collapse; Duplicates counts
// matched lines that repeated an already-recorded diagnostic. Severity is
// tallied here only, never attached to a Diagnostic: both severities flow
// into the report identically.
type Stats struct {
	Lines      int
	Errors     int
	Warnings   int
	Duplicates int
}

// Parse reads doxygen stderr output line by line and groups the
// recognized diagnostics by file name. Lines matching neither pattern are
// skipped without error; the returned error reflects only a failure
// reading from r.
func Parse(r io.Reader) (*Diagnostics, Stats, error) {
	diags := NewDiagnostics()
	var stats Stats

	scanner := bufio.NewScanner(r)
	// Allow long lines: doxygen repeats full declarations in messages.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		stats.Lines++
		line := strings.TrimRightFunc(scanner.Text(), unicode.IsSpace)

		if m := fileDiagRe.FindStringSubmatch(line); m != nil {
			num, err := strconv.Atoi(m[2])
			if err != nil {
				// Line number too large to represent; not a real location.
				continue
			}
			stats.countSeverity(m[3])
			if !diags.Add(m[1], Diagnostic{Line: num, Message: m[4]}) {
				stats.Duplicates++
			}
			continue
		}

		if m := bareDiagRe.FindStringSubmatch(line); m != nil {
			stats.countSeverity(m[1])
			if !diags.Add(SentinelFile, Diagnostic{Line: 0, Message: m[2]}) {
				stats.Duplicates++
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("scanning doxygen output: %w", err)
	}

	return diags, stats, nil
}

// ParseBytes is a convenience for parsing from a byte slice.
func ParseBytes(data []byte) (*Diagnostics, Stats, error) {
	return Parse(bytes.NewReader(data))
}

// ParseString is a convenience for parsing from a string.
func ParseString(s string) (*Diagnostics, Stats, error) {
	return Parse(strings.NewReader(s))
}

func (s *Stats) countSeverity(severity string) {
	if severity == "error" {
		s.Errors++
	} else {
		s.Warnings++
	}
}
