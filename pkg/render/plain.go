package render

import (
	"fmt"
	"strings"
)

// Plain renders summaries as unstyled text for pipes and CI logs.
// No ANSI codes, no alignment padding.
type Plain struct{}

// NewPlain creates a plain text renderer.
func NewPlain() *Plain {
	return &Plain{}
}

// Render formats the summary as plain text.
func (p *Plain) Render(s Summary) string {
	var sb strings.Builder

	if s.Diagnostics == 0 {
		fmt.Fprintf(&sb, "%s: no diagnostics\n", s.Suite)
	} else {
		fmt.Fprintf(&sb, "%s: %d diagnostics in %d files (errors: %d, warnings: %d, duplicates: %d)\n",
			s.Suite, s.Diagnostics, s.Files, s.Errors, s.Warnings, s.Duplicates)
	}
	fmt.Fprintf(&sb, "report: %s\n", displayPath(s.Output))

	if len(s.TopFiles) >= 2 {
		for _, fc := range s.TopFiles {
			fmt.Fprintf(&sb, "  %s: %d\n", fc.File, fc.Count)
		}
	}
	return sb.String()
}
