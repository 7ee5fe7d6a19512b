package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const maxFileWidth = 50

// Terminal renders summaries as styled terminal output via lipgloss.
type Terminal struct {
	theme Theme
	width int
}

// NewTerminal creates a terminal renderer with the given theme.
func NewTerminal(theme Theme, width int) *Terminal {
	if width <= 0 {
		width = 80
	}
	return &Terminal{theme: theme, width: width}
}

// Render formats the summary for terminal display.
func (t *Terminal) Render(s Summary) string {
	var sb strings.Builder

	header := cases.Title(language.English).String(s.Suite + " report")
	sb.WriteString(t.theme.Bold.Render(header))
	sb.WriteString("\n")

	if s.Diagnostics == 0 {
		sb.WriteString("  ")
		sb.WriteString(t.theme.Success.Render(t.theme.Icons.Clean + " no diagnostics"))
		sb.WriteString("\n")
	} else {
		sb.WriteString("  ")
		status := fmt.Sprintf("%s %d diagnostics in %d files", t.theme.Icons.Issue, s.Diagnostics, s.Files)
		sb.WriteString(t.theme.Error.Render(status))
		sb.WriteString("\n")

		counts := fmt.Sprintf("errors: %d  warnings: %d", s.Errors, s.Warnings)
		if s.Duplicates > 0 {
			counts += fmt.Sprintf("  duplicates: %d", s.Duplicates)
		}
		sb.WriteString("  ")
		sb.WriteString(t.theme.Muted.Render(t.theme.Icons.Bullet + " " + counts))
		sb.WriteString("\n")
	}

	sb.WriteString("  ")
	sb.WriteString(t.theme.Muted.Render(t.theme.Icons.Bullet + " report: " + displayPath(s.Output)))
	sb.WriteString("\n")

	sb.WriteString(t.renderTopFiles(s.TopFiles))
	return sb.String()
}

// renderTopFiles shows which files carry the most diagnostics. A single
// entry repeats the status line, so the section needs at least two.
func (t *Terminal) renderTopFiles(files []FileCount) string {
	if len(files) < 2 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(t.theme.Bold.Render("Busiest Files"))
	sb.WriteString("\n")

	maxName, maxCount := 0, 0
	for _, fc := range files {
		if w := runewidth.StringWidth(fc.File); w > maxName {
			maxName = w
		}
		if w := len(fmt.Sprint(fc.Count)); w > maxCount {
			maxCount = w
		}
	}
	limit := maxFileWidth
	if t.width-10 < limit {
		limit = t.width - 10
	}
	if limit < 12 {
		limit = 12
	}
	if maxName > limit {
		maxName = limit
	}

	for i, fc := range files {
		sb.WriteString("  ")
		sb.WriteString(t.theme.Muted.Render(fmt.Sprintf("%2d. ", i+1)))
		name := runewidth.Truncate(fc.File, maxName, "...")
		sb.WriteString(t.theme.Primary.Render(padRight(name, maxName)))
		sb.WriteString("  ")
		sb.WriteString(t.theme.Warning.Render(padLeft(fmt.Sprint(fc.Count), maxCount)))
		sb.WriteString("\n")
	}
	return sb.String()
}

func padRight(s string, width int) string {
	if w := runewidth.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func padLeft(s string, width int) string {
	if w := runewidth.StringWidth(s); w < width {
		return strings.Repeat(" ", width-w) + s
	}
	return s
}
