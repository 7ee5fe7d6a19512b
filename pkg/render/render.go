// Package render formats conversion summaries for humans. The XML report
// is the product; the summary is operator chrome, kept on the error
// stream so the document stream stays clean for piping.
package render

// FileCount pairs a file name with its unique diagnostic count.
type FileCount struct {
	File  string
	Count int
}

// Summary describes one completed conversion for display.
type Summary struct {
	Suite       string      // suite name carried in the report
	Output      string      // report destination ("-" means stdout)
	Files       int         // distinct file keys in the report
	Diagnostics int         // unique records emitted
	Errors      int         // matched error lines, duplicates included
	Warnings    int         // matched warning lines, duplicates included
	Duplicates  int         // repeated lines collapsed away
	TopFiles    []FileCount // busiest files, descending
}

// Renderer formats a summary as text.
type Renderer interface {
	Render(s Summary) string
}

// displayPath names the report destination for humans.
func displayPath(output string) string {
	if output == "-" {
		return "stdout"
	}
	return output
}
