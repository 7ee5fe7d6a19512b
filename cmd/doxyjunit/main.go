// doxyjunit converts doxygen warnings and errors into a JUnit XML report
// for CI dashboards.
//
// Usage:
//
//	doxygen Doxyfile 2> doxygen.log
//	doxyjunit --input doxygen.log --output doxygen-junit.xml
//	doxygen Doxyfile 2>&1 | doxyjunit -i - -o -
//
// Recognized input lines:
//   - file:line: error|warning: message   (source diagnostics)
//   - error|warning: message              (tool-level, grouped under "doxygen")
//
// Everything else in the log is ignored. In the report, errors and tests
// count affected files rather than individual diagnostics; consumers of
// the established format rely on that tally.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"golang.org/x/term"

	"github.com/dkoosis/doxyjunit/internal/config"
	"github.com/dkoosis/doxyjunit/internal/version"
	"github.com/dkoosis/doxyjunit/pkg/doxygen"
	"github.com/dkoosis/doxyjunit/pkg/junit"
	"github.com/dkoosis/doxyjunit/pkg/render"
)

const maxTopFiles = 5

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	input   string
	output  string
	quiet   bool
	theme   string
	version bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("doxyjunit", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.StringVar(&opts.input, "i", "", "doxygen stderr output to convert, '-' for stdin (required)")
	fs.StringVar(&opts.input, "input", "", "doxygen stderr output to convert, '-' for stdin (required)")
	fs.StringVar(&opts.output, "o", "", "report file path, '-' for stdout (default \"doxygen-junit.xml\")")
	fs.StringVar(&opts.output, "output", "", "report file path, '-' for stdout (default \"doxygen-junit.xml\")")
	fs.BoolVar(&opts.quiet, "quiet", false, "suppress the conversion summary")
	fs.StringVar(&opts.theme, "theme", "", "summary theme: default, orca, mono")
	fs.BoolVar(&opts.version, "version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if opts.version {
		fmt.Fprintf(stdout, "doxyjunit %s\n", version.String())
		return 0
	}

	if opts.input == "" {
		fmt.Fprintf(stderr, "doxyjunit: --input is required\n")
		fs.Usage()
		return 2
	}

	applyConfig(&opts, fs)

	input, err := readInput(opts.input, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "doxyjunit: %v\n", err)
		return 1
	}

	diags, stats, err := doxygen.ParseBytes(input)
	if err != nil {
		fmt.Fprintf(stderr, "doxyjunit: %v\n", err)
		return 1
	}

	suite := junit.FromDiagnostics(diags)
	if err := writeReport(suite, opts.output, stdout); err != nil {
		fmt.Fprintf(stderr, "doxyjunit: %v\n", err)
		return 1
	}

	if !opts.quiet {
		summary := buildSummary(diags, stats, opts.output)
		fmt.Fprint(stderr, selectRenderer(opts.theme, stderr).Render(summary))
	}
	return 0
}

// applyConfig fills options the user left unset from .doxyjunit.yaml,
// falling back to built-in defaults. Explicit flags always win.
func applyConfig(opts *options, fs *flag.FlagSet) {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg := config.Load()
	if opts.output == "" && !set["o"] && !set["output"] {
		opts.output = cfg.Output
	}
	if !set["quiet"] && cfg.Quiet {
		opts.quiet = true
	}
	if opts.theme == "" && !set["theme"] {
		opts.theme = cfg.Theme
	}
}

// readInput reads the whole diagnostic text; "-" selects stdin.
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return data, nil
}

// writeReport writes the suite to path, or to stdout when path is "-".
func writeReport(suite *junit.TestSuite, path string, stdout io.Writer) error {
	if path == "-" {
		if _, err := suite.WriteTo(stdout); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		return nil
	}
	return suite.WriteFile(path)
}

// buildSummary digests the conversion for the operator-facing summary.
func buildSummary(diags *doxygen.Diagnostics, stats doxygen.Stats, output string) render.Summary {
	s := render.Summary{
		Suite:       junit.SuiteName,
		Output:      output,
		Files:       diags.FileCount(),
		Diagnostics: diags.Total(),
		Errors:      stats.Errors,
		Warnings:    stats.Warnings,
		Duplicates:  stats.Duplicates,
	}
	for _, file := range diags.Files() {
		s.TopFiles = append(s.TopFiles, render.FileCount{File: file, Count: diags.Count(file)})
	}
	// Busiest first; ties stay alphabetical.
	sort.SliceStable(s.TopFiles, func(i, j int) bool {
		return s.TopFiles[i].Count > s.TopFiles[j].Count
	})
	if len(s.TopFiles) > maxTopFiles {
		s.TopFiles = s.TopFiles[:maxTopFiles]
	}
	return s
}

func selectRenderer(themeName string, w io.Writer) render.Renderer {
	if !isTTYWriter(w) {
		return render.NewPlain()
	}
	theme := render.ThemeByName(themeName)
	// Honor NO_COLOR
	if os.Getenv("NO_COLOR") != "" {
		theme = render.MonoTheme()
	}
	width := 80
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			width = tw
		}
	}
	return render.NewTerminal(theme, width)
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
