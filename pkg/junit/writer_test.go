package junit_test

import (
	"bytes"
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/doxyjunit/pkg/doxygen"
	"github.com/dkoosis/doxyjunit/pkg/junit"
)

func TestWriteTo_EmitsDeclarationAndIndentedBody(t *testing.T) {
	t.Parallel()

	diags := doxygen.NewDiagnostics()
	diags.Add("a.cpp", doxygen.Diagnostic{Line: 42, Message: "oops"})

	var buf bytes.Buffer
	n, err := junit.FromDiagnostics(diags).WriteTo(&buf)

	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	want := xml.Header + `<testsuite failures="0" name="doxygen" time="0" errors="1" tests="1">
  <testcase name="a.cpp" file="a.cpp" line="42">
    <error message="42: oops"></error>
  </testcase>
</testsuite>
`
	assert.Equal(t, want, buf.String())
}

func TestWriteTo_OmitsLocation_When_SuiteIsClean(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	_, err := junit.FromDiagnostics(doxygen.NewDiagnostics()).WriteTo(&buf)

	require.NoError(t, err)

	want := xml.Header + `<testsuite failures="0" name="doxygen" time="0" errors="0" tests="1">
  <testcase name="no errors"></testcase>
</testsuite>
`
	assert.Equal(t, want, buf.String())
}

func TestWriteTo_EscapesMarkup_When_MessagesContainSpecials(t *testing.T) {
	t.Parallel()

	diags := doxygen.NewDiagnostics()
	diags.Add("a.cpp", doxygen.Diagnostic{Line: 3, Message: `expected <tag> & "quotes"`})

	var buf bytes.Buffer
	_, err := junit.FromDiagnostics(diags).WriteTo(&buf)

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "&lt;tag&gt;")
	assert.Contains(t, out, "&amp;")
	assert.NotContains(t, out, `<tag>`)

	// The escaped document must parse back to the original text.
	parsed, err := junit.ReadBytes(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, parsed.Cases, 1)
	assert.Equal(t, `3: expected <tag> & "quotes"`, parsed.Cases[0].Error.Message)
}

func TestWriteFile_WritesReportAtomically(t *testing.T) {
	t.Parallel()

	diags := doxygen.NewDiagnostics()
	diags.Add("a.cpp", doxygen.Diagnostic{Line: 1, Message: "one"})

	dir := t.TempDir()
	path := filepath.Join(dir, "doxygen-junit.xml")

	require.NoError(t, junit.FromDiagnostics(diags).WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), xml.Header))
	assert.Contains(t, string(data), `name="a.cpp"`)

	// No stray staging files left next to the report.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "doxygen-junit.xml", entries[0].Name())
}

func TestWriteFile_Overwrites_When_ReportExists(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.xml")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	require.NoError(t, junit.FromDiagnostics(doxygen.NewDiagnostics()).WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `name="no errors"`)
	assert.NotContains(t, string(data), "stale")
}

func TestWriteFile_ReturnsError_When_DirectoryMissing(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nope", "out.xml")

	err := junit.FromDiagnostics(doxygen.NewDiagnostics()).WriteFile(path)

	require.Error(t, err)
	assert.NoFileExists(t, path)
}
