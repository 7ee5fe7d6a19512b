package doxygen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/doxyjunit/pkg/doxygen"
)

func TestDiagnostics_Add_ReportsDuplicates(t *testing.T) {
	t.Parallel()

	diags := doxygen.NewDiagnostics()
	d := doxygen.Diagnostic{Line: 42, Message: "oops"}

	assert.True(t, diags.Add("a.cpp", d))
	assert.False(t, diags.Add("a.cpp", d))
	assert.True(t, diags.Add("b.cpp", d), "same diagnostic under another file is distinct")

	assert.Equal(t, 2, diags.Total())
}

func TestDiagnostics_Files_Sorted(t *testing.T) {
	t.Parallel()

	diags := doxygen.NewDiagnostics()
	diags.Add("z.cpp", doxygen.Diagnostic{Line: 1, Message: "x"})
	diags.Add("a.cpp", doxygen.Diagnostic{Line: 1, Message: "x"})
	diags.Add("m.cpp", doxygen.Diagnostic{Line: 1, Message: "x"})

	assert.Equal(t, []string{"a.cpp", "m.cpp", "z.cpp"}, diags.Files())
}

func TestDiagnostics_ForFile_SortedByLineThenMessage(t *testing.T) {
	t.Parallel()

	diags := doxygen.NewDiagnostics()
	diags.Add("a.cpp", doxygen.Diagnostic{Line: 9, Message: "later"})
	diags.Add("a.cpp", doxygen.Diagnostic{Line: 3, Message: "beta"})
	diags.Add("a.cpp", doxygen.Diagnostic{Line: 3, Message: "alpha"})

	got := diags.ForFile("a.cpp")
	require.Len(t, got, 3)
	assert.Equal(t, doxygen.Diagnostic{Line: 3, Message: "alpha"}, got[0])
	assert.Equal(t, doxygen.Diagnostic{Line: 3, Message: "beta"}, got[1])
	assert.Equal(t, doxygen.Diagnostic{Line: 9, Message: "later"}, got[2])
}

func TestDiagnostics_ForFile_UnknownFile(t *testing.T) {
	t.Parallel()

	diags := doxygen.NewDiagnostics()

	assert.Empty(t, diags.ForFile("missing.cpp"))
	assert.Equal(t, 0, diags.Count("missing.cpp"))
}

func TestDiagnostics_Counts(t *testing.T) {
	t.Parallel()

	diags := doxygen.NewDiagnostics()
	assert.True(t, diags.Empty())
	assert.Equal(t, 0, diags.FileCount())

	diags.Add("a.cpp", doxygen.Diagnostic{Line: 1, Message: "one"})
	diags.Add("a.cpp", doxygen.Diagnostic{Line: 2, Message: "two"})
	diags.Add("b.cpp", doxygen.Diagnostic{Line: 1, Message: "one"})

	assert.False(t, diags.Empty())
	assert.Equal(t, 2, diags.FileCount())
	assert.Equal(t, 3, diags.Total())
	assert.Equal(t, 2, diags.Count("a.cpp"))
	assert.Equal(t, 1, diags.Count("b.cpp"))
}
