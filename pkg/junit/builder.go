package junit

import (
	"fmt"
	"strconv"

	"github.com/dkoosis/doxyjunit/pkg/doxygen"
)

// FromDiagnostics builds the report suite for a parsed collection.
//
// Counting contract: the errors and tests attributes both equal the
// number of distinct file names, not the number of diagnostics. A file
// with ten warnings is one failed "test" at the suite level even though
// every diagnostic still gets its own testcase element. Dashboards that
// consume these reports key on that tally, so it is preserved as-is.
func FromDiagnostics(diags *doxygen.Diagnostics) *TestSuite {
	suite := &TestSuite{Name: SuiteName}

	// A clean run still reports one synthetic passing case.
	if diags.Empty() {
		suite.Tests = 1
		suite.Cases = []TestCase{{Name: "no errors"}}
		return suite
	}

	suite.Errors = diags.FileCount()
	suite.Tests = diags.FileCount()

	for _, file := range diags.Files() {
		for _, d := range diags.ForFile(file) {
			suite.Cases = append(suite.Cases, TestCase{
				Name: file,
				File: file,
				Line: strconv.Itoa(d.Line),
				Error: &CaseError{
					Message: fmt.Sprintf("%d: %s", d.Line, d.Message),
				},
			})
		}
	}
	return suite
}
